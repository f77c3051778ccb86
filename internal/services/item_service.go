package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/canozdemir/inventory-backend/internal/metrics"
	"github.com/canozdemir/inventory-backend/internal/models"
	repo "github.com/canozdemir/inventory-backend/internal/repository"
	"github.com/canozdemir/inventory-backend/internal/worker"
)

type ItemService struct {
	items    repo.Items
	activity repo.ActivityLogs
	wp       *worker.Pool
}

func NewItemService(items repo.Items, activity repo.ActivityLogs, wp *worker.Pool) *ItemService {
	return &ItemService{items: items, activity: activity, wp: wp}
}

func (s *ItemService) List(ctx context.Context, ownerID string, f repo.ItemFilter) ([]models.Item, error) {
	return s.items.ListByOwner(ctx, ownerID, f)
}

func (s *ItemService) Get(ctx context.Context, id, ownerID string) (models.Item, error) {
	return s.items.GetByOwner(ctx, id, ownerID)
}

func (s *ItemService) Create(ctx context.Context, ownerID string, d models.ItemDraft) (models.Item, error) {
	it := d.Item()
	it.OwnerID = ownerID
	if err := it.Validate(); err != nil {
		return models.Item{}, err
	}
	created, err := s.items.Create(ctx, it)
	if err != nil {
		return models.Item{}, err
	}
	metrics.ItemOpsTotal.WithLabelValues("create").Inc()
	s.logActivity(ownerID, "item_created", created.ID, created.Name)
	return created, nil
}

// Update fetches the owned item first (404 semantics), merges only the fields
// present in the request, and re-validates the merged record.
func (s *ItemService) Update(ctx context.Context, id, ownerID string, upd models.ItemUpdate) (models.Item, error) {
	it, err := s.items.GetByOwner(ctx, id, ownerID)
	if err != nil {
		return models.Item{}, err
	}
	upd.Apply(&it)
	if err := it.Validate(); err != nil {
		return models.Item{}, err
	}
	updated, err := s.items.Update(ctx, it)
	if err != nil {
		return models.Item{}, err
	}
	metrics.ItemOpsTotal.WithLabelValues("update").Inc()
	s.logActivity(ownerID, "item_updated", updated.ID, updated.Name)
	return updated, nil
}

func (s *ItemService) Delete(ctx context.Context, id, ownerID string) error {
	if err := s.items.Delete(ctx, id, ownerID); err != nil {
		return err
	}
	metrics.ItemOpsTotal.WithLabelValues("delete").Inc()
	s.logActivity(ownerID, "item_deleted", id, "")
	return nil
}

// logActivity is best-effort and runs off the request path.
func (s *ItemService) logActivity(userID, action, entityID, details string) {
	if s.wp == nil || s.activity == nil {
		return
	}
	s.wp.Submit(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		err := s.activity.Create(ctx, models.ActivityLog{
			UserID:   userID,
			Action:   action,
			EntityID: entityID,
			Details:  details,
		})
		if err != nil {
			slog.Warn("activity log", "action", action, "err", err)
		}
	})
}
