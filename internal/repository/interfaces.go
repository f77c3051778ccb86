package repository

import (
	"context"
	"errors"

	"github.com/canozdemir/inventory-backend/internal/models"
)

var (
	// ErrNotFound covers both a missing row and an ownership mismatch; the
	// two are deliberately indistinguishable to callers.
	ErrNotFound = errors.New("not found")
	// ErrDuplicate is a unique-constraint rejection (username or email taken).
	ErrDuplicate = errors.New("duplicate record")
)

// ItemFilter narrows a list to exact category/rarity matches; empty fields
// match everything.
type ItemFilter struct {
	Category string
	Rarity   string
}

type Users interface {
	Create(ctx context.Context, username, email, passwordHash string) (models.User, error)
	GetByID(ctx context.Context, id string) (models.User, error)
	GetByEmail(ctx context.Context, email string) (models.User, error)
	ExistsByEmailOrUsername(ctx context.Context, email, username string) (bool, error)
}

type Items interface {
	Create(ctx context.Context, it models.Item) (models.Item, error)
	GetByOwner(ctx context.Context, id, ownerID string) (models.Item, error)
	ListByOwner(ctx context.Context, ownerID string, f ItemFilter) ([]models.Item, error)
	Update(ctx context.Context, it models.Item) (models.Item, error)
	Delete(ctx context.Context, id, ownerID string) error
}

type ActivityLogs interface {
	Create(ctx context.Context, l models.ActivityLog) error
}
