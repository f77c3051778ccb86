package postgres

import (
	"context"

	"github.com/google/uuid"

	"github.com/canozdemir/inventory-backend/internal/models"
)

type activityLogsRepo struct{ db DB }

func (r *activityLogsRepo) Create(ctx context.Context, l models.ActivityLog) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO activity_logs(id, user_id, action, entity_id, details) VALUES($1,$2,$3,$4,$5)`,
		uuid.NewString(), l.UserID, l.Action, l.EntityID, l.Details,
	)
	return err
}
