package repository

import (
	"context"

	"github.com/danyol08/transaction/internal/model"

	"gorm.io/gorm"
)

// ActivityLogRepository is append-only: entries are never updated or removed.
type ActivityLogRepository interface {
	Append(ctx context.Context, e *model.ActivityLogEntry) error
	Recent(ctx context.Context, limit int) ([]model.ActivityLogEntry, error)
}

type activityLogRepo struct{ db *gorm.DB }

func NewActivityLogRepository(db *gorm.DB) ActivityLogRepository {
	return &activityLogRepo{db: db}
}

func (r *activityLogRepo) Append(ctx context.Context, e *model.ActivityLogEntry) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *activityLogRepo) Recent(ctx context.Context, limit int) ([]model.ActivityLogEntry, error) {
	var entries []model.ActivityLogEntry
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&entries).Error
	return entries, err
}
