package service

import (
	"context"
	"fmt"
	"time"

	"github.com/danyol08/transaction/internal/dto"
	"github.com/danyol08/transaction/internal/repository"
)

type ActivityService interface {
	Recent(ctx context.Context, limit int) ([]dto.ActivityLogEntryResponse, error)
}

type activityService struct {
	repo     repository.ActivityLogRepository
	pageSize int
}

func NewActivityService(repo repository.ActivityLogRepository, pageSize int) ActivityService {
	return &activityService{repo: repo, pageSize: pageSize}
}

// Recent returns the latest entries, most recent first. The limit is
// clamped to the configured page size; zero or negative means "full page".
func (s *activityService) Recent(ctx context.Context, limit int) ([]dto.ActivityLogEntryResponse, error) {
	if limit <= 0 || limit > s.pageSize {
		limit = s.pageSize
	}
	entries, err := s.repo.Recent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	out := make([]dto.ActivityLogEntryResponse, len(entries))
	for i, e := range entries {
		out[i] = dto.ActivityLogEntryResponse{
			CashierUsername: e.CashierUsername,
			Action:          e.Action,
			Details:         e.Details,
			CreatedAt:       e.CreatedAt.UTC().Format(time.RFC3339),
		}
	}
	return out, nil
}
