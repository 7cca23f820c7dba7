package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/danyol08/transaction/internal/dto"
	"github.com/danyol08/transaction/internal/model"
	"github.com/danyol08/transaction/internal/repository"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

const auditWarning = "action committed, but recording it in the activity log failed"

type CashierService interface {
	Create(ctx context.Context, actor string, req dto.CreateCashierRequest) (*dto.CashierResponse, error)
	List(ctx context.Context) ([]dto.CashierResponse, error)
	ListActiveUsernames(ctx context.Context) ([]string, error)
	SetStatus(ctx context.Context, actor, username string, active bool) (*dto.CashierResponse, error)
	ResetPassword(ctx context.Context, actor, username, password string) (*dto.CashierResponse, error)
}

type cashierService struct {
	repo     repository.CashierRepository
	activity repository.ActivityLogRepository
}

func NewCashierService(repo repository.CashierRepository, activity repository.ActivityLogRepository) CashierService {
	return &cashierService{repo: repo, activity: activity}
}

func (s *cashierService) Create(ctx context.Context, actor string, req dto.CreateCashierRequest) (*dto.CashierResponse, error) {
	exists, err := s.repo.ExistsByUsername(ctx, req.Username)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	if exists {
		return nil, ErrDuplicateUsername
	}

	hash, err := hashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	role := req.Role
	if role == "" {
		role = model.RoleCashier
	}
	cashier := &model.Cashier{
		Username:     req.Username,
		FullName:     req.FullName,
		PasswordHash: hash,
		Role:         role,
		Active:       true,
	}
	if err := s.repo.Create(ctx, cashier); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	resp := toCashierResponse(cashier)
	resp.AuditWarning = s.appendAudit(ctx, actor, model.ActionAddCashier,
		fmt.Sprintf("created cashier %q (role %s)", cashier.Username, role))
	return resp, nil
}

func (s *cashierService) List(ctx context.Context) ([]dto.CashierResponse, error) {
	cashiers, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	out := make([]dto.CashierResponse, len(cashiers))
	for i := range cashiers {
		out[i] = *toCashierResponse(&cashiers[i])
	}
	return out, nil
}

func (s *cashierService) ListActiveUsernames(ctx context.Context) ([]string, error) {
	usernames, err := s.repo.ListActiveUsernames(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return usernames, nil
}

func (s *cashierService) SetStatus(ctx context.Context, actor, username string, active bool) (*dto.CashierResponse, error) {
	if err := s.repo.UpdateActive(ctx, username, active); err != nil {
		return nil, translateNotFound(err)
	}
	cashier, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		return nil, translateNotFound(err)
	}

	state := "deactivated"
	if active {
		state = "reactivated"
	}
	resp := toCashierResponse(cashier)
	resp.AuditWarning = s.appendAudit(ctx, actor, model.ActionSetCashierStatus,
		fmt.Sprintf("%s cashier %q", state, username))
	return resp, nil
}

// ResetPassword replaces the stored hash. The activity-log append afterwards
// is best-effort: the new hash stays committed even when the append fails.
func (s *cashierService) ResetPassword(ctx context.Context, actor, username, password string) (*dto.CashierResponse, error) {
	hash, err := hashPassword(password)
	if err != nil {
		return nil, err
	}
	if err := s.repo.UpdatePasswordHash(ctx, username, hash); err != nil {
		return nil, translateNotFound(err)
	}
	cashier, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		return nil, translateNotFound(err)
	}

	resp := toCashierResponse(cashier)
	resp.AuditWarning = s.appendAudit(ctx, actor, model.ActionResetPassword,
		fmt.Sprintf("reset password of cashier %q", username))
	return resp, nil
}

// appendAudit records an administrative action. Failures are logged and
// reported as a response warning; they never roll back the primary action.
func (s *cashierService) appendAudit(ctx context.Context, actor, action, details string) string {
	entry := &model.ActivityLogEntry{
		CashierUsername: actor,
		Action:          action,
		Details:         details,
	}
	if err := s.activity.Append(ctx, entry); err != nil {
		log.Warn().Err(err).Str("actor", actor).Str("action", action).
			Msg("activity log append failed")
		return auditWarning
	}
	return ""
}

func translateNotFound(err error) error {
	// GORM reports a missing row distinctly; everything else is transient.
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
}

func toCashierResponse(c *model.Cashier) *dto.CashierResponse {
	return &dto.CashierResponse{
		ID:       c.ID.String(),
		Username: c.Username,
		FullName: c.FullName,
		Role:     c.Role,
		Active:   c.Active,
	}
}
