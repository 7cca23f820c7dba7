package service

// In-memory repository stubs shared by the service tests.

import (
	"context"
	"errors"
	"time"

	"github.com/danyol08/transaction/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ── Cashier repository ────────────────────────────────────────────────────────

type stubCashierRepo struct {
	cashiers map[string]*model.Cashier
	failWith error
}

func newStubCashierRepo() *stubCashierRepo {
	return &stubCashierRepo{cashiers: make(map[string]*model.Cashier)}
}

func (r *stubCashierRepo) Create(_ context.Context, c *model.Cashier) error {
	if r.failWith != nil {
		return r.failWith
	}
	c.ID = uuid.New()
	c.CreatedAt = time.Now()
	r.cashiers[c.Username] = c
	return nil
}

func (r *stubCashierRepo) FindByUsername(_ context.Context, username string) (*model.Cashier, error) {
	c, ok := r.cashiers[username]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (r *stubCashierRepo) ExistsByUsername(_ context.Context, username string) (bool, error) {
	if r.failWith != nil {
		return false, r.failWith
	}
	_, ok := r.cashiers[username]
	return ok, nil
}

func (r *stubCashierRepo) ListAll(_ context.Context) ([]model.Cashier, error) {
	out := make([]model.Cashier, 0, len(r.cashiers))
	for _, c := range r.cashiers {
		out = append(out, *c)
	}
	return out, nil
}

func (r *stubCashierRepo) ListActiveUsernames(_ context.Context) ([]string, error) {
	var out []string
	for _, c := range r.cashiers {
		if c.Active {
			out = append(out, c.Username)
		}
	}
	return out, nil
}

func (r *stubCashierRepo) UpdatePasswordHash(_ context.Context, username, hash string) error {
	c, ok := r.cashiers[username]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	c.PasswordHash = hash
	return nil
}

func (r *stubCashierRepo) UpdateActive(_ context.Context, username string, active bool) error {
	c, ok := r.cashiers[username]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	c.Active = active
	return nil
}

// ── Transaction repository ───────────────────────────────────────────────────

type stubTransactionRepo struct {
	rows     []model.Transaction
	failWith error
}

func (r *stubTransactionRepo) Create(_ context.Context, t *model.Transaction) error {
	if r.failWith != nil {
		return r.failWith
	}
	t.ID = uuid.New()
	t.CreatedAt = time.Now()
	// Prepend: newest rows surface first, mirroring the store's ordering.
	r.rows = append([]model.Transaction{*t}, r.rows...)
	return nil
}

func (r *stubTransactionRepo) ListAll(_ context.Context) ([]model.Transaction, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	out := make([]model.Transaction, len(r.rows))
	copy(out, r.rows)
	return out, nil
}

// ── Activity log repository ──────────────────────────────────────────────────

type stubActivityRepo struct {
	entries  []model.ActivityLogEntry
	failWith error
}

func (r *stubActivityRepo) Append(_ context.Context, e *model.ActivityLogEntry) error {
	if r.failWith != nil {
		return r.failWith
	}
	e.ID = uuid.New()
	e.CreatedAt = time.Now()
	r.entries = append(r.entries, *e)
	return nil
}

func (r *stubActivityRepo) Recent(_ context.Context, limit int) ([]model.ActivityLogEntry, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	out := make([]model.ActivityLogEntry, 0, limit)
	for i := len(r.entries) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, r.entries[i])
	}
	return out, nil
}

var errStoreDown = errors.New("connection refused")
