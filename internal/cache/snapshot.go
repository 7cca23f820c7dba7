// Package cache holds the single-slot TTL snapshot of the transaction table.
// Every read path (history, search, reports, exports) goes through it so the
// database sees at most one full scan per TTL window per instance.
package cache

import (
	"context"
	"sync"
	"time"

	"github.com/danyol08/transaction/internal/model"
)

// FetchFunc pulls the full transaction set from the backing store.
type FetchFunc func(ctx context.Context) ([]model.Transaction, error)

// TransactionSnapshot memoizes one FetchFunc result for a fixed window.
// Expiry is evaluated lazily on access; there is no background timer.
// Staleness within the TTL is accepted; Invalidate is called after every
// successful insert so a cashier sees their own write.
type TransactionSnapshot struct {
	mu        sync.Mutex
	fetch     FetchFunc
	ttl       time.Duration
	rows      []model.Transaction
	fetchedAt time.Time

	now func() time.Time // overridable in tests
}

func NewTransactionSnapshot(fetch FetchFunc, ttl time.Duration) *TransactionSnapshot {
	return &TransactionSnapshot{fetch: fetch, ttl: ttl, now: time.Now}
}

// Get returns the cached snapshot while the window holds, refetching
// otherwise. On fetch failure it returns an empty snapshot together with the
// error so callers can keep rendering and surface a recoverable warning.
func (c *TransactionSnapshot) Get(ctx context.Context) ([]model.Transaction, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.rows != nil && c.now().Sub(c.fetchedAt) < c.ttl {
		return copyRows(c.rows), nil
	}

	rows, err := c.fetch(ctx)
	if err != nil {
		c.rows = nil
		return []model.Transaction{}, err
	}
	if rows == nil {
		rows = []model.Transaction{}
	}
	c.rows = rows
	c.fetchedAt = c.now()
	return copyRows(c.rows), nil
}

// Invalidate forces the next Get to refetch regardless of remaining TTL.
func (c *TransactionSnapshot) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rows = nil
}

// copyRows hands each caller its own slice so concurrent readers never
// share backing storage with the cached value.
func copyRows(rows []model.Transaction) []model.Transaction {
	out := make([]model.Transaction, len(rows))
	copy(out, rows)
	return out
}
