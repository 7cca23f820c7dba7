package repository

import (
	"context"

	"github.com/danyol08/transaction/internal/model"

	"gorm.io/gorm"
)

// TransactionRepository exposes insert and full chronological retrieval only.
// Transactions are write-once: the interface deliberately has no update or
// delete method.
type TransactionRepository interface {
	Create(ctx context.Context, t *model.Transaction) error
	ListAll(ctx context.Context) ([]model.Transaction, error)
}

type transactionRepo struct{ db *gorm.DB }

func NewTransactionRepository(db *gorm.DB) TransactionRepository {
	return &transactionRepo{db: db}
}

func (r *transactionRepo) Create(ctx context.Context, t *model.Transaction) error {
	return r.db.WithContext(ctx).Create(t).Error
}

// ListAll performs a full scan ordered by service date, newest first.
// No pagination: expected volume is a few thousand rows, and the snapshot
// cache bounds how often this query actually hits the database.
func (r *transactionRepo) ListAll(ctx context.Context) ([]model.Transaction, error) {
	var txs []model.Transaction
	err := r.db.WithContext(ctx).
		Order("date_of_service DESC, created_at DESC").
		Find(&txs).Error
	return txs, err
}
