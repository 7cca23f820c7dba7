package repository

import (
	"context"

	"github.com/danyol08/transaction/internal/model"

	"gorm.io/gorm"
)

type CashierRepository interface {
	Create(ctx context.Context, c *model.Cashier) error
	FindByUsername(ctx context.Context, username string) (*model.Cashier, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ListAll(ctx context.Context) ([]model.Cashier, error)
	ListActiveUsernames(ctx context.Context) ([]string, error)
	UpdatePasswordHash(ctx context.Context, username, hash string) error
	UpdateActive(ctx context.Context, username string, active bool) error
}

type cashierRepo struct{ db *gorm.DB }

func NewCashierRepository(db *gorm.DB) CashierRepository { return &cashierRepo{db: db} }

func (r *cashierRepo) Create(ctx context.Context, c *model.Cashier) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *cashierRepo) FindByUsername(ctx context.Context, username string) (*model.Cashier, error) {
	var c model.Cashier
	// Username matching is case-sensitive on purpose.
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&c).Error
	return &c, err
}

func (r *cashierRepo) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Cashier{}).
		Where("username = ?", username).Count(&count).Error
	return count > 0, err
}

func (r *cashierRepo) ListAll(ctx context.Context) ([]model.Cashier, error) {
	var cashiers []model.Cashier
	err := r.db.WithContext(ctx).Order("username").Find(&cashiers).Error
	return cashiers, err
}

func (r *cashierRepo) ListActiveUsernames(ctx context.Context) ([]string, error) {
	var usernames []string
	err := r.db.WithContext(ctx).Model(&model.Cashier{}).
		Where("active = true").Order("username").
		Pluck("username", &usernames).Error
	return usernames, err
}

func (r *cashierRepo) UpdatePasswordHash(ctx context.Context, username, hash string) error {
	res := r.db.WithContext(ctx).Model(&model.Cashier{}).
		Where("username = ?", username).Update("password_hash", hash)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *cashierRepo) UpdateActive(ctx context.Context, username string, active bool) error {
	res := r.db.WithContext(ctx).Model(&model.Cashier{}).
		Where("username = ?", username).Update("active", active)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
