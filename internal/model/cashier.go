package model

import (
	"time"

	"github.com/google/uuid"
)

// Cashier roles. Earlier deployments gated management behind the literal
// username "admin"; the role column replaces that string check.
const (
	RoleCashier = "cashier"
	RoleAdmin   = "admin"
)

// Cashier is an authenticated staff identity permitted to record transactions.
// Accounts are never hard-deleted — Active gates login instead.
type Cashier struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Username     string    `gorm:"uniqueIndex;not null"`
	FullName     string
	PasswordHash string `gorm:"not null"`
	Role         string `gorm:"type:varchar(20);not null;default:'cashier'"`
	Active       bool   `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin reports whether the cashier may reach management operations.
func (c *Cashier) IsAdmin() bool { return c.Role == RoleAdmin }
