package model

import (
	"time"

	"github.com/google/uuid"
)

// Administrative actions recorded in the activity log.
const (
	ActionAddCashier       = "Add Cashier"
	ActionSetCashierStatus = "Set Cashier Status"
	ActionResetPassword    = "Reset Password"
)

// ActivityLogEntry is an append-only audit record of an administrative
// action. Entries are never mutated or deleted after insert.
type ActivityLogEntry struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CashierUsername string    `gorm:"not null;index"`
	Action          string    `gorm:"not null"`
	Details         string
	CreatedAt       time.Time `gorm:"index"`
}
