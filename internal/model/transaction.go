package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DateLayout is the wire format for date_of_service (calendar date, no time).
const DateLayout = "2006-01-02"

// TechnicianType enumerates the service categories a technician works in.
type TechnicianType string

const (
	TechNails  TechnicianType = "Nails"
	TechLashes TechnicianType = "Lashes"
	TechOther  TechnicianType = "Other"
)

// Valid reports whether t is one of the enumerated technician types.
func (t TechnicianType) Valid() bool {
	switch t {
	case TechNails, TechLashes, TechOther:
		return true
	}
	return false
}

// Transaction is one recorded sale of a service.
// Rows are immutable: no update or delete path exists anywhere in the app.
type Transaction struct {
	ID             uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CustomerName   string         `gorm:"not null"`
	Service        string         `gorm:"not null"`
	TechnicianName string         `gorm:"not null"`
	TechnicianType TechnicianType `gorm:"type:varchar(20);not null"`
	Addons         string
	// DateOfService is user-supplied and may differ from CreatedAt:
	// back-dated entries are legitimate (e.g. recorded the morning after).
	DateOfService time.Time       `gorm:"type:date;not null;index"`
	Amount        decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	// CashierUsername references the cashier that recorded the sale. It is
	// kept as-is when a cashier is later deactivated.
	CashierUsername string `gorm:"not null;index"`
	CreatedAt       time.Time
}

// ServiceDate returns date_of_service in wire format.
func (t *Transaction) ServiceDate() string {
	return t.DateOfService.Format(DateLayout)
}
