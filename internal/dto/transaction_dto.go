package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type RecordTransactionRequest struct {
	CustomerName   string          `json:"customer_name"   validate:"required"`
	Service        string          `json:"service"         validate:"required"`
	TechnicianName string          `json:"technician_name" validate:"required"`
	TechnicianType string          `json:"technician_type" validate:"required,oneof=Nails Lashes Other"`
	Addons         string          `json:"addons"`
	DateOfService  string          `json:"date_of_service" validate:"required"`
	Amount         decimal.Decimal `json:"amount"          validate:"required,gt=0"`
}

// SearchFilter is bound from the query string of GET /v1/transactions/search.
type SearchFilter struct {
	Query string `form:"q"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type TransactionResponse struct {
	ID              string          `json:"id"`
	CustomerName    string          `json:"customer_name"`
	Service         string          `json:"service"`
	TechnicianName  string          `json:"technician_name"`
	TechnicianType  string          `json:"technician_type"`
	Addons          string          `json:"addons,omitempty"`
	DateOfService   string          `json:"date_of_service"`
	Amount          decimal.Decimal `json:"amount"`
	CashierUsername string          `json:"cashier_username"`
	CreatedAt       string          `json:"created_at"`
}

// TransactionListResponse carries a snapshot view. Warning is set when the
// store was unreachable and the data below is an empty fallback.
type TransactionListResponse struct {
	Data    []TransactionResponse `json:"data"`
	Total   int                   `json:"total"`
	Warning string                `json:"warning,omitempty"`
}
