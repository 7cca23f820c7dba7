package dto

import "github.com/shopspring/decimal"

// ReportFilter is bound from the query string of the daily report endpoints.
// Cashier: "me" | "all" | an explicit username. Date: YYYY-MM-DD, empty = today.
type ReportFilter struct {
	Date    string `form:"date"`
	Cashier string `form:"cashier,default=me"`
}

type DailyKPIsResponse struct {
	TotalSales       decimal.Decimal `json:"total_sales"`
	TransactionCount int             `json:"transaction_count"`
	TopTechnician    string          `json:"top_technician,omitempty"`
}

type TechnicianTotalResponse struct {
	TechnicianName string          `json:"technician_name"`
	Amount         decimal.Decimal `json:"amount"`
}

type DailyReportResponse struct {
	Date        string                    `json:"date"`
	Scope       string                    `json:"scope"`
	Rows        []TransactionResponse     `json:"rows"`
	Total       decimal.Decimal           `json:"total"`
	KPIs        DailyKPIsResponse         `json:"kpis"`
	Technicians []TechnicianTotalResponse `json:"technicians"`
	Warning     string                    `json:"warning,omitempty"`
}

type EmailReportRequest struct {
	Date      string `json:"date"      validate:"required"`
	Cashier   string `json:"cashier"`
	Recipient string `json:"recipient" validate:"required,email"`
}

type EmailReportResponse struct {
	Sent    bool   `json:"sent"`
	Warning string `json:"warning,omitempty"`
}
