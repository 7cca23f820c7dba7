package report

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/danyol08/transaction/internal/model"
)

// csvHeader is the stable column order of every export. Amounts are written
// with full decimal precision so the files stay machine-parseable.
var csvHeader = []string{
	"id",
	"customer_name",
	"service",
	"technician_name",
	"technician_type",
	"addons",
	"date_of_service",
	"amount",
	"cashier_username",
	"created_at",
}

// ToCSV renders rows as UTF-8 CSV with the standard quoting rules of
// encoding/csv (commas, quotes and newlines in values are escaped).
func ToCSV(rows []model.Transaction) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return nil, fmt.Errorf("csv: write header: %w", err)
	}
	for _, t := range rows {
		record := []string{
			t.ID.String(),
			t.CustomerName,
			t.Service,
			t.TechnicianName,
			string(t.TechnicianType),
			t.Addons,
			t.ServiceDate(),
			t.Amount.String(),
			t.CashierUsername,
			t.CreatedAt.UTC().Format("2006-01-02T15:04:05Z"),
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("csv: write row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("csv: flush: %w", err)
	}
	return buf.Bytes(), nil
}

// DailyCSVFilename encodes the selected date and cashier scope, e.g.
// sales_2024-05-01_all.csv or sales_2024-05-01_cashier1.csv.
func DailyCSVFilename(day string, filter CashierFilter) string {
	scope := "all"
	if filter.Mode != AllCashiers {
		scope = filter.Username
	}
	return fmt.Sprintf("sales_%s_%s.csv", day, scope)
}

// FullExportFilename is the fixed name of the complete history export.
const FullExportFilename = "transactions_all.csv"
