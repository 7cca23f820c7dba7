// Package report derives filtered views and aggregate KPIs from a
// transaction snapshot. Every function is pure: no store access, no side
// effects, input order preserved.
package report

import (
	"strings"

	"github.com/danyol08/transaction/internal/model"

	"github.com/shopspring/decimal"
)

// CashierFilterMode selects how a report restricts rows by cashier.
type CashierFilterMode int

const (
	// AllCashiers keeps rows from every cashier.
	AllCashiers CashierFilterMode = iota
	// CurrentCashierOnly keeps rows recorded by the acting cashier.
	CurrentCashierOnly
	// SpecificUsername keeps rows recorded by one named cashier.
	SpecificUsername
)

// CashierFilter pairs a mode with the username it applies to.
// Username is the acting user for CurrentCashierOnly and the selected
// cashier for SpecificUsername; it is ignored for AllCashiers.
type CashierFilter struct {
	Mode     CashierFilterMode
	Username string
}

// SearchByCustomer returns the rows whose customer name contains query,
// case-insensitively. An empty query matches nothing — the search view
// starts blank rather than dumping the whole table.
func SearchByCustomer(snapshot []model.Transaction, query string) []model.Transaction {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return []model.Transaction{}
	}
	matches := []model.Transaction{}
	for _, t := range snapshot {
		if strings.Contains(strings.ToLower(t.CustomerName), q) {
			matches = append(matches, t)
		}
	}
	return matches
}

// FilterByDateAndCashier keeps rows whose service date equals day
// (wire format YYYY-MM-DD) and which pass the cashier filter.
func FilterByDateAndCashier(snapshot []model.Transaction, day string, filter CashierFilter) []model.Transaction {
	subset := []model.Transaction{}
	for _, t := range snapshot {
		if t.ServiceDate() != day {
			continue
		}
		switch filter.Mode {
		case CurrentCashierOnly, SpecificUsername:
			if t.CashierUsername != filter.Username {
				continue
			}
		}
		subset = append(subset, t)
	}
	return subset
}

// TotalAmount sums amount over rows; zero for an empty set.
func TotalAmount(rows []model.Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, t := range rows {
		total = total.Add(t.Amount)
	}
	return total
}

// DailyKPIs are the headline numbers of the daily report.
// TopTechnician is empty when no rows match the day.
type DailyKPIs struct {
	TotalSales       decimal.Decimal
	TransactionCount int
	TopTechnician    string
}

// ComputeDailyKPIs aggregates the given day across all cashiers.
// The top technician is the one with the greatest summed amount; ties go to
// whichever technician appeared first in snapshot order.
func ComputeDailyKPIs(snapshot []model.Transaction, day string) DailyKPIs {
	rows := FilterByDateAndCashier(snapshot, day, CashierFilter{Mode: AllCashiers})

	kpis := DailyKPIs{
		TotalSales:       TotalAmount(rows),
		TransactionCount: len(rows),
	}

	sums := map[string]decimal.Decimal{}
	order := []string{}
	for _, t := range rows {
		if _, seen := sums[t.TechnicianName]; !seen {
			order = append(order, t.TechnicianName)
		}
		sums[t.TechnicianName] = sums[t.TechnicianName].Add(t.Amount)
	}

	best := decimal.Zero
	for _, name := range order {
		if sums[name].GreaterThan(best) {
			best = sums[name]
			kpis.TopTechnician = name
		}
	}
	return kpis
}

// TechnicianTotal is one line of the per-technician breakdown.
type TechnicianTotal struct {
	TechnicianName string
	Amount         decimal.Decimal
}

// TechnicianBreakdown sums amount per technician over rows, ordered by
// first appearance so the output is stable for a given snapshot.
func TechnicianBreakdown(rows []model.Transaction) []TechnicianTotal {
	sums := map[string]decimal.Decimal{}
	order := []string{}
	for _, t := range rows {
		if _, seen := sums[t.TechnicianName]; !seen {
			order = append(order, t.TechnicianName)
		}
		sums[t.TechnicianName] = sums[t.TechnicianName].Add(t.Amount)
	}

	out := make([]TechnicianTotal, 0, len(order))
	for _, name := range order {
		out = append(out, TechnicianTotal{TechnicianName: name, Amount: sums[name]})
	}
	return out
}
