package infra

// pdf.go — daily report rendering with go-pdf/fpdf. A4 portrait:
// header with salon name, date and scope, transaction table, per-technician
// breakdown and a bold total.

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/danyol08/transaction/internal/model"
	"github.com/danyol08/transaction/internal/report"

	"github.com/go-pdf/fpdf"
)

// RenderDailyReportPDF writes the daily report to storagePath and returns
// the absolute path of the generated file.
func RenderDailyReportPDF(salonName, storagePath, day, scope string, rows []model.Transaction, kpis report.DailyKPIs, breakdown []report.TechnicianTotal) (string, error) {
	if err := os.MkdirAll(storagePath, 0755); err != nil {
		return "", fmt.Errorf("pdf: create storage dir: %w", err)
	}

	fileName := fmt.Sprintf("report_%s_%s.pdf", day, scope)
	filePath := filepath.Join(storagePath, fileName)

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(12, 12, 12)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 24

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(contentW, 8, salonName, "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(contentW, 6, fmt.Sprintf("Daily Sales Report — %s (%s)", day, scope), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	// ── Transaction table ────────────────────────────────────────────────────
	cols := []struct {
		title string
		width float64
	}{
		{"Customer", 38},
		{"Service", 38},
		{"Technician", 32},
		{"Type", 18},
		{"Cashier", 28},
		{"Amount", 26},
	}

	pdf.SetFont("Helvetica", "B", 9)
	for _, col := range cols {
		pdf.CellFormat(col.width, 6, col.title, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	for _, t := range rows {
		pdf.CellFormat(cols[0].width, 6, t.CustomerName, "1", 0, "L", false, 0, "")
		pdf.CellFormat(cols[1].width, 6, t.Service, "1", 0, "L", false, 0, "")
		pdf.CellFormat(cols[2].width, 6, t.TechnicianName, "1", 0, "L", false, 0, "")
		pdf.CellFormat(cols[3].width, 6, string(t.TechnicianType), "1", 0, "L", false, 0, "")
		pdf.CellFormat(cols[4].width, 6, t.CashierUsername, "1", 0, "L", false, 0, "")
		pdf.CellFormat(cols[5].width, 6, t.Amount.StringFixed(2), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}
	if len(rows) == 0 {
		pdf.CellFormat(contentW, 6, "No transactions for this day.", "1", 1, "C", false, 0, "")
	}
	pdf.Ln(4)

	// ── Technician breakdown ─────────────────────────────────────────────────
	if len(breakdown) > 0 {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(contentW, 6, "Per-technician totals", "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 9)
		for _, tt := range breakdown {
			pdf.CellFormat(60, 6, tt.TechnicianName, "", 0, "L", false, 0, "")
			pdf.CellFormat(30, 6, tt.Amount.StringFixed(2), "", 1, "R", false, 0, "")
		}
		pdf.Ln(2)
	}

	// ── Totals ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(contentW, 7, fmt.Sprintf("Total: %s   (%d transactions)",
		report.TotalAmount(rows).StringFixed(2), len(rows)), "", 1, "R", false, 0, "")
	if kpis.TopTechnician != "" {
		pdf.SetFont("Helvetica", "", 9)
		pdf.CellFormat(contentW, 5, fmt.Sprintf("Top technician of the day: %s", kpis.TopTechnician), "", 1, "R", false, 0, "")
	}

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", fmt.Errorf("pdf: write file: %w", err)
	}
	return filePath, nil
}
