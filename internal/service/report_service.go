package service

import (
	"context"
	"fmt"
	"time"

	"github.com/danyol08/transaction/internal/dto"
	"github.com/danyol08/transaction/internal/model"
	"github.com/danyol08/transaction/internal/report"

	"github.com/rs/zerolog/log"
)

// ReportMailer delivers a rendered report as an e-mail attachment.
// Implemented by infra.Mailer.
type ReportMailer interface {
	SendReport(to, subject, body string, attachment []byte, filename string) error
}

// PDFRenderer writes a daily report to disk and returns the file path.
// Implemented by infra.RenderDailyReportPDF via router wiring.
type PDFRenderer func(day, scope string, rows []model.Transaction, kpis report.DailyKPIs, breakdown []report.TechnicianTotal) (string, error)

type ReportService interface {
	Daily(ctx context.Context, actingUser string, filter dto.ReportFilter) (*dto.DailyReportResponse, error)
	DailyCSV(ctx context.Context, actingUser string, filter dto.ReportFilter) (data []byte, filename string, err error)
	DailyPDF(ctx context.Context, actingUser string, filter dto.ReportFilter) (path string, err error)
	EmailDaily(ctx context.Context, actingUser string, req dto.EmailReportRequest) (*dto.EmailReportResponse, error)
}

type reportService struct {
	txs    TransactionService
	mailer ReportMailer
	pdf    PDFRenderer
}

func NewReportService(txs TransactionService, mailer ReportMailer, pdf PDFRenderer) ReportService {
	return &reportService{txs: txs, mailer: mailer, pdf: pdf}
}

// resolveFilter maps the wire cashier selector onto a report.CashierFilter.
// "me" restricts to the acting user, "all" drops the restriction, anything
// else names a specific cashier.
func resolveFilter(actingUser, selector string) report.CashierFilter {
	switch selector {
	case "", "me":
		return report.CashierFilter{Mode: report.CurrentCashierOnly, Username: actingUser}
	case "all":
		return report.CashierFilter{Mode: report.AllCashiers}
	default:
		return report.CashierFilter{Mode: report.SpecificUsername, Username: selector}
	}
}

func scopeLabel(f report.CashierFilter) string {
	if f.Mode == report.AllCashiers {
		return "all"
	}
	return f.Username
}

// resolveDay defaults an empty date to today and validates the format.
func resolveDay(date string) (string, error) {
	if date == "" {
		return time.Now().Format(model.DateLayout), nil
	}
	if _, err := time.Parse(model.DateLayout, date); err != nil {
		return "", fmt.Errorf("%w: date must be YYYY-MM-DD", ErrValidation)
	}
	return date, nil
}

func (s *reportService) Daily(ctx context.Context, actingUser string, filter dto.ReportFilter) (*dto.DailyReportResponse, error) {
	day, err := resolveDay(filter.Date)
	if err != nil {
		return nil, err
	}
	cf := resolveFilter(actingUser, filter.Cashier)

	snapshot, snapErr := s.txs.Snapshot(ctx)
	rows := report.FilterByDateAndCashier(snapshot, day, cf)
	kpis := report.ComputeDailyKPIs(snapshot, day)
	breakdown := report.TechnicianBreakdown(rows)

	resp := &dto.DailyReportResponse{
		Date:  day,
		Scope: scopeLabel(cf),
		Rows:  toTransactionResponses(rows),
		Total: report.TotalAmount(rows),
		KPIs: dto.DailyKPIsResponse{
			TotalSales:       kpis.TotalSales,
			TransactionCount: kpis.TransactionCount,
			TopTechnician:    kpis.TopTechnician,
		},
		Technicians: toTechnicianResponses(breakdown),
	}
	if snapErr != nil {
		resp.Warning = ErrStoreUnavailable.Error()
	}
	return resp, nil
}

func (s *reportService) DailyCSV(ctx context.Context, actingUser string, filter dto.ReportFilter) ([]byte, string, error) {
	day, err := resolveDay(filter.Date)
	if err != nil {
		return nil, "", err
	}
	cf := resolveFilter(actingUser, filter.Cashier)

	snapshot, err := s.txs.Snapshot(ctx)
	if err != nil {
		return nil, "", err
	}
	rows := report.FilterByDateAndCashier(snapshot, day, cf)
	data, err := report.ToCSV(rows)
	if err != nil {
		return nil, "", err
	}
	return data, report.DailyCSVFilename(day, cf), nil
}

func (s *reportService) DailyPDF(ctx context.Context, actingUser string, filter dto.ReportFilter) (string, error) {
	day, err := resolveDay(filter.Date)
	if err != nil {
		return "", err
	}
	cf := resolveFilter(actingUser, filter.Cashier)

	snapshot, err := s.txs.Snapshot(ctx)
	if err != nil {
		return "", err
	}
	rows := report.FilterByDateAndCashier(snapshot, day, cf)
	return s.pdf(day, scopeLabel(cf), rows, report.ComputeDailyKPIs(snapshot, day), report.TechnicianBreakdown(rows))
}

// EmailDaily sends the daily CSV to the recipient. Delivery failure is a
// warning in the response, never an error: the report itself was produced.
func (s *reportService) EmailDaily(ctx context.Context, actingUser string, req dto.EmailReportRequest) (*dto.EmailReportResponse, error) {
	data, filename, err := s.DailyCSV(ctx, actingUser, dto.ReportFilter{Date: req.Date, Cashier: req.Cashier})
	if err != nil {
		return nil, err
	}

	subject := fmt.Sprintf("Daily sales report %s", req.Date)
	body := fmt.Sprintf("Attached: %s", filename)
	if err := s.mailer.SendReport(req.Recipient, subject, body, data, filename); err != nil {
		log.Warn().Err(err).Str("recipient", req.Recipient).Msg("report mail delivery failed")
		return &dto.EmailReportResponse{Sent: false, Warning: "report generated but mail delivery failed"}, nil
	}
	return &dto.EmailReportResponse{Sent: true}, nil
}

func toTechnicianResponses(breakdown []report.TechnicianTotal) []dto.TechnicianTotalResponse {
	out := make([]dto.TechnicianTotalResponse, len(breakdown))
	for i, t := range breakdown {
		out[i] = dto.TechnicianTotalResponse{TechnicianName: t.TechnicianName, Amount: t.Amount}
	}
	return out
}
