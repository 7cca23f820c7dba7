package service

import (
	"context"
	"testing"
	"time"

	"github.com/danyol08/transaction/internal/dto"
	"github.com/danyol08/transaction/internal/model"
	"github.com/danyol08/transaction/internal/report"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubMailer struct {
	sent     int
	lastTo   string
	lastFile string
	failWith error
}

func (m *stubMailer) SendReport(to, _, _ string, _ []byte, filename string) error {
	if m.failWith != nil {
		return m.failWith
	}
	m.sent++
	m.lastTo = to
	m.lastFile = filename
	return nil
}

func reportFixture(t *testing.T) TransactionService {
	t.Helper()
	repo := &stubTransactionRepo{}
	svc := newTxService(repo)

	seed := []struct {
		customer, tech, cashier string
		amount                  int64
	}{
		{"Ana", "Liz", "cashier1", 300},
		{"Bob", "Liz", "cashier1", 200},
		{"Cleo", "Mo", "cashier2", 100},
	}
	for _, s := range seed {
		_, err := svc.Record(context.Background(), s.cashier, dto.RecordTransactionRequest{
			CustomerName: s.customer, Service: "Gel Mani", TechnicianName: s.tech,
			TechnicianType: "Nails", DateOfService: "2024-05-01",
			Amount: decimal.NewFromInt(s.amount),
		})
		require.NoError(t, err)
	}
	return svc
}

func noPDF(_, _ string, _ []model.Transaction, _ report.DailyKPIs, _ []report.TechnicianTotal) (string, error) {
	return "/dev/null", nil
}

func TestDailyReportAllCashiers(t *testing.T) {
	svc := NewReportService(reportFixture(t), &stubMailer{}, noPDF)

	resp, err := svc.Daily(context.Background(), "cashier1", dto.ReportFilter{Date: "2024-05-01", Cashier: "all"})
	require.NoError(t, err)

	assert.Equal(t, "all", resp.Scope)
	assert.Len(t, resp.Rows, 3)
	assert.True(t, resp.Total.Equal(decimal.NewFromInt(600)))
	assert.Equal(t, 3, resp.KPIs.TransactionCount)
	assert.Equal(t, "Liz", resp.KPIs.TopTechnician)
	require.Len(t, resp.Technicians, 2)
	assert.Equal(t, "Liz", resp.Technicians[0].TechnicianName)
}

func TestDailyReportScopesToActingCashier(t *testing.T) {
	svc := NewReportService(reportFixture(t), &stubMailer{}, noPDF)

	resp, err := svc.Daily(context.Background(), "cashier2", dto.ReportFilter{Date: "2024-05-01", Cashier: "me"})
	require.NoError(t, err)

	assert.Equal(t, "cashier2", resp.Scope)
	require.Len(t, resp.Rows, 1)
	assert.Equal(t, "Cleo", resp.Rows[0].CustomerName)
	assert.True(t, resp.Total.Equal(decimal.NewFromInt(100)))
	// KPIs always cover the whole day, regardless of the row scope.
	assert.Equal(t, 3, resp.KPIs.TransactionCount)
}

func TestDailyReportSpecificCashier(t *testing.T) {
	svc := NewReportService(reportFixture(t), &stubMailer{}, noPDF)

	resp, err := svc.Daily(context.Background(), "cashier2", dto.ReportFilter{Date: "2024-05-01", Cashier: "cashier1"})
	require.NoError(t, err)
	assert.Equal(t, "cashier1", resp.Scope)
	assert.Len(t, resp.Rows, 2)
}

func TestDailyReportDefaultsToToday(t *testing.T) {
	svc := NewReportService(reportFixture(t), &stubMailer{}, noPDF)

	resp, err := svc.Daily(context.Background(), "cashier1", dto.ReportFilter{})
	require.NoError(t, err)
	assert.Equal(t, time.Now().Format(model.DateLayout), resp.Date)
}

func TestDailyReportRejectsBadDate(t *testing.T) {
	svc := NewReportService(reportFixture(t), &stubMailer{}, noPDF)

	_, err := svc.Daily(context.Background(), "cashier1", dto.ReportFilter{Date: "01-05-2024"})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestDailyCSVFilenameEncodesScope(t *testing.T) {
	svc := NewReportService(reportFixture(t), &stubMailer{}, noPDF)

	_, filename, err := svc.DailyCSV(context.Background(), "cashier1", dto.ReportFilter{Date: "2024-05-01", Cashier: "all"})
	require.NoError(t, err)
	assert.Equal(t, "sales_2024-05-01_all.csv", filename)

	_, filename, err = svc.DailyCSV(context.Background(), "cashier1", dto.ReportFilter{Date: "2024-05-01"})
	require.NoError(t, err)
	assert.Equal(t, "sales_2024-05-01_cashier1.csv", filename)
}

func TestEmailDaily(t *testing.T) {
	mailer := &stubMailer{}
	svc := NewReportService(reportFixture(t), mailer, noPDF)

	resp, err := svc.EmailDaily(context.Background(), "admin", dto.EmailReportRequest{
		Date: "2024-05-01", Cashier: "all", Recipient: "owner@example.com",
	})
	require.NoError(t, err)
	assert.True(t, resp.Sent)
	assert.Equal(t, "owner@example.com", mailer.lastTo)
	assert.Equal(t, "sales_2024-05-01_all.csv", mailer.lastFile)
}

func TestEmailDailyDeliveryFailureIsWarning(t *testing.T) {
	mailer := &stubMailer{failWith: errStoreDown}
	svc := NewReportService(reportFixture(t), mailer, noPDF)

	resp, err := svc.EmailDaily(context.Background(), "admin", dto.EmailReportRequest{
		Date: "2024-05-01", Cashier: "all", Recipient: "owner@example.com",
	})
	require.NoError(t, err, "delivery failure never fails the request")
	assert.False(t, resp.Sent)
	assert.NotEmpty(t, resp.Warning)
}
