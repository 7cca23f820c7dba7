package service

import (
	"context"
	"testing"
	"time"

	"github.com/danyol08/transaction/internal/cache"
	"github.com/danyol08/transaction/internal/dto"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTxService(repo *stubTransactionRepo) TransactionService {
	snapshot := cache.NewTransactionSnapshot(repo.ListAll, time.Hour)
	return NewTransactionService(repo, snapshot)
}

func validRequest() dto.RecordTransactionRequest {
	return dto.RecordTransactionRequest{
		CustomerName:   "Ana",
		Service:        "Gel Mani",
		TechnicianName: "Liz",
		TechnicianType: "Nails",
		DateOfService:  "2024-05-01",
		Amount:         decimal.NewFromFloat(500.0),
	}
}

func TestRecordRejectsInvalidInput(t *testing.T) {
	repo := &stubTransactionRepo{}
	svc := newTxService(repo)

	cases := []struct {
		name   string
		mutate func(*dto.RecordTransactionRequest)
	}{
		{"zero amount", func(r *dto.RecordTransactionRequest) { r.Amount = decimal.Zero }},
		{"negative amount", func(r *dto.RecordTransactionRequest) { r.Amount = decimal.NewFromInt(-5) }},
		{"empty customer", func(r *dto.RecordTransactionRequest) { r.CustomerName = "  " }},
		{"empty service", func(r *dto.RecordTransactionRequest) { r.Service = "" }},
		{"empty technician", func(r *dto.RecordTransactionRequest) { r.TechnicianName = "" }},
		{"bad technician type", func(r *dto.RecordTransactionRequest) { r.TechnicianType = "Hair" }},
		{"bad date", func(r *dto.RecordTransactionRequest) { r.DateOfService = "05/01/2024" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validRequest()
			tc.mutate(&req)
			_, err := svc.Record(context.Background(), "cashier1", req)
			assert.ErrorIs(t, err, ErrValidation)
			assert.Empty(t, repo.rows, "no partial write on validation failure")
		})
	}
}

func TestRecordRoundTripsThroughList(t *testing.T) {
	repo := &stubTransactionRepo{}
	svc := newTxService(repo)

	req := validRequest()
	req.Addons = "nail art"
	created, err := svc.Record(context.Background(), "cashier1", req)
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID, "id is store-assigned")

	list, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list.Data, 1)

	got := list.Data[0]
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "Ana", got.CustomerName)
	assert.Equal(t, "Gel Mani", got.Service)
	assert.Equal(t, "Liz", got.TechnicianName)
	assert.Equal(t, "Nails", got.TechnicianType)
	assert.Equal(t, "nail art", got.Addons)
	assert.Equal(t, "2024-05-01", got.DateOfService)
	assert.True(t, got.Amount.Equal(decimal.NewFromFloat(500.0)))
	assert.Equal(t, "cashier1", got.CashierUsername)
}

func TestRecordInvalidatesSnapshot(t *testing.T) {
	repo := &stubTransactionRepo{}
	svc := newTxService(repo)

	// Warm the snapshot (TTL is an hour, so only invalidation can refresh it).
	_, err := svc.List(context.Background())
	require.NoError(t, err)

	_, err = svc.Record(context.Background(), "cashier1", validRequest())
	require.NoError(t, err)

	list, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, list.Data, 1, "the writer sees their own insert immediately")
}

func TestListDegradesWhenStoreUnavailable(t *testing.T) {
	repo := &stubTransactionRepo{failWith: errStoreDown}
	svc := newTxService(repo)

	list, err := svc.List(context.Background())
	require.NoError(t, err, "history view keeps rendering")
	assert.Empty(t, list.Data)
	assert.NotEmpty(t, list.Warning)
}

func TestSearchUsesSnapshot(t *testing.T) {
	repo := &stubTransactionRepo{}
	svc := newTxService(repo)

	for _, name := range []string{"Ana", "Anna", "Juan", "Bob"} {
		req := validRequest()
		req.CustomerName = name
		_, err := svc.Record(context.Background(), "cashier1", req)
		require.NoError(t, err)
	}

	res, err := svc.Search(context.Background(), "an")
	require.NoError(t, err)
	assert.Equal(t, 3, res.Total)

	empty, err := svc.Search(context.Background(), "")
	require.NoError(t, err)
	assert.Zero(t, empty.Total)
}

func TestExportCSVFixedFilename(t *testing.T) {
	repo := &stubTransactionRepo{}
	svc := newTxService(repo)

	_, filename, err := svc.ExportCSV(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "transactions_all.csv", filename)
}
