package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/danyol08/transaction/internal/cache"
	"github.com/danyol08/transaction/internal/dto"
	"github.com/danyol08/transaction/internal/model"
	"github.com/danyol08/transaction/internal/report"
	"github.com/danyol08/transaction/internal/repository"

	"github.com/shopspring/decimal"
)

type TransactionService interface {
	Record(ctx context.Context, cashierUsername string, req dto.RecordTransactionRequest) (*dto.TransactionResponse, error)
	List(ctx context.Context) (*dto.TransactionListResponse, error)
	Search(ctx context.Context, query string) (*dto.TransactionListResponse, error)
	// ExportCSV renders the full history; the filename is fixed.
	ExportCSV(ctx context.Context) ([]byte, string, error)
	// Snapshot exposes the cached transaction set to the report service.
	Snapshot(ctx context.Context) ([]model.Transaction, error)
	InvalidateSnapshot()
}

type transactionService struct {
	repo     repository.TransactionRepository
	snapshot *cache.TransactionSnapshot
}

func NewTransactionService(repo repository.TransactionRepository, snapshot *cache.TransactionSnapshot) TransactionService {
	return &transactionService{repo: repo, snapshot: snapshot}
}

// Record validates and persists a transaction, then invalidates the
// snapshot so the writing cashier sees their own row on the next read.
func (s *transactionService) Record(ctx context.Context, cashierUsername string, req dto.RecordTransactionRequest) (*dto.TransactionResponse, error) {
	tx, err := buildTransaction(cashierUsername, req)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, tx); err != nil {
		return nil, fmt.Errorf("%w: insert transaction: %v", ErrStoreUnavailable, err)
	}
	s.snapshot.Invalidate()

	resp := toTransactionResponse(*tx)
	return &resp, nil
}

// buildTransaction enforces the insert-time invariants: non-empty required
// text fields, a valid technician type, a parseable calendar date and a
// strictly positive amount. Nothing is written when any check fails.
func buildTransaction(cashierUsername string, req dto.RecordTransactionRequest) (*model.Transaction, error) {
	customer := strings.TrimSpace(req.CustomerName)
	svc := strings.TrimSpace(req.Service)
	tech := strings.TrimSpace(req.TechnicianName)
	if customer == "" || svc == "" || tech == "" {
		return nil, fmt.Errorf("%w: customer_name, service and technician_name are required", ErrValidation)
	}
	if cashierUsername == "" {
		return nil, fmt.Errorf("%w: missing acting cashier", ErrValidation)
	}

	techType := model.TechnicianType(req.TechnicianType)
	if !techType.Valid() {
		return nil, fmt.Errorf("%w: technician_type must be one of Nails, Lashes, Other", ErrValidation)
	}

	day, err := time.Parse(model.DateLayout, req.DateOfService)
	if err != nil {
		return nil, fmt.Errorf("%w: date_of_service must be YYYY-MM-DD", ErrValidation)
	}

	if !req.Amount.GreaterThan(decimal.Zero) {
		return nil, fmt.Errorf("%w: amount must be greater than zero", ErrValidation)
	}

	return &model.Transaction{
		CustomerName:    customer,
		Service:         svc,
		TechnicianName:  tech,
		TechnicianType:  techType,
		Addons:          strings.TrimSpace(req.Addons),
		DateOfService:   day,
		Amount:          req.Amount,
		CashierUsername: cashierUsername,
	}, nil
}

// List returns the cached snapshot. A store failure degrades to an empty
// list with a warning instead of an error: the history view keeps rendering.
func (s *transactionService) List(ctx context.Context) (*dto.TransactionListResponse, error) {
	rows, err := s.snapshot.Get(ctx)
	resp := &dto.TransactionListResponse{
		Data:  toTransactionResponses(rows),
		Total: len(rows),
	}
	if err != nil {
		resp.Warning = ErrStoreUnavailable.Error()
	}
	return resp, nil
}

func (s *transactionService) Search(ctx context.Context, query string) (*dto.TransactionListResponse, error) {
	rows, err := s.snapshot.Get(ctx)
	matches := report.SearchByCustomer(rows, query)
	resp := &dto.TransactionListResponse{
		Data:  toTransactionResponses(matches),
		Total: len(matches),
	}
	if err != nil {
		resp.Warning = ErrStoreUnavailable.Error()
	}
	return resp, nil
}

func (s *transactionService) ExportCSV(ctx context.Context) ([]byte, string, error) {
	rows, err := s.snapshot.Get(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	data, err := report.ToCSV(rows)
	if err != nil {
		return nil, "", err
	}
	return data, report.FullExportFilename, nil
}

func (s *transactionService) Snapshot(ctx context.Context) ([]model.Transaction, error) {
	rows, err := s.snapshot.Get(ctx)
	if err != nil {
		return rows, errors.Join(ErrStoreUnavailable, err)
	}
	return rows, nil
}

func (s *transactionService) InvalidateSnapshot() { s.snapshot.Invalidate() }

// ─── Mapping helpers ─────────────────────────────────────────────────────────

func toTransactionResponse(t model.Transaction) dto.TransactionResponse {
	return dto.TransactionResponse{
		ID:              t.ID.String(),
		CustomerName:    t.CustomerName,
		Service:         t.Service,
		TechnicianName:  t.TechnicianName,
		TechnicianType:  string(t.TechnicianType),
		Addons:          t.Addons,
		DateOfService:   t.ServiceDate(),
		Amount:          t.Amount,
		CashierUsername: t.CashierUsername,
		CreatedAt:       t.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func toTransactionResponses(rows []model.Transaction) []dto.TransactionResponse {
	out := make([]dto.TransactionResponse, len(rows))
	for i, t := range rows {
		out[i] = toTransactionResponse(t)
	}
	return out
}
