package handler

import (
	"net/http"

	"github.com/danyol08/transaction/internal/apierror"
	"github.com/danyol08/transaction/internal/dto"
	"github.com/danyol08/transaction/internal/middleware"
	"github.com/danyol08/transaction/internal/service"

	"github.com/gin-gonic/gin"
)

type TransactionsHandler struct{ svc service.TransactionService }

func NewTransactionsHandler(svc service.TransactionService) *TransactionsHandler {
	return &TransactionsHandler{svc: svc}
}

// Record godoc
// @Summary Record a service transaction
// @Tags transactions
// @Accept json
// @Produce json
// @Param body body dto.RecordTransactionRequest true "Transaction"
// @Success 201 {object} dto.TransactionResponse
// @Failure 422 {object} apierror.APIError
// @Router /v1/transactions [post]
func (h *TransactionsHandler) Record(c *gin.Context) {
	var req dto.RecordTransactionRequest
	if !bindAndValidate(c, &req) {
		return
	}

	claims := middleware.GetClaims(c)
	resp, err := h.svc.Record(c.Request.Context(), claims.Username, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// List returns the full history from the snapshot, newest service date
// first. A store outage degrades to an empty list with a warning.
func (h *TransactionsHandler) List(c *gin.Context) {
	resp, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Search matches customer names case-insensitively; empty q returns an
// empty result set.
func (h *TransactionsHandler) Search(c *gin.Context) {
	var filter dto.SearchFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid query"))
		return
	}
	resp, err := h.svc.Search(c.Request.Context(), filter.Query)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ExportCSV streams the complete history under a fixed filename.
func (h *TransactionsHandler) ExportCSV(c *gin.Context) {
	data, filename, err := h.svc.ExportCSV(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", data)
}
