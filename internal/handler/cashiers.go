package handler

import (
	"net/http"

	"github.com/danyol08/transaction/internal/dto"
	"github.com/danyol08/transaction/internal/middleware"
	"github.com/danyol08/transaction/internal/service"

	"github.com/gin-gonic/gin"
)

type CashiersHandler struct{ svc service.CashierService }

func NewCashiersHandler(svc service.CashierService) *CashiersHandler {
	return &CashiersHandler{svc: svc}
}

// Create godoc
// @Summary Create a cashier account (admin)
// @Tags cashiers
// @Accept json
// @Produce json
// @Param body body dto.CreateCashierRequest true "New cashier"
// @Success 201 {object} dto.CashierResponse
// @Failure 409 {object} apierror.APIError
// @Router /v1/cashiers [post]
func (h *CashiersHandler) Create(c *gin.Context) {
	var req dto.CreateCashierRequest
	if !bindAndValidate(c, &req) {
		return
	}
	claims := middleware.GetClaims(c)
	resp, err := h.svc.Create(c.Request.Context(), claims.Username, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *CashiersHandler) List(c *gin.Context) {
	resp, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListActive feeds the cashier selector of the report view; any
// authenticated role may call it.
func (h *CashiersHandler) ListActive(c *gin.Context) {
	usernames, err := h.svc.ListActiveUsernames(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ActiveUsernamesResponse{Usernames: usernames})
}

func (h *CashiersHandler) SetStatus(c *gin.Context) {
	var req dto.SetStatusRequest
	if !bindAndValidate(c, &req) {
		return
	}
	claims := middleware.GetClaims(c)
	resp, err := h.svc.SetStatus(c.Request.Context(), claims.Username, c.Param("username"), *req.Active)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CashiersHandler) ResetPassword(c *gin.Context) {
	var req dto.ResetPasswordRequest
	if !bindAndValidate(c, &req) {
		return
	}
	claims := middleware.GetClaims(c)
	resp, err := h.svc.ResetPassword(c.Request.Context(), claims.Username, c.Param("username"), req.Password)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
