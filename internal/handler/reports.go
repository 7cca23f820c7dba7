package handler

import (
	"net/http"

	"github.com/danyol08/transaction/internal/apierror"
	"github.com/danyol08/transaction/internal/dto"
	"github.com/danyol08/transaction/internal/middleware"
	"github.com/danyol08/transaction/internal/service"

	"github.com/gin-gonic/gin"
)

type ReportsHandler struct{ svc service.ReportService }

func NewReportsHandler(svc service.ReportService) *ReportsHandler {
	return &ReportsHandler{svc: svc}
}

func bindReportFilter(c *gin.Context) (dto.ReportFilter, bool) {
	var filter dto.ReportFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid query"))
		return filter, false
	}
	return filter, true
}

// Daily godoc
// @Summary Daily sales report with KPIs and per-technician breakdown
// @Tags reports
// @Produce json
// @Param date query string false "YYYY-MM-DD, defaults to today"
// @Param cashier query string false "me | all | username"
// @Success 200 {object} dto.DailyReportResponse
// @Router /v1/reports/daily [get]
func (h *ReportsHandler) Daily(c *gin.Context) {
	filter, ok := bindReportFilter(c)
	if !ok {
		return
	}
	claims := middleware.GetClaims(c)
	resp, err := h.svc.Daily(c.Request.Context(), claims.Username, filter)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DailyCSV downloads the filtered day as CSV; the filename encodes the
// selected date and cashier scope.
func (h *ReportsHandler) DailyCSV(c *gin.Context) {
	filter, ok := bindReportFilter(c)
	if !ok {
		return
	}
	claims := middleware.GetClaims(c)
	data, filename, err := h.svc.DailyCSV(c.Request.Context(), claims.Username, filter)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", data)
}

func (h *ReportsHandler) DailyPDF(c *gin.Context) {
	filter, ok := bindReportFilter(c)
	if !ok {
		return
	}
	claims := middleware.GetClaims(c)
	path, err := h.svc.DailyPDF(c.Request.Context(), claims.Username, filter)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.FileAttachment(path, "daily_report.pdf")
}

// EmailDaily mails the daily CSV to the recipient. Delivery failure is a
// warning in the 200 response, not an error.
func (h *ReportsHandler) EmailDaily(c *gin.Context) {
	var req dto.EmailReportRequest
	if !bindAndValidate(c, &req) {
		return
	}
	claims := middleware.GetClaims(c)
	resp, err := h.svc.EmailDaily(c.Request.Context(), claims.Username, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
