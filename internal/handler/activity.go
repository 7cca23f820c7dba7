package handler

import (
	"net/http"
	"strconv"

	"github.com/danyol08/transaction/internal/service"

	"github.com/gin-gonic/gin"
)

type ActivityHandler struct{ svc service.ActivityService }

func NewActivityHandler(svc service.ActivityService) *ActivityHandler {
	return &ActivityHandler{svc: svc}
}

// Recent returns the latest administrative actions, most recent first.
// limit is optional and clamped server-side.
func (h *ActivityHandler) Recent(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	entries, err := h.svc.Recent(c.Request.Context(), limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}
