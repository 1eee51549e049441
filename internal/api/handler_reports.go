package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Dashboard handles GET /api/reports/dashboard.
func (h *Handler) Dashboard(c *gin.Context) {
	report, err := h.store.Dashboard(c.Request.Context(), time.Now().UTC())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}
