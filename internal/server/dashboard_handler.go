package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	dashboard DashboardService
}

func NewDashboardHandler(dashboard DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard}
}

// GET /api/dashboard?days
func (h *DashboardHandler) Dashboard(c *gin.Context) {
	days, err := queryInt(c, "days", defaultWorkloadDays, 1, maxWorkloadDays)
	if err != nil {
		respondBadRequest(c, err)
		return
	}

	dashboard, err := h.dashboard.Dashboard(c.Request.Context(), days)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	RespondOK(c, dashboard)
}

func HealthCheck(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}
