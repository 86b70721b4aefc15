package server

import (
	"github.com/gin-gonic/gin"
)

const defaultSessionDays = 7

type AnalysisHandler struct {
	analysis AnalysisService
}

func NewAnalysisHandler(analysis AnalysisService) *AnalysisHandler {
	return &AnalysisHandler{analysis: analysis}
}

// GET /api/items/:id/metrics
func (h *AnalysisHandler) ItemMetrics(c *gin.Context) {
	itemID, err := pathID(c, "id")
	if err != nil {
		respondBadRequest(c, err)
		return
	}

	metrics, err := h.analysis.ItemMetrics(c.Request.Context(), itemID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	RespondOK(c, metrics)
}

// GET /api/analysis/session?days
func (h *AnalysisHandler) Session(c *gin.Context) {
	days, err := queryInt(c, "days", defaultSessionDays, 1, maxWorkloadDays)
	if err != nil {
		respondBadRequest(c, err)
		return
	}

	analysis, err := h.analysis.SessionAnalysis(c.Request.Context(), days)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	RespondOK(c, analysis)
}

// GET /api/analysis/efficiency?item_id=1&item_id=2
// Without item_id every reviewed item is analysed.
func (h *AnalysisHandler) Efficiency(c *gin.Context) {
	itemIDs, err := queryIDs(c, "item_id")
	if err != nil {
		respondBadRequest(c, err)
		return
	}

	efficiency, err := h.analysis.LearningEfficiency(c.Request.Context(), itemIDs)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	RespondOK(c, efficiency)
}
