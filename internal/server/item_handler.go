package server

import (
	"github.com/gin-gonic/gin"

	"github.com/at-ishikawa/increader/internal/srs"
)

const (
	defaultDueLimit     = 50
	defaultWorkloadDays = 7
	maxListLimit        = 1000
	maxWorkloadDays     = 365
)

type ItemHandler struct {
	items   ItemService
	leeches LeechService
}

func NewItemHandler(items ItemService, leeches LeechService) *ItemHandler {
	return &ItemHandler{items: items, leeches: leeches}
}

type responseRequest struct {
	Grade          *int `json:"grade" binding:"required"`
	ResponseTimeMs *int `json:"response_time_ms" binding:"omitempty,min=0"`
}

// POST /api/items/:id/responses
func (h *ItemHandler) ProcessResponse(c *gin.Context) {
	itemID, err := pathID(c, "id")
	if err != nil {
		respondBadRequest(c, err)
		return
	}
	var req responseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	result, err := h.items.ProcessResponse(c.Request.Context(), itemID, *req.Grade, req.ResponseTimeMs)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	RespondOK(c, result)
}

// GET /api/items/due?limit&category_id
func (h *ItemHandler) DueItems(c *gin.Context) {
	limit, err := queryInt(c, "limit", defaultDueLimit, 1, maxListLimit)
	if err != nil {
		respondBadRequest(c, err)
		return
	}
	categoryID, err := queryOptionalID(c, "category_id")
	if err != nil {
		respondBadRequest(c, err)
		return
	}

	items, err := h.items.DueItems(c.Request.Context(), limit, categoryID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"items": nonNilSlice(items)})
}

// GET /api/items/workload?days
func (h *ItemHandler) EstimateWorkload(c *gin.Context) {
	days, err := queryInt(c, "days", defaultWorkloadDays, 1, maxWorkloadDays)
	if err != nil {
		respondBadRequest(c, err)
		return
	}

	workload, err := h.items.EstimateWorkload(c.Request.Context(), days)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"workload": workload})
}

type clozeRequest struct {
	Text string `json:"text" binding:"required"`
	Hint string `json:"hint"`
}

// POST /api/extracts/:id/cloze
func (h *ItemHandler) CreateCloze(c *gin.Context) {
	extractID, err := pathID(c, "id")
	if err != nil {
		respondBadRequest(c, err)
		return
	}
	var req clozeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	item, err := h.items.CreateClozeItem(c.Request.Context(), extractID, req.Text, req.Hint)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	RespondOK(c, item)
}

// GET /api/items/leeches
func (h *ItemHandler) Leeches(c *gin.Context) {
	reports, err := h.leeches.DetectLeeches(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"leeches": nonNilSlice(reports)})
}

type treatmentRequest struct {
	Strategy srs.TreatmentStrategy `json:"strategy" binding:"required"`
}

// POST /api/items/:id/treatments
func (h *ItemHandler) ApplyTreatment(c *gin.Context) {
	itemID, err := pathID(c, "id")
	if err != nil {
		respondBadRequest(c, err)
		return
	}
	var req treatmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	item, err := h.leeches.ApplyTreatment(c.Request.Context(), itemID, req.Strategy)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	RespondOK(c, item)
}

func nonNilSlice[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
