package server

import (
	"github.com/gin-gonic/gin"

	"github.com/at-ishikawa/increader/internal/document"
	"github.com/at-ishikawa/increader/internal/queue"
)

const (
	defaultNextCount = 10
	maxNextCount     = 100
	defaultDueDays   = 7
)

type QueueHandler struct {
	queue QueueService
}

func NewQueueHandler(svc QueueService) *QueueHandler {
	return &QueueHandler{queue: svc}
}

// GET /api/queue/next?count&category_id&tag=a&tag=b
func (h *QueueHandler) Next(c *gin.Context) {
	count, err := queryInt(c, "count", defaultNextCount, 1, maxNextCount)
	if err != nil {
		respondBadRequest(c, err)
		return
	}
	categoryID, err := queryOptionalID(c, "category_id")
	if err != nil {
		respondBadRequest(c, err)
		return
	}

	randomness := h.queue.Randomness()
	docs, err := h.queue.NextDocuments(c.Request.Context(), count, document.Filter{
		CategoryID: categoryID,
		Tags:       c.QueryArray("tag"),
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{
		"documents":  docs,
		"randomness": randomness,
		"band":       queue.BandFor(randomness),
	})
}

// GET /api/queue/stats
func (h *QueueHandler) Stats(c *gin.Context) {
	counts, err := h.queue.Stats(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	RespondOK(c, counts)
}

// GET /api/queue/due?days&category_id&include_new
func (h *QueueHandler) DueByDate(c *gin.Context) {
	days, err := queryInt(c, "days", defaultDueDays, 0, maxWorkloadDays)
	if err != nil {
		respondBadRequest(c, err)
		return
	}
	categoryID, err := queryOptionalID(c, "category_id")
	if err != nil {
		respondBadRequest(c, err)
		return
	}
	includeNew, err := queryBool(c, "include_new", true)
	if err != nil {
		respondBadRequest(c, err)
		return
	}

	buckets, err := h.queue.DocumentsByDueDate(c.Request.Context(), days, categoryID, includeNew)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"buckets": buckets})
}

type randomnessResponse struct {
	Factor float64    `json:"factor"`
	Band   queue.Band `json:"band"`
}

// GET /api/queue/randomness
func (h *QueueHandler) Randomness(c *gin.Context) {
	f := h.queue.Randomness()
	RespondOK(c, randomnessResponse{Factor: f, Band: queue.BandFor(f)})
}

type randomnessRequest struct {
	Factor *float64 `json:"factor" binding:"required"`
}

// PUT /api/queue/randomness
func (h *QueueHandler) SetRandomness(c *gin.Context) {
	var req randomnessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}
	f := h.queue.SetRandomness(*req.Factor)
	RespondOK(c, randomnessResponse{Factor: f, Band: queue.BandFor(f)})
}
