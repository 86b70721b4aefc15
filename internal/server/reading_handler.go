package server

import (
	"github.com/gin-gonic/gin"
)

const defaultReadingLimit = 20

type ReadingHandler struct {
	reading ReadingService
}

func NewReadingHandler(reading ReadingService) *ReadingHandler {
	return &ReadingHandler{reading: reading}
}

// GET /api/reading?limit
func (h *ReadingHandler) Queue(c *gin.Context) {
	limit, err := queryInt(c, "limit", defaultReadingLimit, 1, maxListLimit)
	if err != nil {
		respondBadRequest(c, err)
		return
	}

	entries, err := h.reading.ReadingQueue(c.Request.Context(), limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"entries": nonNilSlice(entries)})
}

type addReadingRequest struct {
	DocumentID int64    `json:"document_id" binding:"required,gt=0"`
	Priority   *float64 `json:"priority" binding:"omitempty,min=0,max=100"`
}

// POST /api/reading
func (h *ReadingHandler) Add(c *gin.Context) {
	var req addReadingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}
	priority := 50.0
	if req.Priority != nil {
		priority = *req.Priority
	}

	entry, err := h.reading.AddDocument(c.Request.Context(), req.DocumentID, priority)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	RespondOK(c, entry)
}

type sessionRequest struct {
	Position        int     `json:"position" binding:"min=0"`
	Grade           *int    `json:"grade" binding:"required"`
	PercentComplete float64 `json:"percent_complete"`
}

// POST /api/reading/:id/sessions
func (h *ReadingHandler) RecordSession(c *gin.Context) {
	readingID, err := pathID(c, "id")
	if err != nil {
		respondBadRequest(c, err)
		return
	}
	var req sessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	entry, err := h.reading.RecordSession(c.Request.Context(), readingID, req.Position, *req.Grade, req.PercentComplete)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	RespondOK(c, entry)
}
