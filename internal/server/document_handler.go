package server

import (
	"github.com/gin-gonic/gin"
)

type DocumentHandler struct {
	scheduler DocumentScheduler
	queue     QueueService
}

func NewDocumentHandler(scheduler DocumentScheduler, queue QueueService) *DocumentHandler {
	return &DocumentHandler{scheduler: scheduler, queue: queue}
}

type scheduleRequest struct {
	Rating *int `json:"rating" binding:"required"`
}

// POST /api/documents/:id/schedule
func (h *DocumentHandler) Schedule(c *gin.Context) {
	documentID, err := pathID(c, "id")
	if err != nil {
		respondBadRequest(c, err)
		return
	}
	var req scheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	result, err := h.scheduler.ScheduleDocument(c.Request.Context(), documentID, *req.Rating)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	RespondOK(c, result)
}

type priorityRequest struct {
	Priority *int `json:"priority" binding:"required"`
}

// PUT /api/documents/:id/priority
func (h *DocumentHandler) UpdatePriority(c *gin.Context) {
	documentID, err := pathID(c, "id")
	if err != nil {
		respondBadRequest(c, err)
		return
	}
	var req priorityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	priority, err := h.queue.UpdateDocumentPriority(c.Request.Context(), documentID, *req.Priority)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"document_id": documentID, "priority": priority})
}
