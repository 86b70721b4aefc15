package server

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/at-ishikawa/increader/internal/document"
	"github.com/at-ishikawa/increader/internal/reading"
)

func TestDocumentHandler_Schedule(t *testing.T) {
	next := time.Date(2025, 4, 14, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		path       string
		body       string
		setup      func(svc testServices)
		wantStatus int
		wantBody   string
	}{
		{
			name: "scheduled",
			path: "/api/documents/3/schedule",
			body: `{"rating": 4}`,
			setup: func(svc testServices) {
				svc.scheduler.EXPECT().
					ScheduleDocument(gomock.Any(), int64(3), 4).
					Return(&reading.DocumentResult{
						DocumentID:         3,
						Title:              "Paper",
						Stability:          136,
						Difficulty:         4,
						ReadingCount:       4,
						NextReadingDate:    next,
						IntervalDays:       44,
						ActualIntervalDays: 10,
					}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody: `{
				"document_id": 3,
				"title": "Paper",
				"stability": 136,
				"difficulty": 4,
				"reading_count": 4,
				"next_reading_date": "2025-04-14T09:00:00Z",
				"interval_days": 44,
				"actual_interval_days": 10
			}`,
		},
		{
			name: "rating out of range",
			path: "/api/documents/3/schedule",
			body: `{"rating": 6}`,
			setup: func(svc testServices) {
				svc.scheduler.EXPECT().
					ScheduleDocument(gomock.Any(), int64(3), 6).
					Return(nil, fmt.Errorf("%w: 6", reading.ErrInvalidRating))
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "unknown document",
			path: "/api/documents/42/schedule",
			body: `{"rating": 3}`,
			setup: func(svc testServices) {
				svc.scheduler.EXPECT().
					ScheduleDocument(gomock.Any(), int64(42), 3).
					Return(nil, fmt.Errorf("document 42: %w", document.ErrNotFound))
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "missing rating",
			path:       "/api/documents/3/schedule",
			body:       `{}`,
			setup:      func(svc testServices) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "malformed body",
			path:       "/api/documents/3/schedule",
			body:       `{"rating":`,
			setup:      func(svc testServices) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "negative id",
			path:       "/api/documents/-1/schedule",
			body:       `{"rating": 3}`,
			setup:      func(svc testServices) {},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, svc := newTestRouter(t)
			tt.setup(svc)

			rec := doRequest(t, r, http.MethodPost, tt.path, tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, rec.Body.String())
			}
		})
	}
}

func TestDocumentHandler_UpdatePriority(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setup      func(svc testServices)
		wantStatus int
		wantBody   string
	}{
		{
			name: "clamped by the queue",
			body: `{"priority": 150}`,
			setup: func(svc testServices) {
				svc.queue.EXPECT().
					UpdateDocumentPriority(gomock.Any(), int64(8), 150).
					Return(100, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"document_id": 8, "priority": 100}`,
		},
		{
			name: "unknown document",
			body: `{"priority": 10}`,
			setup: func(svc testServices) {
				svc.queue.EXPECT().
					UpdateDocumentPriority(gomock.Any(), int64(8), 10).
					Return(0, document.ErrNotFound)
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "missing priority",
			body:       `{}`,
			setup:      func(svc testServices) {},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, svc := newTestRouter(t)
			tt.setup(svc)

			rec := doRequest(t, r, http.MethodPut, "/api/documents/8/priority", tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, rec.Body.String())
			}
		})
	}
}
