package server

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/at-ishikawa/increader/internal/document"
	"github.com/at-ishikawa/increader/internal/reading"
)

func TestReadingHandler_Queue(t *testing.T) {
	r, svc := newTestRouter(t)
	svc.reading.EXPECT().ReadingQueue(gomock.Any(), defaultReadingLimit).Return(nil, nil)

	rec := doRequest(t, r, http.MethodGet, "/api/reading", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"entries": []}`, rec.Body.String())
}

func TestReadingHandler_Add(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setup      func(svc testServices)
		wantStatus int
	}{
		{
			name: "default priority",
			body: `{"document_id": 6}`,
			setup: func(svc testServices) {
				svc.reading.EXPECT().
					AddDocument(gomock.Any(), int64(6), 50.0).
					Return(&document.IncrementalReading{ID: 1, DocumentID: 6, ReadingPriority: 50}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "explicit priority",
			body: `{"document_id": 6, "priority": 80}`,
			setup: func(svc testServices) {
				svc.reading.EXPECT().
					AddDocument(gomock.Any(), int64(6), 80.0).
					Return(&document.IncrementalReading{ID: 1, DocumentID: 6, ReadingPriority: 80}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "priority above range",
			body:       `{"document_id": 6, "priority": 101}`,
			setup:      func(svc testServices) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "missing document",
			body:       `{"priority": 10}`,
			setup:      func(svc testServices) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "unknown document",
			body: `{"document_id": 77}`,
			setup: func(svc testServices) {
				svc.reading.EXPECT().
					AddDocument(gomock.Any(), int64(77), 50.0).
					Return(nil, document.ErrNotFound)
			},
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, svc := newTestRouter(t)
			tt.setup(svc)

			rec := doRequest(t, r, http.MethodPost, "/api/reading", tt.body)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestReadingHandler_RecordSession(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setup      func(svc testServices)
		wantStatus int
	}{
		{
			name: "recorded",
			body: `{"position": 120, "grade": 4, "percent_complete": 35.5}`,
			setup: func(svc testServices) {
				svc.reading.EXPECT().
					RecordSession(gomock.Any(), int64(2), 120, 4, 35.5).
					Return(&document.IncrementalReading{ID: 2, CurrentPosition: 120, ScheduleState: document.ScheduleStateLearning}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "progress out of range",
			body: `{"position": 10, "grade": 4, "percent_complete": 120}`,
			setup: func(svc testServices) {
				svc.reading.EXPECT().
					RecordSession(gomock.Any(), int64(2), 10, 4, 120.0).
					Return(nil, reading.ErrInvalidProgress)
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "negative position",
			body:       `{"position": -1, "grade": 4}`,
			setup:      func(svc testServices) {},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, svc := newTestRouter(t)
			tt.setup(svc)

			rec := doRequest(t, r, http.MethodPost, "/api/reading/2/sessions", tt.body)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
