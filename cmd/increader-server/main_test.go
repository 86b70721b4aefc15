package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/at-ishikawa/increader/internal/config"
	"github.com/at-ishikawa/increader/internal/testutil"
)

func TestNewHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		Queue: config.QueueConfig{Randomness: 0.4},
		Leech: config.LeechConfig{
			Threshold:        5,
			RecentWindow:     10,
			MaxFailRatio:     0.4,
			ConsecutiveFails: 3,
		},
	}
	db := testutil.NewSQLiteDB(t)
	testutil.CreateDocument(t, db, "Unscheduled")

	handler := newHandler(cfg, db)

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
		wantBody   string
	}{
		{
			name:       "health check",
			method:     http.MethodGet,
			path:       "/healthcheck",
			wantStatus: http.StatusOK,
		},
		{
			name:       "queue stats",
			method:     http.MethodGet,
			path:       "/api/queue/stats",
			wantStatus: http.StatusOK,
			wantBody:   `{"total_documents": 1, "due_today": 0, "due_this_week": 0, "new_documents": 1, "overdue": 0}`,
		},
		{
			name:       "configured randomness",
			method:     http.MethodGet,
			path:       "/api/queue/randomness",
			wantStatus: http.StatusOK,
			wantBody:   `{"factor": 0.4, "band": "low"}`,
		},
		{
			name:       "empty leech list",
			method:     http.MethodGet,
			path:       "/api/items/leeches",
			wantStatus: http.StatusOK,
			wantBody:   `{"leeches": []}`,
		},
		{
			name:       "priority without a body",
			method:     http.MethodPut,
			path:       "/api/documents/1/priority",
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, rec.Body.String())
			}
		})
	}
}
