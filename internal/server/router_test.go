package server

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/at-ishikawa/increader/internal/statistics"
)

func TestHealthCheck(t *testing.T) {
	r, _ := newTestRouter(t)

	rec := doRequest(t, r, http.MethodGet, "/healthcheck", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestDashboardHandler_Dashboard(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		setup      func(svc testServices)
		wantStatus int
	}{
		{
			name:  "default days",
			query: "",
			setup: func(svc testServices) {
				svc.dashboard.EXPECT().
					Dashboard(gomock.Any(), defaultWorkloadDays).
					Return(&statistics.Dashboard{Days: defaultWorkloadDays, Workload: []statistics.DayWorkload{}}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "zero days",
			query:      "?days=0",
			setup:      func(svc testServices) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:  "report failure",
			query: "?days=3",
			setup: func(svc testServices) {
				svc.dashboard.EXPECT().
					Dashboard(gomock.Any(), 3).
					Return(nil, errors.New("Stats > connection refused"))
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, svc := newTestRouter(t)
			tt.setup(svc)

			rec := doRequest(t, r, http.MethodGet, "/api/dashboard"+tt.query, "")
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestNewRouter_OmitsMissingHandlers(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := NewRouter(RouterConfig{})

	rec := doRequest(t, r, http.MethodGet, "/api/queue/stats", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doRequest(t, r, http.MethodGet, "/healthcheck", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCORS(t *testing.T) {
	tests := []struct {
		name            string
		allowedOrigins  []string
		origin          string
		wantStatus      int
		wantAllowOrigin string
	}{
		{
			name:            "allowed origin",
			allowedOrigins:  []string{"http://localhost:5173"},
			origin:          "http://localhost:5173",
			wantStatus:      http.StatusOK,
			wantAllowOrigin: "http://localhost:5173",
		},
		{
			name:           "other origin",
			allowedOrigins: []string{"http://localhost:5173"},
			origin:         "http://evil.example.com",
			wantStatus:     http.StatusForbidden,
		},
		{
			name:       "no origins configured",
			origin:     "http://localhost:5173",
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gin.SetMode(gin.TestMode)
			r := gin.New()
			r.Use(CORS(tt.allowedOrigins))
			r.GET("/healthcheck", HealthCheck)

			req := httptest.NewRequest(http.MethodGet, "/healthcheck", nil)
			req.Header.Set("Origin", tt.origin)
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantAllowOrigin, rec.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}
