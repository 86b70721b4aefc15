package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	mock_server "github.com/at-ishikawa/increader/internal/mocks/server"
)

type testServices struct {
	items     *mock_server.MockItemService
	leeches   *mock_server.MockLeechService
	scheduler *mock_server.MockDocumentScheduler
	queue     *mock_server.MockQueueService
	reading   *mock_server.MockReadingService
	dashboard *mock_server.MockDashboardService
	analysis  *mock_server.MockAnalysisService
}

func newTestRouter(t *testing.T) (*gin.Engine, testServices) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	svc := testServices{
		items:     mock_server.NewMockItemService(ctrl),
		leeches:   mock_server.NewMockLeechService(ctrl),
		scheduler: mock_server.NewMockDocumentScheduler(ctrl),
		queue:     mock_server.NewMockQueueService(ctrl),
		reading:   mock_server.NewMockReadingService(ctrl),
		dashboard: mock_server.NewMockDashboardService(ctrl),
		analysis:  mock_server.NewMockAnalysisService(ctrl),
	}
	r := NewRouter(RouterConfig{
		ItemHandler:      NewItemHandler(svc.items, svc.leeches),
		DocumentHandler:  NewDocumentHandler(svc.scheduler, svc.queue),
		QueueHandler:     NewQueueHandler(svc.queue),
		ReadingHandler:   NewReadingHandler(svc.reading),
		DashboardHandler: NewDashboardHandler(svc.dashboard),
		AnalysisHandler:  NewAnalysisHandler(svc.analysis),
	})
	return r, svc
}

func doRequest(t *testing.T, r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body == "" {
		reader = bytes.NewReader(nil)
	} else {
		reader = bytes.NewReader([]byte(body))
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var got T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	return got
}

func intPtr(v int) *int {
	return &v
}

func int64Ptr(v int64) *int64 {
	return &v
}
