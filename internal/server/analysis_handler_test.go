package server

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/at-ishikawa/increader/internal/learning"
	"github.com/at-ishikawa/increader/internal/statistics"
)

func TestAnalysisHandler_ItemMetrics(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		setup      func(svc testServices)
		wantStatus int
		wantCode   string
	}{
		{
			name: "metrics of an item",
			path: "/api/items/7/metrics",
			setup: func(svc testServices) {
				svc.analysis.EXPECT().ItemMetrics(gomock.Any(), int64(7)).Return(&statistics.ItemMetrics{
					ItemID:          7,
					TotalReviews:    3,
					ResponseTimesMs: []int{},
					DifficultyTrend: statistics.TrendMixed,
				}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "invalid id",
			path:       "/api/items/abc/metrics",
			setup:      func(svc testServices) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   CodeInvalidArgument,
		},
		{
			name: "unknown item",
			path: "/api/items/9/metrics",
			setup: func(svc testServices) {
				svc.analysis.EXPECT().ItemMetrics(gomock.Any(), int64(9)).
					Return(nil, fmt.Errorf("learning item 9: %w", learning.ErrNotFound))
			},
			wantStatus: http.StatusNotFound,
			wantCode:   CodeNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, svc := newTestRouter(t)
			tt.setup(svc)

			rec := doRequest(t, r, http.MethodGet, tt.path, "")
			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decodeBody[ErrorEnvelope](t, rec).Error.Code)
				return
			}
			got := decodeBody[statistics.ItemMetrics](t, rec)
			assert.Equal(t, int64(7), got.ItemID)
			assert.Equal(t, statistics.TrendMixed, got.DifficultyTrend)
		})
	}
}

func TestAnalysisHandler_Session(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		setup      func(svc testServices)
		wantStatus int
	}{
		{
			name: "default days",
			setup: func(svc testServices) {
				svc.analysis.EXPECT().SessionAnalysis(gomock.Any(), defaultSessionDays).
					Return(&statistics.SessionAnalysis{Days: defaultSessionDays, DailyCounts: []statistics.DailyReviewCount{}}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:  "custom days",
			query: "?days=30",
			setup: func(svc testServices) {
				svc.analysis.EXPECT().SessionAnalysis(gomock.Any(), 30).
					Return(&statistics.SessionAnalysis{Days: 30, DailyCounts: []statistics.DailyReviewCount{}}, nil)
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
			name:  "store failure",
			query: "?days=7",
			setup: func(svc testServices) {
				svc.analysis.EXPECT().SessionAnalysis(gomock.Any(), 7).Return(nil, errors.New("connection refused"))
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, svc := newTestRouter(t)
			tt.setup(svc)

			rec := doRequest(t, r, http.MethodGet, "/api/analysis/session"+tt.query, "")
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestAnalysisHandler_Efficiency(t *testing.T) {
	efficiency := &statistics.LearningEfficiency{
		ItemsAnalyzed:         2,
		AverageReviewsToLearn: 1.5,
		RetentionVsInterval:   []statistics.IntervalRetention{{Interval: 1, RetentionRate: 1, SampleSize: 2}},
	}

	tests := []struct {
		name       string
		query      string
		setup      func(svc testServices)
		wantStatus int
	}{
		{
			name: "every item",
			setup: func(svc testServices) {
				svc.analysis.EXPECT().LearningEfficiency(gomock.Any(), []int64{}).Return(efficiency, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:  "selected items",
			query: "?item_id=3&item_id=5",
			setup: func(svc testServices) {
				svc.analysis.EXPECT().LearningEfficiency(gomock.Any(), []int64{3, 5}).Return(efficiency, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "invalid item id",
			query:      "?item_id=3&item_id=x",
			setup:      func(svc testServices) {},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, svc := newTestRouter(t)
			tt.setup(svc)

			rec := doRequest(t, r, http.MethodGet, "/api/analysis/efficiency"+tt.query, "")
			assert.Equal(t, tt.wantStatus, rec.Code)
			if rec.Code == http.StatusOK {
				assert.Equal(t, *efficiency, decodeBody[statistics.LearningEfficiency](t, rec))
			}
		})
	}
}
