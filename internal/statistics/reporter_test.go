package statistics

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/at-ishikawa/increader/internal/document"
	"github.com/at-ishikawa/increader/internal/learning"
	mock_document "github.com/at-ishikawa/increader/internal/mocks/document"
	mock_statistics "github.com/at-ishikawa/increader/internal/mocks/statistics"
	"github.com/at-ishikawa/increader/internal/queue"
)

type reporterMocks struct {
	items   *mock_statistics.MockReviewForecaster
	queue   *mock_statistics.MockQueueReporter
	reviews *mock_statistics.MockReviewLogSource
}

func newReporter(t *testing.T) (*Reporter, reporterMocks) {
	ctrl := gomock.NewController(t)
	m := reporterMocks{
		items:   mock_statistics.NewMockReviewForecaster(ctrl),
		queue:   mock_statistics.NewMockQueueReporter(ctrl),
		reviews: mock_statistics.NewMockReviewLogSource(ctrl),
	}
	return NewReporter(m.items, m.queue, m.reviews), m
}

func TestReporter_Dashboard(t *testing.T) {
	counts := &document.QueueCounts{TotalDocuments: 12, DueToday: 1, DueThisWeek: 3, NewDocuments: 4, Overdue: 2}
	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		setup   func(m reporterMocks)
		want    *Dashboard
		wantErr string
	}{
		{
			name: "combines items and documents per day",
			setup: func(m reporterMocks) {
				m.queue.EXPECT().Stats(gomock.Any()).Return(counts, nil)
				m.queue.EXPECT().Location().Return(time.UTC)
				m.queue.EXPECT().DocumentsByDueDate(gomock.Any(), 3, nil, false).Return(map[string][]document.Document{
					"2025-03-01":        {{ID: 1}},
					"2025-03-02":        {{ID: 2}, {ID: 3}},
					"2025-03-03":        {},
					queue.BucketOverdue: {{ID: 4}, {ID: 5}},
				}, nil)
				m.items.EXPECT().FindNextReviewsBetween(gomock.Any(), start, start.AddDate(0, 0, 3)).Return([]time.Time{
					start.Add(time.Hour), start.Add(23 * time.Hour), start.AddDate(0, 0, 2),
				}, nil)
			},
			want: &Dashboard{
				Days:  3,
				Queue: *counts,
				Workload: []DayWorkload{
					{Date: "2025-03-01", Items: 2, Documents: 1, Total: 3},
					{Date: "2025-03-02", Items: 0, Documents: 2, Total: 2},
					{Date: "2025-03-03", Items: 1, Documents: 0, Total: 1},
				},
				OverdueDocuments: 2,
				TotalItems:       3,
				TotalDocuments:   3,
			},
		},
		{
			name: "any failure fails the dashboard",
			setup: func(m reporterMocks) {
				m.queue.EXPECT().Stats(gomock.Any()).Return(nil, fmt.Errorf("connection refused"))
				m.queue.EXPECT().DocumentsByDueDate(gomock.Any(), 3, nil, false).Return(map[string][]document.Document{}, nil).AnyTimes()
			},
			wantErr: "Stats > connection refused",
		},
		{
			name: "flashcard forecast failure",
			setup: func(m reporterMocks) {
				m.queue.EXPECT().Stats(gomock.Any()).Return(counts, nil).AnyTimes()
				m.queue.EXPECT().DocumentsByDueDate(gomock.Any(), 3, nil, false).Return(map[string][]document.Document{
					"2025-03-01": {}, "2025-03-02": {}, "2025-03-03": {},
				}, nil)
				m.queue.EXPECT().Location().Return(time.UTC)
				m.items.EXPECT().FindNextReviewsBetween(gomock.Any(), start, start.AddDate(0, 0, 3)).
					Return(nil, fmt.Errorf("connection refused"))
			},
			wantErr: "itemsDueOn > FindNextReviewsBetween > connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reporter, m := newReporter(t)
			tt.setup(m)

			got, err := reporter.Dashboard(context.Background(), 3)
			if tt.wantErr != "" {
				assert.EqualError(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReporter_Dashboard_NonUTCLocation(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*60*60)
	now := time.Date(2026, 10, 19, 8, 0, 0, 0, tokyo)
	// Midnight of 2026-10-19 in Tokyo.
	start := time.Date(2026, 10, 18, 15, 0, 0, 0, time.UTC)
	// 00:30 on 2026-10-19 in Tokyo, still 2026-10-18 in UTC.
	due := time.Date(2026, 10, 18, 15, 30, 0, 0, time.UTC)

	ctrl := gomock.NewController(t)
	documents := mock_document.NewMockDocumentRepository(ctrl)
	documents.EXPECT().CountQueue(gomock.Any(), start, start.AddDate(0, 0, 1), start.AddDate(0, 0, 7)).
		Return(&document.QueueCounts{TotalDocuments: 1, DueToday: 1, DueThisWeek: 1}, nil)
	documents.EXPECT().FindScheduledBetween(gomock.Any(), start, start.AddDate(0, 0, 7), nil).
		Return([]document.Document{{ID: 1, NextReadingDate: &due}}, nil)
	documents.EXPECT().FindOverdue(gomock.Any(), start, nil).Return(nil, nil)

	items := mock_statistics.NewMockReviewForecaster(ctrl)
	items.EXPECT().FindNextReviewsBetween(gomock.Any(), start, start.AddDate(0, 0, 7)).
		Return([]time.Time{due, start.AddDate(0, 0, 6).Add(23 * time.Hour)}, nil)

	manager := queue.NewManager(documents,
		queue.WithClock(func() time.Time { return now }),
		queue.WithLocation(tokyo),
	)
	reporter := NewReporter(items, manager, mock_statistics.NewMockReviewLogSource(ctrl))

	got, err := reporter.Dashboard(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, got.Workload, 7)
	assert.Equal(t, DayWorkload{Date: "2026-10-19", Items: 1, Documents: 1, Total: 2}, got.Workload[0])
	assert.Equal(t, DayWorkload{Date: "2026-10-25", Items: 1, Documents: 0, Total: 1}, got.Workload[6])
	assert.Equal(t, 2, got.TotalItems)
	assert.Equal(t, 1, got.TotalDocuments)
}

func TestReporter_ReviewStatistics(t *testing.T) {
	t.Run("groups review logs", func(t *testing.T) {
		reporter, m := newReporter(t)
		m.reviews.EXPECT().FindAllReviewLogs(gomock.Any()).Return([]learning.ReviewLog{
			reviewLog(1, 1, "2025-01-05", 4),
			reviewLog(2, 1, "2025-01-06", 1),
		}, nil)

		got, err := reporter.ReviewStatistics(context.Background(), 0, 0)
		require.NoError(t, err)
		assert.Equal(t, &StatisticsResult{
			Periods: []ReviewStatistics{
				{Period: "2025-01", ReviewsCount: 2, ItemsReviewed: 1, FirstReviews: 1, LapsesCount: 1, LapsesUnique: 1},
			},
			Aggregate: AggregateStatistics{ReviewsCount: 2, ItemsReviewed: 1, FirstReviews: 1, LapsesCount: 1, LapsesUnique: 1},
		}, got)
	})

	t.Run("store failure", func(t *testing.T) {
		reporter, m := newReporter(t)
		m.reviews.EXPECT().FindAllReviewLogs(gomock.Any()).Return(nil, fmt.Errorf("connection refused"))

		_, err := reporter.ReviewStatistics(context.Background(), 0, 0)
		assert.EqualError(t, err, "connection refused")
	})
}
