package queue

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/at-ishikawa/increader/internal/document"
	mock_document "github.com/at-ishikawa/increader/internal/mocks/document"
)

var tokyo = time.FixedZone("JST", 9*60*60)

// 05:00 on 2 March in Tokyo.
var statsNow = time.Date(2025, 3, 1, 20, 0, 0, 0, time.UTC)

func TestManager_Stats(t *testing.T) {
	todayStart := time.Date(2025, 3, 1, 15, 0, 0, 0, time.UTC)
	want := &document.QueueCounts{TotalDocuments: 10, DueToday: 2, DueThisWeek: 5, NewDocuments: 3, Overdue: 1}

	t.Run("windows start at local midnight", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_document.NewMockDocumentRepository(ctrl)
		repo.EXPECT().CountQueue(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, today, tomorrow, weekEnd time.Time) (*document.QueueCounts, error) {
				assert.True(t, todayStart.Equal(today), today)
				assert.True(t, todayStart.AddDate(0, 0, 1).Equal(tomorrow), tomorrow)
				assert.True(t, todayStart.AddDate(0, 0, 7).Equal(weekEnd), weekEnd)
				return want, nil
			})

		m := NewManager(repo, WithClock(fixedClock(statsNow)), WithLocation(tokyo))
		got, err := m.Stats(context.Background())
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("store failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_document.NewMockDocumentRepository(ctrl)
		repo.EXPECT().CountQueue(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, fmt.Errorf("connection refused"))

		_, err := NewManager(repo).Stats(context.Background())
		assert.EqualError(t, err, "connection refused")
	})
}

func TestManager_DocumentsByDueDate(t *testing.T) {
	todayStart := time.Date(2025, 3, 1, 15, 0, 0, 0, time.UTC)
	dueTomorrow := time.Date(2025, 3, 2, 16, 0, 0, 0, time.UTC)
	dueToday := time.Date(2025, 3, 1, 16, 0, 0, 0, time.UTC)
	categoryID := int64(3)

	scheduled := []document.Document{
		{ID: 1, Priority: 90, NextReadingDate: &dueTomorrow},
		{ID: 2, Priority: 40, NextReadingDate: &dueToday},
	}

	tests := []struct {
		name       string
		days       int
		includeNew bool
		setup      func(repo *mock_document.MockDocumentRepository)
		want       map[string][]int64
	}{
		{
			name:       "buckets by local date",
			days:       3,
			includeNew: true,
			setup: func(repo *mock_document.MockDocumentRepository) {
				repo.EXPECT().FindScheduledBetween(gomock.Any(), gomock.Any(), gomock.Any(), &categoryID).
					DoAndReturn(func(_ context.Context, start, end time.Time, _ *int64) ([]document.Document, error) {
						assert.True(t, todayStart.Equal(start), start)
						assert.True(t, todayStart.AddDate(0, 0, 3).Equal(end), end)
						return scheduled, nil
					})
				repo.EXPECT().FindUnscheduled(gomock.Any(), &categoryID).Return(docs(5, 6), nil)
				repo.EXPECT().FindOverdue(gomock.Any(), gomock.Any(), &categoryID).Return(docs(7), nil)
			},
			want: map[string][]int64{
				"2025-03-02":  {2},
				"2025-03-03":  {1},
				"2025-03-04":  {},
				BucketNew:     {5, 6},
				BucketOverdue: {7},
			},
		},
		{
			name: "without new documents",
			days: 1,
			setup: func(repo *mock_document.MockDocumentRepository) {
				repo.EXPECT().FindScheduledBetween(gomock.Any(), gomock.Any(), gomock.Any(), &categoryID).Return(nil, nil)
				repo.EXPECT().FindOverdue(gomock.Any(), gomock.Any(), &categoryID).Return(nil, nil)
			},
			want: map[string][]int64{
				"2025-03-02":  {},
				BucketOverdue: {},
			},
		},
		{
			name:       "no days",
			days:       0,
			includeNew: true,
			setup: func(repo *mock_document.MockDocumentRepository) {
				repo.EXPECT().FindUnscheduled(gomock.Any(), &categoryID).Return(nil, nil)
				repo.EXPECT().FindOverdue(gomock.Any(), gomock.Any(), &categoryID).Return(docs(7), nil)
			},
			want: map[string][]int64{
				BucketNew:     {},
				BucketOverdue: {7},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mock_document.NewMockDocumentRepository(ctrl)
			tt.setup(repo)

			m := NewManager(repo, WithClock(fixedClock(statsNow)), WithLocation(tokyo))
			got, err := m.DocumentsByDueDate(context.Background(), tt.days, &categoryID, tt.includeNew)
			require.NoError(t, err)

			gotIDs := make(map[string][]int64, len(got))
			for key, bucket := range got {
				gotIDs[key] = ids(bucket)
			}
			assert.Equal(t, tt.want, gotIDs)
		})
	}
}

func TestManager_DocumentsByDueDate_StoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock_document.NewMockDocumentRepository(ctrl)
	repo.EXPECT().FindScheduledBetween(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("connection refused"))

	_, err := NewManager(repo).DocumentsByDueDate(context.Background(), 7, nil, true)
	assert.ErrorContains(t, err, "connection refused")
}
