package reading

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
	"github.com/at-ishikawa/increader/internal/srs"
)

func expectReadingTx(repo *mock_document.MockReadingRepository) {
	repo.EXPECT().RunInTx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, document.ReadingRepository) error) error {
			return fn(ctx, repo)
		})
}

func TestIncrementalManager_AddDocument(t *testing.T) {
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		priority float64
		setup    func(repo *mock_document.MockReadingRepository)
		want     *document.IncrementalReading
		wantErr  error
	}{
		{
			name:     "new entry is due now",
			priority: 70,
			setup: func(repo *mock_document.MockReadingRepository) {
				expectReadingTx(repo)
				repo.EXPECT().DocumentExists(gomock.Any(), int64(3)).Return(true, nil)
				repo.EXPECT().FindByDocumentID(gomock.Any(), int64(3)).Return(nil, nil)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, reading *document.IncrementalReading) error {
						reading.ID = 11
						return nil
					})
			},
			want: &document.IncrementalReading{
				ID: 11, DocumentID: 3, ReadingPriority: 70, Easiness: 2.5,
				ScheduleState: document.ScheduleStateNew, NextReadDate: &now,
			},
		},
		{
			name:     "existing entry only changes priority",
			priority: 150,
			setup: func(repo *mock_document.MockReadingRepository) {
				expectReadingTx(repo)
				repo.EXPECT().DocumentExists(gomock.Any(), int64(3)).Return(true, nil)
				repo.EXPECT().FindByDocumentID(gomock.Any(), int64(3)).Return(&document.IncrementalReading{
					ID: 5, DocumentID: 3, ReadingPriority: 10, Repetitions: 4, ScheduleState: document.ScheduleStateReview,
				}, nil)
				repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
			},
			want: &document.IncrementalReading{
				ID: 5, DocumentID: 3, ReadingPriority: 100, Repetitions: 4, ScheduleState: document.ScheduleStateReview,
			},
		},
		{
			name:     "unknown document",
			priority: 50,
			setup: func(repo *mock_document.MockReadingRepository) {
				expectReadingTx(repo)
				repo.EXPECT().DocumentExists(gomock.Any(), int64(3)).Return(false, nil)
			},
			wantErr: document.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mock_document.NewMockReadingRepository(ctrl)
			tt.setup(repo)

			got, err := NewIncrementalManager(repo, WithClock(fixedClock(now))).AddDocument(context.Background(), 3, tt.priority)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIncrementalManager_ReadingQueue(t *testing.T) {
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	ctrl := gomock.NewController(t)
	repo := mock_document.NewMockReadingRepository(ctrl)
	entries := []document.ReadingQueueEntry{
		{IncrementalReading: document.IncrementalReading{ID: 1, ReadingPriority: 90}, DocumentTitle: "A"},
	}
	repo.EXPECT().FindQueue(gomock.Any(), now, 20).Return(entries, nil)

	got, err := NewIncrementalManager(repo, WithClock(fixedClock(now))).ReadingQueue(context.Background(), 20)
	require.NoError(t, err)
	assert.Equal(t, entries, got)
}

func TestIncrementalManager_RecordSession(t *testing.T) {
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		grade     int
		percent   float64
		current   *document.IncrementalReading
		wantState document.ScheduleState
		wantDays  int
		wantReps  int
		wantErr   error
	}{
		{
			name:      "first pass moves to learning",
			grade:     4,
			percent:   20,
			current:   &document.IncrementalReading{ID: 1, Easiness: 2.5},
			wantState: document.ScheduleStateLearning,
			wantDays:  1,
			wantReps:  1,
		},
		{
			name:      "third pass moves to review",
			grade:     5,
			percent:   60,
			current:   &document.IncrementalReading{ID: 1, Easiness: 2.5, Interval: 6, Repetitions: 2},
			wantState: document.ScheduleStateReview,
			wantDays:  16,
			wantReps:  3,
		},
		{
			name:      "failure returns to new",
			grade:     1,
			percent:   60,
			current:   &document.IncrementalReading{ID: 1, Easiness: 2.5, Interval: 16, Repetitions: 3},
			wantState: document.ScheduleStateNew,
			wantDays:  1,
			wantReps:  0,
		},
		{
			name:    "missing entry",
			grade:   3,
			percent: 10,
			wantErr: document.ErrNotFound,
		},
		{
			name:    "invalid grade",
			grade:   6,
			wantErr: srs.ErrInvalidGrade,
		},
		{
			name:    "invalid progress",
			grade:   3,
			percent: 101,
			wantErr: ErrInvalidProgress,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mock_document.NewMockReadingRepository(ctrl)
			if tt.wantErr == nil || tt.wantErr == document.ErrNotFound {
				expectReadingTx(repo)
				repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(tt.current, nil)
			}
			if tt.current != nil {
				repo.EXPECT().Update(gomock.Any(), tt.current).Return(nil)
			}

			got, err := NewIncrementalManager(repo, WithClock(fixedClock(now))).
				RecordSession(context.Background(), 1, 1200, tt.grade, tt.percent)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 1200, got.CurrentPosition)
			assert.Equal(t, tt.percent, got.PercentComplete)
			assert.Equal(t, tt.wantState, got.ScheduleState)
			assert.Equal(t, tt.wantDays, got.Interval)
			assert.Equal(t, tt.wantReps, got.Repetitions)
			assert.Equal(t, now, *got.LastReadDate)
			assert.Equal(t, now.AddDate(0, 0, tt.wantDays), *got.NextReadDate)
		})
	}
}

func TestIncrementalManager_RecordSession_StoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock_document.NewMockReadingRepository(ctrl)
	expectReadingTx(repo)
	repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(nil, fmt.Errorf("connection refused"))

	_, err := NewIncrementalManager(repo).RecordSession(context.Background(), 1, 0, 3, 0)
	assert.EqualError(t, err, "connection refused")
}
