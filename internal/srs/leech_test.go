package srs

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/at-ishikawa/increader/internal/learning"
	mock_learning "github.com/at-ishikawa/increader/internal/mocks/learning"
)

func reviewLogs(start time.Time, grades ...int) []learning.ReviewLog {
	logs := make([]learning.ReviewLog, len(grades))
	for i, g := range grades {
		logs[i] = learning.ReviewLog{ID: int64(i + 1), ReviewDate: start.AddDate(0, 0, i), Grade: g}
	}
	return logs
}

func intPtr(v int) *int { return &v }

func TestAnalyzeLeech(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	item := learning.LearningItem{ID: 7, ItemType: learning.ItemTypeQA, Question: "q", Answer: "a"}

	tests := []struct {
		name         string
		logs         []learning.ReviewLog
		wantLeech    bool
		wantCriteria func(t *testing.T, c LeechCriteria)
		wantStrategy TreatmentStrategy
	}{
		{
			name:      "no logs",
			logs:      nil,
			wantLeech: false,
		},
		{
			name:      "healthy item",
			logs:      reviewLogs(start, 4, 5, 2, 4, 5, 4),
			wantLeech: false,
		},
		{
			name:      "recent failure ratio",
			logs:      reviewLogs(start, 4, 1, 4, 2),
			wantLeech: true,
			wantCriteria: func(t *testing.T, c LeechCriteria) {
				assert.Nil(t, c.TotalFailures)
				require.NotNil(t, c.RecentFailRatio)
				assert.InDelta(t, 0.5, *c.RecentFailRatio, 1e-9)
				assert.Nil(t, c.MaxConsecutiveFails)
			},
			wantStrategy: TreatmentMnemonic,
		},
		{
			name:      "consecutive failures",
			logs:      reviewLogs(start, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 1, 1, 1),
			wantLeech: true,
			wantCriteria: func(t *testing.T, c LeechCriteria) {
				require.NotNil(t, c.MaxConsecutiveFails)
				assert.Equal(t, 3, *c.MaxConsecutiveFails)
				assert.Nil(t, c.TotalFailures)
			},
			wantStrategy: TreatmentMnemonic,
		},
		{
			name:      "many failures calls for relearning",
			logs:      reviewLogs(start, 0, 1, 2, 0, 1),
			wantLeech: true,
			wantCriteria: func(t *testing.T, c LeechCriteria) {
				require.NotNil(t, c.TotalFailures)
				assert.Equal(t, 5, *c.TotalFailures)
				require.NotNil(t, c.MaxConsecutiveFails)
				assert.Equal(t, 5, *c.MaxConsecutiveFails)
			},
			wantStrategy: TreatmentRelearn,
		},
		{
			name:      "mostly failing recently calls for a hint",
			logs:      reviewLogs(start, 1, 4, 1, 4, 1, 1, 4, 1),
			wantLeech: true,
			wantCriteria: func(t *testing.T, c LeechCriteria) {
				require.NotNil(t, c.RecentFailRatio)
				assert.InDelta(t, 0.625, *c.RecentFailRatio, 1e-9)
			},
			wantStrategy: TreatmentHint,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report, ok := AnalyzeLeech(DefaultLeechConfig(), item, tt.logs)
			assert.Equal(t, tt.wantLeech, ok)
			if !tt.wantLeech {
				assert.Nil(t, report)
				return
			}
			require.NotNil(t, report)
			assert.Equal(t, int64(7), report.ItemID)
			assert.Equal(t, len(tt.logs), report.TotalReviews)
			assert.Equal(t, tt.logs[0].ReviewDate, report.FirstReviewed)
			assert.Equal(t, tt.logs[len(tt.logs)-1].ReviewDate, report.LastReviewed)
			tt.wantCriteria(t, report.Criteria)
			assert.Equal(t, tt.wantStrategy, report.Treatment.Strategy)
		})
	}
}

func TestSuggestTreatment(t *testing.T) {
	ratio := 0.7
	tests := []struct {
		name   string
		report LeechReport
		want   TreatmentStrategy
	}{
		{
			name:   "four consecutive failures",
			report: LeechReport{Criteria: LeechCriteria{MaxConsecutiveFails: intPtr(4)}, AvgResponseTimeMs: 20000},
			want:   TreatmentRelearn,
		},
		{
			name:   "slow answers",
			report: LeechReport{Criteria: LeechCriteria{MaxConsecutiveFails: intPtr(3), RecentFailRatio: &ratio}, AvgResponseTimeMs: 12000},
			want:   TreatmentSimplify,
		},
		{
			name:   "high recent failure ratio",
			report: LeechReport{Criteria: LeechCriteria{RecentFailRatio: &ratio}, AvgResponseTimeMs: 3000},
			want:   TreatmentHint,
		},
		{
			name:   "anything else",
			report: LeechReport{Criteria: LeechCriteria{TotalFailures: intPtr(5)}},
			want:   TreatmentMnemonic,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SuggestTreatment(tt.report)
			assert.Equal(t, tt.want, got.Strategy)
			assert.NotEmpty(t, got.Action)
			assert.NotEmpty(t, got.Reason)
		})
	}
}

func TestLeechAnalyzer_DetectLeeches(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("reports only leeches", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_learning.NewMockItemRepository(ctrl)
		repo.EXPECT().FindWithMinReviews(gomock.Any(), 3).
			Return([]learning.LearningItem{{ID: 1}, {ID: 2}}, nil)
		repo.EXPECT().FindReviewLogs(gomock.Any(), int64(1)).Return(reviewLogs(start, 5, 5, 5), nil)
		repo.EXPECT().FindReviewLogs(gomock.Any(), int64(2)).Return(reviewLogs(start, 1, 1, 1), nil)

		got, err := NewLeechAnalyzer(repo, DefaultLeechConfig()).DetectLeeches(context.Background())
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, int64(2), got[0].ItemID)
	})

	t.Run("store failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_learning.NewMockItemRepository(ctrl)
		repo.EXPECT().FindWithMinReviews(gomock.Any(), 3).Return([]learning.LearningItem{{ID: 1}}, nil)
		repo.EXPECT().FindReviewLogs(gomock.Any(), int64(1)).Return(nil, fmt.Errorf("connection refused"))

		_, err := NewLeechAnalyzer(repo, DefaultLeechConfig()).DetectLeeches(context.Background())
		assert.Error(t, err)
	})
}

func TestLeechAnalyzer_ApplyTreatment(t *testing.T) {
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	next := now.AddDate(0, 0, 20)

	tests := []struct {
		name     string
		strategy TreatmentStrategy
		item     *learning.LearningItem
		want     func(t *testing.T, item *learning.LearningItem)
		wantErr  error
	}{
		{
			name:     "relearn resets progress",
			strategy: TreatmentRelearn,
			item:     &learning.LearningItem{ID: 1, Question: "q", Interval: 20, Repetitions: 4, NextReview: &next},
			want: func(t *testing.T, item *learning.LearningItem) {
				assert.Equal(t, "[RELEARNING] q", item.Question)
				assert.Equal(t, 0, item.Interval)
				assert.Equal(t, 0, item.Repetitions)
			},
		},
		{
			name:     "simplify lowers difficulty",
			strategy: TreatmentSimplify,
			item:     &learning.LearningItem{ID: 1, Question: "q", Difficulty: 0.1},
			want: func(t *testing.T, item *learning.LearningItem) {
				assert.Equal(t, "[SIMPLIFIED] q", item.Question)
				assert.Equal(t, 0.0, item.Difficulty)
			},
		},
		{
			name:     "marker is not added twice",
			strategy: TreatmentHint,
			item:     &learning.LearningItem{ID: 1, Question: "[HINT] q", Interval: 20, Repetitions: 4},
			want: func(t *testing.T, item *learning.LearningItem) {
				assert.Equal(t, "[HINT] q", item.Question)
				assert.Equal(t, 20, item.Interval)
				assert.Equal(t, 4, item.Repetitions)
			},
		},
		{
			name:     "missing item",
			strategy: TreatmentMnemonic,
			wantErr:  learning.ErrNotFound,
		},
		{
			name:     "unknown strategy",
			strategy: "forget",
			wantErr:  ErrUnknownTreatment,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mock_learning.NewMockItemRepository(ctrl)
			if tt.strategy != "forget" {
				expectTx(repo)
				repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(tt.item, nil)
			}
			if tt.item != nil {
				repo.EXPECT().Update(gomock.Any(), tt.item).Return(nil)
			}

			analyzer := NewLeechAnalyzer(repo, DefaultLeechConfig())
			analyzer.now = fixedClock(now)
			got, err := analyzer.ApplyTreatment(context.Background(), 1, tt.strategy)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, got.NextReview)
			assert.Equal(t, now.AddDate(0, 0, 1), *got.NextReview)
			tt.want(t, got)
		})
	}
}
