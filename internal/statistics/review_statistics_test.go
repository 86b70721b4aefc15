package statistics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/at-ishikawa/increader/internal/learning"
)

func reviewLog(id, itemID int64, date string, grade int) learning.ReviewLog {
	reviewDate, _ := time.Parse(time.DateOnly, date)
	return learning.ReviewLog{ID: id, LearningItemID: itemID, ReviewDate: reviewDate, Grade: grade}
}

func TestCalculateStatistics(t *testing.T) {
	logs := []learning.ReviewLog{
		reviewLog(1, 1, "2024-12-30", 4),
		reviewLog(2, 1, "2025-01-05", 2),
		reviewLog(3, 2, "2025-01-06", 5),
		reviewLog(4, 1, "2025-01-07", 1),
		reviewLog(5, 2, "2025-02-01", 4),
		reviewLog(6, 3, "2025-02-02", 0),
		{ID: 7, LearningItemID: 4, Grade: 5},
	}

	tests := []struct {
		name  string
		year  int
		month int
		want  StatisticsResult
	}{
		{
			name: "no filter",
			want: StatisticsResult{
				Periods: []ReviewStatistics{
					{Period: "2025-02", ReviewsCount: 2, ItemsReviewed: 2, FirstReviews: 1, LapsesCount: 1, LapsesUnique: 1},
					{Period: "2025-01", ReviewsCount: 3, ItemsReviewed: 2, FirstReviews: 1, LapsesCount: 2, LapsesUnique: 1},
					{Period: "2024-12", ReviewsCount: 1, ItemsReviewed: 1, FirstReviews: 1},
				},
				Aggregate: AggregateStatistics{ReviewsCount: 6, ItemsReviewed: 3, FirstReviews: 3, LapsesCount: 3, LapsesUnique: 2},
			},
		},
		{
			name: "year filter keeps first reviews from earlier years out",
			year: 2025,
			want: StatisticsResult{
				Periods: []ReviewStatistics{
					{Period: "2025-02", ReviewsCount: 2, ItemsReviewed: 2, FirstReviews: 1, LapsesCount: 1, LapsesUnique: 1},
					{Period: "2025-01", ReviewsCount: 3, ItemsReviewed: 2, FirstReviews: 1, LapsesCount: 2, LapsesUnique: 1},
				},
				Aggregate: AggregateStatistics{ReviewsCount: 5, ItemsReviewed: 3, FirstReviews: 2, LapsesCount: 3, LapsesUnique: 2},
			},
		},
		{
			name:  "month filter",
			year:  2025,
			month: 1,
			want: StatisticsResult{
				Periods: []ReviewStatistics{
					{Period: "2025-01", ReviewsCount: 3, ItemsReviewed: 2, FirstReviews: 1, LapsesCount: 2, LapsesUnique: 1},
				},
				Aggregate: AggregateStatistics{ReviewsCount: 3, ItemsReviewed: 2, FirstReviews: 1, LapsesCount: 2, LapsesUnique: 1},
			},
		},
		{
			name:  "nothing matches",
			year:  2023,
			month: 1,
			want:  StatisticsResult{Periods: []ReviewStatistics{}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CalculateStatistics(logs, tt.year, tt.month))
		})
	}
}

func TestMatchesFilter(t *testing.T) {
	assert.True(t, matchesFilter(2025, 1, 0, 0))
	assert.True(t, matchesFilter(2025, 1, 2025, 0))
	assert.True(t, matchesFilter(2025, 1, 2025, 1))
	assert.False(t, matchesFilter(2025, 1, 2025, 2))
	assert.False(t, matchesFilter(2024, 1, 2025, 0))
}
