package statistics

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sort"
	"time"

	"github.com/at-ishikawa/increader/internal/learning"
)

//go:generate mockgen -source=item_analysis.go -destination=../mocks/statistics/mock_item_analysis.go -package=mock_statistics

const (
	// learnedGrade is the first grade that counts an item as learned.
	learnedGrade = 4

	leechWindow   = 5
	leechFailures = 3
	trendWindow   = 3

	// defaultDifficulty is reported for items that were never reviewed.
	defaultDifficulty = 0.5
	// slowResponseMs caps the response time that raises the difficulty.
	slowResponseMs = 15000
)

// DifficultyTrend summarises the grades of the latest reviews.
type DifficultyTrend string

const (
	TrendNew       DifficultyTrend = "new"
	TrendEasy      DifficultyTrend = "easy"
	TrendDifficult DifficultyTrend = "difficult"
	TrendMixed     DifficultyTrend = "mixed"
)

// ItemHistory loads flashcards and their review logs.
type ItemHistory interface {
	FindByID(ctx context.Context, id int64) (*learning.LearningItem, error)
	FindReviewLogs(ctx context.Context, itemID int64) ([]learning.ReviewLog, error)
	FindReviewLogsSince(ctx context.Context, since time.Time) ([]learning.ReviewLog, error)
	FindAllReviewLogs(ctx context.Context) ([]learning.ReviewLog, error)
}

// ItemMetrics describes how well a single flashcard is remembered.
type ItemMetrics struct {
	ItemID                int64           `json:"item_id" yaml:"item_id"`
	TotalReviews          int             `json:"total_reviews" yaml:"total_reviews"`
	SuccessRate           float64         `json:"success_rate" yaml:"success_rate"`
	AverageInterval       float64         `json:"average_interval" yaml:"average_interval"`
	AverageResponseTimeMs float64         `json:"average_response_time_ms" yaml:"average_response_time_ms"`
	ResponseTimesMs       []int           `json:"response_times_ms" yaml:"response_times_ms"`
	RetentionRate         float64         `json:"retention_rate" yaml:"retention_rate"`
	PredictedRecall       float64         `json:"predicted_recall" yaml:"predicted_recall"`
	OptimalInterval       int             `json:"optimal_interval" yaml:"optimal_interval"`
	Difficulty            float64         `json:"difficulty" yaml:"difficulty"`
	IsLeech               bool            `json:"is_leech" yaml:"is_leech"`
	DifficultyTrend       DifficultyTrend `json:"difficulty_trend" yaml:"difficulty_trend"`
}

// DailyReviewCount is the number of reviews on a UTC date.
type DailyReviewCount struct {
	Date  string `json:"date" yaml:"date"`
	Count int    `json:"count" yaml:"count"`
}

// SessionAnalysis summarises the reviews of the last days.
type SessionAnalysis struct {
	Days             int                `json:"days" yaml:"days"`
	TotalReviews     int                `json:"total_reviews" yaml:"total_reviews"`
	DailyAverage     float64            `json:"daily_average" yaml:"daily_average"`
	SuccessRate      float64            `json:"success_rate" yaml:"success_rate"`
	ImprovementTrend float64            `json:"improvement_trend" yaml:"improvement_trend"`
	DailyCounts      []DailyReviewCount `json:"daily_counts" yaml:"daily_counts"`
}

// IntervalRetention is the share of successful reviews after an interval range.
// Intervals are grouped into 1 (under 5 days), 5 (5 to 9 days) and 10 (10 days or more).
type IntervalRetention struct {
	Interval      int     `json:"interval" yaml:"interval"`
	RetentionRate float64 `json:"retention_rate" yaml:"retention_rate"`
	SampleSize    int     `json:"sample_size" yaml:"sample_size"`
}

// LearningEfficiency describes how many reviews items need and how retention falls with intervals.
type LearningEfficiency struct {
	ItemsAnalyzed         int                 `json:"items_analyzed" yaml:"items_analyzed"`
	AverageReviewsToLearn float64             `json:"average_reviews_to_learn" yaml:"average_reviews_to_learn"`
	RetentionVsInterval   []IntervalRetention `json:"retention_vs_interval" yaml:"retention_vs_interval"`
}

// AnalyzerOption configures an ItemAnalyzer.
type AnalyzerOption func(*ItemAnalyzer)

// WithClock overrides the time source.
func WithClock(now func() time.Time) AnalyzerOption {
	return func(a *ItemAnalyzer) {
		a.now = now
	}
}

// ItemAnalyzer computes per-item and per-period review metrics. It never writes to the store.
type ItemAnalyzer struct {
	items ItemHistory
	now   func() time.Time
}

// NewItemAnalyzer creates a new ItemAnalyzer.
func NewItemAnalyzer(items ItemHistory, opts ...AnalyzerOption) *ItemAnalyzer {
	a := &ItemAnalyzer{
		items: items,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// ItemMetrics analyses the review history of an item.
func (a *ItemAnalyzer) ItemMetrics(ctx context.Context, itemID int64) (*ItemMetrics, error) {
	item, err := a.items.FindByID(ctx, itemID)
	if err != nil {
		slog.Default().Error("failed to find the item", slog.Int64("item_id", itemID), slog.Any("error", err))
		return nil, err
	}
	if item == nil {
		return nil, fmt.Errorf("learning item %d: %w", itemID, learning.ErrNotFound)
	}

	logs, err := a.items.FindReviewLogs(ctx, itemID)
	if err != nil {
		slog.Default().Error("failed to load review logs", slog.Int64("item_id", itemID), slog.Any("error", err))
		return nil, err
	}
	return itemMetrics(itemID, logs, a.now().UTC()), nil
}

// itemMetrics expects logs oldest first.
func itemMetrics(itemID int64, logs []learning.ReviewLog, now time.Time) *ItemMetrics {
	metrics := &ItemMetrics{
		ItemID:          itemID,
		ResponseTimesMs: []int{},
		OptimalInterval: 1,
		Difficulty:      defaultDifficulty,
		DifficultyTrend: TrendNew,
	}
	if len(logs) == 0 {
		return metrics
	}

	metrics.TotalReviews = len(logs)
	metrics.SuccessRate = successRate(logs)

	var gaps []int
	for i := 1; i < len(logs); i++ {
		gaps = append(gaps, daysBetween(logs[i-1].ReviewDate, logs[i].ReviewDate))
	}
	metrics.AverageInterval = mean(gaps)

	for _, log := range logs {
		if log.ResponseTimeMs != nil && *log.ResponseTimeMs > 0 {
			metrics.ResponseTimesMs = append(metrics.ResponseTimesMs, *log.ResponseTimeMs)
		}
	}
	metrics.AverageResponseTimeMs = mean(metrics.ResponseTimesMs)

	failed := 0
	for _, log := range logs[max(0, len(logs)-leechWindow):] {
		if !passed(log) {
			failed++
		}
	}
	metrics.IsLeech = failed >= leechFailures
	metrics.DifficultyTrend = difficultyTrend(logs)
	metrics.Difficulty = difficulty(logs, metrics.AverageResponseTimeMs)
	metrics.RetentionRate, metrics.PredictedRecall, metrics.OptimalInterval = retention(logs, now)
	return metrics
}

func difficultyTrend(logs []learning.ReviewLog) DifficultyTrend {
	if len(logs) < trendWindow {
		return TrendNew
	}
	easy, hard := true, true
	for _, log := range logs[len(logs)-trendWindow:] {
		easy = easy && log.Grade >= learnedGrade
		hard = hard && log.Grade < lapseGrade
	}
	switch {
	case easy:
		return TrendEasy
	case hard:
		return TrendDifficult
	default:
		return TrendMixed
	}
}

// difficulty weights later reviews up to twice as much as the first one and maps grade 0 to 1 and grade 5 to 0.
// Slow answers scale the result by up to 1.2, fast ones by down to 0.8.
func difficulty(logs []learning.ReviewLog, averageResponseTimeMs float64) float64 {
	var sum, weights float64
	for i, log := range logs {
		w := 0.5
		if len(logs) > 1 {
			w += 0.5 * float64(i) / float64(len(logs)-1)
		}
		sum += math.Max(0, 1-float64(log.Grade)/5) * w
		weights += w
	}
	d := sum / weights
	if averageResponseTimeMs > 0 {
		d *= 0.8 + math.Min(averageResponseTimeMs, slowResponseMs)/slowResponseMs*0.4
	}
	return math.Min(1, math.Max(0, d))
}

// retention compares each review with the interval scheduled by the review before it.
// The optimal interval is the average actual interval scaled by the retention rate.
func retention(logs []learning.ReviewLog, now time.Time) (rate, predictedRecall float64, optimalInterval int) {
	var actual []int
	correct := 0
	for i := 1; i < len(logs); i++ {
		if logs[i-1].ScheduledInterval <= 0 {
			continue
		}
		actual = append(actual, daysBetween(logs[i-1].ReviewDate, logs[i].ReviewDate))
		if passed(logs[i]) {
			correct++
		}
	}
	if len(actual) == 0 {
		return 0, 0, 1
	}

	rate = float64(correct) / float64(len(actual))
	optimal := mean(actual) * (rate + 0.1)
	if optimal > 0 {
		elapsed := float64(daysBetween(logs[len(logs)-1].ReviewDate, now))
		predictedRecall = math.Max(0, 1-elapsed/(optimal*2))
	}
	return rate, predictedRecall, max(1, int(math.Round(optimal)))
}

// SessionAnalysis summarises the reviews of the last days, counted back from now.
func (a *ItemAnalyzer) SessionAnalysis(ctx context.Context, days int) (*SessionAnalysis, error) {
	days = max(days, 1)
	logs, err := a.items.FindReviewLogsSince(ctx, a.now().UTC().AddDate(0, 0, -days))
	if err != nil {
		slog.Default().Error("failed to load recent review logs", slog.Int("days", days), slog.Any("error", err))
		return nil, err
	}
	sortByReviewDate(logs)

	analysis := &SessionAnalysis{
		Days:         days,
		TotalReviews: len(logs),
		DailyCounts:  []DailyReviewCount{},
	}
	if len(logs) == 0 {
		return analysis, nil
	}

	byDate := make(map[string]int)
	for _, log := range logs {
		byDate[log.ReviewDate.UTC().Format(dateLayout)]++
	}
	for date, count := range byDate {
		analysis.DailyCounts = append(analysis.DailyCounts, DailyReviewCount{Date: date, Count: count})
	}
	sort.Slice(analysis.DailyCounts, func(i, j int) bool {
		return analysis.DailyCounts[i].Date < analysis.DailyCounts[j].Date
	})

	analysis.DailyAverage = float64(len(logs)) / float64(min(days, len(byDate)))
	analysis.SuccessRate = successRate(logs)
	if len(logs) >= 10 {
		half := len(logs) / 2
		analysis.ImprovementTrend = successRate(logs[half:]) - successRate(logs[:half])
	}
	return analysis, nil
}

// LearningEfficiency analyses the given items, or every reviewed item when itemIDs is empty.
// Items without reviews are not counted.
func (a *ItemAnalyzer) LearningEfficiency(ctx context.Context, itemIDs []int64) (*LearningEfficiency, error) {
	histories, err := a.histories(ctx, itemIDs)
	if err != nil {
		slog.Default().Error("failed to load review histories", slog.Int("items", len(itemIDs)), slog.Any("error", err))
		return nil, err
	}

	type bucket struct{ total, correct int }
	buckets := make(map[int]*bucket)
	efficiency := &LearningEfficiency{RetentionVsInterval: []IntervalRetention{}}
	var learnedAfter []int
	for _, logs := range histories {
		if len(logs) == 0 {
			continue
		}
		efficiency.ItemsAnalyzed++
		for i, log := range logs {
			if log.Grade >= learnedGrade {
				learnedAfter = append(learnedAfter, i+1)
				break
			}
		}
		for i := 1; i < len(logs); i++ {
			key := intervalRange(daysBetween(logs[i-1].ReviewDate, logs[i].ReviewDate))
			if buckets[key] == nil {
				buckets[key] = &bucket{}
			}
			buckets[key].total++
			if passed(logs[i]) {
				buckets[key].correct++
			}
		}
	}

	efficiency.AverageReviewsToLearn = mean(learnedAfter)
	for interval, b := range buckets {
		efficiency.RetentionVsInterval = append(efficiency.RetentionVsInterval, IntervalRetention{
			Interval:      interval,
			RetentionRate: float64(b.correct) / float64(b.total),
			SampleSize:    b.total,
		})
	}
	sort.Slice(efficiency.RetentionVsInterval, func(i, j int) bool {
		return efficiency.RetentionVsInterval[i].Interval < efficiency.RetentionVsInterval[j].Interval
	})
	return efficiency, nil
}

// histories returns the review logs of each item, oldest first.
func (a *ItemAnalyzer) histories(ctx context.Context, itemIDs []int64) (map[int64][]learning.ReviewLog, error) {
	result := make(map[int64][]learning.ReviewLog)
	if len(itemIDs) > 0 {
		for _, id := range itemIDs {
			logs, err := a.items.FindReviewLogs(ctx, id)
			if err != nil {
				return nil, fmt.Errorf("FindReviewLogs(%d) > %w", id, err)
			}
			result[id] = logs
		}
		return result, nil
	}

	logs, err := a.items.FindAllReviewLogs(ctx)
	if err != nil {
		return nil, fmt.Errorf("FindAllReviewLogs > %w", err)
	}
	sortByReviewDate(logs)
	for _, log := range logs {
		result[log.LearningItemID] = append(result[log.LearningItemID], log)
	}
	return result, nil
}

func intervalRange(days int) int {
	return min(10, max(1, days/5*5))
}

func passed(log learning.ReviewLog) bool {
	return log.Grade >= lapseGrade
}

func successRate(logs []learning.ReviewLog) float64 {
	if len(logs) == 0 {
		return 0
	}
	n := 0
	for _, log := range logs {
		if passed(log) {
			n++
		}
	}
	return float64(n) / float64(len(logs))
}

// daysBetween counts whole days from a to b.
func daysBetween(a, b time.Time) int {
	return int(math.Floor(b.Sub(a).Hours() / 24))
}

func mean(values []int) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0
	for _, v := range values {
		sum += v
	}
	return float64(sum) / float64(len(values))
}

func sortByReviewDate(logs []learning.ReviewLog) {
	sort.SliceStable(logs, func(i, j int) bool {
		return logs[i].ReviewDate.Before(logs[j].ReviewDate)
	})
}
