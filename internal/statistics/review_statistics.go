package statistics

import (
	"fmt"
	"sort"

	"github.com/at-ishikawa/increader/internal/learning"
)

// ReviewStatistics holds review counts for a month ("2025-01").
// FirstReviews counts items reviewed for the first time ever; lapses are reviews graded below 3.
type ReviewStatistics struct {
	Period        string `json:"period" yaml:"period"`
	ReviewsCount  int    `json:"reviews_count" yaml:"reviews_count"`
	ItemsReviewed int    `json:"items_reviewed" yaml:"items_reviewed"`
	FirstReviews  int    `json:"first_reviews" yaml:"first_reviews"`
	LapsesCount   int    `json:"lapses_count" yaml:"lapses_count"`
	LapsesUnique  int    `json:"lapses_unique" yaml:"lapses_unique"`
}

// AggregateStatistics holds totals across all periods. Unique counts are deduplicated across periods.
type AggregateStatistics struct {
	ReviewsCount  int `json:"reviews_count" yaml:"reviews_count"`
	ItemsReviewed int `json:"items_reviewed" yaml:"items_reviewed"`
	FirstReviews  int `json:"first_reviews" yaml:"first_reviews"`
	LapsesCount   int `json:"lapses_count" yaml:"lapses_count"`
	LapsesUnique  int `json:"lapses_unique" yaml:"lapses_unique"`
}

// StatisticsResult holds both per-period and aggregate statistics
type StatisticsResult struct {
	Periods   []ReviewStatistics  `json:"periods" yaml:"periods"`
	Aggregate AggregateStatistics `json:"aggregate" yaml:"aggregate"`
}

const lapseGrade = 3

type periodData struct {
	reviews      int
	itemsUnique  map[int64]struct{}
	firstReviews int
	lapses       int
	lapsesUnique map[int64]struct{}
}

type globalData struct {
	itemsUnique  map[int64]struct{}
	lapsesUnique map[int64]struct{}
}

// CalculateStatistics groups review logs by month.
// It accepts optional year and month filters (0 means no filter).
// An item's first review is its earliest log, even when that log is filtered out.
func CalculateStatistics(logs []learning.ReviewLog, year, month int) StatisticsResult {
	firstReviewed := make(map[int64]learning.ReviewLog)
	for _, log := range logs {
		if log.ReviewDate.IsZero() {
			continue
		}
		first, ok := firstReviewed[log.LearningItemID]
		if !ok || log.ReviewDate.Before(first.ReviewDate) || (log.ReviewDate.Equal(first.ReviewDate) && log.ID < first.ID) {
			firstReviewed[log.LearningItemID] = log
		}
	}

	stats := make(map[string]*periodData)
	global := globalData{
		itemsUnique:  make(map[int64]struct{}),
		lapsesUnique: make(map[int64]struct{}),
	}
	for _, log := range logs {
		if log.ReviewDate.IsZero() {
			continue
		}
		logYear := log.ReviewDate.Year()
		logMonth := int(log.ReviewDate.Month())
		if !matchesFilter(logYear, logMonth, year, month) {
			continue
		}

		period := fmt.Sprintf("%d-%02d", logYear, logMonth)
		data := ensurePeriodExists(stats, period)
		data.reviews++
		data.itemsUnique[log.LearningItemID] = struct{}{}
		global.itemsUnique[log.LearningItemID] = struct{}{}
		if firstReviewed[log.LearningItemID].ID == log.ID {
			data.firstReviews++
		}
		if log.Grade < lapseGrade {
			data.lapses++
			data.lapsesUnique[log.LearningItemID] = struct{}{}
			global.lapsesUnique[log.LearningItemID] = struct{}{}
		}
	}

	return buildResult(stats, global)
}

func ensurePeriodExists(stats map[string]*periodData, period string) *periodData {
	if stats[period] == nil {
		stats[period] = &periodData{
			itemsUnique:  make(map[int64]struct{}),
			lapsesUnique: make(map[int64]struct{}),
		}
	}
	return stats[period]
}

func matchesFilter(logYear, logMonth, filterYear, filterMonth int) bool {
	if filterYear == 0 {
		return true
	}
	if logYear != filterYear {
		return false
	}
	if filterMonth == 0 {
		return true
	}
	return logMonth == filterMonth
}

func buildResult(stats map[string]*periodData, global globalData) StatisticsResult {
	periods := make([]ReviewStatistics, 0, len(stats))

	var aggregate AggregateStatistics
	for period, data := range stats {
		periods = append(periods, ReviewStatistics{
			Period:        period,
			ReviewsCount:  data.reviews,
			ItemsReviewed: len(data.itemsUnique),
			FirstReviews:  data.firstReviews,
			LapsesCount:   data.lapses,
			LapsesUnique:  len(data.lapsesUnique),
		})
		aggregate.ReviewsCount += data.reviews
		aggregate.FirstReviews += data.firstReviews
		aggregate.LapsesCount += data.lapses
	}
	aggregate.ItemsReviewed = len(global.itemsUnique)
	aggregate.LapsesUnique = len(global.lapsesUnique)

	// Newest first
	sort.Slice(periods, func(i, j int) bool {
		return periods[i].Period > periods[j].Period
	})

	return StatisticsResult{
		Periods:   periods,
		Aggregate: aggregate,
	}
}
