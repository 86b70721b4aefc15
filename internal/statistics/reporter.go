// Package statistics reports upcoming workload and review history.
package statistics

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/at-ishikawa/increader/internal/document"
	"github.com/at-ishikawa/increader/internal/learning"
	"github.com/at-ishikawa/increader/internal/queue"
)

//go:generate mockgen -source=reporter.go -destination=../mocks/statistics/mock_reporter.go -package=mock_statistics

const dateLayout = "2006-01-02"

// ReviewForecaster lists when scheduled flashcards are due next.
type ReviewForecaster interface {
	FindNextReviewsBetween(ctx context.Context, start, end time.Time) ([]time.Time, error)
}

// QueueReporter summarises the document queue. Location is the time zone its day buckets use.
type QueueReporter interface {
	Stats(ctx context.Context) (*document.QueueCounts, error)
	DocumentsByDueDate(ctx context.Context, days int, categoryID *int64, includeNew bool) (map[string][]document.Document, error)
	Location() *time.Location
}

// ReviewLogSource loads the review history.
type ReviewLogSource interface {
	FindAllReviewLogs(ctx context.Context) ([]learning.ReviewLog, error)
}

// DayWorkload is the number of flashcards and documents due on a day.
type DayWorkload struct {
	Date      string `json:"date" yaml:"date"`
	Items     int    `json:"items" yaml:"items"`
	Documents int    `json:"documents" yaml:"documents"`
	Total     int    `json:"total" yaml:"total"`
}

// Dashboard combines the flashcard and document forecasts with the queue counts.
type Dashboard struct {
	Days             int                  `json:"days" yaml:"days"`
	Queue            document.QueueCounts `json:"queue" yaml:"queue"`
	Workload         []DayWorkload        `json:"workload" yaml:"workload"`
	OverdueDocuments int                  `json:"overdue_documents" yaml:"overdue_documents"`
	TotalItems       int                  `json:"total_items" yaml:"total_items"`
	TotalDocuments   int                  `json:"total_documents" yaml:"total_documents"`
}

// Reporter builds read-only reports. It never writes to the store.
type Reporter struct {
	items   ReviewForecaster
	queue   QueueReporter
	reviews ReviewLogSource
}

// NewReporter creates a new Reporter.
func NewReporter(items ReviewForecaster, documents QueueReporter, reviews ReviewLogSource) *Reporter {
	return &Reporter{
		items:   items,
		queue:   documents,
		reviews: reviews,
	}
}

// Dashboard gathers the forecasts for the next days. Every row is a calendar day of the queue's
// location, and flashcards are counted on the day they fall due in that location.
func (r *Reporter) Dashboard(ctx context.Context, days int) (*Dashboard, error) {
	var (
		counts    *document.QueueCounts
		byDueDate map[string][]document.Document
		dates     []string
		itemsDue  map[string]int
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if counts, err = r.queue.Stats(ctx); err != nil {
			return fmt.Errorf("Stats > %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if byDueDate, err = r.queue.DocumentsByDueDate(ctx, days, nil, false); err != nil {
			return fmt.Errorf("DocumentsByDueDate > %w", err)
		}
		dates = dueDates(byDueDate)
		if itemsDue, err = r.itemsDueOn(ctx, dates); err != nil {
			return fmt.Errorf("itemsDueOn > %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		slog.Default().Error("failed to build the dashboard", slog.Int("days", days), slog.Any("error", err))
		return nil, err
	}

	dashboard := &Dashboard{
		Days:             days,
		Queue:            *counts,
		Workload:         make([]DayWorkload, 0, len(dates)),
		OverdueDocuments: len(byDueDate[queue.BucketOverdue]),
	}
	for _, date := range dates {
		w := DayWorkload{
			Date:      date,
			Items:     itemsDue[date],
			Documents: len(byDueDate[date]),
		}
		w.Total = w.Items + w.Documents
		dashboard.Workload = append(dashboard.Workload, w)
		dashboard.TotalItems += w.Items
		dashboard.TotalDocuments += w.Documents
	}
	return dashboard, nil
}

// dueDates returns the day buckets in ascending order, without the New and Overdue buckets.
func dueDates(byDueDate map[string][]document.Document) []string {
	dates := make([]string, 0, len(byDueDate))
	for key := range byDueDate {
		if key == queue.BucketOverdue || key == queue.BucketNew {
			continue
		}
		dates = append(dates, key)
	}
	sort.Strings(dates)
	return dates
}

// itemsDueOn counts the flashcards due on each of the consecutive dates, in the queue's location.
func (r *Reporter) itemsDueOn(ctx context.Context, dates []string) (map[string]int, error) {
	result := make(map[string]int, len(dates))
	if len(dates) == 0 {
		return result, nil
	}

	loc := r.queue.Location()
	start, err := time.ParseInLocation(dateLayout, dates[0], loc)
	if err != nil {
		return nil, fmt.Errorf("time.ParseInLocation(%s) > %w", dates[0], err)
	}
	due, err := r.items.FindNextReviewsBetween(ctx, start.UTC(), start.AddDate(0, 0, len(dates)).UTC())
	if err != nil {
		return nil, fmt.Errorf("FindNextReviewsBetween > %w", err)
	}
	for _, d := range due {
		result[d.In(loc).Format(dateLayout)]++
	}
	return result, nil
}

// ReviewStatistics loads every review log and groups it by month.
func (r *Reporter) ReviewStatistics(ctx context.Context, year, month int) (*StatisticsResult, error) {
	logs, err := r.reviews.FindAllReviewLogs(ctx)
	if err != nil {
		slog.Default().Error("failed to load review logs", slog.Any("error", err))
		return nil, err
	}
	result := CalculateStatistics(logs, year, month)
	return &result, nil
}
