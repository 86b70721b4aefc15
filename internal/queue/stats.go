package queue

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/at-ishikawa/increader/internal/document"
)

const (
	// BucketNew holds documents that were never scheduled.
	BucketNew = "New"
	// BucketOverdue holds documents due before today.
	BucketOverdue = "Overdue"

	dateLayout = "2006-01-02"
)

// todayStart returns local midnight of the current day.
func (m *Manager) todayStart() time.Time {
	now := m.now().In(m.location)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, m.location)
}

// Stats counts documents against today's and this week's windows. Windows are half-open.
func (m *Manager) Stats(ctx context.Context) (*document.QueueCounts, error) {
	today := m.todayStart()
	counts, err := m.repo.CountQueue(ctx, today.UTC(), today.AddDate(0, 0, 1).UTC(), today.AddDate(0, 0, 7).UTC())
	if err != nil {
		slog.Default().Error("failed to count the queue", slog.Any("error", err))
		return nil, err
	}
	return counts, nil
}

// DocumentsByDueDate groups documents due in the next days by local date, highest priority first.
// Every day has a bucket, empty or not. New and Overdue buckets are added alongside.
func (m *Manager) DocumentsByDueDate(ctx context.Context, days int, categoryID *int64, includeNew bool) (map[string][]document.Document, error) {
	result, err := m.documentsByDueDate(ctx, days, categoryID, includeNew)
	if err != nil {
		slog.Default().Error("failed to group documents by due date",
			slog.Int("days", days),
			slog.Any("error", err),
		)
		return nil, err
	}
	return result, nil
}

func (m *Manager) documentsByDueDate(ctx context.Context, days int, categoryID *int64, includeNew bool) (map[string][]document.Document, error) {
	today := m.todayStart()
	result := make(map[string][]document.Document, max(days, 0)+2)

	if days > 0 {
		for i := range days {
			result[today.AddDate(0, 0, i).Format(dateLayout)] = []document.Document{}
		}
		docs, err := m.repo.FindScheduledBetween(ctx, today.UTC(), today.AddDate(0, 0, days).UTC(), categoryID)
		if err != nil {
			return nil, fmt.Errorf("FindScheduledBetween > %w", err)
		}
		for _, doc := range docs {
			key := doc.NextReadingDate.In(m.location).Format(dateLayout)
			if _, ok := result[key]; ok {
				result[key] = append(result[key], doc)
			}
		}
	}

	if includeNew {
		docs, err := m.repo.FindUnscheduled(ctx, categoryID)
		if err != nil {
			return nil, fmt.Errorf("FindUnscheduled > %w", err)
		}
		result[BucketNew] = nonNil(docs)
	}

	overdue, err := m.repo.FindOverdue(ctx, today.UTC(), categoryID)
	if err != nil {
		return nil, fmt.Errorf("FindOverdue > %w", err)
	}
	result[BucketOverdue] = nonNil(overdue)
	return result, nil
}

func nonNil(docs []document.Document) []document.Document {
	if docs == nil {
		return []document.Document{}
	}
	return docs
}
