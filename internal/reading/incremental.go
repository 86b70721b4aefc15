package reading

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/at-ishikawa/increader/internal/document"
	"github.com/at-ishikawa/increader/internal/learning"
	"github.com/at-ishikawa/increader/internal/srs"
)

// ErrInvalidProgress is returned when percent complete is outside [0, 100].
var ErrInvalidProgress = errors.New("reading: percent complete must be between 0 and 100")

// IncrementalManager tracks partial progress through documents and schedules the next session
// with SM-2.
type IncrementalManager struct {
	repo document.ReadingRepository
	options
}

// NewIncrementalManager creates a new IncrementalManager.
func NewIncrementalManager(repo document.ReadingRepository, opts ...Option) *IncrementalManager {
	return &IncrementalManager{
		repo:    repo,
		options: newOptions(opts),
	}
}

// AddDocument puts a document into the reading queue, due now.
// If it is already queued, only its priority changes.
func (m *IncrementalManager) AddDocument(ctx context.Context, documentID int64, priority float64) (*document.IncrementalReading, error) {
	priority = math.Max(0, math.Min(100, priority))
	now := m.now().UTC()

	var result *document.IncrementalReading
	err := m.repo.RunInTx(ctx, func(ctx context.Context, repo document.ReadingRepository) error {
		exists, err := repo.DocumentExists(ctx, documentID)
		if err != nil {
			return err
		}
		if !exists {
			return fmt.Errorf("document %d: %w", documentID, document.ErrNotFound)
		}

		reading, err := repo.FindByDocumentID(ctx, documentID)
		if err != nil {
			return err
		}
		if reading != nil {
			reading.ReadingPriority = priority
			if err := repo.Update(ctx, reading); err != nil {
				return err
			}
			result = reading
			return nil
		}

		reading = &document.IncrementalReading{
			DocumentID:      documentID,
			ReadingPriority: priority,
			Easiness:        learning.DefaultEasiness,
			ScheduleState:   document.ScheduleStateNew,
			NextReadDate:    &now,
		}
		if err := repo.Create(ctx, reading); err != nil {
			return err
		}
		result = reading
		return nil
	})
	if err != nil {
		logFailure("failed to add a document to the reading queue", err, slog.Int64("document_id", documentID))
		return nil, err
	}
	return result, nil
}

// ReadingQueue returns unfinished entries that are due, highest priority first.
func (m *IncrementalManager) ReadingQueue(ctx context.Context, limit int) ([]document.ReadingQueueEntry, error) {
	entries, err := m.repo.FindQueue(ctx, m.now().UTC(), limit)
	if err != nil {
		logFailure("failed to get the reading queue", err, slog.Int("limit", limit))
		return nil, err
	}
	return entries, nil
}

// RecordSession saves where the reader stopped and schedules the next session from a 0-5 grade.
func (m *IncrementalManager) RecordSession(ctx context.Context, readingID int64, position int, grade int, percentComplete float64) (*document.IncrementalReading, error) {
	if err := srs.ValidateGrade(grade); err != nil {
		return nil, err
	}
	if percentComplete < 0 || percentComplete > 100 {
		return nil, ErrInvalidProgress
	}

	now := m.now().UTC()
	var result *document.IncrementalReading
	err := m.repo.RunInTx(ctx, func(ctx context.Context, repo document.ReadingRepository) error {
		reading, err := repo.FindByID(ctx, readingID)
		if err != nil {
			return err
		}
		if reading == nil {
			return fmt.Errorf("incremental reading %d: %w", readingID, document.ErrNotFound)
		}

		reading.CurrentPosition = position
		reading.PercentComplete = percentComplete
		reading.LastReadDate = &now

		reading.Easiness = srs.UpdateEasinessFactor(reading.Easiness, grade)
		reading.Interval, reading.Repetitions = srs.CalculateNextInterval(reading.Interval, reading.Repetitions, reading.Easiness, grade)
		reading.ScheduleState = document.ScheduleStateFor(reading.Repetitions)
		next := now.AddDate(0, 0, reading.Interval)
		reading.NextReadDate = &next

		if err := repo.Update(ctx, reading); err != nil {
			return err
		}
		result = reading
		return nil
	})
	if err != nil {
		logFailure("failed to record a reading session", err, slog.Int64("reading_id", readingID), slog.Int("grade", grade))
		return nil, err
	}
	return result, nil
}
