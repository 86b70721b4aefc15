package srs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/at-ishikawa/increader/internal/learning"
)

const workloadDateFormat = "2006-01-02"

// Result describes an item's schedule after a response.
type Result struct {
	ItemID      int64     `json:"item_id" yaml:"item_id"`
	Easiness    float64   `json:"easiness" yaml:"easiness"`
	Interval    int       `json:"interval" yaml:"interval"`
	Repetitions int       `json:"repetitions" yaml:"repetitions"`
	NextReview  time.Time `json:"next_review" yaml:"next_review"`
	Passed      bool      `json:"passed" yaml:"passed"`
	Difficulty  float64   `json:"difficulty" yaml:"difficulty"`
}

// Option configures a Scheduler.
type Option func(*Scheduler)

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(s *Scheduler) {
		s.now = now
	}
}

// WithLocation sets the time zone whose calendar days the workload is counted in.
func WithLocation(loc *time.Location) Option {
	return func(s *Scheduler) {
		s.location = loc
	}
}

// Scheduler records flashcard responses and reports what is due.
type Scheduler struct {
	repo     learning.ItemRepository
	now      func() time.Time
	location *time.Location
}

// NewScheduler creates a new Scheduler.
func NewScheduler(repo learning.ItemRepository, opts ...Option) *Scheduler {
	s := &Scheduler{
		repo:     repo,
		now:      time.Now,
		location: time.UTC,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ProcessResponse grades a review of an item and reschedules it.
// The review log and the item update are written in one transaction.
func (s *Scheduler) ProcessResponse(ctx context.Context, itemID int64, grade int, responseTimeMs *int) (*Result, error) {
	if err := ValidateGrade(grade); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	var result *Result
	err := s.repo.RunInTx(ctx, func(ctx context.Context, repo learning.ItemRepository) error {
		item, err := repo.FindByID(ctx, itemID)
		if err != nil {
			return err
		}
		if item == nil {
			return fmt.Errorf("learning item %d: %w", itemID, learning.ErrNotFound)
		}

		if err := repo.CreateReviewLog(ctx, &learning.ReviewLog{
			LearningItemID:    item.ID,
			ReviewDate:        now,
			Grade:             grade,
			ResponseTimeMs:    responseTimeMs,
			ScheduledInterval: item.Interval,
			ActualInterval:    daysSince(item.LastReviewed, now),
		}); err != nil {
			return err
		}

		item.Easiness = UpdateEasinessFactor(item.Easiness, grade)
		item.Interval, item.Repetitions = CalculateNextInterval(item.Interval, item.Repetitions, item.Easiness, grade)
		nextReview := now.AddDate(0, 0, item.Interval)
		item.NextReview = &nextReview
		item.LastReviewed = &now

		recent, err := repo.FindRecentReviewLogs(ctx, item.ID, difficultyWindow)
		if err != nil {
			return err
		}
		item.Difficulty = CalculateDifficulty(recent)

		if err := repo.Update(ctx, item); err != nil {
			return err
		}

		result = &Result{
			ItemID:      item.ID,
			Easiness:    item.Easiness,
			Interval:    item.Interval,
			Repetitions: item.Repetitions,
			NextReview:  nextReview,
			Passed:      grade >= PassThreshold,
			Difficulty:  item.Difficulty,
		}
		return nil
	})
	if err != nil {
		logFailure("failed to process a response", err, slog.Int64("item_id", itemID), slog.Int("grade", grade))
		return nil, err
	}

	slog.Default().Debug("processed a response",
		slog.Int64("item_id", itemID),
		slog.Int("grade", grade),
		slog.Int("interval", result.Interval),
	)
	return result, nil
}

// DueItems returns items due now or never reviewed, highest priority first.
func (s *Scheduler) DueItems(ctx context.Context, limit int, categoryID *int64) ([]learning.LearningItem, error) {
	items, err := s.repo.FindDue(ctx, s.now().UTC(), limit, categoryID)
	if err != nil {
		logFailure("failed to find due items", err, slog.Int("limit", limit))
		return nil, err
	}
	return items, nil
}

// EstimateWorkload counts scheduled reviews for each of the next days calendar days in the
// scheduler's location, starting today. The default location is UTC.
// Items that have never been scheduled are not counted.
func (s *Scheduler) EstimateWorkload(ctx context.Context, days int) (map[string]int, error) {
	workload := make(map[string]int, max(days, 0))
	if days <= 0 {
		return workload, nil
	}

	now := s.now().In(s.location)
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, s.location)
	for i := range days {
		workload[start.AddDate(0, 0, i).Format(workloadDateFormat)] = 0
	}

	reviews, err := s.repo.FindNextReviewsBetween(ctx, start.UTC(), start.AddDate(0, 0, days).UTC())
	if err != nil {
		logFailure("failed to estimate workload", err, slog.Int("days", days))
		return nil, err
	}
	for _, review := range reviews {
		key := review.In(s.location).Format(workloadDateFormat)
		if _, ok := workload[key]; ok {
			workload[key]++
		}
	}
	return workload, nil
}

// CreateClozeItem creates an unscheduled cloze item from an extract.
func (s *Scheduler) CreateClozeItem(ctx context.Context, extractID int64, text string, hint string) (*learning.LearningItem, error) {
	var item *learning.LearningItem
	err := s.repo.RunInTx(ctx, func(ctx context.Context, repo learning.ItemRepository) error {
		extract, err := repo.FindExtractByID(ctx, extractID)
		if err != nil {
			return err
		}
		if extract == nil {
			return fmt.Errorf("extract %d: %w", extractID, learning.ErrNotFound)
		}

		item, err = learning.NewClozeItem(*extract, text, hint, s.now().UTC())
		if err != nil {
			return err
		}
		return repo.Create(ctx, item)
	})
	if err != nil {
		logFailure("failed to create a cloze item", err, slog.Int64("extract_id", extractID))
		return nil, err
	}
	return item, nil
}

// logFailure logs expected failures at Warn and store failures at Error.
func logFailure(msg string, err error, attrs ...any) {
	attrs = append(attrs, slog.Any("error", err))
	if errors.Is(err, learning.ErrNotFound) || errors.Is(err, learning.ErrNoCloze) || errors.Is(err, ErrUnknownTreatment) {
		slog.Default().Warn(msg, attrs...)
		return
	}
	slog.Default().Error(msg, attrs...)
}
