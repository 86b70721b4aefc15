// Package reading schedules whole documents for re-reading.
package reading

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/at-ishikawa/increader/internal/document"
	"github.com/at-ishikawa/increader/internal/random"
)

const (
	// StabilityScalar scales how much a good rating grows stability.
	StabilityScalar = 0.9
	// RetrievabilityThreshold is the predicted retention at which a document is due again.
	RetrievabilityThreshold = 0.7

	MinRating = 1
	MaxRating = 5

	MinDifficulty = 1.0
	MaxDifficulty = 10.0

	MinIntervalDays = 1.0
	MaxIntervalDays = 365.0

	initialStability  = 1.0
	initialDifficulty = 5.0
)

// ErrInvalidRating is returned when a rating is outside [1, 5].
var ErrInvalidRating = errors.New("reading: rating must be between 1 and 5")

// DocumentResult describes a document's schedule after a reading.
type DocumentResult struct {
	DocumentID         int64     `json:"document_id" yaml:"document_id"`
	Title              string    `json:"title" yaml:"title"`
	Stability          float64   `json:"stability" yaml:"stability"`
	Difficulty         float64   `json:"difficulty" yaml:"difficulty"`
	ReadingCount       int       `json:"reading_count" yaml:"reading_count"`
	NextReadingDate    time.Time `json:"next_reading_date" yaml:"next_reading_date"`
	IntervalDays       int       `json:"interval_days" yaml:"interval_days"`
	ActualIntervalDays int       `json:"actual_interval_days" yaml:"actual_interval_days"`
}

// Option configures the schedulers in this package.
type Option func(*options)

type options struct {
	now  func() time.Time
	rand random.Source
}

func newOptions(opts []Option) options {
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	if o.rand == nil {
		o.rand = random.NewSource()
	}
	return o
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

// WithRandom overrides the jitter source.
func WithRandom(src random.Source) Option {
	return func(o *options) {
		o.rand = src
	}
}

// UpdateMemoryState applies a rating to a document's stability and difficulty.
// Difficulty is clamped to [1, 10].
func UpdateMemoryState(stability, difficulty float64, rating int) (float64, float64) {
	var delta float64
	switch rating {
	case 1:
		delta = 1.0
		stability = math.Max(1.0, stability*0.5)
	case 2:
		delta = 0.5
		stability = math.Max(1.0, stability*0.7)
	case 3:
		stability *= 1 + 0.1*StabilityScalar
	case 4:
		delta = -0.5
		stability *= 1 + 0.2*StabilityScalar
	default:
		delta = -1.0
		stability *= 1 + 0.4*StabilityScalar
	}
	difficulty = math.Max(MinDifficulty, math.Min(MaxDifficulty, difficulty+delta))
	return stability, difficulty
}

// NextIntervalDays returns the days until retention is predicted to fall to the threshold,
// shortened for harder and higher-priority documents, with u in [0, 1) adding ±10% jitter.
func NextIntervalDays(stability, difficulty float64, priority int, u float64) int {
	interval := -stability * math.Log(RetrievabilityThreshold)
	interval *= 1 - ((difficulty-1)/9)*0.3
	interval *= 1 - ((float64(priority)-1)/99)*0.5
	interval *= 1 + (u*0.2 - 0.1)
	interval = math.Max(MinIntervalDays, math.Min(MaxIntervalDays, interval))
	return int(math.RoundToEven(interval))
}

// DocumentScheduler reschedules documents after they are read.
type DocumentScheduler struct {
	repo document.DocumentRepository
	options
}

// NewDocumentScheduler creates a new DocumentScheduler.
func NewDocumentScheduler(repo document.DocumentRepository, opts ...Option) *DocumentScheduler {
	return &DocumentScheduler{
		repo:    repo,
		options: newOptions(opts),
	}
}

// ScheduleDocument records a reading rated 1 (forgot) to 5 (very easy) and sets the next reading date.
func (s *DocumentScheduler) ScheduleDocument(ctx context.Context, documentID int64, rating int) (*DocumentResult, error) {
	if rating < MinRating || rating > MaxRating {
		return nil, ErrInvalidRating
	}

	now := s.now().UTC()
	var result *DocumentResult
	err := s.repo.RunInTx(ctx, func(ctx context.Context, repo document.DocumentRepository) error {
		doc, err := repo.FindByID(ctx, documentID)
		if err != nil {
			return err
		}
		if doc == nil {
			return fmt.Errorf("document %d: %w", documentID, document.ErrNotFound)
		}

		if doc.Stability == nil || doc.Difficulty == nil {
			stability, difficulty := initialStability, initialDifficulty
			doc.Stability = &stability
			doc.Difficulty = &difficulty
			doc.ReadingCount = 0
			doc.LastReadingDate = nil
		}
		doc.ReadingCount++

		var actualIntervalDays int
		if doc.LastReadingDate != nil {
			actualIntervalDays = int(now.Sub(*doc.LastReadingDate).Hours() / 24)
		}

		stability, difficulty := UpdateMemoryState(*doc.Stability, *doc.Difficulty, rating)
		intervalDays := NextIntervalDays(stability, difficulty, doc.Priority, s.rand.Float64())
		next := now.AddDate(0, 0, intervalDays)

		doc.Stability = &stability
		doc.Difficulty = &difficulty
		doc.NextReadingDate = &next
		doc.LastReadingDate = &now
		if err := repo.Update(ctx, doc); err != nil {
			return err
		}

		result = &DocumentResult{
			DocumentID:         doc.ID,
			Title:              doc.Title,
			Stability:          stability,
			Difficulty:         difficulty,
			ReadingCount:       doc.ReadingCount,
			NextReadingDate:    next,
			IntervalDays:       intervalDays,
			ActualIntervalDays: actualIntervalDays,
		}
		return nil
	})
	if err != nil {
		logFailure("failed to schedule a document", err, slog.Int64("document_id", documentID), slog.Int("rating", rating))
		return nil, err
	}

	slog.Default().Debug("scheduled a document",
		slog.Int64("document_id", documentID),
		slog.Int("rating", rating),
		slog.Int("interval_days", result.IntervalDays),
	)
	return result, nil
}

func logFailure(msg string, err error, attrs ...any) {
	attrs = append(attrs, slog.Any("error", err))
	if errors.Is(err, document.ErrNotFound) {
		slog.Default().Warn(msg, attrs...)
		return
	}
	slog.Default().Error(msg, attrs...)
}
