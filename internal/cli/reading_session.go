package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/at-ishikawa/increader/internal/document"
	"github.com/at-ishikawa/increader/internal/reading"
)

const skipKey = "s"

//go:generate mockgen -source=reading_session.go -destination=../mocks/cli/mock_reading_session.go -package=mock_cli

// DocumentQueue picks the documents to read next.
type DocumentQueue interface {
	NextDocuments(ctx context.Context, count int, f document.Filter) ([]document.Document, error)
}

// DocumentRater schedules a document after it was read.
type DocumentRater interface {
	ScheduleDocument(ctx context.Context, documentID int64, rating int) (*reading.DocumentResult, error)
}

// ReadingSessionCLI presents queued documents and records a rating for each one read
type ReadingSessionCLI struct {
	*InteractiveCLI
	rater     DocumentRater
	documents []document.Document
	scheduled int
	skipped   int
}

func NewReadingSessionCLI(ctx context.Context, queue DocumentQueue, rater DocumentRater, count int, f document.Filter, opts ...Option) (*ReadingSessionCLI, error) {
	docs, err := queue.NextDocuments(ctx, count, f)
	if err != nil {
		return nil, fmt.Errorf("queue.NextDocuments() > %w", err)
	}
	return &ReadingSessionCLI{
		InteractiveCLI: newInteractiveCLI(opts...),
		rater:          rater,
		documents:      docs,
	}, nil
}

// Summary returns how many documents were scheduled and skipped.
func (r *ReadingSessionCLI) Summary() (scheduled int, skipped int) {
	return r.scheduled, r.skipped
}

func (r *ReadingSessionCLI) Session(ctx context.Context) error {
	if len(r.documents) == 0 {
		_, _ = fmt.Fprintf(r.stdoutWriter, "No more documents in the queue! Scheduled %d, skipped %d.\n", r.scheduled, r.skipped)
		return errEnd
	}
	doc := r.documents[0]

	_, _ = r.bold.Fprintf(r.stdoutWriter, "%s\n", doc.Title)
	_, _ = fmt.Fprintf(r.stdoutWriter, "  priority %d, read %d times", doc.Priority, doc.ReadingCount)
	if doc.LastReadingDate != nil {
		_, _ = fmt.Fprintf(r.stdoutWriter, ", last read %s", doc.LastReadingDate.Format(time.DateOnly))
	}
	_, _ = fmt.Fprintln(r.stdoutWriter)

	key, rating, err := r.readChoice(
		fmt.Sprintf("Rating (%d-%d, %s to skip, %s to quit): ", reading.MinRating, reading.MaxRating, skipKey, quitKey),
		reading.MinRating, reading.MaxRating, skipKey, quitKey,
	)
	if err != nil {
		return err
	}
	switch key {
	case quitKey:
		return errEnd
	case skipKey:
		r.skipped++
		r.documents = r.documents[1:]
		return nil
	}

	result, err := r.rater.ScheduleDocument(ctx, doc.ID, rating)
	if err != nil {
		return fmt.Errorf("rater.ScheduleDocument(%d) > %w", doc.ID, err)
	}
	_, _ = r.green.Fprintf(r.stdoutWriter, "Next reading in %d days (%s)\n",
		result.IntervalDays, result.NextReadingDate.Format(time.DateOnly))
	_, _ = r.italic.Fprintf(r.stdoutWriter, "  stability %.2f, difficulty %.2f\n\n", result.Stability, result.Difficulty)

	r.scheduled++
	r.documents = r.documents[1:]
	return nil
}
