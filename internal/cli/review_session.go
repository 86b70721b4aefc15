package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/at-ishikawa/increader/internal/learning"
	"github.com/at-ishikawa/increader/internal/srs"
)

const quitKey = "q"

//go:generate mockgen -source=review_session.go -destination=../mocks/cli/mock_review_session.go -package=mock_cli

// ItemReviewer loads due flashcards and records answers.
type ItemReviewer interface {
	DueItems(ctx context.Context, limit int, categoryID *int64) ([]learning.LearningItem, error)
	ProcessResponse(ctx context.Context, itemID int64, grade int, responseTimeMs *int) (*srs.Result, error)
}

// ReviewSessionCLI walks through the due flashcards one at a time
type ReviewSessionCLI struct {
	*InteractiveCLI
	reviewer ItemReviewer
	items    []learning.LearningItem
	reviewed int
	passed   int
}

// NewReviewSessionCLI loads up to limit due items.
func NewReviewSessionCLI(ctx context.Context, reviewer ItemReviewer, limit int, categoryID *int64, opts ...Option) (*ReviewSessionCLI, error) {
	items, err := reviewer.DueItems(ctx, limit, categoryID)
	if err != nil {
		return nil, fmt.Errorf("reviewer.DueItems() > %w", err)
	}
	return &ReviewSessionCLI{
		InteractiveCLI: newInteractiveCLI(opts...),
		reviewer:       reviewer,
		items:          items,
	}, nil
}

// ItemCount returns the number of remaining items
func (r *ReviewSessionCLI) ItemCount() int {
	return len(r.items)
}

// Summary returns how many items were graded and how many of them passed.
func (r *ReviewSessionCLI) Summary() (reviewed int, passed int) {
	return r.reviewed, r.passed
}

func (r *ReviewSessionCLI) Session(ctx context.Context) error {
	if len(r.items) == 0 {
		_, _ = fmt.Fprintf(r.stdoutWriter, "No more items to review! Reviewed %d, passed %d.\n", r.reviewed, r.passed)
		return errEnd
	}
	item := r.items[0]

	_, _ = fmt.Fprintf(r.stdoutWriter, "[%d left] ", len(r.items))
	_, _ = r.bold.Fprintf(r.stdoutWriter, "%s\n", item.Question)

	start := r.now()
	answer, err := r.readLine(fmt.Sprintf("Press Enter to show the answer (%s to quit)", quitKey))
	if err != nil {
		return err
	}
	if strings.EqualFold(answer, quitKey) {
		return errEnd
	}
	elapsed := int(r.now().Sub(start) / time.Millisecond)

	_, _ = fmt.Fprint(r.stdoutWriter, "Answer: ")
	_, _ = r.italic.Fprintf(r.stdoutWriter, "%s\n", item.Answer)

	key, grade, err := r.readChoice(
		fmt.Sprintf("Grade (%d-%d, %s to quit): ", srs.MinGrade, srs.MaxGrade, quitKey),
		srs.MinGrade, srs.MaxGrade, quitKey,
	)
	if err != nil {
		return err
	}
	if key == quitKey {
		return errEnd
	}

	result, err := r.reviewer.ProcessResponse(ctx, item.ID, grade, &elapsed)
	if err != nil {
		return fmt.Errorf("reviewer.ProcessResponse(%d) > %w", item.ID, err)
	}

	if result.Passed {
		_, _ = fmt.Fprint(r.stdoutWriter, "✅ ")
		_, _ = r.green.Fprintf(r.stdoutWriter, "Passed. Next review in %d days (%s)\n",
			result.Interval, result.NextReview.Format(time.DateOnly))
		r.passed++
	} else {
		_, _ = fmt.Fprint(r.stdoutWriter, "❌ ")
		_, _ = r.red.Fprintf(r.stdoutWriter, "Failed. Next review in %d days (%s)\n",
			result.Interval, result.NextReview.Format(time.DateOnly))
	}
	_, _ = fmt.Fprintln(r.stdoutWriter)

	r.reviewed++
	r.items = r.items[1:]
	return nil
}
