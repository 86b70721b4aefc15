package srs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/at-ishikawa/increader/internal/learning"
)

// minLeechReviews is the review count below which an item is never inspected.
const minLeechReviews = 3

// ErrUnknownTreatment is returned for a treatment strategy that does not exist.
var ErrUnknownTreatment = errors.New("srs: unknown treatment strategy")

// LeechConfig holds the thresholds that flag an item as a leech. Any one criterion is enough.
type LeechConfig struct {
	// Threshold is the total number of failed reviews.
	Threshold int
	// RecentWindow is how many of the latest reviews MaxFailRatio looks at.
	RecentWindow     int
	MaxFailRatio     float64
	ConsecutiveFails int
}

// DefaultLeechConfig returns the standard leech thresholds.
func DefaultLeechConfig() LeechConfig {
	return LeechConfig{
		Threshold:        5,
		RecentWindow:     10,
		MaxFailRatio:     0.4,
		ConsecutiveFails: 3,
	}
}

// LeechCriteria records which criteria flagged an item. Unset fields did not trigger.
type LeechCriteria struct {
	TotalFailures       *int     `json:"total_failures,omitempty" yaml:"total_failures,omitempty"`
	RecentFailRatio     *float64 `json:"recent_fail_ratio,omitempty" yaml:"recent_fail_ratio,omitempty"`
	MaxConsecutiveFails *int     `json:"max_consecutive_fails,omitempty" yaml:"max_consecutive_fails,omitempty"`
}

// LeechReport describes an item that keeps failing.
type LeechReport struct {
	ItemID            int64             `json:"item_id" yaml:"item_id"`
	ItemType          learning.ItemType `json:"item_type" yaml:"item_type"`
	Question          string            `json:"question" yaml:"question"`
	Answer            string            `json:"answer" yaml:"answer"`
	TotalReviews      int               `json:"total_reviews" yaml:"total_reviews"`
	FirstReviewed     time.Time         `json:"first_reviewed" yaml:"first_reviewed"`
	LastReviewed      time.Time         `json:"last_reviewed" yaml:"last_reviewed"`
	AvgResponseTimeMs float64           `json:"avg_response_time_ms" yaml:"avg_response_time_ms"`
	Criteria          LeechCriteria     `json:"criteria" yaml:"criteria"`
	Treatment         Treatment         `json:"treatment" yaml:"treatment"`
}

// TreatmentStrategy is a way of rescuing a leech.
type TreatmentStrategy string

const (
	TreatmentRelearn  TreatmentStrategy = "relearn"
	TreatmentSimplify TreatmentStrategy = "simplify"
	TreatmentHint     TreatmentStrategy = "hint"
	TreatmentMnemonic TreatmentStrategy = "mnemonic"
)

var treatmentMarkers = map[TreatmentStrategy]string{
	TreatmentRelearn:  "[RELEARNING] ",
	TreatmentSimplify: "[SIMPLIFIED] ",
	TreatmentHint:     "[HINT] ",
	TreatmentMnemonic: "[MNEMONIC] ",
}

// Treatment is a suggested action for a leech.
type Treatment struct {
	Strategy TreatmentStrategy `json:"strategy" yaml:"strategy"`
	Action   string            `json:"action" yaml:"action"`
	Reason   string            `json:"reason" yaml:"reason"`
}

// AnalyzeLeech inspects an item's logs, oldest first, and returns a report if any criterion triggers.
func AnalyzeLeech(cfg LeechConfig, item learning.LearningItem, logs []learning.ReviewLog) (*LeechReport, bool) {
	if len(logs) == 0 {
		return nil, false
	}

	var (
		criteria            LeechCriteria
		isLeech             bool
		totalFailures       int
		consecutive         int
		maxConsecutiveFails int
		responseTimeSum     int
		responseTimeCount   int
	)
	for _, log := range logs {
		if log.Grade < PassThreshold {
			totalFailures++
			consecutive++
			maxConsecutiveFails = max(maxConsecutiveFails, consecutive)
		} else {
			consecutive = 0
		}
		if log.ResponseTimeMs != nil && *log.ResponseTimeMs > 0 {
			responseTimeSum += *log.ResponseTimeMs
			responseTimeCount++
		}
	}

	if totalFailures >= cfg.Threshold {
		isLeech = true
		criteria.TotalFailures = &totalFailures
	}

	recent := logs
	if cfg.RecentWindow > 0 && len(recent) > cfg.RecentWindow {
		recent = recent[len(recent)-cfg.RecentWindow:]
	}
	var recentFailures int
	for _, log := range recent {
		if log.Grade < PassThreshold {
			recentFailures++
		}
	}
	recentFailRatio := float64(recentFailures) / float64(len(recent))
	if recentFailRatio >= cfg.MaxFailRatio {
		isLeech = true
		criteria.RecentFailRatio = &recentFailRatio
	}

	if maxConsecutiveFails >= cfg.ConsecutiveFails {
		isLeech = true
		criteria.MaxConsecutiveFails = &maxConsecutiveFails
	}

	if !isLeech {
		return nil, false
	}

	report := &LeechReport{
		ItemID:        item.ID,
		ItemType:      item.ItemType,
		Question:      item.Question,
		Answer:        item.Answer,
		TotalReviews:  len(logs),
		FirstReviewed: logs[0].ReviewDate,
		LastReviewed:  logs[len(logs)-1].ReviewDate,
		Criteria:      criteria,
	}
	if responseTimeCount > 0 {
		report.AvgResponseTimeMs = float64(responseTimeSum) / float64(responseTimeCount)
	}
	report.Treatment = SuggestTreatment(*report)
	return report, true
}

// SuggestTreatment picks a strategy. Long runs of failures call for relearning, slow recall for
// simplification, a bad recent streak for a hint, and anything else for a mnemonic.
func SuggestTreatment(report LeechReport) Treatment {
	switch {
	case report.Criteria.MaxConsecutiveFails != nil && *report.Criteria.MaxConsecutiveFails >= 4:
		return Treatment{
			Strategy: TreatmentRelearn,
			Action:   "Reset item and rewrite it with simplified content",
			Reason:   "Multiple consecutive failures indicate fundamental misunderstanding",
		}
	case report.AvgResponseTimeMs > 10000:
		return Treatment{
			Strategy: TreatmentSimplify,
			Action:   "Break this item into multiple simpler items",
			Reason:   "Long response times suggest complexity issues",
		}
	case report.Criteria.RecentFailRatio != nil && *report.Criteria.RecentFailRatio > 0.6:
		return Treatment{
			Strategy: TreatmentHint,
			Action:   "Add memory aids or hints to the question",
			Reason:   "Recent failures despite earlier success",
		}
	default:
		return Treatment{
			Strategy: TreatmentMnemonic,
			Action:   "Apply a mnemonic technique or create a memorable association",
			Reason:   "General difficulties with retention",
		}
	}
}

// LeechAnalyzer finds leeches among reviewed items and applies treatments to them.
type LeechAnalyzer struct {
	repo learning.ItemRepository
	cfg  LeechConfig
	now  func() time.Time
}

// NewLeechAnalyzer creates a new LeechAnalyzer.
func NewLeechAnalyzer(repo learning.ItemRepository, cfg LeechConfig) *LeechAnalyzer {
	return &LeechAnalyzer{
		repo: repo,
		cfg:  cfg,
		now:  time.Now,
	}
}

// DetectLeeches reports every item with at least three reviews that meets a leech criterion.
func (a *LeechAnalyzer) DetectLeeches(ctx context.Context) ([]LeechReport, error) {
	items, err := a.repo.FindWithMinReviews(ctx, minLeechReviews)
	if err != nil {
		logFailure("failed to find reviewed items", err)
		return nil, err
	}

	var reports []LeechReport
	for _, item := range items {
		logs, err := a.repo.FindReviewLogs(ctx, item.ID)
		if err != nil {
			logFailure("failed to find review logs", err, slog.Int64("item_id", item.ID))
			return nil, err
		}
		if report, ok := AnalyzeLeech(a.cfg, item, logs); ok {
			reports = append(reports, *report)
		}
	}
	return reports, nil
}

// ApplyTreatment marks the item's question with the strategy and brings its review forward to tomorrow.
// Relearning also resets the item's progress; simplifying lowers its difficulty.
func (a *LeechAnalyzer) ApplyTreatment(ctx context.Context, itemID int64, strategy TreatmentStrategy) (*learning.LearningItem, error) {
	marker, ok := treatmentMarkers[strategy]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTreatment, strategy)
	}

	now := a.now().UTC()
	var treated *learning.LearningItem
	err := a.repo.RunInTx(ctx, func(ctx context.Context, repo learning.ItemRepository) error {
		item, err := repo.FindByID(ctx, itemID)
		if err != nil {
			return err
		}
		if item == nil {
			return fmt.Errorf("learning item %d: %w", itemID, learning.ErrNotFound)
		}

		switch strategy {
		case TreatmentRelearn:
			item.Interval = 0
			item.Repetitions = 0
		case TreatmentSimplify:
			item.Difficulty = max(0, item.Difficulty-0.2)
		}
		if !strings.HasPrefix(item.Question, marker) {
			item.Question = marker + item.Question
		}
		nextReview := now.AddDate(0, 0, 1)
		item.NextReview = &nextReview

		if err := repo.Update(ctx, item); err != nil {
			return err
		}
		treated = item
		return nil
	})
	if err != nil {
		logFailure("failed to apply a treatment", err, slog.Int64("item_id", itemID), slog.String("strategy", string(strategy)))
		return nil, err
	}

	slog.Default().Info("applied a leech treatment", slog.Int64("item_id", itemID), slog.String("strategy", string(strategy)))
	return treated, nil
}
