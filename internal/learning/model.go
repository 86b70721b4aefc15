// Package learning provides extracts, flashcard items and their review history.
package learning

import (
	"errors"
	"time"
)

// ErrNotFound is returned by services when an extract or learning item does not exist.
var ErrNotFound = errors.New("learning: not found")

// ItemType is the kind of prompt a learning item shows.
type ItemType string

const (
	ItemTypeQA    ItemType = "qa"
	ItemTypeCloze ItemType = "cloze"
	ItemTypeImage ItemType = "image"
)

const (
	DefaultPriority = 50
	MinPriority     = 1
	MaxPriority     = 100

	// DefaultEasiness is the SM-2 easiness factor of an item that has never been reviewed.
	DefaultEasiness = 2.5
)

// Extract is a passage taken from a document. ParentID refers to the extract it was split from.
type Extract struct {
	ID         int64     `db:"id" json:"id"`
	DocumentID int64     `db:"document_id" json:"document_id"`
	ParentID   *int64    `db:"parent_id" json:"parent_id,omitempty"`
	Content    string    `db:"content" json:"content"`
	Priority   int       `db:"priority" json:"priority"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}

// LearningItem is a flashcard scheduled with SM-2. A nil NextReview means it has never been scheduled.
type LearningItem struct {
	ID           int64      `db:"id" json:"id"`
	ExtractID    int64      `db:"extract_id" json:"extract_id"`
	ItemType     ItemType   `db:"item_type" json:"item_type"`
	Question     string     `db:"question" json:"question"`
	Answer       string     `db:"answer" json:"answer"`
	Interval     int        `db:"interval_days" json:"interval"`
	Repetitions  int        `db:"repetitions" json:"repetitions"`
	Easiness     float64    `db:"easiness" json:"easiness"`
	Priority     int        `db:"priority" json:"priority"`
	Difficulty   float64    `db:"difficulty" json:"difficulty"`
	LastReviewed *time.Time `db:"last_reviewed" json:"last_reviewed,omitempty"`
	NextReview   *time.Time `db:"next_review" json:"next_review,omitempty"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
}

// IsNew reports whether the item has never been scheduled.
func (item LearningItem) IsNew() bool {
	return item.NextReview == nil
}

// ReviewLog is an immutable record of one answer to a learning item.
type ReviewLog struct {
	ID                int64     `db:"id" json:"id" yaml:"id"`
	LearningItemID    int64     `db:"learning_item_id" json:"learning_item_id" yaml:"learning_item_id"`
	ReviewDate        time.Time `db:"review_date" json:"review_date" yaml:"review_date"`
	Grade             int       `db:"grade" json:"grade" yaml:"grade"`
	ResponseTimeMs    *int      `db:"response_time_ms" json:"response_time_ms,omitempty" yaml:"response_time_ms,omitempty"`
	ScheduledInterval int       `db:"scheduled_interval" json:"scheduled_interval" yaml:"scheduled_interval"`
	ActualInterval    *int      `db:"actual_interval" json:"actual_interval,omitempty" yaml:"actual_interval,omitempty"`
}
