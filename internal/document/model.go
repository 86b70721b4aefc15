// Package document provides documents, their categories and incremental reading state.
package document

import (
	"errors"
	"time"
)

// ErrNotFound is returned by services when a document or reading entry does not exist.
var ErrNotFound = errors.New("document: not found")

const (
	DefaultPriority = 50
	MinPriority     = 1
	MaxPriority     = 100
)

// Document is an imported source scheduled for re-reading.
// A nil NextReadingDate means the document has never been scheduled.
// Stability and Difficulty are either both nil or both set.
type Document struct {
	ID              int64      `db:"id" json:"id" yaml:"id"`
	Title           string     `db:"title" json:"title" yaml:"title"`
	CategoryID      *int64     `db:"category_id" json:"category_id,omitempty" yaml:"category_id,omitempty"`
	ImportedDate    time.Time  `db:"imported_date" json:"imported_date" yaml:"imported_date"`
	Priority        int        `db:"priority" json:"priority" yaml:"priority"`
	NextReadingDate *time.Time `db:"next_reading_date" json:"next_reading_date,omitempty" yaml:"next_reading_date,omitempty"`
	LastReadingDate *time.Time `db:"last_reading_date" json:"last_reading_date,omitempty" yaml:"last_reading_date,omitempty"`
	ReadingCount    int        `db:"reading_count" json:"reading_count" yaml:"reading_count"`
	Stability       *float64   `db:"stability" json:"stability,omitempty" yaml:"stability,omitempty"`
	Difficulty      *float64   `db:"difficulty" json:"difficulty,omitempty" yaml:"difficulty,omitempty"`
}

// IsNew reports whether the document has never been scheduled.
func (d Document) IsNew() bool {
	return d.NextReadingDate == nil
}

// Category groups documents. ParentID refers to the enclosing category.
type Category struct {
	ID       int64  `db:"id" json:"id"`
	Name     string `db:"name" json:"name"`
	ParentID *int64 `db:"parent_id" json:"parent_id,omitempty"`
}

// ScheduleState is the learning phase of an incremental reading entry.
type ScheduleState string

const (
	ScheduleStateNew      ScheduleState = "new"
	ScheduleStateLearning ScheduleState = "learning"
	ScheduleStateReview   ScheduleState = "review"
)

// ScheduleStateFor derives the state from the number of successful repetitions.
func ScheduleStateFor(repetitions int) ScheduleState {
	switch {
	case repetitions <= 0:
		return ScheduleStateNew
	case repetitions < 3:
		return ScheduleStateLearning
	default:
		return ScheduleStateReview
	}
}

// IncrementalReading tracks progress through a single document.
type IncrementalReading struct {
	ID              int64         `db:"id" json:"id"`
	DocumentID      int64         `db:"document_id" json:"document_id"`
	CurrentPosition int           `db:"current_position" json:"current_position"`
	ReadingPriority float64       `db:"reading_priority" json:"reading_priority"`
	Interval        int           `db:"interval_days" json:"interval"`
	Repetitions     int           `db:"repetitions" json:"repetitions"`
	Easiness        float64       `db:"easiness" json:"easiness"`
	ScheduleState   ScheduleState `db:"schedule_state" json:"schedule_state"`
	PercentComplete float64       `db:"percent_complete" json:"percent_complete"`
	LastReadDate    *time.Time    `db:"last_read_date" json:"last_read_date,omitempty"`
	NextReadDate    *time.Time    `db:"next_read_date" json:"next_read_date,omitempty"`
}

// ReadingQueueEntry is a reading entry joined with its document title.
type ReadingQueueEntry struct {
	IncrementalReading
	DocumentTitle string `db:"document_title" json:"document_title"`
}

// Filter narrows document queries. Tags match case-insensitively by substring and all must match.
type Filter struct {
	CategoryID *int64
	Tags       []string
}

// NewDocumentOrder selects how never-scheduled documents are ordered.
type NewDocumentOrder int

const (
	// OrderPriorityThenImported sorts by priority, then most recently imported.
	OrderPriorityThenImported NewDocumentOrder = iota
	// OrderRecentlyImported sorts by most recently imported only.
	OrderRecentlyImported
)

// QueueCounts are the document totals shown on the queue dashboard.
type QueueCounts struct {
	TotalDocuments int `db:"total_documents" json:"total_documents" yaml:"total_documents"`
	DueToday       int `db:"due_today" json:"due_today" yaml:"due_today"`
	DueThisWeek    int `db:"due_this_week" json:"due_this_week" yaml:"due_this_week"`
	NewDocuments   int `db:"new_documents" json:"new_documents" yaml:"new_documents"`
	Overdue        int `db:"overdue" json:"overdue" yaml:"overdue"`
}
