package document

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/at-ishikawa/increader/internal/database"
)

//go:generate mockgen -source=reading_repository.go -destination=../mocks/document/mock_reading_repository.go -package=mock_document

// ReadingRepository defines operations for incremental reading entries.
type ReadingRepository interface {
	// RunInTx calls fn with a repository bound to a single transaction.
	RunInTx(ctx context.Context, fn func(ctx context.Context, repo ReadingRepository) error) error

	DocumentExists(ctx context.Context, documentID int64) (bool, error)
	FindByID(ctx context.Context, id int64) (*IncrementalReading, error)
	FindByDocumentID(ctx context.Context, documentID int64) (*IncrementalReading, error)
	Create(ctx context.Context, reading *IncrementalReading) error
	Update(ctx context.Context, reading *IncrementalReading) error
	// FindQueue returns unfinished entries due at now or never scheduled, highest priority first.
	FindQueue(ctx context.Context, now time.Time, limit int) ([]ReadingQueueEntry, error)
}

// DBReadingRepository implements ReadingRepository with sqlx.
type DBReadingRepository struct {
	db *sqlx.DB
	q  sqlx.ExtContext
}

// NewDBReadingRepository creates a new DBReadingRepository.
func NewDBReadingRepository(db *sqlx.DB) *DBReadingRepository {
	return &DBReadingRepository{db: db, q: db}
}

// RunInTx runs fn in a transaction. Nested calls reuse the outer transaction.
func (r *DBReadingRepository) RunInTx(ctx context.Context, fn func(ctx context.Context, repo ReadingRepository) error) error {
	if _, ok := r.q.(*sqlx.Tx); ok {
		return fn(ctx, r)
	}
	return database.RunInTx(ctx, r.db, func(ctx context.Context, tx *sqlx.Tx) error {
		return fn(ctx, &DBReadingRepository{db: r.db, q: tx})
	})
}

func (r *DBReadingRepository) DocumentExists(ctx context.Context, documentID int64) (bool, error) {
	var count int
	if err := sqlx.GetContext(ctx, r.q, &count, "SELECT COUNT(*) FROM documents WHERE id = ?", documentID); err != nil {
		return false, fmt.Errorf("sqlx.GetContext(document exists) > %w", err)
	}
	return count > 0, nil
}

// FindByID returns the entry, or nil if not found.
func (r *DBReadingRepository) FindByID(ctx context.Context, id int64) (*IncrementalReading, error) {
	return r.get(ctx, "SELECT * FROM incremental_readings WHERE id = ?", id)
}

// FindByDocumentID returns the entry of a document, or nil if the document has none.
func (r *DBReadingRepository) FindByDocumentID(ctx context.Context, documentID int64) (*IncrementalReading, error) {
	return r.get(ctx, "SELECT * FROM incremental_readings WHERE document_id = ?", documentID)
}

func (r *DBReadingRepository) get(ctx context.Context, query string, arg any) (*IncrementalReading, error) {
	var reading IncrementalReading
	err := sqlx.GetContext(ctx, r.q, &reading, query, arg)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("sqlx.GetContext(incremental_readings) > %w", err)
	}
	return &reading, nil
}

// Create inserts a new reading entry.
func (r *DBReadingRepository) Create(ctx context.Context, reading *IncrementalReading) error {
	result, err := r.q.ExecContext(ctx,
		`INSERT INTO incremental_readings (document_id, current_position, reading_priority, interval_days, repetitions,
		easiness, schedule_state, percent_complete, last_read_date, next_read_date)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		reading.DocumentID, reading.CurrentPosition, reading.ReadingPriority, reading.Interval, reading.Repetitions,
		reading.Easiness, reading.ScheduleState, reading.PercentComplete, reading.LastReadDate, reading.NextReadDate)
	if err != nil {
		return fmt.Errorf("q.ExecContext(insert incremental_reading) > %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("result.LastInsertId() > %w", err)
	}
	reading.ID = id
	return nil
}

// Update writes the progress and scheduling state of a reading entry.
func (r *DBReadingRepository) Update(ctx context.Context, reading *IncrementalReading) error {
	if _, err := r.q.ExecContext(ctx,
		`UPDATE incremental_readings SET current_position = ?, reading_priority = ?, interval_days = ?, repetitions = ?,
		easiness = ?, schedule_state = ?, percent_complete = ?, last_read_date = ?, next_read_date = ? WHERE id = ?`,
		reading.CurrentPosition, reading.ReadingPriority, reading.Interval, reading.Repetitions,
		reading.Easiness, reading.ScheduleState, reading.PercentComplete, reading.LastReadDate, reading.NextReadDate,
		reading.ID); err != nil {
		return fmt.Errorf("q.ExecContext(update incremental_reading) > %w", err)
	}
	return nil
}

func (r *DBReadingRepository) FindQueue(ctx context.Context, now time.Time, limit int) ([]ReadingQueueEntry, error) {
	var entries []ReadingQueueEntry
	if err := sqlx.SelectContext(ctx, r.q, &entries,
		`SELECT ir.*, d.title AS document_title FROM incremental_readings ir
		JOIN documents d ON d.id = ir.document_id
		WHERE (ir.next_read_date <= ? OR ir.next_read_date IS NULL) AND ir.percent_complete < 100
		ORDER BY ir.reading_priority DESC LIMIT ?`,
		now, limit); err != nil {
		return nil, fmt.Errorf("sqlx.SelectContext(reading queue) > %w", err)
	}
	return entries, nil
}
