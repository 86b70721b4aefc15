package learning

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/at-ishikawa/increader/internal/database"
)

//go:generate mockgen -source=repository.go -destination=../mocks/learning/mock_repository.go -package=mock_learning

// ItemRepository defines operations for learning items, their extracts and review logs.
type ItemRepository interface {
	// RunInTx calls fn with a repository bound to a single transaction.
	RunInTx(ctx context.Context, fn func(ctx context.Context, repo ItemRepository) error) error

	FindByID(ctx context.Context, id int64) (*LearningItem, error)
	FindDue(ctx context.Context, now time.Time, limit int, categoryID *int64) ([]LearningItem, error)
	FindNextReviewsBetween(ctx context.Context, start, end time.Time) ([]time.Time, error)
	FindWithMinReviews(ctx context.Context, minReviews int) ([]LearningItem, error)
	Create(ctx context.Context, item *LearningItem) error
	Update(ctx context.Context, item *LearningItem) error

	CreateReviewLog(ctx context.Context, log *ReviewLog) error
	FindRecentReviewLogs(ctx context.Context, itemID int64, limit int) ([]ReviewLog, error)
	FindReviewLogs(ctx context.Context, itemID int64) ([]ReviewLog, error)
	FindAllReviewLogs(ctx context.Context) ([]ReviewLog, error)
	FindReviewLogsSince(ctx context.Context, since time.Time) ([]ReviewLog, error)

	FindExtractByID(ctx context.Context, id int64) (*Extract, error)
}

// DBItemRepository implements ItemRepository with sqlx.
type DBItemRepository struct {
	db *sqlx.DB
	q  sqlx.ExtContext
}

// NewDBItemRepository creates a new DBItemRepository.
func NewDBItemRepository(db *sqlx.DB) *DBItemRepository {
	return &DBItemRepository{db: db, q: db}
}

// RunInTx runs fn in a transaction. Nested calls reuse the outer transaction.
func (r *DBItemRepository) RunInTx(ctx context.Context, fn func(ctx context.Context, repo ItemRepository) error) error {
	if _, ok := r.q.(*sqlx.Tx); ok {
		return fn(ctx, r)
	}
	return database.RunInTx(ctx, r.db, func(ctx context.Context, tx *sqlx.Tx) error {
		return fn(ctx, &DBItemRepository{db: r.db, q: tx})
	})
}

// FindByID returns the learning item, or nil if not found.
func (r *DBItemRepository) FindByID(ctx context.Context, id int64) (*LearningItem, error) {
	var item LearningItem
	err := sqlx.GetContext(ctx, r.q, &item, "SELECT * FROM learning_items WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("sqlx.GetContext(learning_items) > %w", err)
	}
	return &item, nil
}

// FindDue returns items due at now or never scheduled, highest priority first.
// When categoryID is set, only items whose extract belongs to a document in that category are returned.
func (r *DBItemRepository) FindDue(ctx context.Context, now time.Time, limit int, categoryID *int64) ([]LearningItem, error) {
	var (
		query strings.Builder
		args  []any
	)
	query.WriteString("SELECT li.* FROM learning_items li")
	if categoryID != nil {
		query.WriteString(" JOIN extracts e ON e.id = li.extract_id JOIN documents d ON d.id = e.document_id")
	}
	query.WriteString(" WHERE (li.next_review <= ? OR li.next_review IS NULL)")
	args = append(args, now)
	if categoryID != nil {
		query.WriteString(" AND d.category_id = ?")
		args = append(args, *categoryID)
	}
	query.WriteString(" ORDER BY li.priority DESC, li.next_review ASC LIMIT ?")
	args = append(args, limit)

	var items []LearningItem
	if err := sqlx.SelectContext(ctx, r.q, &items, query.String(), args...); err != nil {
		return nil, fmt.Errorf("sqlx.SelectContext(due learning_items) > %w", err)
	}
	return items, nil
}

// FindNextReviewsBetween returns the next_review of every item scheduled in [start, end).
func (r *DBItemRepository) FindNextReviewsBetween(ctx context.Context, start, end time.Time) ([]time.Time, error) {
	var reviews []time.Time
	if err := sqlx.SelectContext(ctx, r.q, &reviews,
		"SELECT next_review FROM learning_items WHERE next_review >= ? AND next_review < ? ORDER BY next_review",
		start, end); err != nil {
		return nil, fmt.Errorf("sqlx.SelectContext(next_review) > %w", err)
	}
	return reviews, nil
}

// FindWithMinReviews returns items that have at least minReviews review logs.
func (r *DBItemRepository) FindWithMinReviews(ctx context.Context, minReviews int) ([]LearningItem, error) {
	var items []LearningItem
	if err := sqlx.SelectContext(ctx, r.q, &items,
		`SELECT li.* FROM learning_items li
		WHERE (SELECT COUNT(*) FROM review_logs rl WHERE rl.learning_item_id = li.id) >= ?
		ORDER BY li.id`,
		minReviews); err != nil {
		return nil, fmt.Errorf("sqlx.SelectContext(reviewed learning_items) > %w", err)
	}
	return items, nil
}

// Create inserts a new learning item.
func (r *DBItemRepository) Create(ctx context.Context, item *LearningItem) error {
	result, err := r.q.ExecContext(ctx,
		`INSERT INTO learning_items (extract_id, item_type, question, answer, interval_days, repetitions,
		easiness, priority, difficulty, last_reviewed, next_review, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		item.ExtractID, item.ItemType, item.Question, item.Answer, item.Interval, item.Repetitions,
		item.Easiness, item.Priority, item.Difficulty, item.LastReviewed, item.NextReview, item.CreatedAt)
	if err != nil {
		return fmt.Errorf("q.ExecContext(insert learning_item) > %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("result.LastInsertId() > %w", err)
	}
	item.ID = id
	return nil
}

// Update writes the item's content and scheduling state.
func (r *DBItemRepository) Update(ctx context.Context, item *LearningItem) error {
	if _, err := r.q.ExecContext(ctx,
		`UPDATE learning_items SET question = ?, answer = ?, interval_days = ?, repetitions = ?, easiness = ?,
		priority = ?, difficulty = ?, last_reviewed = ?, next_review = ? WHERE id = ?`,
		item.Question, item.Answer, item.Interval, item.Repetitions, item.Easiness,
		item.Priority, item.Difficulty, item.LastReviewed, item.NextReview, item.ID); err != nil {
		return fmt.Errorf("q.ExecContext(update learning_item) > %w", err)
	}
	return nil
}

// CreateReviewLog appends a review log.
func (r *DBItemRepository) CreateReviewLog(ctx context.Context, log *ReviewLog) error {
	result, err := r.q.ExecContext(ctx,
		`INSERT INTO review_logs (learning_item_id, review_date, grade, response_time_ms, scheduled_interval, actual_interval)
		VALUES (?, ?, ?, ?, ?, ?)`,
		log.LearningItemID, log.ReviewDate, log.Grade, log.ResponseTimeMs, log.ScheduledInterval, log.ActualInterval)
	if err != nil {
		return fmt.Errorf("q.ExecContext(insert review_log) > %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("result.LastInsertId() > %w", err)
	}
	log.ID = id
	return nil
}

// FindRecentReviewLogs returns up to limit logs of an item, newest first.
func (r *DBItemRepository) FindRecentReviewLogs(ctx context.Context, itemID int64, limit int) ([]ReviewLog, error) {
	var logs []ReviewLog
	if err := sqlx.SelectContext(ctx, r.q, &logs,
		"SELECT * FROM review_logs WHERE learning_item_id = ? ORDER BY review_date DESC, id DESC LIMIT ?",
		itemID, limit); err != nil {
		return nil, fmt.Errorf("sqlx.SelectContext(recent review_logs) > %w", err)
	}
	return logs, nil
}

// FindReviewLogs returns every log of an item, oldest first.
func (r *DBItemRepository) FindReviewLogs(ctx context.Context, itemID int64) ([]ReviewLog, error) {
	var logs []ReviewLog
	if err := sqlx.SelectContext(ctx, r.q, &logs,
		"SELECT * FROM review_logs WHERE learning_item_id = ? ORDER BY review_date, id",
		itemID); err != nil {
		return nil, fmt.Errorf("sqlx.SelectContext(review_logs by item) > %w", err)
	}
	return logs, nil
}

// FindAllReviewLogs returns all review logs.
func (r *DBItemRepository) FindAllReviewLogs(ctx context.Context) ([]ReviewLog, error) {
	var logs []ReviewLog
	if err := sqlx.SelectContext(ctx, r.q, &logs, "SELECT * FROM review_logs ORDER BY id"); err != nil {
		return nil, fmt.Errorf("sqlx.SelectContext(review_logs) > %w", err)
	}
	return logs, nil
}

// FindReviewLogsSince returns the logs reviewed at or after since, oldest first.
func (r *DBItemRepository) FindReviewLogsSince(ctx context.Context, since time.Time) ([]ReviewLog, error) {
	var logs []ReviewLog
	if err := sqlx.SelectContext(ctx, r.q, &logs,
		"SELECT * FROM review_logs WHERE review_date >= ? ORDER BY review_date, id",
		since); err != nil {
		return nil, fmt.Errorf("sqlx.SelectContext(review_logs since) > %w", err)
	}
	return logs, nil
}

// FindExtractByID returns the extract, or nil if not found.
func (r *DBItemRepository) FindExtractByID(ctx context.Context, id int64) (*Extract, error) {
	var extract Extract
	err := sqlx.GetContext(ctx, r.q, &extract, "SELECT * FROM extracts WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("sqlx.GetContext(extracts) > %w", err)
	}
	return &extract, nil
}
