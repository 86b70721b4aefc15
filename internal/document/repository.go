package document

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/at-ishikawa/increader/internal/config"
	"github.com/at-ishikawa/increader/internal/database"
)

//go:generate mockgen -source=repository.go -destination=../mocks/document/mock_document_repository.go -package=mock_document

// DocumentRepository defines the document queries used for scheduling and queue selection.
type DocumentRepository interface {
	// RunInTx calls fn with a repository bound to a single transaction.
	RunInTx(ctx context.Context, fn func(ctx context.Context, repo DocumentRepository) error) error

	FindByID(ctx context.Context, id int64) (*Document, error)
	Update(ctx context.Context, doc *Document) error
	UpdatePriority(ctx context.Context, id int64, priority int) error

	// FindDue returns documents due at now by priority, then earliest due date.
	FindDue(ctx context.Context, f Filter, now time.Time, limit int) ([]Document, error)
	// FindNew returns never-scheduled documents in the given order.
	FindNew(ctx context.Context, f Filter, order NewDocumentOrder, limit int) ([]Document, error)
	// FindUpcoming returns documents due after now, earliest first.
	FindUpcoming(ctx context.Context, f Filter, now time.Time, limit int) ([]Document, error)
	// FindRandom returns a uniformly random selection of documents.
	FindRandom(ctx context.Context, f Filter, limit int) ([]Document, error)
	// FindLeastRecentlyRead returns documents that have been read, oldest reading first.
	FindLeastRecentlyRead(ctx context.Context, f Filter, limit int) ([]Document, error)
	// FindLeastPopulatedCategories returns category ids ordered by ascending document count.
	FindLeastPopulatedCategories(ctx context.Context, limit int) ([]int64, error)

	FindScheduledBetween(ctx context.Context, start, end time.Time, categoryID *int64) ([]Document, error)
	FindUnscheduled(ctx context.Context, categoryID *int64) ([]Document, error)
	FindOverdue(ctx context.Context, before time.Time, categoryID *int64) ([]Document, error)
	CountQueue(ctx context.Context, todayStart, tomorrowStart, weekEnd time.Time) (*QueueCounts, error)
}

// DBDocumentRepository implements DocumentRepository with sqlx.
type DBDocumentRepository struct {
	db *sqlx.DB
	q  sqlx.ExtContext
}

// NewDBDocumentRepository creates a new DBDocumentRepository.
func NewDBDocumentRepository(db *sqlx.DB) *DBDocumentRepository {
	return &DBDocumentRepository{db: db, q: db}
}

// RunInTx runs fn in a transaction. Nested calls reuse the outer transaction.
func (r *DBDocumentRepository) RunInTx(ctx context.Context, fn func(ctx context.Context, repo DocumentRepository) error) error {
	if _, ok := r.q.(*sqlx.Tx); ok {
		return fn(ctx, r)
	}
	return database.RunInTx(ctx, r.db, func(ctx context.Context, tx *sqlx.Tx) error {
		return fn(ctx, &DBDocumentRepository{db: r.db, q: tx})
	})
}

// FindByID returns the document, or nil if not found.
func (r *DBDocumentRepository) FindByID(ctx context.Context, id int64) (*Document, error) {
	var doc Document
	err := sqlx.GetContext(ctx, r.q, &doc, "SELECT * FROM documents WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("sqlx.GetContext(documents) > %w", err)
	}
	return &doc, nil
}

// Update writes the scheduling state of a document.
func (r *DBDocumentRepository) Update(ctx context.Context, doc *Document) error {
	if _, err := r.q.ExecContext(ctx,
		`UPDATE documents SET priority = ?, next_reading_date = ?, last_reading_date = ?, reading_count = ?,
		stability = ?, difficulty = ? WHERE id = ?`,
		doc.Priority, doc.NextReadingDate, doc.LastReadingDate, doc.ReadingCount,
		doc.Stability, doc.Difficulty, doc.ID); err != nil {
		return fmt.Errorf("q.ExecContext(update document) > %w", err)
	}
	return nil
}

// UpdatePriority sets the priority of a document.
func (r *DBDocumentRepository) UpdatePriority(ctx context.Context, id int64, priority int) error {
	if _, err := r.q.ExecContext(ctx, "UPDATE documents SET priority = ? WHERE id = ?", priority, id); err != nil {
		return fmt.Errorf("q.ExecContext(update document priority) > %w", err)
	}
	return nil
}

func (r *DBDocumentRepository) FindDue(ctx context.Context, f Filter, now time.Time, limit int) ([]Document, error) {
	return r.selectDocuments(ctx, "due", f, query{
		conds:   []string{"d.next_reading_date <= ?"},
		args:    []any{now},
		orderBy: "d.priority DESC, d.next_reading_date ASC",
		limit:   limit,
	})
}

func (r *DBDocumentRepository) FindNew(ctx context.Context, f Filter, order NewDocumentOrder, limit int) ([]Document, error) {
	orderBy := "d.priority DESC, d.imported_date DESC"
	if order == OrderRecentlyImported {
		orderBy = "d.imported_date DESC"
	}
	return r.selectDocuments(ctx, "new", f, query{
		conds:   []string{"d.next_reading_date IS NULL"},
		orderBy: orderBy,
		limit:   limit,
	})
}

func (r *DBDocumentRepository) FindUpcoming(ctx context.Context, f Filter, now time.Time, limit int) ([]Document, error) {
	return r.selectDocuments(ctx, "upcoming", f, query{
		conds:   []string{"d.next_reading_date > ?"},
		args:    []any{now},
		orderBy: "d.next_reading_date ASC",
		limit:   limit,
	})
}

func (r *DBDocumentRepository) FindRandom(ctx context.Context, f Filter, limit int) ([]Document, error) {
	return r.selectDocuments(ctx, "random", f, query{
		orderBy: r.randomOrder(),
		limit:   limit,
	})
}

func (r *DBDocumentRepository) FindLeastRecentlyRead(ctx context.Context, f Filter, limit int) ([]Document, error) {
	return r.selectDocuments(ctx, "least recently read", f, query{
		conds:   []string{"d.last_reading_date IS NOT NULL"},
		orderBy: "d.last_reading_date ASC",
		limit:   limit,
	})
}

// FindLeastPopulatedCategories skips uncategorised documents.
func (r *DBDocumentRepository) FindLeastPopulatedCategories(ctx context.Context, limit int) ([]int64, error) {
	var ids []int64
	if err := sqlx.SelectContext(ctx, r.q, &ids,
		`SELECT category_id FROM documents WHERE category_id IS NOT NULL
		GROUP BY category_id ORDER BY COUNT(*) ASC, category_id ASC LIMIT ?`,
		limit); err != nil {
		return nil, fmt.Errorf("sqlx.SelectContext(category counts) > %w", err)
	}
	return ids, nil
}

// FindScheduledBetween returns documents due in [start, end), highest priority first.
func (r *DBDocumentRepository) FindScheduledBetween(ctx context.Context, start, end time.Time, categoryID *int64) ([]Document, error) {
	return r.selectDocuments(ctx, "scheduled", Filter{CategoryID: categoryID}, query{
		conds:   []string{"d.next_reading_date >= ?", "d.next_reading_date < ?"},
		args:    []any{start, end},
		orderBy: "d.priority DESC, d.next_reading_date ASC",
		limit:   noLimit,
	})
}

func (r *DBDocumentRepository) FindUnscheduled(ctx context.Context, categoryID *int64) ([]Document, error) {
	return r.selectDocuments(ctx, "unscheduled", Filter{CategoryID: categoryID}, query{
		conds:   []string{"d.next_reading_date IS NULL"},
		orderBy: "d.priority DESC, d.imported_date DESC",
		limit:   noLimit,
	})
}

func (r *DBDocumentRepository) FindOverdue(ctx context.Context, before time.Time, categoryID *int64) ([]Document, error) {
	return r.selectDocuments(ctx, "overdue", Filter{CategoryID: categoryID}, query{
		conds:   []string{"d.next_reading_date < ?"},
		args:    []any{before},
		orderBy: "d.next_reading_date ASC, d.priority DESC",
		limit:   noLimit,
	})
}

// CountQueue counts all documents in a single pass. Windows are half-open.
func (r *DBDocumentRepository) CountQueue(ctx context.Context, todayStart, tomorrowStart, weekEnd time.Time) (*QueueCounts, error) {
	var counts QueueCounts
	if err := sqlx.GetContext(ctx, r.q, &counts,
		`SELECT
			COUNT(*) AS total_documents,
			COALESCE(SUM(CASE WHEN next_reading_date >= ? AND next_reading_date < ? THEN 1 ELSE 0 END), 0) AS due_today,
			COALESCE(SUM(CASE WHEN next_reading_date >= ? AND next_reading_date < ? THEN 1 ELSE 0 END), 0) AS due_this_week,
			COALESCE(SUM(CASE WHEN next_reading_date IS NULL THEN 1 ELSE 0 END), 0) AS new_documents,
			COALESCE(SUM(CASE WHEN next_reading_date < ? THEN 1 ELSE 0 END), 0) AS overdue
		FROM documents`,
		todayStart, tomorrowStart, todayStart, weekEnd, todayStart); err != nil {
		return nil, fmt.Errorf("sqlx.GetContext(queue counts) > %w", err)
	}
	return &counts, nil
}

// noLimit returns every matching row.
const noLimit = -1

type query struct {
	conds   []string
	args    []any
	orderBy string
	limit   int
}

func (r *DBDocumentRepository) selectDocuments(ctx context.Context, label string, f Filter, q query) ([]Document, error) {
	if q.limit == 0 {
		return nil, nil
	}
	conds := append([]string{}, q.conds...)
	args := append([]any{}, q.args...)
	if f.CategoryID != nil {
		conds = append(conds, "d.category_id = ?")
		args = append(args, *f.CategoryID)
	}
	for _, tag := range f.Tags {
		conds = append(conds, `EXISTS (SELECT 1 FROM document_tags dt JOIN tags t ON t.id = dt.tag_id
			WHERE dt.document_id = d.id AND LOWER(t.name) LIKE ?)`)
		args = append(args, "%"+strings.ToLower(tag)+"%")
	}

	var sb strings.Builder
	sb.WriteString("SELECT d.* FROM documents d")
	if len(conds) > 0 {
		sb.WriteString(" WHERE ")
		sb.WriteString(strings.Join(conds, " AND "))
	}
	if q.orderBy != "" {
		sb.WriteString(" ORDER BY ")
		sb.WriteString(q.orderBy)
	}
	if q.limit > 0 {
		sb.WriteString(" LIMIT ?")
		args = append(args, q.limit)
	}

	var docs []Document
	if err := sqlx.SelectContext(ctx, r.q, &docs, sb.String(), args...); err != nil {
		return nil, fmt.Errorf("sqlx.SelectContext(%s documents) > %w", label, err)
	}
	return docs, nil
}

func (r *DBDocumentRepository) randomOrder() string {
	if r.q.DriverName() == config.DriverSQLite {
		return "RANDOM()"
	}
	return "RAND()"
}
