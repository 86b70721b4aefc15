package datasync

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/at-ishikawa/increader/internal/database"
	"github.com/at-ishikawa/increader/internal/document"
	"github.com/at-ishikawa/increader/internal/learning"
)

//go:generate mockgen -source=store.go -destination=../mocks/datasync/mock_store.go -package=mock_datasync

// Store writes imported documents, extracts and items.
type Store interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context, store Store) error) error

	FindCategoryByName(ctx context.Context, name string) (*document.Category, error)
	CreateCategory(ctx context.Context, category *document.Category) error

	FindDocumentByTitle(ctx context.Context, title string) (*document.Document, error)
	CreateDocument(ctx context.Context, doc *document.Document) error
	// UpdateDocument writes the priority and category of an existing document.
	UpdateDocument(ctx context.Context, doc *document.Document) error
	// SetDocumentTags replaces the document's tags, creating unknown tags.
	SetDocumentTags(ctx context.Context, documentID int64, tags []string) error

	CreateExtract(ctx context.Context, extract *learning.Extract) error
	CreateItem(ctx context.Context, item *learning.LearningItem) error
}

// DBStore implements Store with sqlx.
type DBStore struct {
	db *sqlx.DB
	q  sqlx.ExtContext
}

// NewDBStore creates a new DBStore.
func NewDBStore(db *sqlx.DB) *DBStore {
	return &DBStore{db: db, q: db}
}

// RunInTx runs fn in a transaction. Nested calls reuse the outer transaction.
func (s *DBStore) RunInTx(ctx context.Context, fn func(ctx context.Context, store Store) error) error {
	if _, ok := s.q.(*sqlx.Tx); ok {
		return fn(ctx, s)
	}
	return database.RunInTx(ctx, s.db, func(ctx context.Context, tx *sqlx.Tx) error {
		return fn(ctx, &DBStore{db: s.db, q: tx})
	})
}

// FindCategoryByName returns the first category with the name, or nil if not found.
func (s *DBStore) FindCategoryByName(ctx context.Context, name string) (*document.Category, error) {
	var category document.Category
	err := sqlx.GetContext(ctx, s.q, &category, "SELECT * FROM categories WHERE name = ? ORDER BY id LIMIT 1", name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("sqlx.GetContext(category) > %w", err)
	}
	return &category, nil
}

// CreateCategory inserts a category.
func (s *DBStore) CreateCategory(ctx context.Context, category *document.Category) error {
	result, err := s.q.ExecContext(ctx, "INSERT INTO categories (name, parent_id) VALUES (?, ?)",
		category.Name, category.ParentID)
	if err != nil {
		return fmt.Errorf("q.ExecContext(insert category) > %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("result.LastInsertId() > %w", err)
	}
	category.ID = id
	return nil
}

// FindDocumentByTitle returns the first document with the title, or nil if not found.
func (s *DBStore) FindDocumentByTitle(ctx context.Context, title string) (*document.Document, error) {
	var doc document.Document
	err := sqlx.GetContext(ctx, s.q, &doc, "SELECT * FROM documents WHERE title = ? ORDER BY id LIMIT 1", title)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("sqlx.GetContext(document) > %w", err)
	}
	return &doc, nil
}

// CreateDocument inserts a never-scheduled document.
func (s *DBStore) CreateDocument(ctx context.Context, doc *document.Document) error {
	result, err := s.q.ExecContext(ctx,
		"INSERT INTO documents (title, category_id, imported_date, priority, reading_count) VALUES (?, ?, ?, ?, ?)",
		doc.Title, doc.CategoryID, doc.ImportedDate, doc.Priority, doc.ReadingCount)
	if err != nil {
		return fmt.Errorf("q.ExecContext(insert document) > %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("result.LastInsertId() > %w", err)
	}
	doc.ID = id
	return nil
}

// UpdateDocument updates the document's priority and category.
func (s *DBStore) UpdateDocument(ctx context.Context, doc *document.Document) error {
	if _, err := s.q.ExecContext(ctx, "UPDATE documents SET priority = ?, category_id = ? WHERE id = ?",
		doc.Priority, doc.CategoryID, doc.ID); err != nil {
		return fmt.Errorf("q.ExecContext(update document) > %w", err)
	}
	return nil
}

// SetDocumentTags replaces the document's tags. Blank and repeated names are ignored.
func (s *DBStore) SetDocumentTags(ctx context.Context, documentID int64, tags []string) error {
	if _, err := s.q.ExecContext(ctx, "DELETE FROM document_tags WHERE document_id = ?", documentID); err != nil {
		return fmt.Errorf("q.ExecContext(delete document_tags) > %w", err)
	}

	seen := make(map[string]bool, len(tags))
	for _, name := range tags {
		name = strings.TrimSpace(name)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true

		tagID, err := s.findOrCreateTag(ctx, name)
		if err != nil {
			return err
		}
		if _, err := s.q.ExecContext(ctx, "INSERT INTO document_tags (document_id, tag_id) VALUES (?, ?)",
			documentID, tagID); err != nil {
			return fmt.Errorf("q.ExecContext(insert document_tag) > %w", err)
		}
	}
	return nil
}

func (s *DBStore) findOrCreateTag(ctx context.Context, name string) (int64, error) {
	var id int64
	err := sqlx.GetContext(ctx, s.q, &id, "SELECT id FROM tags WHERE name = ?", name)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("sqlx.GetContext(tag %s) > %w", name, err)
	}

	result, err := s.q.ExecContext(ctx, "INSERT INTO tags (name) VALUES (?)", name)
	if err != nil {
		return 0, fmt.Errorf("q.ExecContext(insert tag %s) > %w", name, err)
	}
	id, err = result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("result.LastInsertId() > %w", err)
	}
	return id, nil
}

// CreateExtract inserts an extract.
func (s *DBStore) CreateExtract(ctx context.Context, extract *learning.Extract) error {
	result, err := s.q.ExecContext(ctx,
		"INSERT INTO extracts (document_id, parent_id, content, priority, created_at) VALUES (?, ?, ?, ?, ?)",
		extract.DocumentID, extract.ParentID, extract.Content, extract.Priority, extract.CreatedAt)
	if err != nil {
		return fmt.Errorf("q.ExecContext(insert extract) > %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("result.LastInsertId() > %w", err)
	}
	extract.ID = id
	return nil
}

// CreateItem inserts an unscheduled learning item.
func (s *DBStore) CreateItem(ctx context.Context, item *learning.LearningItem) error {
	result, err := s.q.ExecContext(ctx,
		`INSERT INTO learning_items (extract_id, item_type, question, answer, interval_days, repetitions,
		easiness, priority, difficulty, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		item.ExtractID, item.ItemType, item.Question, item.Answer, item.Interval, item.Repetitions,
		item.Easiness, item.Priority, item.Difficulty, item.CreatedAt)
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
