// Package testutil provides shared test helpers for creating config files and database fixtures.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/increader/internal/config"
	"github.com/at-ishikawa/increader/internal/database"
	"github.com/at-ishikawa/increader/internal/document"
	"github.com/at-ishikawa/increader/internal/learning"
)

// SetupTestConfig creates a config file for a fresh SQLite database under tmpDir.
// Returns the path to the generated config file and the database settings it contains.
func SetupTestConfig(t *testing.T, tmpDir string) (string, config.DatabaseConfig) {
	t.Helper()

	dbConfig := config.DatabaseConfig{
		Driver: config.DriverSQLite,
		Path:   filepath.Join(tmpDir, "increader.db"),
	}
	configContent := fmt.Sprintf(`database:
  driver: %s
  path: %s
`, dbConfig.Driver, dbConfig.Path)

	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(configContent), 0o600))
	return cfgPath, dbConfig
}

// NewSQLiteDB opens a migrated SQLite database in a temporary directory.
// The connection is closed when the test ends.
func NewSQLiteDB(t *testing.T) *sqlx.DB {
	t.Helper()

	db, err := database.Open(config.DatabaseConfig{
		Driver: config.DriverSQLite,
		Path:   filepath.Join(t.TempDir(), "increader.db"),
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, database.Migrate(db, database.Up))
	return db
}

// DocumentOption configures optional fields when creating a document fixture.
type DocumentOption func(*document.Document)

// WithPriority sets the document priority.
func WithPriority(priority int) DocumentOption {
	return func(doc *document.Document) {
		doc.Priority = priority
	}
}

// WithNextReadingDate marks the document as scheduled for the given date.
func WithNextReadingDate(next time.Time) DocumentOption {
	return func(doc *document.Document) {
		doc.NextReadingDate = &next
	}
}

// CreateDocument inserts a document fixture and returns it with its id.
func CreateDocument(t *testing.T, db *sqlx.DB, title string, opts ...DocumentOption) document.Document {
	t.Helper()

	doc := document.Document{
		Title:        title,
		ImportedDate: time.Now().UTC(),
		Priority:     document.DefaultPriority,
	}
	for _, opt := range opts {
		opt(&doc)
	}

	result, err := db.Exec(
		"INSERT INTO documents (title, imported_date, priority, next_reading_date) VALUES (?, ?, ?, ?)",
		doc.Title, doc.ImportedDate, doc.Priority, doc.NextReadingDate)
	require.NoError(t, err)
	doc.ID, err = result.LastInsertId()
	require.NoError(t, err)
	return doc
}

// CreateExtract inserts an extract fixture for the document.
func CreateExtract(t *testing.T, db *sqlx.DB, documentID int64, content string) learning.Extract {
	t.Helper()

	extract := learning.Extract{
		DocumentID: documentID,
		Content:    content,
		Priority:   learning.DefaultPriority,
		CreatedAt:  time.Now().UTC(),
	}
	result, err := db.Exec(
		"INSERT INTO extracts (document_id, content, priority, created_at) VALUES (?, ?, ?, ?)",
		extract.DocumentID, extract.Content, extract.Priority, extract.CreatedAt)
	require.NoError(t, err)
	extract.ID, err = result.LastInsertId()
	require.NoError(t, err)
	return extract
}
