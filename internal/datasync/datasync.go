// Package datasync imports documents, extracts and flashcards from YAML seed files into the database.
package datasync

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/at-ishikawa/increader/internal/document"
	"github.com/at-ishikawa/increader/internal/learning"
)

// ImportResult tracks counts for each import operation.
type ImportResult struct {
	DocumentsNew     int `json:"documents_new" yaml:"documents_new"`
	DocumentsSkipped int `json:"documents_skipped" yaml:"documents_skipped"`
	DocumentsUpdated int `json:"documents_updated" yaml:"documents_updated"`
	CategoriesNew    int `json:"categories_new" yaml:"categories_new"`
	ExtractsNew      int `json:"extracts_new" yaml:"extracts_new"`
	ItemsNew         int `json:"items_new" yaml:"items_new"`
}

// ImportOptions controls import behavior.
type ImportOptions struct {
	DryRun bool
	// UpdateExisting rewrites priority, category and tags of documents matched by title.
	// Extracts of existing documents are never re-imported.
	UpdateExisting bool
}

type Option func(*Importer)

// WithClock sets the time source used for imported and created dates.
func WithClock(now func() time.Time) Option {
	return func(imp *Importer) {
		imp.now = now
	}
}

// Importer writes seed data through a Store and reports each document to writer.
type Importer struct {
	store  Store
	writer io.Writer
	now    func() time.Time
}

// NewImporter creates a new Importer.
func NewImporter(store Store, writer io.Writer, opts ...Option) *Importer {
	imp := &Importer{
		store:  store,
		writer: writer,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(imp)
	}
	return imp
}

// Import writes every seed document in its own transaction.
// Documents are matched by title; categories by name.
func (imp *Importer) Import(ctx context.Context, seed *Seed, opts ImportOptions) (*ImportResult, error) {
	var result ImportResult
	categories := make(map[string]*int64)

	for _, doc := range seed.Documents {
		err := imp.store.RunInTx(ctx, func(ctx context.Context, store Store) error {
			return imp.importDocument(ctx, store, doc, categories, opts, &result)
		})
		if err != nil {
			slog.Default().Error("failed to import a document",
				slog.String("title", doc.Title),
				slog.Any("error", err),
			)
			return nil, fmt.Errorf("importDocument(%q) > %w", doc.Title, err)
		}
	}
	return &result, nil
}

func (imp *Importer) importDocument(ctx context.Context, store Store, seedDoc SeedDocument, categories map[string]*int64, opts ImportOptions, result *ImportResult) error {
	existing, err := store.FindDocumentByTitle(ctx, seedDoc.Title)
	if err != nil {
		return fmt.Errorf("FindDocumentByTitle() > %w", err)
	}

	if existing != nil && !opts.UpdateExisting {
		fmt.Fprintf(imp.writer, "  [SKIP]  %q\n", seedDoc.Title)
		result.DocumentsSkipped++
		return nil
	}

	categoryID, err := imp.resolveCategory(ctx, store, seedDoc.Category, categories, opts, result)
	if err != nil {
		return err
	}

	if existing != nil {
		existing.Priority = priorityOrDefault(seedDoc.Priority)
		existing.CategoryID = categoryID
		if !opts.DryRun {
			if err := store.UpdateDocument(ctx, existing); err != nil {
				return fmt.Errorf("UpdateDocument() > %w", err)
			}
			if err := store.SetDocumentTags(ctx, existing.ID, seedDoc.Tags); err != nil {
				return fmt.Errorf("SetDocumentTags() > %w", err)
			}
		}
		fmt.Fprintf(imp.writer, "  [UPDATE]  %q\n", seedDoc.Title)
		result.DocumentsUpdated++
		return nil
	}

	now := imp.now().UTC()
	doc := &document.Document{
		Title:        seedDoc.Title,
		CategoryID:   categoryID,
		ImportedDate: now,
		Priority:     priorityOrDefault(seedDoc.Priority),
	}
	if !opts.DryRun {
		if err := store.CreateDocument(ctx, doc); err != nil {
			return fmt.Errorf("CreateDocument() > %w", err)
		}
		if err := store.SetDocumentTags(ctx, doc.ID, seedDoc.Tags); err != nil {
			return fmt.Errorf("SetDocumentTags() > %w", err)
		}
	}

	items := 0
	for _, seedExtract := range seedDoc.Extracts {
		n, err := imp.importExtract(ctx, store, doc.ID, seedExtract, now, opts)
		if err != nil {
			return err
		}
		result.ExtractsNew++
		items += n
	}
	result.ItemsNew += items

	fmt.Fprintf(imp.writer, "  [NEW]  %q (%d extracts, %d items)\n", seedDoc.Title, len(seedDoc.Extracts), items)
	result.DocumentsNew++
	return nil
}

func (imp *Importer) importExtract(ctx context.Context, store Store, documentID int64, seedExtract SeedExtract, now time.Time, opts ImportOptions) (int, error) {
	extract := &learning.Extract{
		DocumentID: documentID,
		Content:    seedExtract.Content,
		Priority:   priorityOrDefault(seedExtract.Priority),
		CreatedAt:  now,
	}
	if !opts.DryRun {
		if err := store.CreateExtract(ctx, extract); err != nil {
			return 0, fmt.Errorf("CreateExtract() > %w", err)
		}
	}

	items := make([]*learning.LearningItem, 0, len(seedExtract.Items)+len(seedExtract.Clozes))
	for _, seedItem := range seedExtract.Items {
		itemType := seedItem.Type
		if itemType == "" {
			itemType = learning.ItemTypeQA
		}
		items = append(items, &learning.LearningItem{
			ExtractID: extract.ID,
			ItemType:  itemType,
			Question:  seedItem.Question,
			Answer:    seedItem.Answer,
			Easiness:  learning.DefaultEasiness,
			Priority:  extract.Priority,
			CreatedAt: now,
		})
	}
	for _, seedCloze := range seedExtract.Clozes {
		item, err := learning.NewClozeItem(*extract, seedCloze.Text, seedCloze.Hint, now)
		if err != nil {
			return 0, fmt.Errorf("learning.NewClozeItem(%q) > %w", seedCloze.Text, err)
		}
		items = append(items, item)
	}

	if !opts.DryRun {
		for _, item := range items {
			if err := store.CreateItem(ctx, item); err != nil {
				return 0, fmt.Errorf("CreateItem() > %w", err)
			}
		}
	}
	return len(items), nil
}

// resolveCategory returns the id of the named category, creating it when missing.
// In a dry run a missing category resolves to nil.
func (imp *Importer) resolveCategory(ctx context.Context, store Store, name string, categories map[string]*int64, opts ImportOptions, result *ImportResult) (*int64, error) {
	if name == "" {
		return nil, nil
	}
	if id, ok := categories[name]; ok {
		return id, nil
	}

	category, err := store.FindCategoryByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("FindCategoryByName() > %w", err)
	}
	if category == nil {
		result.CategoriesNew++
		if opts.DryRun {
			categories[name] = nil
			return nil, nil
		}
		category = &document.Category{Name: name}
		if err := store.CreateCategory(ctx, category); err != nil {
			return nil, fmt.Errorf("CreateCategory() > %w", err)
		}
	}

	id := category.ID
	categories[name] = &id
	return &id, nil
}

func priorityOrDefault(priority int) int {
	if priority == 0 {
		return document.DefaultPriority
	}
	return priority
}
