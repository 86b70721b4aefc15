// Package queue decides which documents to read next.
package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/at-ishikawa/increader/internal/document"
	"github.com/at-ishikawa/increader/internal/random"
)

// Band is the selection strategy in effect for a randomness factor.
type Band string

const (
	BandDeterministic Band = "deterministic"
	BandLow           Band = "low"
	BandMedium        Band = "medium"
	BandHigh          Band = "high"
)

const (
	lowBandMax    = 0.5
	mediumBandMax = 0.8
)

// BandFor returns the band of a randomness factor.
func BandFor(randomness float64) Band {
	switch {
	case randomness <= 0:
		return BandDeterministic
	case randomness <= lowBandMax:
		return BandLow
	case randomness <= mediumBandMax:
		return BandMedium
	default:
		return BandHigh
	}
}

// Option configures a Manager.
type Option func(*Manager)

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) {
		m.now = now
	}
}

// WithRandom overrides the random source used for weights and sampling.
func WithRandom(src random.Source) Option {
	return func(m *Manager) {
		m.rand = src
	}
}

// WithRandomness sets the initial randomness factor.
func WithRandomness(randomness float64) Option {
	return func(m *Manager) {
		m.randomness = clampRandomness(randomness)
	}
}

// WithLocation sets the time zone whose midnight starts a day in stats and due-date buckets.
func WithLocation(loc *time.Location) Option {
	return func(m *Manager) {
		m.location = loc
	}
}

// Manager selects documents for reading. It is safe for concurrent use.
type Manager struct {
	repo     document.DocumentRepository
	now      func() time.Time
	rand     random.Source
	location *time.Location

	mu         sync.RWMutex
	randomness float64
}

// NewManager creates a new Manager with randomness 0 unless WithRandomness is given.
func NewManager(repo document.DocumentRepository, opts ...Option) *Manager {
	m := &Manager{
		repo:     repo,
		now:      time.Now,
		location: time.Local,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.rand == nil {
		m.rand = random.NewSource()
	}
	return m
}

func clampRandomness(f float64) float64 {
	return max(0, min(1, f))
}

// SetRandomness sets the randomness factor, clamped to [0, 1].
func (m *Manager) SetRandomness(f float64) float64 {
	f = clampRandomness(f)
	m.mu.Lock()
	m.randomness = f
	m.mu.Unlock()
	return f
}

// Location returns the time zone of the manager's calendar days.
func (m *Manager) Location() *time.Location {
	return m.location
}

// Randomness returns the current randomness factor.
func (m *Manager) Randomness() float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.randomness
}

// NextDocuments returns up to count documents to read next, chosen by the band of the current
// randomness factor. No document appears twice.
func (m *Manager) NextDocuments(ctx context.Context, count int, f document.Filter) ([]document.Document, error) {
	if count <= 0 {
		return []document.Document{}, nil
	}

	r := m.Randomness()
	band := BandFor(r)
	sel := selection{
		repo:       m.repo,
		filter:     f,
		count:      count,
		randomness: r,
		now:        m.now().UTC(),
		rand:       m.rand,
	}

	var docs []document.Document
	var err error
	switch band {
	case BandDeterministic:
		docs, err = sel.deterministic(ctx)
	case BandLow:
		docs, err = sel.low(ctx)
	case BandMedium:
		docs, err = sel.medium(ctx)
	default:
		docs, err = sel.high(ctx)
	}
	if err != nil {
		slog.Default().Error("failed to select documents",
			slog.String("band", string(band)),
			slog.Int("count", count),
			slog.Any("error", err),
		)
		return nil, err
	}
	docs = nonNil(docs)

	slog.Default().Debug("selected documents",
		slog.String("band", string(band)),
		slog.Float64("randomness", r),
		slog.Int("count", count),
		slog.Int("selected", len(docs)),
	)
	return docs, nil
}

// UpdateDocumentPriority sets a document's priority, clamped to [1, 100].
func (m *Manager) UpdateDocumentPriority(ctx context.Context, documentID int64, priority int) (int, error) {
	priority = max(document.MinPriority, min(document.MaxPriority, priority))
	err := m.repo.RunInTx(ctx, func(ctx context.Context, repo document.DocumentRepository) error {
		doc, err := repo.FindByID(ctx, documentID)
		if err != nil {
			return err
		}
		if doc == nil {
			return fmt.Errorf("document %d: %w", documentID, document.ErrNotFound)
		}
		return repo.UpdatePriority(ctx, documentID, priority)
	})
	if err != nil {
		level := slog.LevelError
		if errors.Is(err, document.ErrNotFound) {
			level = slog.LevelWarn
		}
		slog.Default().Log(ctx, level, "failed to update document priority",
			slog.Int64("document_id", documentID),
			slog.Any("error", err),
		)
		return 0, err
	}
	return priority, nil
}
