package queue

import (
	"context"
	"fmt"
	"time"

	"github.com/at-ishikawa/increader/internal/document"
	"github.com/at-ishikawa/increader/internal/random"
)

const (
	diverseCategories      = 5
	docsPerDiverseCategory = 2
	recentImportWindow     = 7 * 24 * time.Hour
)

// selection holds the inputs of a single NextDocuments call.
type selection struct {
	repo       document.DocumentRepository
	filter     document.Filter
	count      int
	randomness float64
	now        time.Time
	rand       random.Source
}

// deterministic returns due documents, padded with new ones.
func (s selection) deterministic(ctx context.Context) ([]document.Document, error) {
	due, err := s.repo.FindDue(ctx, s.filter, s.now, s.count)
	if err != nil {
		return nil, fmt.Errorf("FindDue > %w", err)
	}
	if len(due) >= s.count {
		return due, nil
	}

	fresh, err := s.repo.FindNew(ctx, s.filter, document.OrderPriorityThenImported, s.count-len(due))
	if err != nil {
		return nil, fmt.Errorf("FindNew > %w", err)
	}
	return append(due, fresh...), nil
}

// low keeps some due documents and fills the rest mostly by priority.
func (s selection) low(ctx context.Context) ([]document.Document, error) {
	poolSize := s.count * 2
	due, err := s.repo.FindDue(ctx, s.filter, s.now, poolSize)
	if err != nil {
		return nil, fmt.Errorf("FindDue > %w", err)
	}
	fresh, err := s.repo.FindNew(ctx, s.filter, document.OrderPriorityThenImported, poolSize)
	if err != nil {
		return nil, fmt.Errorf("FindNew > %w", err)
	}

	pool := dedupe(due, fresh)
	if len(pool) < s.count {
		upcoming, err := s.repo.FindUpcoming(ctx, s.filter, s.now, s.count-len(pool))
		if err != nil {
			return nil, fmt.Errorf("FindUpcoming > %w", err)
		}
		pool = dedupe(pool, upcoming)
	}
	if len(pool) <= s.count {
		return pool, nil
	}

	kept := min(len(due), s.count/2)
	result := append([]document.Document{}, due[:kept]...)
	taken := make(map[int64]struct{}, kept)
	for _, doc := range result {
		taken[doc.ID] = struct{}{}
	}

	var rest []document.Document
	for _, doc := range pool {
		if _, ok := taken[doc.ID]; !ok {
			rest = append(rest, doc)
		}
	}
	weights := make([]float64, len(rest))
	for i, doc := range rest {
		weights[i] = float64(doc.Priority)*(1-s.randomness) + s.rand.Float64()*50*s.randomness
	}
	return append(result, weightedSample(rest, weights, s.count-kept, s.rand)...), nil
}

// medium mixes due, new and random documents, favouring new and recently imported ones.
func (s selection) medium(ctx context.Context) ([]document.Document, error) {
	due, err := s.repo.FindDue(ctx, s.filter, s.now, s.count)
	if err != nil {
		return nil, fmt.Errorf("FindDue > %w", err)
	}
	fresh, err := s.repo.FindNew(ctx, s.filter, document.OrderRecentlyImported, s.count)
	if err != nil {
		return nil, fmt.Errorf("FindNew > %w", err)
	}
	shuffled, err := s.repo.FindRandom(ctx, s.filter, s.count)
	if err != nil {
		return nil, fmt.Errorf("FindRandom > %w", err)
	}

	pool := dedupe(due, fresh, shuffled)
	if len(pool) <= s.count {
		return pool, nil
	}

	r := s.randomness
	weights := make([]float64, len(pool))
	for i, doc := range pool {
		weight := float64(doc.Priority)*(1-r) + s.rand.Float64()*100*r
		if doc.IsNew() {
			weight += 20 * r
		}
		if s.now.Sub(doc.ImportedDate) < recentImportWindow {
			weight += 15 * r
		}
		weights[i] = weight
	}
	return weightedSample(pool, weights, s.count, s.rand), nil
}

// high draws mostly at random, adding documents from small categories and ones not read for a long time.
func (s selection) high(ctx context.Context) ([]document.Document, error) {
	shuffled, err := s.repo.FindRandom(ctx, s.filter, s.count*2)
	if err != nil {
		return nil, fmt.Errorf("FindRandom > %w", err)
	}

	categoryIDs, err := s.repo.FindLeastPopulatedCategories(ctx, diverseCategories)
	if err != nil {
		return nil, fmt.Errorf("FindLeastPopulatedCategories > %w", err)
	}
	var diverse []document.Document
	for _, categoryID := range categoryIDs {
		if s.filter.CategoryID != nil && *s.filter.CategoryID != categoryID {
			continue
		}
		f := document.Filter{CategoryID: &categoryID, Tags: s.filter.Tags}
		docs, err := s.repo.FindRandom(ctx, f, docsPerDiverseCategory)
		if err != nil {
			return nil, fmt.Errorf("FindRandom(category %d) > %w", categoryID, err)
		}
		diverse = append(diverse, docs...)
	}

	stale, err := s.repo.FindLeastRecentlyRead(ctx, s.filter, s.count/2)
	if err != nil {
		return nil, fmt.Errorf("FindLeastRecentlyRead > %w", err)
	}

	pool := dedupe(shuffled, diverse, stale)
	if len(pool) <= s.count {
		return pool, nil
	}

	weights := make([]float64, len(pool))
	for i, doc := range pool {
		weights[i] = float64(doc.Priority)*0.2 + s.rand.Float64()*100*0.8
	}
	return weightedSample(pool, weights, s.count, s.rand), nil
}
