package queue

import (
	"math"
	"slices"

	"github.com/at-ishikawa/increader/internal/document"
	"github.com/at-ishikawa/increader/internal/random"
)

// weightedSample picks k distinct documents from pool with probability proportional to weights,
// using Efraimidis-Spirakis keys log(u)/w. When every weight is zero the draw is uniform.
// The result keeps the draw order, most favoured first.
func weightedSample(pool []document.Document, weights []float64, k int, src random.Source) []document.Document {
	if k >= len(pool) {
		return slices.Clone(pool)
	}
	if k <= 0 {
		return nil
	}

	var total float64
	for _, w := range weights {
		total += max(w, 0)
	}

	type keyed struct {
		index int
		key   float64
	}
	keys := make([]keyed, len(pool))
	for i := range pool {
		w := 1.0
		if total > 0 {
			w = max(weights[i], 0) / total
		}
		key := math.Inf(-1)
		if w > 0 {
			key = math.Log(src.Float64()) / w
		}
		keys[i] = keyed{index: i, key: key}
	}
	slices.SortStableFunc(keys, func(a, b keyed) int {
		switch {
		case a.key > b.key:
			return -1
		case a.key < b.key:
			return 1
		default:
			return 0
		}
	})

	result := make([]document.Document, k)
	for i := range k {
		result[i] = pool[keys[i].index]
	}
	return result
}

// dedupe keeps the first occurrence of each document id.
func dedupe(groups ...[]document.Document) []document.Document {
	seen := make(map[int64]struct{})
	var pool []document.Document
	for _, docs := range groups {
		for _, doc := range docs {
			if _, ok := seen[doc.ID]; ok {
				continue
			}
			seen[doc.ID] = struct{}{}
			pool = append(pool, doc)
		}
	}
	return pool
}
