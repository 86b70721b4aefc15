// Package server provides the HTTP handlers of the scheduling service.
package server

import (
	"context"

	"github.com/at-ishikawa/increader/internal/document"
	"github.com/at-ishikawa/increader/internal/learning"
	"github.com/at-ishikawa/increader/internal/reading"
	"github.com/at-ishikawa/increader/internal/srs"
	"github.com/at-ishikawa/increader/internal/statistics"
)

//go:generate mockgen -source=services.go -destination=../mocks/server/mock_services.go -package=mock_server

// ItemService schedules flashcards.
type ItemService interface {
	ProcessResponse(ctx context.Context, itemID int64, grade int, responseTimeMs *int) (*srs.Result, error)
	DueItems(ctx context.Context, limit int, categoryID *int64) ([]learning.LearningItem, error)
	EstimateWorkload(ctx context.Context, days int) (map[string]int, error)
	CreateClozeItem(ctx context.Context, extractID int64, text string, hint string) (*learning.LearningItem, error)
}

// LeechService finds and treats items that keep failing.
type LeechService interface {
	DetectLeeches(ctx context.Context) ([]srs.LeechReport, error)
	ApplyTreatment(ctx context.Context, itemID int64, strategy srs.TreatmentStrategy) (*learning.LearningItem, error)
}

// DocumentScheduler schedules documents after a reading.
type DocumentScheduler interface {
	ScheduleDocument(ctx context.Context, documentID int64, rating int) (*reading.DocumentResult, error)
}

// QueueService selects and summarises the reading queue.
type QueueService interface {
	NextDocuments(ctx context.Context, count int, f document.Filter) ([]document.Document, error)
	Stats(ctx context.Context) (*document.QueueCounts, error)
	DocumentsByDueDate(ctx context.Context, days int, categoryID *int64, includeNew bool) (map[string][]document.Document, error)
	Randomness() float64
	SetRandomness(f float64) float64
	UpdateDocumentPriority(ctx context.Context, documentID int64, priority int) (int, error)
}

// ReadingService tracks incremental reading progress.
type ReadingService interface {
	AddDocument(ctx context.Context, documentID int64, priority float64) (*document.IncrementalReading, error)
	ReadingQueue(ctx context.Context, limit int) ([]document.ReadingQueueEntry, error)
	RecordSession(ctx context.Context, readingID int64, position int, grade int, percentComplete float64) (*document.IncrementalReading, error)
}

// DashboardService builds the combined workload report.
type DashboardService interface {
	Dashboard(ctx context.Context, days int) (*statistics.Dashboard, error)
}

// AnalysisService reports how well flashcards are remembered.
type AnalysisService interface {
	ItemMetrics(ctx context.Context, itemID int64) (*statistics.ItemMetrics, error)
	SessionAnalysis(ctx context.Context, days int) (*statistics.SessionAnalysis, error)
	LearningEfficiency(ctx context.Context, itemIDs []int64) (*statistics.LearningEfficiency, error)
}
