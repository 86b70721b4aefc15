package main

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/at-ishikawa/increader/internal/config"
	"github.com/at-ishikawa/increader/internal/database"
	"github.com/at-ishikawa/increader/internal/document"
	"github.com/at-ishikawa/increader/internal/learning"
	"github.com/at-ishikawa/increader/internal/queue"
	"github.com/at-ishikawa/increader/internal/reading"
	"github.com/at-ishikawa/increader/internal/srs"
	"github.com/at-ishikawa/increader/internal/statistics"
)

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to create config loader: %w", err)
	}
	cfg, err := loader.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}

func openDatabase(ctx context.Context) (*config.Config, *sqlx.DB, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	db, err := database.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("database.Connect() > %w", err)
	}
	return cfg, db, nil
}

// services holds every component a command can need. Call close when done.
type services struct {
	db          *sqlx.DB
	items       *learning.DBItemRepository
	scheduler   *srs.Scheduler
	leeches     *srs.LeechAnalyzer
	documents   *reading.DocumentScheduler
	queue       *queue.Manager
	incremental *reading.IncrementalManager
	reporter    *statistics.Reporter
	analyzer    *statistics.ItemAnalyzer
}

func openServices(ctx context.Context, queueOpts ...queue.Option) (*services, error) {
	cfg, db, err := openDatabase(ctx)
	if err != nil {
		return nil, err
	}

	items := learning.NewDBItemRepository(db)
	documents := document.NewDBDocumentRepository(db)
	// Flashcard and document forecasts share the calendar days of the local time zone.
	scheduler := srs.NewScheduler(items, srs.WithLocation(time.Local))
	queueManager := queue.NewManager(documents,
		append([]queue.Option{queue.WithRandomness(cfg.Queue.Randomness), queue.WithLocation(time.Local)}, queueOpts...)...,
	)

	return &services{
		db:          db,
		items:       items,
		scheduler:   scheduler,
		leeches:     srs.NewLeechAnalyzer(items, srs.LeechConfig(cfg.Leech)),
		documents:   reading.NewDocumentScheduler(documents),
		queue:       queueManager,
		incremental: reading.NewIncrementalManager(document.NewDBReadingRepository(db)),
		reporter:    statistics.NewReporter(items, queueManager, items),
		analyzer:    statistics.NewItemAnalyzer(items),
	}, nil
}

func (s *services) close() {
	_ = s.db.Close()
}

func parseID(name, value string) (int64, error) {
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s %q: must be a positive integer", name, value)
	}
	return id, nil
}

func parseInt(name, value string) (int, error) {
	v, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: must be an integer", name, value)
	}
	return v, nil
}

// optionalID treats zero as unset.
func optionalID(id int64) *int64 {
	if id == 0 {
		return nil
	}
	return &id
}
