package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/at-ishikawa/increader/internal/bootstrap"
	"github.com/at-ishikawa/increader/internal/config"
	"github.com/at-ishikawa/increader/internal/database"
	"github.com/at-ishikawa/increader/internal/document"
	"github.com/at-ishikawa/increader/internal/learning"
	"github.com/at-ishikawa/increader/internal/queue"
	"github.com/at-ishikawa/increader/internal/reading"
	"github.com/at-ishikawa/increader/internal/server"
	"github.com/at-ishikawa/increader/internal/srs"
	"github.com/at-ishikawa/increader/internal/statistics"
)

var configFile string

func main() {
	var debugMode bool
	rootCmd := &cobra.Command{
		Use:           "increader-server",
		Short:         "Incremental reading scheduler HTTP server",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			setupLogger(debugMode)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context())
		},
	}
	rootCmd.Flags().StringVar(&configFile, "config", "", "config file path")
	rootCmd.Flags().BoolVar(&debugMode, "debug", false, "Enable debug mode")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func setupLogger(debugMode bool) {
	logLevel := slog.LevelInfo
	if debugMode {
		logLevel = slog.LevelDebug
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	slog.SetDefault(
		slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level:     logLevel,
			AddSource: true,
		})),
	)
}

func run(ctx context.Context) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loadConfig() > %w", err)
	}

	app := bootstrap.New(
		bootstrap.WithShutdownTimeout(time.Duration(cfg.Server.ShutdownTimeoutSeconds) * time.Second),
	)

	db, err := database.Connect(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("database.Connect() > %w", err)
	}
	app.AddCloser("database", db)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           newHandler(cfg, db),
		ReadHeaderTimeout: 10 * time.Second,
	}
	app.AddShutdownHook("http server", srv.Shutdown)

	return app.Run(ctx, func(ctx context.Context) error {
		tls := cfg.Server.TLS.CertFile != ""
		slog.Default().Info("starting server",
			slog.String("addr", srv.Addr),
			slog.String("driver", cfg.Database.Driver),
			slog.Bool("tls", tls),
		)

		var err error
		if tls {
			err = srv.ListenAndServeTLS(cfg.Server.TLS.CertFile, cfg.Server.TLS.KeyFile)
		} else {
			err = srv.ListenAndServe()
		}
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
}

// newHandler wires the stores and services behind the HTTP routes.
func newHandler(cfg *config.Config, db *sqlx.DB) http.Handler {
	items := learning.NewDBItemRepository(db)
	documents := document.NewDBDocumentRepository(db)
	readings := document.NewDBReadingRepository(db)

	scheduler := srs.NewScheduler(items, srs.WithLocation(time.Local))
	leeches := srs.NewLeechAnalyzer(items, srs.LeechConfig(cfg.Leech))
	documentScheduler := reading.NewDocumentScheduler(documents)
	queueManager := queue.NewManager(documents,
		queue.WithRandomness(cfg.Queue.Randomness),
		queue.WithLocation(time.Local),
	)
	incremental := reading.NewIncrementalManager(readings)
	reporter := statistics.NewReporter(items, queueManager, items)

	router := server.NewRouter(server.RouterConfig{
		AllowedOrigins:   cfg.Server.CORS.AllowedOrigins,
		ItemHandler:      server.NewItemHandler(scheduler, leeches),
		DocumentHandler:  server.NewDocumentHandler(documentScheduler, queueManager),
		QueueHandler:     server.NewQueueHandler(queueManager),
		ReadingHandler:   server.NewReadingHandler(incremental),
		DashboardHandler: server.NewDashboardHandler(reporter),
		AnalysisHandler:  server.NewAnalysisHandler(statistics.NewItemAnalyzer(items)),
	})
	if cfg.Server.TLS.CertFile != "" {
		return router
	}
	return h2c.NewHandler(router, &http2.Server{})
}

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("config.NewConfigLoader() > %w", err)
	}
	return loader.Load()
}
