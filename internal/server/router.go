package server

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type RouterConfig struct {
	AllowedOrigins []string

	ItemHandler      *ItemHandler
	DocumentHandler  *DocumentHandler
	QueueHandler     *QueueHandler
	ReadingHandler   *ReadingHandler
	DashboardHandler *DashboardHandler
	AnalysisHandler  *AnalysisHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestLogger())
	r.Use(CORS(cfg.AllowedOrigins))

	r.GET("/healthcheck", HealthCheck)

	api := r.Group("/api")
	{
		if cfg.ItemHandler != nil {
			api.GET("/items/due", cfg.ItemHandler.DueItems)
			api.GET("/items/workload", cfg.ItemHandler.EstimateWorkload)
			api.GET("/items/leeches", cfg.ItemHandler.Leeches)
			api.POST("/items/:id/responses", cfg.ItemHandler.ProcessResponse)
			api.POST("/items/:id/treatments", cfg.ItemHandler.ApplyTreatment)
			api.POST("/extracts/:id/cloze", cfg.ItemHandler.CreateCloze)
		}

		if cfg.DocumentHandler != nil {
			api.POST("/documents/:id/schedule", cfg.DocumentHandler.Schedule)
			api.PUT("/documents/:id/priority", cfg.DocumentHandler.UpdatePriority)
		}

		if cfg.QueueHandler != nil {
			api.GET("/queue/next", cfg.QueueHandler.Next)
			api.GET("/queue/stats", cfg.QueueHandler.Stats)
			api.GET("/queue/due", cfg.QueueHandler.DueByDate)
			api.GET("/queue/randomness", cfg.QueueHandler.Randomness)
			api.PUT("/queue/randomness", cfg.QueueHandler.SetRandomness)
		}

		if cfg.ReadingHandler != nil {
			api.GET("/reading", cfg.ReadingHandler.Queue)
			api.POST("/reading", cfg.ReadingHandler.Add)
			api.POST("/reading/:id/sessions", cfg.ReadingHandler.RecordSession)
		}

		if cfg.DashboardHandler != nil {
			api.GET("/dashboard", cfg.DashboardHandler.Dashboard)
		}

		if cfg.AnalysisHandler != nil {
			api.GET("/items/:id/metrics", cfg.AnalysisHandler.ItemMetrics)
			api.GET("/analysis/session", cfg.AnalysisHandler.Session)
			api.GET("/analysis/efficiency", cfg.AnalysisHandler.Efficiency)
		}
	}

	return r
}

// CORS allows the given origins. With no origins, cross-origin requests get no CORS headers.
func CORS(allowedOrigins []string) gin.HandlerFunc {
	if len(allowedOrigins) == 0 {
		return func(c *gin.Context) { c.Next() }
	}
	return cors.New(cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions},
		AllowHeaders: []string{"Content-Type"},
		MaxAge:       time.Hour,
	})
}

func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}
		attrs := []any{
			slog.String("method", strings.ToUpper(c.Request.Method)),
			slog.String("path", path),
			slog.Int("status", status),
			slog.Int64("duration_ms", time.Since(start).Milliseconds()),
		}

		switch {
		case status >= 500:
			slog.Default().Error("HTTP request", attrs...)
		case status >= 400:
			slog.Default().Warn("HTTP request", attrs...)
		default:
			slog.Default().Debug("HTTP request", attrs...)
		}
	}
}
