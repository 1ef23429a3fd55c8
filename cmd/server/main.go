package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/ZanzyTHEbar/team-gravity/internal/analysis"
	"github.com/ZanzyTHEbar/team-gravity/internal/cache"
	"github.com/ZanzyTHEbar/team-gravity/internal/errors"
	"github.com/ZanzyTHEbar/team-gravity/internal/monitoring"
	"github.com/ZanzyTHEbar/team-gravity/internal/ratelimit"
	"github.com/ZanzyTHEbar/team-gravity/internal/types"
)

// connectionsRequest is shared by the structure and recommendations endpoints.
type connectionsRequest struct {
	Members     []types.Member        `json:"members" binding:"required"`
	Connections []analysis.Connection `json:"connections"`
}

type patternsRequest struct {
	Connections []analysis.Connection `json:"connections"`
	Innovators  []string              `json:"innovators,omitempty"`
}

type recommendationsRequest struct {
	Members     []types.Member            `json:"members" binding:"required"`
	Connections []analysis.Connection     `json:"connections"`
	Structure   analysis.NetworkStructure `json:"structure"`
}

func main() {
	// Structured logging setup
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Configuration from environment with defaults
	port := getEnvOrDefault("PORT", "8080")
	cacheTTL := getDurationOrDefault("CACHE_TTL", 15*time.Minute)

	r := setupRouter(cacheTTL)

	// Start server with graceful shutdown
	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	go func() {
		slog.Info("Starting server", "port", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited")
}

// setupRouter wires the engine and all middleware into a gin engine.
func setupRouter(cacheTTL time.Duration) *gin.Engine {
	analyzer := analysis.NewAnalyzer()

	r := gin.New()

	appMetrics := monitoring.NewMetrics()
	appLogger := monitoring.NewLogger()

	r.Use(monitoring.RequestIDMiddleware())
	r.Use(monitoring.MonitoringMiddleware(appMetrics, appLogger))

	// Error handling middleware
	r.Use(errors.ErrorHandler())
	r.Use(errors.RecoveryHandler())

	// CORS for dashboard callers
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "X-Request-ID"}
	r.Use(cors.New(corsConfig))

	// Per-IP rate limiting
	limiter := ratelimit.NewRateLimiter(ratelimit.DefaultConfig(), appMetrics)
	r.Use(limiter.Middleware())

	// Response cache for the analysis endpoints
	appCache := cache.NewCache(cacheTTL)
	r.Use(appCache.Middleware(appMetrics))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   "1.0.0",
			"metrics":   appMetrics.GetStats(),
		})
	})

	// Full pipeline: records + members in, complete report out.
	r.POST("/analyze", func(c *gin.Context) {
		var req types.AnalyzeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			appErr := errors.NewValidationError("invalid analysis request", err.Error())
			errors.LogError(c, appErr)
			c.JSON(appErr.HTTPStatus, appErr)
			return
		}

		start := time.Now()
		report := analyzer.Run(req.Records, req.Members, analysis.ExternalGroupings{Innovators: req.Innovators})

		appMetrics.RecordAnalysisRun(report.SkippedRecords)
		appLogger.AnalysisLogger(len(req.Members), len(req.Records), len(report.Connections),
			report.SkippedRecords, time.Since(start), c.GetBool("cache_hit"))

		c.JSON(http.StatusOK, report)
	})

	r.POST("/analyze/connections", func(c *gin.Context) {
		var req types.AnalyzeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			appErr := errors.NewValidationError("invalid analysis request", err.Error())
			errors.LogError(c, appErr)
			c.JSON(appErr.HTTPStatus, appErr)
			return
		}

		conns, skipped := analyzer.AnalyzeCollaboration(req.Records, req.Members)
		appMetrics.RecordAnalysisRun(skipped)

		c.JSON(http.StatusOK, gin.H{
			"connections":     conns,
			"skipped_records": skipped,
		})
	})

	r.POST("/analyze/structure", func(c *gin.Context) {
		var req connectionsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			appErr := errors.NewValidationError("invalid structure request", err.Error())
			errors.LogError(c, appErr)
			c.JSON(appErr.HTTPStatus, appErr)
			return
		}

		c.JSON(http.StatusOK, analyzer.AnalyzeNetworkStructure(req.Connections, req.Members))
	})

	r.POST("/analyze/patterns", func(c *gin.Context) {
		var req patternsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			appErr := errors.NewValidationError("invalid patterns request", err.Error())
			errors.LogError(c, appErr)
			c.JSON(appErr.HTTPStatus, appErr)
			return
		}

		c.JSON(http.StatusOK, analyzer.IdentifyPatterns(req.Connections, analysis.ExternalGroupings{Innovators: req.Innovators}))
	})

	r.POST("/analyze/recommendations", func(c *gin.Context) {
		var req recommendationsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			appErr := errors.NewValidationError("invalid recommendations request", err.Error())
			errors.LogError(c, appErr)
			c.JSON(appErr.HTTPStatus, appErr)
			return
		}

		recs := analyzer.GenerateRecommendations(req.Connections, req.Members, req.Structure)
		c.JSON(http.StatusOK, gin.H{"recommendations": recs})
	})

	// Metrics endpoint
	r.GET("/metrics", func(c *gin.Context) {
		c.JSON(http.StatusOK, appMetrics.GetStats())
	})

	// Cache stats endpoint
	r.GET("/cache/stats", func(c *gin.Context) {
		c.JSON(http.StatusOK, appCache.Stats())
	})

	return r
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
		slog.Warn("Invalid duration in environment, using default", "key", key, "default", defaultValue.String())
	}
	return defaultValue
}
