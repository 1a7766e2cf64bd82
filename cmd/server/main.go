// Package main is the entry point for the gamepulse API server
package main

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/gamepulse/gamepulse-api/internal/advisor"
	grpcapi "github.com/gamepulse/gamepulse-api/internal/api/grpc"
	"github.com/gamepulse/gamepulse-api/internal/api/rest"
	"github.com/gamepulse/gamepulse-api/internal/catalog"
	"github.com/gamepulse/gamepulse-api/internal/config"
	"github.com/gamepulse/gamepulse-api/internal/llm"
	"github.com/gamepulse/gamepulse-api/internal/metrics"
	"github.com/gamepulse/gamepulse-api/internal/storage"
)

func main() {
	// Initialize structured logging
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	slog.Info("Starting gamepulse-api")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	startupCtx, cancelStartup := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancelStartup()

	cat, err := catalog.Load(startupCtx, cfg.CatalogSource())
	if err != nil {
		slog.Error("Failed to load catalog", "error", err)
		os.Exit(1)
	}

	users, closeUsers, err := openUserStore(startupCtx, cfg)
	if err != nil {
		slog.Error("Failed to open user store", "error", err)
		os.Exit(1)
	}
	defer closeUsers()

	svc := advisor.NewService(cat, users, newGenerator(cfg), cfg.Advisor())
	rest.SetAdvisor(svc)

	// Set up Gin router
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery(), metrics.Middleware())

	// Register routes
	rest.RegisterRoutes(router)

	// Prometheus metrics endpoint
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Create HTTP server. Generation calls bound the slowest handlers.
	httpServer := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.LLM.Timeout + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start HTTP server
	go func() {
		slog.Info("Starting HTTP server", "addr", cfg.HTTPAddr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
		}
	}()

	// Start gRPC server
	grpcListener, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		slog.Error("Failed to listen for gRPC", "error", err)
		os.Exit(1)
	}

	grpcConfig := &grpcapi.ServerConfig{
		Address:            cfg.GRPCAddr,
		EnableTLS:          cfg.TLSEnabled,
		CertFile:           cfg.TLSCertFile,
		KeyFile:            cfg.TLSKeyFile,
		CAFile:             cfg.TLSCAFile,
		RateLimitPerClient: cfg.RateLimitPerClient,
		Engine:             svc,
	}

	grpcServer, err := grpcapi.NewServer(grpcConfig)
	if err != nil {
		slog.Error("Failed to create gRPC server", "error", err)
		os.Exit(1)
	}

	go func() {
		if err := grpcServer.Serve(grpcListener); err != nil {
			slog.Error("gRPC server error", "error", err)
		}
	}()

	// Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down servers...")

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	grpcServer.GracefulStop()

	slog.Info("Server shutdown complete")
}

// openUserStore connects to PostgreSQL when DATABASE_URL is set and falls
// back to an in-memory store otherwise
func openUserStore(ctx context.Context, cfg *config.Config) (advisor.UserStore, func(), error) {
	if cfg.DatabaseURL == "" {
		slog.Warn("DATABASE_URL not set, users are kept in memory")
		return storage.NewInMemoryUserStore(), func() {}, nil
	}

	dbConfig := storage.DefaultConfig()
	dbConfig.URL = cfg.DatabaseURL

	db, err := storage.New(dbConfig)
	if err != nil {
		return nil, nil, err
	}
	if err := db.Migrate(ctx); err != nil {
		db.Close()
		return nil, nil, err
	}

	return storage.NewUserRepository(db), func() { db.Close() }, nil
}

// newGenerator returns the circuit-broken text generator, or nil when no
// token is configured
func newGenerator(cfg *config.Config) llm.Provider {
	if !cfg.LLM.Enabled() {
		slog.Warn("HF_TOKEN not set, generated answers use fallbacks")
		return nil
	}

	client, err := llm.New(cfg.LLMClient())
	if err != nil {
		slog.Error("Failed to create text generation client, using fallbacks", "error", err)
		return nil
	}

	slog.Info("Text generation enabled", "model", client.Model())
	return llm.NewBreaker(client, llm.DefaultBreakerConfig())
}
