package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
	"golang.org/x/sync/errgroup"

	"github.com/indyatra/travel-advisor/app/dataset"
	appLogger "github.com/indyatra/travel-advisor/app/logger"
	"github.com/indyatra/travel-advisor/app/observability/metrics"
	"github.com/indyatra/travel-advisor/app/tracer"
	"github.com/indyatra/travel-advisor/config"
	"github.com/indyatra/travel-advisor/internal/api/advisor"
	"github.com/indyatra/travel-advisor/internal/api/ner"
	api "github.com/indyatra/travel-advisor/internal/router"
)

func main() {
	// Use standard log until slog is configured, in case godotenv fails.
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: .env file not found or error loading:", err)
	}

	cfg, err := config.InitConfig()
	if err != nil {
		log.Fatalf("FATAL: Error initializing config: %v", err)
	}

	logger := setupLogger()
	slog.SetDefault(logger)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// --- Observability Setup ---
	metricsHandler, err := tracer.InitTracingAndMetrics()
	if err != nil {
		logger.Error("Failed to initialize tracing and metrics", slog.Any("error", err))
		os.Exit(1)
	}
	metrics.InitAppMetrics()

	// --- Reference Data Setup ---
	// The store must be fully loaded before any request is served; a
	// malformed or missing table is fatal.
	err = dataset.Ensure(cfg.Dataset.CitiesPath, cfg.Dataset.StatesPath, cfg.Dataset.Seed, logger)
	if err != nil {
		logger.Error("Failed to provision dataset files", slog.Any("error", err))
		os.Exit(1)
	}

	store, err := advisor.NewCSVStore(cfg.Dataset.CitiesPath, cfg.Dataset.StatesPath)
	if err != nil {
		logger.Error("Failed to load reference store", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("Reference store loaded",
		slog.Int("cities", len(store.CityNames())),
		slog.Int("states", len(store.StateNames())),
	)

	// --- Dependency Injection ---
	recognizer := ner.NewLexiconRecognizer(advisor.RecognizerLexicon(store))
	resolver := advisor.NewResolver(recognizer, store)
	advisorService := advisor.NewServiceImpl(store, resolver, cfg.Advisor.CacheTTL, logger)
	advisorHandler := advisor.NewHandler(advisorService, logger)

	// --- Router Setup ---
	mainRouter := api.SetupRouter(&api.Config{
		AdvisorHandler: advisorHandler,
	})

	router := chi.NewMux()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(appLogger.StructuredLogger(logger))
	router.Use(middleware.Recoverer)
	router.Use(middleware.StripSlashes)
	router.Use(middleware.Timeout(cfg.Server.Timeout))
	router.Use(middleware.Compress(5, "application/json"))
	router.Mount("/", mainRouter)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.HTTPPort),
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}
	metricsSrv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.MetricsPort),
		Handler: metricsHandler,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("Starting HTTP server", slog.String("address", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		logger.Info("Starting metrics server", slog.String("address", metricsSrv.Addr))
		if err := metricsSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("metrics server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutdown signal received, starting graceful shutdown...")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("HTTP server graceful shutdown failed", slog.Any("error", err))
		}
		if err := metricsSrv.Shutdown(shutdownCtx); err != nil {
			logger.Error("Metrics server graceful shutdown failed", slog.Any("error", err))
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("Server exited with error", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("Application shut down complete.")
}

// setupLogger configures and returns the application logger.
func setupLogger() *slog.Logger {
	var logger *slog.Logger
	env := os.Getenv("APP_ENV")

	if env == "development" || env == "" {
		// Colored logs for development
		tintOpts := &tint.Options{
			Level:      slog.LevelDebug,
			TimeFormat: time.Kitchen,
			AddSource:  true,
		}
		logger = slog.New(tint.NewHandler(os.Stdout, tintOpts))
		log.Println("Initialized development logger (tint)")
	} else {
		jsonOpts := &slog.HandlerOptions{
			Level: slog.LevelInfo,
		}
		logger = slog.New(slog.NewJSONHandler(os.Stdout, jsonOpts))
		log.Println("Initialized production logger (JSON)")
	}
	return logger
}
