package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/culturelens/culturelens-backend/internal/catalog"
	"github.com/culturelens/culturelens-backend/internal/config"
	"github.com/culturelens/culturelens-backend/internal/handler"
	"github.com/culturelens/culturelens-backend/internal/logger"
	"github.com/culturelens/culturelens-backend/internal/metrics"
	"github.com/culturelens/culturelens-backend/internal/router"
	"github.com/culturelens/culturelens-backend/internal/service"
	"github.com/culturelens/culturelens-backend/internal/store"
	"github.com/culturelens/culturelens-backend/internal/validator"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("port", cfg.ServerPort).
		Str("mode", cfg.GinMode).
		Str("log_level", cfg.LogLevel).
		Msg("Starting CultureLens Backend")

	// ─── Initialize Validator ──────────────────────────────────────────
	validator.Setup()

	// ─── Initialize Store ──────────────────────────────────────────────
	// Single in-memory store seeded with the question catalog; assessments
	// live for the process lifetime only.
	memStore := store.NewMemoryStore(catalog.Questions())
	log.Info().Int("questions", len(catalog.Questions())).Msg("Question catalog seeded")

	// ─── Initialize Metrics ────────────────────────────────────────────
	m := metrics.New()

	// ─── Initialize Services ──────────────────────────────────────────
	assessmentService := service.NewAssessmentService(memStore, m, log)

	// ─── Initialize Handlers ──────────────────────────────────────────
	handlers := &router.Handlers{
		Question:   handler.NewQuestionHandler(assessmentService),
		Assessment: handler.NewAssessmentHandler(assessmentService, log),
		Culture:    handler.NewCultureHandler(),
	}

	// ─── Setup Router ──────────────────────────────────────────────────
	r := router.SetupRouter(handlers, m, cfg)

	// ─── Create HTTP Server ────────────────────────────────────────────
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// ─── Start Server in Goroutine ─────────────────────────────────────
	go func() {
		log.Info().Str("addr", ":"+cfg.ServerPort).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	// ─── Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info().Str("signal", sig.String()).Msg("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	log.Info().Msg("Shutdown complete")
}

// init sets zerolog global defaults before main runs.
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}
