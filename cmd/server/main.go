package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/dgallion1/papersect/internal/analyze"
	"github.com/dgallion1/papersect/internal/api"
	"github.com/dgallion1/papersect/internal/config"
	"github.com/dgallion1/papersect/internal/fetch"
	"github.com/dgallion1/papersect/internal/parser"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// A local .env is optional; real environment variables take precedence.
	_ = godotenv.Load(".env")

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	if cfg.APIKey == "" {
		log.Warn("PAPERSECT_API_KEY not set, api routes are unauthenticated")
	}

	fetcher := fetch.New(fetch.Options{
		Timeout:       cfg.FetchTimeout,
		UserAgent:     cfg.FetchUserAgent,
		MaxBytes:      cfg.FetchMaxBytes,
		RatePerSecond: cfg.FetchRatePerSec,
		Burst:         cfg.FetchBurst,
		RespectRobots: cfg.FetchRespectRobots,
	}, log)
	analyzer := analyze.NewAnalyzer(fetcher,
		parser.Options{PDFFallbackPdftotext: cfg.PDFFallbackPdftotext},
		analyze.NewStats(cfg.StatsWindow), log)

	srv := api.NewServer(analyzer, log, cfg)

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: cfg.AnalyzeTimeout + 30*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown.
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("shutting down...")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		httpServer.Shutdown(shutdownCtx)
	}()

	log.Info("starting papersect", "port", cfg.Port)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}
