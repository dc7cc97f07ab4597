package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"kisanmitra/internal/config"
	"kisanmitra/internal/i18n"
	"kisanmitra/internal/inference"
	"kisanmitra/internal/logger"
	"kisanmitra/internal/middleware"
)

// main is the entry point for the InferenceService. It serves the canned
// responder over HTTP so the page server can run with INFERENCE_URL set.
func main() {
	cfg, err := config.Load(os.Getenv("KISANMITRA_CONFIG"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Server.Environment); err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := i18n.Validate(); err != nil {
		logger.Fatal("translation tables are incomplete", zap.Error(err))
	}

	// Swap for a real model client once one exists.
	responder := inference.NewCannedResponder(
		inference.WithDelays(cfg.Delays.Chat.Duration, cfg.Delays.Services.Duration))
	inferenceHandler := inference.NewHandler(responder)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RequestLogger)
	r.Use(middleware.Metrics("inferenceservice"))
	r.Use(chimw.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("InferenceService OK"))
	})
	r.Handle("/metrics", promhttp.Handler())

	// Register /inference/chat and /inference/analyze.
	inferenceHandler.RegisterRoutes(r)

	port := os.Getenv("INFERENCE_PORT")
	if port == "" {
		port = "8083"
	}

	logger.Info("InferenceService starting", zap.String("port", port))
	if err := http.ListenAndServe(":"+port, r); err != nil {
		logger.Fatal("could not start server", zap.Error(err))
	}
}
