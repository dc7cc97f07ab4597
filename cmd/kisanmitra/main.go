package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"kisanmitra/internal/advisory"
	"kisanmitra/internal/assistant"
	"kisanmitra/internal/config"
	"kisanmitra/internal/i18n"
	"kisanmitra/internal/inference"
	"kisanmitra/internal/logger"
	"kisanmitra/internal/middleware"
	"kisanmitra/internal/notify"
	"kisanmitra/internal/page"
	"kisanmitra/internal/resilience"
	"kisanmitra/internal/session"
	"kisanmitra/internal/voice"
	"kisanmitra/internal/weather"
)

const serviceName = "kisanmitra"

// main is the entry point for the KisanMitra page server.
func main() {
	cfg, err := config.Load(getEnv("KISANMITRA_CONFIG", "config.toml"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Server.Environment); err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	// A translation table without its english fallback is a build defect.
	if err := i18n.Validate(); err != nil {
		logger.Fatal("translation tables are incomplete", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		logger.Fatal("failed to open session store", zap.String("store", cfg.Session.Store), zap.Error(err))
	}
	defer closeStore()

	responder := newResponder(cfg)
	hub := notify.NewHub(0)
	caps := voice.Detect(cfg.Voice)

	weatherService := weather.NewService(
		weather.NewSimulatedProvider(weather.WithDelay(cfg.Delays.Weather.Duration)), hub)
	assistantService := assistant.NewService(
		responder, assistant.BridgeFactory(caps, cfg.Voice.SpeechRate), hub)
	servicesService := advisory.NewService(responder, hub)
	pageService := page.NewService(store, weatherService, assistantService, servicesService, hub)

	pageHandler := page.NewHandler(pageService, store,
		weather.NewHandler(weatherService),
		assistant.NewHandler(assistantService),
		advisory.NewHandler(servicesService),
		notify.NewHandler(hub, cfg.Server.AllowedOrigins),
	)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RequestLogger)
	r.Use(middleware.Metrics(serviceName))
	r.Use(middleware.CORS(cfg.Server.AllowedOrigins))
	r.Use(chimw.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("KisanMitra OK"))
	})
	r.Handle("/metrics", promhttp.Handler())

	pageHandler.RegisterRoutes(r)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout.Duration,
		WriteTimeout: cfg.Server.WriteTimeout.Duration,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("KisanMitra starting",
			zap.String("port", cfg.Server.Port),
			zap.String("session_store", cfg.Session.Store),
			zap.Bool("voice_recognition", cfg.Voice.Recognition),
			zap.Bool("voice_synthesis", cfg.Voice.Synthesis))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server stopped: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		return page.RunSweeper(gctx, pageService, cfg.Session.SweepInterval.Duration)
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		logger.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("server exited with error", zap.Error(err))
		os.Exit(1)
	}
}

// openStore builds the configured session store and its cleanup.
func openStore(ctx context.Context, cfg *config.Config) (session.Store, func(), error) {
	ttl := cfg.Session.TTL.Duration
	switch cfg.Session.Store {
	case "redis":
		opts, err := redis.ParseURL(cfg.Redis.URL)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid REDIS_URL: %w", err)
		}
		rdb := redis.NewClient(opts)
		if err := rdb.Ping(ctx).Err(); err != nil {
			rdb.Close()
			return nil, nil, fmt.Errorf("could not reach redis: %w", err)
		}
		logger.Info("Redis connected")
		return session.NewRedisStore(rdb, ttl), func() { rdb.Close() }, nil

	case "postgres":
		db, err := session.OpenPostgres(ctx, cfg.Database.URL)
		if err != nil {
			return nil, nil, err
		}
		if err := session.EnsureSchema(ctx, db); err != nil {
			db.Close()
			return nil, nil, err
		}
		logger.Info("Database connected")
		return session.NewPostgresStore(db, ttl), closeDB(db), nil

	default:
		return session.NewMemoryStore(ttl), func() {}, nil
	}
}

func closeDB(db *sql.DB) func() {
	return func() {
		if err := db.Close(); err != nil {
			logger.Warn("failed to close database", zap.Error(err))
		}
	}
}

// newResponder uses the remote inference service when one is configured,
// the in-process canned answers otherwise.
func newResponder(cfg *config.Config) inference.Responder {
	if cfg.Inference.URL == "" {
		return inference.NewCannedResponder(
			inference.WithDelays(cfg.Delays.Chat.Duration, cfg.Delays.Services.Duration))
	}

	retry := resilience.DefaultRetryConfig()
	retry.MaxAttempts = cfg.Inference.MaxAttempts
	retry.InitialBackoff = cfg.Inference.InitialBackoff.Duration
	logger.Info("using remote inference", zap.String("url", cfg.Inference.URL))
	return inference.NewHTTPResponder(cfg.Inference.URL, cfg.Inference.Timeout.Duration, retry)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
