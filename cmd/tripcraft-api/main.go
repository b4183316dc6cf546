// README: Entry point; loads config, wires services, starts the HTTP server.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tripcraft/internal/ai"
	"tripcraft/internal/config"
	"tripcraft/internal/geo"
	httptransport "tripcraft/internal/http"
	"tripcraft/internal/infra"
	"tripcraft/internal/modules/planner"
	"tripcraft/internal/modules/quota"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("config load failed", "error", err)
		os.Exit(1)
	}

	logger := newLogger(cfg.Log.Level)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbPool, err := infra.NewDB(ctx, cfg.DB.DSN)
	if err != nil {
		logger.Error("db init failed", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	redisClient := infra.NewRedis(cfg.Redis.Addr)

	specs := ai.FallbackChain(ai.ChainConfig{
		GroqKey:          cfg.Providers.GroqKey,
		HuggingFaceKey:   cfg.Providers.HuggingFaceKey,
		HuggingFaceModel: cfg.Providers.HuggingFaceModel,
		OpenAIKey:        cfg.Providers.OpenAIKey,
		GeminiKey:        cfg.Providers.GeminiKey,
	})
	resolver := func(ctx context.Context) (ai.CompletionClient, error) {
		return ai.Resolve(ctx, specs, logger)
	}

	var geocoder planner.Geocoder
	if cfg.Maps.APIKey != "" {
		citySvc, err := geo.NewCityService(cfg.Maps.APIKey)
		if err != nil {
			logger.Error("maps init failed", "error", err)
			os.Exit(1)
		}
		geocoder = citySvc
	}

	planStore := planner.NewStore(dbPool)
	planCache := planner.NewCache(redisClient)
	plannerSvc := planner.NewService(resolver, planStore, planCache, geocoder, logger)

	quotaStore := quota.NewStore(dbPool)
	quotaSvc := quota.NewService(quotaStore)

	handler := httptransport.NewRouter(httptransport.ServerDeps{
		Planner: plannerSvc,
		Quota:   quotaSvc,
		Logger:  logger,
	})

	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: handler}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	logger.Info("server listening", "addr", cfg.HTTP.Addr)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("server failed", "error", err)
		os.Exit(1)
	}
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
}
