package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpadapter "atlas-ads/internal/adapter/http"
	"atlas-ads/internal/adapter/mongodb"
	"atlas-ads/internal/adapter/postgres"
	"atlas-ads/internal/adapter/rediscache"
	"atlas-ads/internal/adapter/usecase"
	"atlas-ads/internal/config"
	"atlas-ads/internal/config/configs"
	"atlas-ads/internal/core/port"
	"atlas-ads/internal/db"
)

// main is the entry point of the ad delivery engine. It loads
// configuration, optionally runs database migrations, wires the
// selected campaign-store backend (plus the optional Redis listing
// cache), then starts the HTTP server. On receiving a termination
// signal it gracefully shuts down the server.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	var logger *slog.Logger
	{
		var handler slog.Handler
		level := cfg.Log.SlogLevel()
		switch cfg.Log.SlogFormat() {
		case "json":
			handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		default:
			handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		}
		logger = slog.New(handler)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	var store port.CampaignStore
	switch cfg.Store.Backend {
	case configs.BackendMongo:
		mdb, disconnect, err := db.NewMongoDatabase(ctx, cfg.Mongo)
		if err != nil {
			logger.Error("mongo connection error", slog.Any("error", err))
			os.Exit(1)
		}
		defer disconnect()
		store = mongodb.NewCampaignStore(mdb)
	default:
		if cfg.Psql.RunMigrations {
			if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
				logger.Error("migration error", slog.Any("error", err))
			} else {
				logger.Info("migrations applied successfully")
			}
		}
		pool, err := db.NewPostgresPool(ctx, cfg.Psql)
		if err != nil {
			logger.Error("database connection error", slog.Any("error", err))
			os.Exit(1)
		}
		defer pool.Close()
		if cfg.Psql.SeedDemo {
			if err = db.Seed(ctx, pool); err != nil {
				logger.Error("seed error", slog.Any("error", err))
			}
		}
		store = postgres.NewCampaignStore(pool)
	}

	if cfg.Redis.Enabled {
		rdb, err := db.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			logger.Error("redis connection error", slog.Any("error", err))
			os.Exit(1)
		}
		defer rdb.Close()
		store = rediscache.New(store, rdb, cfg.Redis.CacheTTL, logger)
	}

	svc := usecase.NewAdUseCase(store, logger)
	handler := httpadapter.NewHandler(svc, logger)
	srv := &http.Server{
		Addr:    cfg.HTTP.Addr(),
		Handler: handler.Router(),
	}

	go func() {
		logger.Info("server listening", slog.String("addr", srv.Addr))
		if err = srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.Any("error", err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	value := <-quit
	exitCode = 128 + int(value.(syscall.Signal))

	ctx, cancel = context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err = srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	} else {
		logger.Info("server gracefully stopped")
	}
}
