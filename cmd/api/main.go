package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/canozdemir/inventory-backend/internal/api"
	"github.com/canozdemir/inventory-backend/internal/auth"
	"github.com/canozdemir/inventory-backend/internal/config"
	"github.com/canozdemir/inventory-backend/internal/db"
	"github.com/canozdemir/inventory-backend/internal/logger"
	"github.com/canozdemir/inventory-backend/internal/metrics"
	"github.com/canozdemir/inventory-backend/internal/middleware"
	"github.com/canozdemir/inventory-backend/internal/repository/postgres"
	"github.com/canozdemir/inventory-backend/internal/services"
	"github.com/canozdemir/inventory-backend/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("config", "err", err)
		os.Exit(1)
	}
	log := logger.New(cfg.Env)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := db.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Error("db connect", "err", err)
		os.Exit(1)
	}
	defer pool.Close()

	if cfg.Migrate {
		if err := db.RunMigrations(ctx, pool); err != nil {
			log.Error("migrations", "err", err)
			os.Exit(1)
		}
	}

	repos := postgres.NewRepositories(pool)
	wp := worker.NewPool(4)
	defer wp.Stop()

	tm := auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)
	userSvc := services.NewUserService(repos.Users, tm)
	itemSvc := services.NewItemService(repos.Items, repos.ActivityLogs, wp)
	authMW := middleware.NewAuthMiddleware(tm, repos.Users)

	metrics.Init()
	r := api.NewRouter(cfg, authMW, userSvc, itemSvc)

	srv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info("server starting", "port", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server", "err", err)
		}
	}()

	<-ctx.Done()
	log.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
}
