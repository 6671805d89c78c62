package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jackc/pgx/v5/pgxpool"

	redis_cache "mymessages-post-service/internal/cache/redis"
	"mymessages-post-service/internal/config"
	delivery_http "mymessages-post-service/internal/delivery/http"
	"mymessages-post-service/internal/delivery/http/middleware"
	post_http "mymessages-post-service/internal/delivery/http/post"
	"mymessages-post-service/internal/logger"
	prometheus_metrics "mymessages-post-service/internal/metrics/prometheus"
	metrics_server "mymessages-post-service/internal/metrics/server"
	post_postgres "mymessages-post-service/internal/repository/post/postgres"
	post_service "mymessages-post-service/internal/service/post"
	"mymessages-post-service/internal/storage/disk"
)

func main() {
	cfg := config.MustLoad()
	dsn := fmt.Sprintf("postgresql://%s:%s@%s:%s/%s?sslmode=disable",
		cfg.Database.Username,
		cfg.Database.Password,
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.DbName)
	ctx := context.Background()
	log := logger.New(cfg.Env)

	if err := runMigrations(cfg.Database); err != nil {
		log.Error("Failed to run migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		log.Error("Failed to parse postgres poolConfig", slog.String("error", err.Error()))
		os.Exit(1)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		log.Error("Failed to create postgres pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	log.Info("Connecting to Redis",
		slog.String("address", cfg.Redis.Address),
		slog.Int("port", cfg.Redis.Port),
		slog.Int("db", cfg.Redis.DB))
	redisClient, err := redis_cache.NewClient(cfg.Redis, log)
	if err != nil {
		log.Error("Failed to create Redis client", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", slog.String("error", err.Error()))
		}
	}()

	metrics := prometheus_metrics.NewPrometheusMetricsProvider()
	metrics.SetServiceHealth(true)

	postCache := redis_cache.NewPostCache(redisClient, log, time.Duration(cfg.Redis.PostTTLSeconds)*time.Second)

	fileStorage, err := disk.NewFileStorage(cfg.Storage.ImagesDir, log)
	if err != nil {
		log.Error("Failed to set up file storage", slog.String("error", err.Error()))
		os.Exit(1)
	}

	postRepo := post_postgres.NewPostRepository(pool, log, metrics)
	originalPostService := post_service.NewPostService(postRepo, log, metrics)
	postService := post_service.NewPostServiceCacheDecorator(originalPostService, postCache, log, metrics)

	postAPI := post_http.NewPostHTTPService(postService, fileStorage, log)
	authGate := middleware.Auth(cfg.Auth.JWTSecret, log)

	httpServer := delivery_http.NewServer(
		postAPI,
		authGate,
		cfg.Storage.ImagesDir,
		cfg.HTTPServer.Address,
		cfg.HTTPServer.Port,
		cfg.Env,
		log,
		metrics,
	)

	metricsServer := metrics_server.NewMetricsServer(cfg.Prometheus.Address, cfg.Prometheus.Port, log)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	done := make(chan bool, 1)
	metricsDone := make(chan bool, 1)

	go func() {
		if err := httpServer.Run(); err != nil {
			log.Error("HTTP server error", slog.String("error", err.Error()))
		}
		done <- true
	}()

	go func() {
		if err := metricsServer.Run(); err != nil {
			log.Error("Metrics server error", slog.String("error", err.Error()))
		}
		metricsDone <- true
	}()

	<-quit
	log.Info("Shutting down servers...")

	metrics.SetServiceHealth(false)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", slog.String("error", err.Error()))
	}

	if err := metricsServer.Shutdown(shutdownCtx); err != nil {
		log.Error("Metrics server shutdown error", slog.String("error", err.Error()))
	}

	<-done
	<-metricsDone

	log.Info("Server exited")
}

func runMigrations(db config.Database) error {
	m, err := migrate.New(
		fmt.Sprintf("file://%s", db.MigrationsPath),
		fmt.Sprintf("pgx5://%s:%s@%s:%s/%s?sslmode=disable",
			db.Username, db.Password, db.Host, db.Port, db.DbName),
	)
	if err != nil {
		return err
	}
	defer func() {
		_, _ = m.Close()
	}()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}
