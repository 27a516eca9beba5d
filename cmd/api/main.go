// Package main is the entry point for the Alumni Back Office API server.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/alumni-portal/backoffice/config"
	"github.com/alumni-portal/backoffice/internal/application/adapter"
	"github.com/alumni-portal/backoffice/internal/infra/cache"
	"github.com/alumni-portal/backoffice/internal/infra/db"
	"github.com/alumni-portal/backoffice/internal/infra/dependency"
	"github.com/alumni-portal/backoffice/internal/integration/archive"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if err := run(); err != nil {
		slog.Error("Server stopped with error", "error", err)
		os.Exit(1)
	}
	slog.Info("Server exited properly")
}

func run() error {
	cfg := config.Load()

	slog.Info("Starting Alumni Back Office API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
		"database_driver", cfg.Database.Driver,
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	database, err := db.NewConnection(&cfg.Database)
	if err != nil {
		return err
	}
	defer func() {
		if err := database.Close(); err != nil {
			slog.Error("Failed to close database connection", "error", err)
		}
	}()

	if err := database.Migrate(); err != nil {
		return err
	}
	slog.Info("Database migrations completed successfully")

	redisClient, err := cache.NewRedisClient(&cfg.Redis)
	if err != nil {
		return err
	}
	defer redisClient.Close()

	var exportArchive adapter.ExportArchive
	if cfg.Archive.Bucket != "" {
		s3Archive, err := archive.NewS3Archive(ctx, cfg.Archive.Bucket, cfg.Archive.Region, cfg.Archive.Prefix)
		if err != nil {
			return err
		}
		exportArchive = s3Archive
		slog.Info("Export archive enabled", "bucket", cfg.Archive.Bucket, "prefix", cfg.Archive.Prefix)
	}

	injector, err := dependency.NewInjector(cfg, dependency.Options{
		DB:            database.DB(),
		DBHealthCheck: database.HealthCheck,
		Redis:         redisClient,
		Archive:       exportArchive,
	})
	if err != nil {
		return err
	}

	engine := injector.Router.Setup(cfg.Server.Environment)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		slog.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if cfg.Email.WorkerEnabled {
		g.Go(func() error {
			return injector.EmailWorker.Start(gctx)
		})
	}

	cleanupEvery := cfg.Report.ExportRateWindow
	if cleanupEvery <= 0 {
		cleanupEvery = time.Minute
	}
	g.Go(func() error {
		ticker := time.NewTicker(cleanupEvery)
		defer ticker.Stop()
		for {
			select {
			case <-gctx.Done():
				return nil
			case <-ticker.C:
				injector.RateLimiter.Cleanup()
			}
		}
	})

	return g.Wait()
}
