package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"logistics/internal/config"
	"logistics/internal/handler"
	"logistics/internal/logger"
	"logistics/internal/port"
	"logistics/internal/router"
	"logistics/internal/service"
	"logistics/internal/source"
	s3storage "logistics/internal/storage/s3"
	"logistics/internal/tariff"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	startedAt := time.Now()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	zlog, err := logger.New(cfg.Log, cfg.Service.Name)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = zlog.Sync() }()

	ctx := context.Background()

	// Initialize tariff source. Only a malformed source URI stops startup.
	src, err := source.NewSource(&cfg.Tariffs, func() (port.ObjectStorage, error) {
		return s3storage.NewS3Client(ctx, &cfg.S3)
	})
	if err != nil {
		return fmt.Errorf("failed to initialize tariff source: %w", err)
	}

	// Initialize services. A failed load leaves the table empty and the server still starts.
	table := tariff.NewTable()
	tariffSvc := service.NewTariffService(src, table, zlog)
	_ = tariffSvc.Load(ctx)

	// Initialize handlers
	tariffH := handler.NewTariffHandler(tariffSvc, zlog)
	healthH := handler.NewHealthHandler(tariffSvc, cfg.Service.Name, startedAt)
	infoH := handler.NewInfoHandler(cfg.Service.Name, cfg.Service.Version)

	if cfg.Server.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup router
	r := router.Setup(cfg, zlog, tariffH, healthH, infoH)

	srv := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		zlog.Info("server is running",
			zap.String("port", cfg.Server.Port),
			zap.Int("tariffs", tariffSvc.Size()),
			zap.String("memory_mb", handler.HeapUsageMB()),
			zap.Time("started_at", startedAt),
		)
		for _, e := range handler.Endpoints {
			zlog.Info("endpoint", zap.String("route", e.String()), zap.String("description", e.Description))
		}
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-quit:
	}

	zlog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced shutdown: %w", err)
	}
	zlog.Info("stopped")
	return nil
}
