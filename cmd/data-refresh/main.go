// Package main provides the entry point for the snapshot refresh daemon.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/yourusername/gridiron-edge/internal/cache"
	"github.com/yourusername/gridiron-edge/internal/cfbd"
	"github.com/yourusername/gridiron-edge/internal/config"
	"github.com/yourusername/gridiron-edge/internal/health"
	"github.com/yourusername/gridiron-edge/internal/logger"
	"github.com/yourusername/gridiron-edge/internal/metrics"
	"github.com/yourusername/gridiron-edge/internal/scheduler"
	"github.com/yourusername/gridiron-edge/internal/service"
	"github.com/yourusername/gridiron-edge/internal/tracing"
)

// Build information - set via ldflags
var (
	Version = "dev"
)

func main() {
	cfg, err := config.LoadWithDefaults(configPathFromEnv())
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if os.Getenv("AWS_SECRETS_ENABLED") == "true" {
		region := os.Getenv("AWS_REGION")
		secretName := os.Getenv("AWS_SECRET_NAME")
		if region == "" || secretName == "" {
			log.Fatalf("AWS_REGION and AWS_SECRET_NAME environment variables must be set when AWS_SECRETS_ENABLED is true")
		}
		if err := config.LoadSecretsFromAWS(cfg, region, secretName); err != nil {
			log.Fatalf("Failed to load secrets: %v", err)
		}
	}

	if err := config.Validate(cfg); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	appLog := logger.New(cfg.App.LogLevel, cfg.App.Environment)
	appLog.WithFields(logrus.Fields{
		"environment": cfg.App.Environment,
		"version":     Version,
	}).Info("Snapshot refresh daemon starting")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	httpLog := log.New(os.Stderr, "cfbd-http: ", log.LstdFlags)
	httpCfg := cfbd.DefaultHTTPClientConfig()
	httpCfg.Timeout = time.Duration(cfg.CFBD.TimeoutSeconds) * time.Second
	httpCfg.MaxRetries = cfg.CFBD.MaxRetries
	httpCfg.RateLimit = cfg.CFBD.RateLimit

	client, err := cfbd.NewClient(cfg.CFBD.BaseURL, cfg.CFBD.BearerToken, httpCfg, httpLog)
	if err != nil {
		appLog.WithError(err).Fatal("Failed to create CFBD client")
	}
	defer client.Close()

	store, err := cache.NewSnapshotStore(cfg.Cache.Dir, cfg.CacheTTL())
	if err != nil {
		appLog.WithError(err).Fatal("Failed to create snapshot cache")
	}

	if err := tracing.Initialize(tracing.Config{
		ServiceName: "data-refresh",
		Enabled:     cfg.Tracing.Enabled,
		DaemonAddr:  cfg.Tracing.DaemonAddr,
		Version:     Version,
	}, appLog); err != nil {
		appLog.WithError(err).Fatal("Failed to initialize tracing")
	}

	refresher := service.NewRefreshService(client, store, appLog)

	sched := scheduler.NewScheduler(refresher, appLog)
	if err := sched.ScheduleRatingsRefresh(cfg.Refresh.RatingsCron); err != nil {
		appLog.WithError(err).Fatal("Failed to schedule ratings refresh")
	}
	if err := sched.ScheduleLinesRefresh(cfg.Refresh.LinesIntervalSeconds); err != nil {
		appLog.WithError(err).Fatal("Failed to schedule lines refresh")
	}

	var metricsHandler = metrics.Handler()
	if !cfg.Metrics.Enabled {
		metricsHandler = nil
	}

	healthServer := health.NewServer(health.Config{
		ServiceName: "data-refresh",
		Version:     Version,
		Port:        cfg.Refresh.HealthPort,
		Logger:      appLog,
		Snapshots:   refresher,
		StaleAfter:  2 * cfg.CacheTTL(),
		Metrics:     metricsHandler,
	})
	if err := healthServer.Start(ctx); err != nil {
		appLog.WithError(err).Fatal("Failed to start health server")
	}

	// Warm the cache before reporting ready.
	warmCache(ctx, cfg, refresher, appLog)

	if err := sched.Start(); err != nil {
		appLog.WithError(err).Fatal("Failed to start scheduler")
	}
	healthServer.SetReady(true)
	appLog.WithField("next_run", sched.GetNextRun()).Info("Refresh schedule active")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	appLog.WithField("signal", sig.String()).Info("Shutdown signal received")

	healthServer.SetReady(false)
	if err := sched.Stop(); err != nil {
		appLog.WithError(err).Error("Scheduler shutdown failed")
	}
	cancel()
	appLog.Info("Snapshot refresh daemon stopped")
}

func warmCache(ctx context.Context, cfg *config.Config, refresher *service.RefreshService, appLog *logrus.Logger) {
	warmCtx, cancel := context.WithTimeout(ctx, 2*time.Minute)
	defer cancel()

	if cfg.Tracing.Enabled {
		segCtx, seg := tracing.StartSegment(warmCtx, "cache-warmup")
		warmCtx = segCtx
		defer seg.Close(nil)
		tracing.AddAnnotation(warmCtx, "service", "data-refresh")
	}

	if err := refresher.RefreshRatings(warmCtx); err != nil {
		tracing.AddError(warmCtx, err)
		appLog.WithError(err).Warn("Initial ratings refresh failed")
	}
	if err := refresher.RefreshLines(warmCtx); err != nil {
		tracing.AddError(warmCtx, err)
		appLog.WithError(err).Warn("Initial lines refresh failed")
	}
}

func configPathFromEnv() string {
	if path := os.Getenv("GRIDIRON_EDGE_CONFIG"); path != "" {
		return path
	}
	return "config/config.yaml"
}
