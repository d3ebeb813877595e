package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"

	"github.com/thecooltechguy/finc-smash-leaderboard/internal/cache"
	"github.com/thecooltechguy/finc-smash-leaderboard/internal/config"
	"github.com/thecooltechguy/finc-smash-leaderboard/internal/database"
	server "github.com/thecooltechguy/finc-smash-leaderboard/internal/http"
	"github.com/thecooltechguy/finc-smash-leaderboard/internal/metrics"
	"github.com/thecooltechguy/finc-smash-leaderboard/internal/notifier"
	slacknotifier "github.com/thecooltechguy/finc-smash-leaderboard/internal/notifier/slack"
	"github.com/thecooltechguy/finc-smash-leaderboard/internal/refresher"
	"github.com/thecooltechguy/finc-smash-leaderboard/internal/smash"
)

func main() {
	startTime := time.Now()
	log.SetFormatter(log.JSONFormatter)
	cfg := config.Load()

	db, dbTeardown, err := database.InitDB(cfg.DBName, cfg.Turso.PrimaryURL, cfg.Turso.AuthToken, cfg.MigrationsDir)
	if err != nil {
		log.Fatalf("Failed to initialize database: %s", err)
	}
	defer func() {
		log.Info("Closing database connection")
		dbTeardown()
	}()

	snapshotStore := cache.New(db)
	metricsSvc := metrics.NewService()
	metricsHandler := metrics.NewMetricsHandler()
	smashClient := smash.NewClient(cfg.SmashAPI.BaseURL)

	var notif notifier.Notifier
	if cfg.Slack.Token != "" && cfg.Slack.ChannelID != "" {
		notif = slacknotifier.NewNotifier(cfg.Slack.Token, cfg.Slack.ChannelID, metricsSvc)
	} else {
		log.Info("Slack not configured, notifications disabled")
		notif = notifier.NewNoop()
	}

	scheduler := refresher.New(smashClient, snapshotStore, metricsSvc, notif, cfg.RefreshInterval)
	scheduler.Start()
	defer scheduler.Stop()

	s := server.NewServer(scheduler, metricsSvc, metricsHandler, cfg, notif)

	startupDuration := time.Since(startTime)
	metricsSvc.SetStartupTime(startupDuration.Seconds())
	log.Info("Startup time recorded", "duration_ms", startupDuration.Milliseconds())

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: s,
	}

	// Channel to listen for errors coming from the server
	serverErrors := make(chan error, 1)

	go func() {
		log.Info("Server started", "port", cfg.Port)
		serverErrors <- srv.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	case sig := <-shutdown:
		log.Info("Shutdown signal received", "signal", sig)

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.Error("Server shutdown failed", "error", err)
		} else {
			log.Info("Server gracefully stopped")
		}
	}

	log.Info("Server process shutting down")
}
