package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kwhalen/nfl-edge/internal/adapters/outbound/espn"
	"github.com/kwhalen/nfl-edge/internal/adapters/outbound/openmeteo"
	"github.com/kwhalen/nfl-edge/internal/config"
	"github.com/kwhalen/nfl-edge/internal/core/poller"
	"github.com/kwhalen/nfl-edge/internal/core/state/store"
	"github.com/kwhalen/nfl-edge/internal/core/strategy/moneyline"
	"github.com/kwhalen/nfl-edge/internal/core/tracking"
	"github.com/kwhalen/nfl-edge/internal/events"
	"github.com/kwhalen/nfl-edge/internal/server"
	"github.com/kwhalen/nfl-edge/internal/telemetry"
)

func main() {
	cfg := config.Load()
	telemetry.Init(telemetry.ParseLogLevel(cfg.LogLevel))

	telemetry.Infof("Starting edge dashboard")

	bus := events.NewBus()
	memories := store.New()

	positions, err := tracking.OpenStore(cfg.PositionsDBPath)
	if err != nil {
		telemetry.Errorf("position store: %v", err)
		os.Exit(1)
	}
	defer positions.Close()

	feeds := espn.NewClient(cfg.ESPNBaseURL, cfg.FeedTimeout, cfg.SeasonYear)
	season := espn.NewSeasonCache(feeds, cfg.SeasonCacheTTL)
	weather := openmeteo.NewClient(cfg.WeatherBaseURL, cfg.WeatherTimeout, cfg.WeatherCacheTTL)
	engine := moneyline.NewEngine(moneyline.DefaultConfig())

	poll := poller.New(cfg.PollInterval, feeds, season, weather, memories, positions, engine, bus)

	hub := server.NewHub(bus)
	srv := server.New(cfg.ListenAddr, poll, positions, hub)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go poll.Run(ctx)
	go func() {
		if err := srv.ListenAndServe(); err != nil {
			telemetry.Errorf("server: %v", err)
			os.Exit(1)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	telemetry.Infof("Shutting down...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		telemetry.Warnf("server shutdown: %v", err)
	}

	telemetry.Infof("Shutdown complete  cycles=%d  scores=%d  feed_errors=%d",
		telemetry.Metrics.PollCycles.Value(),
		telemetry.Metrics.ScoreChanges.Value(),
		telemetry.Metrics.FeedErrors.Value(),
	)
}
