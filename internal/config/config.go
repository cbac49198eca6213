package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// HTTP server
	ListenAddr string

	// ESPN feeds
	ESPNBaseURL string
	FeedTimeout time.Duration

	// Open-Meteo
	WeatherBaseURL  string
	WeatherTimeout  time.Duration
	WeatherCacheTTL time.Duration

	// Poll cycle
	PollInterval time.Duration

	// Season scoreboard caches (standings, last-5, rest days)
	SeasonCacheTTL time.Duration
	SeasonYear     int

	// Position ledger
	PositionsDBPath string

	// Telemetry
	LogLevel string
}

func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		ListenAddr: envStr("LISTEN_ADDR", ":8080"),

		ESPNBaseURL: envStr("ESPN_BASE_URL", "https://site.api.espn.com/apis/site/v2/sports/football/nfl"),
		FeedTimeout: time.Duration(envInt("FEED_TIMEOUT_SEC", 10)) * time.Second,

		WeatherBaseURL:  envStr("WEATHER_BASE_URL", "https://api.open-meteo.com/v1/forecast"),
		WeatherTimeout:  time.Duration(envInt("WEATHER_TIMEOUT_SEC", 5)) * time.Second,
		WeatherCacheTTL: time.Duration(envInt("WEATHER_CACHE_TTL_SEC", 1800)) * time.Second,

		// 5s matches the dashboard auto-refresh cadence. A cycle that is
		// still in flight when the next tick fires is not overlapped —
		// the tick is dropped.
		PollInterval: time.Duration(envInt("POLL_INTERVAL_SEC", 5)) * time.Second,

		SeasonCacheTTL: time.Duration(envInt("SEASON_CACHE_TTL_SEC", 3600)) * time.Second,
		SeasonYear:     envInt("SEASON_YEAR", time.Now().Year()),

		PositionsDBPath: envStr("POSITIONS_DB_PATH", "data/positions.db"),

		LogLevel: envStr("LOG_LEVEL", "info"),
	}
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
