// Package openmeteo fetches current stadium weather from the Open-Meteo
// forecast API (free, keyless). Only open-air stadiums are ever queried;
// dome games get a fixed indoor reading without a network call.
package openmeteo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/kwhalen/nfl-edge/internal/core/strategy/moneyline"
	"github.com/kwhalen/nfl-edge/internal/nfl"
	"github.com/kwhalen/nfl-edge/internal/telemetry"
)

// Impact bands shown as weather badges.
const (
	ImpactNone     = "none"
	ImpactLight    = "light"
	ImpactModerate = "moderate"
	ImpactSevere   = "severe"
)

// Reading is a current-conditions sample for one stadium.
type Reading struct {
	TempF    float64 `json:"temp"`
	WindMPH  float64 `json:"wind"`
	PrecipIn float64 `json:"precip"`
	Code     int     `json:"code"`
	Dome     bool    `json:"dome"`
	Impact   string  `json:"impact"`
}

// neutralReading is the safe default when the source times out or errors.
func neutralReading() Reading {
	return Reading{TempF: 70, Impact: ImpactNone}
}

func domeReading() Reading {
	return Reading{TempF: 72, Dome: true, Impact: ImpactNone}
}

// Model converts a reading into the slice the moneyline engine consumes.
func (r Reading) Model() *moneyline.Weather {
	return &moneyline.Weather{
		WindMPH:  r.WindMPH,
		PrecipIn: r.PrecipIn,
		TempF:    r.TempF,
		Dome:     r.Dome,
	}
}

type cacheEntry struct {
	reading   Reading
	fetchedAt time.Time
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	cacheTTL   time.Duration

	mu    sync.RWMutex
	cache map[string]cacheEntry
	sf    singleflight.Group
}

func NewClient(baseURL string, timeout, cacheTTL time.Duration) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		cacheTTL:   cacheTTL,
		cache:      make(map[string]cacheEntry),
	}
}

// ForGame returns the weather reading for a home team's stadium. Domes are
// answered locally; unknown teams and source failures degrade to the
// neutral reading. Results are cached per team and concurrent fetches for
// the same stadium are deduped.
func (c *Client) ForGame(ctx context.Context, homeTeam string) Reading {
	team, ok := nfl.Lookup(homeTeam)
	if !ok {
		return neutralReading()
	}
	if team.Dome {
		return domeReading()
	}

	c.mu.RLock()
	entry, hit := c.cache[homeTeam]
	c.mu.RUnlock()
	if hit && time.Since(entry.fetchedAt) < c.cacheTTL {
		return entry.reading
	}

	v, _, _ := c.sf.Do(homeTeam, func() (any, error) {
		r := c.fetch(ctx, team.Lat, team.Lon)
		c.mu.Lock()
		c.cache[homeTeam] = cacheEntry{reading: r, fetchedAt: time.Now()}
		c.mu.Unlock()
		return r, nil
	})
	return v.(Reading)
}

type forecastResponse struct {
	Current struct {
		Temperature   float64 `json:"temperature_2m"`
		WindSpeed     float64 `json:"wind_speed_10m"`
		Precipitation float64 `json:"precipitation"`
		WeatherCode   int     `json:"weather_code"`
	} `json:"current"`
}

func (c *Client) fetch(ctx context.Context, lat, lon float64) Reading {
	url := fmt.Sprintf(
		"%s?latitude=%.4f&longitude=%.4f&current=temperature_2m,wind_speed_10m,precipitation,weather_code&wind_speed_unit=mph&temperature_unit=fahrenheit",
		c.baseURL, lat, lon,
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return neutralReading()
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		telemetry.Warnf("openmeteo: fetch failed: %v", err)
		telemetry.Metrics.WeatherErrors.Inc()
		return neutralReading()
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		telemetry.Warnf("openmeteo: status %d", resp.StatusCode)
		telemetry.Metrics.WeatherErrors.Inc()
		return neutralReading()
	}

	var fc forecastResponse
	if err := json.NewDecoder(resp.Body).Decode(&fc); err != nil {
		telemetry.Warnf("openmeteo: decode failed: %v", err)
		telemetry.Metrics.WeatherErrors.Inc()
		return neutralReading()
	}

	r := Reading{
		TempF:    fc.Current.Temperature,
		WindMPH:  fc.Current.WindSpeed,
		PrecipIn: fc.Current.Precipitation,
		Code:     fc.Current.WeatherCode,
	}
	r.Impact = impactBand(r.WindMPH, r.PrecipIn)
	return r
}

func impactBand(wind, precip float64) string {
	switch {
	case wind >= 20 || precip > 0.5:
		return ImpactSevere
	case wind >= 15 || precip > 0.1:
		return ImpactModerate
	case wind >= 10:
		return ImpactLight
	default:
		return ImpactNone
	}
}
