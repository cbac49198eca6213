package espn

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/kwhalen/nfl-edge/internal/core/strategy/moneyline"
	"github.com/kwhalen/nfl-edge/internal/nfl"
	"github.com/kwhalen/nfl-edge/internal/telemetry"
)

// Record is a team's season standing.
type Record struct {
	Wins   int     `json:"wins"`
	Losses int     `json:"losses"`
	Streak string  `json:"streak"`
	WinPct float64 `json:"win_pct"`
}

// SeasonData aggregates the slow-moving season feeds: standings, last-five
// form, and each team's most recent completed game (for rest days).
type SeasonData struct {
	Records   map[string]Record
	LastFive  map[string]moneyline.Form
	LastGame  map[string]time.Time
	FetchedAt time.Time
}

func emptySeasonData() *SeasonData {
	return &SeasonData{
		Records:  map[string]Record{},
		LastFive: map[string]moneyline.Form{},
		LastGame: map[string]time.Time{},
	}
}

// RestDays computes days of rest before gameDate. Teams with no completed
// game default to a normal week.
func (sd *SeasonData) RestDays(teamKey string, gameDate time.Time) int {
	last, ok := sd.LastGame[teamKey]
	if !ok || gameDate.IsZero() {
		return 7
	}
	days := int(gameDate.Sub(last).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}

// SeasonCache refreshes SeasonData at most once per TTL, deduping
// concurrent refreshes through singleflight. Stale data is served while a
// refresh is in flight; a failed refresh serves whatever is cached, or the
// empty default.
type SeasonCache struct {
	client *Client
	ttl    time.Duration

	mu   sync.RWMutex
	data *SeasonData
	sf   singleflight.Group
}

func NewSeasonCache(client *Client, ttl time.Duration) *SeasonCache {
	return &SeasonCache{client: client, ttl: ttl}
}

func (sc *SeasonCache) Get(ctx context.Context) *SeasonData {
	sc.mu.RLock()
	data := sc.data
	sc.mu.RUnlock()

	if data != nil && time.Since(data.FetchedAt) < sc.ttl {
		return data
	}

	fresh, err, _ := sc.sf.Do("season", func() (any, error) {
		d := sc.client.fetchSeason(ctx)
		sc.mu.Lock()
		sc.data = d
		sc.mu.Unlock()
		return d, nil
	})
	if err != nil || fresh == nil {
		if data != nil {
			return data
		}
		return emptySeasonData()
	}
	return fresh.(*SeasonData)
}

type standingsResponse struct {
	Children []struct {
		Standings struct {
			Entries []struct {
				Team struct {
					DisplayName string `json:"displayName"`
				} `json:"team"`
				Stats []struct {
					Name         string  `json:"name"`
					Value        float64 `json:"value"`
					DisplayValue string  `json:"displayValue"`
				} `json:"stats"`
			} `json:"entries"`
		} `json:"standings"`
	} `json:"children"`
}

func (c *Client) fetchSeason(ctx context.Context) *SeasonData {
	data := emptySeasonData()
	data.FetchedAt = time.Now()

	var standings standingsResponse
	if err := c.getJSON(ctx, "/standings", &standings); err != nil {
		telemetry.Warnf("espn: standings fetch failed: %v", err)
		telemetry.Metrics.FeedErrors.Inc()
	} else {
		for _, group := range standings.Children {
			for _, entry := range group.Standings.Entries {
				key, _ := nfl.Normalize(entry.Team.DisplayName)
				rec := Record{Streak: "—", WinPct: 0.5}
				for _, stat := range entry.Stats {
					switch stat.Name {
					case "wins":
						rec.Wins = int(stat.Value)
					case "losses":
						rec.Losses = int(stat.Value)
					case "streak":
						rec.Streak = stat.DisplayValue
					}
				}
				if total := rec.Wins + rec.Losses; total > 0 {
					rec.WinPct = float64(rec.Wins) / float64(total)
				}
				data.Records[key] = rec
			}
		}
	}

	c.fetchSeasonResults(ctx, data)
	return data
}

type teamResult struct {
	date time.Time
	win  bool
}

// fetchSeasonResults walks the season's completed games to build each
// team's last-five form and most recent game date.
func (c *Client) fetchSeasonResults(ctx context.Context, data *SeasonData) {
	var resp sbResponse
	path := fmt.Sprintf("/scoreboard?dates=%d&limit=300", c.seasonYear)
	if err := c.getJSON(ctx, path, &resp); err != nil {
		telemetry.Warnf("espn: season results fetch failed: %v", err)
		telemetry.Metrics.FeedErrors.Inc()
		return
	}

	results := map[string][]teamResult{}
	for _, ev := range resp.Events {
		if ev.Status.Type.Name != "STATUS_FINAL" || len(ev.Competitions) == 0 {
			continue
		}
		date, err := time.Parse(time.RFC3339, ev.Date)
		if err != nil {
			if date, err = time.Parse("2006-01-02T15:04Z0700", ev.Date); err != nil {
				continue
			}
		}
		for _, comp := range ev.Competitions[0].Competitors {
			key, ok := nfl.Normalize(comp.Team.DisplayName)
			if !ok {
				continue
			}
			results[key] = append(results[key], teamResult{date: date, win: comp.Winner})
			if date.After(data.LastGame[key]) {
				data.LastGame[key] = date
			}
		}
	}

	for key, games := range results {
		sort.Slice(games, func(i, j int) bool { return games[i].date.After(games[j].date) })
		if len(games) > 5 {
			games = games[:5]
		}
		form := moneyline.Form{}
		for _, g := range games {
			if g.win {
				form.Wins++
				form.Pattern += "W"
			} else {
				form.Losses++
				form.Pattern += "L"
			}
		}
		data.LastFive[key] = form
	}
}
