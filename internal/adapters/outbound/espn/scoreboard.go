package espn

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/kwhalen/nfl-edge/internal/core/state/game"
	"github.com/kwhalen/nfl-edge/internal/nfl"
	"github.com/kwhalen/nfl-edge/internal/telemetry"
)

type sbResponse struct {
	Events []sbEvent `json:"events"`
}

type sbEvent struct {
	ID           string          `json:"id"`
	Date         string          `json:"date"`
	Status       sbStatus        `json:"status"`
	Competitions []sbCompetition `json:"competitions"`
}

type sbStatus struct {
	DisplayClock string `json:"displayClock"`
	Period       int    `json:"period"`
	Type         struct {
		Name string `json:"name"`
	} `json:"type"`
}

type sbCompetition struct {
	Competitors []sbCompetitor `json:"competitors"`
	Situation   *sbSituation   `json:"situation"`
}

type sbCompetitor struct {
	HomeAway string `json:"homeAway"`
	Score    string `json:"score"`
	Winner   bool   `json:"winner"`
	Team     struct {
		ID           string `json:"id"`
		DisplayName  string `json:"displayName"`
		Abbreviation string `json:"abbreviation"`
	} `json:"team"`
}

type sbSituation struct {
	Down           int    `json:"down"`
	Distance       int    `json:"distance"`
	YardsToEndzone *int   `json:"yardsToEndzone"`
	Possession     string `json:"possession"`
	PossessionText string `json:"possessionText"`
	IsRedZone      bool   `json:"isRedZone"`
	LastPlay       *struct {
		Text        string `json:"text"`
		Description string `json:"description"`
		ScoringPlay bool   `json:"scoringPlay"`
		Type        struct {
			Text string `json:"text"`
		} `json:"type"`
	} `json:"lastPlay"`
}

// FetchScoreboard returns the current slate keyed by away@home. On any
// fetch or decode failure the safe default is an empty map — the caller's
// poll cycle proceeds with no games rather than failing.
func (c *Client) FetchScoreboard(ctx context.Context) map[string]*game.Snapshot {
	var resp sbResponse
	if err := c.getJSON(ctx, "/scoreboard", &resp); err != nil {
		telemetry.Warnf("espn: scoreboard fetch failed: %v", err)
		telemetry.Metrics.FeedErrors.Inc()
		return map[string]*game.Snapshot{}
	}

	games := make(map[string]*game.Snapshot, len(resp.Events))
	for _, ev := range resp.Events {
		snap := parseEvent(ev)
		if snap == nil {
			continue
		}
		games[snap.GameKey] = snap
	}
	return games
}

func parseEvent(ev sbEvent) *game.Snapshot {
	if len(ev.Competitions) == 0 {
		return nil
	}
	comp := ev.Competitions[0]
	if len(comp.Competitors) < 2 {
		return nil
	}

	snap := &game.Snapshot{
		EventID: ev.ID,
		Status:  ev.Status.Type.Name,
		Quarter: ev.Status.Period,
		Clock:   ev.Status.DisplayClock,
	}
	// The feed stamps dates both with and without seconds.
	if t, err := time.Parse(time.RFC3339, ev.Date); err == nil {
		snap.GameDate = t
	} else if t, err := time.Parse("2006-01-02T15:04Z0700", ev.Date); err == nil {
		snap.GameDate = t
	}

	var homeID, awayID string
	for _, comp := range comp.Competitors {
		key, _ := nfl.Normalize(comp.Team.DisplayName)
		score, _ := strconv.Atoi(comp.Score)
		if comp.HomeAway == "home" {
			snap.HomeTeam, snap.HomeScore, homeID = key, score, comp.Team.ID
			snap.HomeAbbrev = comp.Team.Abbreviation
		} else {
			snap.AwayTeam, snap.AwayScore, awayID = key, score, comp.Team.ID
			snap.AwayAbbrev = comp.Team.Abbreviation
		}
	}
	if snap.HomeTeam == "" || snap.AwayTeam == "" {
		return nil
	}
	snap.GameKey = snap.AwayTeam + "@" + snap.HomeTeam

	snap.YardsToEndzone = 50
	if sit := comp.Situation; sit != nil {
		snap.Down = sit.Down
		snap.Distance = sit.Distance
		// A feed-supplied 0 is a legitimate goal-line spot; only an
		// absent field defaults to midfield.
		if sit.YardsToEndzone != nil {
			snap.YardsToEndzone = *sit.YardsToEndzone
		}
		snap.PossText = sit.PossessionText
		snap.RedZone = sit.IsRedZone

		switch sit.Possession {
		case homeID:
			snap.PossessionTeam = snap.HomeTeam
			home := true
			snap.HomePossession = &home
		case awayID:
			snap.PossessionTeam = snap.AwayTeam
			home := false
			snap.HomePossession = &home
		}

		if lp := sit.LastPlay; lp != nil {
			text := lp.Text
			if text == "" {
				text = lp.Description
			}
			snap.LastPlay = game.LastPlay{
				Text:        text,
				ScoringPlay: lp.ScoringPlay,
				TypeText:    lp.Type.Text,
			}
			lower := strings.ToLower(text)
			snap.HadTurnover = strings.Contains(lower, "intercept") || strings.Contains(lower, "fumble")
		}
	}

	return snap
}
