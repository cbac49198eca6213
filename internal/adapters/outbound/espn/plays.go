package espn

import (
	"context"
	"strings"

	"github.com/kwhalen/nfl-edge/internal/telemetry"
)

// Play is one recent play, display-ready.
type Play struct {
	Text    string `json:"text"`
	Scoring bool   `json:"scoring"`
	Quarter int    `json:"quarter"`
	Clock   string `json:"clock"`
	Icon    string `json:"icon"`
}

type summaryResponse struct {
	Plays  []summaryPlay `json:"plays"`
	Drives struct {
		Previous []struct {
			Plays []summaryPlay `json:"plays"`
		} `json:"previous"`
		Current struct {
			Plays []summaryPlay `json:"plays"`
		} `json:"current"`
	} `json:"drives"`
}

type summaryPlay struct {
	Text        string `json:"text"`
	Description string `json:"description"`
	ScoringPlay bool   `json:"scoringPlay"`
	Period      struct {
		Number int `json:"number"`
	} `json:"period"`
	Clock struct {
		DisplayValue string `json:"displayValue"`
	} `json:"clock"`
}

// playIcons classifies play text for the drive log. First match wins.
var playIcons = []struct {
	any  []string
	icon string
}{
	{[]string{"touchdown"}, "TD"},
	{[]string{"intercept", "fumble"}, "TO"},
	{[]string{"field goal"}, "FG"},
	{[]string{"punt", "kickoff"}, "KICK"},
	{[]string{"sack"}, "SACK"},
	{[]string{"incomplete"}, "INC"},
	{[]string{"pass"}, "PASS"},
	{[]string{"rush", "run ", "middle", "tackle", "guard", "scramble"}, "RUN"},
	{[]string{"kneel"}, "KNEEL"},
	{[]string{"penalty"}, "FLAG"},
}

func classifyIcon(text string, scoring bool) string {
	lower := strings.ToLower(text)
	if scoring {
		return "TD"
	}
	for _, rule := range playIcons {
		for _, s := range rule.any {
			if strings.Contains(lower, s) {
				return rule.icon
			}
		}
	}
	return "PLAY"
}

// FetchRecentPlays returns up to the last five plays for a live game,
// newest first. Empty slice on any failure.
func (c *Client) FetchRecentPlays(ctx context.Context, eventID string) []Play {
	var resp summaryResponse
	if err := c.getJSON(ctx, "/summary?event="+eventID, &resp); err != nil {
		telemetry.Warnf("espn: summary fetch failed for %s: %v", eventID, err)
		telemetry.Metrics.FeedErrors.Inc()
		return nil
	}

	all := resp.Plays
	if len(all) == 0 {
		for _, drive := range resp.Drives.Previous {
			all = append(all, drive.Plays...)
		}
		all = append(all, resp.Drives.Current.Plays...)
	}
	if len(all) == 0 {
		return nil
	}

	if len(all) > 5 {
		all = all[len(all)-5:]
	}

	plays := make([]Play, 0, len(all))
	for i := len(all) - 1; i >= 0; i-- {
		p := all[i]
		text := p.Text
		if text == "" {
			text = p.Description
		}
		if text == "" {
			continue
		}
		// Truncate on a rune boundary; player names in play text are not
		// always ASCII.
		if r := []rune(text); len(r) > 100 {
			text = string(r[:100]) + "..."
		}
		plays = append(plays, Play{
			Text:    text,
			Scoring: p.ScoringPlay,
			Quarter: p.Period.Number,
			Clock:   p.Clock.DisplayValue,
			Icon:    classifyIcon(text, p.ScoringPlay),
		})
	}
	return plays
}
