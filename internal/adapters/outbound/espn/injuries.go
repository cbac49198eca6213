package espn

import (
	"context"

	"github.com/kwhalen/nfl-edge/internal/core/strategy/moneyline"
	"github.com/kwhalen/nfl-edge/internal/nfl"
	"github.com/kwhalen/nfl-edge/internal/telemetry"
)

type injuriesResponse struct {
	Injuries []struct {
		DisplayName string `json:"displayName"`
		Injuries    []struct {
			Status  string `json:"status"`
			Athlete struct {
				DisplayName string `json:"displayName"`
				Position    struct {
					Abbreviation string `json:"abbreviation"`
				} `json:"position"`
			} `json:"athlete"`
		} `json:"injuries"`
	} `json:"injuries"`
}

// FetchInjuries returns the injury report keyed by canonical team key.
// Safe default on failure: an empty map, which scores every game as if
// nobody were hurt.
func (c *Client) FetchInjuries(ctx context.Context) map[string][]moneyline.Injury {
	var resp injuriesResponse
	if err := c.getJSON(ctx, "/injuries", &resp); err != nil {
		telemetry.Warnf("espn: injuries fetch failed: %v", err)
		telemetry.Metrics.FeedErrors.Inc()
		return map[string][]moneyline.Injury{}
	}

	out := make(map[string][]moneyline.Injury, len(resp.Injuries))
	for _, team := range resp.Injuries {
		key, _ := nfl.Normalize(team.DisplayName)
		if key == "" {
			continue
		}
		for _, inj := range team.Injuries {
			if inj.Athlete.DisplayName == "" {
				continue
			}
			out[key] = append(out[key], moneyline.Injury{
				Name:     inj.Athlete.DisplayName,
				Status:   inj.Status,
				Position: inj.Athlete.Position.Abbreviation,
			})
		}
	}
	return out
}
