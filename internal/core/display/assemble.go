package display

import (
	"fmt"
	"sort"
	"strings"

	"github.com/kwhalen/nfl-edge/internal/core/strategy/moneyline"
	"github.com/kwhalen/nfl-edge/internal/nfl"
)

const maxKeyInjuries = 12

// WeatherBadge renders the compact conditions label shown on pick cards.
// Bands match the outdoor impact classification: severe and moderate show
// wind, everything else shows temperature.
func WeatherBadge(dome bool, impact string, windMPH, tempF float64) string {
	switch {
	case dome:
		return "Dome"
	case impact == "severe":
		return fmt.Sprintf("Storm %.0fmph", windMPH)
	case impact == "moderate":
		return fmt.Sprintf("Wind %.0fmph", windMPH)
	default:
		return fmt.Sprintf("%.0f°F", tempF)
	}
}

// KeyInjuries filters league-wide injury reports down to the rail shown on
// the dashboard: OUT/DOUBTFUL QBs, star players, and skill positions, ranked
// by impact, capped at twelve entries.
func KeyInjuries(injuries map[string][]moneyline.Injury) []KeyInjury {
	var out []KeyInjury
	for team, list := range injuries {
		for _, inj := range list {
			status := strings.ToUpper(inj.Status)
			if !strings.Contains(status, "OUT") && !strings.Contains(status, "DOUBTFUL") {
				continue
			}
			pos := strings.ToUpper(inj.Position)
			isQB := pos == "QB"
			var stars int
			switch {
			case isQB:
				stars = 3
			case nfl.IsStar(team, inj.Name):
				stars = 2
			case pos == "RB" || pos == "WR" || pos == "TE":
				stars = 1
			default:
				continue
			}
			label := "DOUBT"
			if strings.Contains(status, "OUT") {
				label = "OUT"
			}
			out = append(out, KeyInjury{
				Name:     inj.Name,
				Team:     team,
				Position: pos,
				Status:   label,
				Stars:    stars,
				IsQB:     isQB,
			})
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Stars != out[j].Stars {
			return out[i].Stars > out[j].Stars
		}
		return out[i].IsQB && !out[j].IsQB
	})
	if len(out) > maxKeyInjuries {
		out = out[:maxKeyInjuries]
	}
	return out
}

// FormLists splits last-five form into the hot (4+ wins) and cold (0–1 wins)
// team rails.
func FormLists(form map[string]moneyline.Form) (hot, cold []TeamForm) {
	var keys []string
	for team := range form {
		keys = append(keys, team)
	}
	sort.Strings(keys)
	for _, team := range keys {
		f := form[team]
		if f.Wins+f.Losses < 5 {
			continue
		}
		switch {
		case f.Wins >= 4:
			hot = append(hot, TeamForm{Team: team, Pattern: f.Pattern})
		case f.Wins <= 1:
			cold = append(cold, TeamForm{Team: team, Pattern: f.Pattern})
		}
	}
	return hot, cold
}
