// Package display assembles the display-ready dashboard snapshot: labels,
// colors, and numeric scores the presentation layer renders verbatim. No
// layout or styling decisions live here beyond the color hexes the cards
// have always carried.
package display

import (
	"fmt"
	"time"

	"github.com/kwhalen/nfl-edge/internal/core/ballpos"
	"github.com/kwhalen/nfl-edge/internal/core/stress"
	"github.com/kwhalen/nfl-edge/internal/core/tracking"
)

// Play is one recent play in a live card's drive log.
type Play struct {
	Text    string `json:"text"`
	Scoring bool   `json:"scoring"`
	Quarter int    `json:"quarter"`
	Clock   string `json:"clock"`
	Icon    string `json:"icon"`
}

// Ball is the renderable ball-position state for the field widget.
type Ball struct {
	Yard      int    `json:"yard"` // 0–100, away endzone at 0
	Mode      string `json:"mode"`
	PossCode  string `json:"poss_code"` // Kalshi code of possession team, "" between plays
	Direction string `json:"direction"` // "left" home drives, "right" away drives
	Situation string `json:"situation"`
}

// LiveCard is one in-progress game.
type LiveCard struct {
	GameKey    string   `json:"game_key"`
	HomeTeam   string   `json:"home_team"`
	AwayTeam   string   `json:"away_team"`
	HomeScore  int      `json:"home_score"`
	AwayScore  int      `json:"away_score"`
	Quarter    string   `json:"quarter"` // "Q3", "OT"
	Clock      string   `json:"clock"`
	State      string   `json:"state"` // uncertainty label
	StateColor string   `json:"state_color"`
	Move       string   `json:"move"` // expected price movement band
	Pressure   string   `json:"pressure"`
	RedZone    bool     `json:"red_zone"`
	Triggers   []string `json:"triggers"`
	Ball       Ball     `json:"ball"`
	Plays      []Play   `json:"plays"`
	TradeURL   string   `json:"trade_url"`
}

// FinalCard is one resolved game.
type FinalCard struct {
	GameKey    string `json:"game_key"`
	HomeTeam   string `json:"home_team"`
	AwayTeam   string `json:"away_team"`
	HomeScore  int    `json:"home_score"`
	AwayScore  int    `json:"away_score"`
	WinnerCode string `json:"winner_code"`
}

// PickCard is one scheduled game's moneyline pick.
type PickCard struct {
	GameKey      string   `json:"game_key"`
	Pick         string   `json:"pick"`
	PickCode     string   `json:"pick_code"`
	Opponent     string   `json:"opponent"`
	Score        float64  `json:"score"`
	HomeScore    float64  `json:"home_score"`
	AwayScore    float64  `json:"away_score"`
	Tier         string   `json:"tier"`
	TierColor    string   `json:"tier_color"`
	Reasons      []string `json:"reasons"`
	PickDVOA     float64  `json:"pick_dvoa"`
	OppDVOA      float64  `json:"opp_dvoa"`
	WeatherBadge string   `json:"weather_badge"`
	HomeOut      []string `json:"home_out"`
	AwayOut      []string `json:"away_out"`
	TradeURL     string   `json:"trade_url"`
}

// PositionCard is one tracked position with its live annotation.
type PositionCard struct {
	Position   tracking.Position   `json:"position"`
	Annotation tracking.Annotation `json:"annotation"`
	TradeURL   string              `json:"trade_url"`
}

// KeyInjury is one entry of the league-wide injury rail.
type KeyInjury struct {
	Name     string `json:"name"`
	Team     string `json:"team"`
	Position string `json:"position"`
	Status   string `json:"status"` // "OUT" or "DOUBT"
	Stars    int    `json:"stars"`
	IsQB     bool   `json:"is_qb"`
}

// TeamForm is one hot/cold list entry.
type TeamForm struct {
	Team    string `json:"team"`
	Pattern string `json:"pattern"`
}

// Dashboard is the complete output of one poll cycle.
type Dashboard struct {
	GeneratedAt time.Time      `json:"generated_at"`
	Live        []LiveCard     `json:"live"`
	Final       []FinalCard    `json:"final"`
	Picks       []PickCard     `json:"picks"`
	Positions   []PositionCard `json:"positions"`
	Injuries    []KeyInjury    `json:"injuries"`
	HotTeams    []TeamForm     `json:"hot_teams"`
	ColdTeams   []TeamForm     `json:"cold_teams"`
}

// StateColor maps an uncertainty level onto its card border color.
func StateColor(level stress.Level) string {
	switch level {
	case stress.LevelMax:
		return "#ff0000"
	case stress.LevelElevated:
		return "#ffaa00"
	default:
		return "#44ff44"
	}
}

// TierColor maps a signal tier onto its accent color.
func TierColor(tier string) string {
	switch tier {
	case "STRONG":
		return "#00ff00"
	case "BUY":
		return "#00aaff"
	case "LEAN":
		return "#ffff00"
	case "TOSS-UP":
		return "#888888"
	default:
		return "#555555"
	}
}

// BallFor converts a resolver result plus possession direction into the
// field-widget state.
func BallFor(res ballpos.Result, possCode string, homePossession bool) Ball {
	b := Ball{
		Yard:      res.Yard,
		Mode:      string(res.Mode),
		Situation: res.Situation,
	}
	if res.Mode == ballpos.ModeNormal && res.PossTeam != "" {
		b.PossCode = possCode
		if homePossession {
			b.Direction = "left"
		} else {
			b.Direction = "right"
		}
	}
	return b
}

// QuarterLabel renders a period number; anything past regulation is OT.
func QuarterLabel(quarter int) string {
	if quarter >= 5 {
		return "OT"
	}
	return fmt.Sprintf("Q%d", quarter)
}
