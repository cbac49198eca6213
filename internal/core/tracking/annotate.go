package tracking

import (
	"fmt"

	"github.com/kwhalen/nfl-edge/internal/core/state/game"
)

// Live status labels, from safest lead to worst.
const (
	StatusWon       = "WON"
	StatusLost      = "LOST"
	StatusCruising  = "CRUISING"
	StatusLeading   = "LEADING"
	StatusAhead     = "AHEAD"
	StatusClose     = "CLOSE"
	StatusBehind    = "BEHIND"
	StatusScheduled = "SCHEDULED"
)

// Annotation is the display-ready live view of one position.
type Annotation struct {
	Status     string `json:"status"`
	Color      string `json:"color"`
	GameStatus string `json:"game_status"` // "FINAL", "Q3 4:12", "SCHEDULED"
	Lead       int    `json:"lead"`
	PickScore  int    `json:"pick_score"`
	OppScore   int    `json:"opp_score"`
	PnL        string `json:"pnl"`
}

// Annotate computes the live labels for a position against the game's
// current snapshot. snap may be nil when the game key is no longer on the
// slate; that renders as SCHEDULED with a flat P&L line rather than erroring.
func Annotate(p Position, snap *game.Snapshot) Annotation {
	cost := float64(p.CostCents) / 100
	potential := float64((100-p.PriceCents)*p.Contracts) / 100

	a := Annotation{
		Status:     StatusScheduled,
		Color:      "#888",
		GameStatus: "SCHEDULED",
		PnL:        fmt.Sprintf("Win: +$%.2f", potential),
	}
	if snap == nil {
		return a
	}

	pickScore, oppScore := snap.HomeScore, snap.AwayScore
	if p.Pick != snap.HomeTeam {
		pickScore, oppScore = snap.AwayScore, snap.HomeScore
	}
	a.PickScore = pickScore
	a.OppScore = oppScore
	a.Lead = pickScore - oppScore

	switch {
	case snap.IsFinal():
		a.GameStatus = "FINAL"
		if pickScore > oppScore {
			a.Status, a.Color = StatusWon, "#00ff00"
			a.PnL = fmt.Sprintf("+$%.2f", potential)
		} else {
			a.Status, a.Color = StatusLost, "#ff0000"
			a.PnL = fmt.Sprintf("-$%.2f", cost)
		}
	case snap.Quarter > 0:
		a.GameStatus = fmt.Sprintf("Q%d %s", snap.Quarter, snap.Clock)
		switch {
		case a.Lead >= 14:
			a.Status, a.Color = StatusCruising, "#00ff00"
		case a.Lead >= 7:
			a.Status, a.Color = StatusLeading, "#00ff00"
		case a.Lead >= 1:
			a.Status, a.Color = StatusAhead, "#ffff00"
		case a.Lead >= -7:
			a.Status, a.Color = StatusClose, "#ff8800"
		default:
			a.Status, a.Color = StatusBehind, "#ff0000"
		}
	}
	return a
}
