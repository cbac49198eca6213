package moneyline

import (
	"strings"

	"github.com/kwhalen/nfl-edge/internal/nfl"
)

// Injury is one entry from the per-team injury feed.
type Injury struct {
	Name     string
	Status   string // "Out", "Doubtful", "Questionable", ...
	Position string // "QB", "WR", ...
}

// injuryBurden is the scored injury situation for one team.
type injuryBurden struct {
	score   float64
	qbOut   bool
	outList []string // players listed OUT, QBs tagged
}

// scoreInjuries applies the per-status increments from the config. The
// weighting is deliberately crude: a QB dominates, a notable player
// matters, everyone else is noise.
func (e *Engine) scoreInjuries(teamKey string, injuries []Injury) injuryBurden {
	var b injuryBurden
	for _, inj := range injuries {
		status := strings.ToUpper(inj.Status)
		isQB := strings.ToUpper(inj.Position) == "QB"
		isStar := nfl.IsStar(teamKey, inj.Name)

		var pts InjuryPoints
		switch {
		case strings.Contains(status, "OUT"):
			pts = e.cfg.InjuryPoints.Out
		case strings.Contains(status, "DOUBTFUL"):
			pts = e.cfg.InjuryPoints.Doubtful
		case strings.Contains(status, "QUESTIONABLE"):
			pts = e.cfg.InjuryPoints.Questionable
		default:
			continue
		}

		switch {
		case isQB:
			b.score += pts.QB
		case isStar:
			b.score += pts.Star
		default:
			b.score += pts.Other
		}

		if strings.Contains(status, "OUT") {
			if isQB {
				b.qbOut = true
				b.outList = append(b.outList, inj.Name+" (QB)")
			} else if isStar {
				b.outList = append(b.outList, inj.Name)
			}
		}
	}
	return b
}
