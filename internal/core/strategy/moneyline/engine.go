// Package moneyline computes the 10-factor pregame score for a matchup and
// picks a side. Factors are point-additive — each one adds to exactly one
// accumulator when its condition holds, nothing ever subtracts — and the
// two raw totals are normalized onto a shared 0–10 scale.
package moneyline

import (
	"fmt"
	"math"

	"github.com/kwhalen/nfl-edge/internal/nfl"
	"github.com/kwhalen/nfl-edge/internal/telemetry"
)

// Weather is the slice of a weather reading the model cares about.
type Weather struct {
	WindMPH  float64
	PrecipIn float64
	TempF    float64
	Dome     bool
}

// Form is a team's last-five record.
type Form struct {
	Wins    int
	Losses  int
	Pattern string // "WWLWW"
}

// Rest carries rest-day counts for both sides. Known is false when the
// schedule feed produced nothing, which disables the rest factors entirely.
type Rest struct {
	HomeDays int
	AwayDays int
	Known    bool
}

// Matchup is one scheduled game to score. Injuries and Form are keyed by
// canonical team key; missing entries simply contribute nothing.
type Matchup struct {
	HomeTeam string
	AwayTeam string
	Injuries map[string][]Injury
	Weather  *Weather
	Form     map[string]Form
	Rest     Rest
}

// Result is the engine's full output for one matchup.
type Result struct {
	Pick      string
	PickScore float64
	HomeScore float64 // normalized, HomeScore+AwayScore == 10.0 when any factor fired
	AwayScore float64
	Tier      string
	Reasons   []string // winning side only, factor evaluation order, capped
	HomeOut   []string
	AwayOut   []string
	HomeDVOA  float64
	AwayDVOA  float64
}

type Engine struct {
	cfg Config
}

func NewEngine(cfg Config) *Engine {
	if cfg.MaxReasons <= 0 {
		cfg.MaxReasons = 5
	}
	return &Engine{cfg: cfg}
}

// side accumulates one team's raw points and reasons during evaluation.
type side struct {
	score   float64
	reasons []string
}

func (s *side) add(points float64, reason string) {
	s.score += points
	s.reasons = append(s.reasons, reason)
}

// Score evaluates all factors for a matchup. Lookup misses degrade to
// neutral attributes — an unknown team weakens the score, it never aborts
// the computation. Output is deterministic for identical inputs.
func (e *Engine) Score(m Matchup) Result {
	f := e.cfg.Factors

	homeRef, homeOK := nfl.Lookup(m.HomeTeam)
	awayRef, awayOK := nfl.Lookup(m.AwayTeam)
	if !homeOK || !awayOK {
		telemetry.Metrics.ReferenceMisses.Inc()
	}
	homeStats := neutralize(homeRef, homeOK)
	awayStats := neutralize(awayRef, awayOK)

	var home, away side

	// Factor 1: rating differential.
	dvoaDiff := homeStats.DVOA - awayStats.DVOA
	if dvoaDiff > f.RatingGap {
		home.add(f.RatingEdge, fmt.Sprintf("DVOA %+.1f", homeStats.DVOA))
	} else if dvoaDiff < -f.RatingGap {
		away.add(f.RatingEdge, fmt.Sprintf("DVOA %+.1f", awayStats.DVOA))
	}

	// Factor 2: top defense — both sides independently eligible.
	if homeStats.DefRank <= f.TopDefenseRank {
		home.add(f.TopDefense, fmt.Sprintf("#%d DEF", homeStats.DefRank))
	}
	if awayStats.DefRank <= f.TopDefenseRank {
		away.add(f.TopDefense, fmt.Sprintf("#%d DEF", awayStats.DefRank))
	}

	// Factor 3: home field.
	home.add(f.HomeField, "Home")

	// Factor 4: injuries. QB-out is the big bonus; the general burden
	// differential only pays a side that didn't already collect it.
	homeInj := e.scoreInjuries(m.HomeTeam, m.Injuries[m.HomeTeam])
	awayInj := e.scoreInjuries(m.AwayTeam, m.Injuries[m.AwayTeam])

	if awayInj.qbOut {
		home.add(f.QBOut, "Opp QB Out")
	}
	if homeInj.qbOut {
		away.add(f.QBOut, "Opp QB Out")
	}
	if homeInj.score-awayInj.score > f.InjuryGap && !homeInj.qbOut {
		away.add(f.InjuryDiff, "Injury Edge")
	} else if awayInj.score-homeInj.score > f.InjuryGap && !awayInj.qbOut {
		home.add(f.InjuryDiff, "Injury Edge")
	}

	// Factor 5: travel burden on the visitor.
	miles := nfl.StadiumDistanceMiles(m.AwayTeam, m.HomeTeam)
	tzGap := nfl.TimezoneGap(m.AwayTeam, m.HomeTeam)
	if miles > f.TravelMiles || tzGap >= f.TravelTZGap {
		home.add(f.Travel, fmt.Sprintf("Opp Travel %.0fmi", miles))
	}

	// Factor 6: home win rate, plus the road-warrior / road-kill split.
	if homeStats.HomeWinPct > f.HomeWinPct {
		home.add(f.HomeWin, fmt.Sprintf("%d%% Home Win", int(homeStats.HomeWinPct*100)))
	}
	if awayStats.AwayWinPct >= f.RoadWarriorPct {
		away.add(f.RoadWarrior, fmt.Sprintf("%d%% Road Win", int(awayStats.AwayWinPct*100)))
	} else if awayStats.AwayWinPct <= f.RoadKillPct {
		home.add(f.RoadKill, fmt.Sprintf("Opp %d%% Road", int(awayStats.AwayWinPct*100)))
	}

	// Factor 7: weather gate. Only open-air stadiums in real wind or rain.
	if w := m.Weather; w != nil && !w.Dome && (w.WindMPH >= f.WeatherWindMPH || w.PrecipIn > f.WeatherPrecipIn) {
		if awayRef.Style == nfl.StylePassHeavy {
			home.add(f.WeatherPassPenalty, fmt.Sprintf("Wind %.0f", w.WindMPH))
		} else if homeRef.Style == nfl.StylePassHeavy {
			away.add(f.WeatherPassPenalty, fmt.Sprintf("Wind %.0f", w.WindMPH))
		}
		if homeRef.Style == nfl.StyleRunHeavy {
			home.add(f.WeatherRunBonus, "Run Game")
		} else if awayRef.Style == nfl.StyleRunHeavy {
			away.add(f.WeatherRunBonus, "Run Game")
		}
	}

	// Factor 8: rest differential and short-week penalties.
	if m.Rest.Known {
		restDiff := m.Rest.HomeDays - m.Rest.AwayDays
		if restDiff >= f.RestGapDays {
			home.add(f.RestEdge, fmt.Sprintf("+%dd Rest", restDiff))
		} else if restDiff <= -f.RestGapDays {
			away.add(f.RestEdge, fmt.Sprintf("+%dd Rest", -restDiff))
		}
		if m.Rest.HomeDays <= f.ShortWeekDays {
			away.add(f.ShortWeek, "Opp Short Week")
		}
		if m.Rest.AwayDays <= f.ShortWeekDays {
			home.add(f.ShortWeek, "Opp Short Week")
		}
	}

	// Factor 9: recent form over the last five.
	if hf, ok := m.Form[m.HomeTeam]; ok {
		if hf.Wins >= f.FormHotWins {
			home.add(f.FormHot, "Hot "+hf.Pattern)
		} else if hf.Wins <= f.FormColdWins && hf.Wins+hf.Losses >= 5 {
			away.add(f.FormCold, "Opp Cold")
		}
	}
	if af, ok := m.Form[m.AwayTeam]; ok {
		if af.Wins >= f.FormHotWins {
			away.add(f.FormHot, "Hot "+af.Pattern)
		} else if af.Wins <= f.FormColdWins && af.Wins+af.Losses >= 5 {
			home.add(f.FormCold, "Opp Cold")
		}
	}

	// Factor 10: divisional rivalry — slight edge to the hosts.
	if nfl.SameDivision(m.HomeTeam, m.AwayTeam) {
		home.add(f.Division, "Division Game")
	}

	telemetry.Metrics.PicksScored.Inc()
	return e.finalize(m, home, away, homeStats, awayStats, homeInj, awayInj)
}

// finalize normalizes the raw totals onto the 0–10 scale, applies the
// home-biased tie-break, and trims the winning side's reason list.
func (e *Engine) finalize(m Matchup, home, away side, homeStats, awayStats stats, homeInj, awayInj injuryBurden) Result {
	total := home.score + away.score
	var homeFinal, awayFinal float64
	if total > 0 {
		homeFinal = round1(home.score / total * 10)
		awayFinal = round1(away.score / total * 10)
	} else {
		homeFinal, awayFinal = 5.0, 5.0
	}

	res := Result{
		HomeScore: homeFinal,
		AwayScore: awayFinal,
		HomeOut:   homeInj.outList,
		AwayOut:   awayInj.outList,
		HomeDVOA:  homeStats.DVOA,
		AwayDVOA:  awayStats.DVOA,
	}

	// Exact ties go to the home team.
	if homeFinal >= awayFinal {
		res.Pick = m.HomeTeam
		res.PickScore = homeFinal
		res.Reasons = capReasons(home.reasons, e.cfg.MaxReasons)
	} else {
		res.Pick = m.AwayTeam
		res.PickScore = awayFinal
		res.Reasons = capReasons(away.reasons, e.cfg.MaxReasons)
	}
	res.Tier = e.cfg.Tier(res.PickScore)
	return res
}

// stats is the neutral-default view of a team's rating attributes.
type stats struct {
	DVOA       float64
	DefRank    int
	HomeWinPct float64
	AwayWinPct float64
}

func neutralize(t nfl.Team, ok bool) stats {
	if !ok {
		return stats{
			DVOA:       nfl.NeutralDVOA,
			DefRank:    nfl.NeutralDefRank,
			HomeWinPct: nfl.NeutralWinPct,
			AwayWinPct: nfl.NeutralWinPct,
		}
	}
	return stats{
		DVOA:       t.DVOA,
		DefRank:    t.DefRank,
		HomeWinPct: t.HomeWinPct,
		AwayWinPct: t.AwayWinPct,
	}
}

func capReasons(reasons []string, max int) []string {
	if len(reasons) > max {
		return reasons[:max]
	}
	return reasons
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
