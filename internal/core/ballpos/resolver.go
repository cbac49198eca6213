// Package ballpos resolves a single consistent "where is the ball" state
// from the scoreboard feed's incomplete possession signals, falling back to
// last-known-good memory when the feed goes blank mid-drive.
package ballpos

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kwhalen/nfl-edge/internal/core/state/game"
	"github.com/kwhalen/nfl-edge/internal/telemetry"
)

// Mode tells the display layer how to render the ball marker.
type Mode string

const (
	ModeNormal       Mode = "normal"
	ModeScoring      Mode = "scoring"
	ModeKickoff      Mode = "kickoff"
	ModeBetweenPlays Mode = "between_plays"
)

// Result is a display-safe ball state. Yard is always within [0,100]:
// 0 is the away endzone, 100 the home endzone.
type Result struct {
	Yard      int
	Mode      Mode
	PossTeam  string
	Situation string
}

const (
	midfield    = 50
	kickoffSpot = 65
)

// Resolve works through the fallback chain in priority order:
//
//  1. direct parse of possession text ("BUF 25")
//  2. scoring-play detection from the last-play descriptor
//  3. kickoff / punt transition plays
//  4. stalled clock at 0:00
//  5. generic in-progress fallback to last known position
//  6. not started
//
// The returned *game.Memory is non-nil only on the direct-parse path; the
// caller persists it as the game's new last-known-good state. Resolve never
// fails — absence of data is itself a valid, renderable outcome.
func Resolve(snap *game.Snapshot, prev *game.Memory) (Result, *game.Memory) {
	if res, mem, ok := directParse(snap, prev); ok {
		return res, mem
	}

	kind := ClassifyPlay(snap.LastPlay)

	if kind.Scoring() {
		telemetry.Metrics.ResolverFallbacks.Inc()
		return Result{
			Yard:      clamp(scoringSpot(snap, prev)),
			Mode:      ModeScoring,
			Situation: kind.Label(),
		}, nil
	}

	switch kind {
	case PlayKickoff:
		return Result{Yard: kickoffSpot, Mode: ModeKickoff, Situation: "KICKOFF"}, nil
	case PlayPunt:
		return Result{Yard: midfield, Mode: ModeBetweenPlays, Situation: "PUNT"}, nil
	}

	if snap.Quarter > 0 {
		telemetry.Metrics.ResolverFallbacks.Inc()
		if snap.Clock == "0:00" {
			return Result{
				Yard:      clamp(lastYard(prev)),
				Mode:      ModeBetweenPlays,
				Situation: "End of Quarter",
			}, nil
		}
		res := Result{
			Yard:      clamp(lastYard(prev)),
			Mode:      ModeBetweenPlays,
			Situation: "Between Plays",
		}
		if prev != nil {
			res.PossTeam = prev.PossTeam
		}
		return res, nil
	}

	// Not started, or no data at all.
	return Result{Yard: midfield, Mode: ModeBetweenPlays}, nil
}

// directParse handles possession text of the form "<CODE> <yard>". The code
// is matched against the feed's own abbreviations for the two teams in this
// game — feed abbreviations drift from the Kalshi code table, so the static
// table is never consulted here.
func directParse(snap *game.Snapshot, prev *game.Memory) (Result, *game.Memory, bool) {
	text := strings.TrimSpace(snap.PossText)
	if text == "" {
		return Result{}, nil, false
	}
	parts := strings.Fields(text)
	if len(parts) < 2 {
		return Result{}, nil, false
	}

	side := strings.ToUpper(parts[0])
	yardLine, err := strconv.Atoi(parts[len(parts)-1])
	if err != nil {
		return Result{}, nil, false
	}

	var yard int
	switch side {
	case strings.ToUpper(snap.AwayAbbrev):
		// Ball on the away side: "BUF 25" is 25 yards from the away endzone.
		yard = yardLine
	case strings.ToUpper(snap.HomeAbbrev):
		yard = 100 - yardLine
	default:
		// Unknown code. Fall back to the feed's signed distance-to-endzone,
		// then to last known position.
		telemetry.Metrics.ResolverFallbacks.Inc()
		if snap.HomePossession != nil {
			if *snap.HomePossession {
				yard = snap.YardsToEndzone
			} else {
				yard = 100 - snap.YardsToEndzone
			}
		} else {
			yard = lastYard(prev)
		}
	}

	res := Result{
		Yard:      clamp(yard),
		Mode:      ModeNormal,
		PossTeam:  snap.PossessionTeam,
		Situation: situationText(snap),
	}
	mem := &game.Memory{
		BallYard: res.Yard,
		PossTeam: snap.PossessionTeam,
		PossText: text,
	}
	if prev != nil {
		mem.PressureBucket = prev.PressureBucket
	}
	return res, mem, true
}

// scoringSpot places the ball at the scoring team's target endzone. When the
// previous possession team is unknown the direction is guessed from which
// half the ball was last on — a documented 50/50 fallback, not an inference.
func scoringSpot(snap *game.Snapshot, prev *game.Memory) int {
	if prev != nil && prev.PossTeam != "" {
		if prev.PossTeam == snap.HomeTeam {
			return 0 // home scored — ball shown at the away endzone
		}
		return 100
	}
	if lastYard(prev) < midfield {
		return 0
	}
	return 100
}

func situationText(snap *game.Snapshot) string {
	if snap.Down > 0 && snap.Distance > 0 {
		return fmt.Sprintf("%s & %d", downName(snap.Down), snap.Distance)
	}
	return snap.PossText
}

func downName(down int) string {
	switch down {
	case 1:
		return "1st"
	case 2:
		return "2nd"
	case 3:
		return "3rd"
	case 4:
		return "4th"
	}
	return strconv.Itoa(down)
}

func lastYard(prev *game.Memory) int {
	if prev == nil {
		return midfield
	}
	return prev.BallYard
}

func clamp(yard int) int {
	if yard < 0 {
		return 0
	}
	if yard > 100 {
		return 100
	}
	return yard
}
