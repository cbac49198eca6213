package ballpos

import (
	"strings"

	"github.com/kwhalen/nfl-edge/internal/core/state/game"
)

// Kind classifies a last-play descriptor.
type Kind string

const (
	PlayNone       Kind = ""
	PlayTouchdown  Kind = "touchdown"
	PlayFieldGoal  Kind = "field_goal"
	PlayExtraPoint Kind = "extra_point"
	PlaySafety     Kind = "safety"
	PlayTwoPoint   Kind = "two_point"
	PlayKickoff    Kind = "kickoff"
	PlayPunt       Kind = "punt"
)

// Scoring reports whether the kind puts points on the board.
func (k Kind) Scoring() bool {
	switch k {
	case PlayTouchdown, PlayFieldGoal, PlayExtraPoint, PlaySafety, PlayTwoPoint:
		return true
	}
	return false
}

// Label is the display form, e.g. "FIELD GOAL".
func (k Kind) Label() string {
	return strings.ToUpper(strings.ReplaceAll(string(k), "_", " "))
}

// playRule matches a play by substring: every entry of all must appear in
// the lowered play text, plus at least one entry of any (when any is
// non-empty). Rules are ordered — first match wins.
//
// Substring matching against free-form play text is fragile by nature, so
// the rules live here as data rather than scattered conditionals.
type playRule struct {
	kind Kind
	all  []string
	any  []string
}

var playRules = []playRule{
	{kind: PlayTouchdown, all: []string{"touchdown"}},
	{kind: PlayFieldGoal, all: []string{"field goal"}, any: []string{"good", "made"}},
	{kind: PlayExtraPoint, all: []string{"extra point"}, any: []string{"good"}},
	{kind: PlaySafety, all: []string{"safety"}},
	{kind: PlayTwoPoint, all: []string{"two-point"}, any: []string{"good", "success"}},
	{kind: PlayKickoff, any: []string{"kickoff", "kicks off"}},
	{kind: PlayPunt, all: []string{"punts"}},
}

func (r playRule) matches(text string) bool {
	for _, s := range r.all {
		if !strings.Contains(text, s) {
			return false
		}
	}
	if len(r.any) == 0 {
		return true
	}
	for _, s := range r.any {
		if strings.Contains(text, s) {
			return true
		}
	}
	return false
}

// ClassifyPlay maps a last-play descriptor onto a Kind. The feed's explicit
// scoring flag (or a "Touchdown" type) short-circuits to touchdown; after
// that the text rules apply in order.
func ClassifyPlay(lp game.LastPlay) Kind {
	text := strings.ToLower(lp.Text)
	if lp.ScoringPlay || lp.TypeText == "Touchdown" {
		return PlayTouchdown
	}
	if text == "" {
		return PlayNone
	}
	for _, r := range playRules {
		if r.matches(text) {
			return r.kind
		}
	}
	return PlayNone
}
