// Package stress computes the pre-resolution uncertainty level for a live
// game: a composite score over snap-level situational variables, mapped to
// the NORMAL / ELEVATED / MAX labels the dashboard shows. The raw score is
// an internal signal and is never displayed.
package stress

import "fmt"

// Level is the surfaced uncertainty label.
type Level string

const (
	LevelNormal   Level = "NORMAL"
	LevelElevated Level = "ELEVATED"
	LevelMax      Level = "MAX UNCERTAINTY"
)

// Score-pressure buckets derived from the score differential magnitude.
const (
	BucketBlowout = "Blowout"
	BucketTwoPoss = "Two Poss"
	BucketOnePoss = "One Poss"
)

// Input is everything one classification needs. PrevBucket is the previous
// poll's pressure bucket ("" when the game has no memory yet).
type Input struct {
	Down         int
	Distance     int
	FieldPos     int // 0–100 scale
	Quarter      int
	ClockSeconds int
	ScoreDiff    int // home minus away; sign is irrelevant here
	HadTurnover  bool
	PrevBucket   string
}

// Bucket maps a score differential onto its pressure bucket.
func Bucket(scoreDiff int) string {
	diff := scoreDiff
	if diff < 0 {
		diff = -diff
	}
	switch {
	case diff >= 17:
		return BucketBlowout
	case diff >= 9:
		return BucketTwoPoss
	default:
		return BucketOnePoss
	}
}

// LevelFor maps a composite score onto its label and the expected price
// movement band shown beside it.
func LevelFor(score int) (Level, string) {
	switch {
	case score >= 4:
		return LevelMax, "3-7¢"
	case score >= 2:
		return LevelElevated, "1-4¢"
	default:
		return LevelNormal, "—"
	}
}

// Classify evaluates the additive trigger rules. Every rule is checked —
// there is no early exit — and contributions sum. The trigger list is
// returned in rule order for display.
func Classify(in Input) (int, []string) {
	score := 0
	var triggers []string

	add := func(points int, reason string) {
		score += points
		triggers = append(triggers, reason)
	}

	absDiff := in.ScoreDiff
	if absDiff < 0 {
		absDiff = -absDiff
	}

	if in.Down == 3 && in.Distance >= 7 {
		add(1, fmt.Sprintf("3rd & Long(%d)", in.Distance))
	}
	if in.Down == 4 {
		add(2, "4th Down Decision")
	}
	if in.Down >= 3 && in.FieldPos >= 40 {
		add(2, "Conversion Territory")
	}
	if in.FieldPos >= 80 && in.Down >= 2 {
		add(1, "Red Zone Pressure")
	}
	if in.ClockSeconds <= 120 {
		add(1, "2-Min Warning Zone")
	}
	if in.HadTurnover && in.FieldPos >= 40 {
		add(2, "Sudden Change")
	}
	if in.PrevBucket == BucketTwoPoss && Bucket(in.ScoreDiff) == BucketOnePoss {
		add(2, "Score Compression")
	}
	if in.FieldPos >= 90 && in.Down <= 3 {
		add(1, "Goal Line")
	}
	if in.Quarter == 4 && absDiff <= 8 && in.ClockSeconds <= 300 {
		add(2, "Crunch Time")
	}

	return score, triggers
}

// State is the full classification for one live game.
type State struct {
	Level    Level
	Move     string // expected price movement band
	Triggers []string
	Bucket   string // this poll's pressure bucket, persisted for the next
	score    int
}

// Evaluate runs Classify and applies the situational floors the dashboard
// always enforced: overtime is MAX regardless of triggers, and a
// one-possession fourth quarter is at least ELEVATED.
func Evaluate(in Input) State {
	score, triggers := Classify(in)
	level, move := LevelFor(score)

	absDiff := in.ScoreDiff
	if absDiff < 0 {
		absDiff = -absDiff
	}
	if in.Quarter >= 5 && level != LevelMax {
		level, move = LevelMax, "3-7¢"
	} else if in.Quarter == 4 && absDiff <= 8 && level == LevelNormal {
		level, move = LevelElevated, "1-4¢"
	}

	return State{
		Level:    level,
		Move:     move,
		Triggers: triggers,
		Bucket:   Bucket(in.ScoreDiff),
		score:    score,
	}
}
