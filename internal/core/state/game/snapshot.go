package game

import (
	"strconv"
	"strings"
	"time"
)

// Feed status values as the scoreboard feed reports them.
const (
	StatusScheduled  = "STATUS_SCHEDULED"
	StatusInProgress = "STATUS_IN_PROGRESS"
	StatusFinal      = "STATUS_FINAL"
)

// LastPlay is the feed's most recent play descriptor for a game. Text is
// free-form and the scoring flag is not always set, so the resolver treats
// both as hints, not truth.
type LastPlay struct {
	Text        string
	ScoringPlay bool
	TypeText    string
}

// Snapshot is one scoreboard-feed poll result for a single contest.
// Created fresh every poll and superseded by the next cycle; the only state
// carried across polls lives in Memory.
type Snapshot struct {
	EventID  string
	GameKey  string // away@home composite key
	HomeTeam string // canonical key, or raw feed name when unrecognized
	AwayTeam string

	// The feed's own team abbreviations. These drive possession-text
	// matching and must never be assumed equal to Kalshi codes.
	HomeAbbrev string
	AwayAbbrev string

	HomeScore int
	AwayScore int

	Status   string
	Quarter  int
	Clock    string
	GameDate time.Time

	Down           int
	Distance       int
	YardsToEndzone int
	PossessionTeam string // canonical key, "" when unknown
	HomePossession *bool  // nil when the feed gives no possession id
	PossText       string
	RedZone        bool
	LastPlay       LastPlay

	HadTurnover bool
}

func (s *Snapshot) IsScheduled() bool { return s.Status == StatusScheduled }
func (s *Snapshot) IsFinal() bool     { return s.Status == StatusFinal }

func (s *Snapshot) IsLive() bool {
	return s.Quarter > 0 && !s.IsFinal()
}

// ScoreDiff is home minus away.
func (s *Snapshot) ScoreDiff() int { return s.HomeScore - s.AwayScore }

// ClockSeconds parses the display clock ("2:37", "0:00", "12:04") into
// seconds remaining in the quarter. Unparseable clocks return 900 — a full
// quarter — so clock-based stress triggers never fire on bad data.
func (s *Snapshot) ClockSeconds() int {
	c := strings.TrimSpace(s.Clock)
	if c == "" {
		return 900
	}
	parts := strings.Split(c, ":")
	if len(parts) != 2 {
		return 900
	}
	mins, err1 := strconv.Atoi(parts[0])
	secs, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil {
		return 900
	}
	return mins*60 + secs
}
