// Package game defines the small derived-state record carried for each
// live game between poll cycles.
package game

import "time"

// Memory is the last-known-good state for one game key. The ball-position
// resolver reads it when the feed goes momentarily blank, and the stress
// classifier reads PressureBucket for the score-compression trigger.
//
// BallYard is on the 0–100 own-to-opponent-endzone scale: 0 is the away
// team's endzone, 100 the home team's.
type Memory struct {
	BallYard       int
	PossTeam       string
	PossText       string
	PressureBucket string
	UpdatedAt      time.Time
}

// Clone returns a copy, so callers can hand memory to a game's processing
// without aliasing the stored record.
func (m *Memory) Clone() *Memory {
	if m == nil {
		return nil
	}
	c := *m
	return &c
}
