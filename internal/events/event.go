package events

import "time"

// Event is the envelope that flows through the event bus.
// Every domain event (cycle complete, score change, game final) is wrapped in one.
type Event struct {
	Type      EventType
	GameKey   string
	Timestamp time.Time
	Payload   any
}

type EventType string

const (
	// Poll-cycle events
	EventCycleComplete EventType = "cycle_complete"
	// Per-game events derived by comparing consecutive polls
	EventScoreChange EventType = "score_change"
	EventGameFinal   EventType = "game_final"
)
