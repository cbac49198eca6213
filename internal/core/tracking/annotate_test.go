package tracking

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kwhalen/nfl-edge/internal/core/state/game"
)

func pickPos() Position {
	return Position{
		GameKey:    "Buffalo@Kansas City",
		Pick:       "Kansas City",
		PriceCents: 60,
		Contracts:  10,
		CostCents:  600,
	}
}

func TestAnnotateNilSnapshot(t *testing.T) {
	a := Annotate(pickPos(), nil)
	assert.Equal(t, StatusScheduled, a.Status)
	assert.Equal(t, "SCHEDULED", a.GameStatus)
	assert.Equal(t, "Win: +$4.00", a.PnL)
}

func TestAnnotateFinal(t *testing.T) {
	snap := &game.Snapshot{
		HomeTeam: "Kansas City", AwayTeam: "Buffalo",
		HomeScore: 27, AwayScore: 20,
		Status: game.StatusFinal, Quarter: 4,
	}
	a := Annotate(pickPos(), snap)
	assert.Equal(t, StatusWon, a.Status)
	assert.Equal(t, "FINAL", a.GameStatus)
	assert.Equal(t, 7, a.Lead)
	assert.Equal(t, "+$4.00", a.PnL)

	snap.HomeScore, snap.AwayScore = 20, 27
	a = Annotate(pickPos(), snap)
	assert.Equal(t, StatusLost, a.Status)
	assert.Equal(t, "-$6.00", a.PnL)
}

func TestAnnotateLiveBands(t *testing.T) {
	snap := &game.Snapshot{
		HomeTeam: "Kansas City", AwayTeam: "Buffalo",
		Status: game.StatusInProgress, Quarter: 3, Clock: "4:12",
	}

	cases := []struct {
		home, away int
		want       string
	}{
		{21, 3, StatusCruising},
		{17, 10, StatusLeading},
		{17, 14, StatusAhead},
		{14, 14, StatusClose},
		{10, 14, StatusClose},
		{3, 17, StatusBehind},
	}
	for _, tc := range cases {
		snap.HomeScore, snap.AwayScore = tc.home, tc.away
		a := Annotate(pickPos(), snap)
		assert.Equal(t, tc.want, a.Status, "%d-%d", tc.home, tc.away)
		assert.Equal(t, "Q3 4:12", a.GameStatus)
	}
}

func TestAnnotateAwayPick(t *testing.T) {
	p := pickPos()
	p.Pick = "Buffalo"
	snap := &game.Snapshot{
		HomeTeam: "Kansas City", AwayTeam: "Buffalo",
		HomeScore: 10, AwayScore: 24,
		Status: game.StatusInProgress, Quarter: 2, Clock: "1:30",
	}
	a := Annotate(p, snap)
	assert.Equal(t, 24, a.PickScore)
	assert.Equal(t, 10, a.OppScore)
	assert.Equal(t, StatusCruising, a.Status)
}
