package ballpos

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kwhalen/nfl-edge/internal/core/state/game"
)

func liveSnap() *game.Snapshot {
	return &game.Snapshot{
		GameKey:    "Buffalo@Kansas City",
		HomeTeam:   "Kansas City",
		AwayTeam:   "Buffalo",
		HomeAbbrev: "KC",
		AwayAbbrev: "BUF",
		Status:     game.StatusInProgress,
		Quarter:    2,
		Clock:      "8:43",
	}
}

func TestResolveDirectParseAwaySide(t *testing.T) {
	snap := liveSnap()
	snap.PossText = "BUF 25"
	snap.PossessionTeam = "Buffalo"
	snap.Down = 2
	snap.Distance = 6

	res, mem := Resolve(snap, nil)
	assert.Equal(t, 25, res.Yard)
	assert.Equal(t, ModeNormal, res.Mode)
	assert.Equal(t, "Buffalo", res.PossTeam)
	assert.Equal(t, "2nd & 6", res.Situation)

	require.NotNil(t, mem)
	assert.Equal(t, 25, mem.BallYard)
	assert.Equal(t, "Buffalo", mem.PossTeam)
}

func TestResolveDirectParseHomeSide(t *testing.T) {
	snap := liveSnap()
	snap.PossText = "KC 25"
	snap.PossessionTeam = "Kansas City"

	res, mem := Resolve(snap, nil)
	// Home-side yard lines mirror onto the away-origin scale.
	assert.Equal(t, 75, res.Yard)
	require.NotNil(t, mem)
	assert.Equal(t, 75, mem.BallYard)
	// No down and distance: the raw possession text is the situation.
	assert.Equal(t, "KC 25", res.Situation)
}

func TestResolveUnknownCodeUsesDistanceToEndzone(t *testing.T) {
	snap := liveSnap()
	snap.PossText = "WSH 30"
	snap.YardsToEndzone = 70
	home := true
	snap.HomePossession = &home

	res, _ := Resolve(snap, nil)
	assert.Equal(t, ModeNormal, res.Mode)
	assert.Equal(t, 70, res.Yard)

	// Away possession mirrors.
	home = false
	res, _ = Resolve(snap, nil)
	assert.Equal(t, 30, res.Yard)
}

func TestResolveUnknownCodeNoPossessionFallsBackToMemory(t *testing.T) {
	snap := liveSnap()
	snap.PossText = "WSH 30"

	res, _ := Resolve(snap, &game.Memory{BallYard: 62})
	assert.Equal(t, 62, res.Yard)

	// No memory at all lands at midfield.
	res, _ = Resolve(snap, nil)
	assert.Equal(t, 50, res.Yard)
}

func TestResolveScoringPlayUsesPreviousPossession(t *testing.T) {
	snap := liveSnap()
	snap.LastPlay = game.LastPlay{Text: "P.Mahomes pass deep right", TypeText: "Touchdown"}

	// Home team was driving: ball rendered at the away endzone.
	res, mem := Resolve(snap, &game.Memory{PossTeam: "Kansas City", BallYard: 80})
	assert.Equal(t, ModeScoring, res.Mode)
	assert.Equal(t, 0, res.Yard)
	assert.Equal(t, "TOUCHDOWN", res.Situation)
	assert.Nil(t, mem, "scoring fallback must not overwrite drive memory")

	// Away team driving scores at the home endzone.
	res, _ = Resolve(snap, &game.Memory{PossTeam: "Buffalo", BallYard: 20})
	assert.Equal(t, 100, res.Yard)
}

func TestResolveScoringPlayGuessesFromLastHalf(t *testing.T) {
	snap := liveSnap()
	snap.LastPlay = game.LastPlay{Text: "52 yard field goal is GOOD"}

	res, _ := Resolve(snap, &game.Memory{BallYard: 30})
	assert.Equal(t, 0, res.Yard)
	assert.Equal(t, "FIELD GOAL", res.Situation)

	res, _ = Resolve(snap, &game.Memory{BallYard: 70})
	assert.Equal(t, 100, res.Yard)
}

func TestResolveKickoffAndPunt(t *testing.T) {
	snap := liveSnap()
	snap.LastPlay = game.LastPlay{Text: "H.Butker kicks off from the KC 35, touchback"}
	res, _ := Resolve(snap, nil)
	assert.Equal(t, ModeKickoff, res.Mode)
	assert.Equal(t, 65, res.Yard)

	snap.LastPlay = game.LastPlay{Text: "S.Martin punts 48 yards"}
	res, _ = Resolve(snap, nil)
	assert.Equal(t, ModeBetweenPlays, res.Mode)
	assert.Equal(t, "PUNT", res.Situation)
	assert.Equal(t, 50, res.Yard)
}

func TestResolveEndOfQuarter(t *testing.T) {
	snap := liveSnap()
	snap.Clock = "0:00"

	res, _ := Resolve(snap, &game.Memory{BallYard: 33})
	assert.Equal(t, ModeBetweenPlays, res.Mode)
	assert.Equal(t, "End of Quarter", res.Situation)
	assert.Equal(t, 33, res.Yard)
}

func TestResolveBetweenPlaysKeepsLastPosition(t *testing.T) {
	snap := liveSnap()

	res, _ := Resolve(snap, &game.Memory{BallYard: 58, PossTeam: "Kansas City"})
	assert.Equal(t, ModeBetweenPlays, res.Mode)
	assert.Equal(t, "Between Plays", res.Situation)
	assert.Equal(t, 58, res.Yard)
	assert.Equal(t, "Kansas City", res.PossTeam)
}

func TestResolveNotStarted(t *testing.T) {
	snap := liveSnap()
	snap.Quarter = 0

	res, mem := Resolve(snap, nil)
	assert.Equal(t, 50, res.Yard)
	assert.Equal(t, ModeBetweenPlays, res.Mode)
	assert.Nil(t, mem)
}

func TestResolveClampsOutOfRangeYardLines(t *testing.T) {
	snap := liveSnap()
	snap.PossText = "WSH 30"
	snap.YardsToEndzone = 140
	home := true
	snap.HomePossession = &home

	res, _ := Resolve(snap, nil)
	assert.Equal(t, 100, res.Yard)
}

func TestResolveCarriesPressureBucketThroughMemory(t *testing.T) {
	snap := liveSnap()
	snap.PossText = "BUF 40"
	snap.PossessionTeam = "Buffalo"

	_, mem := Resolve(snap, &game.Memory{PressureBucket: "Two Poss"})
	require.NotNil(t, mem)
	assert.Equal(t, "Two Poss", mem.PressureBucket)
}

func TestClassifyPlay(t *testing.T) {
	cases := []struct {
		name string
		play game.LastPlay
		want Kind
	}{
		// The feed's scoring flag always reads as a touchdown, even for
		// kicks. Field goals are only distinguishable from play text.
		{"scoring flag", game.LastPlay{Text: "short pass", ScoringPlay: true}, PlayTouchdown},
		{"field goal text", game.LastPlay{Text: "38 yard field goal is good"}, PlayFieldGoal},
		{"touchdown type", game.LastPlay{Text: "run up the middle", TypeText: "Touchdown"}, PlayTouchdown},
		{"kickoff text", game.LastPlay{Text: "Kickoff from the BAL 35, touchback"}, PlayKickoff},
		{"punt text", game.LastPlay{Text: "punts 44 yards to the KC 12"}, PlayPunt},
		{"plain run", game.LastPlay{Text: "J.Jacobs right guard for 4 yards"}, PlayNone},
		{"empty", game.LastPlay{}, PlayNone},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ClassifyPlay(tc.play))
		})
	}
}
