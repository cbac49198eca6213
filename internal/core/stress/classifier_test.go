package stress

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBucket(t *testing.T) {
	assert.Equal(t, BucketBlowout, Bucket(17))
	assert.Equal(t, BucketBlowout, Bucket(-21))
	assert.Equal(t, BucketTwoPoss, Bucket(9))
	assert.Equal(t, BucketTwoPoss, Bucket(-16))
	assert.Equal(t, BucketOnePoss, Bucket(8))
	assert.Equal(t, BucketOnePoss, Bucket(0))
}

func TestLevelFor(t *testing.T) {
	level, move := LevelFor(0)
	assert.Equal(t, LevelNormal, level)
	assert.Equal(t, "—", move)

	level, move = LevelFor(2)
	assert.Equal(t, LevelElevated, level)
	assert.Equal(t, "1-4¢", move)

	level, move = LevelFor(4)
	assert.Equal(t, LevelMax, level)
	assert.Equal(t, "3-7¢", move)
}

func TestClassifyQuietGame(t *testing.T) {
	score, triggers := Classify(Input{
		Down: 1, Distance: 10, FieldPos: 30,
		Quarter: 1, ClockSeconds: 600, ScoreDiff: 0,
	})
	assert.Zero(t, score)
	assert.Empty(t, triggers)
}

func TestClassifyStackedTriggers(t *testing.T) {
	// 4th down in conversion territory during crunch time: the archetypal
	// max-uncertainty snap.
	score, triggers := Classify(Input{
		Down: 4, Distance: 2, FieldPos: 55,
		Quarter: 4, ClockSeconds: 110, ScoreDiff: -4,
	})
	// 4th(2) + conversion territory(2) + 2-min(1) + crunch time(2)
	assert.Equal(t, 7, score)
	assert.Equal(t, []string{
		"4th Down Decision",
		"Conversion Territory",
		"2-Min Warning Zone",
		"Crunch Time",
	}, triggers)

	level, _ := LevelFor(score)
	assert.Equal(t, LevelMax, level)
}

func TestClassifyThirdAndLong(t *testing.T) {
	score, triggers := Classify(Input{
		Down: 3, Distance: 9, FieldPos: 30,
		Quarter: 2, ClockSeconds: 700,
	})
	assert.Equal(t, 1, score)
	assert.Equal(t, []string{"3rd & Long(9)"}, triggers)
}

func TestClassifySuddenChange(t *testing.T) {
	score, triggers := Classify(Input{
		Down: 1, Distance: 10, FieldPos: 45,
		Quarter: 2, ClockSeconds: 500, HadTurnover: true,
	})
	assert.Equal(t, 2, score)
	assert.Contains(t, triggers, "Sudden Change")

	// Turnover deep in own territory does not fire.
	score, _ = Classify(Input{
		Down: 1, Distance: 10, FieldPos: 20,
		Quarter: 2, ClockSeconds: 500, HadTurnover: true,
	})
	assert.Zero(t, score)
}

func TestClassifyScoreCompression(t *testing.T) {
	in := Input{
		Down: 1, Distance: 10, FieldPos: 30,
		Quarter: 3, ClockSeconds: 400,
		ScoreDiff: 7, PrevBucket: BucketTwoPoss,
	}
	score, triggers := Classify(in)
	assert.Equal(t, 2, score)
	assert.Contains(t, triggers, "Score Compression")

	// Fires only on the transition poll; once the bucket matches it stops.
	in.PrevBucket = BucketOnePoss
	score, _ = Classify(in)
	assert.Zero(t, score)
}

func TestClassifyGoalLine(t *testing.T) {
	score, triggers := Classify(Input{
		Down: 2, Distance: 3, FieldPos: 95,
		Quarter: 2, ClockSeconds: 400,
	})
	// red zone pressure(1) + goal line(1)
	assert.Equal(t, 2, score)
	assert.Equal(t, []string{"Red Zone Pressure", "Goal Line"}, triggers)
}

func TestEvaluateOvertimeFloor(t *testing.T) {
	st := Evaluate(Input{
		Down: 1, Distance: 10, FieldPos: 30,
		Quarter: 5, ClockSeconds: 600, ScoreDiff: 0,
	})
	assert.Equal(t, LevelMax, st.Level)
	assert.Equal(t, "3-7¢", st.Move)
}

func TestEvaluateFourthQuarterFloor(t *testing.T) {
	st := Evaluate(Input{
		Down: 1, Distance: 10, FieldPos: 30,
		Quarter: 4, ClockSeconds: 800, ScoreDiff: 3,
	})
	assert.Equal(t, LevelElevated, st.Level)

	// Blowouts get no floor.
	st = Evaluate(Input{
		Down: 1, Distance: 10, FieldPos: 30,
		Quarter: 4, ClockSeconds: 800, ScoreDiff: 24,
	})
	assert.Equal(t, LevelNormal, st.Level)
	assert.Equal(t, BucketBlowout, st.Bucket)
}
