package ticker

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMoneylineTicker(t *testing.T) {
	// 1pm ET kickoff on Sep 21 2025.
	gameDate := time.Date(2025, time.September, 21, 17, 0, 0, 0, time.UTC)
	assert.Equal(t, "KXNFLGAME-25SEP21BUFKC",
		MoneylineTicker("Buffalo", "Kansas City", gameDate))
}

func TestMoneylineTickerEasternRollover(t *testing.T) {
	// 1am UTC is still the previous evening in New York; the ticker must
	// carry the Eastern date, not the UTC one.
	gameDate := time.Date(2025, time.December, 8, 1, 15, 0, 0, time.UTC)
	assert.Equal(t, "KXNFLGAME-25DEC07PHIDAL",
		MoneylineTicker("Philadelphia", "Dallas", gameDate))
}

func TestMoneylineTickerUnknownTeamFallback(t *testing.T) {
	gameDate := time.Date(2025, time.October, 5, 17, 0, 0, 0, time.UTC)
	assert.Equal(t, "KXNFLGAME-25OCT05LONKC",
		MoneylineTicker("London Monarchs", "Kansas City", gameDate))
}

func TestMoneylineURL(t *testing.T) {
	gameDate := time.Date(2025, time.September, 21, 17, 0, 0, 0, time.UTC)
	assert.Equal(t,
		"https://kalshi.com/markets/KXNFLGAME/KXNFLGAME-25SEP21BUFKC",
		MoneylineURL("Buffalo", "Kansas City", gameDate))
}
