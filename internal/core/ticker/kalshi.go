// Package ticker constructs Kalshi market identifiers for NFL moneyline
// games. Pure string formatting — no network calls. The date format and
// code table must track Kalshi's conventions bit-for-bit or the generated
// links 404.
package ticker

import (
	"fmt"
	"strings"
	"time"

	"github.com/kwhalen/nfl-edge/internal/nfl"
)

const (
	seriesNFL = "KXNFLGAME"
	baseURL   = "https://kalshi.com/markets/" + seriesNFL
)

var eastern *time.Location

func init() {
	var err error
	eastern, err = time.LoadLocation("America/New_York")
	if err != nil {
		eastern = time.FixedZone("ET", -5*3600)
	}
}

// MoneylineTicker builds the market ticker for a game, e.g.
// "KXNFLGAME-25SEP21BUFKC". Kalshi dates games in Eastern time with an
// uppercased %y%b%d stamp. A zero gameDate falls back to today.
func MoneylineTicker(awayTeam, homeTeam string, gameDate time.Time) string {
	if gameDate.IsZero() {
		gameDate = time.Now()
	}
	date := strings.ToUpper(gameDate.In(eastern).Format("06Jan02"))
	return fmt.Sprintf("%s-%s%s%s", seriesNFL, date, nfl.Code(awayTeam), nfl.Code(homeTeam))
}

// MoneylineURL is the public market page for a game's moneyline ticker.
func MoneylineURL(awayTeam, homeTeam string, gameDate time.Time) string {
	return baseURL + "/" + MoneylineTicker(awayTeam, homeTeam, gameDate)
}
