// Package nfl holds the static team reference tables: identity codes,
// stadium coordinates, rating snapshots, rosters of notable players, and
// division membership. Loaded once per process; no mutation after init.
package nfl

import (
	"math"
	"strings"
)

// Style describes a team's offensive identity, used by the weather gate.
type Style int

const (
	StyleBalanced Style = iota
	StylePassHeavy
	StyleRunHeavy
)

// Team is one canonical franchise record. The Key is the short city name
// the whole system uses ("Kansas City", "NY Jets"); feed display names are
// mapped onto it by Normalize.
type Team struct {
	Key      string
	Code     string // Kalshi ticker code — NOT guaranteed to match feed abbreviations
	FeedName string // ESPN displayName
	Division string

	Lat, Lon float64
	Dome     bool
	TZOffset int // standard-time UTC offset hours (ET=-5)

	DVOA       float64
	DefRank    int
	HomeWinPct float64
	AwayWinPct float64

	Style Style
	Stars []string
}

// Neutral attribute values substituted when a team key misses the tables.
// Unknown input degrades a score, it never aborts it.
const (
	NeutralDefRank = 16
	NeutralWinPct  = 0.5
	NeutralDVOA    = 0.0
)

// Lookup returns the reference record for a canonical team key.
func Lookup(key string) (Team, bool) {
	t, ok := teams[key]
	return t, ok
}

// Keys returns all canonical team keys in alphabetical order.
func Keys() []string {
	return teamKeys
}

// Code returns the Kalshi code for a team key, falling back to the first
// three letters uppercased for unknown teams.
func Code(key string) string {
	if t, ok := teams[key]; ok {
		return t.Code
	}
	if len(key) >= 3 {
		return strings.ToUpper(key[:3])
	}
	return "XXX"
}

// Normalize maps a feed display name ("Kansas City Chiefs") or an
// already-canonical key onto the canonical team key. ok is false when the
// name is unrecognized; callers keep the raw name and degrade to neutral
// attributes downstream.
func Normalize(feedName string) (string, bool) {
	name := strings.TrimSpace(feedName)
	if _, ok := teams[name]; ok {
		return name, true
	}
	if key, ok := feedNames[name]; ok {
		return key, true
	}
	return name, false
}

// SameDivision reports whether two canonical keys share a division.
func SameDivision(a, b string) bool {
	ta, oka := teams[a]
	tb, okb := teams[b]
	return oka && okb && ta.Division == tb.Division
}

// IsStar reports whether a player name matches a team's notable-player
// roster. Matching is case-insensitive substring, the same loose rule the
// injury feed needs ("P. Mahomes" vs "Patrick Mahomes" both list the
// surname).
func IsStar(teamKey, playerName string) bool {
	t, ok := teams[teamKey]
	if !ok {
		return false
	}
	lower := strings.ToLower(playerName)
	for _, star := range t.Stars {
		if strings.Contains(lower, strings.ToLower(star)) || strings.Contains(strings.ToLower(star), lower) {
			return true
		}
	}
	return false
}

const earthRadiusMiles = 3958.8

// StadiumDistanceMiles returns the great-circle distance between two teams'
// stadiums, or 0 if either team is unknown.
func StadiumDistanceMiles(a, b string) float64 {
	ta, oka := teams[a]
	tb, okb := teams[b]
	if !oka || !okb {
		return 0
	}
	lat1 := ta.Lat * math.Pi / 180
	lat2 := tb.Lat * math.Pi / 180
	dLat := (tb.Lat - ta.Lat) * math.Pi / 180
	dLon := (tb.Lon - ta.Lon) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	return 2 * earthRadiusMiles * math.Asin(math.Sqrt(h))
}

// TimezoneGap returns the absolute hour difference between two teams'
// home timezones, or 0 if either team is unknown.
func TimezoneGap(a, b string) int {
	ta, oka := teams[a]
	tb, okb := teams[b]
	if !oka || !okb {
		return 0
	}
	gap := ta.TZOffset - tb.TZOffset
	if gap < 0 {
		gap = -gap
	}
	return gap
}
