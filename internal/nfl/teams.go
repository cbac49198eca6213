package nfl

import "sort"

// Reference snapshot: DVOA, defensive rank, and win rates are a hand-tuned
// season snapshot, not fitted values. They feed the moneyline factor model
// as fixed constants.
var teams = map[string]Team{
	"Arizona": {
		Key: "Arizona", Code: "ARI", FeedName: "Arizona Cardinals", Division: "NFC West",
		Lat: 33.5277, Lon: -112.2626, Dome: true, TZOffset: -7,
		DVOA: -12.5, DefRank: 27, HomeWinPct: 0.42, AwayWinPct: 0.30,
		Stars: []string{"Kyler Murray"},
	},
	"Atlanta": {
		Key: "Atlanta", Code: "ATL", FeedName: "Atlanta Falcons", Division: "NFC South",
		Lat: 33.7553, Lon: -84.4006, Dome: true, TZOffset: -5,
		DVOA: 2.5, DefRank: 18, HomeWinPct: 0.55, AwayWinPct: 0.42,
		Stars: []string{"Kirk Cousins", "Bijan Robinson"},
	},
	"Baltimore": {
		Key: "Baltimore", Code: "BAL", FeedName: "Baltimore Ravens", Division: "AFC North",
		Lat: 39.2780, Lon: -76.6227, TZOffset: -5,
		DVOA: 15.5, DefRank: 6, HomeWinPct: 0.72, AwayWinPct: 0.62,
		Style: StyleRunHeavy, Stars: []string{"Lamar Jackson", "Derrick Henry"},
	},
	"Buffalo": {
		Key: "Buffalo", Code: "BUF", FeedName: "Buffalo Bills", Division: "AFC East",
		Lat: 42.7738, Lon: -78.7870, TZOffset: -5,
		DVOA: 18.2, DefRank: 5, HomeWinPct: 0.78, AwayWinPct: 0.68,
		Style: StylePassHeavy, Stars: []string{"Josh Allen", "James Cook"},
	},
	"Carolina": {
		Key: "Carolina", Code: "CAR", FeedName: "Carolina Panthers", Division: "NFC South",
		Lat: 35.2258, Lon: -80.8528, TZOffset: -5,
		DVOA: -18.5, DefRank: 30, HomeWinPct: 0.35, AwayWinPct: 0.22,
		Stars: []string{"Bryce Young"},
	},
	"Chicago": {
		Key: "Chicago", Code: "CHI", FeedName: "Chicago Bears", Division: "NFC North",
		Lat: 41.8623, Lon: -87.6167, TZOffset: -6,
		DVOA: -8.5, DefRank: 22, HomeWinPct: 0.45, AwayWinPct: 0.35,
		Stars: []string{"Caleb Williams"},
	},
	"Cincinnati": {
		Key: "Cincinnati", Code: "CIN", FeedName: "Cincinnati Bengals", Division: "AFC North",
		Lat: 39.0955, Lon: -84.5161, TZOffset: -5,
		DVOA: 5.8, DefRank: 14, HomeWinPct: 0.58, AwayWinPct: 0.48,
		Style: StylePassHeavy, Stars: []string{"Joe Burrow", "Ja'Marr Chase"},
	},
	"Cleveland": {
		Key: "Cleveland", Code: "CLE", FeedName: "Cleveland Browns", Division: "AFC North",
		Lat: 41.5061, Lon: -81.6995, TZOffset: -5,
		DVOA: -25.0, DefRank: 32, HomeWinPct: 0.38, AwayWinPct: 0.25,
		Style: StyleRunHeavy, Stars: []string{"Deshaun Watson"},
	},
	"Dallas": {
		Key: "Dallas", Code: "DAL", FeedName: "Dallas Cowboys", Division: "NFC East",
		Lat: 32.7473, Lon: -97.0945, Dome: true, TZOffset: -6,
		DVOA: -5.2, DefRank: 20, HomeWinPct: 0.52, AwayWinPct: 0.38,
		Stars: []string{"Dak Prescott", "CeeDee Lamb"},
	},
	"Denver": {
		Key: "Denver", Code: "DEN", FeedName: "Denver Broncos", Division: "AFC West",
		Lat: 39.7439, Lon: -105.0201, TZOffset: -7,
		DVOA: 8.5, DefRank: 8, HomeWinPct: 0.65, AwayWinPct: 0.50,
		Style: StyleRunHeavy, Stars: []string{"Bo Nix"},
	},
	"Detroit": {
		Key: "Detroit", Code: "DET", FeedName: "Detroit Lions", Division: "NFC North",
		Lat: 42.3400, Lon: -83.0456, Dome: true, TZOffset: -5,
		DVOA: 22.5, DefRank: 4, HomeWinPct: 0.78, AwayWinPct: 0.68,
		Style: StylePassHeavy, Stars: []string{"Jared Goff", "Amon-Ra St. Brown"},
	},
	"Green Bay": {
		Key: "Green Bay", Code: "GB", FeedName: "Green Bay Packers", Division: "NFC North",
		Lat: 44.5013, Lon: -88.0622, TZOffset: -6,
		DVOA: 12.2, DefRank: 10, HomeWinPct: 0.70, AwayWinPct: 0.55,
		Stars: []string{"Jordan Love"},
	},
	"Houston": {
		Key: "Houston", Code: "HOU", FeedName: "Houston Texans", Division: "AFC South",
		Lat: 29.6847, Lon: -95.4107, Dome: true, TZOffset: -6,
		DVOA: 16.5, DefRank: 7, HomeWinPct: 0.68, AwayWinPct: 0.58,
		Stars: []string{"C.J. Stroud", "Nico Collins"},
	},
	"Indianapolis": {
		Key: "Indianapolis", Code: "IND", FeedName: "Indianapolis Colts", Division: "AFC South",
		Lat: 39.7601, Lon: -86.1639, Dome: true, TZOffset: -5,
		DVOA: 14.5, DefRank: 12, HomeWinPct: 0.55, AwayWinPct: 0.48,
		Stars: []string{"Anthony Richardson"},
	},
	"Jacksonville": {
		Key: "Jacksonville", Code: "JAX", FeedName: "Jacksonville Jaguars", Division: "AFC South",
		Lat: 30.3239, Lon: -81.6373, TZOffset: -5,
		DVOA: 10.5, DefRank: 11, HomeWinPct: 0.55, AwayWinPct: 0.48,
		Stars: []string{"Trevor Lawrence"},
	},
	"Kansas City": {
		Key: "Kansas City", Code: "KC", FeedName: "Kansas City Chiefs", Division: "AFC West",
		Lat: 39.0489, Lon: -94.4839, TZOffset: -6,
		DVOA: 18.5, DefRank: 9, HomeWinPct: 0.82, AwayWinPct: 0.72,
		Stars: []string{"Patrick Mahomes", "Travis Kelce"},
	},
	"Las Vegas": {
		Key: "Las Vegas", Code: "LV", FeedName: "Las Vegas Raiders", Division: "AFC West",
		Lat: 36.0909, Lon: -115.1833, Dome: true, TZOffset: -8,
		DVOA: -10.2, DefRank: 25, HomeWinPct: 0.42, AwayWinPct: 0.28,
		Stars: []string{"Gardner Minshew"},
	},
	"LA Chargers": {
		Key: "LA Chargers", Code: "LAC", FeedName: "Los Angeles Chargers", Division: "AFC West",
		Lat: 33.9535, Lon: -118.3392, Dome: true, TZOffset: -8,
		DVOA: 11.8, DefRank: 3, HomeWinPct: 0.62, AwayWinPct: 0.52,
		Style: StylePassHeavy, Stars: []string{"Justin Herbert"},
	},
	"LA Rams": {
		Key: "LA Rams", Code: "LA", FeedName: "Los Angeles Rams", Division: "NFC West",
		Lat: 33.9535, Lon: -118.3392, Dome: true, TZOffset: -8,
		DVOA: 24.5, DefRank: 5, HomeWinPct: 0.72, AwayWinPct: 0.62,
		Stars: []string{"Matthew Stafford", "Puka Nacua"},
	},
	"Miami": {
		Key: "Miami", Code: "MIA", FeedName: "Miami Dolphins", Division: "AFC East",
		Lat: 25.9580, Lon: -80.2389, TZOffset: -5,
		DVOA: -2.5, DefRank: 16, HomeWinPct: 0.55, AwayWinPct: 0.38,
		Style: StylePassHeavy, Stars: []string{"Tua Tagovailoa", "Tyreek Hill"},
	},
	"Minnesota": {
		Key: "Minnesota", Code: "MIN", FeedName: "Minnesota Vikings", Division: "NFC North",
		Lat: 44.9737, Lon: -93.2577, Dome: true, TZOffset: -6,
		DVOA: 8.5, DefRank: 13, HomeWinPct: 0.68, AwayWinPct: 0.52,
		Stars: []string{"J.J. McCarthy", "Justin Jefferson"},
	},
	"New England": {
		Key: "New England", Code: "NE", FeedName: "New England Patriots", Division: "AFC East",
		Lat: 42.0909, Lon: -71.2643, TZOffset: -5,
		DVOA: 12.5, DefRank: 8, HomeWinPct: 0.62, AwayWinPct: 0.50,
		Stars: []string{"Drake Maye"},
	},
	"New Orleans": {
		Key: "New Orleans", Code: "NO", FeedName: "New Orleans Saints", Division: "NFC South",
		Lat: 29.9511, Lon: -90.0812, Dome: true, TZOffset: -6,
		DVOA: -8.8, DefRank: 23, HomeWinPct: 0.48, AwayWinPct: 0.35,
		Stars: []string{"Derek Carr"},
	},
	"NY Giants": {
		Key: "NY Giants", Code: "NYG", FeedName: "New York Giants", Division: "NFC East",
		Lat: 40.8128, Lon: -74.0742, TZOffset: -5,
		DVOA: -15.5, DefRank: 29, HomeWinPct: 0.35, AwayWinPct: 0.22,
		Stars: []string{"Daniel Jones"},
	},
	"NY Jets": {
		Key: "NY Jets", Code: "NYJ", FeedName: "New York Jets", Division: "AFC East",
		Lat: 40.8128, Lon: -74.0742, TZOffset: -5,
		DVOA: -12.5, DefRank: 26, HomeWinPct: 0.42, AwayWinPct: 0.28,
		Stars: []string{"Aaron Rodgers"},
	},
	"Philadelphia": {
		Key: "Philadelphia", Code: "PHI", FeedName: "Philadelphia Eagles", Division: "NFC East",
		Lat: 39.9008, Lon: -75.1675, TZOffset: -5,
		DVOA: 14.8, DefRank: 6, HomeWinPct: 0.75, AwayWinPct: 0.60,
		Style: StylePassHeavy, Stars: []string{"Jalen Hurts", "Saquon Barkley"},
	},
	"Pittsburgh": {
		Key: "Pittsburgh", Code: "PIT", FeedName: "Pittsburgh Steelers", Division: "AFC North",
		Lat: 40.4468, Lon: -80.0158, TZOffset: -5,
		DVOA: 4.8, DefRank: 10, HomeWinPct: 0.62, AwayWinPct: 0.45,
		Stars: []string{"Russell Wilson"},
	},
	"San Francisco": {
		Key: "San Francisco", Code: "SF", FeedName: "San Francisco 49ers", Division: "NFC West",
		Lat: 37.4032, Lon: -121.9698, TZOffset: -8,
		DVOA: 6.5, DefRank: 15, HomeWinPct: 0.58, AwayWinPct: 0.48,
		Style: StyleRunHeavy, Stars: []string{"Brock Purdy", "Christian McCaffrey"},
	},
	"Seattle": {
		Key: "Seattle", Code: "SEA", FeedName: "Seattle Seahawks", Division: "NFC West",
		Lat: 47.5952, Lon: -122.3316, TZOffset: -8,
		DVOA: 28.5, DefRank: 2, HomeWinPct: 0.78, AwayWinPct: 0.68,
		Stars: []string{"Sam Darnold", "Jaxon Smith-Njigba"},
	},
	"Tampa Bay": {
		Key: "Tampa Bay", Code: "TB", FeedName: "Tampa Bay Buccaneers", Division: "NFC South",
		Lat: 27.9759, Lon: -82.5033, TZOffset: -5,
		DVOA: -3.2, DefRank: 19, HomeWinPct: 0.52, AwayWinPct: 0.40,
		Style: StylePassHeavy, Stars: []string{"Baker Mayfield"},
	},
	"Tennessee": {
		Key: "Tennessee", Code: "TEN", FeedName: "Tennessee Titans", Division: "AFC South",
		Lat: 36.1665, Lon: -86.7713, TZOffset: -6,
		DVOA: -14.8, DefRank: 28, HomeWinPct: 0.40, AwayWinPct: 0.25,
		Style: StyleRunHeavy, Stars: []string{"Will Levis"},
	},
	"Washington": {
		Key: "Washington", Code: "WAS", FeedName: "Washington Commanders", Division: "NFC East",
		Lat: 38.9076, Lon: -76.8645, TZOffset: -5,
		DVOA: -4.5, DefRank: 21, HomeWinPct: 0.52, AwayWinPct: 0.42,
		Stars: []string{"Jayden Daniels"},
	},
}

var (
	feedNames map[string]string
	teamKeys  []string
)

func init() {
	feedNames = make(map[string]string, len(teams))
	teamKeys = make([]string, 0, len(teams))
	for key, t := range teams {
		feedNames[t.FeedName] = key
		teamKeys = append(teamKeys, key)
	}
	sort.Strings(teamKeys)
}
