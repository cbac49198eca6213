package moneyline

import (
	_ "embed"

	"gopkg.in/yaml.v3"
)

//go:embed weights.yaml
var weightsData []byte

// Factors holds every weight and threshold of the model. All values are
// overridable; the embedded YAML is the canonical set.
type Factors struct {
	RatingEdge float64 `yaml:"rating_edge"`
	RatingGap  float64 `yaml:"rating_gap"`

	TopDefense     float64 `yaml:"top_defense"`
	TopDefenseRank int     `yaml:"top_defense_rank"`

	HomeField float64 `yaml:"home_field"`

	QBOut      float64 `yaml:"qb_out"`
	InjuryDiff float64 `yaml:"injury_diff"`
	InjuryGap  float64 `yaml:"injury_gap"`

	Travel      float64 `yaml:"travel"`
	TravelMiles float64 `yaml:"travel_miles"`
	TravelTZGap int     `yaml:"travel_tz_gap"`

	HomeWin        float64 `yaml:"home_win"`
	HomeWinPct     float64 `yaml:"home_win_pct"`
	RoadWarrior    float64 `yaml:"road_warrior"`
	RoadWarriorPct float64 `yaml:"road_warrior_pct"`
	RoadKill       float64 `yaml:"road_kill"`
	RoadKillPct    float64 `yaml:"road_kill_pct"`

	WeatherPassPenalty float64 `yaml:"weather_pass_penalty"`
	WeatherRunBonus    float64 `yaml:"weather_run_bonus"`
	WeatherWindMPH     float64 `yaml:"weather_wind_mph"`
	WeatherPrecipIn    float64 `yaml:"weather_precip_in"`

	RestEdge      float64 `yaml:"rest_edge"`
	RestGapDays   int     `yaml:"rest_gap_days"`
	ShortWeek     float64 `yaml:"short_week"`
	ShortWeekDays int     `yaml:"short_week_days"`

	FormHot      float64 `yaml:"form_hot"`
	FormHotWins  int     `yaml:"form_hot_wins"`
	FormCold     float64 `yaml:"form_cold"`
	FormColdWins int     `yaml:"form_cold_wins"`

	Division float64 `yaml:"division"`
}

// InjuryPoints is the per-status injury burden for one status bucket.
type InjuryPoints struct {
	QB    float64 `yaml:"qb"`
	Star  float64 `yaml:"star"`
	Other float64 `yaml:"other"`
}

// Tier is one signal-tier cutoff; tiers are matched top-down.
type Tier struct {
	Min   float64 `yaml:"min"`
	Label string  `yaml:"label"`
}

// Config is the full engine configuration.
type Config struct {
	Factors      Factors `yaml:"factors"`
	InjuryPoints struct {
		Out          InjuryPoints `yaml:"out"`
		Doubtful     InjuryPoints `yaml:"doubtful"`
		Questionable InjuryPoints `yaml:"questionable"`
	} `yaml:"injury_points"`
	MaxReasons int    `yaml:"max_reasons"`
	Tiers      []Tier `yaml:"tiers"`
}

var defaultConfig Config

func init() {
	if err := yaml.Unmarshal(weightsData, &defaultConfig); err != nil {
		panic("moneyline: bad embedded weights.yaml: " + err.Error())
	}
}

// DefaultConfig returns a copy of the embedded canonical configuration.
func DefaultConfig() Config { return defaultConfig }

// Tier maps a normalized 0–10 score onto its signal tier label.
func (c Config) Tier(score float64) string {
	for _, t := range c.Tiers {
		if score >= t.Min {
			return t.Label
		}
	}
	return "SKIP"
}
