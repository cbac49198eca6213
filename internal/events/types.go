package events

// ScoreChangeEvent is published when a poll cycle observes a different
// score for a game than the previous cycle did.
type ScoreChangeEvent struct {
	GameKey   string `json:"game_key"`
	HomeTeam  string `json:"home_team"`
	AwayTeam  string `json:"away_team"`
	HomeScore int    `json:"home_score"`
	AwayScore int    `json:"away_score"`
	PrevHome  int    `json:"prev_home"`
	PrevAway  int    `json:"prev_away"`
	Quarter   int    `json:"quarter"`
	Clock     string `json:"clock"`
}

// GameFinalEvent is published the first cycle a game is seen in a final state.
type GameFinalEvent struct {
	GameKey   string `json:"game_key"`
	HomeTeam  string `json:"home_team"`
	AwayTeam  string `json:"away_team"`
	HomeScore int    `json:"home_score"`
	AwayScore int    `json:"away_score"`
	Winner    string `json:"winner"`
}
