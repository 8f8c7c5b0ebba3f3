package logging

// Structured log field keys shared by the services
const (
	FieldSeasonID    = "season_id"
	FieldGameID      = "game_id"
	FieldSeriesID    = "series_id"
	FieldTeamID      = "team_id"
	FieldHomeTeamID  = "home_team_id"
	FieldAwayTeamID  = "away_team_id"
	FieldRound       = "round"
	FieldScore       = "score"
	FieldPossessions = "possessions"
	FieldOvertimes   = "overtimes"
	FieldCount       = "count"
	FieldSkipped     = "skipped"
	FieldDurationMS  = "duration_ms"
)
