package models

import (
	"time"
)

// GameStatus represents the current state of a game
type GameStatus string

const (
	// GameStatusScheduled indicates a game has not been played
	GameStatusScheduled GameStatus = "scheduled"

	// GameStatusFinal indicates a game has been simulated to completion
	GameStatusFinal GameStatus = "final"
)

// PlayerGameStats is one box score line
type PlayerGameStats struct {
	PlayerID          string  `json:"playerId"`
	TeamID            string  `json:"teamId"`
	Points            int     `json:"points"`
	OffensiveRebounds int     `json:"offensiveRebounds"`
	DefensiveRebounds int     `json:"defensiveRebounds"`
	Assists           int     `json:"assists"`
	FieldGoalsMade    int     `json:"fgm"`
	FieldGoalsAtt     int     `json:"fga"`
	ThreesMade        int     `json:"threePm"`
	ThreesAtt         int     `json:"threePa"`
	FreeThrowsMade    int     `json:"ftm"`
	FreeThrowsAtt     int     `json:"fta"`
	Turnovers         int     `json:"turnovers"`
	Steals            int     `json:"steals"`
	Blocks            int     `json:"blocks"`
	Fouls             int     `json:"fouls"`
	Minutes           float64 `json:"minutes"`
}

// Rebounds is the total of offensive and defensive rebounds
func (s *PlayerGameStats) Rebounds() int {
	return s.OffensiveRebounds + s.DefensiveRebounds
}

// Game represents a single scheduled or played game
type Game struct {
	// ID is the unique identifier for the game
	ID string `json:"id"`

	// SeasonID is the season the game belongs to
	SeasonID string `json:"seasonId"`

	// HomeTeamID is the home side
	HomeTeamID string `json:"homeTeamId"`

	// AwayTeamID is the away side
	AwayTeamID string `json:"awayTeamId"`

	// Status is the current state of the game
	Status GameStatus `json:"status"`

	HomeScore int `json:"homeScore"`
	AwayScore int `json:"awayScore"`

	// Possessions is the number of possessions simulated, overtime included
	Possessions int `json:"possessions"`

	// Overtimes is the number of overtime periods played
	Overtimes int `json:"overtimes"`

	// IsPlayoff marks postseason games
	IsPlayoff bool `json:"isPlayoff"`

	// SeriesID links a playoff game to its series
	SeriesID string `json:"seriesId,omitempty"`

	// BoxScore has one line per player who appeared
	BoxScore []*PlayerGameStats `json:"boxScore,omitempty"`

	// CreatedAt is when the game was scheduled
	CreatedAt time.Time `json:"createdAt"`

	// PlayedAt is when the game was simulated
	PlayedAt time.Time `json:"playedAt,omitempty"`
}

// Played reports whether the game has a final result
func (g *Game) Played() bool {
	return g.Status == GameStatusFinal
}

// WinnerID returns the winning team, empty if the game is not final
func (g *Game) WinnerID() string {
	if !g.Played() {
		return ""
	}
	if g.HomeScore > g.AwayScore {
		return g.HomeTeamID
	}
	return g.AwayTeamID
}

// LoserID returns the losing team, empty if the game is not final
func (g *Game) LoserID() string {
	if !g.Played() {
		return ""
	}
	if g.HomeScore > g.AwayScore {
		return g.AwayTeamID
	}
	return g.HomeTeamID
}

// Involves reports whether the team played in the game
func (g *Game) Involves(teamID string) bool {
	return g.HomeTeamID == teamID || g.AwayTeamID == teamID
}
