package game

import (
	"log/slog"

	"github.com/KirkDiggler/hoopsim/internal/common/clock"
	"github.com/KirkDiggler/hoopsim/internal/common/uuid"
	"github.com/KirkDiggler/hoopsim/internal/dice"
	"github.com/KirkDiggler/hoopsim/internal/metrics"
	"github.com/KirkDiggler/hoopsim/internal/models"
	gameRepo "github.com/KirkDiggler/hoopsim/internal/repositories/game"
	teamRepo "github.com/KirkDiggler/hoopsim/internal/repositories/team"
	"github.com/KirkDiggler/hoopsim/internal/sim"
)

// Config holds the dependencies for the game service
type Config struct {
	// GameRepo stores games and box scores
	GameRepo gameRepo.Repository

	// TeamRepo loads rosters and rotations
	TeamRepo teamRepo.Repository

	// DiceRoller seeds one forked roller per simulated game
	DiceRoller dice.Roller

	// Clock stamps scheduled and played games
	Clock clock.Clock

	// UUIDGenerator names new games
	UUIDGenerator uuid.UUID

	// Simulator is optional; nil uses the default pacing
	Simulator *sim.Simulator

	// Metrics is optional
	Metrics *metrics.Recorder

	// Logger is optional; nil uses slog.Default
	Logger *slog.Logger
}

// ScheduleGameInput contains parameters for scheduling a game
type ScheduleGameInput struct {
	SeasonID   string
	HomeTeamID string
	AwayTeamID string
}

// ScheduleGameOutput contains the stored game
type ScheduleGameOutput struct {
	Game *models.Game
}

// SimulateGameInput contains parameters for simulating a game. When GameID
// names a stored game, its teams and season are used and the other fields are
// ignored.
type SimulateGameInput struct {
	GameID     string
	SeasonID   string
	HomeTeamID string
	AwayTeamID string

	// SeriesID and IsPlayoff mark postseason games
	SeriesID  string
	IsPlayoff bool
}

// SimulateGameOutput contains the final game
type SimulateGameOutput struct {
	Game *models.Game

	// AlreadyPlayed is true when the game was final before the call
	AlreadyPlayed bool
}

// GetGameInput contains parameters for retrieving a game
type GetGameInput struct {
	GameID string
}

// GetGameOutput contains the game
type GetGameOutput struct {
	Game *models.Game
}
