package season

import (
	"log/slog"

	"github.com/KirkDiggler/hoopsim/internal/metrics"
	"github.com/KirkDiggler/hoopsim/internal/models"
	gameRepo "github.com/KirkDiggler/hoopsim/internal/repositories/game"
	teamRepo "github.com/KirkDiggler/hoopsim/internal/repositories/team"
	gameService "github.com/KirkDiggler/hoopsim/internal/services/game"
)

// Config holds the dependencies for the season service
type Config struct {
	GameService gameService.Service
	GameRepo    gameRepo.Repository
	TeamRepo    teamRepo.Repository

	// Metrics is optional
	Metrics *metrics.Recorder

	// Logger is optional; nil uses slog.Default
	Logger *slog.Logger
}

// SimulateGamesInput names the season to play. When Games is empty the
// season's stored schedule is used.
type SimulateGamesInput struct {
	SeasonID string
	Games    []*models.Game
}

// SimulateGamesOutput reports the batch. On error it holds the games finished
// before the failure.
type SimulateGamesOutput struct {
	Simulated int
	Skipped   int
	Games     []*models.Game
}

type GetTeamRecordInput struct {
	SeasonID string
	TeamID   string
}

type GetTeamRecordOutput struct {
	Record models.TeamRecord
}

type GetStandingsInput struct {
	SeasonID string
}

// GetStandingsOutput holds one ordered table per conference
type GetStandingsOutput struct {
	Standings map[models.Conference][]models.TeamRecord
}
