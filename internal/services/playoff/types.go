package playoff

import (
	"log/slog"

	"github.com/KirkDiggler/hoopsim/internal/metrics"
	"github.com/KirkDiggler/hoopsim/internal/models"
	bracketRepo "github.com/KirkDiggler/hoopsim/internal/repositories/bracket"
	teamRepo "github.com/KirkDiggler/hoopsim/internal/repositories/team"
	gameService "github.com/KirkDiggler/hoopsim/internal/services/game"
	seasonService "github.com/KirkDiggler/hoopsim/internal/services/season"
)

// Config holds the dependencies for the playoff service
type Config struct {
	BracketRepo   bracketRepo.Repository
	TeamRepo      teamRepo.Repository
	GameService   gameService.Service
	SeasonService seasonService.Service

	// Metrics is optional
	Metrics *metrics.Recorder

	// Logger is optional; nil uses slog.Default
	Logger *slog.Logger
}

type CreateBracketInput struct {
	SeasonID string
}

type CreateBracketOutput struct {
	Bracket *models.PlayoffBracket
}

// RecordGameInput reports a game played outside bulk simulation, usually the
// user team's
type RecordGameInput struct {
	SeasonID     string
	SeriesID     string
	GameID       string
	WinnerTeamID string
}

type RecordGameOutput struct {
	Bracket *models.PlayoffBracket
	Series  models.PlayoffSeries
}

// SimulateNonUserSeriesInput names the season and the team left for the user.
// An empty UserTeamID simulates the whole postseason.
type SimulateNonUserSeriesInput struct {
	SeasonID   string
	UserTeamID string
}

// SimulateNonUserSeriesOutput holds the bracket as far as it got. It is
// returned alongside an error too, already persisted.
type SimulateNonUserSeriesOutput struct {
	Bracket *models.PlayoffBracket
}

type GetBracketInput struct {
	SeasonID string
}

type GetBracketOutput struct {
	Bracket *models.PlayoffBracket
}
