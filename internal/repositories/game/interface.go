package game

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/hoopsim/internal/repositories/game Repository

import (
	"context"

	"github.com/KirkDiggler/hoopsim/internal/models"
)

// Repository defines the interface for game data persistence
type Repository interface {
	// SaveGame persists a game and indexes it by season, team and series
	SaveGame(ctx context.Context, input *SaveGameInput) error

	// GetGame retrieves a game by ID
	GetGame(ctx context.Context, input *GetGameInput) (*models.Game, error)

	// GetGamesBySeason retrieves every game of a season in creation order
	GetGamesBySeason(ctx context.Context, input *GetGamesBySeasonInput) (*GetGamesOutput, error)

	// GetGamesByTeam retrieves a team's games in a season in creation order
	GetGamesByTeam(ctx context.Context, input *GetGamesByTeamInput) (*GetGamesOutput, error)

	// GetGamesBySeries retrieves the games of a playoff series in creation order
	GetGamesBySeries(ctx context.Context, input *GetGamesBySeriesInput) (*GetGamesOutput, error)
}
