package game

import "github.com/KirkDiggler/hoopsim/internal/models"

type SaveGameInput struct {
	Game *models.Game
}

type GetGameInput struct {
	GameID string
}

type GetGamesBySeasonInput struct {
	SeasonID string
}

type GetGamesByTeamInput struct {
	SeasonID string
	TeamID   string
}

type GetGamesBySeriesInput struct {
	SeriesID string
}

// GetGamesOutput is shared by the index lookups
type GetGamesOutput struct {
	Games []*models.Game
}
