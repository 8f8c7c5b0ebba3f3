package bracket

import "github.com/KirkDiggler/hoopsim/internal/models"

type SaveBracketInput struct {
	Bracket *models.PlayoffBracket
}

type GetBracketInput struct {
	SeasonID string
}
