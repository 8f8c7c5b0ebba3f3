package bracket

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/hoopsim/internal/repositories/bracket Repository

import (
	"context"

	"github.com/KirkDiggler/hoopsim/internal/models"
)

// Repository defines the interface for playoff bracket persistence
type Repository interface {
	// SaveBracket persists the whole bracket of a season
	SaveBracket(ctx context.Context, input *SaveBracketInput) error

	// GetBracket retrieves the bracket of a season
	GetBracket(ctx context.Context, input *GetBracketInput) (*models.PlayoffBracket, error)
}
