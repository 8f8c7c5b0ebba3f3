package game

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/hoopsim/internal/services/game Service

import "context"

// Service defines the interface for single-game operations
type Service interface {
	// ScheduleGame stores an unplayed game between two teams
	ScheduleGame(ctx context.Context, input *ScheduleGameInput) (*ScheduleGameOutput, error)

	// SimulateGame plays a game to a final score. A game that is already final
	// is returned unchanged.
	SimulateGame(ctx context.Context, input *SimulateGameInput) (*SimulateGameOutput, error)

	// GetGame retrieves a game by ID
	GetGame(ctx context.Context, input *GetGameInput) (*GetGameOutput, error)
}
