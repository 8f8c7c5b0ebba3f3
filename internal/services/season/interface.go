package season

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/hoopsim/internal/services/season Service

import "context"

// Service defines the interface for regular-season operations
type Service interface {
	// SimulateGames plays a season's scheduled games in order, skipping games
	// that are already final
	SimulateGames(ctx context.Context, input *SimulateGamesInput) (*SimulateGamesOutput, error)

	// GetTeamRecord returns one team's regular-season record
	GetTeamRecord(ctx context.Context, input *GetTeamRecordInput) (*GetTeamRecordOutput, error)

	// GetStandings returns every conference's table, best record first
	GetStandings(ctx context.Context, input *GetStandingsInput) (*GetStandingsOutput, error)
}
