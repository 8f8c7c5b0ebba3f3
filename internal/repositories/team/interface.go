package team

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/hoopsim/internal/repositories/team Repository

import (
	"context"

	"github.com/KirkDiggler/hoopsim/internal/models"
)

// Repository defines the interface for team data persistence
type Repository interface {
	// SaveTeam persists a team with its roster and rotation
	SaveTeam(ctx context.Context, input *SaveTeamInput) error

	// GetTeam retrieves a team by ID
	GetTeam(ctx context.Context, input *GetTeamInput) (*models.Team, error)

	// ListTeams retrieves every team, optionally limited to one conference
	ListTeams(ctx context.Context, input *ListTeamsInput) (*ListTeamsOutput, error)
}
