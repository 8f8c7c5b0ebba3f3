package team

import "github.com/KirkDiggler/hoopsim/internal/models"

// SaveTeamInput contains parameters for saving a team
type SaveTeamInput struct {
	Team *models.Team
}

// GetTeamInput contains parameters for retrieving a team
type GetTeamInput struct {
	TeamID string
}

// ListTeamsInput filters the team listing; an empty conference lists all teams
type ListTeamsInput struct {
	Conference models.Conference
}

// ListTeamsOutput contains the teams ordered by ID
type ListTeamsOutput struct {
	Teams []*models.Team
}
