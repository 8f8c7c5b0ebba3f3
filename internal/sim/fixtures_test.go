package sim

import (
	"fmt"

	"github.com/KirkDiggler/hoopsim/internal/models"
)

func testAttributes(base int) models.Attributes {
	return models.Attributes{
		Shooting:     base,
		ThreePoint:   base - 5,
		PostShooting: base - 10,
		Passing:      base,
		BallHandling: base,
		Rebounding:   base,
		Defense:      base,
		Steals:       base - 10,
		Blocks:       base - 10,
		Stamina:      base,
	}
}

// testTeam builds a 15 player roster. Players 0-4 start at PG..C and, with a
// rotation, players 5-9 back them up.
func testTeam(id string, base int, withRotation bool) *models.Team {
	team := &models.Team{ID: id, Name: id, Conference: models.ConferenceEast}
	for i := 0; i < models.RosterSize; i++ {
		team.Players = append(team.Players, models.Player{
			ID:           fmt.Sprintf("%s-p%d", id, i),
			Name:         fmt.Sprintf("%s player %d", id, i),
			Attributes:   testAttributes(base),
			HeightInches: 74 + i%5*2,
			Position:     models.Position(i % models.NumPositions),
		})
	}
	for i := 0; i < models.NumPositions; i++ {
		team.Starters[i] = team.Players[i].ID
	}
	if withRotation {
		rc := &models.RotationConfig{Size: 10}
		for i := 0; i < models.NumPositions; i++ {
			rc.DepthChart = append(rc.DepthChart,
				models.DepthChartEntry{PlayerID: team.Players[i].ID, Position: models.Position(i), Depth: 1, Minutes: 34},
				models.DepthChartEntry{PlayerID: team.Players[i+5].ID, Position: models.Position(i), Depth: 2, Minutes: 14},
			)
		}
		team.Rotation = rc
	}
	return team
}
