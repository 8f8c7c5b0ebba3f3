package sim

import (
	"fmt"

	"github.com/KirkDiggler/hoopsim/internal/models"
)

// Substitution records one lineup change
type Substitution struct {
	Position models.Position
	OutID    string
	InID     string
}

// RotationManager tracks minutes for one team and swaps players between possessions
type RotationManager struct {
	team    *models.Team
	roster  map[string]*models.Player
	lineup  Lineup
	minutes map[string]float64
	targets map[string]float64
}

// NewRotationManager validates the team and puts its starters on the floor
func NewRotationManager(team *models.Team) (*RotationManager, error) {
	if team == nil {
		return nil, ErrNilTeam
	}
	if len(team.Players) < models.NumPositions {
		return nil, fmt.Errorf("%w: %s has %d", ErrNotEnoughPlayers, team.ID, len(team.Players))
	}
	if err := team.ValidateLineup(); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidLineup, team.ID, err)
	}

	m := &RotationManager{
		team:    team,
		roster:  make(map[string]*models.Player, len(team.Players)),
		minutes: make(map[string]float64),
		targets: make(map[string]float64),
	}
	for i := range team.Players {
		p := &team.Players[i]
		m.roster[p.ID] = p
		if team.Rotation != nil {
			m.targets[p.ID] = team.Rotation.TargetMinutes(p.ID)
		}
	}
	for pos, id := range team.Starters {
		m.lineup[pos] = m.roster[id]
	}
	return m, nil
}

// Lineup returns the players currently on the floor
func (m *RotationManager) Lineup() Lineup {
	return m.lineup
}

// Minutes returns the minutes accumulated so far per player
func (m *RotationManager) Minutes() map[string]float64 {
	out := make(map[string]float64, len(m.minutes))
	for id, v := range m.minutes {
		out[id] = v
	}
	return out
}

// Substitute runs before a possession worth increment minutes. A player whose
// minutes would reach their target gives way to the teammate at that position
// with the largest remaining deficit. Teams without a rotation never substitute.
func (m *RotationManager) Substitute(increment float64) []Substitution {
	rc := m.team.Rotation
	if rc == nil {
		return nil
	}

	var subs []Substitution
	for _, pos := range models.Positions() {
		incumbent := m.lineup[pos]
		if m.minutes[incumbent.ID]+increment < m.targets[incumbent.ID] {
			continue
		}

		var best *models.Player
		bestDeficit := 0.0
		for _, entry := range rc.PlayersAt(pos) {
			if entry.PlayerID == incumbent.ID || m.lineup.Contains(entry.PlayerID) {
				continue
			}
			deficit := m.targets[entry.PlayerID] - m.minutes[entry.PlayerID]
			if deficit > bestDeficit {
				best, bestDeficit = m.roster[entry.PlayerID], deficit
			}
		}
		if best == nil {
			continue
		}

		m.lineup[pos] = best
		subs = append(subs, Substitution{Position: pos, OutID: incumbent.ID, InID: best.ID})
	}
	return subs
}

// Accrue credits increment minutes to everyone on the floor
func (m *RotationManager) Accrue(increment float64) {
	for _, p := range m.lineup {
		m.minutes[p.ID] += increment
	}
}
