package sim

import "github.com/KirkDiggler/hoopsim/internal/models"

// BoxScore accumulates per-player lines for one game, in order of appearance
type BoxScore struct {
	lines map[string]*models.PlayerGameStats
	order []string
}

// NewBoxScore creates an empty box score
func NewBoxScore() *BoxScore {
	return &BoxScore{lines: make(map[string]*models.PlayerGameStats)}
}

// Appear registers a player as having taken the floor
func (b *BoxScore) Appear(teamID string, p *models.Player) {
	if _, ok := b.lines[p.ID]; ok {
		return
	}
	b.lines[p.ID] = &models.PlayerGameStats{PlayerID: p.ID, TeamID: teamID}
	b.order = append(b.order, p.ID)
}

// Line returns the player's line, registering it without a team if needed
func (b *BoxScore) Line(playerID string) *models.PlayerGameStats {
	line, ok := b.lines[playerID]
	if !ok {
		line = &models.PlayerGameStats{PlayerID: playerID}
		b.lines[playerID] = line
		b.order = append(b.order, playerID)
	}
	return line
}

// Lines returns every line in order of appearance
func (b *BoxScore) Lines() []*models.PlayerGameStats {
	out := make([]*models.PlayerGameStats, 0, len(b.order))
	for _, id := range b.order {
		out = append(out, b.lines[id])
	}
	return out
}

// TeamPoints sums points for one team
func (b *BoxScore) TeamPoints(teamID string) int {
	var total int
	for _, line := range b.lines {
		if line.TeamID == teamID {
			total += line.Points
		}
	}
	return total
}
