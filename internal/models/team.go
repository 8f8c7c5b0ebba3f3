package models

import "fmt"

// Conference groups teams for seeding
type Conference string

const (
	ConferenceEast Conference = "East"
	ConferenceWest Conference = "West"
)

// Conferences lists both conferences in bracket order
func Conferences() []Conference {
	return []Conference{ConferenceEast, ConferenceWest}
}

const (
	// RosterSize is the number of players every team carries
	RosterSize = 15

	// RegulationMinutes is the length of a regulation game
	RegulationMinutes = 48

	MinRotationSize = 6
	MaxRotationSize = 10
)

// DepthChartEntry assigns a player to a position with a minutes allocation
type DepthChartEntry struct {
	// PlayerID is the player being assigned
	PlayerID string `json:"playerId"`

	// Position is the slot the player can fill
	Position Position `json:"position"`

	// Depth orders players at a position, starting at 1
	Depth int `json:"depth"`

	// Minutes is the target allocation at this position
	Minutes int `json:"minutes"`
}

// RotationConfig describes how a team distributes minutes
type RotationConfig struct {
	// Size is the number of players who receive minutes
	Size int `json:"size"`

	// DepthChart lists every position assignment
	DepthChart []DepthChartEntry `json:"depthChart"`
}

// TargetMinutes returns the player's total minutes target across positions
func (rc *RotationConfig) TargetMinutes(playerID string) float64 {
	if rc == nil {
		return 0
	}
	var total int
	for _, e := range rc.DepthChart {
		if e.PlayerID == playerID {
			total += e.Minutes
		}
	}
	return float64(total)
}

// PlayersAt returns the depth chart entries for a position ordered by depth
func (rc *RotationConfig) PlayersAt(pos Position) []DepthChartEntry {
	if rc == nil {
		return nil
	}
	var out []DepthChartEntry
	for _, e := range rc.DepthChart {
		if e.Position == pos {
			out = append(out, e)
		}
	}
	// insertion sort, charts are tiny
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j].Depth < out[j-1].Depth; j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}

// Validate checks the rotation against the team roster
func (rc *RotationConfig) Validate(roster map[string]Player) error {
	if rc.Size < MinRotationSize || rc.Size > MaxRotationSize {
		return ErrRotationSize
	}

	var perPosition [NumPositions]int
	type slot struct {
		player string
		pos    Position
	}
	seen := make(map[slot]bool)
	playerMinutes := make(map[string]int)

	for _, e := range rc.DepthChart {
		if _, ok := roster[e.PlayerID]; !ok {
			return fmt.Errorf("%w: %s", ErrRotationUnknown, e.PlayerID)
		}
		if !e.Position.Valid() {
			return fmt.Errorf("invalid position %d for %s", int(e.Position), e.PlayerID)
		}
		if e.Depth < 1 {
			return ErrRotationDepth
		}
		if e.Minutes < 0 {
			return fmt.Errorf("%w: %s at %s", ErrRotationNegativeMinutes, e.PlayerID, e.Position)
		}
		key := slot{player: e.PlayerID, pos: e.Position}
		if seen[key] {
			return fmt.Errorf("%w: %s at %s", ErrRotationDuplicate, e.PlayerID, e.Position)
		}
		seen[key] = true
		perPosition[e.Position] += e.Minutes
		playerMinutes[e.PlayerID] += e.Minutes
	}

	for pos, minutes := range perPosition {
		if minutes != RegulationMinutes {
			return fmt.Errorf("%w: %s has %d", ErrRotationMinutes, Position(pos), minutes)
		}
	}

	withMinutes := 0
	for id, minutes := range playerMinutes {
		if minutes > RegulationMinutes {
			return fmt.Errorf("%w: %s", ErrRotationOverAllotted, id)
		}
		if minutes > 0 {
			withMinutes++
		}
	}
	if withMinutes != rc.Size {
		return fmt.Errorf("%w: %d with minutes, size %d", ErrRotationPlayerCount, withMinutes, rc.Size)
	}

	return nil
}

// Team is a roster plus its lineup configuration
type Team struct {
	// ID is the unique identifier for the team
	ID string `json:"id"`

	// Name is the display name of the team
	Name string `json:"name"`

	// Conference is the conference the team is seeded in
	Conference Conference `json:"conference"`

	// Players is the full roster
	Players []Player `json:"players"`

	// Starters holds a player ID per position slot
	Starters [NumPositions]string `json:"starters"`

	// Rotation is optional; without it the starters play the whole game
	Rotation *RotationConfig `json:"rotation,omitempty"`
}

// Roster indexes the team's players by ID
func (t *Team) Roster() map[string]Player {
	roster := make(map[string]Player, len(t.Players))
	for _, p := range t.Players {
		roster[p.ID] = p
	}
	return roster
}

// Player looks up a rostered player
func (t *Team) Player(id string) (Player, bool) {
	for _, p := range t.Players {
		if p.ID == id {
			return p, true
		}
	}
	return Player{}, false
}

// ValidateLineup checks that the starters and rotation can take the floor.
// It does not require a full roster.
func (t *Team) ValidateLineup() error {
	roster := t.Roster()
	used := make(map[string]bool, NumPositions)
	for pos, id := range t.Starters {
		if _, ok := roster[id]; !ok {
			return fmt.Errorf("%w: %s at %s", ErrStarterNotOnRoster, id, Position(pos))
		}
		if used[id] {
			return fmt.Errorf("%w: %s", ErrDuplicateStarter, id)
		}
		used[id] = true
	}
	if t.Rotation != nil {
		if err := t.Rotation.Validate(roster); err != nil {
			return err
		}
	}
	return nil
}

// Validate checks every team invariant
func (t *Team) Validate() error {
	if len(t.Players) != RosterSize {
		return fmt.Errorf("%w: got %d", ErrRosterSize, len(t.Players))
	}
	return t.ValidateLineup()
}

// WithRotation returns a copy of the team using the given rotation
func (t *Team) WithRotation(rc *RotationConfig) *Team {
	c := *t
	c.Rotation = rc
	return &c
}
