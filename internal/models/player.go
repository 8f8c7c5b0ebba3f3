package models

import "fmt"

// Position is one of the five fixed on-court roles. Its value doubles as the
// lineup slot index.
type Position int

const (
	// PositionPointGuard is the primary ball handler
	PositionPointGuard Position = iota

	// PositionShootingGuard is the secondary guard
	PositionShootingGuard

	// PositionSmallForward is the wing
	PositionSmallForward

	// PositionPowerForward is the interior forward
	PositionPowerForward

	// PositionCenter is the big
	PositionCenter
)

// NumPositions is the number of lineup slots on each side
const NumPositions = 5

var positionCodes = [NumPositions]string{"PG", "SG", "SF", "PF", "C"}

// Positions lists every position in slot order
func Positions() [NumPositions]Position {
	return [NumPositions]Position{
		PositionPointGuard,
		PositionShootingGuard,
		PositionSmallForward,
		PositionPowerForward,
		PositionCenter,
	}
}

// Valid reports whether p is one of the five positions
func (p Position) Valid() bool {
	return p >= PositionPointGuard && p <= PositionCenter
}

// IsBig reports whether the position plays near the basket
func (p Position) IsBig() bool {
	return p == PositionPowerForward || p == PositionCenter
}

func (p Position) String() string {
	if !p.Valid() {
		return fmt.Sprintf("Position(%d)", int(p))
	}
	return positionCodes[p]
}

// ParsePosition converts a code such as "PG" into a Position
func ParsePosition(code string) (Position, error) {
	for i, c := range positionCodes {
		if c == code {
			return Position(i), nil
		}
	}
	return 0, fmt.Errorf("unknown position %q", code)
}

// MarshalText encodes the position as its code
func (p Position) MarshalText() ([]byte, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("invalid position %d", int(p))
	}
	return []byte(positionCodes[p]), nil
}

// UnmarshalText decodes a position code
func (p *Position) UnmarshalText(text []byte) error {
	parsed, err := ParsePosition(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// Attributes holds the ten skill ratings of a player, each on a 0-100 scale
type Attributes struct {
	Shooting     int `json:"shooting"`
	ThreePoint   int `json:"threePoint"`
	PostShooting int `json:"postShooting"`
	Passing      int `json:"passing"`
	BallHandling int `json:"ballHandling"`
	Rebounding   int `json:"rebounding"`
	Defense      int `json:"defense"`
	Steals       int `json:"steals"`
	Blocks       int `json:"blocks"`
	Stamina      int `json:"stamina"`
}

// Player is an immutable rostered player. Use the With helpers to derive
// changed copies.
type Player struct {
	// ID is the unique identifier for the player
	ID string `json:"id"`

	// Name is the display name of the player
	Name string `json:"name"`

	// Attributes are the player's skill ratings
	Attributes Attributes `json:"attributes"`

	// HeightInches is the player's height
	HeightInches int `json:"heightInches"`

	// Position is the player's natural position
	Position Position `json:"position"`

	// Role is the optional archetype; empty means none
	Role Role `json:"role,omitempty"`
}

// WithAttributes returns a copy of the player with new attributes
func (p Player) WithAttributes(attrs Attributes) Player {
	p.Attributes = attrs
	return p
}

// WithRole returns a copy of the player with a new role
func (p Player) WithRole(role Role) Player {
	p.Role = role
	return p
}

// WithPosition returns a copy of the player with a new position
func (p Player) WithPosition(pos Position) Player {
	p.Position = pos
	return p
}
