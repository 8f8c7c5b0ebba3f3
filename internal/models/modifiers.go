package models

// Modifier identifies one probability that position and role can scale
type Modifier int

const (
	ModifierSteal Modifier = iota
	ModifierThreeTendency
	ModifierPostTendency
	ModifierBlock
	ModifierAssist
	ModifierRebound
	numModifiers
)

// positionModifiers is indexed by Position then Modifier
var positionModifiers = [NumPositions][numModifiers]float64{
	PositionPointGuard:    {ModifierSteal: 1.2, ModifierThreeTendency: 1.2, ModifierPostTendency: 0.3, ModifierBlock: 0.5, ModifierAssist: 1.2, ModifierRebound: 0.7},
	PositionShootingGuard: {ModifierSteal: 1.1, ModifierThreeTendency: 1.3, ModifierPostTendency: 0.5, ModifierBlock: 0.6, ModifierAssist: 1.0, ModifierRebound: 0.8},
	PositionSmallForward:  {ModifierSteal: 1.0, ModifierThreeTendency: 1.0, ModifierPostTendency: 0.9, ModifierBlock: 0.9, ModifierAssist: 0.9, ModifierRebound: 1.0},
	PositionPowerForward:  {ModifierSteal: 0.8, ModifierThreeTendency: 0.6, ModifierPostTendency: 1.4, ModifierBlock: 1.2, ModifierAssist: 0.8, ModifierRebound: 1.3},
	PositionCenter:        {ModifierSteal: 0.7, ModifierThreeTendency: 0.3, ModifierPostTendency: 1.8, ModifierBlock: 1.5, ModifierAssist: 0.7, ModifierRebound: 1.5},
}

// roleModifiers only lists the factors a role changes; anything absent is 1.0
var roleModifiers = map[Role]map[Modifier]float64{
	RoleFloorGeneral: {ModifierAssist: 1.25, ModifierSteal: 1.1},
	RoleSharpshooter: {ModifierThreeTendency: 1.4, ModifierPostTendency: 0.7},
	RoleSlasher:      {ModifierThreeTendency: 0.7, ModifierPostTendency: 1.2},
	RoleTwoWayWing:   {ModifierSteal: 1.2, ModifierBlock: 1.1},
	RoleStretchBig:   {ModifierThreeTendency: 1.8, ModifierPostTendency: 0.8},
	RoleRimProtector: {ModifierBlock: 1.35, ModifierRebound: 1.1},
	RoleGlassCleaner: {ModifierRebound: 1.3},
}

// PositionModifier returns the position factor for m, 1.0 when undefined
func PositionModifier(pos Position, m Modifier) float64 {
	if !pos.Valid() || m < 0 || m >= numModifiers {
		return 1.0
	}
	if v := positionModifiers[pos][m]; v > 0 {
		return v
	}
	return 1.0
}

// RoleModifier returns the role factor for m, 1.0 when undefined
func RoleModifier(role Role, m Modifier) float64 {
	if v, ok := roleModifiers[role][m]; ok {
		return v
	}
	return 1.0
}

// ModifierFor is the combined position and role factor for the player
func (p Player) ModifierFor(m Modifier) float64 {
	return PositionModifier(p.Position, m) * RoleModifier(p.Role, m)
}
