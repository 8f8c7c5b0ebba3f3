package models

// Role is an optional player archetype
type Role string

const (
	RoleFloorGeneral Role = "floor_general"
	RoleSharpshooter Role = "sharpshooter"
	RoleSlasher      Role = "slasher"
	RoleTwoWayWing   Role = "two_way_wing"
	RoleStretchBig   Role = "stretch_big"
	RoleRimProtector Role = "rim_protector"
	RoleGlassCleaner Role = "glass_cleaner"
)

// Roles lists every archetype in a stable order
func Roles() []Role {
	return []Role{
		RoleFloorGeneral,
		RoleSharpshooter,
		RoleSlasher,
		RoleTwoWayWing,
		RoleStretchBig,
		RoleRimProtector,
		RoleGlassCleaner,
	}
}

// roleWeights are the attribute weights used to score how well a player fits a role
var roleWeights = map[Role]Attributes{
	RoleFloorGeneral: {Passing: 4, BallHandling: 4, Shooting: 1, Steals: 1},
	RoleSharpshooter: {ThreePoint: 5, Shooting: 3, BallHandling: 1},
	RoleSlasher:      {Shooting: 3, BallHandling: 3, Stamina: 2, PostShooting: 1},
	RoleTwoWayWing:   {Defense: 3, Steals: 2, Shooting: 2, ThreePoint: 2},
	RoleStretchBig:   {ThreePoint: 3, Shooting: 2, Rebounding: 2, PostShooting: 1},
	RoleRimProtector: {Blocks: 5, Defense: 3, Rebounding: 2},
	RoleGlassCleaner: {Rebounding: 5, PostShooting: 2, Stamina: 1, Blocks: 1},
}

// Valid reports whether r is a known archetype
func (r Role) Valid() bool {
	_, ok := roleWeights[r]
	return ok
}

// FitScore returns the weighted average of the player's attributes under the
// role's weights, on the same 0-100 scale. Unknown roles score 0.
func (r Role) FitScore(attrs Attributes) float64 {
	w, ok := roleWeights[r]
	if !ok {
		return 0
	}
	pairs := [][2]int{
		{w.Shooting, attrs.Shooting},
		{w.ThreePoint, attrs.ThreePoint},
		{w.PostShooting, attrs.PostShooting},
		{w.Passing, attrs.Passing},
		{w.BallHandling, attrs.BallHandling},
		{w.Rebounding, attrs.Rebounding},
		{w.Defense, attrs.Defense},
		{w.Steals, attrs.Steals},
		{w.Blocks, attrs.Blocks},
		{w.Stamina, attrs.Stamina},
	}
	var total, weight float64
	for _, p := range pairs {
		total += float64(p[0] * p[1])
		weight += float64(p[0])
	}
	if weight == 0 {
		return 0
	}
	return total / weight
}

// BestRole returns the archetype with the highest fit score for the player.
// Ties resolve to the earlier role in Roles().
func BestRole(attrs Attributes) (Role, float64) {
	var best Role
	bestScore := -1.0
	for _, r := range Roles() {
		if score := r.FitScore(attrs); score > bestScore {
			best, bestScore = r, score
		}
	}
	return best, bestScore
}
