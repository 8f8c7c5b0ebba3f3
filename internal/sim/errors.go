package sim

// SimError is returned when a game cannot be simulated
type SimError string

// Error implements the error interface
func (e SimError) Error() string {
	return string(e)
}

const (
	ErrNilTeam          SimError = "team cannot be nil"
	ErrNilRoller        SimError = "dice roller cannot be nil"
	ErrNotEnoughPlayers SimError = "team needs at least 5 eligible players"
	ErrInvalidLineup    SimError = "team lineup is invalid"
	ErrInvalidConfig    SimError = "invalid simulator config"
	ErrSameTeam         SimError = "a team cannot play itself"
)
