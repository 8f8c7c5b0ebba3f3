package playoff

// BracketError is returned when a bracket cannot be built or advanced
type BracketError string

// Error implements the error interface
func (e BracketError) Error() string {
	return string(e)
}

const (
	ErrNilBracket      BracketError = "bracket cannot be nil"
	ErrInvalidSeeds    BracketError = "each conference needs ten distinct seeded teams"
	ErrRoundIncomplete BracketError = "current round is not complete"
	ErrPlayInNotReady  BracketError = "play-in games have not all been played"
	ErrMissingSeries   BracketError = "bracket is missing a series for this round"
	ErrBracketComplete BracketError = "bracket is already complete"
	ErrNilSimulator    BracketError = "game simulator cannot be nil"
	ErrNilTeamLookup   BracketError = "team lookup cannot be nil"
)
