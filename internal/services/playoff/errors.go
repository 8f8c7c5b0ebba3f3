package playoff

// PlayoffError is a custom error type for playoff-related errors
type PlayoffError string

// Error implements the error interface
func (e PlayoffError) Error() string {
	return string(e)
}

const (
	ErrBracketNotFound  PlayoffError = "bracket not found"
	ErrBracketExists    PlayoffError = "bracket already exists for this season"
	ErrSeriesNotFound   PlayoffError = "series not found"
	ErrNotEnoughTeams   PlayoffError = "not enough teams to seed the playoffs"
	ErrTeamNotFound     PlayoffError = "team not found"
	ErrInvalidInput     PlayoffError = "invalid input"
	ErrNilConfig        PlayoffError = "config cannot be nil"
	ErrNilBracketRepo   PlayoffError = "bracket repository cannot be nil"
	ErrNilTeamRepo      PlayoffError = "team repository cannot be nil"
	ErrNilGameService   PlayoffError = "game service cannot be nil"
	ErrNilSeasonService PlayoffError = "season service cannot be nil"
)
