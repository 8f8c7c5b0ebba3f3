package season

// SeasonError is a custom error type for season-related errors
type SeasonError string

// Error implements the error interface
func (e SeasonError) Error() string {
	return string(e)
}

const (
	ErrTeamNotFound   SeasonError = "team not found"
	ErrInvalidInput   SeasonError = "invalid input"
	ErrNilConfig      SeasonError = "config cannot be nil"
	ErrNilGameService SeasonError = "game service cannot be nil"
	ErrNilGameRepo    SeasonError = "game repository cannot be nil"
	ErrNilTeamRepo    SeasonError = "team repository cannot be nil"
)
