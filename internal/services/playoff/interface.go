package playoff

import "context"

// Service defines the interface for postseason operations
type Service interface {
	// CreateBracket seeds the season's playoffs from the standings and
	// schedules the opening play-in games
	CreateBracket(ctx context.Context, input *CreateBracketInput) (*CreateBracketOutput, error)

	// RecordGame applies one played game to its series and advances the bracket
	RecordGame(ctx context.Context, input *RecordGameInput) (*RecordGameOutput, error)

	// SimulateNonUserSeries plays out every series the user team is not in,
	// advancing through rounds until a user series is pending or a champion is crowned
	SimulateNonUserSeries(ctx context.Context, input *SimulateNonUserSeriesInput) (*SimulateNonUserSeriesOutput, error)

	// GetBracket retrieves the season's bracket
	GetBracket(ctx context.Context, input *GetBracketInput) (*GetBracketOutput, error)
}
