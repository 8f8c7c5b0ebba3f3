package models

// ModelError is returned when a value violates a data model invariant
type ModelError string

// Error implements the error interface
func (e ModelError) Error() string {
	return string(e)
}

const (
	ErrRosterSize              ModelError = "team must have exactly 15 players"
	ErrStarterNotOnRoster      ModelError = "starter is not on the roster"
	ErrDuplicateStarter        ModelError = "player starts at more than one position"
	ErrRotationSize            ModelError = "rotation size must be between 6 and 10"
	ErrRotationMinutes         ModelError = "rotation minutes must sum to 48 at every position"
	ErrRotationPlayerCount     ModelError = "players with minutes must equal rotation size"
	ErrRotationDuplicate       ModelError = "player assigned to the same position twice"
	ErrRotationDepth           ModelError = "depth chart depth must be at least 1"
	ErrRotationUnknown         ModelError = "depth chart references a player not on the roster"
	ErrRotationOverAllotted    ModelError = "player target exceeds a full game"
	ErrRotationNegativeMinutes ModelError = "depth chart minutes cannot be negative"
	ErrSeriesComplete          ModelError = "series is already complete"
	ErrTeamNotInSeries         ModelError = "team is not part of the series"
	ErrDuplicateSeriesGame     ModelError = "game already recorded in series"
)
