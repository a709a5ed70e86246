package simulation

// Error is a sentinel error raised by the simulation core.
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	// ErrInvalidTrialCount is returned when a run is asked for zero or negative trials.
	ErrInvalidTrialCount Error = "trial count must be positive"
	// ErrUnknownTeam is returned by roster sources for team ids they do not know.
	ErrUnknownTeam Error = "unknown fantasy team"
	// ErrEmptyDayRange is returned by week runs without any day to simulate.
	ErrEmptyDayRange Error = "day range is empty"
	// ErrMalformedLiveFeed marks clock or period values that cannot be read.
	ErrMalformedLiveFeed Error = "malformed live feed value"
	// ErrMissingHistory marks a player without any completed games this season.
	ErrMissingHistory Error = "no historical games for player"
)
