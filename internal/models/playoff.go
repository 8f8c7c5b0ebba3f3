package models

import "slices"

// Round is a stage of the playoff tournament
type Round string

const (
	RoundPlayIn     Round = "play_in"
	RoundFirst      Round = "first_round"
	RoundConfSemis  Round = "conf_semis"
	RoundConfFinals Round = "conf_finals"
	RoundFinals     Round = "finals"
	RoundComplete   Round = "complete"
)

var roundOrder = []Round{RoundPlayIn, RoundFirst, RoundConfSemis, RoundConfFinals, RoundFinals, RoundComplete}

// Next returns the stage that follows r; complete is terminal
func (r Round) Next() Round {
	i := slices.Index(roundOrder, r)
	if i < 0 || i == len(roundOrder)-1 {
		return RoundComplete
	}
	return roundOrder[i+1]
}

// Valid reports whether r is a known stage
func (r Round) Valid() bool {
	return slices.Contains(roundOrder, r)
}

// SeriesRole tags a series with its place in the bracket so later rounds never
// have to infer structure from team overlap.
type SeriesRole string

const (
	RolePlayInSevenEight SeriesRole = "play_in_7v8"
	RolePlayInNineTen    SeriesRole = "play_in_9v10"
	RolePlayInPlacement  SeriesRole = "play_in_placement"
	RoleFirstOneEight    SeriesRole = "first_1v8"
	RoleFirstTwoSeven    SeriesRole = "first_2v7"
	RoleFirstThreeSix    SeriesRole = "first_3v6"
	RoleFirstFourFive    SeriesRole = "first_4v5"
	RoleSemisTop         SeriesRole = "semis_top"
	RoleSemisBottom      SeriesRole = "semis_bottom"
	RoleConfFinal        SeriesRole = "conf_final"
	RoleFinals           SeriesRole = "finals"
)

// SeriesState is derived from the win counters
type SeriesState string

const (
	SeriesStateOpen       SeriesState = "open"
	SeriesStateInProgress SeriesState = "in_progress"
	SeriesStateComplete   SeriesState = "complete"
)

const (
	// SeriesWinsNeeded is the best-of-seven target
	SeriesWinsNeeded = 4

	// PlayInWinsNeeded makes a play-in pairing a single game
	PlayInWinsNeeded = 1
)

// PlayoffSeries is a value type; RecordGame returns an updated copy
type PlayoffSeries struct {
	ID         string     `json:"id"`
	Round      Round      `json:"round"`
	Role       SeriesRole `json:"role"`
	Conference Conference `json:"conference,omitempty"`

	// HigherSeedTeamID holds home court
	HigherSeedTeamID string `json:"higherSeedTeamId"`
	LowerSeedTeamID  string `json:"lowerSeedTeamId"`
	HigherSeed       int    `json:"higherSeed"`
	LowerSeed        int    `json:"lowerSeed"`

	HigherSeedWins int `json:"higherSeedWins"`
	LowerSeedWins  int `json:"lowerSeedWins"`
	WinsNeeded     int `json:"winsNeeded"`

	// GameIDs are the recorded games in order
	GameIDs []string `json:"gameIds"`

	Complete bool `json:"complete"`
}

// NewSeries creates an open series at 0-0. A non-positive winsNeeded means best of seven.
func NewSeries(id string, round Round, role SeriesRole, conf Conference, higherID string, higherSeed int, lowerID string, lowerSeed int, winsNeeded int) PlayoffSeries {
	if winsNeeded <= 0 || winsNeeded > SeriesWinsNeeded {
		winsNeeded = SeriesWinsNeeded
	}
	return PlayoffSeries{
		ID:               id,
		Round:            round,
		Role:             role,
		Conference:       conf,
		HigherSeedTeamID: higherID,
		HigherSeed:       higherSeed,
		LowerSeedTeamID:  lowerID,
		LowerSeed:        lowerSeed,
		WinsNeeded:       winsNeeded,
		GameIDs:          []string{},
	}
}

// State reports where the series is in its lifecycle
func (s PlayoffSeries) State() SeriesState {
	switch {
	case s.Complete:
		return SeriesStateComplete
	case s.HigherSeedWins == 0 && s.LowerSeedWins == 0:
		return SeriesStateOpen
	default:
		return SeriesStateInProgress
	}
}

// Involves reports whether the team plays in the series
func (s PlayoffSeries) Involves(teamID string) bool {
	return teamID != "" && (s.HigherSeedTeamID == teamID || s.LowerSeedTeamID == teamID)
}

// RecordGame returns a copy of the series with one more win for winnerID
func (s PlayoffSeries) RecordGame(gameID, winnerID string) (PlayoffSeries, error) {
	if s.Complete {
		return s, ErrSeriesComplete
	}
	if !s.Involves(winnerID) {
		return s, ErrTeamNotInSeries
	}
	if gameID != "" && slices.Contains(s.GameIDs, gameID) {
		return s, ErrDuplicateSeriesGame
	}

	next := s
	next.GameIDs = append(slices.Clone(s.GameIDs), gameID)
	if winnerID == s.HigherSeedTeamID {
		next.HigherSeedWins++
	} else {
		next.LowerSeedWins++
	}
	next.Complete = next.HigherSeedWins >= next.winsNeeded() || next.LowerSeedWins >= next.winsNeeded()
	return next, nil
}

func (s PlayoffSeries) winsNeeded() int {
	if s.WinsNeeded <= 0 {
		return SeriesWinsNeeded
	}
	return s.WinsNeeded
}

// WinnerID is empty until the series is complete
func (s PlayoffSeries) WinnerID() string {
	if !s.Complete {
		return ""
	}
	if s.HigherSeedWins > s.LowerSeedWins {
		return s.HigherSeedTeamID
	}
	return s.LowerSeedTeamID
}

// LoserID is empty until the series is complete
func (s PlayoffSeries) LoserID() string {
	if !s.Complete {
		return ""
	}
	if s.HigherSeedWins > s.LowerSeedWins {
		return s.LowerSeedTeamID
	}
	return s.HigherSeedTeamID
}

// PlayoffBracket is the full tournament for one season
type PlayoffBracket struct {
	SeasonID string `json:"seasonId"`

	// Seeds maps team ID to conference seed 1-10
	Seeds map[string]int `json:"seeds"`

	// Conferences maps team ID to conference
	Conferences map[string]Conference `json:"conferences"`

	PlayIn     []PlayoffSeries `json:"playIn"`
	FirstRound []PlayoffSeries `json:"firstRound"`
	ConfSemis  []PlayoffSeries `json:"confSemis"`
	ConfFinals []PlayoffSeries `json:"confFinals"`
	Finals     *PlayoffSeries  `json:"finals,omitempty"`

	CurrentRound Round `json:"currentRound"`

	// ChampionID is set once the finals are complete
	ChampionID string `json:"championId,omitempty"`
}

// PlayInSeriesCount is the number of play-in games in both conferences
const PlayInSeriesCount = 6

// SeriesFor returns the series of a round
func (b *PlayoffBracket) SeriesFor(round Round) []PlayoffSeries {
	switch round {
	case RoundPlayIn:
		return b.PlayIn
	case RoundFirst:
		return b.FirstRound
	case RoundConfSemis:
		return b.ConfSemis
	case RoundConfFinals:
		return b.ConfFinals
	case RoundFinals:
		if b.Finals == nil {
			return nil
		}
		return []PlayoffSeries{*b.Finals}
	}
	return nil
}

// IsRoundComplete reports whether every series of the round is finished. An
// empty round is never complete and the play-in needs all six games.
func (b *PlayoffBracket) IsRoundComplete(round Round) bool {
	series := b.SeriesFor(round)
	if len(series) == 0 {
		return false
	}
	if round == RoundPlayIn && len(series) != PlayInSeriesCount {
		return false
	}
	for _, s := range series {
		if !s.Complete {
			return false
		}
	}
	return true
}

// FindSeries locates a series by ID
func (b *PlayoffBracket) FindSeries(id string) (PlayoffSeries, bool) {
	for _, round := range roundOrder {
		for _, s := range b.SeriesFor(round) {
			if s.ID == id {
				return s, true
			}
		}
	}
	return PlayoffSeries{}, false
}

// Clone deep copies the bracket
func (b *PlayoffBracket) Clone() *PlayoffBracket {
	c := *b
	c.Seeds = make(map[string]int, len(b.Seeds))
	for k, v := range b.Seeds {
		c.Seeds[k] = v
	}
	c.Conferences = make(map[string]Conference, len(b.Conferences))
	for k, v := range b.Conferences {
		c.Conferences[k] = v
	}
	c.PlayIn = cloneSeries(b.PlayIn)
	c.FirstRound = cloneSeries(b.FirstRound)
	c.ConfSemis = cloneSeries(b.ConfSemis)
	c.ConfFinals = cloneSeries(b.ConfFinals)
	if b.Finals != nil {
		f := *b.Finals
		f.GameIDs = slices.Clone(b.Finals.GameIDs)
		c.Finals = &f
	}
	return &c
}

// WithSeries returns a copy of the bracket with the series of the same ID replaced.
// The second result is false when no series matched.
func (b *PlayoffBracket) WithSeries(updated PlayoffSeries) (*PlayoffBracket, bool) {
	c := b.Clone()
	for _, list := range [][]PlayoffSeries{c.PlayIn, c.FirstRound, c.ConfSemis, c.ConfFinals} {
		for i := range list {
			if list[i].ID == updated.ID {
				list[i] = updated
				return c, true
			}
		}
	}
	if c.Finals != nil && c.Finals.ID == updated.ID {
		f := updated
		c.Finals = &f
		return c, true
	}
	return b, false
}

func cloneSeries(in []PlayoffSeries) []PlayoffSeries {
	if in == nil {
		return nil
	}
	out := make([]PlayoffSeries, len(in))
	for i, s := range in {
		s.GameIDs = slices.Clone(s.GameIDs)
		out[i] = s
	}
	return out
}
