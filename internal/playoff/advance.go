package playoff

import (
	"fmt"

	"github.com/KirkDiggler/hoopsim/internal/models"
)

// AdvanceRound moves the bracket exactly one stage forward. The current round
// must be complete.
func AdvanceRound(b *models.PlayoffBracket) (*models.PlayoffBracket, error) {
	if b == nil {
		return nil, ErrNilBracket
	}
	if b.CurrentRound == models.RoundComplete {
		return nil, ErrBracketComplete
	}
	if !b.IsRoundComplete(b.CurrentRound) {
		return nil, fmt.Errorf("%w: %s", ErrRoundIncomplete, b.CurrentRound)
	}

	next := b.Clone()
	switch b.CurrentRound {
	case models.RoundPlayIn:
		series, err := GenerateFirstRound(next)
		if err != nil {
			return nil, err
		}
		next.FirstRound = series
	case models.RoundFirst:
		series, err := GenerateConferenceSemis(next.SeasonID, next.FirstRound)
		if err != nil {
			return nil, err
		}
		next.ConfSemis = series
	case models.RoundConfSemis:
		series, err := GenerateConferenceFinals(next.SeasonID, next.ConfSemis)
		if err != nil {
			return nil, err
		}
		next.ConfFinals = series
	case models.RoundConfFinals:
		finals, err := GenerateFinals(next.SeasonID, next.ConfFinals)
		if err != nil {
			return nil, err
		}
		next.Finals = &finals
	case models.RoundFinals:
		next.ChampionID = next.Finals.WinnerID()
	default:
		return nil, fmt.Errorf("unknown round %q", b.CurrentRound)
	}

	next.CurrentRound = b.CurrentRound.Next()
	return next, nil
}

// Advance schedules any play-in placement games that are due and then moves
// forward through every completed stage. On an incomplete round it returns the
// bracket unchanged. The bool reports whether anything changed.
func Advance(b *models.PlayoffBracket) (*models.PlayoffBracket, bool, error) {
	if b == nil {
		return nil, false, ErrNilBracket
	}

	next := b
	changed := false
	if next.CurrentRound == models.RoundPlayIn {
		next, changed = AddPlacementGames(next)
	}

	for next.CurrentRound != models.RoundComplete && next.IsRoundComplete(next.CurrentRound) {
		advanced, err := AdvanceRound(next)
		if err != nil {
			return next, changed, err
		}
		next = advanced
		changed = true
	}
	return next, changed, nil
}
