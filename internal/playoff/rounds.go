package playoff

import (
	"fmt"

	"github.com/KirkDiggler/hoopsim/internal/models"
)

var firstRoundPairs = []struct {
	role          models.SeriesRole
	higher, lower int
}{
	{models.RoleFirstOneEight, 1, 8},
	{models.RoleFirstTwoSeven, 2, 7},
	{models.RoleFirstThreeSix, 3, 6},
	{models.RoleFirstFourFive, 4, 5},
}

// GenerateFirstRound pairs 1v8, 2v7, 3v6 and 4v5 in each conference with the
// 7 and 8 slots filled by the play-in.
func GenerateFirstRound(b *models.PlayoffBracket) ([]models.PlayoffSeries, error) {
	if b == nil {
		return nil, ErrNilBracket
	}

	var out []models.PlayoffSeries
	for _, conf := range models.Conferences() {
		seven, eight, err := ResolvePlayIn(b, conf)
		if err != nil {
			return nil, err
		}
		slot := func(seed int) string {
			switch seed {
			case 7:
				return seven
			case 8:
				return eight
			}
			return teamAt(b, conf, seed)
		}
		for _, p := range firstRoundPairs {
			higher, lower := slot(p.higher), slot(p.lower)
			if higher == "" || lower == "" {
				return nil, fmt.Errorf("%w: %s seed %d or %d", ErrInvalidSeeds, conf, p.higher, p.lower)
			}
			out = append(out, models.NewSeries(SeriesID(b.SeasonID, conf, p.role), models.RoundFirst, p.role, conf,
				higher, p.higher, lower, p.lower, models.SeriesWinsNeeded))
		}
	}
	return out, nil
}

// GenerateConferenceSemis matches winner(1v8) against winner(4v5) and
// winner(2v7) against winner(3v6) by bracket position. Conferences with no
// first-round series are skipped.
func GenerateConferenceSemis(seasonID string, firstRound []models.PlayoffSeries) ([]models.PlayoffSeries, error) {
	var out []models.PlayoffSeries
	for _, conf := range models.Conferences() {
		if !hasConference(firstRound, conf) {
			continue
		}
		top, err := pairWinners(seasonID, firstRound, conf, models.RoundConfSemis, models.RoleSemisTop,
			models.RoleFirstOneEight, models.RoleFirstFourFive)
		if err != nil {
			return nil, err
		}
		bottom, err := pairWinners(seasonID, firstRound, conf, models.RoundConfSemis, models.RoleSemisBottom,
			models.RoleFirstTwoSeven, models.RoleFirstThreeSix)
		if err != nil {
			return nil, err
		}
		out = append(out, top, bottom)
	}
	if len(out) == 0 {
		return nil, ErrMissingSeries
	}
	return out, nil
}

// GenerateConferenceFinals matches the two semifinal winners of each conference
func GenerateConferenceFinals(seasonID string, semis []models.PlayoffSeries) ([]models.PlayoffSeries, error) {
	var out []models.PlayoffSeries
	for _, conf := range models.Conferences() {
		if !hasConference(semis, conf) {
			continue
		}
		final, err := pairWinners(seasonID, semis, conf, models.RoundConfFinals, models.RoleConfFinal,
			models.RoleSemisTop, models.RoleSemisBottom)
		if err != nil {
			return nil, err
		}
		out = append(out, final)
	}
	if len(out) == 0 {
		return nil, ErrMissingSeries
	}
	return out, nil
}

// GenerateFinals matches the conference champions. Home court goes to the
// better seed; equal seeds favour the first conference listed.
func GenerateFinals(seasonID string, confFinals []models.PlayoffSeries) (models.PlayoffSeries, error) {
	var champs []models.PlayoffSeries
	for _, conf := range models.Conferences() {
		s, ok := findRole(confFinals, conf, models.RoleConfFinal)
		if !ok {
			return models.PlayoffSeries{}, fmt.Errorf("%w: %s conference final", ErrMissingSeries, conf)
		}
		if !s.Complete {
			return models.PlayoffSeries{}, fmt.Errorf("%w: %s", ErrRoundIncomplete, s.ID)
		}
		champs = append(champs, s)
	}

	a, aSeed := winnerSeed(champs[0])
	b, bSeed := winnerSeed(champs[1])
	return matchup(SeriesID(seasonID, "", models.RoleFinals), models.RoundFinals, models.RoleFinals, "",
		a, aSeed, b, bSeed), nil
}

func hasConference(series []models.PlayoffSeries, conf models.Conference) bool {
	for _, s := range series {
		if s.Conference == conf {
			return true
		}
	}
	return false
}

func pairWinners(seasonID string, from []models.PlayoffSeries, conf models.Conference, round models.Round, role models.SeriesRole, roleA, roleB models.SeriesRole) (models.PlayoffSeries, error) {
	sa, okA := findRole(from, conf, roleA)
	sb, okB := findRole(from, conf, roleB)
	if !okA || !okB {
		return models.PlayoffSeries{}, fmt.Errorf("%w: %s %s/%s", ErrMissingSeries, conf, roleA, roleB)
	}
	if !sa.Complete || !sb.Complete {
		return models.PlayoffSeries{}, fmt.Errorf("%w: %s %s/%s", ErrRoundIncomplete, conf, roleA, roleB)
	}

	a, aSeed := winnerSeed(sa)
	b, bSeed := winnerSeed(sb)
	return matchup(SeriesID(seasonID, conf, role), round, role, conf, a, aSeed, b, bSeed), nil
}
