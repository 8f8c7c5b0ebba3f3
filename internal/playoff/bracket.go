// Package playoff advances a postseason bracket. Every function is a pure
// transformation of a bracket value; nothing here stores or simulates on its own.
package playoff

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/hoopsim/internal/models"
)

// SeedsPerConference is the number of teams each conference sends to the postseason
const SeedsPerConference = 10

// SeriesID derives a stable identifier from the bracket position, so
// regenerating a round yields the same IDs.
func SeriesID(seasonID string, conf models.Conference, role models.SeriesRole) string {
	if conf == "" {
		return fmt.Sprintf("%s-%s", seasonID, role)
	}
	return fmt.Sprintf("%s-%s-%s", seasonID, strings.ToLower(string(conf)), role)
}

// NewBracket seeds a bracket and schedules the four opening play-in games.
// seeds lists each conference's teams from seed 1 to seed 10.
func NewBracket(seasonID string, seeds map[models.Conference][]string) (*models.PlayoffBracket, error) {
	b := &models.PlayoffBracket{
		SeasonID:     seasonID,
		Seeds:        make(map[string]int),
		Conferences:  make(map[string]models.Conference),
		CurrentRound: models.RoundPlayIn,
	}

	for _, conf := range models.Conferences() {
		teams := seeds[conf]
		if len(teams) != SeedsPerConference {
			return nil, fmt.Errorf("%w: %s has %d", ErrInvalidSeeds, conf, len(teams))
		}
		for i, id := range teams {
			if id == "" {
				return nil, fmt.Errorf("%w: %s seed %d is empty", ErrInvalidSeeds, conf, i+1)
			}
			if _, dup := b.Seeds[id]; dup {
				return nil, fmt.Errorf("%w: %s seeded twice", ErrInvalidSeeds, id)
			}
			b.Seeds[id] = i + 1
			b.Conferences[id] = conf
		}

		b.PlayIn = append(b.PlayIn,
			playInGame(seasonID, conf, models.RolePlayInSevenEight, teams[6], 7, teams[7], 8),
			playInGame(seasonID, conf, models.RolePlayInNineTen, teams[8], 9, teams[9], 10),
		)
	}

	return b, nil
}

func playInGame(seasonID string, conf models.Conference, role models.SeriesRole, higher string, higherSeed int, lower string, lowerSeed int) models.PlayoffSeries {
	return models.NewSeries(SeriesID(seasonID, conf, role), models.RoundPlayIn, role, conf,
		higher, higherSeed, lower, lowerSeed, models.PlayInWinsNeeded)
}

// teamAt returns the team holding a regular-season seed in a conference
func teamAt(b *models.PlayoffBracket, conf models.Conference, seed int) string {
	for id, s := range b.Seeds {
		if s == seed && b.Conferences[id] == conf {
			return id
		}
	}
	return ""
}

// findRole returns the series with the given role and conference
func findRole(series []models.PlayoffSeries, conf models.Conference, role models.SeriesRole) (models.PlayoffSeries, bool) {
	for _, s := range series {
		if s.Role == role && s.Conference == conf {
			return s, true
		}
	}
	return models.PlayoffSeries{}, false
}

// winnerSeed returns the winning team of a complete series and the bracket seed it carried
func winnerSeed(s models.PlayoffSeries) (string, int) {
	if s.WinnerID() == s.HigherSeedTeamID {
		return s.HigherSeedTeamID, s.HigherSeed
	}
	return s.LowerSeedTeamID, s.LowerSeed
}

// matchup orders two teams so the better (lower) seed holds home court. Equal
// seeds keep argument order.
func matchup(id string, round models.Round, role models.SeriesRole, conf models.Conference, a string, aSeed int, b string, bSeed int) models.PlayoffSeries {
	if bSeed < aSeed {
		a, aSeed, b, bSeed = b, bSeed, a, aSeed
	}
	return models.NewSeries(id, round, role, conf, a, aSeed, b, bSeed, models.SeriesWinsNeeded)
}
