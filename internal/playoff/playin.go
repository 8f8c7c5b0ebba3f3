package playoff

import (
	"fmt"

	"github.com/KirkDiggler/hoopsim/internal/models"
)

// AddPlacementGames schedules the loser of 7v8 against the winner of 9v10 in
// every conference whose two opening games are final. Conferences that already
// have a placement game are left alone.
func AddPlacementGames(b *models.PlayoffBracket) (*models.PlayoffBracket, bool) {
	next := b
	added := false
	for _, conf := range models.Conferences() {
		if _, ok := findRole(next.PlayIn, conf, models.RolePlayInPlacement); ok {
			continue
		}
		sevenEight, ok1 := findRole(next.PlayIn, conf, models.RolePlayInSevenEight)
		nineTen, ok2 := findRole(next.PlayIn, conf, models.RolePlayInNineTen)
		if !ok1 || !ok2 || !sevenEight.Complete || !nineTen.Complete {
			continue
		}

		if !added {
			next = b.Clone()
			added = true
		}
		loser := sevenEight.LoserID()
		winner := nineTen.WinnerID()
		next.PlayIn = append(next.PlayIn, playInGame(b.SeasonID, conf, models.RolePlayInPlacement,
			loser, next.Seeds[loser], winner, next.Seeds[winner]))
	}
	return next, added
}

// ResolvePlayIn returns the teams that take the 7 and 8 seeds in a conference.
// The 7v8 winner is seed 7 and the placement winner is seed 8.
func ResolvePlayIn(b *models.PlayoffBracket, conf models.Conference) (seven, eight string, err error) {
	if b == nil {
		return "", "", ErrNilBracket
	}
	sevenEight, ok1 := findRole(b.PlayIn, conf, models.RolePlayInSevenEight)
	nineTen, ok2 := findRole(b.PlayIn, conf, models.RolePlayInNineTen)
	placement, ok3 := findRole(b.PlayIn, conf, models.RolePlayInPlacement)
	if !ok1 || !ok2 || !ok3 {
		return "", "", fmt.Errorf("%w: %s", ErrPlayInNotReady, conf)
	}
	if !sevenEight.Complete || !nineTen.Complete || !placement.Complete {
		return "", "", fmt.Errorf("%w: %s", ErrPlayInNotReady, conf)
	}

	seven = sevenEight.WinnerID()
	eight = placement.WinnerID()
	if seven == eight || seven == "" || eight == "" {
		return "", "", fmt.Errorf("%w: %s seeds 7 and 8 conflict", ErrPlayInNotReady, conf)
	}
	return seven, eight, nil
}
