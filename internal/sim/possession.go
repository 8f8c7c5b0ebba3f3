package sim

import (
	"github.com/KirkDiggler/hoopsim/internal/dice"
	"github.com/KirkDiggler/hoopsim/internal/models"
)

// Lineup is the five players on the floor, indexed by position slot
type Lineup [models.NumPositions]*models.Player

// Players returns the lineup as a slice in slot order
func (l Lineup) Players() []*models.Player {
	out := make([]*models.Player, 0, models.NumPositions)
	for _, p := range l {
		if p != nil {
			out = append(out, p)
		}
	}
	return out
}

// Contains reports whether the player is on the floor in any slot
func (l Lineup) Contains(playerID string) bool {
	for _, p := range l {
		if p != nil && p.ID == playerID {
			return true
		}
	}
	return false
}

func (l Lineup) average(attr func(models.Attributes) int) float64 {
	players := l.Players()
	if len(players) == 0 {
		return 0
	}
	var total int
	for _, p := range players {
		total += attr(p.Attributes)
	}
	return float64(total) / float64(len(players))
}

// Outcome is how a possession ended
type Outcome int

const (
	OutcomeSteal Outcome = iota
	OutcomeTurnover
	OutcomeFoul
	OutcomeBlock
	OutcomeMade
	OutcomeMissed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSteal:
		return "steal"
	case OutcomeTurnover:
		return "turnover"
	case OutcomeFoul:
		return "foul"
	case OutcomeBlock:
		return "block"
	case OutcomeMade:
		return "made"
	case OutcomeMissed:
		return "missed"
	}
	return "unknown"
}

// PossessionResult is what one possession produced
type PossessionResult struct {
	// Points scored by the offense, free throws included
	Points int

	// Retained is true when the offense rebounded its own miss
	Retained bool

	Outcome Outcome
	Shot    ShotKind
}

func shootingWeight(p *models.Player) float64 {
	return float64(p.Attributes.Shooting + p.Attributes.ThreePoint)
}

func reboundWeight(p *models.Player) float64 {
	return float64(p.Attributes.Rebounding) * p.ModifierFor(models.ModifierRebound)
}

// ResolvePossession plays one offensive opportunity and records it in the box score
func ResolvePossession(offense, defense Lineup, box *BoxScore, rng dice.Roller) PossessionResult {
	off := offense.Players()
	def := defense.Players()

	handler, _ := SelectWeighted(rng, off, shootingWeight)

	stealer, _ := SelectWeighted(rng, def, func(p *models.Player) float64 { return float64(p.Attributes.Steals) })
	if rng.Chance(StealChance(*stealer, *handler)) {
		box.Line(handler.ID).Turnovers++
		box.Line(stealer.ID).Steals++
		return PossessionResult{Outcome: OutcomeSteal}
	}

	if rng.Chance(TurnoverChance(*handler)) {
		box.Line(handler.ID).Turnovers++
		return PossessionResult{Outcome: OutcomeTurnover}
	}

	shooter, _ := SelectWeighted(rng, off, shootingWeight)
	kind := chooseShot(*shooter, rng)

	fouler, _ := SelectWeighted(rng, def, func(p *models.Player) float64 { return float64(p.Attributes.Defense) })
	if rng.Chance(FoulChance(*fouler)) {
		return shootFreeThrows(shooter, fouler, kind, box, rng)
	}

	if kind != ShotThree || rng.Chance(ThreeBlockGate) {
		blocker, _ := SelectWeighted(rng, def, func(p *models.Player) float64 { return float64(p.Attributes.Blocks) })
		if rng.Chance(BlockChance(*blocker)) {
			box.Line(blocker.ID).Blocks++
			recordAttempt(box.Line(shooter.ID), kind, false)
			retained := resolveRebound(offense, defense, box, rng)
			return PossessionResult{Outcome: OutcomeBlock, Shot: kind, Retained: retained}
		}
	}

	avgDefense := defense.average(func(a models.Attributes) int { return a.Defense })
	if !rng.Chance(ShotChance(kind, *shooter, avgDefense)) {
		recordAttempt(box.Line(shooter.ID), kind, false)
		retained := resolveRebound(offense, defense, box, rng)
		return PossessionResult{Outcome: OutcomeMissed, Shot: kind, Retained: retained}
	}

	line := box.Line(shooter.ID)
	recordAttempt(line, kind, true)
	line.Points += kind.Points()
	rollAssist(off, shooter, box, rng)

	return PossessionResult{Outcome: OutcomeMade, Shot: kind, Points: kind.Points()}
}

func chooseShot(shooter models.Player, rng dice.Roller) ShotKind {
	if rng.Chance(ThreeAttemptChance(shooter)) {
		return ShotThree
	}
	if rng.Chance(PostAttemptChance(shooter)) {
		return ShotPost
	}
	return ShotRegular
}

func recordAttempt(line *models.PlayerGameStats, kind ShotKind, made bool) {
	line.FieldGoalsAtt++
	if kind == ShotThree {
		line.ThreesAtt++
	}
	if !made {
		return
	}
	line.FieldGoalsMade++
	if kind == ShotThree {
		line.ThreesMade++
	}
}

func shootFreeThrows(shooter, fouler *models.Player, kind ShotKind, box *BoxScore, rng dice.Roller) PossessionResult {
	box.Line(fouler.ID).Fouls++

	attempts := 2
	if kind == ShotThree {
		attempts = 3
	}
	line := box.Line(shooter.ID)
	chance := FreeThrowChance(*shooter)
	made := 0
	for i := 0; i < attempts; i++ {
		line.FreeThrowsAtt++
		if rng.Chance(chance) {
			line.FreeThrowsMade++
			made++
		}
	}
	line.Points += made

	return PossessionResult{Outcome: OutcomeFoul, Shot: kind, Points: made}
}

func rollAssist(offense []*models.Player, shooter *models.Player, box *BoxScore, rng dice.Roller) {
	candidates := make([]*models.Player, 0, len(offense)-1)
	for _, p := range offense {
		if p.ID != shooter.ID {
			candidates = append(candidates, p)
		}
	}
	passer, ok := SelectWeighted(rng, candidates, func(p *models.Player) float64 { return float64(p.Attributes.Passing) })
	if !ok {
		return
	}
	if rng.Chance(AssistChance(*passer)) {
		box.Line(passer.ID).Assists++
	}
}

// resolveRebound returns true when the offense keeps the ball
func resolveRebound(offense, defense Lineup, box *BoxScore, rng dice.Roller) bool {
	rebounding := func(a models.Attributes) int { return a.Rebounding }
	chance := OffensiveReboundChance(offense.average(rebounding), defense.average(rebounding))

	if rng.Chance(chance) {
		rebounder, _ := SelectWeighted(rng, offense.Players(), reboundWeight)
		box.Line(rebounder.ID).OffensiveRebounds++
		return true
	}

	rebounder, _ := SelectWeighted(rng, defense.Players(), reboundWeight)
	box.Line(rebounder.ID).DefensiveRebounds++
	return false
}
