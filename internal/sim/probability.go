package sim

import "github.com/KirkDiggler/hoopsim/internal/models"

// All chances are percentages in [0, 100]. Position and role factors are applied
// to the base value before the final clamp.

const (
	StealMin, StealMax               = 2.0, 15.0
	TurnoverMin, TurnoverMax         = 3.0, 20.0
	ThreeAttemptMin, ThreeAttemptMax = 5.0, 50.0
	PostAttemptMin, PostAttemptMax   = 5.0, 60.0
	FoulMin, FoulMax                 = 8.0, 20.0
	FreeThrowMin, FreeThrowMax       = 60.0, 90.0
	BlockMin, BlockMax               = 3.0, 18.0
	ShotMin, ShotMax                 = 20.0, 70.0
	AssistMin, AssistMax             = 0.0, 100.0
	OffReboundMin, OffReboundMax     = 15.0, 40.0
	ThreeBlockGate                   = 2.0
)

// ShotKind classifies a field goal attempt
type ShotKind int

const (
	ShotRegular ShotKind = iota
	ShotPost
	ShotThree
)

// Points is the value of a made shot of this kind
func (k ShotKind) Points() int {
	if k == ShotThree {
		return 3
	}
	return 2
}

// Clamp bounds v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func StealChance(stealer, handler models.Player) float64 {
	base := 8 + float64(stealer.Attributes.Steals)*0.05 - float64(handler.Attributes.BallHandling)*0.04
	return Clamp(base*stealer.ModifierFor(models.ModifierSteal), StealMin, StealMax)
}

func TurnoverChance(handler models.Player) float64 {
	return Clamp(15-float64(handler.Attributes.BallHandling)*0.10, TurnoverMin, TurnoverMax)
}

func ThreeAttemptChance(shooter models.Player) float64 {
	base := 15 + float64(shooter.Attributes.ThreePoint)*0.2
	return Clamp(base*shooter.ModifierFor(models.ModifierThreeTendency), ThreeAttemptMin, ThreeAttemptMax)
}

func PostAttemptChance(shooter models.Player) float64 {
	base := 10 + float64(shooter.Attributes.PostShooting)*0.3
	return Clamp(base*shooter.ModifierFor(models.ModifierPostTendency), PostAttemptMin, PostAttemptMax)
}

func FoulChance(fouler models.Player) float64 {
	return Clamp(12+float64(fouler.Attributes.Defense)*0.03, FoulMin, FoulMax)
}

// FreeThrowChance gives bigs a small bonus from their post touch
func FreeThrowChance(shooter models.Player) float64 {
	v := 70 + float64(shooter.Attributes.Shooting)*0.15
	if shooter.Position.IsBig() {
		v += float64(shooter.Attributes.PostShooting) * 0.05
	}
	return Clamp(v, FreeThrowMin, FreeThrowMax)
}

func BlockChance(blocker models.Player) float64 {
	base := 6 + float64(blocker.Attributes.Blocks)*0.08
	return Clamp(base*blocker.ModifierFor(models.ModifierBlock), BlockMin, BlockMax)
}

// ShotChance is the make probability against a defense averaging avgDefense
func ShotChance(kind ShotKind, shooter models.Player, avgDefense float64) float64 {
	a := shooter.Attributes
	var v float64
	switch kind {
	case ShotThree:
		v = 35 + float64(a.ThreePoint)*0.10 - avgDefense*0.05
	case ShotPost:
		v = 50 + float64(a.PostShooting)*0.20 - avgDefense*0.08
	default:
		v = 45 + float64(a.Shooting)*0.15 - avgDefense*0.07
	}
	return Clamp(v, ShotMin, ShotMax)
}

func AssistChance(passer models.Player) float64 {
	base := 50 + float64(passer.Attributes.Passing)*0.20
	return Clamp(base*passer.ModifierFor(models.ModifierAssist), AssistMin, AssistMax)
}

func OffensiveReboundChance(offAvgRebounding, defAvgRebounding float64) float64 {
	return Clamp(25+offAvgRebounding*0.15-defAvgRebounding*0.10, OffReboundMin, OffReboundMax)
}
