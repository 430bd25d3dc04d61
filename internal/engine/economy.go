package engine

import (
	"math"
	"math/rand"
	"time"
)

// Roller is the single source of randomness for reward resolution. Tests
// inject deterministic rollers instead of depending on wall-clock seeding.
type Roller interface {
	Uniform(min, max float64) float64
}

type randRoller struct {
	rnd *rand.Rand
}

// NewRoller returns the production roller, seeded from the clock.
func NewRoller() Roller {
	return &randRoller{rnd: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

func (r *randRoller) Uniform(min, max float64) float64 {
	return min + r.rnd.Float64()*(max-min)
}

// Roll draws one reward roll within the configured bounds.
func (b Balance) Roll(r Roller) float64 {
	return r.Uniform(b.RollMin, b.RollMax)
}

// PriceForLevel returns the experience and gold required to buy the next
// skill level from the given one. The curve is convex: every level costs
// strictly more than the last in both resources.
func (b Balance) PriceForLevel(level int) (exp, gold float64) {
	switch {
	case level <= 0:
		return 0.25, 0.1
	case level == 1:
		return 0.5, 0.25
	default:
		l := float64(level)
		exp = round2(b.SkillExpCoef * math.Pow(l, b.SkillExpPow))
		gold = round2(b.SkillGoldCoef * math.Pow(l, b.SkillGoldPow))
		return exp, gold
	}
}

// LevelScale is the gold multiplier derived from the sum of all skill
// levels, floored at the divisor so a fresh character earns baseline gold.
func (b Balance) LevelScale(sumLevels int) float64 {
	sum := float64(sumLevels)
	if sum < b.LevelSumDivisor {
		sum = b.LevelSumDivisor
	}
	return sum / b.LevelSumDivisor
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
