package engine

import (
	"github.com/klimvill/RPG-task/internal/catalog"
)

// BonusSource supplies the multiplicative experience bonus of equipped items
// for a skill. A source with no effects returns the neutral 1.0.
type BonusSource interface {
	SkillBonus(skill string) float64
}

// neutralBonus is used when no inventory is wired in.
type neutralBonus struct{}

func (neutralBonus) SkillBonus(string) float64 { return 1.0 }

// TaskRef is one completed (or punished) task fed into the calculator:
// its skill tags and whether it came from the daily board.
type TaskRef struct {
	Skills []SkillType
	Daily  bool
}

// Reward is the outcome of resolving a task batch.
type Reward struct {
	Gold  float64
	Exp   map[SkillType]float64
	Items []catalog.Item
}

// Calculator resolves gold, experience and item drops for task batches.
// Punishments reuse the same math with includeItems=false, so punishment
// severity always matches reward severity.
type Calculator struct {
	bal    Balance
	roller Roller
	items  *catalog.Registry
	bonus  BonusSource
}

func NewCalculator(bal Balance, roller Roller, items *catalog.Registry, bonus BonusSource) *Calculator {
	if bonus == nil {
		bonus = neutralBonus{}
	}
	return &Calculator{bal: bal, roller: roller, items: items, bonus: bonus}
}

// Resolve computes the batch outcome. An empty batch yields a zero reward.
// Experience for the same skill accumulates additively across the batch.
func (c *Calculator) Resolve(p *Player, tasks []TaskRef, includeItems bool) Reward {
	out := Reward{Exp: map[SkillType]float64{}}
	if len(tasks) == 0 {
		return out
	}

	scale := c.bal.LevelScale(p.SumLevels())

	for _, task := range tasks {
		if len(task.Skills) == 0 {
			out.Gold += c.bal.Roll(c.roller) * scale * c.bal.NoSkillGoldMult
		} else {
			out.Gold += c.bal.Roll(c.roller) * scale

			for _, st := range task.Skills {
				skill := p.Skill(st)
				level := skill.Level
				if level < 1 {
					level = 1
				}

				exp := c.bal.Roll(c.roller) * float64(level) * c.bonus.SkillBonus(string(st))
				if task.Daily {
					exp *= c.bal.DailyExpMult
				}
				out.Exp[st] += exp
			}
		}

		if includeItems {
			if item, ok := c.rollDrop(task.Daily); ok {
				out.Items = append(out.Items, item)
			}
		}
	}

	return out
}

// DailyBonus is the one-time gold payout for finishing the whole daily batch.
func (c *Calculator) DailyBonus(p *Player) float64 {
	scale := c.bal.LevelScale(p.SumLevels())
	return c.bal.Roll(c.roller) * scale * c.bal.DailyAllDoneMult
}

// rollDrop performs the weighted drop flip for one task, then picks a rarity
// tier and a uniform item within it.
func (c *Calculator) rollDrop(daily bool) (catalog.Item, bool) {
	chance := c.bal.UserDropChance
	if daily {
		chance = c.bal.DailyDropChance
	}
	if c.roller.Uniform(0, 1) >= chance {
		return catalog.Item{}, false
	}

	tier := c.rollTier()
	ids := c.items.TierItems(tier)
	if len(ids) == 0 {
		return catalog.Item{}, false
	}

	idx := int(c.roller.Uniform(0, float64(len(ids))))
	if idx >= len(ids) {
		idx = len(ids) - 1
	}
	item, err := c.items.Item(ids[idx])
	if err != nil {
		return catalog.Item{}, false
	}
	return item, true
}

func (c *Calculator) rollTier() catalog.Rarity {
	u := c.roller.Uniform(0, 1)
	acc := 0.0
	for i, tier := range catalog.Tiers {
		acc += c.bal.TierWeights[i]
		if u < acc {
			return tier
		}
	}
	return catalog.Tiers[len(catalog.Tiers)-1]
}
