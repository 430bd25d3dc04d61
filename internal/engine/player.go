package engine

// Skill is one of the eight fixed character attributes. Experience is
// accumulated through task rewards; levels are only bought in the skill shop.
type Skill struct {
	Type  SkillType
	Level int
	Exp   float64
}

func (s *Skill) AddExp(n float64) {
	s.Exp += n
}

// ReduceExp deducts experience, clamping at zero.
func (s *Skill) ReduceExp(n float64) {
	if s.Exp > n {
		s.Exp -= n
	} else {
		s.Exp = 0
	}
}

func (s *Skill) AddLevel() {
	s.Level++
}

// Gold is the player's balance. There is no debt: payments clamp at zero.
type Gold struct {
	Balance float64
}

func (g *Gold) Add(n float64) {
	g.Balance += n
}

// PayClamped deducts n from the balance, clamping at zero. The silent clamp
// is deliberate; callers that need the purchase to be affordable check the
// price first.
func (g *Gold) PayClamped(n float64) {
	if g.Balance > n {
		g.Balance -= n
	} else {
		g.Balance = 0
	}
}

// ShopRotation is the daily guild offer: quest and item ids stamped with the
// date they were drawn.
type ShopRotation struct {
	Date     string
	QuestIDs []string
	ItemIDs  []string
}

// Player owns the gold balance, the skill ledger and the guild profile.
type Player struct {
	Name       string
	Rank       Rank
	Experience int
	Gold       Gold
	Shop       ShopRotation

	skills map[SkillType]*Skill
}

func NewPlayer() *Player {
	p := &Player{
		Rank:   RankF,
		skills: make(map[SkillType]*Skill, len(AllSkills)),
	}
	for _, t := range AllSkills {
		p.skills[t] = &Skill{Type: t}
	}
	return p
}

// Skill returns the ledger entry for a skill type. The set of skills is
// fixed, so lookups for valid types never fail.
func (p *Player) Skill(t SkillType) *Skill {
	return p.skills[t]
}

// Skills returns the ledger in display order.
func (p *Player) Skills() []*Skill {
	out := make([]*Skill, 0, len(AllSkills))
	for _, t := range AllSkills {
		out = append(out, p.skills[t])
	}
	return out
}

// SumLevels is the aggregate power used by the gold level scale.
func (p *Player) SumLevels() int {
	sum := 0
	for _, s := range p.skills {
		sum += s.Level
	}
	return sum
}

// AddExperience records one quest completion. It reports whether the player
// ranked up. Experience saturates at the S-rank threshold.
func (p *Player) AddExperience() bool {
	maxExp := RankS.Experience()
	if p.Rank == RankS && p.Experience >= maxExp-1 {
		p.Experience = maxExp
		return false
	}

	p.Experience++
	if p.Experience == p.Rank.Experience() {
		p.Rank++
		return true
	}
	return false
}
