package engine

import "strings"

type SkillType string

const (
	SkillIntellect SkillType = "intellect"
	SkillScience   SkillType = "science"
	SkillLanguages SkillType = "languages"
	SkillArt       SkillType = "art"
	SkillPower     SkillType = "power"
	SkillEndurance SkillType = "endurance"
	SkillFinance   SkillType = "finance"
	SkillCraft     SkillType = "craft"
)

// AllSkills is the fixed skill order used for display and persistence.
var AllSkills = []SkillType{
	SkillIntellect,
	SkillScience,
	SkillLanguages,
	SkillArt,
	SkillPower,
	SkillEndurance,
	SkillFinance,
	SkillCraft,
}

func (s SkillType) IsValid() bool {
	switch s {
	case SkillIntellect, SkillScience, SkillLanguages, SkillArt,
		SkillPower, SkillEndurance, SkillFinance, SkillCraft:
		return true
	default:
		return false
	}
}

func (s SkillType) Title() string {
	if s == "" {
		return ""
	}
	return strings.ToUpper(string(s[:1])) + string(s[1:])
}

// ParseSkill resolves user input to a skill, accepting a few aliases.
// Unknown input returns ("", false); task tags are validated at entry time.
func ParseSkill(input string) (SkillType, bool) {
	switch strings.TrimSpace(strings.ToLower(input)) {
	case "intellect", "int", "mind":
		return SkillIntellect, true
	case "science", "sci":
		return SkillScience, true
	case "languages", "language", "lang":
		return SkillLanguages, true
	case "art":
		return SkillArt, true
	case "power", "str", "strength":
		return SkillPower, true
	case "endurance", "end":
		return SkillEndurance, true
	case "finance", "fin", "money":
		return SkillFinance, true
	case "craft":
		return SkillCraft, true
	default:
		return "", false
	}
}

type Rank int

const (
	RankF Rank = iota + 1
	RankE
	RankD
	RankC
	RankB
	RankA
	RankS
)

var rankNames = map[Rank]string{
	RankF: "F",
	RankE: "E",
	RankD: "D",
	RankC: "C",
	RankB: "B",
	RankA: "A",
	RankS: "S",
}

// rankExperience is the quest-experience threshold to leave each rank.
var rankExperience = map[Rank]int{
	RankF: 15,
	RankE: 35,
	RankD: 50,
	RankC: 70,
	RankB: 100,
	RankA: 120,
	RankS: 200,
}

func (r Rank) IsValid() bool {
	return r >= RankF && r <= RankS
}

func (r Rank) String() string {
	if name, ok := rankNames[r]; ok {
		return name
	}
	return "?"
}

// Experience returns the quest experience required to advance past the rank.
func (r Rank) Experience() int {
	return rankExperience[r]
}

// ParseRank maps a catalog rank letter to a Rank. Unknown input maps to RankF.
func ParseRank(s string) Rank {
	switch strings.TrimSpace(strings.ToUpper(s)) {
	case "F":
		return RankF
	case "E":
		return RankE
	case "D":
		return RankD
	case "C":
		return RankC
	case "B":
		return RankB
	case "A":
		return RankA
	case "S":
		return RankS
	default:
		return RankF
	}
}
