package engine

// Balance holds every tuned gameplay constant so tests can override them.
type Balance struct {
	// priceForLevel(L) = coef * L^pow for levels >= 2, rounded to 2 decimals.
	SkillExpCoef  float64
	SkillExpPow   float64
	SkillGoldCoef float64
	SkillGoldPow  float64

	// Reward roll bounds.
	RollMin float64
	RollMax float64

	// Gold bonus for tasks without skill tags; they pay no experience.
	NoSkillGoldMult float64

	// Experience bonus for daily tasks, rewarding routine consistency.
	DailyExpMult float64

	// Gold paid once when the whole daily batch is finished.
	DailyAllDoneMult float64

	// Divisor and floor for the sum-of-levels gold scale.
	LevelSumDivisor float64

	// Item drop chances per completed task.
	UserDropChance  float64
	DailyDropChance float64

	// Rarity tier weights, in catalog.Tiers order. Must sum to 1.
	TierWeights [3]float64

	DailyBatchSize int
	QuestShopSize  int
	ItemShopSize   int
	MaxTaskSkills  int
}

func DefaultBalance() Balance {
	return Balance{
		SkillExpCoef:  0.3,
		SkillExpPow:   2,
		SkillGoldCoef: 0.1,
		SkillGoldPow:  2,

		RollMin: 0.01,
		RollMax: 0.05,

		NoSkillGoldMult:  2,
		DailyExpMult:     1.2,
		DailyAllDoneMult: 2,
		LevelSumDivisor:  3,

		UserDropChance:  0.01,
		DailyDropChance: 0.02,
		TierWeights:     [3]float64{0.70, 0.25, 0.05},

		DailyBatchSize: 3,
		QuestShopSize:  10,
		ItemShopSize:   10,
		MaxTaskSkills:  3,
	}
}
