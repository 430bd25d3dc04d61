package catalog

// Static game content: items, quests and the daily task pool. Everything in
// this package is immutable after load; mutable progress lives in the engine.

type Rarity string

const (
	TierOne   Rarity = "one"
	TierTwo   Rarity = "two"
	TierThree Rarity = "three"
)

func (r Rarity) IsValid() bool {
	switch r {
	case TierOne, TierTwo, TierThree:
		return true
	default:
		return false
	}
}

// Tiers is the fixed rarity order used by drop rolls and shop rotation.
var Tiers = []Rarity{TierOne, TierTwo, TierThree}

type ItemType string

const (
	TypeGeneric     ItemType = "item"
	TypeHelmet      ItemType = "helmet"
	TypeBreastplate ItemType = "breastplate"
	TypeLeggings    ItemType = "leggings"
	TypeBoots       ItemType = "boots"
	TypeWeapon      ItemType = "weapon"
	TypeRing        ItemType = "ring"
	TypeAmulet      ItemType = "amulet"
)

func (t ItemType) Wearable() bool {
	return t != TypeGeneric && t != ""
}

type Item struct {
	ID          string   `yaml:"id"`
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Type        ItemType `yaml:"type"`
	Stack       int      `yaml:"stack"`

	// Effects maps a skill name to a multiplicative experience bonus.
	// 1.03 means +3% to that skill while the item is equipped.
	Effects map[string]float64 `yaml:"effects"`

	Cost     float64 `yaml:"cost"`
	Sell     float64 `yaml:"sell"`
	Sellable bool    `yaml:"sellable"`

	tier Rarity
}

// Tier reports the rarity tier the item was loaded under.
func (i Item) Tier() Rarity { return i.tier }

type GoalKind string

const (
	GoalPlain GoalKind = "plain"
	GoalBoss  GoalKind = "boss"
)

// GoalDef is one goal template inside a quest stage. Boss goals carry HP and
// are completed by damage accumulation instead of a single toggle.
type GoalDef struct {
	Kind        GoalKind `yaml:"kind"`
	Text        string   `yaml:"text"`
	Description string   `yaml:"description"`
	HP          int      `yaml:"hp"`
}

// Directive tells the state machine what happens once every goal in a stage
// is complete: jump to another stage, or finish the quest.
type Directive struct {
	End   bool `yaml:"end"`
	Stage int  `yaml:"stage"`
}

type Stage struct {
	Name  string    `yaml:"name"`
	Goals []GoalDef `yaml:"goals"`
	Next  Directive `yaml:"next"`
}

type QuestReward struct {
	Gold  float64  `yaml:"gold"`
	Items []string `yaml:"items"`
}

type Quest struct {
	ID          string        `yaml:"id"`
	Name        string        `yaml:"name"`
	Description string        `yaml:"description"`
	Rank        string        `yaml:"rank"`
	InGuild     bool          `yaml:"in_guild"`
	Start       int           `yaml:"start"`
	Stages      map[int]Stage `yaml:"stages"`
	Reward      QuestReward   `yaml:"reward"`
}

// DailyDef is a daily-task template from the daily pool.
type DailyDef struct {
	ID     string   `yaml:"id"`
	Text   string   `yaml:"text"`
	Skills []string `yaml:"skills"`
}
