package storage

// Serialized shapes of the three save aggregates. The engine maps its live
// state to and from these; the files on disk are plain indented JSON.

type UserTaskState struct {
	ID     string   `json:"id"`
	Text   string   `json:"text"`
	Skills []string `json:"skills,omitempty"`
}

// DailyTaskState references a pool template by id; user-authored daily
// tasks additionally inline their text and skill tags.
type DailyTaskState struct {
	ID     string   `json:"id"`
	Done   bool     `json:"done"`
	Text   string   `json:"text,omitempty"`
	Skills []string `json:"skills,omitempty"`
}

type DailyState struct {
	Tasks []DailyTaskState `json:"tasks"`
	Done  bool             `json:"done"`
	Date  string           `json:"date"`
}

type GoalState struct {
	Completed bool `json:"completed"`
	Damage    int  `json:"damage,omitempty"`
}

type QuestState struct {
	Done       bool        `json:"done"`
	Stage      int         `json:"stage,omitempty"`
	DoneStages []int       `json:"done_stages,omitempty"`
	Goals      []GoalState `json:"goals,omitempty"`
}

// TasksFile is the tasks.json aggregate: user tasks, the daily batch and
// quest progress keyed by quest id.
type TasksFile struct {
	UserTasks []UserTaskState       `json:"user_tasks"`
	Daily     DailyState            `json:"daily_tasks"`
	Quests    map[string]QuestState `json:"quests"`
}

type SkillState struct {
	Level int     `json:"level"`
	Exp   float64 `json:"exp"`
}

type ShopState struct {
	Date   string   `json:"date"`
	Quests []string `json:"quests"`
	Items  []string `json:"items"`
}

// PlayerFile is the player.json aggregate.
type PlayerFile struct {
	Name       string                `json:"name"`
	Rank       int                   `json:"rank"`
	Experience int                   `json:"experience"`
	Gold       float64               `json:"gold"`
	Skills     map[string]SkillState `json:"skills"`
	Shop       ShopState             `json:"shop"`
}

type SlotState struct {
	ID     string `json:"id"`
	Amount int    `json:"amount"`
}

// InventoryFile is the inventory.json aggregate: one entry per slot in
// layout order, nil for empty slots.
type InventoryFile struct {
	Slots []*SlotState `json:"slots"`
}
