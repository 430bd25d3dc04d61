package engine

import (
	"time"

	"github.com/google/uuid"

	"github.com/klimvill/RPG-task/internal/catalog"
	"github.com/klimvill/RPG-task/internal/inventory"
	"github.com/klimvill/RPG-task/internal/storage"
)

// Service orchestrates the progression flows: it pulls task batches from the
// ledgers and the quest log, resolves rewards, and commits the deltas to the
// player, the inventory and the store.
type Service struct {
	store  *storage.FileStore
	items  *catalog.Registry
	bal    Balance
	roller Roller

	player *Player
	inv    *inventory.Inventory
	tasks  *TaskList
	daily  *DailyBoard
	quests *QuestLog
	calc   *Calculator

	now func() time.Time
}

func NewService(store *storage.FileStore, items *catalog.Registry, roller Roller, bal Balance) *Service {
	inv := inventory.New(items)
	return &Service{
		store:  store,
		items:  items,
		bal:    bal,
		roller: roller,
		player: NewPlayer(),
		inv:    inv,
		tasks:  NewTaskList(),
		daily:  NewDailyBoard(),
		quests: NewQuestLog(),
		calc:   NewCalculator(bal, roller, items, inv),
		now:    time.Now,
	}
}

func (s *Service) Player() *Player                 { return s.player }
func (s *Service) Inventory() *inventory.Inventory { return s.inv }
func (s *Service) Tasks() *TaskList                { return s.tasks }
func (s *Service) Daily() *DailyBoard              { return s.daily }
func (s *Service) Quests() *QuestLog               { return s.quests }
func (s *Service) Catalog() *catalog.Registry      { return s.items }
func (s *Service) Balance() Balance                { return s.bal }

// Today returns the current calendar date in save-file format.
func (s *Service) Today() string {
	return s.now().Format("2006-01-02")
}

// AddUserTask appends a plain task to the user list.
func (s *Service) AddUserTask(text string, skills []SkillType) *Task {
	if len(skills) > s.bal.MaxTaskSkills {
		skills = skills[:s.bal.MaxTaskSkills]
	}
	return s.tasks.Add(text, skills)
}

// AddDailyTask appends a user-authored task to today's daily batch.
func (s *Service) AddDailyTask(text string, skills []SkillType) *DailyTask {
	if len(skills) > s.bal.MaxTaskSkills {
		skills = skills[:s.bal.MaxTaskSkills]
	}
	t := &DailyTask{ID: "user_" + uuid.NewString(), Text: text, Skills: skills}
	s.daily.Tasks = append(s.daily.Tasks, t)
	return t
}

// StartQuest activates a quest by id. It fails while another quest is
// active and on unknown ids.
func (s *Service) StartQuest(id string) error {
	q, err := s.items.Quest(id)
	if err != nil {
		return err
	}
	return s.quests.Start(q)
}

// selection splits a combined 1-based numbering over the three ledgers:
// user tasks first, then the daily batch, then the active stage's goals.
type selection struct {
	user  []int
	daily []int
	goals []int
}

// resolveSelection filters and routes raw numbers. Out-of-range tokens are
// dropped silently; they are user input, not API misuse.
func (s *Service) resolveSelection(nums []int, includeGoals bool) selection {
	userCount := s.tasks.Len()
	dailyCount := s.daily.Len()
	goalCount := 0
	if includeGoals && s.quests.Launched() && !s.quests.IsDone() {
		goalCount = len(s.quests.Active().Goals)
	}

	seen := map[int]bool{}
	var sel selection
	for _, n := range nums {
		if n < 1 || seen[n] {
			continue
		}
		seen[n] = true

		switch {
		case n <= userCount:
			sel.user = append(sel.user, n)
		case n <= userCount+dailyCount:
			sel.daily = append(sel.daily, n-userCount)
		case n <= userCount+dailyCount+goalCount:
			sel.goals = append(sel.goals, n-userCount-dailyCount)
		}
	}
	return sel
}
