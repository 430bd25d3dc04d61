package engine

import (
	"sort"

	"github.com/google/uuid"

	"github.com/klimvill/RPG-task/internal/catalog"
	"github.com/klimvill/RPG-task/internal/storage"
)

// Load restores the three save aggregates from the store. Missing files
// leave the zero state in place. Saved quest state referencing unknown
// content is a catalog lookup failure and surfaces as a domain error.
func (s *Service) Load() error {
	tasks, err := s.store.LoadTasks()
	if err != nil {
		return err
	}
	if err := s.loadTasks(tasks); err != nil {
		return err
	}

	player, err := s.store.LoadPlayer()
	if err != nil {
		return err
	}
	s.loadPlayer(player)

	inv, err := s.store.LoadInventory()
	if err != nil {
		return err
	}
	s.loadInventory(inv)
	return nil
}

// Save checkpoints all three aggregates. Saves are explicit: a crash between
// a mutation and the next Save loses that session's progress.
func (s *Service) Save() error {
	return s.store.SaveAll(s.saveTasks(), s.savePlayer(), s.saveInventory())
}

func (s *Service) loadTasks(f storage.TasksFile) error {
	s.tasks = NewTaskList()
	for _, ut := range f.UserTasks {
		t := s.tasks.Add(ut.Text, parseSkillNames(ut.Skills))
		if id, err := uuid.Parse(ut.ID); err == nil {
			t.ID = id
		}
	}

	dailyPool := map[string]catalog.DailyDef{}
	for _, def := range s.items.Dailies() {
		dailyPool[def.ID] = def
	}

	s.daily = NewDailyBoard()
	s.daily.Done = f.Daily.Done
	s.daily.Date = f.Daily.Date
	for _, dt := range f.Daily.Tasks {
		switch {
		case dt.Text != "":
			s.daily.Tasks = append(s.daily.Tasks, &DailyTask{
				ID:     dt.ID,
				Text:   dt.Text,
				Skills: parseSkillNames(dt.Skills),
				Done:   dt.Done,
			})
		default:
			def, ok := dailyPool[dt.ID]
			if !ok {
				// Pool content that no longer exists is silently dropped;
				// migrating stale saves is not this layer's concern.
				continue
			}
			s.daily.Tasks = append(s.daily.Tasks, &DailyTask{
				ID:     def.ID,
				Text:   def.Text,
				Skills: parseSkillNames(def.Skills),
				Done:   dt.Done,
			})
		}
	}

	s.quests = NewQuestLog()
	ids := make([]string, 0, len(f.Quests))
	for id := range f.Quests {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	// The save format allows several quest states for forward compatibility;
	// only one quest may be active, so the first undone one wins.
	for _, id := range ids {
		st := f.Quests[id]
		if st.Done {
			continue
		}
		q, err := s.items.Quest(id)
		if err != nil {
			return err
		}
		s.quests.Restore(restoreQuestState(q, st))
		break
	}
	return nil
}

func restoreQuestState(q catalog.Quest, st storage.QuestState) *QuestState {
	qs := NewQuestState(q)
	if st.Done {
		qs.Done = true
		return qs
	}

	if _, ok := q.Stages[st.Stage]; ok {
		qs.enterStage(st.Stage)
	}
	qs.DoneStages = append(qs.DoneStages, st.DoneStages...)

	for i, gs := range st.Goals {
		if i >= len(qs.Goals) {
			break
		}
		goal := qs.Goals[i]
		goal.Damage = gs.Damage
		if goal.Def.Kind == catalog.GoalBoss {
			goal.Completed = goal.Damage >= goal.Def.HP
		} else {
			goal.Completed = gs.Completed
		}
	}
	return qs
}

func (s *Service) loadPlayer(f storage.PlayerFile) {
	s.player = NewPlayer()
	s.player.Name = f.Name
	if r := Rank(f.Rank); r.IsValid() {
		s.player.Rank = r
	}
	s.player.Experience = f.Experience
	s.player.Gold.Balance = f.Gold
	s.player.Shop = ShopRotation{
		Date:     f.Shop.Date,
		QuestIDs: f.Shop.Quests,
		ItemIDs:  f.Shop.Items,
	}

	for name, st := range f.Skills {
		if t, ok := ParseSkill(name); ok {
			skill := s.player.Skill(t)
			skill.Level = st.Level
			skill.Exp = st.Exp
		}
	}
}

func (s *Service) loadInventory(f storage.InventoryFile) {
	for i, slot := range f.Slots {
		if i >= len(s.inv.Slots) {
			break
		}
		if slot == nil {
			s.inv.Slots[i].Clear()
			continue
		}
		s.inv.Slots[i].ItemID = slot.ID
		s.inv.Slots[i].Amount = slot.Amount
	}
}

func (s *Service) saveTasks() storage.TasksFile {
	f := storage.TasksFile{Quests: map[string]storage.QuestState{}}

	for _, t := range s.tasks.All() {
		f.UserTasks = append(f.UserTasks, storage.UserTaskState{
			ID:     t.ID.String(),
			Text:   t.Text,
			Skills: skillNames(t.Skills),
		})
	}

	f.Daily = storage.DailyState{Done: s.daily.Done, Date: s.daily.Date}
	for _, t := range s.daily.Tasks {
		st := storage.DailyTaskState{ID: t.ID, Done: t.Done}
		if len(t.ID) > 5 && t.ID[:5] == "user_" {
			st.Text = t.Text
			st.Skills = skillNames(t.Skills)
		}
		f.Daily.Tasks = append(f.Daily.Tasks, st)
	}

	if active := s.quests.Active(); active != nil {
		st := storage.QuestState{
			Done:       active.Done,
			Stage:      active.StageID,
			DoneStages: active.DoneStages,
		}
		for _, g := range active.Goals {
			st.Goals = append(st.Goals, storage.GoalState{Completed: g.Completed, Damage: g.Damage})
		}
		f.Quests[active.Quest.ID] = st
	}
	return f
}

func (s *Service) savePlayer() storage.PlayerFile {
	f := storage.PlayerFile{
		Name:       s.player.Name,
		Rank:       int(s.player.Rank),
		Experience: s.player.Experience,
		Gold:       s.player.Gold.Balance,
		Skills:     map[string]storage.SkillState{},
		Shop: storage.ShopState{
			Date:   s.player.Shop.Date,
			Quests: s.player.Shop.QuestIDs,
			Items:  s.player.Shop.ItemIDs,
		},
	}
	for _, skill := range s.player.Skills() {
		f.Skills[string(skill.Type)] = storage.SkillState{Level: skill.Level, Exp: skill.Exp}
	}
	return f
}

func (s *Service) saveInventory() storage.InventoryFile {
	var f storage.InventoryFile
	for _, slot := range s.inv.Slots {
		if slot.Empty() {
			f.Slots = append(f.Slots, nil)
			continue
		}
		f.Slots = append(f.Slots, &storage.SlotState{ID: slot.ItemID, Amount: slot.Amount})
	}
	return f
}

func parseSkillNames(names []string) []SkillType {
	var out []SkillType
	for _, name := range names {
		if t, ok := ParseSkill(name); ok {
			out = append(out, t)
		}
	}
	return out
}

func skillNames(skills []SkillType) []string {
	var out []string
	for _, t := range skills {
		out = append(out, string(t))
	}
	return out
}
