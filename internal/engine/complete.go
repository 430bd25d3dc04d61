package engine

import (
	"github.com/klimvill/RPG-task/internal/catalog"
)

// CompleteResult summarizes one completion batch for the UI layer.
type CompleteResult struct {
	Completed []string

	Gold       float64
	Exp        map[SkillType]float64
	Items      []catalog.Item
	DailyBonus float64

	QuestDone  bool
	QuestName  string
	QuestGold  float64
	QuestItems []catalog.Item
	RankUp     bool
	Rank       Rank

	// Overflow counts items that did not fit the inventory and were sold
	// automatically; OverflowGold is the credit for them.
	Overflow     int
	OverflowGold float64
}

// CompleteTasks resolves a combined selection of user tasks, daily tasks and
// quest goals, dispatches rewards and commits all deltas to the player.
func (s *Service) CompleteTasks(nums []int) (*CompleteResult, error) {
	res := &CompleteResult{Exp: map[SkillType]float64{}}
	sel := s.resolveSelection(nums, true)

	// Resolve user positions to stable handles before anything mutates.
	userIDs, err := s.tasks.Resolve(sel.user)
	if err != nil {
		return nil, err
	}

	refs := make([]TaskRef, 0, len(sel.user)+len(sel.daily))
	for _, pos := range sel.user {
		t, err := s.tasks.Get(pos)
		if err != nil {
			return nil, err
		}
		refs = append(refs, TaskRef{Skills: t.Skills})
		res.Completed = append(res.Completed, t.Text)
	}

	// Daily tasks already done (or a finished batch) earn nothing twice.
	var dailyPending []int
	for _, pos := range sel.daily {
		t, err := s.daily.Get(pos)
		if err != nil {
			return nil, err
		}
		if s.daily.Done || t.Done {
			continue
		}
		dailyPending = append(dailyPending, pos)
		refs = append(refs, TaskRef{Skills: t.Skills, Daily: true})
		res.Completed = append(res.Completed, t.Text)
	}

	reward := s.calc.Resolve(s.player, refs, true)
	res.Gold = reward.Gold
	res.Exp = reward.Exp
	res.Items = reward.Items

	s.tasks.Remove(userIDs)

	latched := false
	for _, pos := range dailyPending {
		lat, err := s.daily.Complete(pos)
		if err != nil {
			return nil, err
		}
		latched = latched || lat
	}
	if latched {
		res.DailyBonus = s.calc.DailyBonus(s.player)
	}

	// Every finished non-quest task chips one point of damage off an active
	// boss stage.
	s.quests.AddDamage(len(sel.user) + len(dailyPending))

	// Goal positions refer to the stage the selection was rendered from;
	// stop applying them if the stage resolves mid-batch.
	if active := s.quests.Active(); active != nil && len(sel.goals) > 0 {
		stageBefore := active.StageID
		for _, pos := range sel.goals {
			if active.Done || active.StageID != stageBefore {
				break
			}
			if err := active.Complete(pos); err != nil {
				return nil, err
			}
		}
	}

	if s.quests.IsDone() {
		res.QuestName = s.quests.Active().Quest.Name
		questReward, claimed := s.quests.Claim()
		if claimed {
			res.QuestDone = true
			res.QuestGold = questReward.Gold
			for _, id := range questReward.Items {
				item, err := s.items.Item(id)
				if err != nil {
					return nil, err
				}
				res.QuestItems = append(res.QuestItems, item)
			}
			res.RankUp = s.player.AddExperience()
			if res.RankUp {
				s.refreshShop(s.Today())
			}
		}
	}
	res.Rank = s.player.Rank

	s.player.Gold.Add(res.Gold + res.DailyBonus + res.QuestGold)
	for skill, exp := range res.Exp {
		s.player.Skill(skill).AddExp(exp)
	}

	for _, item := range append(append([]catalog.Item{}, res.Items...), res.QuestItems...) {
		if left := s.inv.Take(item, 1); left > 0 {
			res.Overflow += left
			res.OverflowGold += item.Sell * float64(left)
		}
	}
	s.player.Gold.Add(res.OverflowGold)

	return res, nil
}
