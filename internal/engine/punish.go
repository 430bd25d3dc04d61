package engine

// PunishResult summarizes a punishment: deleted or missed tasks cost the
// player the same gold and experience their completion would have earned.
type PunishResult struct {
	Removed []string
	Gold    float64
	Exp     map[SkillType]float64
}

func (s *Service) punish(refs []TaskRef) *PunishResult {
	res := &PunishResult{Exp: map[SkillType]float64{}}
	if len(refs) == 0 {
		return res
	}

	penalty := s.calc.Resolve(s.player, refs, false)
	res.Gold = penalty.Gold
	res.Exp = penalty.Exp

	s.player.Gold.PayClamped(penalty.Gold)
	for skill, exp := range penalty.Exp {
		s.player.Skill(skill).ReduceExp(exp)
	}
	return res
}

// DeleteTasks removes the selected user and daily tasks and punishes the
// player for giving up on them. Quest goals cannot be deleted.
func (s *Service) DeleteTasks(nums []int) (*PunishResult, error) {
	sel := s.resolveSelection(nums, false)

	userIDs, err := s.tasks.Resolve(sel.user)
	if err != nil {
		return nil, err
	}

	var refs []TaskRef
	for _, pos := range sel.user {
		t, err := s.tasks.Get(pos)
		if err != nil {
			return nil, err
		}
		refs = append(refs, TaskRef{Skills: t.Skills})
	}

	var dailyTargets []*DailyTask
	for _, pos := range sel.daily {
		t, err := s.daily.Get(pos)
		if err != nil {
			return nil, err
		}
		dailyTargets = append(dailyTargets, t)
		refs = append(refs, TaskRef{Skills: t.Skills, Daily: true})
	}

	res := s.punish(refs)

	for _, id := range userIDs {
		if t := s.tasks.ByID(id); t != nil {
			res.Removed = append(res.Removed, t.Text)
		}
	}
	s.tasks.Remove(userIDs)

	drop := make(map[*DailyTask]bool, len(dailyTargets))
	for _, t := range dailyTargets {
		drop[t] = true
		res.Removed = append(res.Removed, t.Text)
	}
	kept := s.daily.Tasks[:0]
	for _, t := range s.daily.Tasks {
		if !drop[t] {
			kept = append(kept, t)
		}
	}
	s.daily.Tasks = kept

	return res, nil
}

// DailyReset rotates the daily batch when the stored date is stale. The
// unfinished tasks of the previous batch are punished. Same-day calls are
// no-ops, so the check can run on every process start.
func (s *Service) DailyReset() (*PunishResult, error) {
	today := s.Today()

	if s.player.Shop.Date != today {
		s.refreshShop(today)
	}

	if s.daily.Date == today {
		return nil, nil
	}

	batch := s.drawDailyBatch()
	unfinished := s.daily.Update(batch, today)
	if len(unfinished) == 0 {
		return nil, nil
	}

	var refs []TaskRef
	for _, t := range unfinished {
		refs = append(refs, TaskRef{Skills: t.Skills, Daily: true})
	}
	punished := s.punish(refs)
	for _, t := range unfinished {
		punished.Removed = append(punished.Removed, t.Text)
	}
	return punished, nil
}

// drawDailyBatch samples today's batch from the catalog daily pool.
func (s *Service) drawDailyBatch() []*DailyTask {
	pool := s.items.Dailies()
	idx := samplePositions(len(pool), s.bal.DailyBatchSize, s.roller)

	batch := make([]*DailyTask, 0, len(idx))
	for _, i := range idx {
		def := pool[i]
		var skills []SkillType
		for _, name := range def.Skills {
			if st, ok := ParseSkill(name); ok {
				skills = append(skills, st)
			}
		}
		batch = append(batch, &DailyTask{ID: def.ID, Text: def.Text, Skills: skills})
	}
	return batch
}

// samplePositions draws k distinct indices from [0, n) using the injected
// roller, partial Fisher-Yates style.
func samplePositions(n, k int, r Roller) []int {
	if k > n {
		k = n
	}
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	for i := 0; i < k; i++ {
		j := i + int(r.Uniform(0, float64(n-i)))
		if j >= n {
			j = n - 1
		}
		idx[i], idx[j] = idx[j], idx[i]
	}
	return idx[:k]
}
