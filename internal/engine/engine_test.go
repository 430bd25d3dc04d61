package engine

import (
	"math"
	"testing"
	"time"

	"github.com/klimvill/RPG-task/internal/catalog"
	"github.com/klimvill/RPG-task/internal/storage"
)

// maxRoller always returns the upper bound: reward rolls hit RollMax and
// drop flips never land.
type maxRoller struct{}

func (maxRoller) Uniform(min, max float64) float64 { return max }

// minRoller always returns the lower bound: reward rolls hit RollMin and
// drop flips always land, tier one, first item.
type minRoller struct{}

func (minRoller) Uniform(min, max float64) float64 { return min }

func newTestRegistry(t *testing.T) *catalog.Registry {
	t.Helper()
	byTier := map[catalog.Rarity][]catalog.Item{
		catalog.TierOne: {
			{ID: "cap", Name: "Cap", Type: catalog.TypeHelmet, Effects: map[string]float64{"intellect": 1.05}, Cost: 1, Sell: 0.5, Sellable: true},
			{ID: "rock", Name: "Rock", Type: catalog.TypeGeneric, Stack: 3, Cost: 0.3, Sell: 0.1, Sellable: true},
		},
		catalog.TierTwo: {
			{ID: "ring", Name: "Ring", Type: catalog.TypeRing, Cost: 3, Sell: 1.5, Sellable: true},
		},
		catalog.TierThree: {
			{ID: "relic", Name: "Relic", Type: catalog.TypeAmulet, Cost: 10, Sell: 5, Sellable: false},
		},
	}
	quests := []catalog.Quest{
		{
			ID: "trial", Name: "Trial", Rank: "F", InGuild: true, Start: 1,
			Stages: map[int]catalog.Stage{
				1: {
					Name: "The road",
					Goals: []catalog.GoalDef{
						{Kind: catalog.GoalPlain, Text: "reach the gate"},
						{Kind: catalog.GoalPlain, Text: "find the key"},
					},
					Next: catalog.Directive{Stage: 2},
				},
				2: {
					Name:  "The keeper",
					Goals: []catalog.GoalDef{{Kind: catalog.GoalBoss, Text: "defeat the keeper", HP: 3}},
					Next:  catalog.Directive{End: true},
				},
			},
			Reward: catalog.QuestReward{Gold: 5, Items: []string{"cap"}},
		},
	}
	dailies := []catalog.DailyDef{
		{ID: "d1", Text: "stretch", Skills: []string{"endurance"}},
		{ID: "d2", Text: "read", Skills: []string{"languages"}},
		{ID: "d3", Text: "sketch", Skills: []string{"art"}},
	}

	reg, err := catalog.NewRegistry(byTier, quests, dailies)
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	return reg
}

func newTestService(t *testing.T, r Roller) *Service {
	t.Helper()
	store, err := storage.NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	return NewService(store, newTestRegistry(t), r, DefaultBalance())
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestPriceForLevel(t *testing.T) {
	bal := DefaultBalance()

	cases := []struct {
		level int
		exp   float64
		gold  float64
	}{
		{0, 0.25, 0.1},
		{1, 0.5, 0.25},
		{2, 1.2, 0.4},
		{3, 2.7, 0.9},
		{10, 30, 10},
	}
	for _, c := range cases {
		exp, gold := bal.PriceForLevel(c.level)
		if !almostEqual(exp, c.exp) || !almostEqual(gold, c.gold) {
			t.Fatalf("PriceForLevel(%d)=(%v,%v), want (%v,%v)", c.level, exp, gold, c.exp, c.gold)
		}
	}

	prevExp, prevGold := bal.PriceForLevel(1)
	for l := 2; l <= 20; l++ {
		exp, gold := bal.PriceForLevel(l)
		if exp <= prevExp || gold <= prevGold {
			t.Fatalf("price not strictly increasing at level %d: (%v,%v) after (%v,%v)", l, exp, gold, prevExp, prevGold)
		}
		prevExp, prevGold = exp, gold
	}
}

func TestLevelScale(t *testing.T) {
	bal := DefaultBalance()
	if got := bal.LevelScale(0); !almostEqual(got, 1) {
		t.Fatalf("LevelScale(0)=%v, want 1", got)
	}
	if got := bal.LevelScale(3); !almostEqual(got, 1) {
		t.Fatalf("LevelScale(3)=%v, want 1", got)
	}
	if got := bal.LevelScale(6); !almostEqual(got, 2) {
		t.Fatalf("LevelScale(6)=%v, want 2", got)
	}
}

func TestGoldAndExpClamps(t *testing.T) {
	g := Gold{Balance: 1}
	g.PayClamped(0.4)
	if !almostEqual(g.Balance, 0.6) {
		t.Fatalf("balance=%v, want 0.6", g.Balance)
	}
	g.PayClamped(5)
	if g.Balance != 0 {
		t.Fatalf("balance=%v, want 0 after overdraft", g.Balance)
	}

	s := Skill{Type: SkillArt, Exp: 0.3}
	s.ReduceExp(0.1)
	if !almostEqual(s.Exp, 0.2) {
		t.Fatalf("exp=%v, want 0.2", s.Exp)
	}
	s.ReduceExp(1)
	if s.Exp != 0 {
		t.Fatalf("exp=%v, want 0 after overdraft", s.Exp)
	}
}

func TestRankLadder(t *testing.T) {
	p := NewPlayer()
	for i := 0; i < 14; i++ {
		if p.AddExperience() {
			t.Fatalf("unexpected rank-up at experience %d", p.Experience)
		}
	}
	if !p.AddExperience() {
		t.Fatalf("expected rank-up at the F threshold")
	}
	if p.Rank != RankE || p.Experience != 15 {
		t.Fatalf("rank=%v exp=%d, want E/15", p.Rank, p.Experience)
	}

	// Experience carries over; the next threshold is absolute.
	for i := 16; i < 35; i++ {
		if p.AddExperience() {
			t.Fatalf("unexpected rank-up at experience %d", p.Experience)
		}
	}
	if !p.AddExperience() || p.Rank != RankD {
		t.Fatalf("rank=%v exp=%d, want D/35", p.Rank, p.Experience)
	}

	p.Rank = RankS
	p.Experience = RankS.Experience() - 1
	if p.AddExperience() {
		t.Fatalf("S rank must not rank up")
	}
	if p.Experience != RankS.Experience() {
		t.Fatalf("exp=%d, want saturation at %d", p.Experience, RankS.Experience())
	}
	p.AddExperience()
	if p.Experience != RankS.Experience() {
		t.Fatalf("exp=%d, want to stay saturated", p.Experience)
	}
}

func TestCalculatorUntaggedGold(t *testing.T) {
	reg := newTestRegistry(t)
	p := NewPlayer()
	calc := NewCalculator(DefaultBalance(), maxRoller{}, reg, nil)

	r := calc.Resolve(p, []TaskRef{{}}, true)
	if !almostEqual(r.Gold, 0.05*1*2) {
		t.Fatalf("gold=%v, want 0.10", r.Gold)
	}
	if len(r.Exp) != 0 {
		t.Fatalf("untagged task must pay no experience, got %v", r.Exp)
	}
	if len(r.Items) != 0 {
		t.Fatalf("max roll must not drop items, got %d", len(r.Items))
	}
}

func TestCalculatorTaggedExp(t *testing.T) {
	reg := newTestRegistry(t)
	p := NewPlayer()
	calc := NewCalculator(DefaultBalance(), maxRoller{}, reg, nil)

	r := calc.Resolve(p, []TaskRef{{Skills: []SkillType{SkillArt, SkillCraft}}}, false)
	if !almostEqual(r.Gold, 0.05) {
		t.Fatalf("gold=%v, want 0.05", r.Gold)
	}
	// Level 0 skills count as level 1 for the experience roll.
	if !almostEqual(r.Exp[SkillArt], 0.05) || !almostEqual(r.Exp[SkillCraft], 0.05) {
		t.Fatalf("exp=%v, want 0.05 each", r.Exp)
	}

	daily := calc.Resolve(p, []TaskRef{{Skills: []SkillType{SkillArt}, Daily: true}}, false)
	if !almostEqual(daily.Exp[SkillArt], 0.05*1.2) {
		t.Fatalf("daily exp=%v, want 0.06", daily.Exp[SkillArt])
	}

	p.Skill(SkillArt).Level = 4
	leveled := calc.Resolve(p, []TaskRef{{Skills: []SkillType{SkillArt}}}, false)
	if !almostEqual(leveled.Exp[SkillArt], 0.05*4) {
		t.Fatalf("leveled exp=%v, want 0.20", leveled.Exp[SkillArt])
	}

	// Sum of levels above the divisor scales the gold payout.
	scaled := calc.Resolve(p, []TaskRef{{}}, false)
	if !almostEqual(scaled.Gold, 0.05*(4.0/3.0)*2) {
		t.Fatalf("scaled gold=%v, want %v", scaled.Gold, 0.05*(4.0/3.0)*2)
	}
}

func TestCalculatorEmptyBatch(t *testing.T) {
	calc := NewCalculator(DefaultBalance(), maxRoller{}, newTestRegistry(t), nil)
	r := calc.Resolve(NewPlayer(), nil, true)
	if r.Gold != 0 || len(r.Exp) != 0 || len(r.Items) != 0 {
		t.Fatalf("empty batch must be a zero reward, got %+v", r)
	}
}

func TestCalculatorDrop(t *testing.T) {
	reg := newTestRegistry(t)
	calc := NewCalculator(DefaultBalance(), minRoller{}, reg, nil)

	r := calc.Resolve(NewPlayer(), []TaskRef{{}}, true)
	if len(r.Items) != 1 {
		t.Fatalf("min roll must drop exactly one item, got %d", len(r.Items))
	}
	if r.Items[0].Tier() != catalog.TierOne {
		t.Fatalf("tier=%v, want one", r.Items[0].Tier())
	}

	noDrop := calc.Resolve(NewPlayer(), []TaskRef{{}}, false)
	if len(noDrop.Items) != 0 {
		t.Fatalf("punishment resolution must not roll drops")
	}
}

func TestDailyBoardLatch(t *testing.T) {
	b := NewDailyBoard()
	b.Update([]*DailyTask{
		{ID: "d1", Text: "stretch"},
		{ID: "d2", Text: "read"},
	}, "2026-01-01")

	latched, err := b.Complete(1)
	if err != nil || latched {
		t.Fatalf("first completion must not latch (latched=%v err=%v)", latched, err)
	}
	latched, err = b.Complete(2)
	if err != nil || !latched {
		t.Fatalf("final completion must latch (latched=%v err=%v)", latched, err)
	}
	latched, _ = b.Complete(1)
	if latched {
		t.Fatalf("a latched board must not latch again")
	}
	if !b.Done {
		t.Fatalf("board must stay done")
	}

	if unfinished := b.Update(nil, "2026-01-01"); unfinished != nil {
		t.Fatalf("same-day update must be a no-op")
	}

	next := []*DailyTask{{ID: "d3", Text: "sketch", Done: true}}
	if unfinished := b.Update(next, "2026-01-02"); len(unfinished) != 0 {
		t.Fatalf("finished batch must not be punished, got %d", len(unfinished))
	}
	if b.Done || next[0].Done {
		t.Fatalf("rotation must reset done flags")
	}

	unfinished := b.Update([]*DailyTask{{ID: "d1"}}, "2026-01-03")
	if len(unfinished) != 1 || unfinished[0].ID != "d3" {
		t.Fatalf("unfinished=%v, want the leftover d3", unfinished)
	}
}

func TestEmptyDailyBoardNeverLatches(t *testing.T) {
	b := NewDailyBoard()
	if b.AllComplete() {
		t.Fatalf("an empty board must not count as complete")
	}
}

func TestQuestStateMachine(t *testing.T) {
	reg := newTestRegistry(t)
	q, err := reg.Quest("trial")
	if err != nil {
		t.Fatalf("fixture quest: %v", err)
	}

	s := NewQuestState(q)
	if s.StageID != 1 || len(s.Goals) != 2 {
		t.Fatalf("stage=%d goals=%d, want start stage 1 with 2 goals", s.StageID, len(s.Goals))
	}
	if s.BossStage() {
		t.Fatalf("stage 1 is not a boss stage")
	}

	if err := s.Complete(1); err != nil {
		t.Fatalf("complete goal 1: %v", err)
	}
	if err := s.Complete(1); err != nil {
		t.Fatalf("re-completing a goal must be a no-op: %v", err)
	}
	if s.StageID != 1 {
		t.Fatalf("stage advanced early")
	}
	if err := s.Complete(2); err != nil {
		t.Fatalf("complete goal 2: %v", err)
	}

	if s.StageID != 2 || !s.BossStage() {
		t.Fatalf("stage=%d, want boss stage 2", s.StageID)
	}
	if len(s.DoneStages) != 1 || s.DoneStages[0] != 1 {
		t.Fatalf("done stages=%v, want [1]", s.DoneStages)
	}

	s.AddDamage(2)
	if s.Done || s.Goals[0].Completed {
		t.Fatalf("boss must survive 2 damage out of 3 HP")
	}
	s.AddDamage(5)
	if !s.Done {
		t.Fatalf("boss overkill must finish the quest")
	}

	if err := s.Complete(1); err != nil {
		t.Fatalf("completing on a finished quest must be a no-op: %v", err)
	}
}

func TestQuestGoalOutOfRange(t *testing.T) {
	reg := newTestRegistry(t)
	q, _ := reg.Quest("trial")
	s := NewQuestState(q)
	if err := s.Complete(7); err == nil {
		t.Fatalf("expected an error for goal 7")
	}
}

func TestBossGoalResistsDirectSelection(t *testing.T) {
	reg := newTestRegistry(t)
	q, _ := reg.Quest("trial")
	s := NewQuestState(q)
	s.Complete(1)
	s.Complete(2)
	if !s.BossStage() {
		t.Fatalf("fixture must open a boss stage after stage 1")
	}

	if err := s.Complete(1); err != nil {
		t.Fatalf("selecting the boss: %v", err)
	}
	if s.Done || s.Goals[0].Completed {
		t.Fatalf("a boss with no damage must survive selection, state=%+v", s.Goals[0])
	}

	s.AddDamage(3)
	if !s.Done {
		t.Fatalf("the boss must still fall to accumulated damage")
	}
}

func TestServiceBossSelectionPaysNoReward(t *testing.T) {
	svc := newTestService(t, maxRoller{})
	if err := svc.StartQuest("trial"); err != nil {
		t.Fatalf("StartQuest: %v", err)
	}
	if _, err := svc.CompleteTasks([]int{1, 2}); err != nil {
		t.Fatalf("stage 1 goals: %v", err)
	}

	res, err := svc.CompleteTasks([]int{1})
	if err != nil {
		t.Fatalf("boss selection: %v", err)
	}
	if res.QuestDone {
		t.Fatalf("selecting the boss must not finish the quest")
	}
	if !almostEqual(svc.Player().Gold.Balance, 0) {
		t.Fatalf("gold=%v, want no payout", svc.Player().Gold.Balance)
	}
	active := svc.Quests().Active()
	if active == nil || active.Done || active.Goals[0].Damage != 0 {
		t.Fatalf("boss must stay untouched after selection")
	}
}

func TestQuestLogSingleActive(t *testing.T) {
	reg := newTestRegistry(t)
	q, _ := reg.Quest("trial")

	log := NewQuestLog()
	if err := log.Start(q); err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := log.Start(q); err == nil {
		t.Fatalf("expected QuestActiveError on double start")
	}

	if _, claimed := log.Claim(); claimed {
		t.Fatalf("an unfinished quest must not be claimable")
	}

	log.Active().Done = true
	reward, claimed := log.Claim()
	if !claimed || reward.Gold != 5 {
		t.Fatalf("claim=(%v,%v), want the trial reward", reward, claimed)
	}
	if log.Launched() {
		t.Fatalf("claiming must clear the active quest")
	}
	if _, claimed := log.Claim(); claimed {
		t.Fatalf("the reward must be claimable exactly once")
	}
}

func TestServiceCompleteBatch(t *testing.T) {
	svc := newTestService(t, maxRoller{})
	svc.AddUserTask("wash the dishes", nil)
	svc.AddUserTask("train", []SkillType{SkillPower})

	res, err := svc.CompleteTasks([]int{1, 2})
	if err != nil {
		t.Fatalf("CompleteTasks: %v", err)
	}
	if len(res.Completed) != 2 {
		t.Fatalf("completed=%v, want both tasks", res.Completed)
	}
	if !almostEqual(res.Gold, 0.1+0.05) {
		t.Fatalf("gold=%v, want 0.15", res.Gold)
	}
	if !almostEqual(res.Exp[SkillPower], 0.05) {
		t.Fatalf("exp=%v, want 0.05 power", res.Exp)
	}
	if svc.Tasks().Len() != 0 {
		t.Fatalf("completed tasks must leave the list")
	}
	if !almostEqual(svc.Player().Gold.Balance, res.Gold) {
		t.Fatalf("balance=%v, want the batch gold", svc.Player().Gold.Balance)
	}
	if !almostEqual(svc.Player().Skill(SkillPower).Exp, 0.05) {
		t.Fatalf("skill exp not applied")
	}
}

func TestServiceCompleteOutOfRangeDropped(t *testing.T) {
	svc := newTestService(t, maxRoller{})
	svc.AddUserTask("only one", nil)

	res, err := svc.CompleteTasks([]int{1, 99, 1})
	if err != nil {
		t.Fatalf("CompleteTasks: %v", err)
	}
	if len(res.Completed) != 1 {
		t.Fatalf("completed=%v, want the single valid position once", res.Completed)
	}
}

func TestServiceDailyBonusLatch(t *testing.T) {
	svc := newTestService(t, maxRoller{})
	svc.AddDailyTask("stretch", []SkillType{SkillEndurance})
	svc.AddDailyTask("read", nil)

	res, err := svc.CompleteTasks([]int{1})
	if err != nil {
		t.Fatalf("CompleteTasks: %v", err)
	}
	if res.DailyBonus != 0 {
		t.Fatalf("bonus fired before the batch was done")
	}

	res, err = svc.CompleteTasks([]int{2})
	if err != nil {
		t.Fatalf("CompleteTasks: %v", err)
	}
	if !almostEqual(res.DailyBonus, 0.05*1*2) {
		t.Fatalf("bonus=%v, want 0.10", res.DailyBonus)
	}

	// Finished dailies pay nothing twice.
	res, err = svc.CompleteTasks([]int{1, 2})
	if err != nil {
		t.Fatalf("CompleteTasks: %v", err)
	}
	if len(res.Completed) != 0 || res.Gold != 0 || res.DailyBonus != 0 {
		t.Fatalf("re-completion paid again: %+v", res)
	}
}

func TestServiceQuestFlow(t *testing.T) {
	svc := newTestService(t, maxRoller{})
	if err := svc.StartQuest("trial"); err != nil {
		t.Fatalf("StartQuest: %v", err)
	}
	if err := svc.StartQuest("trial"); err == nil {
		t.Fatalf("expected QuestActiveError")
	}

	// Goals follow the user tasks in the combined numbering.
	svc.AddUserTask("errand", nil)
	res, err := svc.CompleteTasks([]int{2, 3})
	if err != nil {
		t.Fatalf("complete stage 1 goals: %v", err)
	}
	if res.QuestDone {
		t.Fatalf("quest finished early")
	}
	active := svc.Quests().Active()
	if active.StageID != 2 {
		t.Fatalf("stage=%d, want the boss stage", active.StageID)
	}

	// Each completed plain task chips one damage off the boss.
	for i := 0; i < 3; i++ {
		svc.AddUserTask("chip", nil)
	}
	res, err = svc.CompleteTasks([]int{1, 2, 3, 4})
	if err != nil {
		t.Fatalf("boss batch: %v", err)
	}
	if !res.QuestDone || res.QuestName != "Trial" {
		t.Fatalf("quest not finished: %+v", res)
	}
	if !almostEqual(res.QuestGold, 5) {
		t.Fatalf("quest gold=%v, want 5", res.QuestGold)
	}
	if len(res.QuestItems) != 1 || res.QuestItems[0].ID != "cap" {
		t.Fatalf("quest items=%v, want the cap", res.QuestItems)
	}
	if svc.Quests().Launched() {
		t.Fatalf("a claimed quest must leave the log")
	}
	if svc.Player().Experience != 1 {
		t.Fatalf("experience=%d, want 1", svc.Player().Experience)
	}
	if svc.Inventory().Count("cap") != 1 {
		t.Fatalf("reward item not in the bag")
	}
}

func TestServiceDeletePunishment(t *testing.T) {
	svc := newTestService(t, maxRoller{})
	svc.Player().Gold.Balance = 1
	svc.Player().Skill(SkillArt).Exp = 1
	svc.AddUserTask("sketch", []SkillType{SkillArt})

	res, err := svc.DeleteTasks([]int{1})
	if err != nil {
		t.Fatalf("DeleteTasks: %v", err)
	}
	if len(res.Removed) != 1 {
		t.Fatalf("removed=%v, want 1", res.Removed)
	}
	if !almostEqual(svc.Player().Gold.Balance, 1-0.05) {
		t.Fatalf("balance=%v, want 0.95", svc.Player().Gold.Balance)
	}
	if !almostEqual(svc.Player().Skill(SkillArt).Exp, 1-0.05) {
		t.Fatalf("exp=%v, want 0.95", svc.Player().Skill(SkillArt).Exp)
	}
	if svc.Tasks().Len() != 0 {
		t.Fatalf("deleted task still listed")
	}
}

func TestServiceDailyReset(t *testing.T) {
	svc := newTestService(t, maxRoller{})

	// First run: no previous batch, nothing to punish.
	punished, err := svc.DailyReset()
	if err != nil {
		t.Fatalf("DailyReset: %v", err)
	}
	if punished != nil && len(punished.Removed) > 0 {
		t.Fatalf("first reset must not punish, got %v", punished.Removed)
	}
	if svc.Daily().Len() != DefaultBalance().DailyBatchSize {
		t.Fatalf("batch size=%d, want %d", svc.Daily().Len(), DefaultBalance().DailyBatchSize)
	}
	if svc.Player().Shop.Date != svc.Today() {
		t.Fatalf("shop rotation not stamped")
	}

	// Same day: no-op.
	if res, err := svc.DailyReset(); err != nil || res != nil {
		t.Fatalf("same-day reset must be a no-op, got (%v, %v)", res, err)
	}

	// Next day: the whole untouched batch is punished.
	svc.now = func() time.Time { return time.Now().Add(24 * time.Hour) }
	punished, err = svc.DailyReset()
	if err != nil {
		t.Fatalf("next-day reset: %v", err)
	}
	if punished == nil || len(punished.Removed) != DefaultBalance().DailyBatchSize {
		t.Fatalf("punished=%v, want the whole untouched batch", punished)
	}
}

func TestSamplePositions(t *testing.T) {
	r := NewRoller()
	got := samplePositions(5, 3, r)
	if len(got) != 3 {
		t.Fatalf("len=%d, want 3", len(got))
	}
	seen := map[int]bool{}
	for _, i := range got {
		if i < 0 || i >= 5 || seen[i] {
			t.Fatalf("invalid or duplicate index %d in %v", i, got)
		}
		seen[i] = true
	}
	if got := samplePositions(2, 5, r); len(got) != 2 {
		t.Fatalf("oversampling must clamp to n, got %d", len(got))
	}
}

func TestParseTaskLine(t *testing.T) {
	p := ParseTaskLine("Read a chapter [languages, intellect]", 3)
	if p.Text != "Read a chapter" || p.Daily {
		t.Fatalf("parsed=%+v", p)
	}
	if len(p.Skills) != 2 || p.Skills[0] != SkillLanguages || p.Skills[1] != SkillIntellect {
		t.Fatalf("skills=%v", p.Skills)
	}

	p = ParseTaskLine("-e morning run [str]", 3)
	if !p.Daily || p.Text != "morning run" || p.Skills[0] != SkillPower {
		t.Fatalf("parsed=%+v", p)
	}

	p = ParseTaskLine("study [int, int, sci, art, craft]", 3)
	if len(p.Skills) != 3 {
		t.Fatalf("skills=%v, want deduped and capped at 3", p.Skills)
	}

	p = ParseTaskLine("plain text [nonsense]", 3)
	if p.Text != "plain text" || len(p.Skills) != 0 {
		t.Fatalf("parsed=%+v, want unknown tags dropped", p)
	}
}

func TestServiceBuySkillLevels(t *testing.T) {
	svc := newTestService(t, maxRoller{})
	p := svc.Player()
	p.Gold.Balance = 1

	// Skill 1 (intellect) lacks experience; skill 5 (power) is ready.
	p.Skill(SkillPower).Exp = 0.25

	bought := svc.BuySkillLevels([]int{1, 5})
	if len(bought) != 1 || bought[0] != SkillPower {
		t.Fatalf("bought=%v, want power only", bought)
	}
	if p.Skill(SkillPower).Level != 1 {
		t.Fatalf("level=%d, want 1", p.Skill(SkillPower).Level)
	}
	// Experience is a threshold, not a currency.
	if !almostEqual(p.Skill(SkillPower).Exp, 0.25) {
		t.Fatalf("exp=%v, want untouched 0.25", p.Skill(SkillPower).Exp)
	}
	if !almostEqual(p.Gold.Balance, 1-0.1) {
		t.Fatalf("balance=%v, want 0.9", p.Gold.Balance)
	}
}

func TestServiceBuyItems(t *testing.T) {
	svc := newTestService(t, maxRoller{})
	svc.Player().Shop.ItemIDs = []string{"rock", "relic"}
	svc.Player().Gold.Balance = 0.5

	res, err := svc.BuyItems([]int{1, 2})
	if err != nil {
		t.Fatalf("BuyItems: %v", err)
	}
	if len(res.Bought) != 1 || res.Bought[0].ID != "rock" {
		t.Fatalf("bought=%v, want the rock", res.Bought)
	}
	if !res.NoGold {
		t.Fatalf("the relic is unaffordable, expected the no-gold stop")
	}
	if !almostEqual(svc.Player().Gold.Balance, 0.2) {
		t.Fatalf("balance=%v, want 0.2", svc.Player().Gold.Balance)
	}
	if svc.Inventory().Count("rock") != 1 {
		t.Fatalf("purchase not in the bag")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	store, err := storage.NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	reg := newTestRegistry(t)

	svc := NewService(store, reg, maxRoller{}, DefaultBalance())
	svc.Player().Name = "lina"
	svc.Player().Gold.Balance = 2.5
	svc.Player().Skill(SkillCraft).Level = 3
	svc.Player().Skill(SkillCraft).Exp = 0.7
	svc.AddUserTask("fix the shelf", []SkillType{SkillCraft})
	svc.AddDailyTask("stretch", []SkillType{SkillEndurance})
	if err := svc.StartQuest("trial"); err != nil {
		t.Fatalf("StartQuest: %v", err)
	}
	if err := svc.Quests().CompleteGoal(1); err != nil {
		t.Fatalf("CompleteGoal: %v", err)
	}
	if err := svc.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded := NewService(store, reg, maxRoller{}, DefaultBalance())
	if err := loaded.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}

	if loaded.Player().Name != "lina" || !almostEqual(loaded.Player().Gold.Balance, 2.5) {
		t.Fatalf("player not restored: %+v", loaded.Player())
	}
	craft := loaded.Player().Skill(SkillCraft)
	if craft.Level != 3 || !almostEqual(craft.Exp, 0.7) {
		t.Fatalf("skill not restored: %+v", craft)
	}

	if loaded.Tasks().Len() != 1 {
		t.Fatalf("task count=%d, want 1", loaded.Tasks().Len())
	}
	task, _ := loaded.Tasks().Get(1)
	if task.Text != "fix the shelf" || len(task.Skills) != 1 || task.Skills[0] != SkillCraft {
		t.Fatalf("task not restored: %+v", task)
	}

	if loaded.Daily().Len() != 1 {
		t.Fatalf("daily count=%d, want 1", loaded.Daily().Len())
	}
	daily, _ := loaded.Daily().Get(1)
	if daily.Text != "stretch" || daily.Done {
		t.Fatalf("daily not restored: %+v", daily)
	}

	active := loaded.Quests().Active()
	if active == nil || active.Quest.ID != "trial" {
		t.Fatalf("quest not restored")
	}
	if active.StageID != 1 || !active.Goals[0].Completed || active.Goals[1].Completed {
		t.Fatalf("quest goal state not restored: stage=%d goals=%+v", active.StageID, active.Goals)
	}
}

func TestLoadDropsStaleDailyIDs(t *testing.T) {
	store, err := storage.NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	err = store.SaveTasks(storage.TasksFile{
		Daily: storage.DailyState{
			Date:  "2026-01-01",
			Tasks: []storage.DailyTaskState{{ID: "d1"}, {ID: "gone"}},
		},
		Quests: map[string]storage.QuestState{},
	})
	if err != nil {
		t.Fatalf("SaveTasks: %v", err)
	}

	svc := NewService(store, newTestRegistry(t), maxRoller{}, DefaultBalance())
	if err := svc.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if svc.Daily().Len() != 1 {
		t.Fatalf("daily count=%d, want the stale id dropped", svc.Daily().Len())
	}
}
