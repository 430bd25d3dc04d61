package engine

import (
	"github.com/klimvill/RPG-task/internal/catalog"
)

// GoalProgress is the live state of one goal in the current stage. Plain
// goals toggle; boss goals accumulate damage until it reaches HP.
type GoalProgress struct {
	Def       catalog.GoalDef
	Completed bool
	Damage    int
}

// AddDamage accumulates boss damage, saturating past HP with no error.
func (g *GoalProgress) AddDamage(amount int) {
	if g.Def.Kind != catalog.GoalBoss {
		return
	}
	g.Damage += amount
	g.Completed = g.Damage >= g.Def.HP
}

// QuestState tracks one player's progress through a quest template.
type QuestState struct {
	Quest      catalog.Quest
	StageID    int
	DoneStages []int
	Goals      []*GoalProgress
	Done       bool
}

// NewQuestState starts the quest at its first stage.
func NewQuestState(q catalog.Quest) *QuestState {
	s := &QuestState{Quest: q}
	s.enterStage(q.Start)
	return s
}

// Stage returns the current stage template.
func (s *QuestState) Stage() catalog.Stage {
	return s.Quest.Stages[s.StageID]
}

// enterStage re-initializes the goal vector for the named stage. Completion
// state never carries over between stages.
func (s *QuestState) enterStage(id int) {
	s.StageID = id
	stage := s.Quest.Stages[id]
	s.Goals = make([]*GoalProgress, 0, len(stage.Goals))
	for _, def := range stage.Goals {
		s.Goals = append(s.Goals, &GoalProgress{Def: def})
	}
}

// Complete marks the goal at a 1-based position complete. Completing an
// already-complete goal is a no-op, so stage resolution fires exactly once.
// Selecting a boss goal has no effect until its damage covers the HP.
func (s *QuestState) Complete(pos int) error {
	if s.Done {
		return nil
	}
	if pos < 1 || pos > len(s.Goals) {
		return GoalNotFoundError{Pos: pos}
	}

	g := s.Goals[pos-1]
	if g.Completed {
		return nil
	}
	switch g.Def.Kind {
	case catalog.GoalBoss:
		// A boss falls to accumulated damage only, never to direct selection.
		g.Completed = g.Damage >= g.Def.HP
	case catalog.GoalPlain:
		g.Completed = true
	}
	if g.Completed {
		s.resolveStage()
	}
	return nil
}

// AddDamage feeds externally driven damage into a boss stage. It does
// nothing unless the current stage's first goal is a boss fight.
func (s *QuestState) AddDamage(amount int) {
	if s.Done || !s.BossStage() || amount <= 0 {
		return
	}
	// Boss fights are always the only goal in their stage.
	boss := s.Goals[0]
	wasDone := boss.Completed
	boss.AddDamage(amount)
	if boss.Completed && !wasDone {
		s.resolveStage()
	}
}

// BossStage reports whether the current stage is a boss fight.
func (s *QuestState) BossStage() bool {
	return !s.Done && len(s.Goals) > 0 && s.Goals[0].Def.Kind == catalog.GoalBoss
}

// resolveStage fires the stage directive once all goals are complete:
// advance re-enters the named stage fresh, end freezes the quest as done.
func (s *QuestState) resolveStage() {
	for _, g := range s.Goals {
		if !g.Completed {
			return
		}
	}

	s.DoneStages = append(s.DoneStages, s.StageID)
	next := s.Stage().Next
	if next.End {
		s.Done = true
		return
	}
	s.enterStage(next.Stage)
}

// QuestLog enforces the single-active-quest rule and owns the terminal
// reward handshake: the reward is claimable exactly once, and claiming
// clears the active state.
type QuestLog struct {
	active *QuestState
}

func NewQuestLog() *QuestLog {
	return &QuestLog{}
}

// Start activates a quest. Starting while another quest is active fails
// rather than silently overwriting it.
func (l *QuestLog) Start(q catalog.Quest) error {
	if l.active != nil {
		return QuestActiveError{ActiveID: l.active.Quest.ID}
	}
	l.active = NewQuestState(q)
	return nil
}

// Restore installs a loaded quest state, replacing whatever was active.
func (l *QuestLog) Restore(s *QuestState) {
	l.active = s
}

func (l *QuestLog) Active() *QuestState {
	return l.active
}

func (l *QuestLog) Launched() bool {
	return l.active != nil
}

// CompleteGoal completes a goal of the active quest at a 1-based position.
func (l *QuestLog) CompleteGoal(pos int) error {
	if l.active == nil {
		return NoQuestError{}
	}
	return l.active.Complete(pos)
}

// AddDamage routes task-completion damage into an active boss stage.
func (l *QuestLog) AddDamage(amount int) {
	if l.active != nil {
		l.active.AddDamage(amount)
	}
}

// IsDone reports whether the active quest has reached its end directive.
func (l *QuestLog) IsDone() bool {
	return l.active != nil && l.active.Done
}

// Claim returns the terminal reward of a finished quest and clears the
// active state, so the payout cannot be dispatched twice.
func (l *QuestLog) Claim() (catalog.QuestReward, bool) {
	if !l.IsDone() {
		return catalog.QuestReward{}, false
	}
	reward := l.active.Quest.Reward
	l.active = nil
	return reward, true
}
