package engine

// DailyTask is one entry of the daily batch, drawn from the catalog pool.
type DailyTask struct {
	ID     string
	Text   string
	Skills []SkillType
	Done   bool
}

// DailyBoard holds the daily-task batch. Membership is fixed for the
// calendar day; done flags reset exactly once, at the draw event.
type DailyBoard struct {
	Tasks []*DailyTask
	Done  bool
	Date  string
}

func NewDailyBoard() *DailyBoard {
	return &DailyBoard{}
}

func (b *DailyBoard) Len() int {
	return len(b.Tasks)
}

// Get returns the daily task at a 1-based position.
func (b *DailyBoard) Get(pos int) (*DailyTask, error) {
	if pos < 1 || pos > len(b.Tasks) {
		return nil, TaskNotFoundError{Pos: pos}
	}
	return b.Tasks[pos-1], nil
}

// Complete marks the task at a 1-based position done and reports whether
// this completion latched the batch-level done flag. The latch fires on the
// 0→1 transition only, so the all-done bonus cannot be re-triggered without
// a new draw.
func (b *DailyBoard) Complete(pos int) (latched bool, err error) {
	t, err := b.Get(pos)
	if err != nil {
		return false, err
	}
	wasDone := b.Done
	t.Done = true
	return b.AllComplete() && !wasDone, nil
}

// AllComplete latches the batch done flag once every task is done.
func (b *DailyBoard) AllComplete() bool {
	if b.Done {
		return true
	}
	if len(b.Tasks) == 0 {
		return false
	}
	for _, t := range b.Tasks {
		if !t.Done {
			return false
		}
	}
	b.Done = true
	return true
}

// Update rotates the board to a new batch for the given date and returns the
// tasks that were not finished before the rotation, for punishment. Calling
// it again with the same date is a no-op.
func (b *DailyBoard) Update(tasks []*DailyTask, today string) (unfinished []*DailyTask) {
	if b.Date == today {
		return nil
	}

	if b.Date != "" {
		for _, t := range b.Tasks {
			if !t.Done {
				unfinished = append(unfinished, t)
			}
		}
	}

	for _, t := range tasks {
		t.Done = false
	}
	b.Tasks = tasks
	b.Date = today
	b.Done = false
	return unfinished
}
