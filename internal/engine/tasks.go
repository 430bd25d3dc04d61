package engine

import "github.com/google/uuid"

// Task is a plain user task. It carries a stable id so that batch deletions
// can be resolved to handles before any positions shift.
type Task struct {
	ID     uuid.UUID
	Text   string
	Skills []SkillType
}

// TaskList is the ordered collection of user tasks. Positions are 1-based
// and renumber on every deletion; the UI resolves positions to ids first.
type TaskList struct {
	tasks []*Task
}

func NewTaskList() *TaskList {
	return &TaskList{}
}

func (l *TaskList) Add(text string, skills []SkillType) *Task {
	t := &Task{ID: uuid.New(), Text: text, Skills: skills}
	l.tasks = append(l.tasks, t)
	return t
}

func (l *TaskList) Len() int {
	return len(l.tasks)
}

// All returns the tasks in position order.
func (l *TaskList) All() []*Task {
	return l.tasks
}

// Get returns the task at a 1-based position.
func (l *TaskList) Get(pos int) (*Task, error) {
	if pos < 1 || pos > len(l.tasks) {
		return nil, TaskNotFoundError{Pos: pos}
	}
	return l.tasks[pos-1], nil
}

// Delete removes the task at a 1-based position and returns it.
func (l *TaskList) Delete(pos int) (*Task, error) {
	t, err := l.Get(pos)
	if err != nil {
		return nil, err
	}
	l.tasks = append(l.tasks[:pos-1], l.tasks[pos:]...)
	return t, nil
}

// Resolve maps 1-based positions to stable ids. It fails on the first
// out-of-range position, before anything is mutated.
func (l *TaskList) Resolve(positions []int) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(positions))
	for _, pos := range positions {
		t, err := l.Get(pos)
		if err != nil {
			return nil, err
		}
		ids = append(ids, t.ID)
	}
	return ids, nil
}

// Remove deletes tasks by stable id, so earlier removals in the batch cannot
// shift the targets of later ones.
func (l *TaskList) Remove(ids []uuid.UUID) {
	drop := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		drop[id] = true
	}

	kept := l.tasks[:0]
	for _, t := range l.tasks {
		if !drop[t.ID] {
			kept = append(kept, t)
		}
	}
	l.tasks = kept
}

// ByID returns the task with the given id, or nil.
func (l *TaskList) ByID(id uuid.UUID) *Task {
	for _, t := range l.tasks {
		if t.ID == id {
			return t
		}
	}
	return nil
}
