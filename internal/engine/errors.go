package engine

import "fmt"

// TaskNotFoundError signals a 1-based position outside the owning list.
// Out-of-range deletion is a domain error, never a silent no-op.
type TaskNotFoundError struct {
	Pos int
}

func (e TaskNotFoundError) Error() string {
	return fmt.Sprintf("task %d not found", e.Pos)
}

// GoalNotFoundError signals a goal index outside the active quest stage.
type GoalNotFoundError struct {
	Pos int
}

func (e GoalNotFoundError) Error() string {
	return fmt.Sprintf("quest goal %d not found", e.Pos)
}

// QuestActiveError is returned when starting a quest while another is still
// in progress. Only one quest may be active at a time.
type QuestActiveError struct {
	ActiveID string
}

func (e QuestActiveError) Error() string {
	return fmt.Sprintf("quest %q is still active", e.ActiveID)
}

// NoQuestError is returned by goal operations when no quest is active.
type NoQuestError struct{}

func (NoQuestError) Error() string {
	return "no quest is active"
}
