package types

import "time"

// Done flag values. The flag is an indexable two-state integer, not a bool,
// so it can carry a secondary index.
const (
	TaskOpen = 0
	TaskDone = 1
)

// Task is a to-do item attached to a journal by title, with the same
// reference discipline as Memo.
type Task struct {
	TaskKey      int64     `json:"task_key"`
	Title        string    `json:"title"`
	Done         int       `json:"done"`
	JournalTitle string    `json:"journal_title"`
	CreatedAt    time.Time `json:"created_at"`
}

// Toggle flips the done flag between TaskOpen and TaskDone.
func (t *Task) Toggle() {
	if t.Done == TaskOpen {
		t.Done = TaskDone
		return
	}
	t.Done = TaskOpen
}

// IsDone reports whether the task is completed.
func (t *Task) IsDone() bool {
	return t.Done == TaskDone
}
