package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTaskToggle(t *testing.T) {
	tests := []struct {
		name     string
		initial  int
		wantDone int
	}{
		{
			name:     "open task becomes done",
			initial:  TaskOpen,
			wantDone: TaskDone,
		},
		{
			name:     "done task becomes open",
			initial:  TaskDone,
			wantDone: TaskOpen,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task := &Task{Title: "water plants", Done: tt.initial}
			task.Toggle()
			assert.Equal(t, tt.wantDone, task.Done)
		})
	}
}

func TestTaskToggleRoundTrip(t *testing.T) {
	task := &Task{Title: "water plants", Done: TaskOpen, JournalTitle: "2024-01-01"}

	task.Toggle()
	task.Toggle()

	assert.Equal(t, TaskOpen, task.Done)
	assert.Equal(t, "water plants", task.Title)
	assert.Equal(t, "2024-01-01", task.JournalTitle)
}

func TestTaskIsDone(t *testing.T) {
	task := &Task{Done: TaskOpen}
	assert.False(t, task.IsDone())

	task.Done = TaskDone
	assert.True(t, task.IsDone())
}
