package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
)

var (
	ErrInvalidState = errors.New("model: invalid task state")
	ErrInvalidID    = errors.New("model: invalid id")
)

// ReservedID is never a valid task or project id. Keeping it free means
// max id + 1 cannot wrap around to 0.
const ReservedID uint32 = math.MaxUint32

type TaskState string

const (
	TaskStateTodo      TaskState = "Todo"
	TaskStateCompleted TaskState = "Completed"
	TaskStateCanceled  TaskState = "Canceled"
)

func (s TaskState) IsValid() bool {
	switch s {
	case TaskStateTodo, TaskStateCompleted, TaskStateCanceled:
		return true
	default:
		return false
	}
}

// Toggle flips between Todo and Completed. A canceled task comes back as Todo.
func (s TaskState) Toggle() TaskState {
	switch s {
	case TaskStateTodo:
		return TaskStateCompleted
	default:
		return TaskStateTodo
	}
}

func (s TaskState) Cancel() TaskState {
	return TaskStateCanceled
}

func (s *TaskState) UnmarshalJSON(raw []byte) error {
	var v string
	if err := json.Unmarshal(raw, &v); err != nil {
		return err
	}
	state := TaskState(v)
	if !state.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidState, v)
	}
	*s = state
	return nil
}

type Task struct {
	ID        uint32    `json:"id"`
	ProjectID uint32    `json:"project_id"`
	State     TaskState `json:"state"`
	Title     string    `json:"title"`
}

func NewTask(id, projectID uint32, title string) Task {
	return Task{
		ID:        id,
		ProjectID: projectID,
		State:     TaskStateTodo,
		Title:     title,
	}
}

func (t *Task) ToggleState() {
	t.State = t.State.Toggle()
}

func (t *Task) Cancel() {
	t.State = t.State.Cancel()
}

func (t *Task) Rename(title string) {
	t.Title = title
}

func (t Task) Validate() error {
	if t.ID == 0 {
		return fmt.Errorf("%w: task id must be positive", ErrInvalidID)
	}
	if t.ID == ReservedID {
		return fmt.Errorf("%w: task id %d is reserved", ErrInvalidID, t.ID)
	}
	if !t.State.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidState, t.State)
	}
	return nil
}
