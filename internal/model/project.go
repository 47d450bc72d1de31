package model

import (
	"errors"
	"fmt"
	"slices"
)

var ErrDuplicateTaskID = errors.New("model: duplicate task id")

type Project struct {
	ID        uint32 `json:"id"`
	Name      string `json:"name"`
	IsCurrent bool   `json:"is_current"`
	Tasks     []Task `json:"tasks"`
}

func NewProject(id uint32, name string) Project {
	return Project{
		ID:    id,
		Name:  name,
		Tasks: []Task{},
	}
}

func (p *Project) ToggleCurrent() {
	p.IsCurrent = !p.IsCurrent
}

func (p *Project) Rename(name string) {
	p.Name = name
}

// AddTask appends a Todo task. The caller owns id allocation.
func (p *Project) AddTask(id uint32, title string) {
	p.Tasks = append(p.Tasks, NewTask(id, p.ID, title))
}

func (p *Project) DeleteTask(id uint32) {
	p.Tasks = slices.DeleteFunc(p.Tasks, func(task Task) bool { return task.ID == id })
}

func (p *Project) ToggleTaskState(id uint32) {
	if task := p.task(id); task != nil {
		task.ToggleState()
	}
}

func (p *Project) CancelTask(id uint32) {
	if task := p.task(id); task != nil {
		task.Cancel()
	}
}

func (p *Project) RenameTask(id uint32, title string) {
	if task := p.task(id); task != nil {
		task.Rename(title)
	}
}

// Task returns a copy of the task with the given id.
func (p Project) Task(id uint32) (Task, bool) {
	for _, task := range p.Tasks {
		if task.ID == id {
			return task, true
		}
	}
	return Task{}, false
}

// TaskIDs returns ids in insertion order.
func (p Project) TaskIDs() []uint32 {
	ids := make([]uint32, 0, len(p.Tasks))
	for _, task := range p.Tasks {
		ids = append(ids, task.ID)
	}
	return ids
}

func (p *Project) task(id uint32) *Task {
	for i := range p.Tasks {
		if p.Tasks[i].ID == id {
			return &p.Tasks[i]
		}
	}
	return nil
}

func (p Project) Validate() error {
	if p.ID == 0 {
		return fmt.Errorf("%w: project id must be positive", ErrInvalidID)
	}
	if p.ID == ReservedID {
		return fmt.Errorf("%w: project id %d is reserved", ErrInvalidID, p.ID)
	}
	for _, task := range p.Tasks {
		if err := task.Validate(); err != nil {
			return fmt.Errorf("project %d: %w", p.ID, err)
		}
	}
	return nil
}

// ValidateCollection checks every project and that task ids are unique
// across the whole collection.
func ValidateCollection(projects []Project) error {
	seenProjects := make(map[uint32]bool, len(projects))
	seenTasks := make(map[uint32]bool)
	for _, project := range projects {
		if err := project.Validate(); err != nil {
			return err
		}
		if seenProjects[project.ID] {
			return fmt.Errorf("%w: duplicate project id %d", ErrInvalidID, project.ID)
		}
		seenProjects[project.ID] = true
		for _, task := range project.Tasks {
			if seenTasks[task.ID] {
				return fmt.Errorf("%w: %d", ErrDuplicateTaskID, task.ID)
			}
			seenTasks[task.ID] = true
		}
	}
	return nil
}

func MaxTaskID(projects []Project) uint32 {
	var highest uint32
	for _, project := range projects {
		for _, task := range project.Tasks {
			if task.ID > highest {
				highest = task.ID
			}
		}
	}
	return highest
}

func MaxProjectID(projects []Project) uint32 {
	var highest uint32
	for _, project := range projects {
		if project.ID > highest {
			highest = project.ID
		}
	}
	return highest
}

// CloneProjects deep-copies the collection so callers never share task slices.
func CloneProjects(projects []Project) []Project {
	out := make([]Project, len(projects))
	for i, project := range projects {
		out[i] = project
		out[i].Tasks = append([]Task{}, project.Tasks...)
	}
	return out
}
