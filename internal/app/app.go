// Package app owns the in-memory project collection and the selection
// cursors the terminal UI operates on.
//
// Every exported operation runs to completion synchronously. The collection
// keeps exactly one current project while it is non-empty, and the current
// task id always resolves to a task of that project or is 0 when the
// project has no tasks.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/sandeepkv93/tuido/internal/editor"
	"github.com/sandeepkv93/tuido/internal/model"
)

// NoTask is the current task id of a project without tasks.
const NoTask uint32 = 0

const defaultProjectName = "New project"

var ErrNoTask = errors.New("app: no task selected")

// Persister is the subset of storage.Store the controller needs.
type Persister interface {
	Load(ctx context.Context) ([]model.Project, error)
	Save(ctx context.Context, projects []model.Project) error
}

type App struct {
	projects         []model.Project
	editor           *editor.Editor
	nextTaskID       uint32
	currentProjectID uint32
	currentTaskID    uint32
	mode             ScreenMode
}

// New builds a controller over an already loaded, non-empty collection.
func New(projects []model.Project) *App {
	if len(projects) == 0 {
		panic("app: New requires at least one project")
	}
	a := &App{
		projects: model.CloneProjects(projects),
		editor:   editor.New(),
		mode:     ModeMain,
	}
	a.initNextTaskID()
	a.initCurrentProjectID()
	a.initCurrentTaskID()
	return a
}

// Bootstrap loads the collection, seeds and persists defaults when nothing
// was saved, then builds the controller.
func Bootstrap(ctx context.Context, store Persister, logger *slog.Logger) (*App, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	projects, err := store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load projects: %w", err)
	}
	seeded := false
	if len(projects) == 0 {
		projects = SeedProjects()
		seeded = true
	}
	a := New(projects)
	if seeded {
		logger.Info("seeded default projects", "projects", len(projects))
		if err := a.Save(ctx, store); err != nil {
			return nil, err
		}
	}
	logger.Info("loaded projects",
		"projects", len(a.projects),
		"current_project_id", a.currentProjectID,
		"next_task_id", a.nextTaskID,
	)
	return a, nil
}

// Save hands a copy of the collection to the store.
func (a *App) Save(ctx context.Context, store Persister) error {
	if err := store.Save(ctx, a.Projects()); err != nil {
		return fmt.Errorf("save projects: %w", err)
	}
	return nil
}

func (a *App) initNextTaskID() {
	a.nextTaskID = model.MaxTaskID(a.projects) + 1
}

// initCurrentProjectID picks the flagged project. Loaded data with zero or
// several flags is repaired so that exactly one project is current.
func (a *App) initCurrentProjectID() {
	current := -1
	for i := range a.projects {
		if !a.projects[i].IsCurrent {
			continue
		}
		if current == -1 {
			current = i
			continue
		}
		a.projects[i].ToggleCurrent()
	}
	if current == -1 {
		current = 0
		a.projects[0].ToggleCurrent()
	}
	a.currentProjectID = a.projects[current].ID
}

func (a *App) initCurrentTaskID() {
	ids := a.currentProject().TaskIDs()
	if len(ids) == 0 {
		a.currentTaskID = NoTask
		return
	}
	a.currentTaskID = slices.Min(ids)
}

func (a *App) currentProject() *model.Project {
	for i := range a.projects {
		if a.projects[i].ID == a.currentProjectID {
			return &a.projects[i]
		}
	}
	panic(fmt.Sprintf("app: current project %d does not exist", a.currentProjectID))
}

// AddTask appends a Todo task to the current project and selects it.
func (a *App) AddTask(title string) uint32 {
	id := a.nextTaskID
	if id == model.ReservedID {
		panic("app: task ids exhausted")
	}
	a.currentProject().AddTask(id, title)
	a.nextTaskID++
	a.currentTaskID = id
	return id
}

// DeleteTask removes id from the current project and moves the selection to
// a live neighbour.
func (a *App) DeleteTask(id uint32) {
	a.currentProject().DeleteTask(id)
	a.NavTasks(Up)
}

func (a *App) ToggleTaskState() {
	a.currentProject().ToggleTaskState(a.currentTaskID)
}

func (a *App) CancelTask() {
	a.currentProject().CancelTask(a.currentTaskID)
}

func (a *App) RenameTask(title string) {
	a.currentProject().RenameTask(a.currentTaskID, title)
}

func (a *App) RenameProject(name string) {
	a.currentProject().Rename(name)
}

// AddProject creates a project with the next project id and makes it current.
func (a *App) AddProject(name string) uint32 {
	if len(a.projects) == 0 {
		panic("app: AddProject requires an existing project")
	}
	id := model.MaxProjectID(a.projects) + 1
	if id == model.ReservedID {
		panic("app: project ids exhausted")
	}
	a.projects = append(a.projects, model.NewProject(id, name))
	a.activate(id)
	return id
}

// activate moves the current flag to id and resets the task selection.
func (a *App) activate(id uint32) {
	a.currentProject().ToggleCurrent()
	for i := range a.projects {
		if a.projects[i].ID == id {
			a.projects[i].ToggleCurrent()
			a.currentProjectID = id
			break
		}
	}
	a.initCurrentTaskID()
}

// TaskToEditor primes the editor with the current task title.
func (a *App) TaskToEditor() {
	task, ok := a.CurrentTask()
	if !ok {
		a.editor.Clear()
		return
	}
	a.editor.SetString(task.Title)
}

// ProjectToEditor primes the editor with the current project name.
func (a *App) ProjectToEditor() {
	a.editor.SetString(a.currentProject().Name)
}

func (a *App) CurrentProjectName() string { return a.currentProject().Name }

func (a *App) CurrentProjectID() uint32 { return a.currentProjectID }

func (a *App) CurrentTaskID() uint32 { return a.currentTaskID }

func (a *App) NextTaskID() uint32 { return a.nextTaskID }

// CurrentTasks returns a copy of the current project's tasks in insertion order.
func (a *App) CurrentTasks() []model.Task {
	return append([]model.Task{}, a.currentProject().Tasks...)
}

func (a *App) CurrentTask() (model.Task, bool) {
	return a.currentProject().Task(a.currentTaskID)
}

// Projects returns a deep copy of the collection.
func (a *App) Projects() []model.Project {
	return model.CloneProjects(a.projects)
}

// ProjectPosition reports the 1-based rank of the current project by id.
func (a *App) ProjectPosition() (pos, total int) {
	ids := a.projectIDs()
	return slices.Index(ids, a.currentProjectID) + 1, len(ids)
}

func (a *App) Editor() *editor.Editor { return a.editor }

func (a *App) Mode() ScreenMode { return a.mode }

type Stats struct {
	Todo      int
	Completed int
	Canceled  int
}

func (s Stats) Total() int { return s.Todo + s.Completed + s.Canceled }

// Stats counts the current project's tasks per state.
func (a *App) Stats() Stats {
	var s Stats
	for _, task := range a.currentProject().Tasks {
		switch task.State {
		case model.TaskStateTodo:
			s.Todo++
		case model.TaskStateCompleted:
			s.Completed++
		case model.TaskStateCanceled:
			s.Canceled++
		}
	}
	return s
}
