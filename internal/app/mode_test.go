package app

import (
	"errors"
	"testing"

	"github.com/sandeepkv93/tuido/internal/model"
)

func typeText(a *App, s string) {
	for _, r := range s {
		a.Editor().Insert(r)
	}
}

func TestAddTaskFlow(t *testing.T) {
	a := New(SeedProjects())
	if err := a.BeginAddTask(); err != nil {
		t.Fatalf("begin add: %v", err)
	}
	if a.Mode() != ModeAddingTask || !a.Mode().IsEntry() {
		t.Fatalf("unexpected mode %q", a.Mode())
	}
	typeText(a, "Write docs")
	if err := a.CommitEntry(); err != nil {
		t.Fatalf("commit: %v", err)
	}
	if a.Mode() != ModeMain {
		t.Fatalf("expected Main after commit, got %q", a.Mode())
	}
	task, ok := a.CurrentTask()
	if !ok || task.Title != "Write docs" || task.ID != 4 {
		t.Fatalf("unexpected new task: %#v", task)
	}
	if a.Editor().Value() != "" {
		t.Fatalf("editor must be cleared after commit, got %q", a.Editor().Value())
	}
}

func TestCancelEntryDiscardsText(t *testing.T) {
	a := New(SeedProjects())
	before := len(a.CurrentTasks())
	_ = a.BeginAddTask()
	typeText(a, "draft")
	if err := a.CancelEntry(); err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if a.Mode() != ModeMain || a.Editor().Value() != "" {
		t.Fatalf("unexpected state after cancel: mode=%q editor=%q", a.Mode(), a.Editor().Value())
	}
	if len(a.CurrentTasks()) != before {
		t.Fatal("cancel must not add a task")
	}
}

func TestRenameTaskFlow(t *testing.T) {
	a := New(SeedProjects())
	if err := a.BeginRenameTask(); err != nil {
		t.Fatalf("begin rename: %v", err)
	}
	if a.Editor().Value() != "Welcome to tuido" {
		t.Fatalf("editor not primed: %q", a.Editor().Value())
	}
	a.Editor().Delete()
	typeText(a, "!")
	if err := a.CommitEntry(); err != nil {
		t.Fatalf("commit: %v", err)
	}
	if task, _ := a.CurrentTask(); task.Title != "Welcome to tuid!" {
		t.Fatalf("unexpected title %q", task.Title)
	}
}

func TestRenameProjectFlow(t *testing.T) {
	a := New(SeedProjects())
	_ = a.BeginRenameProject()
	if a.Editor().Value() != "Personal" {
		t.Fatalf("editor not primed: %q", a.Editor().Value())
	}
	a.Editor().Clear()
	typeText(a, "Home")
	_ = a.CommitEntry()
	if a.CurrentProjectName() != "Home" {
		t.Fatalf("unexpected name %q", a.CurrentProjectName())
	}
}

func TestNewProjectFlow(t *testing.T) {
	a := New(SeedProjects())
	if err := a.BeginNewProject(); err != nil {
		t.Fatalf("begin new project: %v", err)
	}
	if a.Mode() != ModeRenamingProject || a.CurrentProjectID() != 3 {
		t.Fatalf("unexpected state: mode=%q project=%d", a.Mode(), a.CurrentProjectID())
	}
	if a.Editor().Value() != "New project" {
		t.Fatalf("editor not primed with default name: %q", a.Editor().Value())
	}
	a.Editor().Clear()
	typeText(a, "Side")
	_ = a.CommitEntry()
	if a.CurrentProjectName() != "Side" {
		t.Fatalf("unexpected name %q", a.CurrentProjectName())
	}
	assertSingleCurrent(t, a)
}

func TestDeleteFlow(t *testing.T) {
	a := New(SeedProjects())
	if err := a.BeginDeleteTask(); err != nil {
		t.Fatalf("begin delete: %v", err)
	}
	if err := a.ConfirmDelete(false); err != nil {
		t.Fatalf("decline: %v", err)
	}
	if len(a.CurrentTasks()) != 2 || a.Mode() != ModeMain {
		t.Fatalf("decline must keep tasks, mode=%q", a.Mode())
	}

	_ = a.BeginDeleteTask()
	if err := a.ConfirmDelete(true); err != nil {
		t.Fatalf("confirm: %v", err)
	}
	if len(a.CurrentTasks()) != 1 || a.CurrentTaskID() != 2 {
		t.Fatalf("unexpected state after delete: tasks=%d current=%d", len(a.CurrentTasks()), a.CurrentTaskID())
	}
}

func TestTaskModesRequireSelection(t *testing.T) {
	a := New([]model.Project{projectWithTasks(1, true)})
	if err := a.BeginRenameTask(); !errors.Is(err, ErrNoTask) {
		t.Fatalf("expected ErrNoTask, got %v", err)
	}
	if err := a.BeginDeleteTask(); !errors.Is(err, ErrNoTask) {
		t.Fatalf("expected ErrNoTask, got %v", err)
	}
	if a.Mode() != ModeMain {
		t.Fatalf("mode must stay Main, got %q", a.Mode())
	}
}

func TestInvalidTransitions(t *testing.T) {
	a := New(SeedProjects())
	if err := a.CommitEntry(); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("commit from Main: expected ErrInvalidTransition, got %v", err)
	}
	if err := a.ConfirmDelete(true); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("confirm from Main: expected ErrInvalidTransition, got %v", err)
	}
	_ = a.BeginAddTask()
	if err := a.BeginDeleteTask(); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("delete while adding: expected ErrInvalidTransition, got %v", err)
	}
	if err := a.BeginNewProject(); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("new project while adding: expected ErrInvalidTransition, got %v", err)
	}
	_ = a.CancelEntry()
	_ = a.BeginDeleteTask()
	if err := a.CancelEntry(); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("cancel entry while deleting: expected ErrInvalidTransition, got %v", err)
	}
	if a.Mode() != ModeDeletingTask {
		t.Fatalf("failed transition must not change mode, got %q", a.Mode())
	}
}
