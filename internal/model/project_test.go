package model

import (
	"errors"
	"testing"
)

func TestProjectAddAndDeleteTask(t *testing.T) {
	project := NewProject(1, "Projet 1")
	project.AddTask(1, "Bonjour")
	project.AddTask(2, "Salut")

	if len(project.Tasks) != 2 || project.Tasks[0].Title != "Bonjour" {
		t.Fatalf("unexpected tasks: %#v", project.Tasks)
	}
	if project.Tasks[1].ProjectID != 1 || project.Tasks[1].State != TaskStateTodo {
		t.Fatalf("unexpected new task: %#v", project.Tasks[1])
	}

	project.DeleteTask(1)
	if len(project.Tasks) != 1 || project.Tasks[0].Title != "Salut" {
		t.Fatalf("unexpected tasks after delete: %#v", project.Tasks)
	}

	project.DeleteTask(42)
	if len(project.Tasks) != 1 {
		t.Fatalf("delete of unknown id must be a no-op, got %#v", project.Tasks)
	}
}

func TestProjectTaskMutationsByID(t *testing.T) {
	project := NewProject(1, "p")
	project.AddTask(7, "a")
	project.AddTask(3, "b")

	project.ToggleTaskState(3)
	project.CancelTask(7)
	project.RenameTask(3, "renamed")
	project.ToggleTaskState(99)

	a, _ := project.Task(7)
	b, _ := project.Task(3)
	if a.State != TaskStateCanceled {
		t.Fatalf("expected task 7 canceled, got %q", a.State)
	}
	if b.State != TaskStateCompleted || b.Title != "renamed" {
		t.Fatalf("unexpected task 3: %#v", b)
	}
	if ids := project.TaskIDs(); len(ids) != 2 || ids[0] != 7 || ids[1] != 3 {
		t.Fatalf("expected insertion order [7 3], got %v", ids)
	}
}

func TestProjectToggleCurrentAndRename(t *testing.T) {
	project := NewProject(2, "old")
	project.ToggleCurrent()
	if !project.IsCurrent {
		t.Fatal("expected current after toggle")
	}
	project.ToggleCurrent()
	if project.IsCurrent {
		t.Fatal("expected not current after second toggle")
	}
	project.Rename("")
	if project.Name != "" {
		t.Fatalf("expected empty name, got %q", project.Name)
	}
}

func TestValidateCollectionDuplicateTaskIDs(t *testing.T) {
	a := NewProject(1, "a")
	a.AddTask(1, "x")
	b := NewProject(2, "b")
	b.AddTask(1, "y")

	err := ValidateCollection([]Project{a, b})
	if !errors.Is(err, ErrDuplicateTaskID) {
		t.Fatalf("expected ErrDuplicateTaskID, got %v", err)
	}
}

func TestMaxIDsAndClone(t *testing.T) {
	a := NewProject(3, "a")
	a.AddTask(4, "x")
	b := NewProject(5, "b")
	b.AddTask(9, "y")
	projects := []Project{a, b}

	if got := MaxTaskID(projects); got != 9 {
		t.Fatalf("MaxTaskID = %d, want 9", got)
	}
	if got := MaxProjectID(projects); got != 5 {
		t.Fatalf("MaxProjectID = %d, want 5", got)
	}
	if MaxTaskID(nil) != 0 || MaxProjectID(nil) != 0 {
		t.Fatal("expected zero maxima for empty collection")
	}

	clone := CloneProjects(projects)
	clone[0].Tasks[0].Title = "changed"
	if projects[0].Tasks[0].Title != "x" {
		t.Fatal("clone must not share task storage")
	}
}
