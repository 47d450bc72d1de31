package app

import (
	"errors"
	"fmt"
)

var ErrInvalidTransition = errors.New("app: invalid screen mode transition")

// ScreenMode gates which operations a key press may trigger. Main is the
// resting mode; every other mode returns to Main when it ends.
type ScreenMode string

const (
	ModeMain            ScreenMode = "Main"
	ModeAddingTask      ScreenMode = "AddingTask"
	ModeRenamingTask    ScreenMode = "RenamingTask"
	ModeRenamingProject ScreenMode = "RenamingProject"
	ModeDeletingTask    ScreenMode = "DeletingTask"
)

// IsEntry reports whether the mode routes key presses to the text editor.
func (m ScreenMode) IsEntry() bool {
	switch m {
	case ModeAddingTask, ModeRenamingTask, ModeRenamingProject:
		return true
	default:
		return false
	}
}

func (a *App) requireMode(op string, allowed ...ScreenMode) error {
	for _, m := range allowed {
		if a.mode == m {
			return nil
		}
	}
	return fmt.Errorf("%w: %s from %s", ErrInvalidTransition, op, a.mode)
}

func (a *App) BeginAddTask() error {
	if err := a.requireMode("add task", ModeMain); err != nil {
		return err
	}
	a.editor.Clear()
	a.mode = ModeAddingTask
	return nil
}

func (a *App) BeginRenameTask() error {
	if err := a.requireMode("rename task", ModeMain); err != nil {
		return err
	}
	if _, ok := a.CurrentTask(); !ok {
		return ErrNoTask
	}
	a.TaskToEditor()
	a.mode = ModeRenamingTask
	return nil
}

func (a *App) BeginRenameProject() error {
	if err := a.requireMode("rename project", ModeMain); err != nil {
		return err
	}
	a.ProjectToEditor()
	a.mode = ModeRenamingProject
	return nil
}

// BeginNewProject creates and activates a project, then opens its name for
// editing.
func (a *App) BeginNewProject() error {
	if err := a.requireMode("new project", ModeMain); err != nil {
		return err
	}
	a.AddProject(defaultProjectName)
	a.ProjectToEditor()
	a.mode = ModeRenamingProject
	return nil
}

func (a *App) BeginDeleteTask() error {
	if err := a.requireMode("delete task", ModeMain); err != nil {
		return err
	}
	if _, ok := a.CurrentTask(); !ok {
		return ErrNoTask
	}
	a.mode = ModeDeletingTask
	return nil
}

// CommitEntry applies the editor contents for the active entry mode and
// returns to Main.
func (a *App) CommitEntry() error {
	if err := a.requireMode("commit", ModeAddingTask, ModeRenamingTask, ModeRenamingProject); err != nil {
		return err
	}
	text := a.editor.Validate()
	switch a.mode {
	case ModeAddingTask:
		a.AddTask(text)
	case ModeRenamingTask:
		a.RenameTask(text)
	case ModeRenamingProject:
		a.RenameProject(text)
	}
	a.mode = ModeMain
	return nil
}

// CancelEntry discards the editor contents and returns to Main.
func (a *App) CancelEntry() error {
	if err := a.requireMode("cancel", ModeAddingTask, ModeRenamingTask, ModeRenamingProject); err != nil {
		return err
	}
	a.editor.Clear()
	a.mode = ModeMain
	return nil
}

// ConfirmDelete answers the delete prompt.
func (a *App) ConfirmDelete(yes bool) error {
	if err := a.requireMode("confirm delete", ModeDeletingTask); err != nil {
		return err
	}
	if yes {
		a.DeleteTask(a.currentTaskID)
	}
	a.mode = ModeMain
	return nil
}
