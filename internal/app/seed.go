package app

import "github.com/sandeepkv93/tuido/internal/model"

// SeedProjects is the collection created on first run.
func SeedProjects() []model.Project {
	personal := model.NewProject(1, "Personal")
	personal.AddTask(1, "Welcome to tuido")
	personal.AddTask(2, "Press a to add a task")
	personal.ToggleTaskState(1)
	personal.ToggleCurrent()

	work := model.NewProject(2, "Work")
	work.AddTask(3, "Use left/right to switch projects")

	return []model.Project{personal, work}
}
