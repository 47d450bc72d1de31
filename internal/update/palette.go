package update

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/tuido/internal/app"
	"github.com/sandeepkv93/tuido/internal/commands"
)

func (m Model) openPalette() (Model, tea.Cmd) {
	m.Palette.Active = true
	m.Palette.Input = ""
	m.commandInput.SetValue("")
	cmd := m.commandInput.Focus()
	m.setStatus("command palette active")
	return m, cmd
}

func (m Model) closePalette() Model {
	m.Palette.Active = false
	m.Palette.Input = ""
	m.commandInput.SetValue("")
	m.commandInput.Blur()
	return m
}

func (m Model) handlePaletteKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m = m.closePalette()
		m.setStatus("command palette closed")
		return m, nil
	case "enter":
		m.Palette.Input = m.commandInput.Value()
		return m.executePaletteCommand(), nil
	}
	if msg.Type == tea.KeySpace && len(msg.Runes) == 0 {
		msg.Runes = []rune{' '}
	}
	var cmd tea.Cmd
	m.commandInput, cmd = m.commandInput.Update(msg)
	m.Palette.Input = m.commandInput.Value()
	return m, cmd
}

func (m Model) executePaletteCommand() Model {
	raw := strings.TrimSpace(m.Palette.Input)
	m = m.closePalette()

	cmd, err := commands.Parse(raw)
	if err != nil {
		m.setError(err)
		return m
	}

	a := m.App
	res, err := commands.Execute(cmd, commands.Handlers{
		Add: func(t commands.TextArgs) (commands.Result, error) {
			id := a.AddTask(t.Text)
			return commands.Result{Message: fmt.Sprintf("added task %d: %s", id, t.Text)}, nil
		},
		Rename: func(t commands.TextArgs) (commands.Result, error) {
			if _, ok := a.CurrentTask(); !ok {
				return commands.Result{}, noTaskError()
			}
			a.RenameTask(t.Text)
			return commands.Result{Message: fmt.Sprintf("task renamed to %s", t.Text)}, nil
		},
		Project: func(t commands.TextArgs) (commands.Result, error) {
			a.RenameProject(t.Text)
			return commands.Result{Message: fmt.Sprintf("project renamed to %s", t.Text)}, nil
		},
		New: func(t commands.TextArgs) (commands.Result, error) {
			if t.Text == "" {
				if err := a.BeginNewProject(); err != nil {
					return commands.Result{}, err
				}
				return commands.Result{Message: "name the new project"}, nil
			}
			id := a.AddProject(t.Text)
			return commands.Result{Message: fmt.Sprintf("added project %d: %s", id, t.Text)}, nil
		},
		Done: func() (commands.Result, error) {
			if _, ok := a.CurrentTask(); !ok {
				return commands.Result{}, noTaskError()
			}
			a.ToggleTaskState()
			return commands.Result{Message: "task state toggled"}, nil
		},
		Cancel: func() (commands.Result, error) {
			if _, ok := a.CurrentTask(); !ok {
				return commands.Result{}, noTaskError()
			}
			a.CancelTask()
			return commands.Result{Message: "task canceled"}, nil
		},
	})
	if err != nil {
		m.setError(err)
		m.logger.Warn("command failed", "command", raw, "err", err)
		return m
	}

	m.setStatus(res.Message)
	m.logger.Info("command", "type", cmd.Type, "result", res.Message)
	m.persist(string(cmd.Type))
	return m
}

func noTaskError() error {
	return &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: app.ErrNoTask.Error()}
}
