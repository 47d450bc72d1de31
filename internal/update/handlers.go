package update

import (
	"errors"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/tuido/internal/app"
	"github.com/sandeepkv93/tuido/internal/editor"
)

func (m Model) handleMainKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	a := m.App
	switch {
	case key.Matches(msg, m.Keys.Quit):
		return m.quit()
	case key.Matches(msg, m.Keys.Left):
		a.SwitchProject(app.Left)
		m.persist("switch project")
	case key.Matches(msg, m.Keys.Right):
		a.SwitchProject(app.Right)
		m.persist("switch project")
	case key.Matches(msg, m.Keys.Up):
		a.NavTasks(app.Up)
	case key.Matches(msg, m.Keys.Down):
		a.NavTasks(app.Down)
	case key.Matches(msg, m.Keys.Toggle):
		if _, ok := a.CurrentTask(); ok {
			a.ToggleTaskState()
			m.persist("toggle task")
		}
	case key.Matches(msg, m.Keys.Cancel):
		if _, ok := a.CurrentTask(); ok {
			a.CancelTask()
			m.persist("cancel task")
		}
	case key.Matches(msg, m.Keys.Add):
		m.begin(a.BeginAddTask())
	case key.Matches(msg, m.Keys.Rename):
		m.begin(a.BeginRenameTask())
	case key.Matches(msg, m.Keys.Delete):
		m.begin(a.BeginDeleteTask())
	case key.Matches(msg, m.Keys.NewProject):
		if m.begin(a.BeginNewProject()) {
			m.persist("new project")
		}
	case key.Matches(msg, m.Keys.RenameProject):
		m.begin(a.BeginRenameProject())
	case key.Matches(msg, m.Keys.Palette):
		return m.openPalette()
	case key.Matches(msg, m.Keys.Help):
		m.HelpVisible = !m.HelpVisible
		if m.HelpVisible {
			m.setStatus("help shown")
		} else {
			m.setStatus("help hidden")
		}
	}
	return m, nil
}

// begin reports whether a mode transition succeeded. A missing selection is
// a hint, not an error.
func (m *Model) begin(err error) bool {
	switch {
	case err == nil:
		m.Status = StatusBar{}
		return true
	case errors.Is(err, app.ErrNoTask):
		m.setStatus("no task selected")
	default:
		m.setError(err)
		m.logger.Warn("mode transition refused", "err", err)
	}
	return false
}

func (m Model) handleEntryKey(msg tea.KeyMsg) Model {
	a := m.App
	ed := a.Editor()
	switch {
	case key.Matches(msg, m.Keys.Commit):
		mode := a.Mode()
		if err := a.CommitEntry(); err != nil {
			m.setError(err)
			return m
		}
		m.setStatus(commitMessage(mode))
		m.persist(commitMessage(mode))
	case key.Matches(msg, m.Keys.Abort):
		if err := a.CancelEntry(); err != nil {
			m.setError(err)
			return m
		}
		m.setStatus("edit discarded")
	case key.Matches(msg, m.Keys.Backspace):
		ed.Delete()
	case key.Matches(msg, m.Keys.CaretLeft):
		ed.MoveCursor(editor.Left)
	case key.Matches(msg, m.Keys.CaretRight):
		ed.MoveCursor(editor.Right)
	case key.Matches(msg, m.Keys.Home):
		ed.Home()
	case key.Matches(msg, m.Keys.End):
		ed.End()
	case msg.Type == tea.KeySpace:
		ed.Insert(' ')
	case msg.Type == tea.KeyRunes:
		for _, r := range msg.Runes {
			ed.Insert(r)
		}
	}
	return m
}

func commitMessage(mode app.ScreenMode) string {
	switch mode {
	case app.ModeAddingTask:
		return "task added"
	case app.ModeRenamingTask:
		return "task renamed"
	default:
		return "project renamed"
	}
}

func (m Model) handleDeleteKey(msg tea.KeyMsg) Model {
	a := m.App
	switch {
	case key.Matches(msg, m.Keys.Confirm):
		if err := a.ConfirmDelete(true); err != nil {
			m.setError(err)
			return m
		}
		m.setStatus("task deleted")
		m.persist("delete task")
	case key.Matches(msg, m.Keys.Deny):
		if err := a.ConfirmDelete(false); err != nil {
			m.setError(err)
			return m
		}
		m.setStatus("delete aborted")
	}
	return m
}
