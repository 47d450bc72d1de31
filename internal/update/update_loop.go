package update

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/tuido/internal/app"
	"github.com/sandeepkv93/tuido/internal/views"
)

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.KeyMsg:
		prev := m.Status
		next, cmd := m.handleKey(typed)
		next, clearCmd := next.scheduleStatusClear(prev)
		switch {
		case clearCmd == nil:
			return next, cmd
		case cmd == nil:
			return next, clearCmd
		default:
			return next, tea.Batch(cmd, clearCmd)
		}
	case tea.WindowSizeMsg:
		m.width = typed.Width
		m.helpModel.Width = typed.Width
		m.commandInput.Width = max(typed.Width-4, 10)
		return m, nil
	case ClearStatusMsg:
		if typed.Seq == m.statusSeq && !m.Status.IsError {
			m.Status = StatusBar{}
		}
		return m, nil
	}
	if m.Palette.Active {
		// cursor blink and other textinput messages
		var cmd tea.Cmd
		m.commandInput, cmd = m.commandInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if key.Matches(msg, m.Keys.ForceQuit) {
		return m.quit()
	}
	if m.Palette.Active {
		return m.handlePaletteKey(msg)
	}
	switch mode := m.App.Mode(); {
	case mode.IsEntry():
		return m.handleEntryKey(msg), nil
	case mode == app.ModeDeletingTask:
		return m.handleDeleteKey(msg), nil
	default:
		return m.handleMainKey(msg)
	}
}

// quit saves once more before leaving the program loop.
func (m Model) quit() (Model, tea.Cmd) {
	m.persist("quit")
	m.Quitting = true
	m.logger.Info("quit")
	return m, tea.Quit
}

func (m Model) View() string {
	if m.Quitting {
		return ""
	}
	a := m.App
	mode := a.Mode()
	ed := a.Editor()
	before, after := ed.Split()
	editorData := views.EditorData{Before: before, After: after}

	pos, total := a.ProjectPosition()
	header := views.HeaderData{ProjectName: a.CurrentProjectName(), Position: pos, Total: total}
	if mode == app.ModeRenamingProject {
		hd := editorData
		hd.Width = max(m.width-12, 0)
		header.Editor = &hd
	}

	list := views.TaskListData{
		Tasks:     a.CurrentTasks(),
		CurrentID: a.CurrentTaskID(),
		Adding:    mode == app.ModeAddingTask,
		Editor:    editorData,
		Width:     max(m.width-4, 0),
	}
	if mode == app.ModeRenamingTask {
		list.RenamingID = a.CurrentTaskID()
	}

	prompt := ""
	switch {
	case m.Palette.Active:
		prompt = m.commandInput.View()
	case mode == app.ModeAddingTask:
		prompt = views.RenderEntryPrompt("new task")
	case mode == app.ModeRenamingTask:
		prompt = views.RenderEntryPrompt("rename task")
	case mode == app.ModeRenamingProject:
		prompt = views.RenderEntryPrompt("rename project")
	case mode == app.ModeDeletingTask:
		if task, ok := a.CurrentTask(); ok {
			prompt = views.RenderDeletePrompt(task.Title)
		}
	}

	status := ""
	if m.Status.Text != "" {
		if m.Status.IsError {
			status = fmt.Sprintf("error: %s", m.Status.Text)
		} else {
			status = m.Status.Text
		}
	}

	stats := a.Stats()
	return views.RenderApp(views.AppData{
		Header:     views.RenderHeader(header),
		Body:       views.RenderTaskList(list),
		Prompt:     prompt,
		StatusLine: status,
		StatusErr:  m.Status.IsError,
		Help:       joinNonEmpty(m.renderHelpLine(), m.renderHelpIfVisible()),
		Footer: views.RenderFooter(views.FooterData{
			Mode:  string(mode),
			Stats: views.StatsData{Todo: stats.Todo, Completed: stats.Completed, Canceled: stats.Canceled},
		}),
	})
}

func joinNonEmpty(parts ...string) string {
	out := ""
	for _, p := range parts {
		if p == "" {
			continue
		}
		if out != "" {
			out += "\n"
		}
		out += p
	}
	return out
}
