package update

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/sandeepkv93/tuido/internal/app"
	"github.com/sandeepkv93/tuido/internal/views"
)

type helpKeyMap struct {
	short []key.Binding
	full  [][]key.Binding
}

func (k helpKeyMap) ShortHelp() []key.Binding  { return k.short }
func (k helpKeyMap) FullHelp() [][]key.Binding { return k.full }

func (m Model) mainBindings() []key.Binding {
	k := m.Keys
	return []key.Binding{
		k.Up, k.Down, k.Left, k.Right, k.Toggle, k.Cancel, k.Add, k.Rename,
		k.Delete, k.NewProject, k.RenameProject, k.Palette, k.Help, k.Quit,
	}
}

func (m Model) entryBindings() []key.Binding {
	k := m.Keys
	return []key.Binding{k.Commit, k.Abort, k.Backspace, k.CaretLeft, k.CaretRight, k.Home, k.End}
}

func (m Model) deleteBindings() []key.Binding {
	return []key.Binding{m.Keys.Confirm, m.Keys.Deny}
}

// modeBindings are the hints shown in the help line for the active mode.
func (m Model) modeBindings() []key.Binding {
	switch {
	case m.Palette.Active:
		return []key.Binding{m.Keys.Commit, m.Keys.Abort}
	case m.App.Mode().IsEntry():
		return m.entryBindings()
	case m.App.Mode() == app.ModeDeletingTask:
		return m.deleteBindings()
	default:
		k := m.Keys
		return []key.Binding{k.Add, k.Toggle, k.Delete, k.Help, k.Quit}
	}
}

func (m Model) renderHelpLine() string {
	bindings := m.modeBindings()
	return m.helpModel.View(helpKeyMap{
		short: bindings,
		full:  [][]key.Binding{bindings},
	})
}

func (m Model) helpSheetBindings() []views.KeyHelp {
	var out []views.KeyHelp
	groups := [][]key.Binding{m.mainBindings(), m.entryBindings(), m.deleteBindings()}
	for _, group := range groups {
		for _, b := range group {
			h := b.Help()
			out = append(out, views.KeyHelp{Keys: h.Key, Action: h.Desc})
		}
	}
	return out
}

func (m Model) renderHelpIfVisible() string {
	if !m.HelpVisible {
		return ""
	}
	return m.helpSheet
}
