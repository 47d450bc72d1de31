package update

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	// main mode
	Quit          key.Binding
	Left          key.Binding
	Right         key.Binding
	Up            key.Binding
	Down          key.Binding
	Toggle        key.Binding
	Cancel        key.Binding
	Add           key.Binding
	Rename        key.Binding
	Delete        key.Binding
	NewProject    key.Binding
	RenameProject key.Binding
	Palette       key.Binding
	Help          key.Binding

	// entry modes
	ForceQuit  key.Binding
	Commit     key.Binding
	Abort      key.Binding
	Backspace  key.Binding
	CaretLeft  key.Binding
	CaretRight key.Binding
	Home       key.Binding
	End        key.Binding

	// delete prompt
	Confirm key.Binding
	Deny    key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit:          key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "save and quit")),
		Left:          key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "previous project")),
		Right:         key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next project")),
		Up:            key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "previous task")),
		Down:          key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "next task")),
		Toggle:        key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "toggle done")),
		Cancel:        key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "cancel task")),
		Add:           key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add task")),
		Rename:        key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "rename task")),
		Delete:        key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete task")),
		NewProject:    key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new project")),
		RenameProject: key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "rename project")),
		Palette:       key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "command palette")),
		Help:          key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "toggle help")),

		ForceQuit:  key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "save and quit")),
		Commit:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm")),
		Abort:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "discard")),
		Backspace:  key.NewBinding(key.WithKeys("backspace"), key.WithHelp("backspace", "delete char")),
		CaretLeft:  key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "caret left")),
		CaretRight: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "caret right")),
		Home:       key.NewBinding(key.WithKeys("home", "ctrl+a"), key.WithHelp("home", "line start")),
		End:        key.NewBinding(key.WithKeys("end", "ctrl+e"), key.WithHelp("end", "line end")),

		Confirm: key.NewBinding(key.WithKeys("y", "Y"), key.WithHelp("y", "delete")),
		Deny:    key.NewBinding(key.WithKeys("n", "N", "esc"), key.WithHelp("n/esc", "keep")),
	}
}
