package update

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/tuido/internal/app"
	"github.com/sandeepkv93/tuido/internal/views"
)

type StatusBar struct {
	Text    string
	IsError bool
}

type CommandPaletteState struct {
	Active bool
	Input  string
}

type Model struct {
	App         *app.App
	Palette     CommandPaletteState
	HelpVisible bool
	Status      StatusBar
	Keys        KeyMap
	Quitting    bool
	LastError   error

	store        app.Persister
	logger       *slog.Logger
	cfg          RuntimeConfig
	commandInput textinput.Model
	helpModel    help.Model
	helpSheet    string
	width        int
	statusSeq    int
}

// ClearStatusMsg fires when a status message has been shown for the
// configured time. Seq ties it to the message it was scheduled for.
type ClearStatusMsg struct {
	Seq int
}

// NewModel wraps a controller without persistence. Used by tests and demos.
func NewModel(a *app.App) Model {
	return NewModelWithConfig(a, nil, nil, DefaultRuntimeConfig())
}

// NewModelWithConfig wraps a controller whose mutations are written to store.
// A nil logger discards log output.
func NewModelWithConfig(a *app.App, store app.Persister, logger *slog.Logger, cfg RuntimeConfig) Model {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	m := Model{
		App:    a,
		Keys:   DefaultKeyMap(),
		store:  store,
		logger: logger,
		cfg:    cfg,
	}
	m.initBubbleComponents()
	return m
}

func (m *Model) initBubbleComponents() {
	m.commandInput = textinput.New()
	m.commandInput.Prompt = ":"
	m.commandInput.Placeholder = "add <title> | rename <title> | project <name> | new [name] | done | cancel"
	m.commandInput.CharLimit = 256

	m.helpModel = help.New()
	m.helpSheet = views.RenderHelpSheet("tuido keys", m.helpSheetBindings())
}

// persist writes the collection after a mutation. Failures are reported in
// the status bar and logged; the in-memory state is kept either way.
func (m *Model) persist(action string) {
	if m.store == nil {
		return
	}
	ctx := context.Background()
	if m.cfg.SaveTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.cfg.SaveTimeout)
		defer cancel()
	}
	if err := m.App.Save(ctx, m.store); err != nil {
		m.LastError = err
		m.Status = StatusBar{Text: fmt.Sprintf("%s: %v", action, err), IsError: true}
		m.logger.Error("save failed", "action", action, "err", err)
		return
	}
	m.logger.Debug("saved", "action", action)
}

func (m *Model) setStatus(text string) {
	m.Status = StatusBar{Text: text}
}

func (m *Model) setError(err error) {
	m.LastError = err
	m.Status = StatusBar{Text: err.Error(), IsError: true}
}

// scheduleStatusClear starts a timer for a status that changed since prev.
// Errors stay until something replaces them.
func (m Model) scheduleStatusClear(prev StatusBar) (Model, tea.Cmd) {
	if m.Quitting || m.cfg.StatusTTL <= 0 || m.Status == prev || m.Status.Text == "" || m.Status.IsError {
		return m, nil
	}
	m.statusSeq++
	seq := m.statusSeq
	return m, tea.Tick(m.cfg.StatusTTL, func(time.Time) tea.Msg { return ClearStatusMsg{Seq: seq} })
}
