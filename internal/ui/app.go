package ui

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/lsmdash/internal/control"
	"github.com/five82/lsmdash/internal/prefs"
	"github.com/five82/lsmdash/internal/state"
)

// field identifies one of the dashboard's text inputs.
type field int

const (
	fieldKey field = iota
	fieldValue
	fieldSearch
	fieldCount
)

// Options configures the UI.
type Options struct {
	Context     context.Context
	Store       *state.Store
	Dispatcher  *control.Dispatcher
	Stats       control.StatsTrigger // manual refresh; nil disables it
	BaseURL     string
	LogPath     string
	RefreshTick time.Duration // zero uses DefaultUIInterval
	ThemeName   string
	PrefsPath   string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx         context.Context
	store       *state.Store
	dispatcher  *control.Dispatcher
	stats       control.StatsTrigger
	baseURL     string
	logPath     string
	prefsPath   string
	refreshTick time.Duration
	keys        keyMap

	// UI state
	theme  Theme
	width  int
	height int
	ready  bool

	// Data state
	snapshot state.Snapshot

	// Form state
	inputs [fieldCount]textinput.Model
	focus  field

	// Overlays
	modal    Modal
	showHelp bool

	// Log pane
	showLogs    bool
	logViewport viewport.Model
	logLines    []string
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	refresh := opts.RefreshTick
	if refresh <= 0 {
		refresh = DefaultUIInterval
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	store := opts.Store
	if store == nil {
		store = &state.Store{}
	}

	m := Model{
		ctx:         ctx,
		store:       store,
		dispatcher:  opts.Dispatcher,
		stats:       opts.Stats,
		baseURL:     opts.BaseURL,
		logPath:     opts.LogPath,
		prefsPath:   prefsPath,
		refreshTick: refresh,
		keys:        DefaultKeyMap(),
		theme:       GetTheme(opts.ThemeName),
		snapshot:    store.Snapshot(),
		logViewport: viewport.New(0, 0),
	}
	m.initInputs()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		tickCmd(m.refreshTick),
		fetchSnapshotCmd(m.store),
	)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.resize()
		return m, nil

	case tickMsg:
		return m.handleTick()

	case snapshotMsg:
		m.snapshot = state.Snapshot(msg)
		return m, nil

	case setDoneMsg:
		return m.handleSetDone(control.SetResult(msg))

	case getDoneMsg:
		m.snapshot = m.store.Snapshot()
		return m, nil

	case logLinesMsg:
		m.setLogLines(msg.lines)
		return m, nil

	case logErrorMsg:
		slog.Debug("log pane read failed", "error", msg.err)
		return m, nil
	}

	// Cursor blink and friends belong to the focused input.
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.modal != nil {
		return m.modal.View(m.theme, m.width, m.height)
	}
	if m.showHelp {
		return m.renderHelp()
	}
	return m.renderMain()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}

	// An open modal swallows every other key until dismissed.
	if m.modal != nil {
		modal, cmd, closed := m.modal.Update(msg, m.keys)
		if closed {
			m.modal = nil
		} else {
			m.modal = modal
		}
		return m, cmd
	}

	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.applyInputStyles()
		m.refreshLogContent()
		if m.prefsPath != "" {
			if err := prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name}); err != nil {
				slog.Warn("save prefs failed", "error", err)
			}
		}
		return m, nil

	case key.Matches(msg, m.keys.ToggleLogs):
		m.showLogs = !m.showLogs
		if m.showLogs {
			return m, loadLogsCmd(m.logPath)
		}
		return m, nil

	case key.Matches(msg, m.keys.Refresh):
		if m.stats != nil {
			m.stats.FetchNow()
		}
		return m, nil
	}

	if m.showLogs {
		m.scrollLogs(msg)
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.NextField):
		cmd := m.setFocus((m.focus + 1) % fieldCount)
		return m, cmd
	case key.Matches(msg, m.keys.PrevField):
		cmd := m.setFocus((m.focus + fieldCount - 1) % fieldCount)
		return m, cmd
	case key.Matches(msg, m.keys.Submit):
		return m, m.submit()
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	m.syncInput(m.focus)
	return m, cmd
}

// submit dispatches the command for the focused form.
func (m *Model) submit() tea.Cmd {
	if m.dispatcher == nil {
		return nil
	}
	// Issued requests run to completion even after shutdown starts.
	ctx := context.WithoutCancel(m.ctx)
	switch m.focus {
	case fieldKey, fieldValue:
		if !m.store.Snapshot().CanSet() {
			return nil
		}
		return setCmd(ctx, m.dispatcher)
	case fieldSearch:
		return getCmd(ctx, m.dispatcher)
	}
	return nil
}

// handleSetDone reflects a finished write in the form and raises the failure
// alert when needed.
func (m Model) handleSetDone(res control.SetResult) (tea.Model, tea.Cmd) {
	m.snapshot = m.store.Snapshot()
	switch res.Outcome {
	case control.SetApplied:
		m.inputs[fieldKey].Reset()
		m.inputs[fieldValue].Reset()
	case control.SetFailed:
		m.modal = newAlertModal("Write failed", "Failed to set value", res.Err)
	}
	return m, nil
}

// handleTick processes the refresh tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	cmds := []tea.Cmd{fetchSnapshotCmd(m.store)}
	if m.showLogs {
		cmds = append(cmds, loadLogsCmd(m.logPath))
	}
	cmds = append(cmds, tickCmd(m.refreshTick))
	return m, tea.Batch(cmds...)
}

// Messages

type tickMsg time.Time

type snapshotMsg state.Snapshot

type setDoneMsg control.SetResult

type getDoneMsg control.GetResult

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func fetchSnapshotCmd(store *state.Store) tea.Cmd {
	return func() tea.Msg {
		return snapshotMsg(store.Snapshot())
	}
}

func setCmd(ctx context.Context, d *control.Dispatcher) tea.Cmd {
	return func() tea.Msg {
		return setDoneMsg(d.Set(ctx))
	}
}

func getCmd(ctx context.Context, d *control.Dispatcher) tea.Cmd {
	return func() tea.Msg {
		return getDoneMsg(d.Get(ctx))
	}
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(opts Options) error {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
