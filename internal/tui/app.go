package tui

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/LISSConsulting/LISSTech.WheelKing/internal/store"
	"github.com/LISSConsulting/LISSTech.WheelKing/internal/tui/panels"
	"github.com/LISSConsulting/LISSTech.WheelKing/internal/wheel"
)

// Options configures the root Model.
type Options struct {
	Wheel    Wheel              // required
	Renderer *Renderer          // rotation commands; nil disables animation
	Events   <-chan wheel.Event // controller events; nil disables the log
	Store    store.Reader       // may be nil when history is not kept
	Spin     wheel.SpinConfig   // initial rig mode and duration
	Policy   wheel.AnglePolicy  // shown in the header
	Title    string
	Accent   string
	WorkDir  string
	Radius   int
}

// Model is the root bubbletea model for the wheel TUI.
type Model struct {
	// Engine
	wheel     Wheel
	rotations <-chan wheel.RotateCommand
	events    <-chan wheel.Event
	store     store.Reader

	// Sub-panels
	namesPanel panels.NamesPanel
	spinsPanel panels.SpinsPanel
	wheelPanel panels.WheelPanel
	logPanel   panels.LogPanel

	// Layout and focus
	layout Layout
	focus  FocusTarget
	theme  Theme
	keys   KeyMap
	help   help.Model
	width  int
	height int

	// Spin state
	spin     wheel.SpinConfig
	policy   wheel.AnglePolicy
	snapshot wheel.Snapshot
	angle    float64
	anim     *Animation
	pending  *wheel.Event // spin_start of the spin in flight

	// Time
	startedAt time.Time
	now       time.Time

	// Identity
	title   string
	workDir string
}

// New creates the root TUI Model.
func New(opts Options) Model {
	now := time.Now()
	th := NewTheme(opts.Accent)
	layout := Calculate(80, 24)

	namesW, namesH := innerDims(layout.Names)
	spinsW, spinsH := innerDims(layout.Spins)
	wheelW, wheelH := innerDims(layout.Wheel)
	logW, logH := innerDims(layout.Log)

	spin := opts.Spin
	spin.DurationMs = wheel.ClampDurationMs(spin.DurationMs)

	var rotations <-chan wheel.RotateCommand
	if opts.Renderer != nil {
		rotations = opts.Renderer.Commands()
	}

	snap := opts.Wheel.State()
	m := Model{
		wheel:      opts.Wheel,
		rotations:  rotations,
		events:     opts.Events,
		store:      opts.Store,
		namesPanel: panels.NewNamesPanel(snap.Names, namesW, namesH),
		spinsPanel: panels.NewSpinsPanel(spinsW, spinsH),
		wheelPanel: panels.NewWheelPanel(opts.Radius, th.WinnerStyle(), wheelW, wheelH),
		logPanel:   panels.NewLogPanel(th.Accent(), logW, logH),
		layout:     layout,
		focus:      FocusWheel,
		theme:      th,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		width:      80,
		height:     24,
		spin:       spin,
		policy:     opts.Policy,
		snapshot:   snap,
		angle:      snap.Angle,
		startedAt:  now,
		now:        now,
		title:      opts.Title,
		workDir:    opts.WorkDir,
	}
	return m.syncPanels()
}

// Init returns the initial commands: rotation and event listeners plus the
// clock ticker.
func (m Model) Init() tea.Cmd {
	return tea.Batch(waitForRotate(m.rotations), waitForEvent(m.events), tickCmd())
}

// tickCmd schedules the next one-second clock tick.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// frameCmd schedules the next animation frame.
func frameCmd() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// waitForEvent blocks on the event channel and returns the next message.
func waitForEvent(ch <-chan wheel.Event) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		e, ok := <-ch
		if !ok {
			return eventsClosedMsg{}
		}
		return wheelEventMsg(e)
	}
}

// waitForRotate blocks on the renderer queue and returns the next command.
func waitForRotate(ch <-chan wheel.RotateCommand) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		cmd, ok := <-ch
		if !ok {
			return nil
		}
		return rotateMsg(cmd)
	}
}

// Update handles all incoming bubbletea messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)
	case tea.KeyMsg:
		return m.handleKey(msg)
	case rotateMsg:
		return m.handleRotate(wheel.RotateCommand(msg))
	case frameMsg:
		return m.handleFrame(time.Time(msg))
	case wheelEventMsg:
		return m.handleEvent(wheel.Event(msg))
	case eventsClosedMsg:
		m.events = nil
		return m, nil
	case tickMsg:
		m.now = time.Time(msg)
		return m, tickCmd()
	case panels.NamesEditedMsg:
		m.wheel.SetNames(wheel.Normalize(msg.Text))
		m.snapshot = m.wheel.State()
		return m.syncPanels(), nil
	case panels.SpinSelectedMsg:
		return m.handleSpinSelected(msg)
	case spinLogLoadedMsg:
		return m.handleSpinLogLoaded(msg)
	}
	return m.delegateToFocused(msg)
}

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.layout = Calculate(msg.Width, msg.Height)
	m.help.Width = msg.Width
	if !m.layout.TooSmall {
		namesW, namesH := innerDims(m.layout.Names)
		spinsW, spinsH := innerDims(m.layout.Spins)
		wheelW, wheelH := innerDims(m.layout.Wheel)
		logW, logH := innerDims(m.layout.Log)
		m.namesPanel = m.namesPanel.SetSize(namesW, namesH)
		m.spinsPanel = m.spinsPanel.SetSize(spinsW, spinsH)
		m.wheelPanel = m.wheelPanel.SetSize(wheelW, wheelH)
		m.logPanel = m.logPanel.SetSize(logW, logH)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// The editor swallows everything except ctrl+c.
	if m.namesPanel.Editing() {
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		var cmd tea.Cmd
		m.namesPanel, cmd = m.namesPanel.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Spin):
		m.wheel.Spin(m.spin)
		m.snapshot = m.wheel.State()
		return m.syncPanels(), nil
	case key.Matches(msg, m.keys.Reset):
		m.wheel.Reset()
		m.snapshot = m.wheel.State()
		return m.syncPanels(), nil
	case key.Matches(msg, m.keys.Shuffle):
		m.wheel.Shuffle()
		m.snapshot = m.wheel.State()
		return m.syncPanels(), nil
	case key.Matches(msg, m.keys.Rig):
		m.spin.RigMode = !m.spin.RigMode
		return m.syncPanels(), nil
	case key.Matches(msg, m.keys.Faster):
		m.spin.DurationMs = max(wheel.MinDurationMs, m.spin.DurationMs-durationStepMs)
		return m, nil
	case key.Matches(msg, m.keys.Slower):
		m.spin.DurationMs = min(wheel.MaxDurationMs, m.spin.DurationMs+durationStepMs)
		return m, nil
	case key.Matches(msg, m.keys.Edit):
		m.focus = FocusNames
		var cmd tea.Cmd
		m.namesPanel, cmd = m.namesPanel.StartEditing()
		return m, cmd
	case key.Matches(msg, m.keys.Next):
		m.focus = m.focus.Next()
		return m, nil
	case key.Matches(msg, m.keys.Prev):
		m.focus = m.focus.Prev()
		return m, nil
	case key.Matches(msg, m.keys.Panel):
		m.focus = FocusTarget(msg.String()[0] - '1')
		return m, nil
	}
	return m.delegateToFocused(msg)
}

func (m Model) delegateToFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.focus {
	case FocusNames:
		m.namesPanel, cmd = m.namesPanel.Update(msg)
	case FocusSpins:
		m.spinsPanel, cmd = m.spinsPanel.Update(msg)
	case FocusLog:
		m.logPanel, cmd = m.logPanel.Update(msg)
	}
	return m, cmd
}

// handleRotate starts an eased animation toward the commanded angle, or
// snaps there when the command is not animated.
func (m Model) handleRotate(cmd wheel.RotateCommand) (tea.Model, tea.Cmd) {
	next := waitForRotate(m.rotations)
	if !cmd.Animated || cmd.DurationMs <= 0 {
		m.anim = nil
		m.angle = cmd.Angle
		m.wheelPanel = m.wheelPanel.SetAngle(m.angle)
		return m, next
	}

	running := m.anim != nil
	m.anim = &Animation{
		From:     m.angle,
		To:       cmd.Angle,
		Start:    time.Now(),
		Duration: time.Duration(cmd.DurationMs) * time.Millisecond,
	}
	if running {
		// A frame is already scheduled.
		return m, next
	}
	return m, tea.Batch(next, frameCmd())
}

func (m Model) handleFrame(t time.Time) (tea.Model, tea.Cmd) {
	if m.anim == nil {
		return m, nil
	}
	m.angle = m.anim.Angle(t)
	m.wheelPanel = m.wheelPanel.SetAngle(m.angle)
	if m.anim.Done(t) {
		m.anim = nil
		return m, nil
	}
	return m, frameCmd()
}

func (m Model) handleEvent(e wheel.Event) (tea.Model, tea.Cmd) {
	switch e.Kind {
	case wheel.EventSpinStart:
		start := e
		m.pending = &start
		m.spinsPanel = m.spinsPanel.SetRunning(true)
	case wheel.EventSettled:
		m.spinsPanel = m.spinsPanel.AddSpin(m.summarize(e))
		m.logPanel = m.logPanel.SetTally(store.TallyOf(m.spinsPanel.Spins()))
		m.pending = nil
	case wheel.EventReset:
		m.pending = nil
		m.spinsPanel = m.spinsPanel.SetRunning(false)
	}

	m.logPanel = m.logPanel.AppendEvent(m.theme.RenderEventLine(e, m.layout.Log.Width))
	m.snapshot = m.wheel.State()
	return m.syncPanels(), waitForEvent(m.events)
}

// summarize builds the spin row for a settled event from the matching
// spin_start.
func (m Model) summarize(e wheel.Event) store.SpinSummary {
	s := store.SpinSummary{
		SpinID: e.SpinID,
		Winner: e.Name,
		Index:  e.Index,
		Angle:  e.Angle,
		Names:  len(e.Names),
		EndAt:  e.Timestamp,
	}
	if p := m.pending; p != nil && p.SpinID == e.SpinID {
		s.Rigged = p.Rigged
		s.DurationMs = p.DurationMs
		s.StartAt = p.Timestamp
		s.Names = len(p.Names)
	}
	return s
}

// syncPanels pushes the latest snapshot into the panels and key bindings.
func (m Model) syncPanels() Model {
	snap := m.snapshot
	m.keys.SetSpinning(snap.Spinning())
	m.namesPanel = m.namesPanel.SetNames(snap.Names).SetRigMode(m.spin.RigMode)
	m.wheelPanel = m.wheelPanel.SetState(panels.WheelState{
		Names:    snap.Names,
		Angle:    m.angle,
		Winner:   snap.Winner,
		Spinning: snap.Spinning(),
		RigMode:  m.spin.RigMode,
	})
	return m
}

func (m Model) handleSpinSelected(msg panels.SpinSelectedMsg) (tea.Model, tea.Cmd) {
	if m.store == nil {
		return m, nil
	}
	id := msg.ID
	reader := m.store
	return m, func() tea.Msg {
		events, err := reader.SpinLog(id)
		var summary store.SpinSummary
		if summaries, sErr := reader.Spins(); sErr == nil {
			for _, s := range summaries {
				if s.SpinID == id {
					summary = s
					break
				}
			}
		}
		return spinLogLoadedMsg{ID: id, Events: events, Summary: summary, Err: err}
	}
}

func (m Model) handleSpinLogLoaded(msg spinLogLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		text := fmt.Sprintf("cannot load spin %s: %v", shortID(msg.ID), msg.Err)
		if errors.Is(msg.Err, store.ErrNotFound) {
			text = fmt.Sprintf("spin %s is not in this session", shortID(msg.ID))
		}
		m.logPanel = m.logPanel.ShowSpin([]string{text})
		return m, nil
	}
	lines := renderSpinSummary(msg.Summary)
	for _, e := range msg.Events {
		lines = append(lines, m.theme.RenderEventLine(e, m.layout.Log.Width))
	}
	m.logPanel = m.logPanel.ShowSpin(lines)
	return m, nil
}

// renderSpinSummary formats a SpinSummary as key-value lines above the
// spin's events.
func renderSpinSummary(s store.SpinSummary) []string {
	if s.SpinID == "" {
		return nil
	}
	lines := []string{
		fmt.Sprintf("%-10s %s", "Spin:", shortID(s.SpinID)),
		fmt.Sprintf("%-10s %s (#%d of %d)", "Winner:", s.Winner, s.Index+1, s.Names),
		fmt.Sprintf("%-10s %s", "Duration:", panels.FormatDuration(s.DurationMs)),
	}
	if s.Rigged {
		lines = append(lines, fmt.Sprintf("%-10s %s", "Rigged:", "yes"))
	}
	return append(lines, "")
}

// View renders the full multi-panel TUI.
func (m Model) View() string {
	if m.layout.TooSmall {
		msg := fmt.Sprintf("Terminal too small (%dx%d).\nPlease resize to at least %dx%d.", m.width, m.height, MinWidth, MinHeight)
		return lipgloss.NewStyle().
			Width(m.width).
			Align(lipgloss.Center).
			Render(msg)
	}

	header := panels.RenderHeader(panels.HeaderProps{
		Title:       m.title,
		WorkDir:     m.workDir,
		Names:       len(m.snapshot.Names),
		RigMode:     m.spin.RigMode,
		DurationMs:  m.spin.DurationMs,
		Policy:      string(m.policy),
		Spins:       len(m.spinsPanel.Spins()),
		StateSymbol: m.snapshot.Status.Symbol(),
		StateLabel:  m.snapshot.Status.Label(),
		Elapsed:     m.now.Sub(m.startedAt),
		Clock:       m.now,
	}, m.layout.Header.Width, m.theme.AccentHeaderStyle())

	shortHelp := m.help
	shortHelp.ShowAll = false
	footer := panels.RenderFooter(panels.FooterProps{
		Focus:   m.focus.String(),
		Editing: m.namesPanel.Editing(),
		Help:    shortHelp.View(m.keys),
	}, m.layout.Footer.Width)

	var body string
	if m.help.ShowAll {
		bodyH := m.height - 2
		box := m.theme.PanelBorderStyle(true).Padding(0, 1).Render(m.help.View(m.keys))
		body = lipgloss.Place(m.width, bodyH, lipgloss.Center, lipgloss.Center, box)
	} else {
		body = m.renderPanels()
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

func (m Model) renderPanels() string {
	namesW, namesH := innerDims(m.layout.Names)
	spinsW, spinsH := innerDims(m.layout.Spins)
	wheelW, wheelH := innerDims(m.layout.Wheel)
	logW, logH := innerDims(m.layout.Log)

	// Left sidebar: names (top) + spins (bottom)
	sidebar := lipgloss.JoinVertical(lipgloss.Left,
		m.theme.PanelBorderStyle(m.focus == FocusNames).
			Width(namesW).Height(namesH).
			Render(m.namesPanel.View()),
		m.theme.PanelBorderStyle(m.focus == FocusSpins).
			Width(spinsW).Height(spinsH).
			Render(m.spinsPanel.View()),
	)

	rightCol := lipgloss.JoinVertical(lipgloss.Left,
		m.theme.PanelBorderStyle(m.focus == FocusWheel).
			Width(wheelW).Height(wheelH).
			Render(m.wheelPanel.View()),
		m.theme.PanelBorderStyle(m.focus == FocusLog).
			Width(logW).Height(logH).
			Render(m.logPanel.View()),
	)

	return lipgloss.JoinHorizontal(lipgloss.Top, sidebar, rightCol)
}
