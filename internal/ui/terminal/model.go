// Package terminal renders a timer session in the terminal.
package terminal

import (
	"strings"

	"devruntime/internal/core/achievement"
	"devruntime/internal/core/model"
	"devruntime/internal/core/timekeeper"
	"devruntime/internal/present"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Clock is the part of the clock source the view controls.
type Clock interface {
	State() timekeeper.State
	TogglePause()
	Reset()
}

type sessionEventMsg achievement.Event

type sessionClosedMsg struct{}

// Model is the bubbletea model of the terminal timer.
type Model struct {
	session  *achievement.Session
	clock    Clock
	events   <-chan achievement.Event
	keys     keyMap
	snapshot achievement.Snapshot
	quitting bool
	styles   styles
}

// New creates the terminal model. events should come from session.Subscribe.
func New(session *achievement.Session, clock Clock, events <-chan achievement.Event) Model {
	return Model{
		session:  session,
		clock:    clock,
		events:   events,
		keys:     defaultKeyMap(),
		snapshot: session.Store().Snapshot(),
		styles:   newStyles(session.Config()),
	}
}

// Init starts listening for session events.
func (m Model) Init() tea.Cmd {
	return waitForEvent(m.events)
}

// Update handles key presses and session events.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionEventMsg:
		m.snapshot = m.session.Store().Snapshot()
		return m, waitForEvent(m.events)
	case sessionClosedMsg:
		m.quitting = true
		return m, tea.Quit
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Pause):
			m.clock.TogglePause()
		case key.Matches(msg, m.keys.Reset):
			m.clock.Reset()
		case key.Matches(msg, m.keys.Acknowledge):
			m.session.Acknowledge()
		}
		m.snapshot = m.session.Store().Snapshot()
	}
	return m, nil
}

// View renders the timer face.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	config := m.session.Config()
	view := present.Render(config, m.snapshot.Elapsed)

	var lines []string
	if view.HasStatic() {
		lines = append(lines, m.styles.target.Render(view.StaticText()))
	}
	if view.HasFlow() {
		lines = append(lines,
			m.styles.target.Render(view.TargetText()),
			m.styles.separator.Render(present.FlowSeparator),
			m.styles.elapsed.Render(view.ElapsedText()),
		)
	}
	if len(lines) == 0 {
		lines = append(lines, m.styles.target.Render(present.Status(m.snapshot.Elapsed, config.Target, m.snapshot.Achieved)))
	}
	face := m.styles.face.Render(lipgloss.JoinVertical(lipgloss.Center, lines...))

	var footer []string
	if m.snapshot.Achieved && !m.snapshot.TrophySeen {
		footer = append(footer, m.styles.trophy.Render("Trophy! Target "+present.Target(config.Target)+" reached."))
	}
	if m.clock.State() == timekeeper.StatePaused {
		footer = append(footer, m.styles.help.Render("paused"))
	}
	footer = append(footer, m.styles.help.Render(helpLine(m.keys)))

	return lipgloss.JoinVertical(lipgloss.Center, face, strings.Join(footer, "\n")) + "\n"
}

func waitForEvent(events <-chan achievement.Event) tea.Cmd {
	return func() tea.Msg {
		event, ok := <-events
		if !ok {
			return sessionClosedMsg{}
		}
		return sessionEventMsg(event)
	}
}

func helpLine(keys keyMap) string {
	parts := make([]string, 0, len(keys.help()))
	for _, binding := range keys.help() {
		help := binding.Help()
		parts = append(parts, help.Key+" "+help.Desc)
	}
	return strings.Join(parts, " • ")
}

type styles struct {
	face      lipgloss.Style
	target    lipgloss.Style
	separator lipgloss.Style
	elapsed   lipgloss.Style
	trophy    lipgloss.Style
	help      lipgloss.Style
}

func newStyles(config model.TimerConfig) styles {
	border := lipgloss.NormalBorder()
	if config.PolygonForm == model.PolygonCircle {
		border = lipgloss.RoundedBorder()
	}

	face := lipgloss.NewStyle().
		Border(border).
		Padding(1, 4).
		Align(lipgloss.Center)
	elapsed := lipgloss.NewStyle().Bold(true)
	if config.Style.BackgroundColor != "" {
		face = face.Background(lipgloss.Color(config.Style.BackgroundColor))
	}
	if config.Style.Color != "" {
		elapsed = elapsed.Foreground(lipgloss.Color(config.Style.Color))
	}

	return styles{
		face:      face,
		target:    lipgloss.NewStyle().Foreground(lipgloss.Color("#9CA3AF")),
		separator: lipgloss.NewStyle().Bold(true),
		elapsed:   elapsed,
		trophy:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#E8BE42")),
		help:      lipgloss.NewStyle().Faint(true),
	}
}
