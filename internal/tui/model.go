package tui

import (
	"fmt"
	"strings"

	"pomobar/internal/core/session"
	"pomobar/internal/notify"
	"pomobar/internal/ui/preferences"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// TickMsg advances the engine by one second.
type TickMsg struct{}

// SettingsMsg applies reloaded settings to the engine.
type SettingsMsg struct {
	Settings preferences.Settings
}

// ErrorMsg reports a background failure, such as an invalid config edit.
type ErrorMsg struct {
	Err error
}

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	clockStyle   = lipgloss.NewStyle().Bold(true).Padding(1, 2)
	statsStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	bannerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	pausedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true)
	phaseColours = map[session.Phase]lipgloss.Color{
		session.PhaseFocus:      lipgloss.Color("203"),
		session.PhaseShortBreak: lipgloss.Color("42"),
		session.PhaseLongBreak:  lipgloss.Color("39"),
	}
)

// Model is the root Bubble Tea model. It renders the engine snapshot and forwards
// key presses and ticks into the engine from the program's update loop.
type Model struct {
	engine   *session.Engine
	notifier *notify.Notifier
	banner   *Banner
	keys     keyMap
	help     help.Model
	progress progress.Model
	showHelp bool
	lastErr  string
}

// NewModel creates the terminal front-end for engine. notifier may be nil.
func NewModel(engine *session.Engine, banner *Banner, notifier *notify.Notifier) Model {
	if banner == nil {
		banner = &Banner{}
	}
	bar := progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
	bar.Width = 40
	return Model{
		engine:   engine,
		notifier: notifier,
		banner:   banner,
		keys:     defaultKeys(),
		help:     help.New(),
		progress: bar,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		if width := msg.Width - 8; width > 10 && width < 60 {
			m.progress.Width = width
		}
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.engine.Pause()
			return m, tea.Quit
		case key.Matches(msg, m.keys.Toggle):
			if m.engine.Snapshot().Running {
				m.engine.Pause()
			} else {
				m.banner.Clear()
				m.engine.Start()
			}
		case key.Matches(msg, m.keys.Reset):
			m.banner.Clear()
			m.engine.Reset()
		case key.Matches(msg, m.keys.Help):
			m.showHelp = !m.showHelp
			m.help.ShowAll = m.showHelp
		}
	case TickMsg:
		m.engine.Tick()
	case SettingsMsg:
		if err := m.engine.Configure(msg.Settings.SessionConfig()); err != nil {
			m.lastErr = err.Error()
			break
		}
		m.lastErr = ""
		if m.notifier != nil {
			m.notifier.SetEnabled(msg.Settings.Notifications)
		}
	case ErrorMsg:
		if msg.Err != nil {
			m.lastErr = msg.Err.Error()
		}
	}
	return m, nil
}

func (m Model) View() string {
	state := m.engine.Snapshot()
	config := m.engine.Config()
	title := titleStyle.Foreground(phaseColours[state.Phase]).Render(session.Title(state.Phase))
	if !state.Running {
		title = lipgloss.JoinHorizontal(lipgloss.Top, title, pausedStyle.Render("paused"))
	}

	total := m.engine.PhaseSeconds(state.Phase)
	done := 0.0
	if total > 0 {
		done = float64(total-state.SecondsRemaining) / float64(total)
	}

	var b strings.Builder
	b.WriteString(title)
	b.WriteString("\n")
	b.WriteString(clockStyle.Render(session.FormatClock(state.SecondsRemaining)))
	b.WriteString("\n")
	b.WriteString(" " + m.progress.ViewAs(done))
	b.WriteString("\n\n")
	b.WriteString(statsStyle.Render(fmt.Sprintf(" Pomodoros %d   Breaks %d   Long Breaks %d   (long break every %d)",
		state.FocusCompleted, state.ShortBreakCompleted, state.LongBreakCompleted, config.CyclesBeforeLongBreak)))
	b.WriteString("\n")
	if text := m.banner.Text(); text != "" {
		b.WriteString("\n " + bannerStyle.Render(text) + "\n")
	}
	if m.lastErr != "" {
		b.WriteString("\n " + errorStyle.Render(m.lastErr) + "\n")
	}
	b.WriteString("\n " + m.help.View(m.keys))
	return b.String()
}
