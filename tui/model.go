package tui

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"go-canon/midi"
	"go-canon/theme"
)

// meterWidth is the number of cells in the beat meter.
const meterWidth = 40

// Model is the full-screen playback view over a running player.
type Model struct {
	Player *midi.Player
	Theme  *theme.Theme
	Title  string
	Total  float64 // beats; +Inf for an endless piece

	done     <-chan error
	err      error
	quitting bool
}

// UpdateMsg means the player dispatched something.
type UpdateMsg struct{}

// TickMsg redraws the clock between dispatches.
type TickMsg struct{}

// DoneMsg carries the result of Start after playback ends.
type DoneMsg struct {
	Err error
}

// NewModel returns a model showing title while player plays a piece of
// total beats. done must deliver the result of the player's Start call.
func NewModel(player *midi.Player, title string, total float64, th *theme.Theme, done <-chan error) Model {
	return Model{
		Player: player,
		Theme:  th,
		Title:  title,
		Total:  total,
		done:   done,
	}
}

// ListenForUpdates relays player dispatch notifications into the UI.
func ListenForUpdates(player *midi.Player) tea.Cmd {
	return func() tea.Msg {
		<-player.Updates()
		return UpdateMsg{}
	}
}

func listenForDone(done <-chan error) tea.Cmd {
	return func() tea.Msg {
		return DoneMsg{Err: <-done}
	}
}

func tick() tea.Cmd {
	return tea.Tick(time.Second/10, func(time.Time) tea.Msg {
		return TickMsg{}
	})
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		ListenForUpdates(m.Player),
		listenForDone(m.done),
		tick(),
	)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			// The exit happens on the DoneMsg that follows, once Start
			// has flushed its note-offs.
			m.quitting = true
			m.Player.Stop()
			return m, nil
		}

	case UpdateMsg:
		return m, ListenForUpdates(m.Player)

	case TickMsg:
		return m, tick()

	case DoneMsg:
		m.err = msg.Err
		return m, tea.Quit
	}

	return m, nil
}

// Err returns the playback error, if any, once the program has finished.
func (m Model) Err() error {
	return m.err
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	headerStyle := lipgloss.NewStyle().Foreground(m.Theme.Accent())
	dimStyle := lipgloss.NewStyle().Foreground(m.Theme.Muted())

	playing := m.Player.Playing()
	state := string(m.Theme.Symbols.Stopped) + " STOP"
	if playing {
		state = string(m.Theme.Symbols.Playing) + " PLAY"
	}

	now := m.Player.NowBeat()
	if !math.IsInf(m.Total, 1) && now > m.Total {
		now = m.Total
	}

	header := headerStyle.Render(fmt.Sprintf("go-canon  %s  %3dbpm  %s", state, m.Player.BPM(), m.beatCounter(now)))
	meter := m.meter(now)
	pending := dimStyle.Render(fmt.Sprintf("%d events pending", m.Player.Pending()))
	help := dimStyle.Render("q:quit")

	var out strings.Builder
	out.WriteString("\n")
	out.WriteString(header)
	out.WriteString("\n\n")
	out.WriteString(m.Title)
	out.WriteString("\n")
	out.WriteString(meter)
	out.WriteString("\n\n")
	out.WriteString(pending)
	out.WriteString("\n")
	out.WriteString(help)
	out.WriteString("\n")
	return out.String()
}

func (m Model) beatCounter(now float64) string {
	if math.IsInf(m.Total, 1) {
		return fmt.Sprintf("beat %.1f %c", now, m.Theme.Symbols.LoopMark)
	}
	return fmt.Sprintf("beat %.1f/%.1f", now, m.Total)
}

// meter renders playback progress as a gradient bar. An endless piece
// sweeps the bar once per beat instead of filling up.
func (m Model) meter(now float64) string {
	frac := 0.0
	switch {
	case math.IsInf(m.Total, 1):
		frac = now - math.Floor(now)
	case m.Total > 0:
		frac = now / m.Total
	}
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}

	playhead := int(frac * float64(meterWidth-1))
	var b strings.Builder
	for i := 0; i < meterWidth; i++ {
		norm := float64(i) / float64(meterWidth-1)
		style := lipgloss.NewStyle().Foreground(m.Theme.Color(norm))
		switch {
		case i == playhead:
			b.WriteString(style.Render(string(m.Theme.Symbols.Playhead)))
		case i < playhead:
			b.WriteString(style.Render(string(m.Theme.Symbols.BeatDone)))
		default:
			b.WriteString(style.Render(string(m.Theme.Symbols.BeatAhead)))
		}
	}
	return b.String()
}
