// Package tui plays the party scene interactively with Bubble Tea.
package tui

import (
	"context"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/discoball/internal/scene"
	"github.com/san-kum/discoball/internal/viz"
)

const (
	minDelay  = 20 * time.Millisecond
	maxDelay  = 500 * time.Millisecond
	delayStep = 10 * time.Millisecond
)

type TickMsg time.Time

// Player owns a Stage and advances the party scene on every tick.
type Player struct {
	stage  *scene.Stage
	delay  time.Duration
	paused bool
	frame  string
}

// NewPlayer returns a player showing the current party frame of stage.
func NewPlayer(stage *scene.Stage) Player {
	delay := stage.Config().Party.FrameDelay
	if delay <= 0 {
		delay = minDelay
	}
	return Player{
		stage: stage,
		delay: delay,
		frame: stage.PartyFrame(),
	}
}

func tick(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Player) Init() tea.Cmd {
	return tick(m.delay)
}

func (m Player) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case " ", "space":
			m.paused = !m.paused
		case "t":
			m.stage.SetTheme(viz.NextTheme(m.stage.Theme().Name).Name)
		case "+", "=":
			m.delay = max(m.delay-delayStep, minDelay)
		case "-", "_":
			m.delay = min(m.delay+delayStep, maxDelay)
		case "r":
			m.stage.Reset()
			m.frame = m.stage.PartyFrame()
		}
	case TickMsg:
		if !m.paused {
			m.frame = m.stage.PartyFrame()
		}
		return m, tick(m.delay)
	}
	return m, nil
}

func (m Player) View() string {
	var s strings.Builder
	s.WriteString(m.frame)
	s.WriteString("\n")
	s.WriteString(m.stage.Theme().StatusLine(m.paused, m.stage.Tick(), m.delay.Milliseconds()))
	return s.String()
}

func (m Player) Paused() bool         { return m.paused }
func (m Player) Delay() time.Duration { return m.delay }

// Run plays the party on the alternate screen until the user quits or ctx
// ends.
func Run(ctx context.Context, stage *scene.Stage) error {
	_, err := tea.NewProgram(NewPlayer(stage), tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil && ctx.Err() != nil {
		return nil
	}
	return err
}
