package viz

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	statusRunning = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00ff88"))

	statusPaused = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ffaa00"))

	keyHint = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#666688")).
		Italic(true)
)

// SparkleStyle highlights the brightest sphere glyphs.
func (t Theme) SparkleStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Sparkle)
}

// BannerStyle highlights the goodbye banner.
func (t Theme) BannerStyle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(t.Banner)
}

func (t Theme) statusStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Status)
}

func (t Theme) mutedStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Muted)
}

// StatusLine renders the one-line footer shown under a live frame.
func (t Theme) StatusLine(paused bool, tick int, delayMS int64) string {
	state := statusRunning.Render("PLAYING")
	if paused {
		state = statusPaused.Render("PAUSED")
	}
	info := t.statusStyle().Render(fmt.Sprintf("tick %d", tick)) +
		t.mutedStyle().Render(fmt.Sprintf("  %dms/frame  theme %s", delayMS, t.Name))
	hints := keyHint.Render("  space pause  t theme  +/- speed  q quit")
	return state + "  " + info + hints
}
