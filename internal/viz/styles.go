package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type styles struct {
	board   lipgloss.Style
	alive   lipgloss.Style
	dead    lipgloss.Style
	panel   lipgloss.Style
	title   lipgloss.Style
	label   lipgloss.Style
	value   lipgloss.Style
	running lipgloss.Style
	paused  lipgloss.Style
	graph   lipgloss.Style
	help    lipgloss.Style
	keyHint lipgloss.Style
}

func newStyles(t Theme) styles {
	return styles{
		board: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Muted),
		alive: lipgloss.NewStyle().Foreground(t.Alive),
		dead:  lipgloss.NewStyle().Foreground(t.Dead),
		panel: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(t.Muted).
			Padding(0, 2).
			Width(sidebarWidth - 1),
		title:   lipgloss.NewStyle().Bold(true).Foreground(t.Accent),
		label:   lipgloss.NewStyle().Foreground(t.Muted).Width(12),
		value:   lipgloss.NewStyle().Foreground(t.Text),
		running: lipgloss.NewStyle().Bold(true).Foreground(t.Running),
		paused:  lipgloss.NewStyle().Bold(true).Foreground(t.Paused),
		graph:   lipgloss.NewStyle().Foreground(t.Alive),
		help:    lipgloss.NewStyle().Foreground(t.Muted).MarginTop(1),
		keyHint: lipgloss.NewStyle().Foreground(t.Accent).Bold(true),
	}
}

// densityBar renders a fixed-width fill bar for a ratio in [0,1].
func densityBar(ratio float64, width int) string {
	filled := int(ratio * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	return "[" + strings.Repeat("=", filled) + strings.Repeat("-", width-filled) + "]"
}
