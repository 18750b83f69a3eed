package viz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/lifesim/internal/life"
)

const (
	aliveGlyph = "█"
	deadGlyph  = "·"
)

// View renders the board and the stats panel.
func (m Model) View() string {
	header := m.styles.title.Render("CONWAY'S GAME OF LIFE") + "  " + m.statusLine()
	board := m.styles.board.Render(m.renderBoard(m.session.Grid()))
	main := lipgloss.JoinHorizontal(lipgloss.Top, board, m.renderPanel())
	if m.showHelp {
		return header + "\n" + main + "\n" + helpText
	}
	return header + "\n" + main
}

func (m Model) statusLine() string {
	var s string
	switch {
	case m.session.Drawing():
		s = m.styles.paused.Render(strings.ToUpper(m.session.Phase().String()))
	case m.session.Running():
		s = m.styles.running.Render("RUNNING")
	default:
		s = m.styles.paused.Render("PAUSED")
	}
	if m.session.Mirroring() {
		s += " " + m.styles.keyHint.Render("MIRROR")
	}
	if m.status != "" {
		s += "  " + m.styles.label.UnsetWidth().Render(m.status)
	}
	return s
}

// renderBoard paints each cell as a CellWidth x CellHeight block of glyphs so
// terminal positions map back to cells through the session layout.
func (m Model) renderBoard(g life.Grid) string {
	layout := m.session.Layout()
	alive := strings.Repeat(aliveGlyph, layout.CellWidth)
	dead := strings.Repeat(deadGlyph, layout.CellWidth)

	var b strings.Builder
	var run strings.Builder
	for row := 0; row < g.Height(); row++ {
		var line strings.Builder
		runAlive := false
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if runAlive {
				line.WriteString(m.styles.alive.Render(run.String()))
			} else {
				line.WriteString(m.styles.dead.Render(run.String()))
			}
			run.Reset()
		}
		for col := 0; col < g.Width(); col++ {
			a := g.Alive(row, col)
			if a != runAlive {
				flush()
				runAlive = a
			}
			if a {
				run.WriteString(alive)
			} else {
				run.WriteString(dead)
			}
		}
		flush()
		for i := 0; i < layout.CellHeight; i++ {
			b.WriteString(line.String())
			if row < g.Height()-1 || i < layout.CellHeight-1 {
				b.WriteByte('\n')
			}
		}
	}
	return b.String()
}

func (m Model) renderPanel() string {
	var s strings.Builder
	g := m.session.Grid()
	s.WriteString(m.styles.label.Render("Generation") + m.styles.value.Render(fmt.Sprintf("%d", m.session.Generation())) + "\n")
	s.WriteString(m.styles.label.Render("Population") + m.styles.value.Render(fmt.Sprintf("%d", g.Population())) + "\n")
	s.WriteString(m.styles.label.Render("Peak") + m.styles.value.Render(fmt.Sprintf("%d", m.pop.Peak())) + "\n")
	s.WriteString(m.styles.label.Render("Density") + m.styles.value.Render(fmt.Sprintf("%s %.1f%%", densityBar(m.pop.Density(), 10), m.pop.Density()*100)) + "\n")
	s.WriteString(m.styles.label.Render("Board") + m.styles.value.Render(fmt.Sprintf("%dx%d", g.Width(), g.Height())) + "\n")
	s.WriteString(m.styles.label.Render("Delay") + m.styles.value.Render(m.session.FrameDelay().String()) + "\n")
	s.WriteString(m.styles.label.Render("Theme") + m.styles.value.Render(m.theme.Name) + "\n")

	if hist := m.pop.History(); len(hist) > 1 {
		chart := asciigraph.Plot(hist, asciigraph.Height(5), asciigraph.Width(sidebarWidth-14), asciigraph.Caption("population"))
		s.WriteString(m.styles.graph.Render(chart) + "\n")
	}

	s.WriteString(m.styles.help.Render("SP:Run N:Step C:Clear R:Random\nM:Mirror +/-:Delay P:Pattern\nE:SVG T:Theme ?:Help Q:Quit"))
	return m.styles.panel.Render(s.String())
}

const helpText = `
╔══════════════════════════════════════╗
║           KEYBOARD SHORTCUTS         ║
╠══════════════════════════════════════╣
║  Space    - Run / pause              ║
║  N        - Single step              ║
║  C        - Clear board              ║
║  R        - Randomize board          ║
║  M        - Toggle mirrored drawing  ║
║  + / -    - Frame delay +/- 10ms     ║
║  P        - Stamp next pattern       ║
║  E        - Export SVG snapshot      ║
║  T        - Cycle themes             ║
║  ?        - Toggle this help         ║
║  Q        - Quit                     ║
║  Mouse    - Hold left button to draw ║
╚══════════════════════════════════════╝`
