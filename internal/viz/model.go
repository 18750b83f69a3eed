// Package viz is the terminal front-end: a bubbletea program that paints the
// board with lipgloss, feeds mouse input to the session as pointer events and
// drives the scheduler from a frame tick.
package viz

import (
	"fmt"
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/lifesim/internal/anim"
	"github.com/san-kum/lifesim/internal/export"
	"github.com/san-kum/lifesim/internal/metrics"
	"github.com/san-kum/lifesim/internal/pattern"
	"github.com/san-kum/lifesim/internal/session"
)

const (
	tickRate       = 60
	sidebarWidth   = 40
	headerLines    = 1
	borderSize     = 1
	frameDelayStep = 10 * time.Millisecond
)

type TickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second/tickRate, func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Model wraps a session with terminal presentation state.
type Model struct {
	session  *session.State
	pop      *metrics.Population
	theme    Theme
	styles   styles
	seed     *pattern.Pattern
	patterns []string
	next     int
	width    int
	height   int
	sized    bool
	showHelp bool
	status   string
}

// NewModel builds the terminal model. seed, when non-nil, is stamped in the
// middle of the board once the first window size is known.
func NewModel(s *session.State, theme Theme, seed *pattern.Pattern) Model {
	pop := metrics.NewPopulation(metrics.DefaultHistory)
	s.AddObserver(pop)
	m := Model{
		session:  s,
		pop:      pop,
		theme:    theme,
		styles:   newStyles(theme),
		seed:     seed,
		patterns: pattern.Names(),
	}
	if seed != nil {
		s.LoadCentered(*seed)
	}
	return m
}

func (m Model) Init() tea.Cmd { return tickCmd() }

// Update handles input events and forwards ticks to the session.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		m.handleMouse(msg)
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
	case TickMsg:
		if res := m.session.Tick(time.Time(msg)); res == anim.Settled {
			m.status = fmt.Sprintf("settled at generation %d", m.session.Generation())
			log.Printf("settled: generation=%d population=%d", m.session.Generation(), m.session.Grid().Population())
		}
		return m, tickCmd()
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	m.status = ""
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case " ":
		m.session.ToggleRunning()
	case "n":
		if !m.session.Step() {
			m.status = "no change"
		}
	case "c":
		m.session.Clear()
	case "r":
		m.session.Randomize()
	case "m":
		m.session.ToggleMirror()
	case "+", "=":
		m.session.SetFrameDelay(m.session.FrameDelay() + frameDelayStep)
	case "-", "_":
		m.session.SetFrameDelay(m.session.FrameDelay() - frameDelayStep)
	case "p":
		p, err := pattern.Get(m.patterns[m.next])
		if err == nil {
			m.session.LoadCentered(p)
			m.status = "loaded " + p.Name
		}
		m.next = (m.next + 1) % len(m.patterns)
	case "e":
		name := fmt.Sprintf("lifesim_%d.svg", time.Now().Unix())
		if err := export.WriteSVG(name, m.session.Grid(), export.Style{
			Cell:       export.DefaultCell,
			Alive:      RGBA(m.theme.Alive),
			Background: RGBA(m.theme.Background),
		}); err != nil {
			m.status = "export failed: " + err.Error()
			log.Printf("export: %v", err)
		} else {
			m.status = "wrote " + name
		}
	case "t":
		m.theme = NextTheme(m.theme)
		m.styles = newStyles(m.theme)
	case "?":
		m.showHelp = !m.showHelp
	}
	return m, nil
}

// boardPixel converts a terminal position to a pixel relative to the board's
// top-left cell. Terminal character cells are the pixels of this surface.
func boardPixel(x, y int) (int, int) {
	return x - borderSize, y - headerLines - borderSize
}

func (m Model) handleMouse(msg tea.MouseMsg) {
	px, py := boardPixel(msg.X, msg.Y)
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			m.session.PointerDown(px, py)
		}
	case tea.MouseActionMotion:
		m.session.PointerMove(px, py)
	case tea.MouseActionRelease:
		m.session.PointerUp()
	}
}

func (m *Model) resize(w, h int) {
	m.width, m.height = w, h
	avail := w - sidebarWidth - 2*borderSize
	if err := m.session.ResizeViewport(avail, h); err != nil {
		m.status = "window too narrow"
		log.Printf("resize: %v", err)
		return
	}
	if !m.sized && m.seed != nil {
		m.session.LoadCentered(*m.seed)
	}
	m.sized = true
}

// Run starts the terminal front-end and blocks until the user quits.
func Run(s *session.State, theme Theme, seed *pattern.Pattern) error {
	p := tea.NewProgram(NewModel(s, theme, seed), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}
