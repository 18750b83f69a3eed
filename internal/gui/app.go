// Package gui is the window front-end: a raylib window whose mouse and resize
// events drive the session and whose frames paint the live cells.
package gui

import (
	"fmt"
	"log"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/lifesim/internal/anim"
	"github.com/san-kum/lifesim/internal/export"
	"github.com/san-kum/lifesim/internal/metrics"
	"github.com/san-kum/lifesim/internal/pattern"
	"github.com/san-kum/lifesim/internal/session"
	"github.com/san-kum/lifesim/internal/viz"
)

const (
	hudHeight      = 48
	targetFPS      = 60
	frameDelayStep = 10 * time.Millisecond
)

type App struct {
	Session   *session.State
	Pop       *metrics.Population
	Theme     viz.Theme
	ShowLines bool
	Font      rl.Font

	patterns []string
	next     int
	status   string
	hovering bool
}

// initWindow opens a resizable window sized to the board plus the HUD strip.
func initWindow(s *session.State) {
	g, l := s.Grid(), s.Layout()
	rl.SetConfigFlags(rl.FlagWindowResizable)
	rl.InitWindow(int32(g.Width()*l.CellWidth), int32(g.Height()*l.CellHeight+hudHeight), "lifesim")
	rl.SetTargetFPS(targetFPS)
	rl.SetExitKey(0)
}

// NewApp wires a session to the window. seed, when non-nil, is stamped in the
// middle of the board.
func NewApp(s *session.State, theme viz.Theme, seed *pattern.Pattern) *App {
	pop := metrics.NewPopulation(metrics.DefaultHistory)
	s.AddObserver(pop)
	if seed != nil {
		s.LoadCentered(*seed)
	}
	return &App{
		Session:   s,
		Pop:       pop,
		Theme:     theme,
		ShowLines: true,
		Font:      rl.GetFontDefault(),
		patterns:  pattern.Names(),
	}
}

// Run opens the window and blocks until it is closed.
func Run(s *session.State, theme viz.Theme, seed *pattern.Pattern) error {
	initWindow(s)
	defer rl.CloseWindow()
	if !rl.IsWindowReady() {
		return fmt.Errorf("gui: window could not be created")
	}
	app := NewApp(s, theme, seed)
	app.RunLoop()
	return nil
}

func (a *App) RunLoop() {
	for !rl.WindowShouldClose() {
		if quit := a.Update(); quit {
			return
		}
		a.Draw()
	}
}

// Update processes one frame of input and ticks the scheduler. It reports
// whether the user asked to quit.
func (a *App) Update() bool {
	if rl.IsKeyPressed(rl.KeyQ) {
		return true
	}
	if rl.IsWindowResized() {
		a.resize()
	}
	a.handleKeys()
	a.handleMouse()

	if res := a.Session.Tick(time.Now()); res == anim.Settled {
		a.status = fmt.Sprintf("settled at generation %d", a.Session.Generation())
		log.Printf("settled: generation=%d population=%d", a.Session.Generation(), a.Session.Grid().Population())
	}
	return false
}

func (a *App) resize() {
	w, h := int(rl.GetScreenWidth()), int(rl.GetScreenHeight())-hudHeight
	if err := a.Session.ResizeViewport(w, h); err != nil {
		a.status = "window too narrow"
		log.Printf("resize: %v", err)
	}
}

func (a *App) handleKeys() {
	s := a.Session
	switch {
	case rl.IsKeyPressed(rl.KeySpace):
		s.ToggleRunning()
	case rl.IsKeyPressed(rl.KeyN):
		if !s.Step() {
			a.status = "no change"
		}
	case rl.IsKeyPressed(rl.KeyC):
		s.Clear()
	case rl.IsKeyPressed(rl.KeyR):
		s.Randomize()
	case rl.IsKeyPressed(rl.KeyM):
		s.ToggleMirror()
	case rl.IsKeyPressed(rl.KeyEqual), rl.IsKeyPressed(rl.KeyKpAdd):
		s.SetFrameDelay(s.FrameDelay() + frameDelayStep)
	case rl.IsKeyPressed(rl.KeyMinus), rl.IsKeyPressed(rl.KeyKpSubtract):
		s.SetFrameDelay(s.FrameDelay() - frameDelayStep)
	case rl.IsKeyPressed(rl.KeyP):
		if p, err := pattern.Get(a.patterns[a.next]); err == nil {
			s.LoadCentered(p)
			a.status = "loaded " + p.Name
		}
		a.next = (a.next + 1) % len(a.patterns)
	case rl.IsKeyPressed(rl.KeyG):
		a.ShowLines = !a.ShowLines
	case rl.IsKeyPressed(rl.KeyT):
		a.Theme = viz.NextTheme(a.Theme)
	case rl.IsKeyPressed(rl.KeyE):
		a.exportSVG()
	}
}

func (a *App) exportSVG() {
	l := a.Session.Layout()
	name := fmt.Sprintf("lifesim_%d.svg", time.Now().Unix())
	err := export.WriteSVG(name, a.Session.Grid(), export.Style{
		Cell:       cellOf(l.CellWidth, l.CellHeight),
		Alive:      viz.RGBA(a.Theme.Alive),
		Background: viz.RGBA(a.Theme.Background),
	})
	if err != nil {
		a.status = "export failed: " + err.Error()
		log.Printf("export: %v", err)
		return
	}
	a.status = "wrote " + name
}

// handleMouse maps raylib button transitions onto the session's pointer
// events. The board starts at the window origin, so window pixels are board
// pixels.
func (a *App) handleMouse() {
	s := a.Session
	pos := rl.GetMousePosition()
	px, py := int(pos.X), int(pos.Y)

	onScreen := rl.IsCursorOnScreen()
	if a.hovering && !onScreen {
		s.PointerLeave()
	}
	a.hovering = onScreen

	switch {
	case rl.IsMouseButtonPressed(rl.MouseButtonLeft):
		s.PointerDown(px, py)
	case rl.IsMouseButtonReleased(rl.MouseButtonLeft):
		s.PointerUp()
	case rl.IsMouseButtonDown(rl.MouseButtonLeft):
		s.PointerMove(px, py)
	}
}
