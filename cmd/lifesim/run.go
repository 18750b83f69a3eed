package main

import (
	"fmt"
	"io"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/lifesim/internal/config"
	"github.com/san-kum/lifesim/internal/export"
	"github.com/san-kum/lifesim/internal/metrics"
	"github.com/san-kum/lifesim/internal/render"
	"github.com/san-kum/lifesim/internal/session"
	"github.com/san-kum/lifesim/internal/viz"
)

// seededSession returns a session with the configured pattern stamped in the
// middle, or a randomized board when no pattern is set.
func seededSession(cfg *config.Config) (*session.State, error) {
	s, p, err := newSession(cfg)
	if err != nil {
		return nil, err
	}
	if p != nil {
		s.LoadCentered(*p)
	} else {
		s.Randomize()
	}
	return s, nil
}

// advance steps s up to n times and reports whether the board settled.
func advance(s *session.State, n int) bool {
	for i := 0; i < n; i++ {
		if !s.Step() {
			return true
		}
	}
	return false
}

func runHeadless(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, "classic")
	if err != nil {
		return err
	}
	s, err := seededSession(cfg)
	if err != nil {
		return err
	}
	pop := metrics.NewPopulation(runGenerations + 1)
	s.AddObserver(pop)

	start := time.Now()
	settled := advance(s, runGenerations)
	elapsed := time.Since(start)

	out := cmd.OutOrStdout()
	printSummary(out, s, pop, settled, elapsed)
	if plot {
		if hist := pop.History(); len(hist) > 1 {
			fmt.Fprintln(out, asciigraph.Plot(hist,
				asciigraph.Height(10),
				asciigraph.Width(80),
				asciigraph.Caption("population"),
			))
		}
	}
	return nil
}

func printSummary(w io.Writer, s *session.State, pop *metrics.Population, settled bool, elapsed time.Duration) {
	g := s.Grid()
	fmt.Fprintln(w, viz.CanvasFromGrid(g).String())
	fmt.Fprintf(w, "board:      %dx%d\n", g.Width(), g.Height())
	fmt.Fprintf(w, "generation: %d\n", s.Generation())
	fmt.Fprintf(w, "population: %d (peak %d, density %.1f%%)\n", g.Population(), pop.Peak(), pop.Density()*100)
	if settled {
		fmt.Fprintln(w, "settled:    yes")
	}
	fmt.Fprintf(w, "elapsed:    %v\n", elapsed.Round(time.Microsecond))
}

func exportStyle(cfg *config.Config) export.Style {
	t := viz.GetTheme(cfg.Theme)
	return export.Style{
		Cell:       render.Cell{Width: cfg.CellWidth, Height: cfg.CellHeight},
		Alive:      viz.RGBA(t.Alive),
		Background: viz.RGBA(t.Background),
	}
}

func outputPath(ext string) string {
	if outFile != "" {
		return outFile
	}
	return fmt.Sprintf("lifesim_%d.%s", time.Now().Unix(), ext)
}

func exportSVG(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, "classic")
	if err != nil {
		return err
	}
	s, err := seededSession(cfg)
	if err != nil {
		return err
	}
	advance(s, svgGenerations)

	path := outputPath("svg")
	if err := export.WriteSVG(path, s.Grid(), exportStyle(cfg)); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (generation %d)\n", path, s.Generation())
	return nil
}

func exportGIF(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, "classic")
	if err != nil {
		return err
	}
	s, err := seededSession(cfg)
	if err != nil {
		return err
	}

	path := outputPath("gif")
	if err := export.WriteGIF(path, s.Grid(), gifGenerations, exportStyle(cfg)); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
	return nil
}
