package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/san-kum/lifesim/internal/config"
	"github.com/san-kum/lifesim/internal/gui"
	"github.com/san-kum/lifesim/internal/pattern"
	"github.com/san-kum/lifesim/internal/session"
	"github.com/san-kum/lifesim/internal/viz"
)

var (
	configFile  string
	preset      string
	width       int
	height      int
	cellWidth   int
	cellHeight  int
	seed        int64
	seedPattern string
	delayMs     int
	mirror      bool
	theme       string
	logFile     string
	// headless and export
	runGenerations int
	svgGenerations int
	gifGenerations int
	plot           bool
	outFile        string

	logCloser io.Closer
)

// main registers the commands and runs the terminal front-end when no
// subcommand is given. It exits with status 1 on error.
func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:               "lifesim",
		Short:             "conway's game of life with mouse drawing",
		PersistentPreRunE: setupLogging,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logCloser != nil {
				logCloser.Close()
				logCloser = nil
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, "terminal")
			if err != nil {
				return err
			}
			s, p, err := newSession(cfg)
			if err != nil {
				return err
			}
			return viz.Run(s, viz.GetTheme(cfg.Theme), p)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "use preset configuration")
	pf.IntVar(&width, "width", config.DefaultWidth, "board width in cells")
	pf.IntVar(&height, "height", config.DefaultHeight, "board height in cells")
	pf.IntVar(&cellWidth, "cell-width", config.DefaultCellWidth, "cell width in pixels")
	pf.IntVar(&cellHeight, "cell-height", config.DefaultCellHeight, "cell height in pixels")
	pf.Int64Var(&seed, "seed", 0, "random seed (0 uses the clock)")
	pf.StringVar(&seedPattern, "pattern", "", "pattern stamped in the middle of the board")
	pf.IntVar(&delayMs, "delay", config.DefaultFrameDelay, "minimum milliseconds between generations")
	pf.BoolVar(&mirror, "mirror", false, "start with mirrored drawing")
	pf.StringVar(&theme, "theme", config.DefaultTheme, fmt.Sprintf("colour theme %v", viz.ThemeNames()))
	pf.StringVar(&logFile, "log", "", "write debug log to file")

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "run in a window",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, "classic")
			if err != nil {
				return err
			}
			s, p, err := newSession(cfg)
			if err != nil {
				return err
			}
			return gui.Run(s, viz.GetTheme(cfg.Theme), p)
		},
	}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run generations headless and print the result",
		RunE:  runHeadless,
	}
	runCmd.Flags().IntVar(&runGenerations, "generations", 100, "maximum generations")
	runCmd.Flags().BoolVar(&plot, "plot", false, "plot population history")

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "export boards to image files",
	}
	exportSVGCmd := &cobra.Command{
		Use:   "svg",
		Short: "export the board after --generations steps as SVG",
		Args:  cobra.NoArgs,
		RunE:  exportSVG,
	}
	exportGIFCmd := &cobra.Command{
		Use:   "gif",
		Short: "export an animated GIF of --generations steps",
		Args:  cobra.NoArgs,
		RunE:  exportGIF,
	}
	exportSVGCmd.Flags().IntVar(&svgGenerations, "generations", 0, "generations to step before the snapshot")
	exportGIFCmd.Flags().IntVar(&gifGenerations, "generations", 50, "maximum generations to animate")
	for _, c := range []*cobra.Command{exportSVGCmd, exportGIFCmd} {
		c.Flags().StringVarP(&outFile, "out", "o", "", "output file (default lifesim_<unix>.<ext>)")
	}
	exportCmd.AddCommand(exportSVGCmd, exportGIFCmd)

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Run: func(cmd *cobra.Command, args []string) {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tBOARD\tCELL\tDELAY\tTHEME\tMIRROR")
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t%dx%d\t%dx%d\t%v\t%s\t%v\n", name, p.Width, p.Height, p.CellWidth, p.CellHeight, p.FrameDelay(), p.Theme, p.Mirror)
			}
			w.Flush()
		},
	}

	patternsCmd := &cobra.Command{
		Use:   "patterns",
		Short: "list seed patterns",
		Run: func(cmd *cobra.Command, args []string) {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tSIZE\tCELLS")
			for _, name := range pattern.Names() {
				p, _ := pattern.Get(name)
				fmt.Fprintf(w, "%s\t%dx%d\t%d\n", name, p.Width, p.Height, len(p.Cells))
			}
			w.Flush()
		},
	}

	saveConfigCmd := &cobra.Command{
		Use:   "save-config [file]",
		Short: "write the resolved configuration as yaml",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, "")
			if err != nil {
				return err
			}
			if err := config.Save(args[0], cfg); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", args[0])
			return nil
		},
	}

	rootCmd.AddCommand(guiCmd, runCmd, newSurveyCmd(), exportCmd, presetsCmd, patternsCmd, saveConfigCmd)
	return rootCmd
}

// setupLogging routes the standard logger to --log, or discards it so nothing
// writes over the terminal front-end.
func setupLogging(cmd *cobra.Command, args []string) error {
	if logFile == "" {
		log.SetOutput(io.Discard)
		return nil
	}
	f, err := tea.LogToFile(logFile, "lifesim")
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	logCloser = f
	return nil
}

// resolveConfig layers defaults, the preset (fallback when --preset is
// empty), the config file and finally explicitly set flags.
func resolveConfig(cmd *cobra.Command, fallbackPreset string) (*config.Config, error) {
	cfg := config.DefaultConfig()

	name := preset
	if name == "" {
		name = fallbackPreset
	}
	if name != "" {
		p := config.GetPreset(name)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", name, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		c, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = c
	}

	flags := cmd.Flags()
	if flags.Changed("width") {
		cfg.Width = width
	}
	if flags.Changed("height") {
		cfg.Height = height
	}
	if flags.Changed("cell-width") {
		cfg.CellWidth = cellWidth
	}
	if flags.Changed("cell-height") {
		cfg.CellHeight = cellHeight
	}
	if flags.Changed("delay") {
		cfg.FrameDelayMs = delayMs
	}
	if flags.Changed("mirror") {
		cfg.Mirror = mirror
	}
	if flags.Changed("theme") {
		cfg.Theme = theme
	}
	if flags.Changed("pattern") {
		cfg.Pattern = seedPattern
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newSession builds a session from cfg and resolves its seed pattern.
// A zero seed is replaced with the clock.
func newSession(cfg *config.Config) (*session.State, *pattern.Pattern, error) {
	opts := session.FromConfig(cfg)
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	s, err := session.New(opts)
	if err != nil {
		return nil, nil, err
	}
	if cfg.Pattern == "" {
		return s, nil, nil
	}
	p, err := pattern.Get(cfg.Pattern)
	if err != nil {
		return nil, nil, err
	}
	return s, &p, nil
}
