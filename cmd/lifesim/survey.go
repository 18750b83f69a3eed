package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/lifesim/internal/sim"
	"github.com/san-kum/lifesim/internal/store"
)

var (
	runs              int
	surveyGenerations int
	maxPeriod         int
	workers           int
	top               int
	jsonOut           string
	csvOut            string
	withHistory       bool
)

func newSurveyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "survey",
		Short: "run many random soups in parallel and report their lifetimes",
		RunE:  runSurvey,
	}
	cmd.Flags().IntVar(&runs, "runs", 32, "number of soups")
	cmd.Flags().IntVar(&surveyGenerations, "generations", 500, "maximum generations per soup")
	cmd.Flags().IntVar(&maxPeriod, "max-period", 8, "longest oscillator period detected")
	cmd.Flags().IntVar(&workers, "workers", 0, "concurrent soups (0 uses every CPU)")
	cmd.Flags().IntVar(&top, "top", 5, "longest-lived soups to list")
	cmd.Flags().StringVar(&jsonOut, "json", "", "write the report as JSON")
	cmd.Flags().StringVar(&csvOut, "csv", "", "write one CSV row per soup")
	cmd.Flags().BoolVar(&withHistory, "history", false, "include population histories in the JSON report")
	return cmd
}

func runSurvey(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, "classic")
	if err != nil {
		return err
	}
	if runs < 1 {
		return fmt.Errorf("runs must be positive, got %d", runs)
	}
	if top < 0 {
		return fmt.Errorf("top must be non-negative, got %d", top)
	}
	seedStart := cfg.Seed
	if seedStart == 0 {
		seedStart = time.Now().UnixNano()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	e := sim.NewEnsemble(runs, seedStart)
	if workers > 0 {
		e.SetWorkers(workers)
	}
	simCfg := sim.Config{
		Width:          cfg.Width,
		Height:         cfg.Height,
		MaxGenerations: surveyGenerations,
		MaxPeriod:      maxPeriod,
	}
	start := time.Now()
	results, err := e.Run(ctx, simCfg)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	report := store.NewReport(simCfg, results, withHistory)
	if jsonOut != "" {
		if err := store.ExportJSON(jsonOut, report); err != nil {
			return fmt.Errorf("export json: %w", err)
		}
	}
	if csvOut != "" {
		if err := store.ExportCSV(csvOut, report); err != nil {
			return fmt.Errorf("export csv: %w", err)
		}
	}

	out := cmd.OutOrStdout()
	s := sim.Summarize(results)
	fmt.Fprintf(out, "soups:         %d (%dx%d, seeds %d..%d)\n", s.Runs, cfg.Width, cfg.Height, seedStart, seedStart+int64(runs)-1)
	fmt.Fprintf(out, "settled:       %d\n", s.Settled)
	fmt.Fprintf(out, "mean lifetime: %.1f generations\n", s.MeanLifetime)
	fmt.Fprintf(out, "mean final:    %.1f cells\n", s.MeanFinalPop)
	fmt.Fprintf(out, "longest:       seed %d (%d generations)\n", s.LongestSeed, s.LongestLived)
	fmt.Fprintf(out, "elapsed:       %v\n", elapsed.Round(time.Millisecond))

	periods := make([]int, 0, len(s.PeriodCounts))
	for p := range s.PeriodCounts {
		periods = append(periods, p)
	}
	sort.Ints(periods)
	for _, p := range periods {
		fmt.Fprintf(out, "  period %d: %d\n", p, s.PeriodCounts[p])
	}

	sort.SliceStable(results, func(i, j int) bool { return results[i].Generations > results[j].Generations })
	fmt.Fprintln(out)
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SEED\tGENERATIONS\tPERIOD\tINITIAL\tPEAK\tFINAL")
	for _, r := range results[:min(top, len(results))] {
		fmt.Fprintf(w, "%d\t%d\t%d\t%d\t%d\t%d\n", r.Seed, r.Generations, r.Period, r.Initial, r.Peak, r.Final.Population())
	}
	w.Flush()

	if best := results[0]; len(best.Population) > 1 {
		fmt.Fprintln(out, asciigraph.Plot(best.Population,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(fmt.Sprintf("population, seed %d", best.Seed)),
		))
	}
	return nil
}
