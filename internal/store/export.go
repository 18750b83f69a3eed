// Package store writes survey reports as JSON or CSV.
package store

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/san-kum/lifesim/internal/sim"
)

type RunRecord struct {
	Seed        int64     `json:"seed"`
	Generations int       `json:"generations"`
	Settled     bool      `json:"settled"`
	Period      int       `json:"period"`
	Initial     int       `json:"initial"`
	Peak        int       `json:"peak"`
	Final       int       `json:"final"`
	Population  []float64 `json:"population,omitempty"`
}

type Report struct {
	Width          int         `json:"width"`
	Height         int         `json:"height"`
	MaxGenerations int         `json:"max_generations"`
	MaxPeriod      int         `json:"max_period"`
	Runs           int         `json:"runs"`
	Settled        int         `json:"settled"`
	MeanLifetime   float64     `json:"mean_lifetime"`
	MeanFinal      float64     `json:"mean_final"`
	Records        []RunRecord `json:"records"`
}

// NewReport flattens ensemble results. Population histories are included only
// when withHistory is set.
func NewReport(cfg sim.Config, results []*sim.Result, withHistory bool) *Report {
	s := sim.Summarize(results)
	r := &Report{
		Width:          cfg.Width,
		Height:         cfg.Height,
		MaxGenerations: cfg.MaxGenerations,
		MaxPeriod:      cfg.MaxPeriod,
		Runs:           s.Runs,
		Settled:        s.Settled,
		MeanLifetime:   s.MeanLifetime,
		MeanFinal:      s.MeanFinalPop,
		Records:        make([]RunRecord, len(results)),
	}
	for i, res := range results {
		rec := RunRecord{
			Seed:        res.Seed,
			Generations: res.Generations,
			Settled:     res.Settled,
			Period:      res.Period,
			Initial:     res.Initial,
			Peak:        res.Peak,
			Final:       res.Final.Population(),
		}
		if withHistory {
			rec.Population = res.Population
		}
		r.Records[i] = rec
	}
	return r
}

func WriteJSON(w io.Writer, r *Report) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(r)
}

// createFile opens report files for writing.
var createFile = func(path string) (io.WriteCloser, error) { return os.Create(path) }

// writeFile runs write against a new file at path. A failed Close is
// reported when the write itself succeeded.
func writeFile(path string, write func(io.Writer) error) (err error) {
	file, err := createFile(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	return write(file)
}

func ExportJSON(path string, r *Report) error {
	return writeFile(path, func(w io.Writer) error { return WriteJSON(w, r) })
}

// WriteCSV writes one row per run. Histories are not included.
func WriteCSV(w io.Writer, r *Report) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"seed", "generations", "settled", "period", "initial", "peak", "final"}); err != nil {
		return err
	}
	for _, rec := range r.Records {
		row := []string{
			strconv.FormatInt(rec.Seed, 10),
			strconv.Itoa(rec.Generations),
			strconv.FormatBool(rec.Settled),
			strconv.Itoa(rec.Period),
			strconv.Itoa(rec.Initial),
			strconv.Itoa(rec.Peak),
			strconv.Itoa(rec.Final),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	return nil
}

func ExportCSV(path string, r *Report) error {
	return writeFile(path, func(w io.Writer) error { return WriteCSV(w, r) })
}
