package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/san-kum/lifesim/internal/config"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestSaveConfigPrecedence(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.yaml")
	if err := os.WriteFile(in, []byte("width: 20\nheight: 30\ntheme: ocean\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	outPath := filepath.Join(dir, "out.yaml")

	if _, err := execute(t, "save-config", outPath, "--config", in, "--height", "15", "--mirror"); err != nil {
		t.Fatal(err)
	}
	cfg, err := config.Load(outPath)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 20 {
		t.Errorf("file value lost: width %d", cfg.Width)
	}
	if cfg.Height != 15 {
		t.Errorf("flag should override file: height %d", cfg.Height)
	}
	if !cfg.Mirror || cfg.Theme != "ocean" {
		t.Errorf("unexpected config %+v", cfg)
	}
}

func TestPresetApplied(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "out.yaml")
	if _, err := execute(t, "save-config", outPath, "--preset", "kaleidoscope"); err != nil {
		t.Fatal(err)
	}
	cfg, err := config.Load(outPath)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 81 || !cfg.Mirror {
		t.Errorf("preset not applied: %+v", cfg)
	}
}

func TestUnknownPreset(t *testing.T) {
	_, err := execute(t, "run", "--preset", "nope")
	if err == nil || !strings.Contains(err.Error(), "unknown preset") {
		t.Errorf("expected unknown preset error, got %v", err)
	}
}

func TestInvalidBoard(t *testing.T) {
	if _, err := execute(t, "run", "--width", "0"); err == nil {
		t.Error("expected error for zero width")
	}
}

func TestRunHeadless(t *testing.T) {
	out, err := execute(t, "run", "--width", "10", "--height", "10", "--pattern", "blinker", "--generations", "3")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "generation: 3") {
		t.Errorf("expected 3 generations, got\n%s", out)
	}
	if !strings.Contains(out, "population: 3") {
		t.Errorf("blinker population should stay 3\n%s", out)
	}
}

func TestRunStopsWhenSettled(t *testing.T) {
	out, err := execute(t, "run", "--width", "10", "--height", "10", "--pattern", "block", "--generations", "50", "--plot")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "generation: 0") || !strings.Contains(out, "settled:    yes") {
		t.Errorf("still life should settle immediately\n%s", out)
	}
}

func TestUnknownPattern(t *testing.T) {
	if _, err := execute(t, "run", "--pattern", "nope"); err == nil {
		t.Error("expected error for unknown pattern")
	}
}

func TestExport(t *testing.T) {
	dir := t.TempDir()
	svg := filepath.Join(dir, "b.svg")
	if _, err := execute(t, "export", "svg", "-o", svg, "--width", "10", "--height", "10", "--pattern", "glider", "--generations", "4"); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(svg)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "<svg") {
		t.Error("expected svg output")
	}

	gifPath := filepath.Join(dir, "b.gif")
	if _, err := execute(t, "export", "gif", "-o", gifPath, "--width", "10", "--height", "10", "--pattern", "blinker", "--generations", "4"); err != nil {
		t.Fatal(err)
	}
	if fi, err := os.Stat(gifPath); err != nil || fi.Size() == 0 {
		t.Errorf("expected gif file, err %v", err)
	}
}

func TestListings(t *testing.T) {
	out, err := execute(t, "presets")
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range config.ListPresets() {
		if !strings.Contains(out, name) {
			t.Errorf("presets output missing %s", name)
		}
	}

	out, err = execute(t, "patterns")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "glider") || !strings.Contains(out, "3x3") {
		t.Errorf("unexpected patterns output\n%s", out)
	}
}

func TestSurvey(t *testing.T) {
	out, err := execute(t, "survey", "--width", "12", "--height", "12", "--runs", "4", "--generations", "40", "--seed", "9", "--workers", "2", "--top", "2")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"soups:         4", "seeds 9..12", "SEED", "mean lifetime"} {
		if !strings.Contains(out, want) {
			t.Errorf("survey output missing %q\n%s", want, out)
		}
	}

	dir := t.TempDir()
	jsonPath, csvPath := filepath.Join(dir, "s.json"), filepath.Join(dir, "s.csv")
	if _, err := execute(t, "survey", "--width", "8", "--height", "8", "--runs", "3", "--generations", "20", "--json", jsonPath, "--csv", csvPath); err != nil {
		t.Fatal(err)
	}
	for _, p := range []string{jsonPath, csvPath} {
		if fi, err := os.Stat(p); err != nil || fi.Size() == 0 {
			t.Errorf("expected report at %s, err %v", p, err)
		}
	}

	if _, err := execute(t, "survey", "--runs", "0"); err == nil {
		t.Error("expected error for zero runs")
	}
	if _, err := execute(t, "survey", "--width", "8", "--height", "8", "--runs", "2", "--generations", "5", "--top", "-1"); err == nil {
		t.Error("expected error for negative top")
	}
}
