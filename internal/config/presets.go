package config

import "sort"

var Presets = map[string]*Config{
	"classic": {
		Width: 80, Height: 80, CellWidth: 10, CellHeight: 10, Theme: "classic",
	},
	"small": {
		Width: 40, Height: 40, CellWidth: 16, CellHeight: 16, FrameDelayMs: 50, Theme: "classic",
	},
	"terminal": {
		Width: 60, Height: 30, CellWidth: 2, CellHeight: 1, FrameDelayMs: 30, Theme: "retro",
	},
	"slow": {
		Width: 80, Height: 80, CellWidth: 10, CellHeight: 10, FrameDelayMs: 250, Theme: "minimal",
	},
	"kaleidoscope": {
		Width: 81, Height: 81, CellWidth: 8, CellHeight: 8, FrameDelayMs: 60, Mirror: true, Theme: "sunset",
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	c := *p
	return &c
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
