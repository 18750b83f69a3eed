package viz

import (
	"image/color"

	"github.com/charmbracelet/lipgloss"
)

// Theme defines the colour scheme shared by the terminal and window front-ends.
type Theme struct {
	Name       string
	Alive      lipgloss.Color
	Dead       lipgloss.Color
	GridLine   lipgloss.Color
	Accent     lipgloss.Color
	Background lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color
	Running    lipgloss.Color
	Paused     lipgloss.Color
}

var (
	ThemeClassic = Theme{
		Name:       "classic",
		Alive:      lipgloss.Color("#f0f0f0"),
		Dead:       lipgloss.Color("#303030"),
		GridLine:   lipgloss.Color("#1e1e1e"),
		Accent:     lipgloss.Color("#00cccc"),
		Background: lipgloss.Color("#0a0a0a"),
		Text:       lipgloss.Color("#ffffff"),
		Muted:      lipgloss.Color("#666666"),
		Running:    lipgloss.Color("#00ff88"),
		Paused:     lipgloss.Color("#ffaa00"),
	}

	ThemeRetroGreen = Theme{
		Name:       "retro",
		Alive:      lipgloss.Color("#00ff00"), // green phosphor
		Dead:       lipgloss.Color("#003300"),
		GridLine:   lipgloss.Color("#002200"),
		Accent:     lipgloss.Color("#88ff88"),
		Background: lipgloss.Color("#001100"),
		Text:       lipgloss.Color("#00ff00"),
		Muted:      lipgloss.Color("#005500"),
		Running:    lipgloss.Color("#88ff88"),
		Paused:     lipgloss.Color("#ffff00"),
	}

	ThemeMinimal = Theme{
		Name:       "minimal",
		Alive:      lipgloss.Color("#ffffff"),
		Dead:       lipgloss.Color("#000000"),
		GridLine:   lipgloss.Color("#222222"),
		Accent:     lipgloss.Color("#0088ff"),
		Background: lipgloss.Color("#000000"),
		Text:       lipgloss.Color("#ffffff"),
		Muted:      lipgloss.Color("#888888"),
		Running:    lipgloss.Color("#00ff00"),
		Paused:     lipgloss.Color("#ffaa00"),
	}

	ThemeOcean = Theme{
		Name:       "ocean",
		Alive:      lipgloss.Color("#00a8cc"),
		Dead:       lipgloss.Color("#0b2a45"),
		GridLine:   lipgloss.Color("#08223a"),
		Accent:     lipgloss.Color("#ffd700"),
		Background: lipgloss.Color("#001a33"),
		Text:       lipgloss.Color("#e0f0ff"),
		Muted:      lipgloss.Color("#4488aa"),
		Running:    lipgloss.Color("#00ff88"),
		Paused:     lipgloss.Color("#ffcc00"),
	}

	ThemeSunset = Theme{
		Name:       "sunset",
		Alive:      lipgloss.Color("#ff6b6b"), // coral
		Dead:       lipgloss.Color("#3d2a3e"),
		GridLine:   lipgloss.Color("#362337"),
		Accent:     lipgloss.Color("#ff9ff3"),
		Background: lipgloss.Color("#2d1b2e"),
		Text:       lipgloss.Color("#fff5f5"),
		Muted:      lipgloss.Color("#8b6b8c"),
		Running:    lipgloss.Color("#5fd068"),
		Paused:     lipgloss.Color("#ffc048"),
	}

	Themes = []Theme{
		ThemeClassic,
		ThemeRetroGreen,
		ThemeMinimal,
		ThemeOcean,
		ThemeSunset,
	}
)

// GetTheme returns a theme by name, falling back to classic.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeClassic
}

// NextTheme returns the theme after current in Themes, wrapping around.
func NextTheme(current Theme) Theme {
	for i, t := range Themes {
		if t.Name == current.Name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return ThemeClassic
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

// RGBA converts a "#rrggbb" theme colour for non-terminal surfaces.
// Malformed values come back as opaque white.
func RGBA(c lipgloss.Color) color.RGBA {
	r, g, b := parseHex(string(c))
	return color.RGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: 255}
}

func parseHex(hex string) (r, g, b int) {
	if len(hex) != 7 || hex[0] != '#' {
		return 255, 255, 255
	}
	r = parseHexByte(hex[1:3])
	g = parseHexByte(hex[3:5])
	b = parseHexByte(hex[5:7])
	return
}

func parseHexByte(s string) int {
	var val int
	for _, c := range s {
		val *= 16
		switch {
		case c >= '0' && c <= '9':
			val += int(c - '0')
		case c >= 'a' && c <= 'f':
			val += int(c - 'a' + 10)
		case c >= 'A' && c <= 'F':
			val += int(c - 'A' + 10)
		}
	}
	return val
}
