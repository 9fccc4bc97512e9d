package viz

import "github.com/charmbracelet/lipgloss"

// Theme colors the live player chrome: header, border and status text.
// Canvas glyphs keep their own per-cell colors and are never themed.
type Theme struct {
	Name   string
	Accent lipgloss.Color
	Border lipgloss.Color
	Muted  lipgloss.Color
}

var (
	ThemeMono = Theme{
		Name:   "mono",
		Accent: lipgloss.Color("252"),
		Border: lipgloss.Color("240"),
		Muted:  lipgloss.Color("245"),
	}

	ThemeNeon = Theme{
		Name:   "neon",
		Accent: lipgloss.Color("#ff00ff"),
		Border: lipgloss.Color("#00ffff"),
		Muted:  lipgloss.Color("#666688"),
	}

	ThemeAmber = Theme{
		Name:   "amber",
		Accent: lipgloss.Color("#ffb000"),
		Border: lipgloss.Color("#aa7700"),
		Muted:  lipgloss.Color("#886600"),
	}

	// Default theme
	CurrentTheme = ThemeMono

	// All available themes
	Themes = []Theme{ThemeMono, ThemeNeon, ThemeAmber}
)

// GetTheme returns a theme by name.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeMono
}

// SetTheme changes the current theme.
func SetTheme(name string) {
	CurrentTheme = GetTheme(name)
}

// ThemeNames returns the available theme names.
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
