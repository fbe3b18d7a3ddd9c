package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines color scheme for the chrome around a scene
type Theme struct {
	Name      string
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Accent    lipgloss.Color
	Text      lipgloss.Color
	Muted     lipgloss.Color
	Border    lipgloss.Color
	Warning   lipgloss.Color
	Error     lipgloss.Color
}

var (
	ThemeStage = Theme{
		Name:      "stage",
		Primary:   lipgloss.Color("#8f84ff"),
		Secondary: lipgloss.Color("#1400DC"),
		Accent:    lipgloss.Color("#EA3365"),
		Text:      lipgloss.Color("#f4f1ea"),
		Muted:     lipgloss.Color("#60616a"),
		Border:    lipgloss.Color("#2a2b33"),
		Warning:   lipgloss.Color("#ffc048"),
		Error:     lipgloss.Color("#ff4757"),
	}

	ThemePhosphor = Theme{
		Name:      "phosphor",
		Primary:   lipgloss.Color("#00ff00"),
		Secondary: lipgloss.Color("#00cc00"),
		Accent:    lipgloss.Color("#88ff88"),
		Text:      lipgloss.Color("#00ff00"),
		Muted:     lipgloss.Color("#005500"),
		Border:    lipgloss.Color("#003300"),
		Warning:   lipgloss.Color("#ffff00"),
		Error:     lipgloss.Color("#ff0000"),
	}

	ThemePaper = Theme{
		Name:      "paper",
		Primary:   lipgloss.Color("#3b3b98"),
		Secondary: lipgloss.Color("#6a89cc"),
		Accent:    lipgloss.Color("#e55039"),
		Text:      lipgloss.Color("#2f3640"),
		Muted:     lipgloss.Color("#90919b"),
		Border:    lipgloss.Color("#c8c8c8"),
		Warning:   lipgloss.Color("#e58e26"),
		Error:     lipgloss.Color("#b71540"),
	}

	ThemeMono = Theme{
		Name:      "mono",
		Primary:   lipgloss.Color("#ffffff"),
		Secondary: lipgloss.Color("#cccccc"),
		Accent:    lipgloss.Color("#ffffff"),
		Text:      lipgloss.Color("#dddddd"),
		Muted:     lipgloss.Color("#777777"),
		Border:    lipgloss.Color("#444444"),
		Warning:   lipgloss.Color("#ffffff"),
		Error:     lipgloss.Color("#ffffff"),
	}

	Themes = []Theme{
		ThemeStage,
		ThemePhosphor,
		ThemePaper,
		ThemeMono,
	}
)

// themeIndex returns the position of a theme by name, or 0.
func themeIndex(name string) int {
	for i, t := range Themes {
		if t.Name == name {
			return i
		}
	}
	return 0
}

// GetTheme returns a theme by name
func GetTheme(name string) Theme {
	return Themes[themeIndex(name)]
}

// ThemeNames returns list of available theme names
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
