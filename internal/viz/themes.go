package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines the highlight colours used when colour output is enabled.
type Theme struct {
	Name    string
	Sparkle lipgloss.Color
	Banner  lipgloss.Color
	Status  lipgloss.Color
	Muted   lipgloss.Color
}

// Available themes
var (
	ThemeDisco = Theme{
		Name:    "disco",
		Sparkle: lipgloss.Color("#00ffff"), // Cyan
		Banner:  lipgloss.Color("#ffff00"), // Yellow
		Status:  lipgloss.Color("#ff00ff"),
		Muted:   lipgloss.Color("#666666"),
	}

	ThemeRetroGreen = Theme{
		Name:    "retro",
		Sparkle: lipgloss.Color("#88ff88"), // Green phosphor
		Banner:  lipgloss.Color("#00ff00"),
		Status:  lipgloss.Color("#00cc00"),
		Muted:   lipgloss.Color("#005500"),
	}

	ThemeMinimal = Theme{
		Name:    "minimal",
		Sparkle: lipgloss.Color("#ffffff"),
		Banner:  lipgloss.Color("#0088ff"),
		Status:  lipgloss.Color("#cccccc"),
		Muted:   lipgloss.Color("#888888"),
	}

	ThemeOcean = Theme{
		Name:    "ocean",
		Sparkle: lipgloss.Color("#00a8cc"),
		Banner:  lipgloss.Color("#ffd700"),
		Status:  lipgloss.Color("#0077be"), // Ocean blue
		Muted:   lipgloss.Color("#4488aa"),
	}

	ThemeSunset = Theme{
		Name:    "sunset",
		Sparkle: lipgloss.Color("#feca57"),
		Banner:  lipgloss.Color("#ff6b6b"), // Coral
		Status:  lipgloss.Color("#ff9ff3"),
		Muted:   lipgloss.Color("#8b6b8c"),
	}

	// All available themes
	Themes = []Theme{
		ThemeDisco,
		ThemeRetroGreen,
		ThemeMinimal,
		ThemeOcean,
		ThemeSunset,
	}
)

// GetTheme returns a theme by name, falling back to disco.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeDisco
}

// NextTheme returns the theme after name in Themes, wrapping around.
func NextTheme(name string) Theme {
	for i, t := range Themes {
		if t.Name == name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}

// ThemeNames returns list of available theme names
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
