package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// Theme colors the status line and the backdrop behind transparent pixels.
type Theme struct {
	Name       string
	Primary    lipgloss.Color
	Muted      lipgloss.Color
	Accent     lipgloss.Color
	Background lipgloss.Color
}

var (
	ThemeMinimal = Theme{
		Name:       "minimal",
		Primary:    lipgloss.Color("#ffffff"),
		Muted:      lipgloss.Color("#888888"),
		Accent:     lipgloss.Color("#0088ff"),
		Background: lipgloss.Color("#0a0a0a"),
	}

	ThemeRetroGreen = Theme{
		Name:       "retro",
		Primary:    lipgloss.Color("#00ff00"), // Green phosphor
		Muted:      lipgloss.Color("#005500"),
		Accent:     lipgloss.Color("#88ff88"),
		Background: lipgloss.Color("#001100"),
	}

	ThemeSunset = Theme{
		Name:       "sunset",
		Primary:    lipgloss.Color("#ff6b6b"), // Coral
		Muted:      lipgloss.Color("#8b6b8c"),
		Accent:     lipgloss.Color("#feca57"),
		Background: lipgloss.Color("#2d1b2e"),
	}

	Themes = []Theme{
		ThemeMinimal,
		ThemeRetroGreen,
		ThemeSunset,
	}
)

// GetTheme returns a theme by name and its position in Themes, falling back
// to the first theme.
func GetTheme(name string) (Theme, int) {
	for i, t := range Themes {
		if t.Name == name {
			return t, i
		}
	}
	return Themes[0], 0
}

// ThemeNames returns list of available theme names
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

func (t Theme) backdrop() colorful.Color {
	c, err := colorful.Hex(string(t.Background))
	if err != nil {
		return colorful.Color{}
	}
	return c
}

func (t Theme) primary() lipgloss.Style { return lipgloss.NewStyle().Foreground(t.Primary) }
func (t Theme) muted() lipgloss.Style   { return lipgloss.NewStyle().Foreground(t.Muted) }
func (t Theme) accent() lipgloss.Style  { return lipgloss.NewStyle().Foreground(t.Accent).Bold(true) }
