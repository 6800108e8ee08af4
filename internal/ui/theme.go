// Package ui renders terminal output. All styling comes from a Theme value
// that is chosen once at startup and passed to whoever draws.
package ui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Palette is the set of colours a theme is built from.
type Palette struct {
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Success   lipgloss.Color
	Warning   lipgloss.Color
	Error     lipgloss.Color
	Muted     lipgloss.Color
	Text      lipgloss.Color
	Border    lipgloss.Color
}

// Theme holds the styles used by the Printer and the TUI.
type Theme struct {
	Name    string
	Palette Palette

	Title   lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Muted   lipgloss.Style
	Info    lipgloss.Style
	Key     lipgloss.Style
	Value   lipgloss.Style
	Stats   lipgloss.Style
	Card    lipgloss.Style
	Focused lipgloss.Style
}

var palettes = map[string]Palette{
	"white": {
		Primary:   lipgloss.Color("#7C3AED"), // Purple
		Secondary: lipgloss.Color("#3B82F6"), // Blue
		Success:   lipgloss.Color("#10B981"), // Green
		Warning:   lipgloss.Color("#F59E0B"), // Amber
		Error:     lipgloss.Color("#EF4444"), // Red
		Muted:     lipgloss.Color("#6B7280"), // Gray
		Text:      lipgloss.Color("#111827"),
		Border:    lipgloss.Color("#D1D5DB"),
	},
	"dark": {
		Primary:   lipgloss.Color("#A78BFA"),
		Secondary: lipgloss.Color("#60A5FA"),
		Success:   lipgloss.Color("#34D399"),
		Warning:   lipgloss.Color("#FBBF24"),
		Error:     lipgloss.Color("#F87171"),
		Muted:     lipgloss.Color("#9CA3AF"),
		Text:      lipgloss.Color("#E5E7EB"),
		Border:    lipgloss.Color("#4B5563"),
	},
	"mono": {
		Primary:   lipgloss.Color("15"),
		Secondary: lipgloss.Color("15"),
		Success:   lipgloss.Color("15"),
		Warning:   lipgloss.Color("15"),
		Error:     lipgloss.Color("15"),
		Muted:     lipgloss.Color("8"),
		Text:      lipgloss.Color("15"),
		Border:    lipgloss.Color("8"),
	},
}

// ThemeNames returns the available theme names in carousel order.
func ThemeNames() []string {
	names := make([]string, 0, len(palettes))
	for name := range palettes {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		return themeOrder(names[i]) < themeOrder(names[j])
	})
	return names
}

func themeOrder(name string) int {
	switch name {
	case "white":
		return 0
	case "dark":
		return 1
	}
	return 2
}

// LookupTheme returns the named theme.
func LookupTheme(name string) (Theme, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	p, ok := palettes[key]
	if !ok {
		return Theme{}, fmt.Errorf("unknown theme %q (want %s)", name, strings.Join(ThemeNames(), ", "))
	}
	return NewTheme(key, p), nil
}

// ThemeOrDefault returns the named theme, falling back to white.
func ThemeOrDefault(name string) Theme {
	t, err := LookupTheme(name)
	if err != nil {
		return DefaultTheme()
	}
	return t
}

// DefaultTheme is the white theme.
func DefaultTheme() Theme {
	return NewTheme("white", palettes["white"])
}

// NextTheme returns the theme after t in carousel order.
func NextTheme(t Theme) Theme {
	names := ThemeNames()
	for i, name := range names {
		if name == t.Name {
			return ThemeOrDefault(names[(i+1)%len(names)])
		}
	}
	return DefaultTheme()
}

// NewTheme builds the styles for a palette.
func NewTheme(name string, p Palette) Theme {
	return Theme{
		Name:    name,
		Palette: p,
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Secondary),
		Success: lipgloss.NewStyle().
			Foreground(p.Success).
			Bold(true),
		Error: lipgloss.NewStyle().
			Foreground(p.Error).
			Bold(true),
		Warning: lipgloss.NewStyle().
			Foreground(p.Warning),
		Muted: lipgloss.NewStyle().
			Foreground(p.Muted),
		Info: lipgloss.NewStyle().
			Foreground(p.Secondary),
		Key: lipgloss.NewStyle().
			Foreground(p.Primary).
			Bold(true),
		Value: lipgloss.NewStyle().
			Foreground(p.Text),
		Stats: lipgloss.NewStyle().
			Foreground(p.Muted).
			Italic(true),
		Card: lipgloss.NewStyle().
			Padding(0, 1).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(p.Border),
		Focused: lipgloss.NewStyle().
			Padding(0, 1).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(p.Primary),
	}
}
