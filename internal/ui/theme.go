package ui

import (
	"sort"

	"github.com/charmbracelet/lipgloss"
)

type palette struct {
	Surface  lipgloss.Color
	Text     lipgloss.Color
	Muted    lipgloss.Color
	Accent   lipgloss.Color
	Border   lipgloss.Color
	Success  lipgloss.Color
	Warning  lipgloss.Color
	BarFill  lipgloss.Color
	BarEmpty lipgloss.Color
}

const defaultTheme = "catppuccin"

var palettes = map[string]palette{
	"catppuccin": {
		Surface:  lipgloss.Color("#313244"),
		Text:     lipgloss.Color("#cdd6f4"),
		Muted:    lipgloss.Color("#a6adc8"),
		Accent:   lipgloss.Color("#cba6f7"),
		Border:   lipgloss.Color("#585b70"),
		Success:  lipgloss.Color("#94e2d5"),
		Warning:  lipgloss.Color("#f9e2af"),
		BarFill:  lipgloss.Color("#a6e3a1"),
		BarEmpty: lipgloss.Color("#313244"),
	},
	"dracula": {
		Surface:  lipgloss.Color("#343746"),
		Text:     lipgloss.Color("#f8f8f2"),
		Muted:    lipgloss.Color("#6272a4"),
		Accent:   lipgloss.Color("#ff79c6"),
		Border:   lipgloss.Color("#44475a"),
		Success:  lipgloss.Color("#50fa7b"),
		Warning:  lipgloss.Color("#f1fa8c"),
		BarFill:  lipgloss.Color("#50fa7b"),
		BarEmpty: lipgloss.Color("#343746"),
	},
	"gruvbox": {
		Surface:  lipgloss.Color("#3c3836"),
		Text:     lipgloss.Color("#ebdbb2"),
		Muted:    lipgloss.Color("#a89984"),
		Accent:   lipgloss.Color("#fabd2f"),
		Border:   lipgloss.Color("#665c54"),
		Success:  lipgloss.Color("#b8bb26"),
		Warning:  lipgloss.Color("#fe8019"),
		BarFill:  lipgloss.Color("#b8bb26"),
		BarEmpty: lipgloss.Color("#3c3836"),
	},
	"solarized_dark": {
		Surface:  lipgloss.Color("#073642"),
		Text:     lipgloss.Color("#fdf6e3"),
		Muted:    lipgloss.Color("#93a1a1"),
		Accent:   lipgloss.Color("#b58900"),
		Border:   lipgloss.Color("#586e75"),
		Success:  lipgloss.Color("#859900"),
		Warning:  lipgloss.Color("#cb4b16"),
		BarFill:  lipgloss.Color("#859900"),
		BarEmpty: lipgloss.Color("#073642"),
	},
}

func paletteFor(name string) palette {
	if p, ok := palettes[name]; ok {
		return p
	}
	return palettes[defaultTheme]
}

func themeNames() []string {
	names := make([]string, 0, len(palettes))
	for k := range palettes {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

func nextThemeName(current string, step int) string {
	names := themeNames()
	if len(names) == 0 {
		return current
	}
	idx := 0
	for i, name := range names {
		if name == current {
			idx = i
			break
		}
	}
	idx = (idx + step) % len(names)
	if idx < 0 {
		idx += len(names)
	}
	return names[idx]
}

// styles are derived from a palette whenever the theme changes.
type styles struct {
	title          lipgloss.Style
	heading        lipgloss.Style
	panel          lipgloss.Style
	muted          lipgloss.Style
	sound          lipgloss.Style
	button         lipgloss.Style
	buttonDisabled lipgloss.Style
	barFill        lipgloss.Style
	barEmpty       lipgloss.Style
	ok             lipgloss.Style
}

func newStyles(p palette) styles {
	return styles{
		title:          lipgloss.NewStyle().Bold(true).Foreground(p.Accent).MarginBottom(1),
		heading:        lipgloss.NewStyle().Bold(true).Foreground(p.Text),
		panel:          lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(p.Border).Padding(0, 1),
		muted:          lipgloss.NewStyle().Foreground(p.Muted),
		sound:          lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#fde047")),
		button:         lipgloss.NewStyle().Bold(true).Foreground(p.Text).Background(p.Surface).Padding(0, 2).MarginRight(2),
		buttonDisabled: lipgloss.NewStyle().Faint(true).Foreground(p.Muted).Padding(0, 2).MarginRight(2),
		barFill:        lipgloss.NewStyle().Foreground(p.BarFill),
		barEmpty:       lipgloss.NewStyle().Foreground(p.BarEmpty),
		ok:             lipgloss.NewStyle().Foreground(p.Success),
	}
}
