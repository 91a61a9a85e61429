package ui

import (
	"sort"

	"github.com/charmbracelet/lipgloss"

	"github.com/DaanHessen/crowdboard/internal/content"
)

const defaultTheme = "catppuccin"

type palette struct {
	Text     lipgloss.Color
	Muted    lipgloss.Color
	Accent   lipgloss.Color
	Border   lipgloss.Color
	Surface  lipgloss.Color
	Peak     lipgloss.Color
	NonPeak  lipgloss.Color
	Element  lipgloss.Color
	Limit    lipgloss.Color
	Selected lipgloss.Color
}

var palettes = map[string]palette{
	"catppuccin": {
		Text:     lipgloss.Color("#cdd6f4"),
		Muted:    lipgloss.Color("#a6adc8"),
		Accent:   lipgloss.Color("#cba6f7"),
		Border:   lipgloss.Color("#585b70"),
		Surface:  lipgloss.Color("#313244"),
		Peak:     lipgloss.Color("#f38ba8"),
		NonPeak:  lipgloss.Color("#a6e3a1"),
		Element:  lipgloss.Color("#89b4fa"),
		Limit:    lipgloss.Color("#fab387"),
		Selected: lipgloss.Color("#45475a"),
	},
	"dracula": {
		Text:     lipgloss.Color("#f8f8f2"),
		Muted:    lipgloss.Color("#6272a4"),
		Accent:   lipgloss.Color("#bd93f9"),
		Border:   lipgloss.Color("#44475a"),
		Surface:  lipgloss.Color("#343746"),
		Peak:     lipgloss.Color("#ff5555"),
		NonPeak:  lipgloss.Color("#50fa7b"),
		Element:  lipgloss.Color("#8be9fd"),
		Limit:    lipgloss.Color("#ffb86c"),
		Selected: lipgloss.Color("#3c4053"),
	},
	"gruvbox": {
		Text:     lipgloss.Color("#ebdbb2"),
		Muted:    lipgloss.Color("#a89984"),
		Accent:   lipgloss.Color("#d3869b"),
		Border:   lipgloss.Color("#665c54"),
		Surface:  lipgloss.Color("#3c3836"),
		Peak:     lipgloss.Color("#fb4934"),
		NonPeak:  lipgloss.Color("#b8bb26"),
		Element:  lipgloss.Color("#83a598"),
		Limit:    lipgloss.Color("#fe8019"),
		Selected: lipgloss.Color("#504945"),
	},
	"solarized_dark": {
		Text:     lipgloss.Color("#fdf6e3"),
		Muted:    lipgloss.Color("#93a1a1"),
		Accent:   lipgloss.Color("#6c71c4"),
		Border:   lipgloss.Color("#586e75"),
		Surface:  lipgloss.Color("#073642"),
		Peak:     lipgloss.Color("#dc322f"),
		NonPeak:  lipgloss.Color("#859900"),
		Element:  lipgloss.Color("#268bd2"),
		Limit:    lipgloss.Color("#cb4b16"),
		Selected: lipgloss.Color("#0a3a45"),
	},
}

// sceneGradients are the two-stop header colours behind each StyleToken.
var sceneGradients = map[content.StyleToken][2]lipgloss.Color{
	content.StylePurple:  {"#a855f7", "#4f46e5"},
	content.StyleEmerald: {"#10b981", "#0d9488"},
	content.StyleAmber:   {"#f59e0b", "#ea580c"},
	content.StyleRose:    {"#f43f5e", "#db2777"},
	content.StyleBlue:    {"#3b82f6", "#0891b2"},
}

func paletteFor(name string) palette {
	if p, ok := palettes[name]; ok {
		return p
	}
	return palettes[defaultTheme]
}

func gradientFor(token content.StyleToken) [2]lipgloss.Color {
	if g, ok := sceneGradients[token]; ok {
		return g
	}
	return sceneGradients[content.StylePurple]
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
