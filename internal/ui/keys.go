package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	NextScene key.Binding
	PrevScene key.Binding
	Up        key.Binding
	Down      key.Binding
	Select    key.Binding
	Toggle    key.Binding
	Peak      key.Binding
	NonPeak   key.Binding
	VenueMap  key.Binding
	Copy      key.Binding
	Export    key.Binding
	NextTab   key.Binding
	PrevTab   key.Binding
	Tabs      key.Binding
	Theme     key.Binding
	PageUp    key.Binding
	PageDown  key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		NextScene: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next scene")),
		PrevScene: key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "previous scene")),
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Select:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open frame")),
		Toggle:    key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "peak/non-peak")),
		Peak:      key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "peak hours")),
		NonPeak:   key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "non-peak")),
		VenueMap:  key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "venue map")),
		Copy:      key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copy narrative")),
		Export:    key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "export diagram")),
		NextTab:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		PrevTab:   key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev tab")),
		Tabs:      key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6"), key.WithHelp("1-6", "jump to tab")),
		Theme:     key.NewBinding(key.WithKeys("T"), key.WithHelp("T", "cycle theme")),
		PageUp:    key.NewBinding(key.WithKeys("pgup", "ctrl+b"), key.WithHelp("pgup", "scroll up")),
		PageDown:  key.NewBinding(key.WithKeys("pgdown", "ctrl+f"), key.WithHelp("pgdn", "scroll down")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "toggle help")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.PrevScene, k.NextScene, k.Toggle, k.VenueMap, k.Tabs, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.PrevScene, k.NextScene, k.Up, k.Down, k.Select},
		{k.Toggle, k.Peak, k.NonPeak, k.VenueMap},
		{k.Tabs, k.NextTab, k.PrevTab, k.PageUp, k.PageDown},
		{k.Copy, k.Export, k.Theme, k.Help, k.Quit},
	}
}
