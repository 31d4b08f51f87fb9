package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Generate      key.Binding
	Play          key.Binding
	DurationDown  key.Binding
	DurationUp    key.Binding
	IntensityDown key.Binding
	IntensityUp   key.Binding
	Tab           key.Binding
	Theme         key.Binding
	Help          key.Binding
	Back          key.Binding
	Quit          key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Generate, k.Play, k.DurationDown, k.DurationUp, k.Tab, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Generate, k.Play},
		{k.DurationDown, k.DurationUp, k.IntensityDown, k.IntensityUp},
		{k.Tab, k.Theme, k.Help, k.Back, k.Quit},
	}
}

func newKeyMap() keyMap {
	return keyMap{
		Generate:      key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "generate")),
		Play:          key.NewBinding(key.WithKeys("p", " "), key.WithHelp("p/space", "play")),
		DurationDown:  key.NewBinding(key.WithKeys("-"), key.WithHelp("-", "duration -1s")),
		DurationUp:    key.NewBinding(key.WithKeys("=", "+"), key.WithHelp("=", "duration +1s")),
		IntensityDown: key.NewBinding(key.WithKeys("["), key.WithHelp("[", "intensity -1")),
		IntensityUp:   key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "intensity +1")),
		Tab:           key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "cycle views")),
		Theme:         key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
		Help:          key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Back:          key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Quit:          key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}
