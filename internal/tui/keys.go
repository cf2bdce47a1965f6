package tui

import "github.com/charmbracelet/bubbles/key"

// zoneKeyMap holds the key bindings of the zone browser.
type zoneKeyMap struct {
	Prev        key.Binding
	Next        key.Binding
	Follow      key.Binding
	ToggleMix   key.Binding
	CycleDomain key.Binding
	Help        key.Binding
	Quit        key.Binding
}

func defaultZoneKeyMap() zoneKeyMap {
	return zoneKeyMap{
		Prev: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "previous year"),
		),
		Next: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next year"),
		),
		Follow: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "follow current year"),
		),
		ToggleMix: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "toggle consumption/production"),
		),
		CycleDomain: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "cycle intensity domain"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k zoneKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.ToggleMix, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k zoneKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Prev, k.Next, k.Follow},
		{k.ToggleMix, k.CycleDomain},
		{k.Help, k.Quit},
	}
}
