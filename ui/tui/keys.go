package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

type keyMap struct {
	Sad     key.Binding
	Neutral key.Binding
	Happy   key.Binding
	Prev    key.Binding
	Next    key.Binding
	Reset   key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Sad: key.NewBinding(
			key.WithKeys("1", "s"),
			key.WithHelp("1/s", "sad"),
		),
		Neutral: key.NewBinding(
			key.WithKeys("2", "n"),
			key.WithHelp("2/n", "neutral"),
		),
		Happy: key.NewBinding(
			key.WithKeys("3", "h"),
			key.WithHelp("3/h", "happy"),
		),
		Prev: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "previous mood"),
		),
		Next: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "next mood"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Sad, k.Neutral, k.Happy, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Sad, k.Neutral, k.Happy},
		{k.Prev, k.Next, k.Reset},
		{k.Help, k.Quit},
	}
}
