package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Restart  key.Binding
	Continue key.Binding
	Retry    key.Binding
	Leave    key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Restart: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "restart"),
		),
		Continue: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "continue"),
		),
		Retry: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "try again"),
		),
		Leave: key.NewBinding(
			key.WithKeys("q", "esc"),
			key.WithHelp("q", "quit"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// practiceKeys is the help shown while typing.
type practiceKeys keyMap

func (k practiceKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Restart, k.Quit}
}

func (k practiceKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// resultKeys is the help shown on the results screen.
type resultKeys keyMap

func (k resultKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Retry, k.Leave}
}

func (k resultKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
