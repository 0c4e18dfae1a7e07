package keymap

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap declares every binding the shell advertises. Bindings for the
// resource tree (navigate, collapse, jump) are declared here so the help
// surfaces stay accurate, even though the tree itself ships in a later
// phase.
type KeyMap struct {
	Quit     key.Binding
	Refresh  key.Binding
	Help     key.Binding
	Navigate key.Binding
	Collapse key.Binding
	Expand   key.Binding
	Top      key.Binding
	Bottom   key.Binding
}

// Default returns the vim-flavored bindings the status bar advertises.
func Default() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Navigate: key.NewBinding(
			key.WithKeys("j", "k", "up", "down"),
			key.WithHelp("j/k/↑↓", "navigate"),
		),
		Collapse: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("h/←", "collapse"),
		),
		Expand: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("l/→", "expand"),
		),
		Top: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G"),
			key.WithHelp("G", "bottom"),
		),
	}
}

// ShortHelp returns the bindings listed in the compact help line, in
// display order.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Quit, k.Refresh, k.Help, k.Navigate, k.Collapse, k.Top}
}

// FullHelp returns the bindings grouped for the help panel.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Quit, k.Refresh, k.Help},
		{k.Navigate, k.Collapse, k.Expand},
		{k.Top, k.Bottom},
	}
}
