// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package viewer

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the viewer's key bindings.
type KeyMap struct {
	// Back and Forward step along the scroll axis. Left and Right do
	// the same but only on a horizontal view.
	Back    key.Binding
	Forward key.Binding
	Left    key.Binding
	Right   key.Binding

	PageBack    key.Binding
	PageForward key.Binding
	Start       key.Binding
	End         key.Binding

	// Fuzzy line search.
	Search         key.Binding
	SearchNext     key.Binding
	SearchPrevious key.Binding

	Quit key.Binding
}

// DefaultKeyMap is the built-in key binding set. Vim-style movement
// alongside arrow keys and page up/down.
var DefaultKeyMap = KeyMap{
	Back: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "back"),
	),
	Forward: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "forward"),
	),
	Left: key.NewBinding(
		key.WithKeys("h", "left"),
		key.WithHelp("h/←", "left"),
	),
	Right: key.NewBinding(
		key.WithKeys("l", "right"),
		key.WithHelp("l/→", "right"),
	),
	PageBack: key.NewBinding(
		key.WithKeys("ctrl+u", "pgup", "b"),
		key.WithHelp("pgup", "page back"),
	),
	PageForward: key.NewBinding(
		key.WithKeys("ctrl+d", "pgdown", " ", "f"),
		key.WithHelp("pgdn", "page forward"),
	),
	Start: key.NewBinding(
		key.WithKeys("g", "home"),
		key.WithHelp("g", "start"),
	),
	End: key.NewBinding(
		key.WithKeys("G", "end"),
		key.WithHelp("G", "end"),
	),
	Search: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "search"),
	),
	SearchNext: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "next match"),
	),
	SearchPrevious: key.NewBinding(
		key.WithKeys("N"),
		key.WithHelp("N", "previous match"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c", "esc"),
		key.WithHelp("q", "quit"),
	),
}

// ShortHelp returns the bindings shown in the status line.
func (keys KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{keys.Forward, keys.Back, keys.PageForward, keys.Start, keys.End, keys.Search, keys.Quit}
}
