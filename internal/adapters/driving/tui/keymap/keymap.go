// Package keymap holds the TUI keybindings and the help entries the
// status bar renders for them.
package keymap

import (
	"slices"

	"github.com/charmbracelet/bubbles/key"
)

// KeyMap groups every binding the search view responds to. Enter is
// bound twice on purpose: it submits the query while the input has
// focus and opens details once a result is selected.
type KeyMap struct {
	// Quit ends the program from any mode.
	Quit key.Binding

	// Back closes the details panel, then leaves results mode, then
	// exits the application.
	Back key.Binding

	// Search submits the query in the input field.
	Search key.Binding

	// Up navigates up in the result list. The ctrl variant works while
	// the input field still has focus.
	Up key.Binding

	// Down navigates down in the result list.
	Down key.Binding

	// Details opens the details panel for the selected result.
	Details key.Binding

	// NewSearch clears the query and refocuses the input field.
	NewSearch key.Binding
}

// bind builds a binding together with its help entry.
func bind(label, action string, keys ...string) key.Binding {
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(label, action),
	)
}

// DefaultKeyMap returns the stock docdex bindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Quit:      bind("ctrl+c", "quit", "ctrl+c"),
		Back:      bind("esc", "back", "esc"),
		Search:    bind("enter", "search", "enter"),
		Up:        bind("↑/ctrl+k", "up", "up", "ctrl+k"),
		Down:      bind("↓/ctrl+j", "down", "down", "ctrl+j"),
		Details:   bind("enter", "details", "enter"),
		NewSearch: bind("n", "new search", "n"),
	}
}

// InputHelp returns keybindings shown while the input field has focus.
func (k *KeyMap) InputHelp() []key.Binding {
	return []key.Binding{k.Search, k.Quit}
}

// ResultsHelp returns keybindings shown while navigating results.
func (k *KeyMap) ResultsHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Details, k.NewSearch, k.Back}
}

// DetailsHelp returns keybindings shown while the details panel is open.
func (k *KeyMap) DetailsHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Back}
}

// Matches reports whether the pressed key is one of the binding's keys.
func Matches(pressed string, binding key.Binding) bool {
	return slices.Contains(binding.Keys(), pressed)
}
