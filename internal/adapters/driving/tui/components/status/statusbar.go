// Package status renders the footer bar of the TUI: application state
// on the left, keybinding hints for that state on the right.
package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/docdex/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/docdex/internal/adapters/driving/tui/styles"
)

// State selects what the left side reports and which keybinding hints
// appear on the right.
type State string

const (
	StateReady     State = "ready"
	StateSearching State = "searching"
	StateResults   State = "results"
	StateDetails   State = "details"
	StateError     State = "error"
)

// Bar is the one-line footer of the TUI. It is passive: views drive it
// through the setters and render it with View; it has no message loop.
type Bar struct {
	styles      *styles.Styles
	keymap      *keymap.KeyMap
	state       State
	message     string
	resultCount int
	width       int
}

// NewBar builds a status bar in the ready state with an 80 column
// default width. Nil styles or keymap fall back to the defaults.
func NewBar(s *styles.Styles, km *keymap.KeyMap) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &Bar{
		styles: s,
		keymap: km,
		state:  StateReady,
		width:  80,
	}
}

// View renders the bar at its configured width, padding the gap
// between the two sides.
func (b *Bar) View() string {
	left := b.renderLeft()
	right := b.renderRight()

	gap := b.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}

	return b.styles.StatusBar.Width(b.width).Render(left + strings.Repeat(" ", gap) + right)
}

// renderLeft reports what the app is doing. Message-bearing states
// take their text from the last SetMessage call.
func (b *Bar) renderLeft() string {
	switch b.state {
	case StateSearching:
		return b.styles.Muted.Render("Searching...")
	case StateError:
		text := "Error"
		if b.message != "" {
			text = "Error: " + b.message
		}
		return b.styles.Error.Render(text)
	case StateDetails:
		if b.message != "" {
			return b.styles.Normal.Render(b.message)
		}
		return b.styles.Normal.Render("Details")
	}
	if b.resultCount > 0 {
		return b.styles.Normal.Render(fmt.Sprintf("%d results", b.resultCount))
	}
	return b.styles.Muted.Render("Ready")
}

// renderRight shows the keybindings that apply to the current state.
func (b *Bar) renderRight() string {
	var bindings []key.Binding
	switch {
	case b.state == StateDetails:
		bindings = b.keymap.DetailsHelp()
	case b.state == StateResults && b.resultCount > 0:
		bindings = b.keymap.ResultsHelp()
	default:
		bindings = b.keymap.InputHelp()
	}

	hints := make([]string, 0, len(bindings))
	for _, bind := range bindings {
		h := bind.Help()
		hints = append(hints, h.Key+": "+h.Desc)
	}
	return b.styles.Muted.Render(strings.Join(hints, " | "))
}

// SetState switches the bar to a new display state.
func (b *Bar) SetState(state State) {
	b.state = state
}

// SetMessage sets the text shown by message-bearing states.
func (b *Bar) SetMessage(message string) {
	b.message = message
}

// SetResultCount records how many results the last search returned.
func (b *Bar) SetResultCount(count int) {
	b.resultCount = count
}

// SetWidth resizes the bar to the terminal width.
func (b *Bar) SetWidth(width int) {
	b.width = width
}

// Clear returns the bar to its initial ready state.
func (b *Bar) Clear() {
	b.state = StateReady
	b.message = ""
	b.resultCount = 0
}
