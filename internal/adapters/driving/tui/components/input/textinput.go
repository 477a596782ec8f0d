// Package input provides the query input component for the TUI.
package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/docdex/internal/adapters/driving/tui/styles"
)

// queryCharLimit caps the query length; longer input stops being a
// keyword search long before this.
const queryCharLimit = 256

// labelOverhead is the horizontal space the "Query: " label and the
// field border consume, subtracted from the terminal width when the
// text area is resized.
const labelOverhead = 12

// QueryInput is a thin wrapper around a bubbles textinput that renders
// it as a labelled, bordered field. It starts focused so the user can
// type immediately.
type QueryInput struct {
	textinput textinput.Model
	styles    *styles.Styles
}

// NewQueryInput builds a focused input ready for typing. Nil styles
// fall back to the defaults.
func NewQueryInput(s *styles.Styles) *QueryInput {
	if s == nil {
		s = styles.DefaultStyles()
	}

	ti := textinput.New()
	ti.Placeholder = "Search the corpus..."
	ti.Focus()
	ti.CharLimit = queryCharLimit
	ti.Width = 50

	return &QueryInput{
		textinput: ti,
		styles:    s,
	}
}

// Init starts the cursor blink.
func (q *QueryInput) Init() tea.Cmd {
	return textinput.Blink
}

// Update forwards messages to the wrapped textinput.
func (q *QueryInput) Update(msg tea.Msg) (*QueryInput, tea.Cmd) {
	var cmd tea.Cmd
	q.textinput, cmd = q.textinput.Update(msg)
	return q, cmd
}

// View renders the label and bordered field side by side.
func (q *QueryInput) View() string {
	label := q.styles.Title.Render("Query: ")
	field := q.styles.InputField.Render(q.textinput.View())
	return lipgloss.JoinHorizontal(lipgloss.Center, label, field)
}

// Value returns the typed query.
func (q *QueryInput) Value() string {
	return q.textinput.Value()
}

// SetValue replaces the typed query.
func (q *QueryInput) SetValue(value string) {
	q.textinput.SetValue(value)
}

// Focus gives the input the keyboard and restarts the cursor blink.
func (q *QueryInput) Focus() tea.Cmd {
	return q.textinput.Focus()
}

// Blur releases the keyboard; a blurred input ignores keystrokes.
func (q *QueryInput) Blur() {
	q.textinput.Blur()
}

// SetWidth fits the text area to the terminal width, never shrinking
// it below a usable minimum.
func (q *QueryInput) SetWidth(width int) {
	inner := width - labelOverhead
	if inner < 20 {
		inner = 20
	}
	q.textinput.Width = inner
}
