// Package styles centralises the colours and lipgloss styles used by
// the TUI views and components.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme is the colour palette the styles are built from.
type Theme struct {
	Primary    lipgloss.Color // header and selection highlight
	Secondary  lipgloss.Color // section headers and taxonomy values
	Foreground lipgloss.Color // regular text
	Muted      lipgloss.Color // paths, previews, hints
	Accent     lipgloss.Color // relevance scores
	Error      lipgloss.Color // failures
	Border     lipgloss.Color // input field and panel borders
}

// DefaultTheme is the built-in dark palette.
func DefaultTheme() *Theme {
	return &Theme{
		Primary:    lipgloss.Color("#2F9E8F"),
		Secondary:  lipgloss.Color("#5FA8D3"),
		Foreground: lipgloss.Color("#D8DEE9"),
		Muted:      lipgloss.Color("#716F87"),
		Accent:     lipgloss.Color("#E5C07B"),
		Error:      lipgloss.Color("#E06C75"),
		Border:     lipgloss.Color("#44475A"),
	}
}

// Styles carries one prepared lipgloss style per visual role. Views
// render through these so no colour literal appears outside this
// package.
type Styles struct {
	theme *Theme

	Title      lipgloss.Style // application header
	Subtitle   lipgloss.Style // section headers inside panels
	Normal     lipgloss.Style // regular text
	Muted      lipgloss.Style // paths, previews, secondary text
	Selected   lipgloss.Style // highlighted result row
	Score      lipgloss.Style // relevance scores
	Taxonomy   lipgloss.Style // category and tag values
	Error      lipgloss.Style // error messages
	InputField lipgloss.Style // bordered query input
	StatusBar  lipgloss.Style // footer bar
	Help       lipgloss.Style // keybinding hints
	Panel      lipgloss.Style // bordered details panel
}

// NewStyles derives the style set from a theme. A nil theme uses the
// default palette.
func NewStyles(theme *Theme) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}

	text := lipgloss.NewStyle().Foreground(theme.Foreground)
	muted := lipgloss.NewStyle().Foreground(theme.Muted)
	boxed := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1)

	return &Styles{
		theme: theme,

		Title:      lipgloss.NewStyle().Bold(true).Foreground(theme.Primary),
		Subtitle:   lipgloss.NewStyle().Bold(true).Foreground(theme.Secondary),
		Normal:     text,
		Muted:      muted,
		Selected:   text.Bold(true).Background(theme.Primary),
		Score:      lipgloss.NewStyle().Foreground(theme.Accent),
		Taxonomy:   lipgloss.NewStyle().Foreground(theme.Secondary),
		Error:      lipgloss.NewStyle().Foreground(theme.Error),
		InputField: boxed,
		StatusBar:  muted.Padding(0, 1),
		Help:       muted,
		Panel:      boxed,
	}
}

// DefaultStyles returns styles with the default theme.
func DefaultStyles() *Styles {
	return NewStyles(DefaultTheme())
}

// Theme returns the theme used by these styles.
func (s *Styles) Theme() *Theme {
	return s.theme
}
