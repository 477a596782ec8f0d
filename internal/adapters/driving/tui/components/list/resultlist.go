// Package list renders scored search results as a windowed, navigable
// list.
package list

import (
	"fmt"
	"strings"

	"github.com/custodia-labs/docdex/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/docdex/internal/core/domain"
)

// linesPerResult is the rendered height of one entry: title line, path
// line and summary preview.
const linesPerResult = 3

// minTitleWidth keeps titles legible on very narrow terminals.
const minTitleWidth = 10

// ResultList holds the results of the last search and the selection
// cursor. Key routing stays in the owning view; the list only moves
// the cursor and renders.
type ResultList struct {
	results  []domain.SearchResult
	selected int
	styles   *styles.Styles
	width    int
	height   int
}

// NewResultList builds an empty list. Nil styles fall back to the defaults.
func NewResultList(s *styles.Styles) *ResultList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &ResultList{
		styles: s,
		width:  80,
		height: 10,
	}
}

// View renders the window of results around the cursor, with a header
// count and an overflow marker when entries are cut off below.
func (r *ResultList) View() string {
	if len(r.results) == 0 {
		return r.styles.Muted.Render("No results")
	}

	lines := []string{
		r.styles.Subtitle.Render(fmt.Sprintf("Results (%d)", len(r.results))),
		"",
	}

	start, end := r.window()
	for i := start; i < end; i++ {
		lines = append(lines, r.renderResult(&r.results[i], i == r.selected))
	}

	if end < len(r.results) {
		lines = append(lines, r.styles.Muted.Render(
			fmt.Sprintf("    ... %d more", len(r.results)-end)))
	}

	return strings.Join(lines, "\n")
}

// window computes the visible result range so the cursor stays on
// screen as it moves.
func (r *ResultList) window() (start, end int) {
	visible := (r.height - 3) / linesPerResult
	if visible < 1 {
		visible = 1
	}

	if r.selected >= visible {
		start = r.selected - visible + 1
	}
	end = start + visible
	if end > len(r.results) {
		end = len(r.results)
	}
	return start, end
}

// renderResult formats one entry: title with score, path with
// taxonomy, and a summary preview.
func (r *ResultList) renderResult(result *domain.SearchResult, selected bool) string {
	doc := result.Document

	title := doc.Metadata.Title
	if title == "" {
		title = doc.Path
	}

	titleWidth := r.width - 14
	if titleWidth < minTitleWidth {
		titleWidth = minTitleWidth
	}
	title = truncate(title, titleWidth)

	var titleLine string
	if selected {
		titleLine = r.styles.Selected.Render(
			fmt.Sprintf("> %-*s  %.2f", titleWidth, title, result.Score))
	} else {
		titleLine = r.styles.Normal.Render(fmt.Sprintf("  %-*s  ", titleWidth, title)) +
			r.styles.Score.Render(fmt.Sprintf("%.2f", result.Score))
	}

	meta := doc.Path
	if doc.Metadata.Category != "" {
		meta += "  [" + doc.Metadata.Category + "]"
	}
	if len(doc.Metadata.Tags) > 0 {
		meta += "  " + strings.Join(doc.Metadata.Tags, ", ")
	}

	return strings.Join([]string{
		titleLine,
		r.styles.Taxonomy.Render("    " + truncate(meta, r.width-6)),
		r.styles.Muted.Render("    " + truncate(doc.Metadata.Summary, r.width-6)),
	}, "\n")
}

// truncate shortens s to max runes, marking the cut with an ellipsis.
func truncate(s string, max int) string {
	if max < 4 {
		max = 4
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}

// SetResults replaces the list contents and resets the cursor.
func (r *ResultList) SetResults(results []domain.SearchResult) {
	r.results = results
	r.selected = 0
}

// Results returns the full result slice, not just the visible window.
func (r *ResultList) Results() []domain.SearchResult {
	return r.results
}

// Selected returns the cursor position.
func (r *ResultList) Selected() int {
	return r.selected
}

// SetSelected moves the cursor, ignoring out-of-range positions.
func (r *ResultList) SetSelected(index int) {
	if index >= 0 && index < len(r.results) {
		r.selected = index
	}
}

// SelectedResult returns the result under the cursor, or nil when the
// list is empty.
func (r *ResultList) SelectedResult() *domain.SearchResult {
	if len(r.results) == 0 || r.selected < 0 || r.selected >= len(r.results) {
		return nil
	}
	return &r.results[r.selected]
}

// MoveUp moves the cursor one row up, stopping at the top.
func (r *ResultList) MoveUp() {
	if r.selected > 0 {
		r.selected--
	}
}

// MoveDown moves the cursor one row down, stopping at the bottom.
func (r *ResultList) MoveDown() {
	if r.selected < len(r.results)-1 {
		r.selected++
	}
}

// SetDimensions sets the render area used for windowing and truncation.
func (r *ResultList) SetDimensions(width, height int) {
	r.width = width
	r.height = height
}

// IsEmpty reports whether the list has no results.
func (r *ResultList) IsEmpty() bool {
	return len(r.results) == 0
}
