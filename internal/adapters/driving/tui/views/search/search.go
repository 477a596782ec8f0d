// Package search provides the single search view for the TUI: a query
// input, a scored result list, and an inline details panel that shows
// the selected document's metadata together with its related documents.
package search

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/docdex/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/docdex/internal/adapters/driving/tui/components/list"
	"github.com/custodia-labs/docdex/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/docdex/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/docdex/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/docdex/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/docdex/internal/core/domain"
	"github.com/custodia-labs/docdex/internal/core/ports/driving"
)

// relatedLimit is how many related documents the details panel shows.
const relatedLimit = 5

// detailsPanel holds the state of the inline details display for one
// selected result.
type detailsPanel struct {
	result  domain.SearchResult
	related []domain.SearchResult
	loading bool
	scroll  int
}

// View is the search view with input, result list, details panel and
// status bar.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	input     *input.QueryInput
	list      *list.ResultList
	statusbar *status.Bar

	search  driving.SearchService
	library driving.LibraryService
	ctx     context.Context

	width      int
	height     int
	ready      bool
	err        error
	focusInput bool // true = typing a query, false = navigating results
	details    *detailsPanel
}

// NewView creates a new search view.
func NewView(
	s *styles.Styles,
	km *keymap.KeyMap,
	search driving.SearchService,
	library driving.LibraryService,
) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &View{
		styles:     s,
		keymap:     km,
		input:      input.NewQueryInput(s),
		list:       list.NewResultList(s),
		statusbar:  status.NewBar(s, km),
		search:     search,
		library:    library,
		ctx:        context.Background(),
		width:      80,
		height:     24,
		focusInput: true,
	}
}

// WithContext sets the context used for service calls.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return v.input.Init()
}

// Update handles messages for the search view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.SearchCompleted:
		v.handleSearchCompleted(msg)
		return v, nil

	case messages.RelatedLoaded:
		v.handleRelatedLoaded(msg)
		return v, nil

	case messages.ErrorOccurred:
		v.err = msg.Err
		v.statusbar.SetState(status.StateError)
		v.statusbar.SetMessage(msg.Err.Error())
		return v, nil
	}

	// Everything else (cursor blinks and the like) belongs to the input.
	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

// handleKeyMsg processes keyboard input for the current mode.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	if v.details != nil {
		return v.handleDetailsKey(msg)
	}

	key := msg.String()

	// The ctrl navigation variants work in both modes, so a result can
	// be picked without leaving the input field.
	if keymap.Matches(key, v.keymap.Up) && !v.list.IsEmpty() {
		v.list.MoveUp()
		return v, nil
	}
	if keymap.Matches(key, v.keymap.Down) && !v.list.IsEmpty() {
		v.list.MoveDown()
		return v, nil
	}

	if v.focusInput {
		return v.handleInputKey(msg)
	}
	return v.handleResultsKey(msg)
}

// handleInputKey handles keys while the query input has focus.
func (v *View) handleInputKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch {
	case keymap.Matches(msg.String(), v.keymap.Search):
		query := strings.TrimSpace(v.input.Value())
		if query == "" {
			return v, nil
		}
		v.statusbar.SetState(status.StateSearching)
		v.focusInput = false
		v.input.Blur()
		return v, v.performSearch(query)

	case keymap.Matches(msg.String(), v.keymap.Back):
		// Backing out of an empty prompt leaves the application.
		return v, func() tea.Msg { return messages.Quit{} }
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

// handleResultsKey handles keys while navigating the result list.
// Plain j/k work here because no text field is focused.
func (v *View) handleResultsKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "k":
		v.list.MoveUp()
		return v, nil
	case "j":
		v.list.MoveDown()
		return v, nil
	}

	switch {
	case keymap.Matches(msg.String(), v.keymap.Details):
		result := v.list.SelectedResult()
		if result == nil {
			return v, nil
		}
		v.details = &detailsPanel{result: *result, loading: true}
		v.statusbar.SetState(status.StateDetails)
		v.statusbar.SetMessage(result.Document.Path)
		return v, v.loadRelated(result.Document.Path)

	case keymap.Matches(msg.String(), v.keymap.NewSearch):
		v.focusInput = true
		v.input.SetValue("")
		v.statusbar.SetState(status.StateReady)
		return v, v.input.Focus()

	case keymap.Matches(msg.String(), v.keymap.Back):
		v.focusInput = true
		return v, v.input.Focus()
	}

	return v, nil
}

// handleDetailsKey handles keys while the details panel is open.
func (v *View) handleDetailsKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	key := msg.String()
	switch {
	case keymap.Matches(key, v.keymap.Back):
		v.details = nil
		v.statusbar.SetState(status.StateResults)
		v.statusbar.SetMessage("")
		return v, nil
	case keymap.Matches(key, v.keymap.Up), key == "k":
		if v.details.scroll > 0 {
			v.details.scroll--
		}
	case keymap.Matches(key, v.keymap.Down), key == "j":
		if v.details.scroll < v.maxDetailsScroll() {
			v.details.scroll++
		}
	}
	return v, nil
}

// performSearch queries the search service off the update loop.
func (v *View) performSearch(query string) tea.Cmd {
	return func() tea.Msg {
		if v.search == nil {
			return messages.ErrorOccurred{Err: ErrNoSearchService}
		}

		results, err := v.search.Search(v.ctx, query, domain.SearchFilter{})
		return messages.SearchCompleted{Query: query, Results: results, Err: err}
	}
}

// loadRelated fetches the related documents for the details panel.
func (v *View) loadRelated(path string) tea.Cmd {
	return func() tea.Msg {
		if v.library == nil {
			return messages.ErrorOccurred{Err: ErrNoLibraryService}
		}

		results, err := v.library.Related(v.ctx, path, relatedLimit)
		return messages.RelatedLoaded{Path: path, Results: results, Err: err}
	}
}

// handleSearchCompleted installs search results into the list.
func (v *View) handleSearchCompleted(msg messages.SearchCompleted) {
	if msg.Err != nil {
		v.err = msg.Err
		v.statusbar.SetState(status.StateError)
		v.statusbar.SetMessage(msg.Err.Error())
		return
	}

	v.err = nil
	v.details = nil
	v.list.SetResults(msg.Results)
	v.statusbar.SetState(status.StateResults)
	v.statusbar.SetResultCount(len(msg.Results))
	v.focusInput = false
	v.input.Blur()
}

// handleRelatedLoaded attaches related documents to the open details
// panel. A result for a stale path (panel closed or reopened on a
// different document) is dropped.
func (v *View) handleRelatedLoaded(msg messages.RelatedLoaded) {
	if v.details == nil || v.details.result.Document.Path != msg.Path {
		return
	}

	v.details.loading = false
	if msg.Err != nil {
		v.statusbar.SetState(status.StateError)
		v.statusbar.SetMessage(msg.Err.Error())
		return
	}
	v.details.related = msg.Results
}

// View renders the search view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	sections := make([]string, 0, 8)

	sections = append(sections, v.styles.Title.Render("docdex"), "")
	sections = append(sections, v.input.View(), "")

	if v.err != nil {
		sections = append(sections, v.styles.Error.Render("Error: "+v.err.Error()), "")
	}

	if v.details != nil {
		sections = append(sections, v.renderDetails())
	} else {
		sections = append(sections, v.list.View())
	}

	sections = append(sections, "", v.statusbar.View())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// detailsContent builds the full line set of the details panel, before
// scrolling. The panel shows the document's metadata, its summary and
// the documents most strongly related to it.
func (v *View) detailsContent() []string {
	d := v.details
	doc := d.result.Document
	meta := doc.Metadata

	lines := []string{
		v.styles.Subtitle.Render(displayTitle(doc)),
		v.styles.Muted.Render(doc.Path),
		"",
	}

	if meta.Category != "" {
		lines = append(lines, formatField("Category", v.styles.Taxonomy.Render(meta.Category)))
	}
	if len(meta.Tags) > 0 {
		lines = append(lines, formatField("Tags", v.styles.Taxonomy.Render(strings.Join(meta.Tags, ", "))))
	}
	lines = append(lines, formatField("Score", v.styles.Score.Render(fmt.Sprintf("%.2f", d.result.Score))))
	if !doc.ModTime.IsZero() {
		lines = append(lines, formatField("Modified", doc.ModTime.Format("2006-01-02 15:04")))
	}

	if meta.Summary != "" {
		lines = append(lines, "", v.styles.Normal.Render(meta.Summary))
	}

	lines = append(lines, "", v.styles.Subtitle.Render("Related documents"))
	switch {
	case d.loading:
		lines = append(lines, v.styles.Muted.Render("  loading..."))
	case len(d.related) == 0:
		lines = append(lines, v.styles.Muted.Render("  none"))
	default:
		for _, rel := range d.related {
			lines = append(lines, fmt.Sprintf("  %s %s",
				v.styles.Normal.Render(displayTitle(rel.Document)),
				v.styles.Muted.Render("("+rel.Document.Path+")")))
		}
	}

	return lines
}

// renderDetails renders the visible window of the details panel.
func (v *View) renderDetails() string {
	lines := v.detailsContent()

	visible := v.detailsHeight()
	start := v.details.scroll
	if start > len(lines) {
		start = len(lines)
	}
	end := start + visible
	if end > len(lines) {
		end = len(lines)
	}

	body := strings.Join(lines[start:end], "\n")
	if len(lines) > visible {
		body += "\n" + v.styles.Muted.Render(
			fmt.Sprintf("[%d-%d of %d]", start+1, end, len(lines)))
	}

	return v.styles.Panel.Width(v.width - 4).Render(body)
}

// detailsHeight is the line budget for details content, leaving room
// for header, input and status bar.
func (v *View) detailsHeight() int {
	h := v.height - 10
	if h < 4 {
		h = 4
	}
	return h
}

func (v *View) maxDetailsScroll() int {
	limit := len(v.detailsContent()) - v.detailsHeight()
	if limit < 0 {
		return 0
	}
	return limit
}

// displayTitle names a document for rendering, falling back to the
// path for documents with an empty title.
func displayTitle(doc domain.Document) string {
	if doc.Metadata.Title != "" {
		return doc.Metadata.Title
	}
	return doc.Path
}

func formatField(label, value string) string {
	return fmt.Sprintf("%-10s %s", label+":", value)
}

// SetDimensions sets the view dimensions and sizes its components.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true

	v.input.SetWidth(width)
	v.list.SetDimensions(width, height-10) // header, input, status bar
	v.statusbar.SetWidth(width)
}

// Width returns the current width.
func (v *View) Width() int {
	return v.width
}

// Height returns the current height.
func (v *View) Height() int {
	return v.height
}

// Ready returns whether the view has received its dimensions.
func (v *View) Ready() bool {
	return v.ready
}

// Query returns the current search query.
func (v *View) Query() string {
	return v.input.Value()
}

// SetQuery sets the search query.
func (v *View) SetQuery(query string) {
	v.input.SetValue(query)
}

// Results returns the current search results.
func (v *View) Results() []domain.SearchResult {
	return v.list.Results()
}

// SelectedIndex returns the index of the selected result.
func (v *View) SelectedIndex() int {
	return v.list.Selected()
}

// SelectedResult returns the currently selected result.
func (v *View) SelectedResult() *domain.SearchResult {
	return v.list.SelectedResult()
}

// DetailsOpen reports whether the details panel is showing.
func (v *View) DetailsOpen() bool {
	return v.details != nil
}

// Err returns the current error, if any.
func (v *View) Err() error {
	return v.err
}

// ClearError clears the current error.
func (v *View) ClearError() {
	v.err = nil
}

// InputFocused returns whether the input has focus.
func (v *View) InputFocused() bool {
	return v.focusInput
}

// Reset returns the view to its initial input mode.
func (v *View) Reset() {
	v.focusInput = true
	v.input.Focus()
	v.input.SetValue("")
	v.list.SetResults(nil)
	v.details = nil
	v.err = nil
	v.statusbar.Clear()
}
