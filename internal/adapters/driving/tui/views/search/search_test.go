package search

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/docdex/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/docdex/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/docdex/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/docdex/internal/core/domain"
	"github.com/custodia-labs/docdex/internal/core/ports/driving"
)

// stubSearch implements driving.SearchService with one pluggable call.
type stubSearch struct {
	search func(ctx context.Context, query string, filter domain.SearchFilter) ([]domain.SearchResult, error)
}

func (s *stubSearch) Search(
	ctx context.Context, query string, filter domain.SearchFilter,
) ([]domain.SearchResult, error) {
	if s.search != nil {
		return s.search(ctx, query, filter)
	}
	return nil, nil
}

// stubLibrary implements driving.LibraryService. Only Related is
// pluggable; the search view never calls the rest.
type stubLibrary struct {
	related func(ctx context.Context, path string, limit int) ([]domain.SearchResult, error)
}

func (s *stubLibrary) Related(
	ctx context.Context, path string, limit int,
) ([]domain.SearchResult, error) {
	if s.related != nil {
		return s.related(ctx, path, limit)
	}
	return nil, nil
}

func (s *stubLibrary) Get(context.Context, string) (domain.Document, error) {
	return domain.Document{}, nil
}

func (s *stubLibrary) List(context.Context) ([]domain.DocumentSummary, error) { return nil, nil }

func (s *stubLibrary) Categories(context.Context) ([]domain.TaxonomyEntry, error) {
	return nil, nil
}

func (s *stubLibrary) Tags(context.Context) ([]domain.TaxonomyEntry, error) { return nil, nil }

func (s *stubLibrary) Stats(context.Context) (domain.BuildStats, error) {
	return domain.BuildStats{}, nil
}

// fixtureResults returns two scored guides, highest first.
func fixtureResults() []domain.SearchResult {
	return []domain.SearchResult{
		{
			Document: domain.Document{
				Path: "guides/setup.md",
				Metadata: domain.Metadata{
					Title:    "Setup Guide",
					Category: "guides",
					Tags:     []string{"install", "config"},
					Summary:  "How to install and configure the tool.",
				},
			},
			Score: 9.5,
		},
		{
			Document: domain.Document{
				Path:     "guides/usage.md",
				Metadata: domain.Metadata{Title: "Usage Guide", Category: "guides"},
			},
			Score: 8.5,
		},
	}
}

// bareView builds a view with no services wired.
func bareView() *View {
	return NewView(nil, nil, nil, nil)
}

// resultsView builds a ready view already showing the fixture results,
// with focus on the list.
func resultsView(lib driving.LibraryService) *View {
	v := NewView(nil, nil, nil, lib)
	v.SetDimensions(80, 24)
	v.Update(messages.SearchCompleted{Results: fixtureResults()})
	return v
}

func TestNewView_Defaults(t *testing.T) {
	v := NewView(styles.DefaultStyles(), keymap.DefaultKeyMap(), &stubSearch{}, &stubLibrary{})

	require.NotNil(t, v)
	assert.False(t, v.Ready())
	assert.True(t, v.InputFocused())
	assert.Empty(t, v.Query())
	assert.Equal(t, 80, v.Width())
	assert.Equal(t, 24, v.Height())
	assert.Nil(t, v.Results())
	assert.Nil(t, v.SelectedResult())
	assert.Equal(t, 0, v.SelectedIndex())
	assert.Nil(t, v.Err())
}

func TestNewView_NilDependenciesGetDefaults(t *testing.T) {
	v := bareView()

	require.NotNil(t, v)
	assert.NotNil(t, v.styles)
	assert.NotNil(t, v.keymap)
}

func TestView_WithContext_IsChainable(t *testing.T) {
	v := bareView()

	type ctxKey string
	ctx := context.WithValue(context.Background(), ctxKey("request"), "id-7")
	got := v.WithContext(ctx)

	assert.Equal(t, v, got)
	assert.Equal(t, ctx, v.ctx)
}

func TestView_Init_SchedulesBlink(t *testing.T) {
	assert.NotNil(t, bareView().Init())
}

func TestView_WindowSizeMakesReady(t *testing.T) {
	v := bareView()

	got, cmd := v.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

	assert.Equal(t, v, got)
	assert.Nil(t, cmd)
	assert.True(t, v.Ready())
	assert.Equal(t, 120, v.Width())
	assert.Equal(t, 40, v.Height())
}

func TestView_SearchCompleted_ShowsResultsAndBlursInput(t *testing.T) {
	v := bareView()
	v.SetDimensions(80, 24)

	got, cmd := v.Update(messages.SearchCompleted{Query: "guide", Results: fixtureResults()})

	assert.Equal(t, v, got)
	assert.Nil(t, cmd)
	assert.Len(t, v.Results(), 2)
	assert.False(t, v.InputFocused())
}

func TestView_SearchCompleted_Error(t *testing.T) {
	v := bareView()
	v.SetDimensions(80, 24)

	v.Update(messages.SearchCompleted{Err: errors.New("index not built")})

	require.Error(t, v.Err())

	out := v.View()
	assert.Contains(t, out, "Error")
	assert.Contains(t, out, "index not built")

	v.ClearError()
	assert.Nil(t, v.Err())
}

func TestView_ErrorOccurredMessage(t *testing.T) {
	v := bareView()

	got, cmd := v.Update(messages.ErrorOccurred{Err: errors.New("watch failed")})

	assert.Equal(t, v, got)
	assert.Nil(t, cmd)
	assert.Error(t, v.Err())
}

func TestView_EnterSubmitsTrimmedQuery(t *testing.T) {
	var got string
	v := NewView(nil, nil, &stubSearch{
		search: func(_ context.Context, query string, _ domain.SearchFilter) ([]domain.SearchResult, error) {
			got = query
			return fixtureResults(), nil
		},
	}, nil)
	v.SetQuery("  setup  ")

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, cmd)
	assert.False(t, v.InputFocused(), "submitting hands focus to the result list")

	assert.IsType(t, messages.SearchCompleted{}, cmd())
	assert.Equal(t, "setup", got)
}

func TestView_EnterWithEmptyQueryDoesNothing(t *testing.T) {
	v := bareView()

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
	assert.True(t, v.InputFocused())
}

func TestView_EscAtEmptyPromptQuits(t *testing.T) {
	v := bareView()

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEsc})

	require.NotNil(t, cmd)
	assert.IsType(t, messages.Quit{}, cmd())
}

func TestView_EscInResultsModeRefocusesInput(t *testing.T) {
	v := resultsView(nil)
	require.False(t, v.InputFocused())

	v.Update(tea.KeyMsg{Type: tea.KeyEsc})

	assert.True(t, v.InputFocused())
}

func TestView_NewSearchClearsQuery(t *testing.T) {
	v := resultsView(nil)
	v.SetQuery("old query")

	v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'n'}})

	assert.True(t, v.InputFocused())
	assert.Empty(t, v.Query())
}

func TestView_EnterOpensDetailsAndLoadsRelated(t *testing.T) {
	lib := &stubLibrary{
		related: func(_ context.Context, path string, _ int) ([]domain.SearchResult, error) {
			assert.Equal(t, "guides/setup.md", path)
			return fixtureResults()[1:], nil
		},
	}
	v := resultsView(lib)

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.True(t, v.DetailsOpen())
	require.NotNil(t, cmd)

	loaded, ok := cmd().(messages.RelatedLoaded)
	require.True(t, ok)
	assert.Equal(t, "guides/setup.md", loaded.Path)
	assert.Len(t, loaded.Results, 1)
}

func TestView_EnterWithoutResultsKeepsDetailsClosed(t *testing.T) {
	v := bareView()
	v.focusInput = false

	v.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.False(t, v.DetailsOpen())
}

func TestView_EscClosesDetailsOnly(t *testing.T) {
	v := resultsView(&stubLibrary{})
	v.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, v.DetailsOpen())

	v.Update(tea.KeyMsg{Type: tea.KeyEsc})

	assert.False(t, v.DetailsOpen())
	assert.False(t, v.InputFocused(), "esc from details lands on the result list")
}

func TestView_RelatedLoaded_FillsPanel(t *testing.T) {
	v := resultsView(&stubLibrary{})
	v.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, v.DetailsOpen())

	v.Update(messages.RelatedLoaded{Path: "guides/setup.md", Results: fixtureResults()[1:]})

	require.NotNil(t, v.details)
	assert.False(t, v.details.loading)
	assert.Len(t, v.details.related, 1)
}

func TestView_RelatedLoaded_IgnoresStalePath(t *testing.T) {
	v := resultsView(&stubLibrary{})
	v.Update(tea.KeyMsg{Type: tea.KeyEnter})

	v.Update(messages.RelatedLoaded{Path: "other/doc.md", Results: fixtureResults()})

	assert.True(t, v.details.loading)
	assert.Empty(t, v.details.related)
}

func TestView_RelatedLoaded_AfterPanelClosed(t *testing.T) {
	v := bareView()
	v.SetDimensions(80, 24)

	v.Update(messages.RelatedLoaded{Path: "guides/setup.md", Results: fixtureResults()})

	assert.False(t, v.DetailsOpen())
}

func TestView_Navigation(t *testing.T) {
	cases := []struct {
		name       string
		focusInput bool
		keys       []tea.Msg
		want       int
	}{
		{"down arrow", false, []tea.Msg{tea.KeyMsg{Type: tea.KeyDown}}, 1},
		{"up arrow", false, []tea.Msg{
			tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyUp},
		}, 0},
		{"j moves down", false, []tea.Msg{
			tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}},
		}, 1},
		{"k moves up", false, []tea.Msg{
			tea.KeyMsg{Type: tea.KeyDown},
			tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}},
		}, 0},
		{"ctrl+j while typing", true, []tea.Msg{tea.KeyMsg{Type: tea.KeyCtrlJ}}, 1},
		{"ctrl+k while typing", true, []tea.Msg{
			tea.KeyMsg{Type: tea.KeyCtrlJ}, tea.KeyMsg{Type: tea.KeyCtrlK},
		}, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v := resultsView(nil)
			v.focusInput = tc.focusInput

			for _, k := range tc.keys {
				v.Update(k)
			}

			assert.Equal(t, tc.want, v.SelectedIndex())
		})
	}
}

func TestView_TypingEditsQuery(t *testing.T) {
	v := bareView()

	for _, r := range "api" {
		v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	v.Update(tea.KeyMsg{Type: tea.KeyBackspace})

	assert.Equal(t, "ap", v.Query())
}

func TestView_SetQuery(t *testing.T) {
	v := bareView()

	v.SetQuery("relationship graph")

	assert.Equal(t, "relationship graph", v.Query())
}

func TestView_View_BeforeReady(t *testing.T) {
	assert.Contains(t, bareView().View(), "Initialising")
}

func TestView_View_PromptMode(t *testing.T) {
	v := bareView()
	v.SetDimensions(80, 24)

	out := v.View()

	assert.Contains(t, out, "docdex")
	assert.Contains(t, out, "Query")
}

func TestView_View_ResultsMode(t *testing.T) {
	out := resultsView(nil).View()

	assert.Contains(t, out, "Setup Guide")
	assert.Contains(t, out, "Usage Guide")
}

func TestView_View_DetailsMode(t *testing.T) {
	lib := &stubLibrary{
		related: func(_ context.Context, _ string, _ int) ([]domain.SearchResult, error) {
			return fixtureResults()[1:], nil
		},
	}
	v := resultsView(lib)
	v.SetDimensions(100, 40)

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	v.Update(cmd())

	out := v.View()

	assert.Contains(t, out, "Setup Guide")
	assert.Contains(t, out, "guides/setup.md")
	assert.Contains(t, out, "Related documents")
	assert.Contains(t, out, "Usage Guide")
}

func TestView_View_DetailsWithoutRelated(t *testing.T) {
	v := resultsView(&stubLibrary{})
	v.SetDimensions(100, 40)

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	v.Update(cmd())

	assert.Contains(t, v.View(), "none")
}

func TestView_SelectedResult(t *testing.T) {
	v := resultsView(nil)

	got := v.SelectedResult()

	require.NotNil(t, got)
	assert.Equal(t, "Setup Guide", got.Document.Metadata.Title)
}

func TestView_Reset_ReturnsToEmptyPrompt(t *testing.T) {
	v := resultsView(nil)
	v.SetQuery("stale")
	v.err = errors.New("stale error")

	v.Reset()

	assert.True(t, v.InputFocused())
	assert.Empty(t, v.Query())
	assert.Nil(t, v.Results())
	assert.Nil(t, v.Err())
	assert.False(t, v.DetailsOpen())
}

func TestView_SearchWithoutServiceReportsError(t *testing.T) {
	v := bareView()
	v.SetQuery("setup")

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, cmd)
	occurred, ok := cmd().(messages.ErrorOccurred)
	require.True(t, ok)
	assert.ErrorIs(t, occurred.Err, ErrNoSearchService)
}

func TestView_RelatedWithoutServiceReportsError(t *testing.T) {
	v := resultsView(nil)

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, cmd)
	occurred, ok := cmd().(messages.ErrorOccurred)
	require.True(t, ok)
	assert.ErrorIs(t, occurred.Err, ErrNoLibraryService)
}

func TestView_SearchServiceErrorLandsInCompleted(t *testing.T) {
	v := NewView(nil, nil, &stubSearch{
		search: func(context.Context, string, domain.SearchFilter) ([]domain.SearchResult, error) {
			return nil, errors.New("no snapshot available")
		},
	}, nil)
	v.SetQuery("setup")

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, cmd)
	completed, ok := cmd().(messages.SearchCompleted)
	require.True(t, ok)
	assert.Error(t, completed.Err)
}
