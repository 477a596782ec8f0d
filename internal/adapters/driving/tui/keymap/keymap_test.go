package keymap

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultKeyMap_Bindings(t *testing.T) {
	km := DefaultKeyMap()
	require.NotNil(t, km)

	cases := []struct {
		name    string
		binding key.Binding
		keys    []string
	}{
		{"quit", km.Quit, []string{"ctrl+c"}},
		{"back", km.Back, []string{"esc"}},
		{"search", km.Search, []string{"enter"}},
		{"up", km.Up, []string{"up", "ctrl+k"}},
		{"down", km.Down, []string{"down", "ctrl+j"}},
		{"details", km.Details, []string{"enter"}},
		{"new search", km.NewSearch, []string{"n"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for _, want := range tc.keys {
				assert.Contains(t, tc.binding.Keys(), want)
			}
			assert.NotEmpty(t, tc.binding.Help().Desc, "every binding needs a help entry")
		})
	}
}

func TestHelpSetsFollowFocus(t *testing.T) {
	km := DefaultKeyMap()

	input := km.InputHelp()
	assert.Contains(t, input, km.Search)
	assert.Contains(t, input, km.Quit)
	assert.NotContains(t, input, km.Details, "details is not reachable from the input field")

	results := km.ResultsHelp()
	assert.Contains(t, results, km.Details)
	assert.Contains(t, results, km.NewSearch)
	assert.Contains(t, results, km.Back)

	details := km.DetailsHelp()
	assert.Contains(t, details, km.Back)
	assert.NotContains(t, details, km.Search)
}

func TestMatches(t *testing.T) {
	binding := key.NewBinding(key.WithKeys("enter", "ctrl+m"))

	assert.True(t, Matches("enter", binding))
	assert.True(t, Matches("ctrl+m", binding))
	assert.False(t, Matches("esc", binding))
	assert.False(t, Matches("", binding))
}

func TestMatches_DefaultKeyMap(t *testing.T) {
	km := DefaultKeyMap()

	assert.True(t, Matches("ctrl+c", km.Quit))
	assert.True(t, Matches("esc", km.Back))
	assert.True(t, Matches("ctrl+k", km.Up))
	assert.True(t, Matches("ctrl+j", km.Down))
	assert.False(t, Matches("x", km.Quit))
}
