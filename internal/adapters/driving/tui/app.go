// Package tui provides the interactive terminal UI for docdex. It is a
// single-view Bubbletea application: a search prompt over the current
// snapshot whose results open an inline details panel with the
// document's metadata and related documents.
package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/docdex/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/docdex/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/docdex/internal/adapters/driving/tui/views/search"
	"github.com/custodia-labs/docdex/internal/core/domain"
)

var _ tea.Model = (*App)(nil)

// App is the Bubbletea model at the top of the TUI. It owns the search
// view and handles the concerns that outlive it: terminal size, global
// quit and the service context.
type App struct {
	ctx  context.Context
	view *search.View

	// ready flips on the first WindowSizeMsg; rendering before the
	// terminal size is known would produce a broken first frame.
	ready bool
}

// NewApp validates the ports and assembles the app around its search view.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("building tui app: %w", err)
	}

	return &App{
		ctx:  context.Background(),
		view: search.NewView(styles.DefaultStyles(), nil, ports.Search, ports.Library),
	}, nil
}

// WithContext replaces the context used for service calls and returns
// the app for chaining.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.view.WithContext(ctx)
	return a
}

// Init enters the alternate screen and starts the search view.
func (a *App) Init() tea.Cmd {
	return tea.Batch(tea.EnterAltScreen, tea.SetWindowTitle("docdex"), a.view.Init())
}

// Update handles global messages and forwards everything else to the
// search view.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		// ctrl+c quits from any state.
		if msg.Type == tea.KeyCtrlC {
			return a, tea.Quit
		}

	case messages.Quit:
		return a, tea.Quit
	}

	var cmd tea.Cmd
	a.view, cmd = a.view.Update(msg)
	return a, cmd
}

// View renders the search view once the terminal size is known.
func (a *App) View() string {
	if !a.ready {
		return "Initialising docdex..."
	}
	return a.view.View()
}

// Run executes the app in its own Bubbletea program until the user quits.
func (a *App) Run() error {
	program := tea.NewProgram(a, tea.WithAltScreen())
	_, err := program.Run()
	return err
}

// Query returns the text currently in the search input.
func (a *App) Query() string {
	return a.view.Query()
}

// Results returns the results of the last completed search.
func (a *App) Results() []domain.SearchResult {
	return a.view.Results()
}

// SelectedIndex returns the position of the highlighted result.
func (a *App) SelectedIndex() int {
	return a.view.SelectedIndex()
}

// Err returns the most recent search or lookup failure, if any.
func (a *App) Err() error {
	return a.view.Err()
}

// Ready reports whether the first window size message has arrived.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sizes the app without a WindowSizeMsg, for tests.
func (a *App) SetDimensions(width, height int) {
	a.ready = true
	a.view.SetDimensions(width, height)
}
