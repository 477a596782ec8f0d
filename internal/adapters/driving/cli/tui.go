package cli

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/docdex/internal/adapters/driving/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Open the interactive search UI",
	Long: `Open a full-screen terminal UI over the documentation index.

Type a query and press enter to search. The details panel shows a
document's metadata, taxonomy and the documents related to it.

Controls:
  ↑/ctrl+k, ↓/ctrl+j - Navigate results
  Enter              - Search / Open details
  n                  - New search
  Esc                - Back / Cancel
  ctrl+c             - Quit`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	// Panic recovery so a rendering bug leaves a stack trace instead
	// of a corrupted terminal.
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "docdex tui panicked: %v\n\n%s\n", r, debug.Stack())
		}
	}()

	ctx := cmd.Context()
	if err := ensureIndex(ctx); err != nil {
		return err
	}

	app, err := tui.NewApp(&tui.Ports{
		Search:  searchService,
		Library: libraryService,
	})
	if err != nil {
		return fmt.Errorf("creating TUI: %w", err)
	}

	if err := app.WithContext(ctx).Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}

	return nil
}
