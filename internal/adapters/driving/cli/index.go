package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Build the corpus index",
	Long: `Walks the corpus root, indexes every markdown document and prints
build statistics.

Unreadable or oversized files are skipped and counted; only an
inaccessible corpus root aborts the build.`,
	Args: cobra.NoArgs,
	RunE: runIndex,
}

func init() {
	rootCmd.AddCommand(indexCmd)
}

func runIndex(cmd *cobra.Command, _ []string) error {
	if indexOrchestrator == nil {
		return errors.New("index orchestrator not configured")
	}

	stats, err := indexOrchestrator.Rebuild(cmd.Context())
	if err != nil {
		return fmt.Errorf("index build failed: %w", err)
	}

	cmd.Printf("Indexed %d documents in %s\n\n", stats.Documents, stats.Duration.Round(time.Millisecond))
	cmd.Printf("  Terms:      %d\n", stats.Terms)
	cmd.Printf("  Categories: %d\n", stats.Categories)
	cmd.Printf("  Tags:       %d\n", stats.Tags)
	cmd.Printf("  Edges:      %d\n", stats.Edges)
	if stats.Skipped > 0 {
		cmd.Printf("  Skipped:    %d\n", stats.Skipped)
	}

	return nil
}
