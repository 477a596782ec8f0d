package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var statsJSON bool

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show statistics for the current index",
	Args:  cobra.NoArgs,
	RunE:  runStats,
}

// statsView is the JSON projection of build statistics.
type statsView struct {
	SnapshotID string    `json:"snapshot_id"`
	BuiltAt    time.Time `json:"built_at"`
	Duration   string    `json:"duration"`
	Documents  int       `json:"documents"`
	Terms      int       `json:"terms"`
	Categories int       `json:"categories"`
	Tags       int       `json:"tags"`
	Edges      int       `json:"edges"`
	Skipped    int       `json:"skipped"`
}

func init() {
	statsCmd.Flags().BoolVar(&statsJSON, "json", false, "output statistics as JSON")
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, _ []string) error {
	if libraryService == nil {
		return errors.New("library service not configured")
	}

	ctx := cmd.Context()
	if err := ensureIndex(ctx); err != nil {
		return err
	}

	stats, err := libraryService.Stats(ctx)
	if err != nil {
		return fmt.Errorf("failed to get index stats: %w", err)
	}

	if statsJSON {
		view := statsView{
			SnapshotID: stats.SnapshotID,
			BuiltAt:    stats.BuiltAt,
			Duration:   stats.Duration.String(),
			Documents:  stats.Documents,
			Terms:      stats.Terms,
			Categories: stats.Categories,
			Tags:       stats.Tags,
			Edges:      stats.Edges,
			Skipped:    stats.Skipped,
		}
		data, err := json.MarshalIndent(view, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal stats: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	cmd.Printf("Snapshot %s\n\n", stats.SnapshotID)
	cmd.Printf("  Built:      %s (%s)\n", stats.BuiltAt.Format("2006-01-02 15:04:05"), stats.Duration.Round(time.Millisecond))
	cmd.Printf("  Documents:  %d\n", stats.Documents)
	cmd.Printf("  Terms:      %d\n", stats.Terms)
	cmd.Printf("  Categories: %d\n", stats.Categories)
	cmd.Printf("  Tags:       %d\n", stats.Tags)
	cmd.Printf("  Edges:      %d\n", stats.Edges)
	if stats.Skipped > 0 {
		cmd.Printf("  Skipped:    %d\n", stats.Skipped)
	}

	return nil
}
