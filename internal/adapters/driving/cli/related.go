package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	relatedLimit int
	relatedJSON  bool
)

var relatedCmd = &cobra.Command{
	Use:   "related [path]",
	Short: "List documents related to one",
	Long: `Lists the documents most strongly connected to the given one, scored
on shared categories, shared tags, markdown links and explicit
relationship declarations.`,
	Args: cobra.ExactArgs(1),
	RunE: runRelated,
}

func init() {
	relatedCmd.Flags().IntVarP(&relatedLimit, "limit", "n", 0, "maximum number of related documents (default 5)")
	relatedCmd.Flags().BoolVar(&relatedJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(relatedCmd)
}

func runRelated(cmd *cobra.Command, args []string) error {
	if libraryService == nil {
		return errors.New("library service not configured")
	}

	ctx := cmd.Context()
	if err := ensureIndex(ctx); err != nil {
		return err
	}

	// A zero limit defers to the service default.
	results, err := libraryService.Related(ctx, args[0], relatedLimit)
	if err != nil {
		return fmt.Errorf("failed to get related documents: %w", err)
	}

	if relatedJSON {
		return outputResultsJSON(cmd, results)
	}

	if len(results) == 0 {
		cmd.Println("No related documents found.")
		return nil
	}

	cmd.Printf("Related to %s:\n\n", args[0])
	for i := range results {
		doc := results[i].Document

		title := doc.Metadata.Title
		if title == "" {
			title = doc.Path
		}

		cmd.Printf("  [%d] %s (%.2f)\n", i+1, title, results[i].Score)
		cmd.Printf("      %s\n", doc.Path)
	}
	cmd.Println()

	return nil
}
