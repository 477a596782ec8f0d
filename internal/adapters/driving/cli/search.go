package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/docdex/internal/core/domain"
)

var (
	searchCategory string
	searchTags     []string
	searchLimit    int
	searchJSON     bool
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search the documentation corpus",
	Long: `Searches indexed documents by keyword.

Results are scored on keyword hits, TF-IDF weight and title or tag
matches, best first. Category and tag filters narrow the corpus before
scoring, so filtered searches never surface documents outside the
filter.`,
	Example: `  docdex search "authentication"
  docdex search tokens --category api --tag security
  docdex search webhooks --limit 3 --json`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().StringVarP(&searchCategory, "category", "c", "", "only search documents in this category")
	searchCmd.Flags().StringSliceVarP(&searchTags, "tag", "t", nil, "only search documents carrying this tag (repeatable)")
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", 10, "maximum number of results")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	if searchService == nil {
		return errors.New("search service not configured")
	}

	ctx := cmd.Context()
	if err := ensureIndex(ctx); err != nil {
		return err
	}

	filter := domain.SearchFilter{
		Category: searchCategory,
		Tags:     searchTags,
	}

	results, err := searchService.Search(ctx, args[0], filter)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	limit := searchLimit
	if !cmd.Flags().Changed("limit") && configStore != nil {
		if v := configStore.GetInt("search.default_limit"); v > 0 {
			limit = v
		}
	}
	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}

	if searchJSON {
		return outputResultsJSON(cmd, results)
	}
	return outputResultsTable(cmd, results)
}

// resultView is the JSON projection of a scored hit.
type resultView struct {
	Path     string   `json:"path"`
	Title    string   `json:"title"`
	Category string   `json:"category,omitempty"`
	Tags     []string `json:"tags,omitempty"`
	Summary  string   `json:"summary,omitempty"`
	Score    float64  `json:"score"`
}

func toResultViews(results []domain.SearchResult) []resultView {
	views := make([]resultView, len(results))
	for i := range results {
		views[i] = resultView{
			Path:     results[i].Document.Path,
			Title:    results[i].Document.Metadata.Title,
			Category: results[i].Document.Metadata.Category,
			Tags:     results[i].Document.Metadata.Tags,
			Summary:  results[i].Document.Metadata.Summary,
			Score:    results[i].Score,
		}
	}
	return views
}

func outputResultsJSON(cmd *cobra.Command, results []domain.SearchResult) error {
	data, err := json.MarshalIndent(toResultViews(results), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputResultsTable(cmd *cobra.Command, results []domain.SearchResult) error {
	if len(results) == 0 {
		cmd.Println("No results found.")
		return nil
	}

	cmd.Println("Results:")
	cmd.Println()
	for i := range results {
		doc := results[i].Document

		title := doc.Metadata.Title
		if title == "" {
			title = doc.Path
		}

		cmd.Printf("  [%d] %s (%.2f)\n", i+1, title, results[i].Score)
		cmd.Printf("      %s", doc.Path)
		if doc.Metadata.Category != "" {
			cmd.Printf("  [%s]", doc.Metadata.Category)
		}
		if len(doc.Metadata.Tags) > 0 {
			cmd.Printf("  %s", strings.Join(doc.Metadata.Tags, ", "))
		}
		cmd.Println()
		if doc.Metadata.Summary != "" {
			cmd.Printf("      %s\n", doc.Metadata.Summary)
		}
		cmd.Println()
	}

	return nil
}
