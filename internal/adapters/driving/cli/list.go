package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var listJSON bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List every indexed document",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List the corpus categories",
	Args:  cobra.NoArgs,
	RunE:  runCategories,
}

var tagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "List the corpus tags",
	Args:  cobra.NoArgs,
	RunE:  runTags,
}

// summaryView is the JSON projection of a document summary.
type summaryView struct {
	Path     string   `json:"path"`
	Title    string   `json:"title"`
	Category string   `json:"category,omitempty"`
	Tags     []string `json:"tags,omitempty"`
	Summary  string   `json:"summary,omitempty"`
}

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "output the listing as JSON")
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(categoriesCmd)
	rootCmd.AddCommand(tagsCmd)
}

func runList(cmd *cobra.Command, _ []string) error {
	if libraryService == nil {
		return errors.New("library service not configured")
	}

	ctx := cmd.Context()
	if err := ensureIndex(ctx); err != nil {
		return err
	}

	summaries, err := libraryService.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list documents: %w", err)
	}

	if listJSON {
		views := make([]summaryView, len(summaries))
		for i, s := range summaries {
			views[i] = summaryView{
				Path:     s.Path,
				Title:    s.Title,
				Category: s.Category,
				Tags:     s.Tags,
				Summary:  s.Summary,
			}
		}
		data, err := json.MarshalIndent(views, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal listing: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	if len(summaries) == 0 {
		cmd.Println("No documents indexed.")
		return nil
	}

	cmd.Printf("Documents (%d):\n\n", len(summaries))
	for _, s := range summaries {
		title := s.Title
		if title == "" {
			title = "(untitled)"
		}
		cmd.Printf("  %-40s  %s\n", s.Path, title)
	}

	return nil
}

func runCategories(cmd *cobra.Command, _ []string) error {
	if libraryService == nil {
		return errors.New("library service not configured")
	}

	ctx := cmd.Context()
	if err := ensureIndex(ctx); err != nil {
		return err
	}

	categories, err := libraryService.Categories(ctx)
	if err != nil {
		return fmt.Errorf("failed to list categories: %w", err)
	}

	if len(categories) == 0 {
		cmd.Println("No categories found.")
		return nil
	}

	cmd.Printf("Categories (%d):\n\n", len(categories))
	for _, c := range categories {
		cmd.Printf("  %-20s %d\n", c.Name, c.Documents)
	}

	return nil
}

func runTags(cmd *cobra.Command, _ []string) error {
	if libraryService == nil {
		return errors.New("library service not configured")
	}

	ctx := cmd.Context()
	if err := ensureIndex(ctx); err != nil {
		return err
	}

	tags, err := libraryService.Tags(ctx)
	if err != nil {
		return fmt.Errorf("failed to list tags: %w", err)
	}

	if len(tags) == 0 {
		cmd.Println("No tags found.")
		return nil
	}

	cmd.Printf("Tags (%d):\n\n", len(tags))
	for _, t := range tags {
		cmd.Printf("  %-20s %d\n", t.Name, t.Documents)
	}

	return nil
}
