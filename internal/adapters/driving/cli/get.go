package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var (
	getJSON bool
	getBody bool
)

var getCmd = &cobra.Command{
	Use:   "get [path]",
	Short: "Show a document from the corpus",
	Long: `Prints a document's metadata and body. The path is relative to the
corpus root, e.g. "guides/install.md".`,
	Args: cobra.ExactArgs(1),
	RunE: runGet,
}

// documentView is the JSON projection of a full document.
type documentView struct {
	Path     string   `json:"path"`
	Title    string   `json:"title"`
	Category string   `json:"category,omitempty"`
	Tags     []string `json:"tags,omitempty"`
	Summary  string   `json:"summary,omitempty"`
	Related  []string `json:"related,omitempty"`
	Body     string   `json:"body"`
}

func init() {
	getCmd.Flags().BoolVar(&getJSON, "json", false, "output the document as JSON")
	getCmd.Flags().BoolVar(&getBody, "body", false, "print only the raw markdown body")
	rootCmd.AddCommand(getCmd)
}

func runGet(cmd *cobra.Command, args []string) error {
	if libraryService == nil {
		return errors.New("library service not configured")
	}

	ctx := cmd.Context()
	if err := ensureIndex(ctx); err != nil {
		return err
	}

	doc, err := libraryService.Get(ctx, args[0])
	if err != nil {
		return fmt.Errorf("failed to get document: %w", err)
	}

	if getBody {
		cmd.Println(doc.Body)
		return nil
	}

	if getJSON {
		view := documentView{
			Path:     doc.Path,
			Title:    doc.Metadata.Title,
			Category: doc.Metadata.Category,
			Tags:     doc.Metadata.Tags,
			Summary:  doc.Metadata.Summary,
			Related:  doc.Metadata.Related,
			Body:     doc.Body,
		}
		data, err := json.MarshalIndent(view, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal document: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	cmd.Printf("Document: %s\n\n", doc.Path)
	cmd.Printf("  Title:    %s\n", doc.Metadata.Title)
	if doc.Metadata.Category != "" {
		cmd.Printf("  Category: %s\n", doc.Metadata.Category)
	}
	if len(doc.Metadata.Tags) > 0 {
		cmd.Printf("  Tags:     %s\n", strings.Join(doc.Metadata.Tags, ", "))
	}
	if doc.Metadata.Summary != "" {
		cmd.Printf("  Summary:  %s\n", doc.Metadata.Summary)
	}
	if len(doc.Metadata.Related) > 0 {
		cmd.Printf("  Related:  %s\n", strings.Join(doc.Metadata.Related, ", "))
	}
	if !doc.ModTime.IsZero() {
		cmd.Printf("  Modified: %s\n", doc.ModTime.Format("2006-01-02 15:04:05"))
	}
	cmd.Println()
	cmd.Println(doc.Body)

	return nil
}
