package markdown

import (
	"context"
	"fmt"
	"path"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/custodia-labs/docdex/internal/core/domain"
	"github.com/custodia-labs/docdex/internal/core/ports/driven"
	"github.com/custodia-labs/docdex/internal/logger"
)

// Ensure Normaliser implements the interface.
var _ driven.Normaliser = (*Normaliser)(nil)

// Recognised frontmatter keys. Anything else passes through opaquely.
const (
	keyTitle    = "title"
	keyTags     = "tags"
	keyCategory = "category"
	keyRelated  = "related"
	keySummary  = "summary"
)

const (
	// summaryMinLength is the trimmed length a paragraph must exceed
	// to qualify as the default summary.
	summaryMinLength = 20

	// summaryMaxLength caps the default summary, in runes.
	summaryMaxLength = 200
)

// defaultCategory is assigned to files sitting directly in the corpus
// root, which have no parent directory to take a category from.
const defaultCategory = "general"

var titleCaser = cases.Title(language.English)

// Normaliser handles markdown corpus files: it splits YAML
// frontmatter, applies metadata defaults, and extracts embedded link
// targets for the relationship graph.
type Normaliser struct{}

// New creates a new markdown normaliser.
func New() *Normaliser {
	return &Normaliser{}
}

// Extensions returns the file extensions this normaliser handles,
// lowercase with leading dot.
func (n *Normaliser) Extensions() []string {
	return []string{".md", ".markdown"}
}

// Normalise converts one raw file into a Document. A malformed
// frontmatter block falls back to empty metadata with the whole file
// as body; defaults then fill the gaps, so a broken header never
// aborts the file.
func (n *Normaliser) Normalise(_ context.Context, raw *domain.RawDocument) (domain.Document, error) {
	if raw == nil {
		return domain.Document{}, domain.ErrInvalidInput
	}

	fields, body, err := splitFrontmatter(string(raw.Content))
	if err != nil {
		logger.Warn("markdown: malformed frontmatter in %s: %v", raw.Path, err)
		fields, body = nil, string(raw.Content)
	}

	meta := buildMetadata(fields)
	applyDefaults(&meta, fields, raw.Path, body)

	return domain.Document{
		Path:     raw.Path,
		Body:     body,
		Metadata: meta,
		Links:    extractLinks(body),
		ModTime:  raw.ModTime,
	}, nil
}

// splitFrontmatter separates a leading YAML block fenced by "---"
// lines from the body. Content without an opening fence is all body.
// A fenced block that fails to parse returns an error; the caller
// decides the fallback.
func splitFrontmatter(content string) (map[string]any, string, error) {
	trimmed := strings.TrimPrefix(content, "\uFEFF")
	if !strings.HasPrefix(trimmed, "---") {
		return nil, content, nil
	}

	parts := strings.SplitN(trimmed, "---", 3)
	if len(parts) < 3 {
		return nil, content, nil
	}

	var fields map[string]any
	if err := yaml.Unmarshal([]byte(parts[1]), &fields); err != nil {
		return nil, "", fmt.Errorf("parsing frontmatter: %w", err)
	}

	body := strings.TrimPrefix(parts[2], "\n")
	return fields, body, nil
}

// buildMetadata maps the parsed frontmatter fields onto Metadata.
// Recognised keys are matched case-insensitively; unrecognised keys
// are preserved in Extra untouched. Fields stay zero-valued when
// their key is absent so applyDefaults can tell absent from
// explicitly empty.
func buildMetadata(fields map[string]any) domain.Metadata {
	var meta domain.Metadata

	for key, value := range fields {
		switch strings.ToLower(key) {
		case keyTitle:
			meta.Title = stringValue(value)
		case keyTags:
			meta.Tags = stringList(value)
		case keyCategory:
			meta.Category = stringValue(value)
		case keyRelated:
			meta.Related = stringList(value)
		case keySummary:
			meta.Summary = stringValue(value)
		default:
			if meta.Extra == nil {
				meta.Extra = make(map[string]any)
			}
			meta.Extra[key] = value
		}
	}

	return meta
}

// applyDefaults fills metadata fields whose frontmatter keys were
// absent. Explicitly empty values are left alone: an author writing
// `category: ""` keeps the empty category.
func applyDefaults(meta *domain.Metadata, fields map[string]any, docPath, body string) {
	if meta.Title == "" && !hasKey(fields, keyTitle) {
		meta.Title = titleFromPath(docPath)
	}
	if meta.Category == "" && !hasKey(fields, keyCategory) {
		meta.Category = categoryFromPath(docPath)
	}
	if meta.Summary == "" && !hasKey(fields, keySummary) {
		meta.Summary = summaryFromBody(body)
	}
}

// hasKey reports whether the frontmatter declared the key, matched
// case-insensitively like buildMetadata does.
func hasKey(fields map[string]any, key string) bool {
	for k := range fields {
		if strings.EqualFold(k, key) {
			return true
		}
	}
	return false
}

// titleFromPath derives a display title from the filename: extension
// stripped, separators replaced with spaces, each word capitalised.
func titleFromPath(docPath string) string {
	name := path.Base(docPath)
	if ext := path.Ext(name); ext != "" {
		name = strings.TrimSuffix(name, ext)
	}
	name = strings.ReplaceAll(name, "_", " ")
	name = strings.ReplaceAll(name, "-", " ")
	return titleCaser.String(name)
}

// categoryFromPath derives a category from the immediate parent
// directory, falling back to defaultCategory at the corpus root.
func categoryFromPath(docPath string) string {
	dir := path.Dir(docPath)
	if dir == "." || dir == "/" || dir == "" {
		return defaultCategory
	}
	return path.Base(dir)
}

// summaryFromBody picks the first paragraph whose trimmed text, after
// stripping leading heading markers, exceeds summaryMinLength. The
// result collapses internal whitespace and truncates to
// summaryMaxLength runes. No qualifying paragraph yields the empty
// string.
func summaryFromBody(body string) string {
	for _, paragraph := range strings.Split(body, "\n\n") {
		text := strings.TrimSpace(paragraph)
		text = strings.TrimLeft(text, "#")
		text = strings.Join(strings.Fields(text), " ")

		if len([]rune(text)) <= summaryMinLength {
			continue
		}

		if runes := []rune(text); len(runes) > summaryMaxLength {
			return string(runes[:summaryMaxLength])
		}
		return text
	}
	return ""
}

// stringValue coerces a frontmatter scalar to a string; non-strings
// are rendered with their default format.
func stringValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	default:
		return fmt.Sprint(val)
	}
}

// stringList coerces a frontmatter value to a string slice. A scalar
// becomes a single-element list; nil items are dropped.
func stringList(v any) []string {
	switch val := v.(type) {
	case nil:
		return nil
	case []any:
		list := make([]string, 0, len(val))
		for _, item := range val {
			if item == nil {
				continue
			}
			list = append(list, stringValue(item))
		}
		return list
	case []string:
		return val
	default:
		return []string{stringValue(val)}
	}
}
