package markdown

import (
	"net/url"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

var md = goldmark.New()

// extractLinks walks the markdown AST and collects link destinations
// that can refer to other corpus documents. External URLs (anything
// with a scheme), pure fragment links, and image embeds are ignored;
// fragment suffixes are stripped so "guide.md#setup" points at
// "guide.md". Destinations are deduplicated in first-seen order.
func extractLinks(body string) []string {
	if !strings.Contains(body, "[") {
		return nil
	}

	root := md.Parser().Parse(text.NewReader([]byte(body)))

	var links []string
	seen := make(map[string]struct{})

	_ = ast.Walk(root, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		link, ok := node.(*ast.Link)
		if !ok {
			return ast.WalkContinue, nil
		}

		dest := localTarget(string(link.Destination))
		if dest == "" {
			return ast.WalkContinue, nil
		}
		if _, dup := seen[dest]; dup {
			return ast.WalkContinue, nil
		}
		seen[dest] = struct{}{}
		links = append(links, dest)

		return ast.WalkContinue, nil
	})

	return links
}

// localTarget reduces a link destination to a corpus-relative path
// candidate, or returns empty when the destination cannot point at a
// local document.
func localTarget(dest string) string {
	dest = strings.TrimSpace(dest)
	if dest == "" || strings.HasPrefix(dest, "#") {
		return ""
	}

	if u, err := url.Parse(dest); err != nil || u.Scheme != "" {
		return ""
	}

	if i := strings.Index(dest, "#"); i >= 0 {
		dest = dest[:i]
	}
	return dest
}
