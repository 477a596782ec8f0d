package filesystem

import (
	"path"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// DefaultExcludes are directory patterns excluded from every walk.
// Hidden (dot-prefixed) entries are skipped unconditionally, so .git
// and friends never need listing here.
var DefaultExcludes = []string{
	"node_modules",
	"vendor",
}

// relativeTo maps an absolute walk path to its corpus-relative,
// slash-separated form.
func relativeTo(root, abs string) (string, bool) {
	rel, err := filepath.Rel(root, abs)
	if err != nil {
		return "", false
	}
	rel = filepath.ToSlash(rel)
	if rel == ".." || strings.HasPrefix(rel, "../") {
		return "", false
	}
	return rel, true
}

// matchesAny reports whether the corpus-relative path matches any of
// the glob patterns, either as a full path or by base name. Patterns
// support doublestar's ** syntax.
func matchesAny(rel string, patterns []string) bool {
	base := path.Base(rel)
	for _, pattern := range patterns {
		pattern = filepath.ToSlash(pattern)

		if matched, err := doublestar.PathMatch(pattern, rel); err == nil && matched {
			return true
		}
		if matched, err := doublestar.PathMatch(pattern, base); err == nil && matched {
			return true
		}
	}
	return false
}
