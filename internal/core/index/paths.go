package index

import (
	"path"
	"strings"
)

// NormalisePath reduces a declared document reference (a related entry
// or an embedded link target) to the canonical path form used as the
// snapshot key: slash-separated, cleaned, with leading "./", "../",
// and "/" segments stripped so absolute and escaping references
// resolve relative to the corpus root.
func NormalisePath(p string) string {
	p = strings.TrimSpace(p)
	if p == "" {
		return ""
	}

	p = strings.ReplaceAll(p, "\\", "/")
	p = path.Clean(p)

	for {
		switch {
		case strings.HasPrefix(p, "../"):
			p = strings.TrimPrefix(p, "../")
		case strings.HasPrefix(p, "./"):
			p = strings.TrimPrefix(p, "./")
		case strings.HasPrefix(p, "/"):
			p = strings.TrimPrefix(p, "/")
		case p == "." || p == "..":
			return ""
		default:
			return p
		}
	}
}
