package domain

import "time"

// RawDocument represents one file read by a connector before
// normalisation. It is the connector's output.
type RawDocument struct {
	// Path is the file's location relative to the corpus root,
	// slash-separated.
	Path string

	// Content is the raw file bytes, frontmatter included.
	Content []byte

	// ModTime is the file's last modification time.
	ModTime time.Time
}
