package filesystem

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/custodia-labs/docdex/internal/core/domain"
	"github.com/custodia-labs/docdex/internal/core/ports/driven"
	"github.com/custodia-labs/docdex/internal/logger"
)

// Ensure Connector implements the interface.
var _ driven.Connector = (*Connector)(nil)

// maxFileSize caps how large a file the walk will read (1 MB). A
// markdown document past that is almost certainly not prose.
const maxFileSize int64 = 1 << 20

// Connector streams documents from a directory tree. The walk runs on
// one goroutine while file reads fan out across a worker pool, so slow
// storage does not serialise the build.
type Connector struct {
	root       string
	extensions map[string]struct{}
	excludes   []string
	workers    int
	pool       *ants.Pool
}

// Option configures a Connector.
type Option func(*Connector)

// WithExtensions replaces the file extensions included in the walk.
// Extensions are matched case-insensitively and include the leading dot.
func WithExtensions(extensions ...string) Option {
	return func(c *Connector) {
		c.extensions = make(map[string]struct{}, len(extensions))
		for _, ext := range extensions {
			c.extensions[strings.ToLower(ext)] = struct{}{}
		}
	}
}

// WithExcludes adds glob patterns to the exclusion list, on top of
// DefaultExcludes. Patterns use doublestar syntax and match both the
// corpus-relative path and the base name.
func WithExcludes(patterns ...string) Option {
	return func(c *Connector) {
		c.excludes = append(c.excludes, patterns...)
	}
}

// WithWorkers sets the number of concurrent file readers.
func WithWorkers(n int) Option {
	return func(c *Connector) {
		if n >= 1 {
			c.workers = n
		}
	}
}

// New creates a filesystem connector rooted at the given directory.
// Without options it streams .md and .markdown files using half the
// machine's cores for reading.
func New(root string, opts ...Option) (*Connector, error) {
	c := &Connector{
		root:       filepath.Clean(root),
		extensions: map[string]struct{}{".md": {}, ".markdown": {}},
		excludes:   append([]string(nil), DefaultExcludes...),
		workers:    defaultWorkers(),
	}
	for _, opt := range opts {
		opt(c)
	}

	pool, err := ants.NewPool(c.workers)
	if err != nil {
		return nil, fmt.Errorf("create reader pool: %w", err)
	}
	c.pool = pool

	return c, nil
}

func defaultWorkers() int {
	n := runtime.NumCPU() / 2
	if n < 1 {
		n = 1
	}
	return n
}

// Type returns the connector type identifier.
func (c *Connector) Type() string { return "filesystem" }

// Root returns the corpus root this connector reads from.
func (c *Connector) Root() string { return c.root }

// Validate checks the corpus root exists and is a readable directory.
func (c *Connector) Validate(_ context.Context) error {
	info, err := os.Stat(c.root)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("root %s does not exist", c.root)
		}
		return fmt.Errorf("stat root: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("root %s is not a directory", c.root)
	}

	dir, err := os.Open(c.root)
	if err != nil {
		return fmt.Errorf("open root: %w", err)
	}
	return dir.Close()
}

// FullSync streams every matching document under the corpus root.
// Per-file failures go to the error channel without stopping the walk;
// a completed walk ends with a WalkComplete sentinel carrying the count
// of files skipped quietly (currently only the size cap). A root-level
// failure is sent wrapped in domain.ErrRootInaccessible instead.
func (c *Connector) FullSync(ctx context.Context) (<-chan domain.RawDocument, <-chan error) {
	docs := make(chan domain.RawDocument)
	errs := make(chan error)

	go func() {
		defer close(docs)
		defer close(errs)

		logger.Debug("Walking corpus at %s", c.root)

		var wg sync.WaitGroup
		skipped := 0

		walkErr := filepath.WalkDir(c.root, func(path string, d fs.DirEntry, err error) error {
			if cerr := ctx.Err(); cerr != nil {
				return cerr
			}

			if err != nil {
				if path == c.root {
					return err
				}
				if !sendErr(ctx, errs, fmt.Errorf("walk %s: %w", path, err)) {
					return ctx.Err()
				}
				if d != nil && d.IsDir() {
					return fs.SkipDir
				}
				return nil
			}

			name := d.Name()

			if d.IsDir() {
				if path == c.root {
					return nil
				}
				rel, ok := relativeTo(c.root, path)
				if !ok || strings.HasPrefix(name, ".") || matchesAny(rel, c.excludes) {
					return fs.SkipDir
				}
				return nil
			}

			if strings.HasPrefix(name, ".") {
				return nil
			}
			if _, ok := c.extensions[strings.ToLower(filepath.Ext(name))]; !ok {
				return nil
			}

			rel, ok := relativeTo(c.root, path)
			if !ok || matchesAny(rel, c.excludes) {
				return nil
			}

			info, err := resolveFile(path, d)
			if err != nil {
				if !sendErr(ctx, errs, fmt.Errorf("stat %s: %w", rel, err)) {
					return ctx.Err()
				}
				return nil
			}
			if info == nil {
				return nil
			}
			if info.Size() > maxFileSize {
				logger.Debug("Skipping %s: %d bytes exceeds the size cap", rel, info.Size())
				skipped++
				return nil
			}

			wg.Add(1)
			abs, relPath, modTime := path, rel, info.ModTime()
			if err := c.pool.Submit(func() {
				defer wg.Done()
				c.readFile(ctx, abs, relPath, modTime, docs, errs)
			}); err != nil {
				wg.Done()
				if !sendErr(ctx, errs, fmt.Errorf("schedule read %s: %w", relPath, err)) {
					return ctx.Err()
				}
			}
			return nil
		})

		wg.Wait()

		switch {
		case walkErr == nil:
			sendErr(ctx, errs, &driven.WalkComplete{Skipped: skipped})
		case errors.Is(walkErr, context.Canceled), errors.Is(walkErr, context.DeadlineExceeded):
			// The consumer stopped listening; nothing left to report.
		default:
			sendErr(ctx, errs, fmt.Errorf("%w: %v", domain.ErrRootInaccessible, walkErr))
		}
	}()

	return docs, errs
}

// Close releases the reader pool.
func (c *Connector) Close() error {
	c.pool.Release()
	return nil
}

// readFile loads one file and delivers it as a raw document. Runs on
// the worker pool.
func (c *Connector) readFile(
	ctx context.Context,
	abs, rel string,
	modTime time.Time,
	docs chan<- domain.RawDocument,
	errs chan<- error,
) {
	content, err := os.ReadFile(abs)
	if err != nil {
		sendErr(ctx, errs, fmt.Errorf("read %s: %w", rel, err))
		return
	}

	doc := domain.RawDocument{
		Path:    rel,
		Content: content,
		ModTime: modTime,
	}

	select {
	case docs <- doc:
	case <-ctx.Done():
	}
}

// resolveFile returns the info of the file an entry points at.
// Symlinks are followed so a linked markdown file is still indexed;
// entries that are neither regular files nor links to one return nil.
func resolveFile(path string, d fs.DirEntry) (fs.FileInfo, error) {
	if d.Type().IsRegular() {
		return d.Info()
	}
	if d.Type()&fs.ModeSymlink == 0 {
		return nil, nil
	}
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if !info.Mode().IsRegular() {
		return nil, nil
	}
	return info, nil
}

// sendErr delivers an error unless the context ends first. Returns
// false when the send was abandoned.
func sendErr(ctx context.Context, errs chan<- error, err error) bool {
	select {
	case errs <- err:
		return true
	case <-ctx.Done():
		return false
	}
}
