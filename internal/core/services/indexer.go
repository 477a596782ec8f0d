package services

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"
	"sync"

	"github.com/custodia-labs/docdex/internal/core/domain"
	"github.com/custodia-labs/docdex/internal/core/index"
	"github.com/custodia-labs/docdex/internal/core/ports/driven"
	"github.com/custodia-labs/docdex/internal/core/ports/driving"
	"github.com/custodia-labs/docdex/internal/logger"
)

// Ensure IndexOrchestrator implements the interface.
var _ driving.IndexOrchestrator = (*IndexOrchestrator)(nil)

// IndexOrchestrator coordinates index builds: it drains the connector,
// normalises each raw document, and publishes the assembled snapshot.
type IndexOrchestrator struct {
	connector   driven.Connector
	normalisers map[string]driven.Normaliser
	store       driven.SnapshotStore

	mu       sync.Mutex
	building bool
}

// NewIndexOrchestrator creates a new index orchestrator.
// Normalisers are selected by file extension; when several claim the
// same extension the last one registered wins.
func NewIndexOrchestrator(
	connector driven.Connector,
	normalisers []driven.Normaliser,
	store driven.SnapshotStore,
) *IndexOrchestrator {
	byExtension := make(map[string]driven.Normaliser)
	for _, n := range normalisers {
		for _, ext := range n.Extensions() {
			byExtension[strings.ToLower(ext)] = n
		}
	}

	return &IndexOrchestrator{
		connector:   connector,
		normalisers: byExtension,
		store:       store,
	}
}

// Rebuild walks the corpus, builds a fresh snapshot and publishes it.
// Queries keep answering from the previous snapshot until the new one
// is published in a single step at the end.
func (o *IndexOrchestrator) Rebuild(ctx context.Context) (domain.BuildStats, error) {
	if !o.begin() {
		return domain.BuildStats{}, domain.ErrBuildInProgress
	}
	defer o.end()

	logger.Section("Index Build")
	logger.Info("Corpus root: %s", o.connector.Root())

	// 1. Validate the corpus root before walking
	if err := o.connector.Validate(ctx); err != nil {
		return domain.BuildStats{}, fmt.Errorf("%w: %v", domain.ErrRootInaccessible, err)
	}

	// 2. Drain the connector into a builder
	builder := index.NewBuilder()
	docsCh, errsCh := o.connector.FullSync(ctx)
	if err := o.collect(ctx, builder, docsCh, errsCh); err != nil {
		return domain.BuildStats{}, err
	}

	// 3. Assemble and publish the snapshot
	snapshot := builder.Build()
	o.store.Publish(snapshot)

	stats := snapshot.Stats()
	logger.Info("Indexed %d documents (%d terms, %d skipped) in %s",
		stats.Documents, stats.Terms, stats.Skipped, stats.Duration)
	return stats, nil
}

// collect drains both connector channels until each is closed. Per-file
// failures are logged and counted; only a root-level failure aborts the
// build. The WalkComplete sentinel may arrive before or after the
// document channel closes, so both channels are drained to the end.
func (o *IndexOrchestrator) collect(
	ctx context.Context,
	builder *index.Builder,
	docsCh <-chan domain.RawDocument,
	errsCh <-chan error,
) error {
	for docsCh != nil || errsCh != nil {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case err, ok := <-errsCh:
			if !ok {
				errsCh = nil
				continue
			}
			if wc, done := driven.IsWalkComplete(err); done {
				builder.RecordSkipped(wc.Skipped)
				continue
			}
			if errors.Is(err, domain.ErrRootInaccessible) {
				return err
			}
			logger.Warn("Skipping file: %v", err)
			builder.RecordSkipped(1)

		case raw, ok := <-docsCh:
			if !ok {
				docsCh = nil
				continue
			}

			logger.Debug("Indexing: %s", raw.Path)
			doc, err := o.normalise(ctx, &raw)
			if err != nil {
				logger.Warn("Skipping %s: %v", raw.Path, err)
				builder.RecordSkipped(1)
				continue
			}
			builder.Add(doc)
		}
	}

	return nil
}

// normalise selects a normaliser by file extension and parses the raw
// document with it.
func (o *IndexOrchestrator) normalise(ctx context.Context, raw *domain.RawDocument) (domain.Document, error) {
	ext := strings.ToLower(path.Ext(raw.Path))
	normaliser, ok := o.normalisers[ext]
	if !ok {
		return domain.Document{}, fmt.Errorf("no normaliser for %q", ext)
	}
	return normaliser.Normalise(ctx, raw)
}

// begin marks a build as running. Returns false when one already is.
func (o *IndexOrchestrator) begin() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.building {
		return false
	}
	o.building = true
	return true
}

func (o *IndexOrchestrator) end() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.building = false
}
