package index

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/docdex/internal/core/domain"
)

// TestRelated_NeverIncludesSource tests self-exclusion
func TestRelated_NeverIncludesSource(t *testing.T) {
	snap := buildSnapshot(
		domain.Document{Path: "a.md", Metadata: domain.Metadata{Category: "guides"}},
		domain.Document{Path: "b.md", Metadata: domain.Metadata{Category: "guides"}},
		domain.Document{Path: "c.md", Metadata: domain.Metadata{Category: "guides"}},
	)

	hits := snap.Related("a.md", 10)

	require.Len(t, hits, 2)
	for _, h := range hits {
		assert.NotEqual(t, "a.md", h.Path)
	}
}

// TestRelated_UnknownPath tests the empty outcome for paths outside
// the corpus
func TestRelated_UnknownPath(t *testing.T) {
	snap := buildSnapshot(
		domain.Document{Path: "a.md"},
	)

	assert.Empty(t, snap.Related("missing.md", 5))
}

// TestRelated_NoRelationships tests the empty outcome for an isolated
// document
func TestRelated_NoRelationships(t *testing.T) {
	snap := buildSnapshot(
		domain.Document{Path: "a.md", Metadata: domain.Metadata{Category: "one"}},
		domain.Document{Path: "b.md", Metadata: domain.Metadata{Category: "two"}},
	)

	assert.Empty(t, snap.Related("a.md", 5))
}

// TestRelated_ExplicitDeclarationOutranksTaxonomy tests the scoring
// hierarchy
func TestRelated_ExplicitDeclarationOutranksTaxonomy(t *testing.T) {
	snap := buildSnapshot(
		domain.Document{Path: "source.md", Metadata: domain.Metadata{
			Category: "guides",
			Related:  []string{"declared.md"},
		}},
		// Same category only: 1 + 2 = 3.
		domain.Document{Path: "same-category.md", Metadata: domain.Metadata{
			Category: "guides",
		}},
		// Explicit declaration, different category: 1 + 5 = 6.
		domain.Document{Path: "declared.md", Metadata: domain.Metadata{
			Category: "reference",
		}},
	)

	hits := snap.Related("source.md", 10)

	require.Len(t, hits, 2)
	assert.Equal(t, "declared.md", hits[0].Path)
	assert.Equal(t, 6.0, hits[0].Score)
	assert.Equal(t, "same-category.md", hits[1].Path)
	assert.Equal(t, 3.0, hits[1].Score)
}

// TestRelated_SharedTagsAddOnePointEach tests tag-intersection scoring
func TestRelated_SharedTagsAddOnePointEach(t *testing.T) {
	snap := buildSnapshot(
		domain.Document{Path: "source.md", Metadata: domain.Metadata{
			Category: "guides",
			Tags:     []string{"x", "y", "z", "z"},
		}},
		// Category + three distinct shared tags: 1 + 2 + 3 = 6.
		domain.Document{Path: "close.md", Metadata: domain.Metadata{
			Category: "guides",
			Tags:     []string{"x", "y", "z"},
		}},
		// Category + two shared tags (duplicate z counts once): 1 + 2 + 2 = 5.
		domain.Document{Path: "near.md", Metadata: domain.Metadata{
			Category: "guides",
			Tags:     []string{"y", "z", "z"},
		}},
		// Category only: 1 + 2 = 3.
		domain.Document{Path: "far.md", Metadata: domain.Metadata{
			Category: "guides",
		}},
	)

	hits := snap.Related("source.md", 10)

	require.Len(t, hits, 3)
	assert.Equal(t, "close.md", hits[0].Path)
	assert.Equal(t, 6.0, hits[0].Score)
	assert.Equal(t, "near.md", hits[1].Path)
	assert.Equal(t, 5.0, hits[1].Score)
	assert.Equal(t, "far.md", hits[2].Path)
	assert.Equal(t, 3.0, hits[2].Score)
}

// TestRelated_LimitTruncates tests result truncation
func TestRelated_LimitTruncates(t *testing.T) {
	snap := buildSnapshot(
		domain.Document{Path: "a.md", Metadata: domain.Metadata{Category: "guides"}},
		domain.Document{Path: "b.md", Metadata: domain.Metadata{Category: "guides"}},
		domain.Document{Path: "c.md", Metadata: domain.Metadata{Category: "guides"}},
		domain.Document{Path: "d.md", Metadata: domain.Metadata{Category: "guides"}},
	)

	assert.Len(t, snap.Related("a.md", 2), 2)
	assert.Len(t, snap.Related("a.md", 10), 3)
	assert.Len(t, snap.Related("a.md", 0), 3, "a non-positive limit returns everything")
}

// TestRelated_TieBreakIsCorpusOrder tests deterministic ordering of
// equal relationship scores
func TestRelated_TieBreakIsCorpusOrder(t *testing.T) {
	snap := buildSnapshot(
		domain.Document{Path: "source.md", Metadata: domain.Metadata{Category: "guides"}},
		domain.Document{Path: "z.md", Metadata: domain.Metadata{Category: "guides"}},
		domain.Document{Path: "b.md", Metadata: domain.Metadata{Category: "guides"}},
	)

	hits := snap.Related("source.md", 10)

	require.Len(t, hits, 2)
	assert.Equal(t, "b.md", hits[0].Path)
	assert.Equal(t, "z.md", hits[1].Path)
}

// TestRelated_AsymmetricExplicitEdge tests that a one-way declaration
// stays one way through the query layer
func TestRelated_AsymmetricExplicitEdge(t *testing.T) {
	snap := buildSnapshot(
		domain.Document{Path: "a.md", Metadata: domain.Metadata{
			Category: "one",
			Related:  []string{"b.md"},
		}},
		domain.Document{Path: "b.md", Metadata: domain.Metadata{
			Category: "two",
		}},
	)

	aHits := snap.Related("a.md", 5)
	require.Len(t, aHits, 1)
	assert.Equal(t, "b.md", aHits[0].Path)

	assert.Empty(t, snap.Related("b.md", 5))
}
