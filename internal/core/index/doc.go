// Package index implements the in-memory indexing and query engine.
//
// A Builder consumes normalised documents and produces a Snapshot: one
// complete, immutable build of the keyword index, TF-IDF weights,
// taxonomy indices, and relationship graph. Snapshots are never
// mutated after Build returns; a rebuild produces a fresh Snapshot
// that the storage adapter swaps in atomically.
//
// Queries (Search, Related, taxonomy listings) are read-only methods
// on Snapshot and are safe for concurrent use.
//
// # Architectural Position
//
// Part of the hexagon's core alongside domain and services. It may
// import domain and small utility dependencies only, never ports or
// adapters.
package index
