package domain

import "errors"

// Sentinel errors shared across the core. Services wrap them with the
// failing path or operation; callers match them with errors.Is.
var (
	// ErrNotFound indicates a requested document does not exist.
	// Lookup callers must distinguish this from an empty result.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNoSnapshot indicates no index has been built yet.
	// Queries cannot run until the first build publishes a snapshot.
	ErrNoSnapshot = errors.New("no index snapshot")

	// ErrBuildInProgress indicates an index build is already running.
	ErrBuildInProgress = errors.New("index build in progress")

	// ErrRootInaccessible indicates the corpus root directory cannot
	// be read at all. The build fails, no snapshot is published, and
	// any previous snapshot remains authoritative.
	ErrRootInaccessible = errors.New("corpus root inaccessible")
)
