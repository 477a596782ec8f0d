// Package driven holds the outbound ports of the core: the interfaces
// core services call to reach infrastructure. Adapters implement them;
// core never imports an adapter package.
//
// Four ports cover everything docdex needs from the outside world:
//
//   - Connector streams raw files out of a corpus root.
//   - Normaliser turns raw markdown into an indexable document.
//   - SnapshotStore publishes and serves the active index snapshot.
//   - ConfigStore reads user configuration.
//
// Code here may import core packages (domain, index) and nothing else.
package driven
