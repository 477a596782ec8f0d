// Package services implements the driving ports. The orchestrator
// walks the corpus through a connector, normalises what it finds and
// publishes an immutable snapshot; the search and library services
// answer every query from whichever snapshot is currently published,
// so reads never block a rebuild.
package services
