// Package connectors provides implementations of the Connector
// interface for corpus sources. A connector knows how to enumerate and
// read the raw files of one source kind and streams them to the
// indexer without interpreting their contents.
package connectors
