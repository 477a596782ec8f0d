// Package file provides file-based implementations of driven port interfaces.
//
// ConfigStore reads TOML configuration (default ~/.docdex/config.toml)
// and exposes it through flattened dot-notation keys such as
// "corpus.root" and "log.verbose". The store is read-only: the config
// file is user-edited input and docdex never writes it back.
package file
