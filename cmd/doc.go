// Package cmd implements the command-line interface for zep-kvs. It provides
// a hierarchical command structure for inspecting and manipulating the typed
// key-value stores from a terminal.
//
// The package is organized into subpackages:
//
//   - kv: Commands for key-value store operations (get, set, delete, etc.)
//   - util: Shared utilities for command-line processing and configuration (internal use)
//
// See zep-kvs -help for a list of all commands.
package cmd
