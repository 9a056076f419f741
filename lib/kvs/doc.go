// Package kvs provides a typed key-value store with pluggable storage
// backends and unified error handling. It is the abstraction layer binding a
// storage scope's backend to the byte codec, so applications get
// zero-configuration settings/state persistence without choosing a database.
//
// The package focuses on:
//   - A unified byte-level interface (IBackingStore) for key-value operations
//     across heterogeneous backends
//   - A typed front-end (KeyValueStore) layering the codec package on top
//   - A structured error type with return codes so callers can distinguish
//     storage failures, decode failures, unavailable scopes and invalid keys
//
// Key Components:
//
//   - IBackingStore Interface: The four-operation contract (Keys, Store,
//     Retrieve, Remove, plus Close for resource release) over raw bytes. All
//     backends share this interface, so applications can switch storage
//     mechanisms without code changes. Missing keys are explicitly modeled:
//     Retrieve reports them as absent rather than failing, and Remove is
//     idempotent on every backend.
//
//   - KeyValueStore: The typed front-end. Because Go methods cannot be
//     generic, the typed operations are package-level functions (Store,
//     Retrieve) taking an explicit codec.ICodec.
//
//   - Error System: A structured error reporting mechanism using typed
//     return codes and descriptive messages. I/O errors always carry the
//     path or location involved; scope-resolution failures are distinct
//     from generic I/O so callers can offer a clear "this feature needs a
//     writable location" message.
//
// Implementations:
//
//	The module includes three implementations of the IBackingStore interface:
//
//	- Directory Store (fstore): One file per key in a dedicated directory,
//	  with write-to-temp-then-rename atomicity and directory-handle syncs
//	  for durability. The durable backend on Linux and macOS.
//	  Available in the "github.com/espeer/zep-kvs/lib/kvs/fstore" package.
//
//	- Memory Store (mstore): An in-process concurrent map without
//	  persistence, for ephemeral data and testing.
//	  Available in the "github.com/espeer/zep-kvs/lib/kvs/mstore" package.
//
//	- Registry Store (rstore): Binary values in the Windows registry, the
//	  durable backend on Windows.
//	  Available in the "github.com/espeer/zep-kvs/lib/kvs/rstore" package.
//
// The scope package (github.com/espeer/zep-kvs/lib/kvs/scope) selects and
// constructs the right backend for the Ephemeral, User and Machine scopes,
// resolving platform-appropriate storage locations internally.
//
// Concurrency:
//
//	All operations are synchronous and blocking; there is no background
//	work, caching or cancellation. Atomicity is guaranteed per individual
//	write, but concurrent writers to the same key are not coordinated - the
//	last write wins. Readers never observe a torn write.
package kvs
