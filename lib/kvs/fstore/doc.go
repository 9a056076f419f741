// Package fstore implements a durable, directory-backed store based on the
// kvs.IBackingStore interface. Each key is stored as one file whose name
// equals the key inside a dedicated directory, and each write is made atomic
// with a write-to-temp-then-rename protocol.
//
// Storage Structure:
//
//	<root>/<namespace>/<application>/
//	├── key1              file containing the value for "key1"
//	├── key2              file containing the value for "key2"
//	└── .tmp_<random>     transient artifact of an in-flight write
//
// Atomicity and Durability:
//
//	A write first creates a uniquely named temporary file (reserved ".tmp_"
//	prefix, random 128-bit suffix), writes the value, and fsyncs the file.
//	It is then renamed onto the key's filename - a single atomic filesystem
//	operation on the targeted filesystems - and finally the directory handle
//	itself is fsynced so the rename survives a crash. If any step fails the
//	key's prior value remains intact; at any point in time the directory
//	contains either zero or one file for a given key, and a torn write is
//	never observable.
//
// Stale Artifact Sweep:
//
//	Construction performs a best-effort sweep removing temporary artifacts
//	whose modification time is older than 24 hours, guarding against
//	unbounded accumulation from crashed writers while sparing artifacts
//	that might belong to a write still in flight elsewhere. The sweep is
//	not atomic with respect to concurrent writers; a legitimate in-flight
//	temporary file older than 24 hours could be reclaimed prematurely,
//	which the generous threshold makes pathological.
//
// Key Restrictions:
//
//	Keys map directly to filenames, so the store rejects keys the
//	filesystem cannot represent (empty string, ".", "..", path separators,
//	NUL, and the reserved temporary prefix) with a RetCInvalidKey error
//	before any filesystem access.
//
// Concurrency:
//
//	Operations are synchronous and blocking. Concurrent store instances
//	pointed at the same directory are not coordinated; atomicity holds per
//	individual write, and the last rename to land wins.
package fstore
