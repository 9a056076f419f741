// Package mstore implements an ephemeral, in-memory store based on the
// kvs.IBackingStore interface. Data lives in a concurrent map and is lost
// when the store is garbage collected, making it the backend for the
// Ephemeral scope and for tests.
//
// Values are copied on both Store and Retrieve, so callers can never alias
// the store's internal state. Unlike the durable backends, keys are entirely
// unrestricted: any string, including the empty string and path-separator
// characters, is accepted.
//
// All operations are safe for concurrent use within the process; the map is
// an xsync.MapOf, so no external locking is needed.
package mstore
