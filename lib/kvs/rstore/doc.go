// Package rstore implements a Windows-registry-backed store based on the
// kvs.IBackingStore interface. It is the durable backend for the User and
// Machine scopes on Windows, where the directory store's fsync-based
// durability protocol is unavailable.
//
// Registry Structure:
//
//	HKEY_CURRENT_USER (or HKEY_LOCAL_MACHINE)
//	└── Software
//	    └── <namespace>
//	        └── <application>
//	            ├── key1 = REG_BINARY data
//	            └── key2 = REG_BINARY data
//
// All values are stored as REG_BINARY so any codec-encoded byte payload
// survives unchanged. A missing value on Retrieve is reported as absent, and
// deleting a missing value is a no-op, matching the contract of the other
// backends. Errors carry the "winreg:HIVE\path" location for context.
//
// The implementation is compiled only on Windows. On other platforms the
// scope package selects the directory store instead.
package rstore
