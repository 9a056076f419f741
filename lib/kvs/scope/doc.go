// Package scope selects and constructs the right storage backend for a named
// storage locality. A scope determines where data lives and how long it
// persists; the rest of the module never deals with platform paths or
// registry hives.
//
// Available Scopes:
//
//   - Ephemeral: in-memory storage (mstore) that does not persist between
//     program runs. Useful for testing and transient state.
//   - User: per-user durable storage that persists between runs.
//   - Machine: system-wide durable storage shared across all users, usually
//     requiring elevated privileges to write.
//
// Storage Locations:
//
//	Linux and other Unix systems:
//	  User:    $XDG_DATA_HOME/<ns>/<app> or ~/.local/share/<ns>/<app>
//	  Machine: /var/lib/<ns>/<app>
//
//	macOS:
//	  User:    ~/Library/Application Support/<ns>/<app>
//	  Machine: /Library/Application Support/<ns>/<app>
//
//	Windows:
//	  User:    HKEY_CURRENT_USER\Software\<ns>\<app>
//	  Machine: HKEY_LOCAL_MACHINE\Software\<ns>\<app>
//
// The <ns>/<app> pair is the kvs.Identity supplied by the embedding
// application at construction time.
//
// Error Mapping:
//
//	Location-resolution and store-construction failures are mapped to
//	RetCNoUserScope / RetCNoMachineScope rather than generic I/O errors, so
//	applications can tell the user "this feature needs a writable location"
//	instead of surfacing a raw filesystem error.
//
// Usage:
//
//	store, err := scope.Open(scope.User, kvs.Identity{
//		Namespace:   "acme",
//		Application: "widget",
//	})
//	if err != nil {
//		// no usable per-user location on this machine
//	}
//	defer store.Close()
//	err = kvs.Store(store, "count", codec.Uint32, uint32(42))
package scope
