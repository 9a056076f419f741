//go:build darwin

package scope

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/espeer/zep-kvs/lib/kvs"
	"github.com/espeer/zep-kvs/lib/kvs/fstore"
)

// User data lives in ~/Library/Application Support per Apple's File System
// Programming Guide, so it is backed up by Time Machine and hidden from
// Finder by default.
func newUserStore(id kvs.Identity) (kvs.IBackingStore, error) {
	home := os.Getenv("HOME")
	if home == "" {
		return nil, errors.New("no user directory found (HOME is not set)")
	}
	return fstore.New(filepath.Join(home, "Library", "Application Support"), id)
}

// Machine-wide data lives in /Library/Application Support, which typically
// requires administrator privileges to write.
func newMachineStore(id kvs.Identity) (kvs.IBackingStore, error) {
	return fstore.New(filepath.Join("/Library", "Application Support"), id)
}
