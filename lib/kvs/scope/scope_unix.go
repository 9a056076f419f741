//go:build !windows && !darwin

package scope

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/espeer/zep-kvs/lib/kvs"
	"github.com/espeer/zep-kvs/lib/kvs/fstore"
)

// User data follows the XDG Base Directory Specification: $XDG_DATA_HOME if
// set, otherwise $HOME/.local/share. Data lands in
// <data home>/<namespace>/<application>/.
func newUserStore(id kvs.Identity) (kvs.IBackingStore, error) {
	if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
		return fstore.New(dir, id)
	}
	if home := os.Getenv("HOME"); home != "" {
		return fstore.New(filepath.Join(home, ".local", "share"), id)
	}
	return nil, errors.New("no user directory found (neither XDG_DATA_HOME nor HOME is set)")
}

// Machine-wide data lives under /var/lib/<namespace>/<application>/, the
// conventional location for system service state. Writing there normally
// requires root.
func newMachineStore(id kvs.Identity) (kvs.IBackingStore, error) {
	return fstore.New("/var/lib", id)
}
