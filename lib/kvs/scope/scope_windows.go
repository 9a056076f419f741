//go:build windows

package scope

import (
	"github.com/espeer/zep-kvs/lib/kvs"
	"github.com/espeer/zep-kvs/lib/kvs/rstore"
)

// On Windows both durable scopes use the registry: per-user data under
// HKEY_CURRENT_USER, machine-wide data under HKEY_LOCAL_MACHINE (the latter
// normally requires administrator privileges).

func newUserStore(id kvs.Identity) (kvs.IBackingStore, error) {
	return rstore.New(rstore.CurrentUser, id)
}

func newMachineStore(id kvs.Identity) (kvs.IBackingStore, error) {
	return rstore.New(rstore.LocalMachine, id)
}
