package scope

import (
	"fmt"

	"github.com/espeer/zep-kvs/lib/kvs"
	"github.com/espeer/zep-kvs/lib/kvs/mstore"
)

// --------------------------------------------------------------------------
// Interface Definition
// --------------------------------------------------------------------------

// IScope is the interface for storage scopes. A scope's sole responsibility
// is to produce a ready-to-use backing store for an application identity,
// resolving any platform-specific root location internally. Failures to
// resolve or create a location surface as scope-specific errors
// (RetCNoUserScope / RetCNoMachineScope), never as generic I/O errors, so
// callers can distinguish "this machine has no usable location for this
// scope" from "an operation on an otherwise-valid store failed".
type IScope interface {
	// NewStore resolves the scope's root location and opens a backing
	// store for the given application identity.
	NewStore(id kvs.Identity) (kvs.IBackingStore, error)
	// String returns the scope name ("ephemeral", "user" or "machine").
	String() string
}

var (
	// Ephemeral is in-memory storage that does not persist between runs.
	Ephemeral IScope = ephemeralScope{}
	// User is per-user durable storage in the user's profile.
	User IScope = userScope{}
	// Machine is system-wide durable storage shared across all users,
	// usually requiring elevated privileges to write.
	Machine IScope = machineScope{}
)

// Parse maps a scope name to its IScope value.
func Parse(name string) (IScope, error) {
	switch name {
	case "ephemeral":
		return Ephemeral, nil
	case "user":
		return User, nil
	case "machine":
		return Machine, nil
	default:
		return nil, fmt.Errorf("unknown scope %q (must be ephemeral, user or machine)", name)
	}
}

// Open constructs the scope's backing store and binds it to a typed
// front-end in one step.
func Open(s IScope, id kvs.Identity) (*kvs.KeyValueStore, error) {
	backend, err := s.NewStore(id)
	if err != nil {
		return nil, err
	}
	return kvs.New(backend), nil
}

// --------------------------------------------------------------------------
// Scope Implementations
// --------------------------------------------------------------------------

type ephemeralScope struct{}

func (ephemeralScope) NewStore(id kvs.Identity) (kvs.IBackingStore, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	return mstore.New(), nil
}

func (ephemeralScope) String() string { return "ephemeral" }

type userScope struct{}

func (userScope) NewStore(id kvs.Identity) (kvs.IBackingStore, error) {
	store, err := newUserStore(id)
	if err != nil {
		return nil, kvs.NewNoUserScopeError(err.Error())
	}
	return store, nil
}

func (userScope) String() string { return "user" }

type machineScope struct{}

func (machineScope) NewStore(id kvs.Identity) (kvs.IBackingStore, error) {
	store, err := newMachineStore(id)
	if err != nil {
		return nil, kvs.NewNoMachineScopeError(err.Error())
	}
	return store, nil
}

func (machineScope) String() string { return "machine" }
