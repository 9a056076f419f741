package mstore

import (
	"github.com/puzpuzpuz/xsync/v3"

	"github.com/espeer/zep-kvs/lib/kvs"
)

type storeImpl struct {
	data *xsync.MapOf[string, []byte]
}

// New creates an empty in-memory store. Each instance owns its own map, so
// two stores never share data even within one process.
func New() kvs.IBackingStore {
	return &storeImpl{
		data: xsync.NewMapOf[string, []byte](),
	}
}

// --------------------------------------------------------------------------
// Interface Methods (docu see kvs/interface.go)
// --------------------------------------------------------------------------

func (s *storeImpl) Keys() ([]string, error) {
	keys := make([]string, 0, s.data.Size())
	s.data.Range(func(key string, _ []byte) bool {
		keys = append(keys, key)
		return true
	})
	return keys, nil
}

func (s *storeImpl) Store(key string, value []byte) error {
	// Store a copy so later mutations of the caller's slice cannot change
	// the stored value.
	stored := make([]byte, len(value))
	copy(stored, value)
	s.data.Store(key, stored)
	return nil
}

func (s *storeImpl) Retrieve(key string) ([]byte, bool, error) {
	stored, found := s.data.Load(key)
	if !found {
		return nil, false, nil
	}
	value := make([]byte, len(stored))
	copy(value, stored)
	return value, true, nil
}

func (s *storeImpl) Remove(key string) error {
	s.data.Delete(key)
	return nil
}

func (s *storeImpl) Close() error {
	return nil
}
