package kvs

import (
	"github.com/espeer/zep-kvs/lib/kvs/codec"
)

// --------------------------------------------------------------------------
// Typed Front-End
// --------------------------------------------------------------------------

// KeyValueStore is the typed front-end over a single backing store. It owns
// exclusive access to one backing location for its lifetime and layers the
// codec package on top of the raw byte contract, so callers work with typed
// values instead of byte buffers.
type KeyValueStore struct {
	backend IBackingStore
}

// New binds a backing store to a typed front-end. The store takes ownership
// of the backend; Close releases it.
func New(backend IBackingStore) *KeyValueStore {
	return &KeyValueStore{backend: backend}
}

// Keys returns all keys currently stored. The order is unspecified.
func (s *KeyValueStore) Keys() ([]string, error) {
	return s.backend.Keys()
}

// StoreBytes inserts or updates a key with a raw byte value, bypassing the
// codec layer.
func (s *KeyValueStore) StoreBytes(key string, value []byte) error {
	return s.backend.Store(key, value)
}

// RetrieveBytes returns the raw bytes for a key. A missing key is reported
// as found=false with a nil error.
func (s *KeyValueStore) RetrieveBytes(key string) ([]byte, bool, error) {
	return s.backend.Retrieve(key)
}

// Remove deletes a key. Removing a missing key is a no-op.
func (s *KeyValueStore) Remove(key string) error {
	return s.backend.Remove(key)
}

// Close releases the underlying backend.
func (s *KeyValueStore) Close() error {
	return s.backend.Close()
}

// --------------------------------------------------------------------------
// Generic Typed Operations
// --------------------------------------------------------------------------

// Go methods cannot be generic, so the typed operations are package-level
// functions taking the codec explicitly:
//
//	err := kvs.Store(store, "count", codec.Uint32, uint32(42))
//	v, found, err := kvs.Retrieve(store, "count", codec.Uint32)

// Store encodes a value with the given codec and writes it under key.
// Encoding failures are reported as decode-class errors (codec contract
// violations), storage failures verbatim from the backend.
func Store[V any](s *KeyValueStore, key string, c codec.ICodec[V], value V) error {
	data, err := c.Encode(value)
	if err != nil {
		return &Error{Code: RetCDecodeError, Msg: err.Error(), Err: err}
	}
	return s.backend.Store(key, data)
}

// Retrieve reads the bytes under key and decodes them with the given codec.
// A missing key yields the zero value with found=false and a nil error.
func Retrieve[V any](s *KeyValueStore, key string, c codec.ICodec[V]) (value V, found bool, err error) {
	var zero V
	data, found, err := s.backend.Retrieve(key)
	if err != nil || !found {
		return zero, false, err
	}
	v, err := c.Decode(data)
	if err != nil {
		return zero, false, &Error{Code: RetCDecodeError, Msg: err.Error(), Err: err}
	}
	return v, true, nil
}
