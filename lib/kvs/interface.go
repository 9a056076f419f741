package kvs

import (
	"fmt"
)

// --------------------------------------------------------------------------
// Interface Definition
// --------------------------------------------------------------------------

// IBackingStore is the low-level byte-oriented contract implemented by every
// storage backend (directory of files, in-memory map, Windows registry).
// Keys are opaque UTF-8 strings, values are opaque byte sequences; typing is
// layered on top by the codec package via KeyValueStore.
//
// All write operations return only an error (nil on success), while read
// operations return the requested data along with an error (nil on success).
type IBackingStore interface {
	// Keys returns all keys currently stored. The order is unspecified and
	// not meaningful. Entries the backend cannot inspect are skipped rather
	// than aborting the whole listing.
	Keys() (keys []string, err error)
	// Store inserts or updates a key-value pair. If the key already exists
	// the old value is overwritten atomically: a reader never observes a
	// partially written value.
	//
	// Backends that map keys onto a restricted namespace (the directory
	// backend maps keys to filenames) reject keys the medium cannot
	// represent with a RetCInvalidKey error; the other backends accept any
	// string.
	Store(key string, value []byte) (err error)
	// Retrieve returns the value for a key. A missing key is reported as
	// found=false with a nil error, never as an error.
	Retrieve(key string) (value []byte, found bool, err error)
	// Remove deletes a key-value pair. Removing a key that does not exist
	// is a no-op on every backend.
	Remove(key string) (err error)
	// Close releases any resources held by the backend (such as the
	// directory handle of the file-backed store). The store must not be
	// used afterwards.
	Close() (err error)
}

// --------------------------------------------------------------------------
// Custom Error Type
// --------------------------------------------------------------------------

// Error is a custom error type that wraps a return code (of type RetCode),
// an error message and optionally the storage location involved plus the
// underlying cause.
type Error struct {
	Code RetCode // The return code
	Msg  string  // The error message
	Path string  // The path or location involved, if any
	Err  error   // The underlying cause, if any
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := fmt.Sprintf("KVSError (code %s): %s", e.Code, e.Msg)
	if e.Path != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Path)
	}
	return msg
}

// Unwrap returns the underlying cause so callers can use errors.Is/As.
func (e *Error) Unwrap() error {
	return e.Err
}

// NewError creates a new Error with the given code and message.
func NewError(code RetCode, msg string) *Error {
	return &Error{
		Code: code,
		Msg:  msg,
	}
}

// NewIOError wraps an underlying storage failure with the path or location
// where it occurred.
func NewIOError(err error, path string) *Error {
	return &Error{
		Code: RetCIOError,
		Msg:  err.Error(),
		Path: path,
		Err:  err,
	}
}

// NewNoUserScopeError signals that no usable per-user storage location could
// be resolved or created on this machine.
func NewNoUserScopeError(msg string) *Error {
	return &Error{Code: RetCNoUserScope, Msg: msg}
}

// NewNoMachineScopeError signals that no usable machine-wide storage location
// could be resolved or created on this machine.
func NewNoMachineScopeError(msg string) *Error {
	return &Error{Code: RetCNoMachineScope, Msg: msg}
}

// NewInvalidKeyError signals that a key cannot be represented by the backing
// medium (e.g. a path separator in a filename-mapped key).
func NewInvalidKeyError(key, msg string) *Error {
	return &Error{Code: RetCInvalidKey, Msg: fmt.Sprintf("key %q: %s", key, msg)}
}

// --------------------------------------------------------------------------
// Return Codes
// --------------------------------------------------------------------------

type RetCode uint64

const (
	RetCSuccess        RetCode = iota // 0: Operation executed successfully.
	RetCIOError                       // 1: Underlying storage medium failure.
	RetCDecodeError                   // 2: Stored bytes cannot be decoded as the requested type.
	RetCNoUserScope                   // 3: No usable per-user storage location.
	RetCNoMachineScope                // 4: No usable machine-wide storage location.
	RetCInvalidKey                    // 5: Key cannot be represented by the backing medium.
)

func (c RetCode) String() string {
	switch c {
	case RetCSuccess:
		return "Success"
	case RetCIOError:
		return "IOError"
	case RetCDecodeError:
		return "DecodeError"
	case RetCNoUserScope:
		return "NoUserScope"
	case RetCNoMachineScope:
		return "NoMachineScope"
	case RetCInvalidKey:
		return "InvalidKey"
	default:
		return "Unknown"
	}
}
