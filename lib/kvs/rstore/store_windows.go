//go:build windows

package rstore

import (
	"errors"
	"io/fs"

	"golang.org/x/sys/windows/registry"

	"github.com/espeer/zep-kvs/lib/kvs"
)

// Hive selects the registry root the store writes under.
type Hive int

const (
	// CurrentUser stores values under HKEY_CURRENT_USER (per-user scope).
	CurrentUser Hive = iota
	// LocalMachine stores values under HKEY_LOCAL_MACHINE (machine scope,
	// typically requiring administrator privileges to write).
	LocalMachine
)

func (h Hive) key() registry.Key {
	if h == LocalMachine {
		return registry.LOCAL_MACHINE
	}
	return registry.CURRENT_USER
}

func (h Hive) String() string {
	if h == LocalMachine {
		return "winreg:HKEY_LOCAL_MACHINE"
	}
	return "winreg:HKEY_CURRENT_USER"
}

type storeImpl struct {
	hive Hive
	path string // subkey path relative to the hive root
}

// New creates a registry-backed store under
// <hive>\Software\<Namespace>\<Application>, creating the subkey if absent.
// Every value is stored as REG_BINARY, so arbitrary byte payloads survive
// unchanged.
func New(hive Hive, id kvs.Identity) (kvs.IBackingStore, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	path := `Software\` + id.Namespace + `\` + id.Application
	k, _, err := registry.CreateKey(hive.key(), path, registry.QUERY_VALUE)
	if err != nil {
		return nil, kvs.NewIOError(err, hive.String()+`\`+path)
	}
	_ = k.Close()
	return &storeImpl{hive: hive, path: path}, nil
}

func (s *storeImpl) location() string {
	return s.hive.String() + `\` + s.path
}

func (s *storeImpl) open(access uint32) (registry.Key, error) {
	return registry.OpenKey(s.hive.key(), s.path, access)
}

// --------------------------------------------------------------------------
// Interface Methods (docu see kvs/interface.go)
// --------------------------------------------------------------------------

func (s *storeImpl) Keys() ([]string, error) {
	k, err := s.open(registry.QUERY_VALUE)
	if err != nil {
		return nil, kvs.NewIOError(err, s.location())
	}
	defer k.Close()
	names, err := k.ReadValueNames(0)
	if err != nil {
		return nil, kvs.NewIOError(err, s.location())
	}
	return names, nil
}

func (s *storeImpl) Store(key string, value []byte) error {
	k, err := s.open(registry.SET_VALUE)
	if err != nil {
		return kvs.NewIOError(err, s.location())
	}
	defer k.Close()
	if err := k.SetBinaryValue(key, value); err != nil {
		return kvs.NewIOError(err, s.location())
	}
	return nil
}

func (s *storeImpl) Retrieve(key string) ([]byte, bool, error) {
	k, err := s.open(registry.QUERY_VALUE)
	if err != nil {
		return nil, false, kvs.NewIOError(err, s.location())
	}
	defer k.Close()
	value, _, err := k.GetBinaryValue(key)
	if errors.Is(err, registry.ErrNotExist) || errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, kvs.NewIOError(err, s.location())
	}
	return value, true, nil
}

func (s *storeImpl) Remove(key string) error {
	k, err := s.open(registry.SET_VALUE)
	if err != nil {
		return kvs.NewIOError(err, s.location())
	}
	defer k.Close()
	if err := k.DeleteValue(key); err != nil {
		if errors.Is(err, registry.ErrNotExist) || errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return kvs.NewIOError(err, s.location())
	}
	return nil
}

func (s *storeImpl) Close() error {
	return nil
}
