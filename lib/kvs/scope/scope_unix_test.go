//go:build !windows && !darwin

package scope

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/espeer/zep-kvs/lib/kvs"
)

func TestUserScopeXDGDataHome(t *testing.T) {
	dataHome := t.TempDir()
	t.Setenv("XDG_DATA_HOME", dataHome)

	store, err := User.NewStore(testID)
	if err != nil {
		t.Fatalf("Failed to open user store: %v", err)
	}
	defer store.Close()

	if err := store.Store("k", []byte("v")); err != nil {
		t.Fatalf("Store failed: %v", err)
	}

	path := filepath.Join(dataHome, testID.Namespace, testID.Application, "k")
	if _, err := os.Stat(path); err != nil {
		t.Errorf("Expected data under XDG_DATA_HOME: %v", err)
	}
}

func TestUserScopeHomeFallback(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_DATA_HOME", "")
	t.Setenv("HOME", home)

	store, err := User.NewStore(testID)
	if err != nil {
		t.Fatalf("Failed to open user store: %v", err)
	}
	defer store.Close()

	if err := store.Store("k", []byte("v")); err != nil {
		t.Fatalf("Store failed: %v", err)
	}

	path := filepath.Join(home, ".local", "share", testID.Namespace, testID.Application, "k")
	if _, err := os.Stat(path); err != nil {
		t.Errorf("Expected data under $HOME/.local/share: %v", err)
	}
}

func TestScopesDoNotBleed(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", t.TempDir())

	user, err := Open(User, testID)
	if err != nil {
		t.Fatalf("Failed to open user store: %v", err)
	}
	defer user.Close()

	ephemeral, err := Open(Ephemeral, testID)
	if err != nil {
		t.Fatalf("Failed to open ephemeral store: %v", err)
	}
	defer ephemeral.Close()

	// The same key under two scopes addresses two separate stores.
	if err := user.StoreBytes("shared-key", []byte("durable")); err != nil {
		t.Fatalf("Store failed: %v", err)
	}
	if err := ephemeral.StoreBytes("shared-key", []byte("transient")); err != nil {
		t.Fatalf("Store failed: %v", err)
	}

	value, _, err := user.RetrieveBytes("shared-key")
	if err != nil || string(value) != "durable" {
		t.Errorf("User scope value changed: %q (err %v)", value, err)
	}

	if err := ephemeral.Remove("shared-key"); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if _, found, _ := user.RetrieveBytes("shared-key"); !found {
		t.Errorf("Removal in one scope must not affect another")
	}
}

func TestUserScopeUnresolvable(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "")
	t.Setenv("HOME", "")

	_, err := User.NewStore(testID)
	if err == nil {
		t.Fatalf("Expected an error with no user directory available")
	}

	var kvErr *kvs.Error
	if !errors.As(err, &kvErr) || kvErr.Code != kvs.RetCNoUserScope {
		t.Errorf("Expected RetCNoUserScope, got %v", err)
	}
}
