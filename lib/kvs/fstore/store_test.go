package fstore

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"testing"
	"time"

	"github.com/espeer/zep-kvs/lib/kvs"
	"github.com/espeer/zep-kvs/lib/kvs/codec"
	kvstesting "github.com/espeer/zep-kvs/lib/kvs/testing"
)

var testID = kvs.Identity{Namespace: "zep-kvs-test", Application: "fstore"}

func newTestStore(t *testing.T) kvs.IBackingStore {
	t.Helper()
	store, err := New(t.TempDir(), testID)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestBackingStoreContract(t *testing.T) {
	kvstesting.RunBackingStoreTests(t, "fstore", func() kvs.IBackingStore {
		return newTestStore(t)
	})
}

func TestDirectoryLayout(t *testing.T) {
	root := t.TempDir()
	store, err := New(root, kvs.Identity{Namespace: "com.example", Application: "demo"})
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	defer store.Close()

	if err := store.Store("greeting", []byte("hello")); err != nil {
		t.Fatalf("Store failed: %v", err)
	}

	// One file per key, directly under <root>/<namespace>/<application>.
	data, err := os.ReadFile(filepath.Join(root, "com.example", "demo", "greeting"))
	if err != nil {
		t.Fatalf("Expected key file on disk: %v", err)
	}
	if !bytes.Equal(data, []byte("hello")) {
		t.Errorf("Key file holds %q, expected %q", data, "hello")
	}
}

func TestIdentityValidation(t *testing.T) {
	root := t.TempDir()
	for _, id := range []kvs.Identity{
		{Namespace: "", Application: "app"},
		{Namespace: "ns", Application: ""},
		{Namespace: "..", Application: "app"},
		{Namespace: "ns", Application: "a/b"},
	} {
		if _, err := New(root, id); err == nil {
			t.Errorf("Expected error for identity %+v", id)
		}
	}
}

func TestPersistenceAcrossReopen(t *testing.T) {
	root := t.TempDir()

	store, err := New(root, testID)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	if err := store.Store("persistent", []byte("survives")); err != nil {
		t.Fatalf("Store failed: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	reopened, err := New(root, testID)
	if err != nil {
		t.Fatalf("Failed to reopen store: %v", err)
	}
	defer reopened.Close()

	value, found, err := reopened.Retrieve("persistent")
	if err != nil {
		t.Fatalf("Retrieve after reopen failed: %v", err)
	}
	if !found || !bytes.Equal(value, []byte("survives")) {
		t.Errorf("Value did not survive reopen: found=%v value=%q", found, value)
	}
}

func TestKeyValidation(t *testing.T) {
	store := newTestStore(t)

	for _, key := range []string{
		"",
		".",
		"..",
		"a/b",
		"a\\b",
		"nul\x00byte",
		".tmp_reserved",
	} {
		err := store.Store(key, []byte("x"))
		assertInvalidKey(t, key, err)

		_, _, err = store.Retrieve(key)
		assertInvalidKey(t, key, err)

		err = store.Remove(key)
		assertInvalidKey(t, key, err)
	}

	// Dotfiles that are not reserved artifacts remain usable keys.
	if err := store.Store(".config", []byte("ok")); err != nil {
		t.Errorf("Expected dotfile key to be accepted, got %v", err)
	}
}

func assertInvalidKey(t *testing.T, key string, err error) {
	t.Helper()
	var kvErr *kvs.Error
	if !errors.As(err, &kvErr) || kvErr.Code != kvs.RetCInvalidKey {
		t.Errorf("Expected invalid-key error for %q, got %v", key, err)
	}
}

func TestTempArtifactsInvisible(t *testing.T) {
	root := t.TempDir()
	store, err := New(root, testID)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	defer store.Close()

	if err := store.Store("real", []byte("value")); err != nil {
		t.Fatalf("Store failed: %v", err)
	}

	// Simulate a crashed write that left its artifact behind.
	dir := filepath.Join(root, testID.Namespace, testID.Application)
	artifact := filepath.Join(dir, tempPrefix+"deadbeef")
	if err := os.WriteFile(artifact, []byte("partial"), filePerm); err != nil {
		t.Fatalf("Failed to plant temp artifact: %v", err)
	}

	keys, err := store.Keys()
	if err != nil {
		t.Fatalf("Keys failed: %v", err)
	}
	if len(keys) != 1 || keys[0] != "real" {
		t.Errorf("Temp artifacts must not appear in key listings, got %v", keys)
	}

	_, found, err := store.Retrieve(tempPrefix + "deadbeef")
	if found || err == nil {
		t.Errorf("Temp artifacts must not be retrievable as keys")
	}
}

func TestStaleArtifactSweep(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, testID.Namespace, testID.Application)
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		t.Fatalf("Failed to create store directory: %v", err)
	}

	stale := filepath.Join(dir, tempPrefix+"stale")
	fresh := filepath.Join(dir, tempPrefix+"fresh")
	value := filepath.Join(dir, "real")
	for _, path := range []string{stale, fresh, value} {
		if err := os.WriteFile(path, []byte("x"), filePerm); err != nil {
			t.Fatalf("Failed to plant %s: %v", path, err)
		}
	}
	old := time.Now().Add(-48 * time.Hour)
	if err := os.Chtimes(stale, old, old); err != nil {
		t.Fatalf("Failed to age artifact: %v", err)
	}

	store, err := New(root, testID)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(stale); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Stale artifact must be swept at construction, stat err: %v", err)
	}
	if _, err := os.Stat(fresh); err != nil {
		t.Errorf("Fresh artifact must be spared by the sweep: %v", err)
	}
	if _, err := os.Stat(value); err != nil {
		t.Errorf("Regular key files must be spared by the sweep: %v", err)
	}
}

func TestOverwriteLeavesSingleFile(t *testing.T) {
	root := t.TempDir()
	store, err := New(root, testID)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	defer store.Close()

	for i := 0; i < 10; i++ {
		if err := store.Store("counter", []byte{byte(i)}); err != nil {
			t.Fatalf("Store #%d failed: %v", i, err)
		}
	}

	dir := filepath.Join(root, testID.Namespace, testID.Application)
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}
	if len(entries) != 1 {
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			names = append(names, e.Name())
		}
		sort.Strings(names)
		t.Errorf("Expected a single file after repeated overwrites, got %v", names)
	}

	value, found, err := store.Retrieve("counter")
	if err != nil || !found {
		t.Fatalf("Retrieve failed: found=%v err=%v", found, err)
	}
	if !bytes.Equal(value, []byte{9}) {
		t.Errorf("Expected final value [9], got %v", value)
	}
}

func TestTypedCounterLifecycle(t *testing.T) {
	store := kvs.New(newTestStore(t))

	if err := kvs.Store(store, "count", codec.Uint32, 42); err != nil {
		t.Fatalf("Store failed: %v", err)
	}

	keys, err := store.Keys()
	if err != nil {
		t.Fatalf("Keys failed: %v", err)
	}
	if len(keys) != 1 || keys[0] != "count" {
		t.Errorf("Expected keys [count], got %v", keys)
	}

	value, found, err := kvs.Retrieve(store, "count", codec.Uint32)
	if err != nil || !found || value != 42 {
		t.Errorf("Expected (42, true), got (%d, %v, %v)", value, found, err)
	}

	if err := store.Remove("count"); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if _, found, _ := kvs.Retrieve(store, "count", codec.Uint32); found {
		t.Errorf("Expected count to be absent after remove")
	}
	if keys, _ := store.Keys(); len(keys) != 0 {
		t.Errorf("Expected no keys after remove, got %v", keys)
	}
}

func BenchmarkBackingStore(b *testing.B) {
	kvstesting.RunBackingStoreBenchmarks(b, "fstore", func() kvs.IBackingStore {
		dir, err := os.MkdirTemp("", "zep-kvs-bench-*")
		if err != nil {
			b.Fatalf("Failed to create temp dir: %v", err)
		}
		b.Cleanup(func() { _ = os.RemoveAll(dir) })
		store, err := New(dir, testID)
		if err != nil {
			b.Fatalf("Failed to create store: %v", err)
		}
		b.Cleanup(func() { _ = store.Close() })
		return store
	})
}
