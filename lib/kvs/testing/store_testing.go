package testing

import (
	"bytes"
	"fmt"
	"sort"
	"testing"

	"github.com/espeer/zep-kvs/lib/kvs"
)

// StoreFactory is a function that creates a fresh, empty instance of a
// kvs.IBackingStore implementation.
type StoreFactory func() kvs.IBackingStore

// RunBackingStoreTests runs the shared contract test suite for an
// IBackingStore implementation. The suite sticks to filesystem-safe keys so
// it holds for every backend; backend-specific key handling (path
// separators, the reserved temp prefix) is tested next to each backend.
func RunBackingStoreTests(t *testing.T, name string, factory StoreFactory) {
	t.Run(name, func(t *testing.T) {
		t.Run("StoreRetrieve", func(t *testing.T) {
			testStoreRetrieve(t, factory())
		})

		t.Run("Overwrite", func(t *testing.T) {
			testOverwrite(t, factory())
		})

		t.Run("Absence", func(t *testing.T) {
			testAbsence(t, factory())
		})

		t.Run("Remove", func(t *testing.T) {
			testRemove(t, factory())
		})

		t.Run("Keys", func(t *testing.T) {
			testKeys(t, factory())
		})

		t.Run("EmptyValues", func(t *testing.T) {
			testEmptyValues(t, factory())
		})

		t.Run("BinaryValues", func(t *testing.T) {
			testBinaryValues(t, factory())
		})

		t.Run("ManyKeys", func(t *testing.T) {
			testManyKeys(t, factory())
		})
	})
}

// --------------------------------------------------------------------------
// Test functions
// --------------------------------------------------------------------------

func testStoreRetrieve(t *testing.T, store kvs.IBackingStore) {
	defer store.Close()

	testKey := "test-key"
	testValue := []byte("test-value")

	if err := store.Store(testKey, testValue); err != nil {
		t.Fatalf("Unexpected error during Store: %v", err)
	}

	result, found, err := store.Retrieve(testKey)
	if err != nil {
		t.Fatalf("Unexpected error during Retrieve: %v", err)
	}
	if !found {
		t.Errorf("Expected key %s to exist after Store", testKey)
	}
	if !bytes.Equal(result, testValue) {
		t.Errorf("Expected value %s, got %s", testValue, result)
	}

	// The retrieved slice must be a copy, not a reference into the store.
	result[0] = 'X'
	again, _, err := store.Retrieve(testKey)
	if err != nil {
		t.Fatalf("Unexpected error during Retrieve: %v", err)
	}
	if bytes.Equal(result, again) {
		t.Errorf("Retrieve should return a copy, not a reference to the stored value")
	}

	// Mutating the caller's slice after Store must not change the stored
	// value either.
	testValue[0] = 'Y'
	again, _, _ = store.Retrieve(testKey)
	if bytes.Equal(again, testValue) {
		t.Errorf("Store should keep a copy, not a reference to the caller's slice")
	}
}

func testOverwrite(t *testing.T, store kvs.IBackingStore) {
	defer store.Close()

	testKey := "overwrite-key"
	oldValue := []byte("original value, somewhat longer")
	newValue := []byte("updated")

	if err := store.Store(testKey, oldValue); err != nil {
		t.Fatalf("Unexpected error during Store: %v", err)
	}
	if err := store.Store(testKey, newValue); err != nil {
		t.Fatalf("Unexpected error during overwrite: %v", err)
	}

	result, found, err := store.Retrieve(testKey)
	if err != nil {
		t.Fatalf("Unexpected error during Retrieve: %v", err)
	}
	if !found {
		t.Errorf("Expected key %s to exist after overwrite", testKey)
	}
	if !bytes.Equal(result, newValue) {
		t.Errorf("Expected only the new value %q, got %q", newValue, result)
	}

	keys, err := store.Keys()
	if err != nil {
		t.Fatalf("Unexpected error during Keys: %v", err)
	}
	if len(keys) != 1 {
		t.Errorf("Expected exactly one key after overwrite, got %v", keys)
	}
}

func testAbsence(t *testing.T, store kvs.IBackingStore) {
	defer store.Close()

	value, found, err := store.Retrieve("never-stored")
	if err != nil {
		t.Errorf("Retrieve of a missing key must not error, got %v", err)
	}
	if found {
		t.Errorf("Expected missing key to be reported as absent")
	}
	if value != nil {
		t.Errorf("Expected nil value for missing key, got %v", value)
	}
}

func testRemove(t *testing.T, store kvs.IBackingStore) {
	defer store.Close()

	if err := store.Store("key1", []byte("value1")); err != nil {
		t.Fatalf("Unexpected error during Store: %v", err)
	}
	if err := store.Store("key2", []byte("value2")); err != nil {
		t.Fatalf("Unexpected error during Store: %v", err)
	}

	if err := store.Remove("key1"); err != nil {
		t.Fatalf("Unexpected error during Remove: %v", err)
	}

	_, found, err := store.Retrieve("key1")
	if err != nil {
		t.Fatalf("Unexpected error during Retrieve: %v", err)
	}
	if found {
		t.Errorf("Expected key1 to be absent after Remove")
	}

	result, found, err := store.Retrieve("key2")
	if err != nil || !found {
		t.Fatalf("Expected key2 to survive removal of key1 (found=%v, err=%v)", found, err)
	}
	if !bytes.Equal(result, []byte("value2")) {
		t.Errorf("Expected value2, got %s", result)
	}

	// Removal is idempotent on every backend.
	if err := store.Remove("key1"); err != nil {
		t.Errorf("Remove of a missing key must be a no-op, got %v", err)
	}
	if err := store.Remove("never-stored"); err != nil {
		t.Errorf("Remove of a never-stored key must be a no-op, got %v", err)
	}
}

func testKeys(t *testing.T, store kvs.IBackingStore) {
	defer store.Close()

	keys, err := store.Keys()
	if err != nil {
		t.Fatalf("Unexpected error during Keys: %v", err)
	}
	if len(keys) != 0 {
		t.Errorf("Expected empty store to list no keys, got %v", keys)
	}

	want := []string{"alpha", "beta", "gamma"}
	for _, key := range want {
		if err := store.Store(key, []byte("value for "+key)); err != nil {
			t.Fatalf("Unexpected error during Store: %v", err)
		}
	}

	keys, err = store.Keys()
	if err != nil {
		t.Fatalf("Unexpected error during Keys: %v", err)
	}
	sort.Strings(keys)
	if len(keys) != len(want) {
		t.Fatalf("Expected %d keys, got %d: %v", len(want), len(keys), keys)
	}
	for i, key := range want {
		if keys[i] != key {
			t.Errorf("Expected key %q at position %d, got %q", key, i, keys[i])
		}
	}

	if err := store.Remove("beta"); err != nil {
		t.Fatalf("Unexpected error during Remove: %v", err)
	}
	keys, err = store.Keys()
	if err != nil {
		t.Fatalf("Unexpected error during Keys: %v", err)
	}
	sort.Strings(keys)
	if len(keys) != 2 || keys[0] != "alpha" || keys[1] != "gamma" {
		t.Errorf("Expected [alpha gamma] after removal, got %v", keys)
	}
}

func testEmptyValues(t *testing.T, store kvs.IBackingStore) {
	defer store.Close()

	if err := store.Store("empty", []byte{}); err != nil {
		t.Fatalf("Unexpected error during Store of empty value: %v", err)
	}
	result, found, err := store.Retrieve("empty")
	if err != nil {
		t.Fatalf("Unexpected error during Retrieve: %v", err)
	}
	if !found {
		t.Errorf("Expected key with empty value to exist")
	}
	if len(result) != 0 {
		t.Errorf("Expected empty value, got %v", result)
	}

	if err := store.Store("nil-value", nil); err != nil {
		t.Fatalf("Unexpected error during Store of nil value: %v", err)
	}
	result, found, err = store.Retrieve("nil-value")
	if err != nil {
		t.Fatalf("Unexpected error during Retrieve: %v", err)
	}
	if !found {
		t.Errorf("Expected key with nil value to exist")
	}
	if len(result) != 0 {
		t.Errorf("Nil value resulted in non-empty value: %v", result)
	}
}

func testBinaryValues(t *testing.T, store kvs.IBackingStore) {
	defer store.Close()

	// Null bytes and high bytes must pass through unchanged - no
	// transformation, no truncation at the null byte.
	binary := []byte{0, 255, 127, 1, 0, 0, 42}
	if err := store.Store("binary", binary); err != nil {
		t.Fatalf("Unexpected error during Store: %v", err)
	}
	result, found, err := store.Retrieve("binary")
	if err != nil || !found {
		t.Fatalf("Expected binary key to exist (found=%v, err=%v)", found, err)
	}
	if !bytes.Equal(result, binary) {
		t.Errorf("Binary value mismatch: expected %v, got %v", binary, result)
	}
}

func testManyKeys(t *testing.T, store kvs.IBackingStore) {
	defer store.Close()

	numKeys := 100
	for i := 0; i < numKeys; i++ {
		key := fmt.Sprintf("key_%d", i)
		value := []byte(fmt.Sprintf("value_%d", i))
		if err := store.Store(key, value); err != nil {
			t.Fatalf("Unexpected error during Store of %s: %v", key, err)
		}
	}

	keys, err := store.Keys()
	if err != nil {
		t.Fatalf("Unexpected error during Keys: %v", err)
	}
	if len(keys) != numKeys {
		t.Errorf("Expected %d keys, got %d", numKeys, len(keys))
	}

	result, found, err := store.Retrieve("key_50")
	if err != nil || !found {
		t.Fatalf("Expected key_50 to exist (found=%v, err=%v)", found, err)
	}
	if !bytes.Equal(result, []byte("value_50")) {
		t.Errorf("Expected value_50, got %s", result)
	}
}
