package testing

import (
	"fmt"
	"testing"

	"github.com/espeer/zep-kvs/lib/kvs"
)

// RunBackingStoreBenchmarks runs performance benchmarks for an IBackingStore
// implementation.
func RunBackingStoreBenchmarks(b *testing.B, name string, factory StoreFactory) {
	b.Run(name+"/Store", func(b *testing.B) {
		benchmarkStore(b, factory())
	})

	b.Run(name+"/StoreExisting", func(b *testing.B) {
		benchmarkStoreExisting(b, factory())
	})

	b.Run(name+"/Retrieve", func(b *testing.B) {
		benchmarkRetrieve(b, factory())
	})

	b.Run(name+"/Keys", func(b *testing.B) {
		benchmarkKeys(b, factory())
	})
}

// --------------------------------------------------------------------------
// Benchmark functions
// --------------------------------------------------------------------------

func benchmarkStore(b *testing.B, store kvs.IBackingStore) {
	b.Cleanup(func() {
		_ = store.Close()
	})

	value := []byte("benchmark-value")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := store.Store(fmt.Sprintf("bench-key-%d", i), value); err != nil {
			b.Fatalf("Store failed: %v", err)
		}
	}
}

func benchmarkStoreExisting(b *testing.B, store kvs.IBackingStore) {
	b.Cleanup(func() {
		_ = store.Close()
	})

	value := []byte("benchmark-value")
	if err := store.Store("bench-key", value); err != nil {
		b.Fatalf("Store failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := store.Store("bench-key", value); err != nil {
			b.Fatalf("Store failed: %v", err)
		}
	}
}

func benchmarkRetrieve(b *testing.B, store kvs.IBackingStore) {
	b.Cleanup(func() {
		_ = store.Close()
	})

	numKeys := 100
	for i := 0; i < numKeys; i++ {
		if err := store.Store(fmt.Sprintf("bench-key-%d", i), []byte("benchmark-value")); err != nil {
			b.Fatalf("Store failed: %v", err)
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := store.Retrieve(fmt.Sprintf("bench-key-%d", i%numKeys)); err != nil {
			b.Fatalf("Retrieve failed: %v", err)
		}
	}
}

func benchmarkKeys(b *testing.B, store kvs.IBackingStore) {
	b.Cleanup(func() {
		_ = store.Close()
	})

	for i := 0; i < 100; i++ {
		if err := store.Store(fmt.Sprintf("bench-key-%d", i), []byte("benchmark-value")); err != nil {
			b.Fatalf("Store failed: %v", err)
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := store.Keys(); err != nil {
			b.Fatalf("Keys failed: %v", err)
		}
	}
}
