// Package testing provides standardised tests and benchmarks for storage
// backends that satisfy the kvs.IBackingStore interface.
//
// The package contains:
//   - RunBackingStoreTests: the shared contract suite (store/retrieve,
//     atomic overwrite, absence semantics, idempotent removal, key listing
//     completeness, empty and binary values)
//   - RunBackingStoreBenchmarks: throughput benchmarks for common operations
//
// Example usage:
//
//	factory := func() kvs.IBackingStore {
//		return mstore.New()
//	}
//
//	storetesting.RunBackingStoreTests(t, "mstore", factory)
//	storetesting.RunBackingStoreBenchmarks(b, "mstore", factory)
package testing
