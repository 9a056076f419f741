package instrument

import (
	"fmt"

	"github.com/VictoriaMetrics/metrics"

	"github.com/espeer/zep-kvs/lib/kvs"
)

type storeImpl struct {
	inner kvs.IBackingStore

	keysOps     *metrics.Counter
	storeOps    *metrics.Counter
	retrieveOps *metrics.Counter
	removeOps   *metrics.Counter

	keysErrs     *metrics.Counter
	storeErrs    *metrics.Counter
	retrieveErrs *metrics.Counter
	removeErrs   *metrics.Counter
}

// New wraps a backing store with per-operation counters registered in the
// default metrics set. The name labels the wrapped store (e.g. "user") so
// several instrumented stores can coexist in one process.
func New(name string, inner kvs.IBackingStore) kvs.IBackingStore {
	counter := func(kind, op string) *metrics.Counter {
		return metrics.GetOrCreateCounter(
			fmt.Sprintf(`zep_kvs_%s_total{op=%q,store=%q}`, kind, op, name))
	}
	return &storeImpl{
		inner:        inner,
		keysOps:      counter("ops", "keys"),
		storeOps:     counter("ops", "store"),
		retrieveOps:  counter("ops", "retrieve"),
		removeOps:    counter("ops", "remove"),
		keysErrs:     counter("errors", "keys"),
		storeErrs:    counter("errors", "store"),
		retrieveErrs: counter("errors", "retrieve"),
		removeErrs:   counter("errors", "remove"),
	}
}

// --------------------------------------------------------------------------
// Interface Methods (docu see kvs/interface.go)
// --------------------------------------------------------------------------

func (s *storeImpl) Keys() ([]string, error) {
	s.keysOps.Inc()
	keys, err := s.inner.Keys()
	if err != nil {
		s.keysErrs.Inc()
	}
	return keys, err
}

func (s *storeImpl) Store(key string, value []byte) error {
	s.storeOps.Inc()
	err := s.inner.Store(key, value)
	if err != nil {
		s.storeErrs.Inc()
	}
	return err
}

func (s *storeImpl) Retrieve(key string) ([]byte, bool, error) {
	s.retrieveOps.Inc()
	value, found, err := s.inner.Retrieve(key)
	if err != nil {
		s.retrieveErrs.Inc()
	}
	return value, found, err
}

func (s *storeImpl) Remove(key string) error {
	s.removeOps.Inc()
	err := s.inner.Remove(key)
	if err != nil {
		s.removeErrs.Inc()
	}
	return err
}

func (s *storeImpl) Close() error {
	return s.inner.Close()
}
