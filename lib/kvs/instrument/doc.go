// Package instrument provides a metrics-collecting decorator for any
// kvs.IBackingStore. The wrapper counts operations and failures per
// operation kind using VictoriaMetrics counters:
//
//	zep_kvs_ops_total{op="store",store="user"}
//	zep_kvs_errors_total{op="store",store="user"}
//
// Nothing in the core depends on this package; applications that want
// operational visibility wrap their backend before handing it to
// kvs.New:
//
//	backend, err := scope.User.NewStore(id)
//	store := kvs.New(instrument.New("user", backend))
//
// The counters live in the default metrics set, so embedding applications
// expose them with metrics.WritePrometheus alongside their own.
package instrument
