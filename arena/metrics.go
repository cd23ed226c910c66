package arena

import "sync/atomic"

// Operation names passed to MetricsObserver and used in HandleError.Op.
const (
	OpInsert        = "insert"
	OpGet           = "get"
	OpUpdate        = "update"
	OpReplace       = "replace"
	OpRemove        = "remove"
	OpClear         = "clear"
	OpSwap          = "swap"
	OpMapInvalidate = "map_invalidate"
	OpView          = "view"
)

// MetricsObserver receives arena events.
// Implement this interface to integrate with monitoring systems.
type MetricsObserver interface {
	// OnInsert is called after each insert. reused is true when the value
	// went into a slot taken from the free list.
	OnInsert(reused bool)

	// OnInvalidate is called once per slot whose generation was bumped.
	OnInvalidate(op string)

	// OnStale is called when op rejected a handle.
	OnStale(op string)
}

// NoopMetricsObserver is a no-op implementation of MetricsObserver.
type NoopMetricsObserver struct{}

func (NoopMetricsObserver) OnInsert(bool)       {}
func (NoopMetricsObserver) OnInvalidate(string) {}
func (NoopMetricsObserver) OnStale(string)      {}

// BasicMetricsObserver provides simple in-memory counters.
// It is safe to share between arenas owned by different goroutines.
type BasicMetricsObserver struct {
	Inserts        atomic.Int64
	Reuses         atomic.Int64
	Removes        atomic.Int64
	Replaces       atomic.Int64
	Clears         atomic.Int64
	MapInvalidates atomic.Int64
	Stale          atomic.Int64
}

func (m *BasicMetricsObserver) OnInsert(reused bool) {
	m.Inserts.Add(1)
	if reused {
		m.Reuses.Add(1)
	}
}

func (m *BasicMetricsObserver) OnInvalidate(op string) {
	switch op {
	case OpRemove:
		m.Removes.Add(1)
	case OpReplace:
		m.Replaces.Add(1)
	case OpClear:
		m.Clears.Add(1)
	case OpMapInvalidate:
		m.MapInvalidates.Add(1)
	}
}

func (m *BasicMetricsObserver) OnStale(string) {
	m.Stale.Add(1)
}

// MetricsSnapshot is a point-in-time copy of BasicMetricsObserver counters.
type MetricsSnapshot struct {
	Inserts        int64
	Reuses         int64
	Removes        int64
	Replaces       int64
	Clears         int64
	MapInvalidates int64
	Stale          int64
}

// Invalidations returns the total number of generation bumps.
func (s MetricsSnapshot) Invalidations() int64 {
	return s.Removes + s.Replaces + s.Clears + s.MapInvalidates
}

// Snapshot returns the current counter values.
func (m *BasicMetricsObserver) Snapshot() MetricsSnapshot {
	return MetricsSnapshot{
		Inserts:        m.Inserts.Load(),
		Reuses:         m.Reuses.Load(),
		Removes:        m.Removes.Load(),
		Replaces:       m.Replaces.Load(),
		Clears:         m.Clears.Load(),
		MapInvalidates: m.MapInvalidates.Load(),
		Stale:          m.Stale.Load(),
	}
}
