package arena

import (
	"fmt"
	"iter"
	"log/slog"

	"github.com/TESTMECS/generatitonal-mem/internal/bitmap"
	"github.com/TESTMECS/generatitonal-mem/internal/container"
	"github.com/TESTMECS/generatitonal-mem/internal/conv"
)

type slot[T any] struct {
	gen      uint32
	occupied bool
	val      T
}

// Arena is a generational slot pool.
//
// Invariants kept by every mutating operation:
//   - a slot's generation only increases (mod 2^32)
//   - an index is on the free list iff its slot is vacant
//   - live holds exactly the occupied indices
type Arena[T any] struct {
	slots *container.SegmentedArray[slot[T]]
	free  []uint32
	live  *bitmap.Occupancy

	logger  *slog.Logger
	metrics MetricsObserver

	// borrowing is set while an Update callback holds a pointer into a slot.
	borrowing bool
}

// New creates an empty Arena.
func New[T any](opts ...Option) *Arena[T] {
	cfg := config{
		metrics: NoopMetricsObserver{},
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Arena[T]{
		slots:   container.NewSegmentedArray[slot[T]](cfg.capacity),
		free:    make([]uint32, 0, cfg.capacity),
		live:    bitmap.NewOccupancy(),
		logger:  cfg.logger,
		metrics: cfg.metrics,
	}
}

// Insert stores v and returns a Handle to it.
//
// A slot from the free list is reused at its current generation; otherwise a
// new slot is appended at generation 0.
func (a *Arena[T]) Insert(v T) Handle {
	a.checkBorrow(OpInsert)

	if n := len(a.free); n > 0 {
		idx := a.free[n-1]
		a.free = a.free[:n-1]

		s := a.slots.At(int(idx))
		s.val = v
		s.occupied = true
		a.live.Add(idx)

		a.metrics.OnInsert(true)
		return Handle{Index: idx, Gen: s.gen}
	}

	idx, err := conv.IntToUint32(a.slots.Len())
	if err != nil || idx == nilIndex {
		panic(ErrCapacityExceeded)
	}
	a.slots.Append(slot[T]{val: v, occupied: true})
	a.live.Add(idx)

	a.metrics.OnInsert(false)
	return Handle{Index: idx}
}

// Get returns a copy of the value h refers to.
// It returns false if h is stale, out of range or refers to a vacant slot.
func (a *Arena[T]) Get(h Handle) (T, bool) {
	s, reason := a.resolve(h)
	if reason != ReasonNone {
		a.stale(OpGet, h, reason)
		var zero T
		return zero, false
	}
	return s.val, true
}

// Contains reports whether h currently resolves.
func (a *Arena[T]) Contains(h Handle) bool {
	_, reason := a.resolve(h)
	return reason == ReasonNone
}

// Update calls fn with a pointer to the value h refers to and reports whether
// h resolved. The generation is not bumped, so h and every other Handle to
// the slot stay valid. The pointer must not be retained after fn returns.
//
// fn may read the arena but must not mutate it: any mutating call made from
// inside fn panics with an error wrapping ErrMutationDuringUpdate.
func (a *Arena[T]) Update(h Handle, fn func(v *T)) bool {
	a.checkBorrow(OpUpdate)

	s, reason := a.resolve(h)
	if reason != ReasonNone {
		a.stale(OpUpdate, h, reason)
		return false
	}

	a.borrowing = true
	defer func() { a.borrowing = false }()
	fn(&s.val)
	return true
}

// Replace stores v in the slot h refers to and returns a new Handle.
//
// The generation is bumped, so h and every other outstanding Handle to the
// old contents go stale.
func (a *Arena[T]) Replace(h Handle, v T) (Handle, error) {
	a.checkBorrow(OpReplace)

	s, reason := a.resolve(h)
	if reason != ReasonNone {
		a.stale(OpReplace, h, reason)
		return Nil, &HandleError{Op: OpReplace, Handle: h, Reason: reason}
	}

	s.gen++
	s.val = v

	next := Handle{Index: h.Index, Gen: s.gen}
	a.invalidated(OpReplace, h, next)
	return next, nil
}

// Remove empties the slot h refers to and returns the value it held.
// It returns false if h did not resolve.
func (a *Arena[T]) Remove(h Handle) (T, bool) {
	a.checkBorrow(OpRemove)

	var zero T

	s, reason := a.resolve(h)
	if reason != ReasonNone {
		a.stale(OpRemove, h, reason)
		return zero, false
	}

	old := s.val
	s.gen++
	a.vacate(h.Index, s)

	a.invalidated(OpRemove, h, Nil)
	return old, true
}

// Clear empties every occupied slot, invalidating every Handle issued so far.
// Vacant slots are left untouched and Len is unchanged.
func (a *Arena[T]) Clear() {
	a.checkBorrow(OpClear)

	n := 0
	for idx := range a.live.Indices() {
		s := a.slots.At(int(idx))
		s.gen++
		a.vacate(idx, s)
		a.metrics.OnInvalidate(OpClear)
		n++
	}
	if a.logger != nil && n > 0 {
		a.logger.Debug("arena cleared", "invalidated", n, "slots", a.slots.Len())
	}
}

// Swap exchanges the values stored under a and b.
//
// Generations are bound to indices and are not bumped: afterwards a resolves
// to the value previously reachable through b and vice versa, and both
// Handles remain valid.
func (a *Arena[T]) Swap(ha, hb Handle) error {
	a.checkBorrow(OpSwap)

	sa, reason := a.resolve(ha)
	if reason != ReasonNone {
		a.stale(OpSwap, ha, reason)
		return &HandleError{Op: OpSwap, Handle: ha, Reason: reason}
	}
	sb, reason := a.resolve(hb)
	if reason != ReasonNone {
		a.stale(OpSwap, hb, reason)
		return &HandleError{Op: OpSwap, Handle: hb, Reason: reason}
	}

	sa.val, sb.val = sb.val, sa.val
	return nil
}

// MapInvalidate replaces the slot's value with the result of fn and bumps the
// generation, whether or not fn changed anything.
//
// fn receives the current value and whether the slot is occupied; it returns
// the new value and whether the slot should stay occupied. Only index and
// generation are validated, so a vacant slot whose generation matches h is
// accepted. If the slot ends up occupied the new Handle is returned; if it
// ends up vacant it joins the free list and Nil is returned.
func (a *Arena[T]) MapInvalidate(h Handle, fn func(v T, ok bool) (T, bool)) (Handle, error) {
	a.checkBorrow(OpMapInvalidate)

	s, reason := a.resolve(h)
	if reason != ReasonNone && reason != ReasonVacant {
		a.stale(OpMapInvalidate, h, reason)
		return Nil, &HandleError{Op: OpMapInvalidate, Handle: h, Reason: reason}
	}

	wasOccupied := s.occupied
	v, ok := fn(s.val, wasOccupied)
	s.gen++

	if !ok {
		if wasOccupied {
			a.vacate(h.Index, s)
		} else {
			var zero T
			s.val = zero
		}
		a.invalidated(OpMapInvalidate, h, Nil)
		return Nil, nil
	}

	if !wasOccupied {
		a.unfree(h.Index)
		s.occupied = true
		a.live.Add(h.Index)
	}
	s.val = v

	next := Handle{Index: h.Index, Gen: s.gen}
	a.invalidated(OpMapInvalidate, h, next)
	return next, nil
}

// Len returns the total number of slots, free ones included.
func (a *Arena[T]) Len() int {
	return a.slots.Len()
}

// Live returns the number of occupied slots.
func (a *Arena[T]) Live() int {
	return int(a.live.Cardinality())
}

// Generation returns the current generation of the slot at index.
func (a *Arena[T]) Generation(index uint32) (uint32, bool) {
	s := a.slots.At(int(index))
	if s == nil {
		return 0, false
	}
	return s.gen, true
}

// All returns an iterator over occupied slots in index order.
//
// Slots vacated during iteration are skipped. Values are copies.
func (a *Arena[T]) All() iter.Seq2[Handle, T] {
	return func(yield func(Handle, T) bool) {
		for idx := range a.live.Indices() {
			s := a.slots.At(int(idx))
			if !s.occupied {
				continue
			}
			if !yield(Handle{Index: idx, Gen: s.gen}, s.val) {
				return
			}
		}
	}
}

// Handles returns a Handle for every occupied slot in index order.
func (a *Arena[T]) Handles() []Handle {
	indices := a.live.ToArray()
	out := make([]Handle, 0, len(indices))
	for _, idx := range indices {
		out = append(out, Handle{Index: idx, Gen: a.slots.At(int(idx)).gen})
	}
	return out
}

// checkBorrow panics if op is attempted while an Update callback is running.
func (a *Arena[T]) checkBorrow(op string) {
	if a.borrowing {
		panic(fmt.Errorf("%w: %s", ErrMutationDuringUpdate, op))
	}
}

func (a *Arena[T]) resolve(h Handle) (*slot[T], Reason) {
	if h.IsNil() {
		return nil, ReasonOutOfRange
	}
	s := a.slots.At(int(h.Index))
	if s == nil {
		return nil, ReasonOutOfRange
	}
	if s.gen != h.Gen {
		return nil, ReasonStale
	}
	if !s.occupied {
		return s, ReasonVacant
	}
	return s, ReasonNone
}

// vacate empties an occupied slot and pushes it onto the free list.
func (a *Arena[T]) vacate(idx uint32, s *slot[T]) {
	var zero T
	s.val = zero
	s.occupied = false
	a.live.Remove(idx)
	a.free = append(a.free, idx)
}

// unfree removes idx from the free list.
func (a *Arena[T]) unfree(idx uint32) {
	for i, f := range a.free {
		if f == idx {
			last := len(a.free) - 1
			a.free[i] = a.free[last]
			a.free = a.free[:last]
			return
		}
	}
}

func (a *Arena[T]) invalidated(op string, old, next Handle) {
	a.metrics.OnInvalidate(op)
	if a.logger != nil {
		a.logger.Debug("slot invalidated", "op", op, "handle", old.String(), "next", next.String())
	}
}

func (a *Arena[T]) stale(op string, h Handle, reason Reason) {
	a.metrics.OnStale(op)
	if a.logger != nil {
		a.logger.Debug("handle rejected", "op", op, "handle", h.String(), "reason", reason.String())
	}
}
