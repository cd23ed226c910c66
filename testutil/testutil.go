package testutil

import (
	"fmt"
	"math/rand"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// OpKind enumerates arena operations.
type OpKind uint8

const (
	OpInsert OpKind = iota
	OpGet
	OpUpdate
	OpReplace
	OpRemove
	OpSwap
	OpMapInvalidate
	OpClear
	numOpKinds
)

func (k OpKind) String() string {
	switch k {
	case OpInsert:
		return "insert"
	case OpGet:
		return "get"
	case OpUpdate:
		return "update"
	case OpReplace:
		return "replace"
	case OpRemove:
		return "remove"
	case OpSwap:
		return "swap"
	case OpMapInvalidate:
		return "map_invalidate"
	case OpClear:
		return "clear"
	default:
		return fmt.Sprintf("op(%d)", uint8(k))
	}
}

// Mix holds relative weights per OpKind. Kinds missing from the map are
// never generated.
type Mix map[OpKind]int

// DefaultMix favors inserts and lookups, with occasional clears.
var DefaultMix = Mix{
	OpInsert:        30,
	OpGet:           20,
	OpUpdate:        10,
	OpReplace:       10,
	OpRemove:        15,
	OpSwap:          5,
	OpMapInvalidate: 8,
	OpClear:         2,
}

// Op is one generated operation.
//
// A and B pick handles from the caller's pool of every handle ever issued
// (modulo its size), so stale handles are exercised as often as live ones.
// Value is the payload for inserting operations.
type Op struct {
	Kind  OpKind
	A, B  int
	Value int
}

// Ops generates n operations drawn from mix.
func (r *RNG) Ops(n int, mix Mix) []Op {
	r.mu.Lock()
	defer r.mu.Unlock()

	total := 0
	for k := OpKind(0); k < numOpKinds; k++ {
		total += mix[k]
	}
	if total <= 0 {
		return nil
	}

	ops := make([]Op, n)
	for i := range ops {
		pick := r.rand.Intn(total)
		kind := OpKind(0)
		for ; kind < numOpKinds; kind++ {
			if pick < mix[kind] {
				break
			}
			pick -= mix[kind]
		}
		ops[i] = Op{
			Kind:  kind,
			A:     r.rand.Intn(1 << 16),
			B:     r.rand.Intn(1 << 16),
			Value: r.rand.Int(),
		}
	}
	return ops
}
