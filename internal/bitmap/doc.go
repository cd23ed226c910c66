// Package bitmap tracks which arena slots are occupied.
//
// Occupancy wraps a 32-bit Roaring bitmap keyed by slot index. Arenas that
// churn through many slots keep long runs of occupied or free indices, which
// Roaring stores as compact run containers, and iteration over live slots
// skips free regions without touching slot storage.
package bitmap
