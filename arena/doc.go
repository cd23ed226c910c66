// Package arena provides a generational arena: a slot pool that hands out
// lightweight Handles which detect when the slot they point to has been
// reused, cleared or replaced.
//
// # Handles and Generations
//
// A Handle is an (index, generation) pair. Every slot carries a generation
// counter and a Handle resolves only while the slot's counter still equals the
// generation the Handle was issued against. Operations that change what a slot
// logically holds bump the counter:
//
//   - Remove, Clear: the slot is emptied and returned to the free list
//   - Replace: new contents, new Handle
//   - MapInvalidate: any transformation that may change the payload's shape
//
// Insert into a reused slot does not bump again; the removal already did.
//
// Two mutations are exempt and keep every outstanding Handle valid:
//
//   - Update mutates the payload in place
//   - Swap exchanges the payloads stored at two indices; generations stay with
//     their index, so after Swap(a, b) handle a resolves to the value that used
//     to be reachable through b, and vice versa
//
// # Generation Wraparound
//
// Generations are uint32 and wrap on overflow. After 2^32 invalidating
// mutations of the same slot a very old stale Handle resolves again, aliasing
// whatever the slot holds at that point. This is an accepted limit; no epoch
// or tombstone scheme is layered on top.
//
// # Concurrency Model
//
// An Arena is owned by one goroutine at a time and does no locking. Callers
// that share an Arena must serialize access themselves.
//
// # References Into the Arena
//
// Get returns a copy of the payload. Update lends a pointer to the payload for
// the duration of a callback only; the pointer must not escape it. Slot storage
// is segmented and never moves, but a retained pointer would silently observe
// whatever a later Insert puts into a reused slot.
//
// While an Update callback runs the arena is borrowed: reads (Get, Contains,
// NewView, iteration) are allowed, but Insert, Replace, Remove, Clear, Swap,
// MapInvalidate and a nested Update panic with an error wrapping
// ErrMutationDuringUpdate. The lent pointer therefore never outlives the
// generation it was issued under.
//
// A View re-validates its Handle on every Deref and panics with a
// *UseAfterInvalidateError once the slot has been invalidated. The arena must
// not mutate the viewed slot while a View derived from it is in use; a View is
// a scoped assumption of validity, not a way to observe changes.
package arena
