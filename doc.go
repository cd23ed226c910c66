// Package genmem provides generational references for Go.
//
// A generational arena hands out Handles instead of pointers or bare indices.
// Each Handle remembers the generation of the slot it was issued against, so
// once the slot is removed, cleared, replaced or reused the Handle stops
// resolving instead of silently aliasing the new contents.
//
// # Packages
//
//   - arena: the slot pool (Arena), its Handle type and View, a re-validating
//     reference that panics on use after invalidate
//   - variant: Slot, the single-element version of the same protocol with a
//     payload that can change type
//
// # Quick Start
//
//	a := arena.New[string]()
//	h := a.Insert("A")
//	a.Remove(h)
//	_, ok := a.Get(h) // false: h is stale
//
//	h2 := a.Insert("C") // reuses slot 0 at generation 1
//	v, _ := arena.NewView(a, h2)
//	fmt.Println(v.Deref())
//
// # Logging
//
// Arenas accept a *slog.Logger through arena.WithLogger. Logger in this
// package wraps slog with helpers for the arena's operations:
//
//	logger := genmem.NewTextLogger(slog.LevelDebug)
//	a := arena.New[string](arena.WithLogger(logger.Logger))
//
// # Error Handling
//
// A stale Handle is an expected outcome, not a failure: Get and Remove report
// it with a false result, Replace, Swap and MapInvalidate return an error
// wrapping arena.ErrInvalidHandle. Only View.Deref panics, with an
// *arena.UseAfterInvalidateError.
package genmem
