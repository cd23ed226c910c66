package arena

// View is a short-lived, re-validating reference to an arena element.
//
// A View holds the arena and a copy of the Handle; it owns nothing. Every
// Deref resolves the Handle again, so a View never hands out a value from a
// slot that has been invalidated since construction. Its validity window ends
// the moment the viewed slot's generation changes, which may be well before
// the View itself goes out of scope.
//
// Callers must not mutate the viewed slot through the arena while using a
// View. Code that wants a recoverable check should call Arena.Get instead.
type View[T any] struct {
	arena  *Arena[T]
	handle Handle
}

// NewView returns a View of h. It returns false if h does not resolve or a
// is nil.
func NewView[T any](a *Arena[T], h Handle) (View[T], bool) {
	if a == nil {
		return View[T]{}, false
	}
	if _, reason := a.resolve(h); reason != ReasonNone {
		a.stale(OpView, h, reason)
		return View[T]{}, false
	}
	return View[T]{arena: a, handle: h}, true
}

// Deref returns a copy of the viewed value.
//
// It panics with a *UseAfterInvalidateError if the slot was invalidated after
// the View was constructed.
func (v View[T]) Deref() T {
	if v.arena == nil {
		panic(&UseAfterInvalidateError{Handle: Nil, Reason: ReasonOutOfRange})
	}
	s, reason := v.arena.resolve(v.handle)
	if reason != ReasonNone {
		panic(&UseAfterInvalidateError{Handle: v.handle, Reason: reason})
	}
	return s.val
}

// Valid reports whether Deref would succeed.
func (v View[T]) Valid() bool {
	if v.arena == nil {
		return false
	}
	_, reason := v.arena.resolve(v.handle)
	return reason == ReasonNone
}

// Handle returns the viewed Handle.
func (v View[T]) Handle() Handle {
	return v.handle
}
