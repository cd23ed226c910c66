package variant

import "errors"

// ErrNilValue is the panic value raised when a Slot is given a nil Value.
// A Slot always holds one of the Value cases.
var ErrNilValue = errors.New("variant: nil value")

// Handle refers to the contents a Slot held at one generation.
type Handle struct {
	Gen uint32
}

// Slot holds exactly one Value and a generation counter.
//
// The generation is uint32 and wraps after 2^32 calls to Set. Slot is not
// safe for concurrent use.
type Slot struct {
	val Value
	gen uint32
}

// New creates a Slot holding v at generation 0. It panics if v is nil.
func New(v Value) *Slot {
	if v == nil {
		panic(ErrNilValue)
	}
	return &Slot{val: v}
}

// Handle returns a Handle to the current contents.
func (s *Slot) Handle() Handle {
	return Handle{Gen: s.gen}
}

// Get returns the current value if h is still current.
func (s *Slot) Get(h Handle) (Value, bool) {
	if h.Gen != s.gen {
		return nil, false
	}
	return s.val, true
}

// Set replaces the payload and bumps the generation, invalidating every
// Handle issued before the call, even if v equals the old payload.
// It panics if v is nil, leaving the slot unchanged.
func (s *Slot) Set(v Value) {
	if v == nil {
		panic(ErrNilValue)
	}
	s.val = v
	s.gen++
}

// Generation returns the current generation.
func (s *Slot) Generation() uint32 {
	return s.gen
}
