package arena

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/TESTMECS/generatitonal-mem/internal/conv"
)

// nilIndex is never assigned to a slot.
const nilIndex = math.MaxUint32

// MaxSlots is the maximum number of slots an Arena can hold.
const MaxSlots = nilIndex

// Handle references a slot by index and the generation it was issued against.
//
// A Handle owns nothing. It is a capability to attempt access, not a guarantee
// of validity. Handles are comparable and can be used as map keys.
type Handle struct {
	Index uint32
	Gen   uint32
}

// Nil is a Handle that never resolves.
var Nil = Handle{Index: nilIndex}

// IsNil reports whether h is the Nil handle.
func (h Handle) IsNil() bool {
	return h.Index == nilIndex
}

// String formats h as "<index>v<generation>", e.g. "3v1".
func (h Handle) String() string {
	if h.IsNil() {
		return "nil"
	}
	return fmt.Sprintf("%dv%d", h.Index, h.Gen)
}

// ParseHandle parses the format produced by Handle.String.
func ParseHandle(s string) (Handle, error) {
	if s == "nil" {
		return Nil, nil
	}
	idx, gen, ok := strings.Cut(s, "v")
	if !ok {
		return Handle{}, fmt.Errorf("parse handle %q: missing generation", s)
	}
	index, err := conv.ParseUint32(idx)
	if err != nil {
		return Handle{}, fmt.Errorf("parse handle %q: %w", s, err)
	}
	if index == nilIndex {
		return Handle{}, fmt.Errorf("parse handle %q: %w", s, errors.New("index out of range"))
	}
	g, err := conv.ParseUint32(gen)
	if err != nil {
		return Handle{}, fmt.Errorf("parse handle %q: %w", s, err)
	}
	return Handle{Index: index, Gen: g}, nil
}
