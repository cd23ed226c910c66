package variant

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlot_Get(t *testing.T) {
	s := New(Int(7))
	h := s.Handle()
	assert.Equal(t, Handle{Gen: 0}, h)

	v, ok := s.Get(h)
	require.True(t, ok)
	assert.Equal(t, Int(7), v)

	// Handle() does not mutate.
	assert.Equal(t, h, s.Handle())
}

func TestSlot_Set(t *testing.T) {
	tests := []struct {
		name string
		from Value
		to   Value
	}{
		{name: "type change", from: Int(1), to: Text("one")},
		{name: "same type", from: Text("a"), to: Text("b")},
		{name: "same value", from: Bool(true), to: Bool(true)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(tt.from)
			old := s.Handle()

			s.Set(tt.to)

			_, ok := s.Get(old)
			assert.False(t, ok, "set must invalidate prior handles")

			h := s.Handle()
			assert.Equal(t, old.Gen+1, h.Gen)
			v, ok := s.Get(h)
			require.True(t, ok)
			assert.Equal(t, tt.to, v)
		})
	}
}

func TestSlot_Wraparound(t *testing.T) {
	s := New(Int(0))
	s.gen = math.MaxUint32
	ancient := Handle{Gen: 0}

	s.Set(Text("wrapped"))

	assert.Equal(t, uint32(0), s.Generation())
	v, ok := s.Get(ancient)
	require.True(t, ok, "generations wrap after 2^32 sets")
	assert.Equal(t, Text("wrapped"), v)
}

func TestValue_Kinds(t *testing.T) {
	tests := []struct {
		v    Value
		kind Kind
		str  string
	}{
		{v: Int(-3), kind: KindInt, str: "Int(-3)"},
		{v: Text(`say "hi"`), kind: KindText, str: `Text("say \"hi\"")`},
		{v: Bool(false), kind: KindBool, str: "Bool(false)"},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			assert.Equal(t, tt.kind, tt.v.Kind())
			assert.Equal(t, tt.str, tt.v.String())
		})
	}
	assert.Equal(t, "kind(9)", Kind(9).String())
}

func TestSlot_NilValue(t *testing.T) {
	assert.PanicsWithValue(t, ErrNilValue, func() { New(nil) })

	s := New(Bool(true))
	h := s.Handle()
	assert.PanicsWithValue(t, ErrNilValue, func() { s.Set(nil) })

	v, ok := s.Get(h)
	require.True(t, ok, "rejected Set must not bump the generation")
	assert.Equal(t, Bool(true), v)
}
