// Package container implements container data structures.
package container

const (
	// segmentBits determines the size of each segment.
	// 10 bits = 1024 items per segment.
	segmentBits = 10
	segmentSize = 1 << segmentBits
	segmentMask = segmentSize - 1
)

// SegmentedArray is an append-only array split into fixed-size segments.
//
// Elements never move once appended, so a pointer returned by At stays
// attached to the same element for the lifetime of the array. Growth only
// allocates new segments; existing ones are left untouched.
//
// SegmentedArray is not safe for concurrent use.
type SegmentedArray[T any] struct {
	segments []*Segment[T]
	n        int
}

// Segment is a fixed-size array of items.
type Segment[T any] struct {
	items [segmentSize]T
}

// NewSegmentedArray creates a new SegmentedArray with room for at least
// capacity items before the segment directory has to grow.
func NewSegmentedArray[T any](capacity int) *SegmentedArray[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &SegmentedArray[T]{
		segments: make([]*Segment[T], 0, (capacity+segmentMask)>>segmentBits),
	}
}

// Len returns the number of appended items.
func (sa *SegmentedArray[T]) Len() int {
	return sa.n
}

// Append adds value at the end and returns its index.
func (sa *SegmentedArray[T]) Append(value T) int {
	idx := sa.n
	segIdx := idx >> segmentBits
	if segIdx == len(sa.segments) {
		sa.segments = append(sa.segments, &Segment[T]{})
	}
	sa.segments[segIdx].items[idx&segmentMask] = value
	sa.n++
	return idx
}

// At returns a pointer to the item at index, or nil if index is out of bounds.
func (sa *SegmentedArray[T]) At(index int) *T {
	if index < 0 || index >= sa.n {
		return nil
	}
	return &sa.segments[index>>segmentBits].items[index&segmentMask]
}

// All calls fn for every item in index order until fn returns false.
func (sa *SegmentedArray[T]) All(fn func(index int, item *T) bool) {
	for i := 0; i < sa.n; i++ {
		if !fn(i, &sa.segments[i>>segmentBits].items[i&segmentMask]) {
			return
		}
	}
}
