package bitmap

import (
	"iter"

	"github.com/RoaringBitmap/roaring/v2"
)

// Occupancy is the set of occupied slot indices.
type Occupancy struct {
	rb *roaring.Bitmap
}

// NewOccupancy creates an empty occupancy set.
func NewOccupancy() *Occupancy {
	return &Occupancy{
		rb: roaring.New(),
	}
}

// Add marks index as occupied.
func (o *Occupancy) Add(index uint32) {
	o.rb.Add(index)
}

// Remove marks index as free.
func (o *Occupancy) Remove(index uint32) {
	o.rb.Remove(index)
}

// Contains reports whether index is occupied.
func (o *Occupancy) Contains(index uint32) bool {
	return o.rb.Contains(index)
}

// Cardinality returns the number of occupied indices.
func (o *Occupancy) Cardinality() uint64 {
	return o.rb.GetCardinality()
}

// IsEmpty returns true if no index is occupied.
func (o *Occupancy) IsEmpty() bool {
	return o.rb.IsEmpty()
}

// Indices returns an iterator over occupied indices in ascending order.
//
// The iterator works on a snapshot, so the set may be modified while
// iterating.
func (o *Occupancy) Indices() iter.Seq[uint32] {
	snapshot := o.rb.Clone()
	return func(yield func(uint32) bool) {
		it := snapshot.Iterator()
		for it.HasNext() {
			if !yield(it.Next()) {
				return
			}
		}
	}
}

// ToArray returns the occupied indices in ascending order.
func (o *Occupancy) ToArray() []uint32 {
	return o.rb.ToArray()
}

// Clear removes all indices.
func (o *Occupancy) Clear() {
	o.rb.Clear()
}
