// Package conv provides checked integer conversion utilities.
//
// Slot indices and generations are fixed-width uint32 values while Go's
// container lengths are int. These helpers perform the bounds checks at the
// boundary so overflow is reported instead of silently truncated.
package conv
