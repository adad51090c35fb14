package bits

import (
	"iter"

	"github.com/RoaringBitmap/roaring/v2"
)

// SparseBits is a Bits backed by a roaring bitmap, appropriate when the set
// bits are sparse or clustered (e.g. live-docs after heavy deletion).
//
// The bitmap is treated as frozen after construction.
type SparseBits struct {
	rb      *roaring.Bitmap
	numBits int
}

// NewSparseBits wraps rb as a numBits-sized bit vector. The caller must not
// mutate rb afterwards.
func NewSparseBits(rb *roaring.Bitmap, numBits int) *SparseBits {
	return &SparseBits{rb: rb, numBits: numBits}
}

// SparseBitsFromSlice builds a SparseBits from the given set indexes.
func SparseBitsFromSlice(set []uint32, numBits int) *SparseBits {
	rb := roaring.New()
	rb.AddMany(set)
	return &SparseBits{rb: rb, numBits: numBits}
}

// Get reports whether the bit at index is set.
func (s *SparseBits) Get(index int) (bool, error) {
	if index < 0 || index >= s.numBits {
		return false, ErrIndexOutOfRange
	}
	return s.rb.Contains(uint32(index)), nil
}

// Len returns the size in bits.
func (s *SparseBits) Len() int {
	return s.numBits
}

// Cardinality returns the number of set bits.
func (s *SparseBits) Cardinality() int {
	return int(s.rb.GetCardinality())
}

// Iterator yields the set bit indexes in increasing order.
func (s *SparseBits) Iterator() iter.Seq[uint32] {
	return func(yield func(uint32) bool) {
		it := s.rb.Iterator()
		for it.HasNext() {
			if !yield(it.Next()) {
				return
			}
		}
	}
}
