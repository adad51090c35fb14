package bits

import "math/bits"

// FixedBits is a word-packed bit vector view over a pre-built []uint64.
// The slice is shared, never copied; callers must not mutate it after
// construction.
type FixedBits struct {
	words   []uint64
	numBits int
}

// NewFixedBits wraps words as a numBits-sized bit vector.
func NewFixedBits(words []uint64, numBits int) *FixedBits {
	return &FixedBits{words: words, numBits: numBits}
}

// WordsForBits returns the number of uint64 words needed for numBits.
func WordsForBits(numBits int) int {
	if numBits == 0 {
		return 0
	}
	return (numBits-1)>>6 + 1
}

// Get reports whether the bit at index is set.
func (f *FixedBits) Get(index int) (bool, error) {
	if index < 0 || index >= f.numBits {
		return false, ErrIndexOutOfRange
	}
	return f.words[index>>6]&(1<<(index&63)) != 0, nil
}

// Len returns the size in bits.
func (f *FixedBits) Len() int {
	return f.numBits
}

// Cardinality returns the number of set bits.
func (f *FixedBits) Cardinality() int {
	var n int
	for _, w := range f.words {
		n += bits.OnesCount64(w)
	}
	return n
}
