// Package bits provides the read-only liveness capability consumed by the
// sorter and merge layers: a bit-vector answering "is this document live".
//
// All implementations are immutable after construction and safe for
// concurrent reads.
package bits

import "errors"

// ErrIndexOutOfRange is returned when a bit index is outside [0, Len).
var ErrIndexOutOfRange = errors.New("bits: index out of range")

// Bits is a read-only bit vector. Get reports whether the bit at index is
// set; it may fail when the backing storage performs I/O.
type Bits interface {
	Get(index int) (bool, error)
	Len() int
}

// MatchAll is a Bits with every bit set. It models "no deletions".
type MatchAll struct {
	Size int
}

// Get always reports true.
func (m MatchAll) Get(index int) (bool, error) { return true, nil }

// Len returns the size in bits.
func (m MatchAll) Len() int { return m.Size }

// MatchNone is a Bits with no bit set.
type MatchNone struct {
	Size int
}

// Get always reports false.
func (m MatchNone) Get(index int) (bool, error) { return false, nil }

// Len returns the size in bits.
func (m MatchNone) Len() int { return m.Size }
