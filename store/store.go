// Package store provides the byte-level plumbing consumed by the codec and
// doc-values layers: a little-endian scalar writer and a random-access,
// byte-addressable input capability.
//
// It is deliberately not a directory or file abstraction; callers own file
// lifecycle and locking. Inputs are immutable once constructed and safe for
// concurrent readers.
package store

import "errors"

var (
	// ErrOutOfBounds is returned when a read goes past the end of an input.
	ErrOutOfBounds = errors.New("store: read out of bounds")

	// ErrCorrupted is returned when a varint or header cannot be decoded.
	ErrCorrupted = errors.New("store: corrupted data")
)

// RandomInput is random-access, byte-addressable read capability over an
// immutable byte sequence.
//
// Implementations must be safe for unbounded concurrent reads.
type RandomInput interface {
	// ReadByteAt returns the byte at the given offset.
	ReadByteAt(off int64) (byte, error)

	// Slice returns a zero-copy view of [off, off+length).
	// The returned slice must not be modified.
	Slice(off, length int64) ([]byte, error)

	// Len returns the total length in bytes.
	Len() int64
}

// BytesInput is an in-memory RandomInput.
type BytesInput struct {
	data []byte
}

// NewBytesInput wraps data as a RandomInput. The caller must not modify data
// afterwards.
func NewBytesInput(data []byte) *BytesInput {
	return &BytesInput{data: data}
}

// ReadByteAt returns the byte at off.
func (b *BytesInput) ReadByteAt(off int64) (byte, error) {
	if off < 0 || off >= int64(len(b.data)) {
		return 0, ErrOutOfBounds
	}
	return b.data[off], nil
}

// Slice returns a zero-copy view of [off, off+length).
func (b *BytesInput) Slice(off, length int64) ([]byte, error) {
	if off < 0 || length < 0 || off+length > int64(len(b.data)) {
		return nil, ErrOutOfBounds
	}
	return b.data[off : off+length], nil
}

// Len returns the total length in bytes.
func (b *BytesInput) Len() int64 {
	return int64(len(b.data))
}
