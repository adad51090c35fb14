package bits

import "github.com/hupe1980/docvalues/store"

// LiveBits decodes a packed liveness vector directly from a RandomInput,
// one byte per eight documents, low bit first. It performs no upfront
// decoding, so opening it on a mapped segment file is free.
type LiveBits struct {
	in    store.RandomInput
	off   int64
	count int
}

// NewLiveBits views count bits starting at byte offset off of in.
func NewLiveBits(in store.RandomInput, off int64, count int) (*LiveBits, error) {
	need := off + int64((count+7)>>3)
	if off < 0 || need > in.Len() {
		return nil, store.ErrOutOfBounds
	}
	return &LiveBits{in: in, off: off, count: count}, nil
}

// Get reports whether the document at index is live.
func (l *LiveBits) Get(index int) (bool, error) {
	if index < 0 || index >= l.count {
		return false, ErrIndexOutOfRange
	}
	b, err := l.in.ReadByteAt(l.off + int64(index>>3))
	if err != nil {
		return false, err
	}
	return b&(1<<(index&7)) != 0, nil
}

// Len returns the number of documents covered.
func (l *LiveBits) Len() int {
	return l.count
}
