package docvalues

import (
	"bytes"
	"iter"

	"github.com/hupe1980/docvalues/packed"
)

// Sorted is a sorted doc-values view: a per-document ordinal accessor over a
// lexicographically ordered byte dictionary. Ordinals are in [-1, ValueCount),
// -1 meaning "no value for this document".
//
// The dictionary backing is a tagged variant chosen at construction:
// a general OrdLookup, or a CompressedDict whose native term lookup and
// iteration are preferred over the generic binary search. Callers never
// branch on the representation.
//
// Sorted is immutable and safe for concurrent reads.
type Sorted struct {
	ordinals   LongValues
	general    OrdLookup
	compressed *CompressedDict
	valueCount int
}

// Compile time check to ensure Sorted satisfies BinaryDocValues.
var _ BinaryDocValues = (*Sorted)(nil)

// NewSorted creates a view over a general binary accessor.
func NewSorted(ordinals LongValues, dict OrdLookup, valueCount int) *Sorted {
	return &Sorted{ordinals: ordinals, general: dict, valueCount: valueCount}
}

// NewSortedCompressed creates a view over a compressed dictionary, enabling
// its native term lookup and block-wise iteration.
func NewSortedCompressed(ordinals LongValues, dict *CompressedDict) *Sorted {
	return &Sorted{ordinals: ordinals, compressed: dict, valueCount: dict.Count()}
}

// GetOrd returns the ordinal assigned to docID, or -1 if the document has no
// value.
func (s *Sorted) GetOrd(docID int32) (int32, error) {
	v, err := s.ordinals.Get(int64(docID))
	if err != nil {
		return 0, err
	}
	return int32(v), nil
}

// LookupOrd returns the dictionary value for a valid ordinal. Passing an
// ordinal outside [0, ValueCount) is a caller error.
func (s *Sorted) LookupOrd(ord int32) ([]byte, error) {
	if ord < 0 || int(ord) >= s.valueCount {
		return nil, ErrOrdOutOfRange
	}
	if s.compressed != nil {
		return s.compressed.LookupOrd(ord)
	}
	return s.general.LookupOrd(ord)
}

// ValueCount returns the dictionary size.
func (s *Sorted) ValueCount() int {
	return s.valueCount
}

// LookupTerm returns the ordinal of key if present in the dictionary.
// Otherwise it returns -(insertionPoint+1), where insertionPoint is the
// ordinal of the first entry greater than key (or ValueCount if none);
// callers recover it as -(result+1).
func (s *Sorted) LookupTerm(key []byte) (int32, error) {
	if s.compressed != nil {
		return s.compressed.LookupTerm(key)
	}

	low, high := int32(0), int32(s.valueCount)-1
	for low <= high {
		mid := low + (high-low)/2
		term, err := s.LookupOrd(mid)
		if err != nil {
			return 0, err
		}
		switch cmp := bytes.Compare(term, key); {
		case cmp < 0:
			low = mid + 1
		case cmp > 0:
			high = mid - 1
		default:
			return mid, nil // key found
		}
	}
	return -(low + 1), nil // key not found
}

// Get returns the value for docID, or an empty slice when the document has
// none. It satisfies the plain BinaryDocValues contract.
func (s *Sorted) Get(docID int32) ([]byte, error) {
	ord, err := s.GetOrd(docID)
	if err != nil {
		return nil, err
	}
	if ord == -1 {
		return []byte{}, nil
	}
	return s.LookupOrd(ord)
}

// Terms yields the dictionary values in ordinal order. The sequence is
// finite and restartable. A compressed dictionary iterates natively,
// block-at-a-time; otherwise the iterator is synthesized by driving
// LookupOrd across ordinals.
func (s *Sorted) Terms() iter.Seq2[[]byte, error] {
	if s.compressed != nil {
		return s.compressed.Terms()
	}
	return func(yield func([]byte, error) bool) {
		for ord := int32(0); int(ord) < s.valueCount; ord++ {
			term, err := s.LookupOrd(ord)
			if !yield(term, err) || err != nil {
				return
			}
		}
	}
}

// Compile time check: a sealed packed reader satisfies the ordinal accessor
// contract.
var _ LongValues = (*packed.Reader)(nil)
