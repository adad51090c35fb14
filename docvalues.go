package docvalues

// LongValues maps a dense index (a document id or a dictionary position) to
// a 64-bit integer. It is the minimal accessor contract shared by ordinal
// tables, doc-id maps and offset tables; a sealed packed.Reader satisfies it,
// as does any directly stored column.
//
// Get may fail when the backing storage performs I/O.
type LongValues interface {
	Get(index int64) (int64, error)
}

// LongValuesFunc adapts a plain function to LongValues.
type LongValuesFunc func(index int64) (int64, error)

// Get calls f.
func (f LongValuesFunc) Get(index int64) (int64, error) {
	return f(index)
}

// SliceLongValues is a LongValues over an in-memory column.
type SliceLongValues []int64

// Get returns the value at index.
func (s SliceLongValues) Get(index int64) (int64, error) {
	if index < 0 || index >= int64(len(s)) {
		return 0, ErrOrdOutOfRange
	}
	return s[index], nil
}

// BinaryDocValues maps a document id to a byte-string value. Documents
// without a value yield an empty slice.
type BinaryDocValues interface {
	Get(docID int32) ([]byte, error)
}

// OrdLookup is the byte-dictionary capability: it resolves a dictionary
// ordinal to its byte-string value.
type OrdLookup interface {
	// LookupOrd returns the value for ordinal ord in [0, Count).
	LookupOrd(ord int32) ([]byte, error)

	// Count returns the number of values in the dictionary.
	Count() int
}
