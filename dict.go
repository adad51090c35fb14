package docvalues

import (
	"bytes"

	"github.com/hupe1980/docvalues/packed"
	"github.com/hupe1980/docvalues/store"
)

// BytesDict is the general binary accessor: values concatenated in a flat
// byte arena, addressed through a monotonic block-packed offset table of
// count+1 entries. It satisfies OrdLookup.
//
// Immutable and safe for concurrent reads.
type BytesDict struct {
	data    []byte
	offsets *packed.Reader
	count   int
}

// NewBytesDict wraps pre-built storage: data is the concatenated values,
// offsets holds count+1 monotonic byte offsets into data.
func NewBytesDict(data []byte, offsets *packed.Reader, count int) *BytesDict {
	return &BytesDict{data: data, offsets: offsets, count: count}
}

// BuildBytesDict concatenates values (which must already be sorted when the
// dictionary backs a sorted view) and materializes the offset table through
// the monotonic block codec.
func BuildBytesDict(values [][]byte, blockSize int) (*BytesDict, error) {
	var data bytes.Buffer
	var offbuf bytes.Buffer

	w := packed.NewWriter(store.NewOutput(&offbuf), blockSize)
	for _, v := range values {
		if err := w.Add(int64(data.Len())); err != nil {
			return nil, err
		}
		data.Write(v)
	}
	if err := w.Add(int64(data.Len())); err != nil {
		return nil, err
	}
	if err := w.Finish(); err != nil {
		return nil, err
	}

	offsets, err := packed.NewReader(store.NewBytesInput(offbuf.Bytes()), blockSize, int64(len(values))+1)
	if err != nil {
		return nil, err
	}

	return NewBytesDict(data.Bytes(), offsets, len(values)), nil
}

// LookupOrd returns the value for ordinal ord.
func (d *BytesDict) LookupOrd(ord int32) ([]byte, error) {
	if ord < 0 || int(ord) >= d.count {
		return nil, ErrOrdOutOfRange
	}
	start, err := d.offsets.Get(int64(ord))
	if err != nil {
		return nil, err
	}
	end, err := d.offsets.Get(int64(ord) + 1)
	if err != nil {
		return nil, err
	}
	return d.data[start:end], nil
}

// Count returns the number of values in the dictionary.
func (d *BytesDict) Count() int {
	return d.count
}
