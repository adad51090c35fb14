package sorter

import (
	"bytes"
	"slices"

	"github.com/hupe1980/docvalues/packed"
	"github.com/hupe1980/docvalues/store"
)

// Sorter computes the permutation a field-based sort order induces on a
// single segment.
type Sorter struct {
	fields []SortField
	opts   options
}

// New creates a Sorter for the given sort order. The order of fields is the
// order of comparison; doc id is the final tie-break.
func New(fields []SortField, opts ...Option) *Sorter {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Sorter{fields: fields, opts: o}
}

// SortReader computes the old→new permutation for the segment behind r.
//
// A nil DocMap with a nil error means the segment already satisfies the sort
// order and no permutation is needed. Deleted documents appear in the map as
// well; the sorted view marks them deleted elsewhere.
func (s *Sorter) SortReader(r Reader) (*DocMap, error) {
	comparator, err := newDocComparator(s.fields, r)
	if err != nil {
		return nil, err
	}
	return s.sort(r.MaxDoc(), comparator.compare)
}

// sort computes the permutation over an arbitrary comparator.
func (s *Sorter) sort(maxDoc int32, compare func(d1, d2 int32) (int, error)) (*DocMap, error) {
	// Fast path: a linear scan decides whether any permutation is needed at
	// all before an O(n log n) sort is attempted.
	sorted := true
	for i := int32(1); i < maxDoc; i++ {
		c, err := compare(i-1, i)
		if err != nil {
			return nil, err
		}
		if c > 0 {
			sorted = false
			break
		}
	}
	if sorted {
		s.opts.logger.WithMaxDoc(maxDoc).Debug("segment already in sort order")
		return nil, nil
	}

	docs := make([]int32, maxDoc)
	for i := range docs {
		docs[i] = int32(i)
	}

	var sortErr error
	slices.SortStableFunc(docs, func(d1, d2 int32) int {
		if sortErr != nil {
			return 0
		}
		c, err := compare(d1, d2)
		if err != nil {
			sortErr = err
		}
		return c
	})
	if sortErr != nil {
		return nil, sortErr
	}

	// docs is now the new→old table. Near-sorted segments make it almost
	// monotonic, which the block codec stores in next to nothing.
	newToOld, err := materialize(docs, s.opts.blockSize)
	if err != nil {
		return nil, err
	}

	// Invert in place: docs becomes the old→new table.
	for i := int32(0); i < maxDoc; i++ {
		old, err := newToOld.Get(int64(i))
		if err != nil {
			return nil, err
		}
		docs[old] = i
	}

	oldToNew, err := materialize(docs, s.opts.blockSize)
	if err != nil {
		return nil, err
	}

	s.opts.logger.WithMaxDoc(maxDoc).Debug("segment permutation computed")

	return &DocMap{
		maxDoc:   maxDoc,
		oldToNew: oldToNew,
		newToOld: newToOld,
	}, nil
}

// materialize writes docs through the block codec and reopens it as a sealed
// random-access table.
func materialize(docs []int32, blockSize int) (*packed.Reader, error) {
	var buf bytes.Buffer
	w := packed.NewWriter(store.NewOutput(&buf), blockSize)
	for _, d := range docs {
		if err := w.Add(int64(d)); err != nil {
			return nil, err
		}
	}
	if err := w.Finish(); err != nil {
		return nil, err
	}
	return packed.NewReader(store.NewBytesInput(buf.Bytes()), blockSize, int64(len(docs)))
}
