package sorter

import (
	"bytes"

	"github.com/hupe1980/docvalues/bits"
	"github.com/hupe1980/docvalues/packed"
	"github.com/hupe1980/docvalues/store"
)

// MultiSorter merge-sorts the documents of several segments that are each
// already sorted by the same sort order, assigning every document a position
// in the merged global ordering.
type MultiSorter struct {
	fields []SortField
	opts   options
}

// NewMulti creates a MultiSorter for the given sort order.
func NewMulti(fields []SortField, opts ...Option) *MultiSorter {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &MultiSorter{fields: fields, opts: o}
}

// Sort returns one doc map per input segment, translating that segment's
// local doc ids into positions of the merged ordering. New global ids are
// assigned to live documents only; deleted documents still receive a
// position so every local id resolves.
//
// An empty result with a nil error means the segments are already in global
// order (no interleaving is needed) and the caller can concatenate them.
//
// String-typed sort fields are unsupported here and rejected with
// ErrUnhandledSortType.
func (m *MultiSorter) Sort(readers []Reader) ([]*LiveDocsDocMap, error) {
	comparators := make([]*crossComparator, len(m.fields))
	for i := range m.fields {
		c, err := newCrossComparator(&m.fields[i], readers)
		if err != nil {
			return nil, err
		}
		comparators[i] = c
	}

	queue := leafQueue{comparators: comparators}
	builders := make([]*packed.Writer, len(readers))
	buffers := make([]*bytes.Buffer, len(readers))

	for i, r := range readers {
		if r.MaxDoc() == 0 {
			continue
		}
		e := &leafEntry{readerIndex: i, maxDoc: r.MaxDoc(), liveDocs: r.LiveDocs()}
		if err := e.loadKeys(comparators); err != nil {
			return nil, err
		}
		queue.push(e)
	}
	for i := range readers {
		buffers[i] = &bytes.Buffer{}
		builders[i] = packed.NewWriter(store.NewOutput(buffers[i]), m.opts.blockSize)
	}

	var mappedDocID int64
	lastReaderIndex := 0
	sorted := true
	for queue.len() > 0 {
		top := queue.pop()
		if lastReaderIndex > top.readerIndex {
			// Segments interleave: the merge is not a concatenation.
			sorted = false
		}
		lastReaderIndex = top.readerIndex

		if err := builders[top.readerIndex].Add(mappedDocID); err != nil {
			return nil, err
		}
		live, err := top.liveDocs.Get(int(top.doc))
		if err != nil {
			return nil, err
		}
		if live {
			mappedDocID++
		}

		top.doc++
		if top.doc < top.maxDoc {
			if err := top.loadKeys(comparators); err != nil {
				return nil, err
			}
			queue.push(top)
		}
	}

	if sorted {
		m.opts.logger.Debug("segments already in merge order", "segments", len(readers))
		return nil, nil
	}

	maps := make([]*LiveDocsDocMap, len(readers))
	for i, r := range readers {
		if err := builders[i].Finish(); err != nil {
			return nil, err
		}
		mapping, err := packed.NewReader(store.NewBytesInput(buffers[i].Bytes()), m.opts.blockSize, int64(r.MaxDoc()))
		if err != nil {
			return nil, err
		}
		maps[i] = &LiveDocsDocMap{liveDocs: r.LiveDocs(), mapping: mapping}
	}

	m.opts.logger.Debug("cross-segment merge computed",
		"segments", len(readers),
		"merged_docs", mappedDocID,
	)

	return maps, nil
}

// LiveDocsDocMap translates one segment's local doc ids into positions of
// the merged global ordering. Immutable once returned.
type LiveDocsDocMap struct {
	liveDocs bits.Bits
	mapping  *packed.Reader
}

// OldToNew returns the global position for a local doc id.
func (m *LiveDocsDocMap) OldToNew(docID int32) (int32, error) {
	v, err := m.mapping.Get(int64(docID))
	return int32(v), err
}

// Len returns the number of local documents covered.
func (m *LiveDocsDocMap) Len() int {
	return int(m.mapping.Count())
}

// Live reports whether the local doc id is not deleted.
func (m *LiveDocsDocMap) Live(docID int32) (bool, error) {
	return m.liveDocs.Get(int(docID))
}
