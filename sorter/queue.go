package sorter

import (
	"github.com/hupe1980/docvalues"
	"github.com/hupe1980/docvalues/bits"
)

// crossComparator orders documents living in different segments by one sort
// field. Keys are fetched through the per-segment accessors with the field's
// missing substitute applied.
type crossComparator struct {
	source  *fieldSource // typ/reverse/missing; per-segment accessors below
	values  []docvalues.LongValues
	present []bits.Bits
}

func newCrossComparator(f *SortField, readers []Reader) (*crossComparator, error) {
	switch f.Type {
	case TypeLong, TypeInt, TypeDouble, TypeFloat:
	default:
		return nil, &ErrUnhandledSortType{Type: f.Type}
	}

	c := &crossComparator{
		values:  make([]docvalues.LongValues, len(readers)),
		present: make([]bits.Bits, len(readers)),
	}
	for i, r := range readers {
		src, err := newFieldSource(f, r)
		if err != nil {
			return nil, err
		}
		if i == 0 {
			c.source = src
		}
		c.values[i] = src.values
		c.present[i] = src.present
	}
	if c.source == nil {
		// No readers; type checks above still apply.
		c.source = &fieldSource{typ: f.Type, reverse: f.Reverse}
	}
	return c, nil
}

// key returns the comparison key for a document of one segment.
func (c *crossComparator) key(readerIndex int, doc int32) (int64, error) {
	ok, err := c.present[readerIndex].Get(int(doc))
	if err != nil {
		return 0, err
	}
	if !ok {
		return c.source.missing, nil
	}
	return c.values[readerIndex].Get(int64(doc))
}

// leafEntry is the head document of one segment during the merge. Its
// comparison keys are fetched when the entry is (re)pushed, so accessor I/O
// errors surface before the entry enters the queue.
type leafEntry struct {
	readerIndex int
	doc         int32
	maxDoc      int32
	liveDocs    bits.Bits
	keys        []int64
}

func (e *leafEntry) loadKeys(comparators []*crossComparator) error {
	if e.keys == nil {
		e.keys = make([]int64, len(comparators))
	}
	for i, c := range comparators {
		k, err := c.key(e.readerIndex, e.doc)
		if err != nil {
			return err
		}
		e.keys[i] = k
	}
	return nil
}

// leafQueue is a min-heap of segment heads keyed by the full comparator
// chain, tie-broken deterministically by (segment index, doc id) rather
// than relying on any heap-internal ordering.
type leafQueue struct {
	comparators []*crossComparator
	items       []*leafEntry
}

func (q *leafQueue) len() int {
	return len(q.items)
}

func (q *leafQueue) push(e *leafEntry) {
	q.items = append(q.items, e)
	q.siftUp(len(q.items) - 1)
}

func (q *leafQueue) pop() *leafEntry {
	root := q.items[0]
	n := len(q.items)
	last := q.items[n-1]
	q.items[n-1] = nil
	q.items = q.items[:n-1]
	if n-1 > 0 {
		q.items[0] = last
		q.siftDown(0)
	}
	return root
}

func (q *leafQueue) less(i, j int) bool {
	a, b := q.items[i], q.items[j]
	for k, c := range q.comparators {
		if cc := c.source.compareKeys(a.keys[k], b.keys[k]); cc != 0 {
			return cc < 0
		}
	}
	if a.readerIndex != b.readerIndex {
		return a.readerIndex < b.readerIndex
	}
	return a.doc < b.doc
}

func (q *leafQueue) siftUp(i int) {
	for i > 0 {
		p := (i - 1) / 2
		if !q.less(i, p) {
			return
		}
		q.items[i], q.items[p] = q.items[p], q.items[i]
		i = p
	}
}

func (q *leafQueue) siftDown(i int) {
	n := len(q.items)
	for {
		l := 2*i + 1
		if l >= n {
			return
		}
		best := l
		if r := l + 1; r < n && q.less(r, l) {
			best = r
		}
		if !q.less(best, i) {
			return
		}
		q.items[i], q.items[best] = q.items[best], q.items[i]
		i = best
	}
}
