package sorter

import (
	"cmp"
	"math"

	"github.com/hupe1980/docvalues"
	"github.com/hupe1980/docvalues/bits"
)

// fieldSource reads the comparison key of one sort field for one segment:
// the stored value, or the field's missing substitute when the document has
// no value. Keys are raw int64; Double/Float keys carry IEEE-754 bit
// patterns and are reinterpreted at compare time.
type fieldSource struct {
	typ     Type
	reverse bool
	values  docvalues.LongValues
	present bits.Bits
	missing int64
}

func newFieldSource(f *SortField, r Reader) (*fieldSource, error) {
	switch f.Type {
	case TypeLong, TypeInt, TypeDouble, TypeFloat:
	default:
		return nil, &ErrUnhandledSortType{Type: f.Type}
	}

	values, err := f.numericValues(r)
	if err != nil {
		return nil, err
	}
	present, err := r.DocsWithField(f.Field)
	if err != nil {
		return nil, err
	}

	missing := f.MissingLong
	if f.Type == TypeDouble || f.Type == TypeFloat {
		missing = int64(math.Float64bits(f.MissingDouble))
	}

	return &fieldSource{
		typ:     f.Type,
		reverse: f.Reverse,
		values:  values,
		present: present,
		missing: missing,
	}, nil
}

// key returns the comparison key for doc.
func (s *fieldSource) key(doc int32) (int64, error) {
	ok, err := s.present.Get(int(doc))
	if err != nil {
		return 0, err
	}
	if !ok {
		return s.missing, nil
	}
	return s.values.Get(int64(doc))
}

// compareKeys orders k1 against k2 under the field's type and direction.
func (s *fieldSource) compareKeys(k1, k2 int64) int {
	var c int
	switch s.typ {
	case TypeDouble, TypeFloat:
		c = cmp.Compare(math.Float64frombits(uint64(k1)), math.Float64frombits(uint64(k2)))
	default:
		c = cmp.Compare(k1, k2)
	}
	if s.reverse {
		c = -c
	}
	return c
}

// docComparator orders documents of one segment by the field chain,
// short-circuiting on the first non-equal field and falling back to natural
// doc-id order.
type docComparator struct {
	sources []*fieldSource
}

func newDocComparator(fields []SortField, r Reader) (*docComparator, error) {
	sources := make([]*fieldSource, len(fields))
	for i := range fields {
		s, err := newFieldSource(&fields[i], r)
		if err != nil {
			return nil, err
		}
		sources[i] = s
	}
	return &docComparator{sources: sources}, nil
}

func (c *docComparator) compare(d1, d2 int32) (int, error) {
	for _, s := range c.sources {
		k1, err := s.key(d1)
		if err != nil {
			return 0, err
		}
		k2, err := s.key(d2)
		if err != nil {
			return 0, err
		}
		if cc := s.compareKeys(k1, k2); cc != 0 {
			return cc, nil
		}
	}
	return cmp.Compare(d1, d2), nil
}
