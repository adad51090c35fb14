package sorter

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/docvalues"
	"github.com/hupe1980/docvalues/bits"
)

// memReader is an in-memory segment for tests. Fields without an entry in
// present are treated as set on every document.
type memReader struct {
	maxDoc  int32
	numeric map[string][]int64
	multi   map[string][][]int64
	present map[string]bits.Bits
	live    bits.Bits
}

func (r *memReader) MaxDoc() int32 { return r.maxDoc }

func (r *memReader) NumericDocValues(field string) (docvalues.LongValues, error) {
	return docvalues.SliceLongValues(r.numeric[field]), nil
}

func (r *memReader) SortedNumericDocValues(field string) (docvalues.SortedNumericValues, error) {
	return docvalues.SliceSortedNumeric(r.multi[field]), nil
}

func (r *memReader) DocsWithField(field string) (bits.Bits, error) {
	if b, ok := r.present[field]; ok {
		return b, nil
	}
	return bits.MatchAll{Size: int(r.maxDoc)}, nil
}

func (r *memReader) LiveDocs() bits.Bits {
	if r.live != nil {
		return r.live
	}
	return bits.MatchAll{Size: int(r.maxDoc)}
}

func longReader(values ...int64) *memReader {
	return &memReader{
		maxDoc:  int32(len(values)),
		numeric: map[string][]int64{"f": values},
	}
}

func doubleBits(values ...float64) []int64 {
	out := make([]int64, len(values))
	for i, v := range values {
		out[i] = int64(math.Float64bits(v))
	}
	return out
}

// assertPermutation verifies the map against the expected new→old table and
// the inverse property.
func assertPermutation(t *testing.T, m *DocMap, newToOld []int32) {
	t.Helper()
	require.NotNil(t, m)
	require.Equal(t, len(newToOld), m.Len())
	require.NoError(t, m.CheckConsistency())

	for newID, oldID := range newToOld {
		got, err := m.NewToOld(int32(newID))
		require.NoError(t, err)
		assert.Equal(t, oldID, got, "newToOld(%d)", newID)
		back, err := m.OldToNew(oldID)
		require.NoError(t, err)
		assert.Equal(t, int32(newID), back, "oldToNew(%d)", oldID)
	}
}

func TestSortReaderAlreadySorted(t *testing.T) {
	s := New([]SortField{{Field: "f", Type: TypeLong}})

	m, err := s.SortReader(longReader(1, 2, 2, 7))
	require.NoError(t, err)
	assert.Nil(t, m)
}

func TestSortReaderEmptySegment(t *testing.T) {
	s := New([]SortField{{Field: "f", Type: TypeLong}})

	m, err := s.SortReader(longReader())
	require.NoError(t, err)
	assert.Nil(t, m)
}

func TestSortReaderPermutation(t *testing.T) {
	s := New([]SortField{{Field: "f", Type: TypeLong}}, WithBlockSize(2))

	m, err := s.SortReader(longReader(30, 10, 20))
	require.NoError(t, err)
	assertPermutation(t, m, []int32{1, 2, 0})
}

func TestSortReaderReverse(t *testing.T) {
	ascending := longReader(10, 20, 30)

	m, err := New([]SortField{{Field: "f", Type: TypeLong}}).SortReader(ascending)
	require.NoError(t, err)
	assert.Nil(t, m, "ascending input already satisfies Reverse=false")

	m, err = New([]SortField{{Field: "f", Type: TypeLong, Reverse: true}}).SortReader(ascending)
	require.NoError(t, err)
	assertPermutation(t, m, []int32{2, 1, 0})
}

func TestSortReaderStableTieBreak(t *testing.T) {
	s := New([]SortField{{Field: "f", Type: TypeLong}})

	// Equal keys keep original doc order.
	m, err := s.SortReader(longReader(5, 5, 1))
	require.NoError(t, err)
	assertPermutation(t, m, []int32{2, 0, 1})
}

func TestSortReaderMissingValues(t *testing.T) {
	r := &memReader{
		maxDoc:  3,
		numeric: map[string][]int64{"f": {10, 0, 20}},
		present: map[string]bits.Bits{"f": bits.SparseBitsFromSlice([]uint32{0, 2}, 3)},
	}

	// A substitute between the stored values leaves the segment in order.
	m, err := New([]SortField{{Field: "f", Type: TypeLong, MissingLong: 15}}).SortReader(r)
	require.NoError(t, err)
	assert.Nil(t, m)

	// A substitute above them pushes the missing document last.
	m, err = New([]SortField{{Field: "f", Type: TypeLong, MissingLong: 100}}).SortReader(r)
	require.NoError(t, err)
	assertPermutation(t, m, []int32{0, 2, 1})
}

func TestSortReaderDouble(t *testing.T) {
	r := &memReader{
		maxDoc:  3,
		numeric: map[string][]int64{"f": doubleBits(2.5, -1.5, 0.25)},
	}
	s := New([]SortField{{Field: "f", Type: TypeDouble}})

	// Negative doubles have large unsigned bit patterns; ordering must be by
	// float value, not stored bits.
	m, err := s.SortReader(r)
	require.NoError(t, err)
	assertPermutation(t, m, []int32{1, 2, 0})
}

func TestSortReaderMissingDouble(t *testing.T) {
	r := &memReader{
		maxDoc:  3,
		numeric: map[string][]int64{"f": doubleBits(1.0, 0, 3.0)},
		present: map[string]bits.Bits{"f": bits.SparseBitsFromSlice([]uint32{0, 2}, 3)},
	}

	m, err := New([]SortField{{Field: "f", Type: TypeDouble, MissingDouble: 100}}).SortReader(r)
	require.NoError(t, err)
	assertPermutation(t, m, []int32{0, 2, 1})
}

func TestSortReaderSortedNumericSelector(t *testing.T) {
	r := &memReader{
		maxDoc: 3,
		multi:  map[string][][]int64{"f": {{3, 9}, {1, 2}, {5}}},
	}

	m, err := New([]SortField{{Field: "f", Type: TypeLong, SortedNumeric: true, Selector: SelectorMin}}).SortReader(r)
	require.NoError(t, err)
	assertPermutation(t, m, []int32{1, 0, 2})

	m, err = New([]SortField{{Field: "f", Type: TypeLong, SortedNumeric: true, Selector: SelectorMax}}).SortReader(r)
	require.NoError(t, err)
	assertPermutation(t, m, []int32{1, 2, 0})
}

func TestSortReaderMultiField(t *testing.T) {
	r := &memReader{
		maxDoc: 4,
		numeric: map[string][]int64{
			"a": {1, 1, 0, 0},
			"b": {7, 3, 9, 2},
		},
	}
	s := New([]SortField{
		{Field: "a", Type: TypeLong},
		{Field: "b", Type: TypeLong, Reverse: true},
	})

	// a ascending groups docs {2,3} before {0,1}; within each group b
	// descending orders doc2 before doc3 and doc0 before doc1.
	m, err := s.SortReader(r)
	require.NoError(t, err)
	assertPermutation(t, m, []int32{2, 3, 0, 1})
}

func TestSortReaderUnhandledType(t *testing.T) {
	s := New([]SortField{{Field: "f", Type: TypeString}})

	_, err := s.SortReader(longReader(1, 2))
	var unhandled *ErrUnhandledSortType
	require.ErrorAs(t, err, &unhandled)
	assert.Equal(t, TypeString, unhandled.Type)
}

func TestDocMapCheckConsistency(t *testing.T) {
	s := New([]SortField{{Field: "f", Type: TypeLong}}, WithBlockSize(3))

	m, err := s.SortReader(longReader(9, 3, 7, 1, 5, 0, 8, 2))
	require.NoError(t, err)
	require.NotNil(t, m)
	assert.NoError(t, m.CheckConsistency())
	assert.Equal(t, 8, m.Len())
}
