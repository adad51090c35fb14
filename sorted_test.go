package docvalues

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newGeneralSorted builds a Sorted view over the general accessor with the
// given dictionary and per-document ordinals (-1 = no value).
func newGeneralSorted(t *testing.T, terms [][]byte, ords []int64) *Sorted {
	t.Helper()
	d, err := BuildBytesDict(terms, 8)
	require.NoError(t, err)
	return NewSorted(SliceLongValues(ords), d, len(terms))
}

func TestSortedGetOrd(t *testing.T) {
	terms := [][]byte{[]byte("ant"), []byte("bee"), []byte("cat")}
	s := newGeneralSorted(t, terms, []int64{2, -1, 0, 1, 0})

	ord, err := s.GetOrd(0)
	require.NoError(t, err)
	assert.EqualValues(t, 2, ord)

	ord, err = s.GetOrd(1)
	require.NoError(t, err)
	assert.EqualValues(t, -1, ord)

	assert.Equal(t, 3, s.ValueCount())
}

func TestSortedGet(t *testing.T) {
	terms := [][]byte{[]byte("ant"), []byte("bee")}
	s := newGeneralSorted(t, terms, []int64{1, -1})

	v, err := s.Get(0)
	require.NoError(t, err)
	assert.Equal(t, []byte("bee"), v)

	// Missing values yield an empty slice, not an error.
	v, err = s.Get(1)
	require.NoError(t, err)
	assert.Empty(t, v)
	assert.NotNil(t, v)
}

func TestSortedLookupOrdOutOfRange(t *testing.T) {
	s := newGeneralSorted(t, [][]byte{[]byte("a")}, []int64{0})

	_, err := s.LookupOrd(-1)
	assert.ErrorIs(t, err, ErrOrdOutOfRange)
	_, err = s.LookupOrd(1)
	assert.ErrorIs(t, err, ErrOrdOutOfRange)
}

func TestSortedLookupTermContract(t *testing.T) {
	terms := [][]byte{[]byte("bb"), []byte("dd"), []byte("ff"), []byte("hh")}
	s := newGeneralSorted(t, terms, []int64{0, 1, 2, 3})

	// Exact hits.
	for i, term := range terms {
		ord, err := s.LookupTerm(term)
		require.NoError(t, err)
		assert.EqualValues(t, i, ord)
	}

	// Absent keys return -(insertionPoint+1): before the first entry,
	// between adjacent entries, after the last entry.
	cases := []struct {
		key       string
		insertion int32
	}{
		{"aa", 0},
		{"cc", 1},
		{"ee", 2},
		{"gg", 3},
		{"zz", 4},
	}
	for _, tt := range cases {
		ord, err := s.LookupTerm([]byte(tt.key))
		require.NoError(t, err)
		assert.Equal(t, -(tt.insertion + 1), ord, "key %s", tt.key)
	}
}

func TestSortedOrdinalRoundTrip(t *testing.T) {
	terms := sortedTerms(64)
	s := newGeneralSorted(t, terms, []int64{0})

	for ord := int32(0); int(ord) < s.ValueCount(); ord++ {
		term, err := s.LookupOrd(ord)
		require.NoError(t, err)
		got, err := s.LookupTerm(term)
		require.NoError(t, err)
		assert.Equal(t, ord, got)
	}
}

func TestSortedTermsGeneric(t *testing.T) {
	terms := [][]byte{[]byte("a"), []byte("b"), []byte("c")}
	s := newGeneralSorted(t, terms, []int64{0})

	var got [][]byte
	for term, err := range s.Terms() {
		require.NoError(t, err)
		got = append(got, append([]byte(nil), term...))
	}
	assert.Equal(t, terms, got)
}

func TestSortedCompressedDelegation(t *testing.T) {
	terms := sortedTerms(48)
	d := buildCompressedDict(t, CompressionLZ4, terms)
	s := NewSortedCompressed(SliceLongValues{5, -1}, d)

	assert.Equal(t, 48, s.ValueCount())

	// The compressed representation answers ordinal, term and iterator
	// requests natively; results must match the generic contract.
	v, err := s.Get(0)
	require.NoError(t, err)
	assert.Equal(t, terms[5], v)

	ord, err := s.LookupTerm(terms[17])
	require.NoError(t, err)
	assert.EqualValues(t, 17, ord)

	ord, err = s.LookupTerm([]byte("zzz"))
	require.NoError(t, err)
	assert.EqualValues(t, -(48 + 1), ord)

	var n int
	for _, err := range s.Terms() {
		require.NoError(t, err)
		n++
	}
	assert.Equal(t, 48, n)
}

func TestSortedCompressedMatchesGeneric(t *testing.T) {
	// Both storage strategies must expose identical behavior through the
	// shared API.
	terms := sortedTerms(33)
	ords := []int64{0, 32, -1, 16}

	general := newGeneralSorted(t, terms, ords)
	compressed := NewSortedCompressed(SliceLongValues(ords), buildCompressedDict(t, CompressionZSTD, terms))

	for doc := int32(0); doc < 4; doc++ {
		gv, err := general.Get(doc)
		require.NoError(t, err)
		cv, err := compressed.Get(doc)
		require.NoError(t, err)
		assert.Equal(t, gv, cv, "doc %d", doc)
	}

	for _, key := range [][]byte{terms[0], terms[16], []byte("term-000003"), []byte("")} {
		gOrd, err := general.LookupTerm(key)
		require.NoError(t, err)
		cOrd, err := compressed.LookupTerm(key)
		require.NoError(t, err)
		assert.Equal(t, gOrd, cOrd, "key %q", key)
	}
}
