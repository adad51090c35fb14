package bits

import (
	"testing"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/docvalues/store"
)

func TestMatchAllMatchNone(t *testing.T) {
	all := MatchAll{Size: 5}
	none := MatchNone{Size: 5}

	assert.Equal(t, 5, all.Len())
	assert.Equal(t, 5, none.Len())

	for i := 0; i < 5; i++ {
		got, err := all.Get(i)
		require.NoError(t, err)
		assert.True(t, got)

		got, err = none.Get(i)
		require.NoError(t, err)
		assert.False(t, got)
	}
}

func TestFixedBits(t *testing.T) {
	words := make([]uint64, WordsForBits(130))
	words[0] = 1<<3 | 1<<63
	words[1] = 1 // bit 64
	words[2] = 1 // bit 128

	f := NewFixedBits(words, 130)
	assert.Equal(t, 130, f.Len())
	assert.Equal(t, 4, f.Cardinality())

	for _, set := range []int{3, 63, 64, 128} {
		got, err := f.Get(set)
		require.NoError(t, err)
		assert.True(t, got, "bit %d", set)
	}
	got, err := f.Get(5)
	require.NoError(t, err)
	assert.False(t, got)

	_, err = f.Get(130)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestSparseBits(t *testing.T) {
	rb := roaring.New()
	rb.AddMany([]uint32{1, 100, 70000})

	s := NewSparseBits(rb, 70001)
	assert.Equal(t, 70001, s.Len())
	assert.Equal(t, 3, s.Cardinality())

	got, err := s.Get(100)
	require.NoError(t, err)
	assert.True(t, got)
	got, err = s.Get(99)
	require.NoError(t, err)
	assert.False(t, got)

	var seen []uint32
	for id := range s.Iterator() {
		seen = append(seen, id)
	}
	assert.Equal(t, []uint32{1, 100, 70000}, seen)

	_, err = s.Get(70001)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestSparseBitsFromSlice(t *testing.T) {
	s := SparseBitsFromSlice([]uint32{0, 2}, 4)
	live, err := s.Get(0)
	require.NoError(t, err)
	assert.True(t, live)
	live, err = s.Get(1)
	require.NoError(t, err)
	assert.False(t, live)
}

func TestLiveBits(t *testing.T) {
	// Bits 0..9 over two bytes, preceded by a 3-byte header:
	// byte0 = 0b0000_0101 (docs 0 and 2 live), byte1 = 0b0000_0010 (doc 9).
	raw := []byte{0xff, 0xff, 0xff, 0b0000_0101, 0b0000_0010}
	in := store.NewBytesInput(raw)

	l, err := NewLiveBits(in, 3, 10)
	require.NoError(t, err)
	assert.Equal(t, 10, l.Len())

	want := map[int]bool{0: true, 1: false, 2: true, 8: false, 9: true}
	for doc, live := range want {
		got, err := l.Get(doc)
		require.NoError(t, err)
		assert.Equal(t, live, got, "doc %d", doc)
	}

	_, err = l.Get(10)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)

	_, err = NewLiveBits(in, 4, 10)
	assert.ErrorIs(t, err, store.ErrOutOfBounds)
}
