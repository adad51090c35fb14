package packed

import (
	"errors"
	"math"
	"math/bits"

	"github.com/hupe1980/docvalues/store"
)

// DefaultBlockSize is the block size used when none is configured. Larger
// blocks compress better; smaller blocks decode with less waste on point
// lookups.
const DefaultBlockSize = 4096

var (
	// ErrFinished is returned when appending to a sealed writer.
	ErrFinished = errors.New("packed: writer already finished")

	// ErrCorrupted is returned when a block header cannot be decoded.
	ErrCorrupted = errors.New("packed: corrupted block stream")
)

// expected is the shared linear predictor: the value the codec assumes at
// position i of a block whose first value is min and whose average step is
// avg. Writer and Reader must agree on it exactly.
func expected(min int64, avg float32, i int) int64 {
	return min + int64(math.Round(float64(avg)*float64(i)))
}

// bitsRequired returns the minimal unsigned bit width covering v.
// v must be positive.
func bitsRequired(v int64) uint {
	return uint(bits.Len64(uint64(v)))
}

// bitWriter packs values most-significant-bit-first into bytes.
type bitWriter struct {
	out   *store.Output
	cur   byte
	nbits uint
}

func (b *bitWriter) writeBits(v uint64, width uint) error {
	for width > 0 {
		free := 8 - b.nbits
		take := min(free, width)
		chunk := byte(v>>(width-take)) & byte(1<<take-1)
		b.cur = b.cur<<take | chunk
		b.nbits += take
		width -= take
		if b.nbits == 8 {
			if err := b.out.WriteByte(b.cur); err != nil {
				return err
			}
			b.cur, b.nbits = 0, 0
		}
	}
	return nil
}

// finish flushes a trailing partial byte, padding with zero bits.
func (b *bitWriter) finish() error {
	if b.nbits == 0 {
		return nil
	}
	err := b.out.WriteByte(b.cur << (8 - b.nbits))
	b.cur, b.nbits = 0, 0
	return err
}

// readBits extracts width bits starting at bit offset bitOff of data,
// most-significant-bit-first.
func readBits(data []byte, bitOff uint64, width uint) uint64 {
	var v uint64
	for width > 0 {
		avail := 8 - uint(bitOff&7)
		take := min(avail, width)
		chunk := (uint64(data[bitOff>>3]) >> (avail - take)) & (1<<take - 1)
		v = v<<take | chunk
		bitOff += uint64(take)
		width -= take
	}
	return v
}

// packedBytes returns the byte length of n values packed at the given width.
func packedBytes(n int, width uint) int64 {
	return (int64(n)*int64(width) + 7) / 8
}
