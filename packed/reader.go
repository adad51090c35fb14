package packed

import (
	"fmt"
	"math"

	"github.com/hupe1980/docvalues/store"
)

type block struct {
	min   int64
	avg   float32
	width uint
	data  []byte // packed residuals, nil when width == 0
}

// Reader provides random access to a sealed monotonic block stream.
//
// Reader is immutable and safe for unbounded concurrent reads.
type Reader struct {
	blockSize int
	count     int64
	blocks    []block
	end       int64 // byte offset just past the stream
}

// NewReader parses the block headers of a stream holding count values
// starting at offset 0 of in. blockSize must match the writing side.
func NewReader(in store.RandomInput, blockSize int, count int64) (*Reader, error) {
	return NewReaderAt(in, 0, blockSize, count)
}

// NewReaderAt is NewReader starting at the given byte offset, for streams
// embedded in a larger file.
func NewReaderAt(in store.RandomInput, off int64, blockSize int, count int64) (*Reader, error) {
	if blockSize < 1 {
		panic("packed: block size must be at least 1")
	}
	if count < 0 {
		return nil, fmt.Errorf("%w: negative value count %d", ErrCorrupted, count)
	}

	numBlocks := int((count + int64(blockSize) - 1) / int64(blockSize))
	r := &Reader{
		blockSize: blockSize,
		count:     count,
		blocks:    make([]block, numBlocks),
	}

	cur := store.NewCursor(in, off)
	for b := 0; b < numBlocks; b++ {
		min, err := cur.ReadZigZag()
		if err != nil {
			return nil, err
		}
		avgBits, err := cur.ReadUint32()
		if err != nil {
			return nil, err
		}
		width, err := cur.ReadUvarint()
		if err != nil {
			return nil, err
		}
		if width > 64 {
			return nil, fmt.Errorf("%w: residual width %d", ErrCorrupted, width)
		}

		r.blocks[b] = block{
			min:   min,
			avg:   math.Float32frombits(avgBits),
			width: uint(width),
		}

		if width > 0 {
			n := r.valuesInBlock(b)
			size := packedBytes(n, uint(width))
			data, err := in.Slice(cur.Offset(), size)
			if err != nil {
				return nil, err
			}
			r.blocks[b].data = data
			if err := cur.Skip(size); err != nil {
				return nil, err
			}
		}
	}
	r.end = cur.Offset()

	return r, nil
}

// Get returns the value at the given logical index.
func (r *Reader) Get(index int64) (int64, error) {
	if index < 0 || index >= r.count {
		return 0, store.ErrOutOfBounds
	}
	b := &r.blocks[index/int64(r.blockSize)]
	j := int(index % int64(r.blockSize))

	v := expected(b.min, b.avg, j)
	if b.width > 0 {
		v += int64(readBits(b.data, uint64(j)*uint64(b.width), b.width))
	}
	return v, nil
}

// Count returns the number of values in the stream.
func (r *Reader) Count() int64 {
	return r.count
}

// End returns the byte offset just past the stream, so that trailing data in
// the same input can be located.
func (r *Reader) End() int64 {
	return r.end
}

// valuesInBlock returns how many values block b holds; only the final block
// may be short.
func (r *Reader) valuesInBlock(b int) int {
	if rem := r.count - int64(b)*int64(r.blockSize); rem < int64(r.blockSize) {
		return int(rem)
	}
	return r.blockSize
}
