package docvalues

import (
	"bytes"
	"encoding/binary"
	"iter"
	"sort"
)

// dictInterval is the number of terms per compressed dictionary block. The
// first term of each block is kept raw so block-level binary search never
// decompresses more than one block.
const dictInterval = 16

// CompressedDict is the compressed binary accessor: terms grouped in
// fixed-interval blocks, block bodies LZ4/ZSTD-compressed, with native
// ordinal and term lookup. Unlike the general accessor it can answer
// LookupTerm by decompressing at most one block, and its Terms iterator
// decodes block-at-a-time instead of performing one lookup per ordinal.
//
// Immutable and safe for concurrent reads; lookups decompress into private
// buffers.
type CompressedDict struct {
	firstTerms  [][]byte
	blocks      [][]byte // compressed bodies holding terms 1..interval-1 of each block
	count       int
	compression Compression
}

// CompressedDictBuilder builds a CompressedDict from terms added in strictly
// increasing lexicographic order.
type CompressedDictBuilder struct {
	compression Compression
	firstTerms  [][]byte
	blocks      [][]byte
	body        bytes.Buffer
	scratch     [binary.MaxVarintLen64]byte
	inBlock     int
	count       int
	last        []byte
}

// NewCompressedDictBuilder creates a builder using the given block
// compression.
func NewCompressedDictBuilder(compression Compression) *CompressedDictBuilder {
	return &CompressedDictBuilder{compression: compression}
}

// Add appends the next term. Terms must be strictly increasing; the ordinal
// assigned is the number of terms added before.
func (b *CompressedDictBuilder) Add(term []byte) error {
	if b.count > 0 && bytes.Compare(term, b.last) <= 0 {
		return &ErrUnsortedTerm{Term: bytes.Clone(term)}
	}

	if b.inBlock == 0 {
		b.firstTerms = append(b.firstTerms, bytes.Clone(term))
	} else {
		n := binary.PutUvarint(b.scratch[:], uint64(len(term)))
		b.body.Write(b.scratch[:n])
		b.body.Write(term)
	}
	b.inBlock++
	b.count++
	b.last = append(b.last[:0], term...)

	if b.inBlock == dictInterval {
		return b.flushBlock()
	}
	return nil
}

func (b *CompressedDictBuilder) flushBlock() error {
	blk, err := compressBlock(b.body.Bytes(), b.compression)
	if err != nil {
		return err
	}
	b.blocks = append(b.blocks, blk)
	b.body.Reset()
	b.inBlock = 0
	return nil
}

// Finish seals the dictionary.
func (b *CompressedDictBuilder) Finish() (*CompressedDict, error) {
	if b.inBlock > 0 {
		if err := b.flushBlock(); err != nil {
			return nil, err
		}
	}
	return &CompressedDict{
		firstTerms:  b.firstTerms,
		blocks:      b.blocks,
		count:       b.count,
		compression: b.compression,
	}, nil
}

// Count returns the number of terms in the dictionary.
func (d *CompressedDict) Count() int {
	return d.count
}

// LookupOrd returns the term for ordinal ord.
func (d *CompressedDict) LookupOrd(ord int32) ([]byte, error) {
	if ord < 0 || int(ord) >= d.count {
		return nil, ErrOrdOutOfRange
	}
	blk := int(ord) / dictInterval
	pos := int(ord) % dictInterval
	if pos == 0 {
		return d.firstTerms[blk], nil
	}

	body, err := decompressBlock(d.blocks[blk], d.compression)
	if err != nil {
		return nil, err
	}
	var term []byte
	for i := 0; i < pos; i++ {
		term, body, err = nextTerm(body)
		if err != nil {
			return nil, err
		}
	}
	return term, nil
}

// LookupTerm returns the ordinal of key if present; otherwise
// -(insertionPoint+1), where insertionPoint is the ordinal of the first term
// greater than key (or Count if none).
func (d *CompressedDict) LookupTerm(key []byte) (int32, error) {
	if d.count == 0 {
		return -1, nil
	}

	// First block whose leading term is greater than key.
	idx := sort.Search(len(d.firstTerms), func(i int) bool {
		return bytes.Compare(d.firstTerms[i], key) > 0
	})
	if idx == 0 {
		return -1, nil // before the first term: insertion point 0
	}
	blk := idx - 1

	baseOrd := int32(blk * dictInterval)
	if cmp := bytes.Compare(d.firstTerms[blk], key); cmp == 0 {
		return baseOrd, nil
	}

	body, err := decompressBlock(d.blocks[blk], d.compression)
	if err != nil {
		return 0, err
	}
	ord := baseOrd
	for len(body) > 0 {
		var term []byte
		term, body, err = nextTerm(body)
		if err != nil {
			return 0, err
		}
		ord++
		switch cmp := bytes.Compare(term, key); {
		case cmp == 0:
			return ord, nil
		case cmp > 0:
			return -(ord + 1), nil
		}
	}
	insertion := ord + 1 // every term in the block was smaller
	return -(insertion + 1), nil
}

// Terms yields the dictionary terms in ordinal order, one decoded block at a
// time. The sequence is finite and restartable; iteration stops after a
// non-nil error is yielded.
func (d *CompressedDict) Terms() iter.Seq2[[]byte, error] {
	return func(yield func([]byte, error) bool) {
		for blk, first := range d.firstTerms {
			if !yield(first, nil) {
				return
			}
			body, err := decompressBlock(d.blocks[blk], d.compression)
			if err != nil {
				yield(nil, err)
				return
			}
			for len(body) > 0 {
				var term []byte
				term, body, err = nextTerm(body)
				if err != nil {
					yield(nil, err)
					return
				}
				if !yield(term, nil) {
					return
				}
			}
		}
	}
}

// nextTerm decodes one uvarint-length-prefixed term from body and returns it
// with the remaining bytes.
func nextTerm(body []byte) (term, rest []byte, err error) {
	l, n := binary.Uvarint(body)
	if n <= 0 || uint64(len(body)-n) < l {
		return nil, nil, ErrCorruptedDict
	}
	return body[n : n+int(l)], body[n+int(l):], nil
}
