package packed

import (
	"math"

	"github.com/hupe1980/docvalues/store"
)

// Writer appends a monotonic non-decreasing sequence of int64 values and
// encodes them block by block. Monotonicity is caller-enforced: violating it
// produces incorrect compression, not a runtime error.
//
// Writer is single-writer, single-pass. After Finish, Add and Finish return
// ErrFinished until Reset.
type Writer struct {
	out      *store.Output
	values   []int64
	off      int
	ord      int64
	finished bool
}

// NewWriter creates a Writer that emits blocks of up to blockSize values
// to out. blockSize must be at least 1.
func NewWriter(out *store.Output, blockSize int) *Writer {
	if blockSize < 1 {
		panic("packed: block size must be at least 1")
	}
	return &Writer{
		out:    out,
		values: make([]int64, blockSize),
	}
}

// Add appends v. v must be >= the previously added value.
func (w *Writer) Add(v int64) error {
	if w.finished {
		return ErrFinished
	}
	if w.off == len(w.values) {
		if err := w.flush(); err != nil {
			return err
		}
	}
	w.values[w.off] = v
	w.off++
	w.ord++
	return nil
}

// Finish flushes the trailing partial block and seals the stream.
func (w *Writer) Finish() error {
	if w.finished {
		return ErrFinished
	}
	if w.off > 0 {
		if err := w.flush(); err != nil {
			return err
		}
	}
	w.finished = true
	return nil
}

// Count returns the number of values added so far.
func (w *Writer) Count() int64 {
	return w.ord
}

// Reset prepares the writer for a new stream written to out.
func (w *Writer) Reset(out *store.Output) {
	w.out = out
	w.off = 0
	w.ord = 0
	w.finished = false
}

// flush encodes the buffered values as one block:
// zig-zag varint min, float32 avg bits, varint residual width, then the
// residuals bit-packed at that width (omitted entirely when the predictor is
// exact).
func (w *Writer) flush() error {
	n := w.off

	var avg float32
	if n > 1 {
		avg = float32(w.values[n-1]-w.values[0]) / float32(n-1)
	}

	// Adjust min downward so every residual is non-negative.
	min := w.values[0]
	for i := 1; i < n; i++ {
		if exp := expected(min, avg, i); exp > w.values[i] {
			min -= exp - w.values[i]
		}
	}

	var maxDelta int64
	for i := 0; i < n; i++ {
		w.values[i] -= expected(min, avg, i)
		if w.values[i] > maxDelta {
			maxDelta = w.values[i]
		}
	}

	if err := w.out.WriteZigZag(min); err != nil {
		return err
	}
	if err := w.out.WriteUint32(math.Float32bits(avg)); err != nil {
		return err
	}
	if maxDelta == 0 {
		if err := w.out.WriteUvarint(0); err != nil {
			return err
		}
	} else {
		width := bitsRequired(maxDelta)
		if err := w.out.WriteUvarint(uint64(width)); err != nil {
			return err
		}
		bw := bitWriter{out: w.out}
		for i := 0; i < n; i++ {
			if err := bw.writeBits(uint64(w.values[i]), width); err != nil {
				return err
			}
		}
		if err := bw.finish(); err != nil {
			return err
		}
	}

	w.off = 0
	return nil
}
