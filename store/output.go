package store

import (
	"encoding/binary"
	"io"
)

// Output writes the scalar primitives of the persisted block format to an
// underlying io.Writer. All multi-byte fields are little-endian.
//
// Output is single-writer and not safe for concurrent use.
type Output struct {
	w       io.Writer
	scratch [binary.MaxVarintLen64]byte
	written int64
}

// NewOutput creates an Output over w.
func NewOutput(w io.Writer) *Output {
	return &Output{w: w}
}

// Write writes raw bytes.
func (o *Output) Write(p []byte) (int, error) {
	n, err := o.w.Write(p)
	o.written += int64(n)
	return n, err
}

// WriteByte writes a single byte.
func (o *Output) WriteByte(b byte) error {
	o.scratch[0] = b
	_, err := o.Write(o.scratch[:1])
	return err
}

// WriteUvarint writes v as an unsigned varint.
func (o *Output) WriteUvarint(v uint64) error {
	n := binary.PutUvarint(o.scratch[:], v)
	_, err := o.Write(o.scratch[:n])
	return err
}

// WriteZigZag writes v zig-zag encoded as an unsigned varint, so that small
// negative values stay small on the wire.
func (o *Output) WriteZigZag(v int64) error {
	return o.WriteUvarint(ZigZagEncode(v))
}

// WriteUint32 writes a fixed-width little-endian uint32.
func (o *Output) WriteUint32(v uint32) error {
	binary.LittleEndian.PutUint32(o.scratch[:4], v)
	_, err := o.Write(o.scratch[:4])
	return err
}

// WriteUint64 writes a fixed-width little-endian uint64.
func (o *Output) WriteUint64(v uint64) error {
	binary.LittleEndian.PutUint64(o.scratch[:8], v)
	_, err := o.Write(o.scratch[:8])
	return err
}

// BytesWritten returns the number of bytes written so far.
func (o *Output) BytesWritten() int64 {
	return o.written
}

// ZigZagEncode maps signed to unsigned so that values close to zero, of
// either sign, encode to small varints.
func ZigZagEncode(v int64) uint64 {
	return uint64((v << 1) ^ (v >> 63))
}

// ZigZagDecode reverses ZigZagEncode.
func ZigZagDecode(v uint64) int64 {
	return int64(v>>1) ^ -int64(v&1)
}
