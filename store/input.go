package store

import "encoding/binary"

// Cursor is a sequential decoding position over a RandomInput. It is used to
// walk block headers; the blocks themselves are then accessed randomly.
//
// A Cursor is cheap to create and not safe for concurrent use; readers that
// share one RandomInput each create their own.
type Cursor struct {
	in  RandomInput
	off int64
}

// NewCursor creates a Cursor positioned at off.
func NewCursor(in RandomInput, off int64) *Cursor {
	return &Cursor{in: in, off: off}
}

// Offset returns the current position.
func (c *Cursor) Offset() int64 {
	return c.off
}

// Skip advances the position by n bytes.
func (c *Cursor) Skip(n int64) error {
	if c.off+n > c.in.Len() {
		return ErrOutOfBounds
	}
	c.off += n
	return nil
}

// ReadByte reads one byte and advances.
func (c *Cursor) ReadByte() (byte, error) {
	b, err := c.in.ReadByteAt(c.off)
	if err != nil {
		return 0, err
	}
	c.off++
	return b, nil
}

// ReadUvarint reads an unsigned varint and advances.
func (c *Cursor) ReadUvarint() (uint64, error) {
	var v uint64
	var shift uint
	for i := 0; i < binary.MaxVarintLen64; i++ {
		b, err := c.ReadByte()
		if err != nil {
			return 0, err
		}
		if b < 0x80 {
			if i == binary.MaxVarintLen64-1 && b > 1 {
				return 0, ErrCorrupted
			}
			return v | uint64(b)<<shift, nil
		}
		v |= uint64(b&0x7f) << shift
		shift += 7
	}
	return 0, ErrCorrupted
}

// ReadZigZag reads a zig-zag encoded varint and advances.
func (c *Cursor) ReadZigZag() (int64, error) {
	v, err := c.ReadUvarint()
	if err != nil {
		return 0, err
	}
	return ZigZagDecode(v), nil
}

// ReadUint32 reads a fixed-width little-endian uint32 and advances.
func (c *Cursor) ReadUint32() (uint32, error) {
	p, err := c.in.Slice(c.off, 4)
	if err != nil {
		return 0, err
	}
	c.off += 4
	return binary.LittleEndian.Uint32(p), nil
}

// ReadUint64 reads a fixed-width little-endian uint64 and advances.
func (c *Cursor) ReadUint64() (uint64, error) {
	p, err := c.in.Slice(c.off, 8)
	if err != nil {
		return 0, err
	}
	c.off += 8
	return binary.LittleEndian.Uint64(p), nil
}
