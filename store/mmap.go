package store

import (
	"github.com/hupe1980/docvalues/internal/mmap"
)

// MmapInput is a RandomInput backed by a read-only memory-mapped file,
// giving zero-copy access to sealed codec streams of any size.
//
// Safe for concurrent reads. Close must not race with readers.
type MmapInput struct {
	m    *mmap.Mapping
	data []byte
}

// OpenMmap maps the file at path and returns it as a RandomInput.
func OpenMmap(path string) (*MmapInput, error) {
	m, err := mmap.Open(path)
	if err != nil {
		return nil, err
	}
	// Random block access is the common pattern for sealed streams.
	_ = m.Advise(mmap.AccessRandom)
	return &MmapInput{m: m, data: m.Bytes()}, nil
}

// ReadByteAt returns the byte at off.
func (m *MmapInput) ReadByteAt(off int64) (byte, error) {
	if off < 0 || off >= int64(len(m.data)) {
		return 0, ErrOutOfBounds
	}
	return m.data[off], nil
}

// Slice returns a zero-copy view of [off, off+length).
func (m *MmapInput) Slice(off, length int64) ([]byte, error) {
	if off < 0 || length < 0 || off+length > int64(len(m.data)) {
		return nil, ErrOutOfBounds
	}
	return m.data[off : off+length], nil
}

// Len returns the total length in bytes.
func (m *MmapInput) Len() int64 {
	return int64(len(m.data))
}

// Close unmaps the file. The input must not be used afterwards.
func (m *MmapInput) Close() error {
	m.data = nil
	return m.m.Close()
}
