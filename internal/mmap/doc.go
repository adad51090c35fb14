// Package mmap provides read-only memory-mapped file access.
//
// Sealed codec streams (block-packed sequences, term dictionaries) can be
// multiple gigabytes; mapping them avoids copying through kernel buffers and
// lets many reader goroutines share one immutable view.
//
//	m, err := mmap.Open("ords.bin")
//	if err != nil { ... }
//	defer m.Close()
//
//	data := m.Bytes() // zero-copy
//	m.Advise(mmap.AccessRandom)
//
// Unix platforms use mmap(2)/madvise(2) via golang.org/x/sys; on Windows
// CreateFileMapping/MapViewOfFile is used and Advise is a no-op.
//
// Bytes() is safe for concurrent readers. Close() is idempotent, but callers
// must ensure no goroutine touches the slice after Close() returns.
package mmap
