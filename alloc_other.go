//go:build !unix

package buffer

import "unsafe"

// Without mmap, alignment comes from over-allocating on the Go heap and
// slicing at the first Alignment boundary. The garbage collector owns the
// memory, so freeAligned has nothing to do.

func allocAligned(size int) []byte {
	raw := make([]byte, size+Alignment-1)
	off := 0
	if rem := int(uintptr(unsafe.Pointer(unsafe.SliceData(raw))) % Alignment); rem != 0 {
		off = Alignment - rem
	}
	return raw[off : off+size : off+size]
}

func freeAligned([]byte) {}
