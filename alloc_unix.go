//go:build unix

package buffer

import "golang.org/x/sys/unix"

// Buffers are backed by anonymous private mappings: the kernel hands back
// zeroed, page-aligned memory (pages are a multiple of Alignment), and
// munmap gives deterministic release the moment the last ref drops
// instead of waiting on the garbage collector.

// allocAligned returns a zeroed block of exactly size bytes, aligned to at
// least Alignment. size must be a positive multiple of Alignment.
func allocAligned(size int) []byte {
	block, err := unix.Mmap(
		-1,
		0,
		size,
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_ANON|unix.MAP_PRIVATE,
	)
	if err != nil {
		panic("buffer: mmap failed: " + err.Error())
	}
	return block
}

// freeAligned releases a block returned by allocAligned.
func freeAligned(block []byte) {
	if err := unix.Munmap(block); err != nil {
		panic("buffer: munmap failed: " + err.Error())
	}
}
