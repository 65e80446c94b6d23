package buffer

import (
	"math"
	"sync/atomic"
)

// Buffer is a mutable byte container aligned to Alignment bytes, with the
// underlying allocation padded to a multiple of Alignment. The padding is
// never visible through the API.
//
// A Buffer is exclusively owned until IntoRef converts it into a shared,
// read-only BufferRef. While owned it may move between goroutines but must
// not be used from more than one at a time.
type Buffer struct {
	block []byte // full padded allocation, nil when length is zero
	size  int    // logical length visible to the user
	refs  atomic.Int64
}

// NewBuffer allocates a zeroed, aligned, padded buffer able to hold length
// bytes. A length of zero allocates nothing.
//
// Panics if the padded size overflows or if the allocation itself fails.
func NewBuffer(length int) *Buffer {
	if length < 0 {
		panic("buffer: negative length")
	}
	if length == 0 {
		return &Buffer{}
	}
	return &Buffer{block: allocAligned(paddedSize(length)), size: length}
}

// FromSlice allocates a buffer sized to src and copies src into it.
func FromSlice(src []byte) *Buffer {
	b := NewBuffer(len(src))
	copy(b.block, src)
	return b
}

// FromSliceCold is FromSlice using the cache-bypassing write path. See
// ColdLoad for when that is worthwhile.
func FromSliceCold(src []byte) *Buffer {
	b := NewBuffer(len(src))
	b.ColdLoad(src)
	return b
}

// ColdLoad overwrites the leading len(src) bytes of the buffer with src,
// bypassing the CPU cache on write when the hardware allows it. Bytes past
// len(src) are left untouched. This can beat a plain copy for bulk data
// that will not be re-read soon, e.g. loads from disk; for data that is
// about to be computed on, prefer an ordinary copy into Bytes.
//
// Panics if the buffer is shorter than src.
func (b *Buffer) ColdLoad(src []byte) {
	if b.size < len(src) {
		panic("buffer: cold load source larger than buffer")
	}
	ColdCopy(b.block, src)
}

// Bytes returns the buffer's logical bytes. The slice is valid for writes
// while the buffer is exclusively owned; after IntoRef it must be treated
// as read-only. A zero-length buffer yields a non-nil empty slice.
func (b *Buffer) Bytes() []byte {
	if b.block == nil {
		return []byte{}
	}
	return b.block[:b.size:b.size]
}

// Len returns the logical length. The underlying allocation is padded to
// a multiple of Alignment, so it may be bigger.
func (b *Buffer) Len() int {
	return b.size
}

// IsEmpty reports whether the length is zero.
func (b *Buffer) IsEmpty() bool {
	return b.size == 0
}

// Clone returns an independent buffer with the same content backed by a
// fresh allocation. It never aliases b.
func (b *Buffer) Clone() *Buffer {
	return FromSlice(b.Bytes())
}

// IntoRef converts the buffer into a full-range shared reference. The
// conversion hands ownership to the returned ref: the buffer must no
// longer be mutated or freed, and its memory is released when the last
// outstanding BufferRef is released.
func (b *Buffer) IntoRef() BufferRef {
	return NewBufferRef(b, 0, b.size)
}

// Free releases the backing allocation. It is a no-op for a zero-length
// buffer, which never allocated. Calling Free on a buffer that has been
// converted with IntoRef is a contract violation and panics; the
// references own the memory at that point.
func (b *Buffer) Free() {
	if b.refs.Load() != 0 {
		panic("buffer: Free after IntoRef")
	}
	b.release()
}

func (b *Buffer) release() {
	if b.block == nil {
		return
	}
	freeAligned(b.block)
	b.block = nil
}

// paddedSize rounds n up to the next multiple of Alignment, panicking on
// overflow.
func paddedSize(n int) int {
	if n > math.MaxInt-(Alignment-1) {
		panic("buffer: padded allocation size overflows")
	}
	return (n + Alignment - 1) &^ (Alignment - 1)
}
