package buffer

// BufferRef is an immutable, shared reference to a window of a Buffer's
// bytes. Refs are cheap to Clone and to Slice; neither touches the data.
// They are safe to use from many goroutines at once because no method
// mutates the underlying bytes.
//
// Every ref returned by NewBufferRef, IntoRef, Slice or Clone holds one
// count on the backing buffer and owes exactly one Release. The memory is
// released when the count drops to zero, i.e. the lifetime of the buffer
// is the lifetime of its longest-lived ref.
type BufferRef struct {
	inner *Buffer
	start int
	size  int
}

// NewBufferRef creates a shared reference covering length bytes of b
// beginning at start. Ownership of b's memory shifts to the reference
// count; the buffer must no longer be mutated or freed directly.
//
// Panics if the window is negative or reaches past b.Len().
func NewBufferRef(b *Buffer, start, length int) BufferRef {
	checkWindow("NewBufferRef", start, length, b.size)
	b.refs.Add(1)
	return BufferRef{inner: b, start: start, size: length}
}

// Slice returns a new reference to a sub-window of r, expressed relative
// to r. No bytes are copied.
//
// Panics if the window is negative or reaches past r.Len().
func (r BufferRef) Slice(start, length int) BufferRef {
	checkWindow("Slice", start, length, r.size)
	r.inner.refs.Add(1)
	return BufferRef{inner: r.inner, start: r.start + start, size: length}
}

// Clone returns another reference to the same window. Only the reference
// count moves; the bytes are shared.
func (r BufferRef) Clone() BufferRef {
	r.inner.refs.Add(1)
	return r
}

// Release drops this reference. The backing memory is freed when the last
// reference over the buffer is released. Releasing a ref more times than
// it was acquired panics.
func (r BufferRef) Release() {
	switch n := r.inner.refs.Add(-1); {
	case n == 0:
		r.inner.release()
	case n < 0:
		panic("buffer: release of released ref")
	}
}

// Len returns the length of the window.
func (r BufferRef) Len() int {
	return r.size
}

// IsEmpty reports whether the window length is zero.
func (r BufferRef) IsEmpty() bool {
	return r.size == 0
}

// InnerLen returns the logical length of the underlying buffer.
func (r BufferRef) InnerLen() int {
	return r.inner.size
}

// Start returns the window's offset into the underlying buffer.
func (r BufferRef) Start() int {
	return r.start
}

// Bytes returns the window's bytes. The slice aliases the shared buffer:
// it is read-only and must not be used after the ref is released. An
// empty window over a zero-length buffer yields a non-nil empty slice.
func (r BufferRef) Bytes() []byte {
	if r.inner.block == nil {
		return []byte{}
	}
	return r.inner.block[r.start : r.start+r.size : r.start+r.size]
}

// checkWindow validates start+length against a parent of length n. The
// subtraction form cannot overflow, so out-of-range windows always panic
// rather than wrapping. op names the entry point that tripped.
func checkWindow(op string, start, length, n int) {
	if start < 0 || length < 0 || start > n || length > n-start {
		panic("buffer: " + op + " window out of range")
	}
}
