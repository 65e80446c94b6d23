// Package buffer implements an aligned, padded byte buffer and shared
// zero-copy references into that buffer.
//
// These types are meant for high performance pipelines where cacheline
// alignment, SIMD-friendly padding and zero-copy sharing matter. A Buffer
// is allocated aligned to Alignment bytes and its allocation is padded to
// a multiple of Alignment, so fixed-width vector loops never need to
// special-case the tail. Converting a Buffer into a BufferRef freezes it
// and allows cheap, thread-safe, read-only fan-out over sub-windows of
// the same memory.
//
// ColdCopy is the write path for data that will not be re-read soon: on
// hardware with the required vector instructions it uses streaming
// (non-temporal) stores that bypass the CPU cache, everywhere else it is
// an ordinary copy. Both strategies produce identical bytes.
package buffer

// Alignment is the alignment and padding granularity, in bytes, of every
// Buffer allocation. It matches the cacheline size of common hardware.
const Alignment = 64
