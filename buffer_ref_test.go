package buffer

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromBuffer(t *testing.T) {
	b := NewBuffer(32)
	b.Bytes()[17] = 69

	ref := b.IntoRef()
	defer ref.Release()

	sub := ref.Slice(16, 3)
	defer sub.Release()

	assert.Equal(t, 16, sub.Start())
	assert.Equal(t, 3, sub.Len())
	assert.Equal(t, 32, sub.InnerLen())
	assert.EqualValues(t, 69, sub.Bytes()[1])
}

func TestSliceComposition(t *testing.T) {
	b := NewBuffer(100)
	for i := range b.Bytes() {
		b.Bytes()[i] = byte(i)
	}
	ref := b.IntoRef()
	defer ref.Release()

	outer := ref.Slice(10, 50)
	defer outer.Release()
	inner := outer.Slice(5, 20)
	defer inner.Release()

	require.Equal(t, 15, inner.Start())
	require.Equal(t, 20, inner.Len())
	for i, v := range inner.Bytes() {
		require.EqualValues(t, byte(15+i), v)
	}
}

func TestWindowBounds(t *testing.T) {
	b := NewBuffer(16)
	ref := b.IntoRef()
	defer ref.Release()

	// exactly at the limit is fine
	full := ref.Slice(0, 16)
	full.Release()
	empty := ref.Slice(16, 0)
	assert.True(t, empty.IsEmpty())
	empty.Release()

	// one past the limit is a contract violation, named after the
	// entry point that tripped
	assert.PanicsWithValue(t, "buffer: Slice window out of range", func() { ref.Slice(0, 17) })
	assert.Panics(t, func() { ref.Slice(17, 0) })
	assert.Panics(t, func() { ref.Slice(1, 16) })
	assert.Panics(t, func() { ref.Slice(-1, 4) })
	assert.Panics(t, func() { ref.Slice(0, -1) })
}

func TestNewBufferRefBounds(t *testing.T) {
	b := NewBuffer(8)
	ref := NewBufferRef(b, 0, 8)
	defer ref.Release()

	assert.PanicsWithValue(t, "buffer: NewBufferRef window out of range", func() { NewBufferRef(b, 0, 9) })
	assert.Panics(t, func() { NewBufferRef(b, 9, 0) })
}

func TestSliceOfSliceKeepsBufferAlive(t *testing.T) {
	b := FromSlice([]byte{1, 2, 3, 4})
	ref := b.IntoRef()

	sub := ref.Slice(1, 3)
	ref.Release()

	// the sub-slice is the last holder now and still reads valid memory
	require.Equal(t, []byte{2, 3, 4}, sub.Bytes())
	sub.Release()
}

func TestReleaseUnderflow(t *testing.T) {
	b := NewBuffer(4)
	ref := b.IntoRef()
	ref.Release()
	assert.Panics(t, func() { ref.Release() })
}

func TestConcurrentClones(t *testing.T) {
	b := NewBuffer(4096)
	for i := range b.Bytes() {
		b.Bytes()[i] = byte(i * 7)
	}
	ref := b.IntoRef()

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		c := ref.Clone()
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				s := c.Slice(64, 512)
				for j, v := range s.Bytes() {
					if v != byte((64+j)*7) {
						t.Errorf("byte %d read %d", j, v)
						break
					}
				}
				s.Release()
			}
			c.Release()
		}()
	}
	// the goroutines' clones keep the memory alive past this release
	ref.Release()
	wg.Wait()
}
