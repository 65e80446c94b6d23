//go:build !purego

package buffer

import (
	"unsafe"

	"golang.org/x/sys/cpu"
)

var hasAVX2 = cpu.X86.HasAVX2

func coldCopy(dst, src []byte) {
	if !hasAVX2 {
		copy(dst, src)
		return
	}
	coldCopyAVX2(unsafe.SliceData(dst), unsafe.SliceData(src), uintptr(len(src)))
}

// coldCopyAVX2 copies n bytes from src to dst using non-temporal stores
// for the aligned body. Implemented in cold_copy_amd64.s.
//
//go:noescape
func coldCopyAVX2(dst, src *byte, n uintptr)
