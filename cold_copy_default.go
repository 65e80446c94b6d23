//go:build purego || !amd64

package buffer

// Ordinary cache-normal copy for targets without the streaming-store
// path. Same bytes out for the same bytes in, only the cache behavior
// differs.
func coldCopy(dst, src []byte) {
	copy(dst, src)
}
