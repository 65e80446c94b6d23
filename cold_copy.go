package buffer

// ColdCopy copies exactly len(src) bytes from src into dst, bypassing the
// CPU cache on write when the hardware supports streaming stores. It is
// the write path for data that will not be re-read soon: it avoids
// evicting useful cachelines while streaming bulk data through memory.
//
// The caller guarantees len(dst) >= len(src) and that the two slices do
// not overlap. Neither is checked; the inner loop is deliberately
// branch-free of validation, and violating either precondition corrupts
// memory.
func ColdCopy(dst, src []byte) {
	coldCopy(dst, src)
}
