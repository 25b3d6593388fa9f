//go:build baremetal

package mmio

import (
	"sync/atomic"
	"unsafe"
)

// Regs binds a register aggregate at its physical base address.
func Regs[T any](base uintptr) *T {
	return (*T)(unsafe.Pointer(base))
}

// Atomic accesses stand in for volatile: each one is a real, program-ordered
// bus transaction that the compiler won't merge, reorder or elide.

//go:nosplit
func load32(addr uintptr) uint32 {
	return atomic.LoadUint32((*uint32)(unsafe.Pointer(addr)))
}

//go:nosplit
func store32(addr uintptr, v uint32) {
	atomic.StoreUint32((*uint32)(unsafe.Pointer(addr)), v)
}
