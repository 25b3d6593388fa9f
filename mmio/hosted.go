//go:build !baremetal

package mmio

import (
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/halmap/mcu/debug"
)

// The full 32-bit physical address space is simulated in a single anonymous
// mapping, so that a register bound at physical address p lives at arena+p.
// NORESERVE keeps the mapping cheap, only touched pages are backed. Requires
// a 64-bit host.
var arena = func() uintptr {
	p, err := unix.Mmap(-1, 0, 1<<32,
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_PRIVATE|unix.MAP_ANON|unix.MAP_NORESERVE)
	if err != nil {
		panic(err)
	}
	return uintptr(unsafe.Pointer(&p[0]))
}()

// Regs binds a register aggregate at a physical base address. The returned
// pointer must be treated as volatile storage, every access is a bus
// transaction.
func Regs[T any](base uintptr) *T {
	debug.Assert(base%4 == 0, "mmio: unaligned base address")
	return (*T)(unsafe.Pointer(arena + base))
}

// LoadFunc models the bus read of one register word.
type LoadFunc func(addr uintptr) uint32

// StoreFunc models the bus write of one register word.
type StoreFunc func(addr uintptr, v uint32)

type busRange struct {
	base, size uintptr
	load       LoadFunc
	store      StoreFunc
}

var busRanges []busRange

// Handle installs load and store handlers for the physical address range
// [base, base+size), so a peripheral package can model its hardware's access
// semantics. Either handler may be nil to keep plain storage behavior.
// Handlers receive physical addresses and must use Peek and Poke to touch
// backing storage. Must be called during package initialization, the registry
// is not synchronized.
func Handle(base, size uintptr, load LoadFunc, store StoreFunc) {
	debug.Assert(base%4 == 0 && size%4 == 0, "mmio: unaligned bus range")
	busRanges = append(busRanges, busRange{base, size, load, store})
}

// AliasOp selects the atomic update performed by a hardware alias address
// range.
type AliasOp uint8

const (
	AliasXOR AliasOp = iota // toggle the written bits
	AliasSET                // set the written bits
	AliasCLR                // clear the written bits
)

// Alias maps the physical range [alias, alias+size) onto the same backing
// storage as [target, target+size). Reads return the target's value, writes
// perform the atomic bitwise update op on it, combining inside the simulated
// hardware rather than via a software read-modify-write. The combined value
// passes through the target's own handlers, so its register semantics still
// apply.
func Alias(alias, target, size uintptr, op AliasOp) {
	Handle(alias, size,
		func(addr uintptr) uint32 {
			return physLoad(target + (addr - alias))
		},
		func(addr uintptr, v uint32) {
			t := target + (addr - alias)
			switch op {
			case AliasXOR:
				physStore(t, Peek(t)^v)
			case AliasSET:
				physStore(t, Peek(t)|v)
			case AliasCLR:
				physStore(t, Peek(t)&^v)
			}
		})
}

// Peek reads the backing storage at a physical address, bypassing handlers.
// It is the hardware's view of its own register state, also used by tests to
// observe raw storage.
func Peek(addr uintptr) uint32 {
	return *(*uint32)(unsafe.Pointer(arena + addr))
}

// Poke writes the backing storage at a physical address, bypassing handlers.
// Used by handlers themselves and by tests to model hardware-driven state
// changes like an interrupt raw bit getting set.
func Poke(addr uintptr, v uint32) {
	*(*uint32)(unsafe.Pointer(arena + addr)) = v
}

// LoadImage pokes an image of words at ascending offsets from base,
// typically a Block's ResetImage for software-simulated reset.
func LoadImage(base uintptr, img []uint32) {
	for i, v := range img {
		Poke(base+uintptr(i)*4, v)
	}
}

func findRange(addr uintptr) *busRange {
	for i := range busRanges {
		r := &busRanges[i]
		if addr >= r.base && addr < r.base+r.size {
			return r
		}
	}
	return nil
}

func physLoad(phys uintptr) uint32 {
	if r := findRange(phys); r != nil && r.load != nil {
		return r.load(phys)
	}
	return Peek(phys)
}

func physStore(phys uintptr, v uint32) {
	if r := findRange(phys); r != nil && r.store != nil {
		r.store(phys, v)
		return
	}
	Poke(phys, v)
}

func load32(addr uintptr) uint32 {
	if phys := addr - arena; phys < 1<<32 {
		return physLoad(phys)
	}
	return *(*uint32)(unsafe.Pointer(addr))
}

func store32(addr uintptr, v uint32) {
	if phys := addr - arena; phys < 1<<32 {
		physStore(phys, v)
		return
	}
	*(*uint32)(unsafe.Pointer(addr)) = v
}
