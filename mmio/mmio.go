package mmio

import "unsafe"

// T32 is the set of types that can back a 32-bit register.
type T32 interface{ ~uint32 }

// R32 is a 32-bit register holding a value of type T. It offers two congruent
// views of the same storage: the whole word via Load and Store, and named
// sub-bit-ranges via the mask and Field based accessors. Both views alias the
// identical 4 bytes.
type R32[T T32] struct{ r uint32 }

// U32 is an untyped 32-bit register.
type U32 = R32[uint32]

func (r *R32[T]) Addr() uintptr { return uintptr(unsafe.Pointer(r)) }

//go:nosplit
func (r *R32[T]) Load() T { return T(load32(r.Addr())) }

//go:nosplit
func (r *R32[T]) Store(v T) { store32(r.Addr(), uint32(v)) }

// LoadBits returns the register value masked by mask, still in register
// position.
func (r *R32[T]) LoadBits(mask T) T { return r.Load() & mask }

// StoreBits replaces the bits selected by mask with bits, leaving all other
// bits of the register unchanged. This is a read-modify-write sequence, not
// an atomic update.
func (r *R32[T]) StoreBits(mask, bits T) { r.Store(r.Load()&^mask | bits&mask) }

func (r *R32[T]) SetBits(mask T)   { r.Store(r.Load() | mask) }
func (r *R32[T]) ClearBits(mask T) { r.Store(r.Load() &^ mask) }

// Field returns the current value of field f, shifted down to bit 0.
func (r *R32[T]) Field(f Field[T]) uint32 { return f.Get(r.Load()) }

// SetField writes x to field f, leaving the other bits of the register
// unchanged. x is truncated to the field's width.
func (r *R32[T]) SetField(f Field[T], x uint32) { r.StoreBits(f.Mask, f.Make(x)) }

// Field describes a contiguous range of bits within a 32-bit register: Mask
// selects the bits in register position, Pos is the offset of the least
// significant bit.
type Field[T T32] struct {
	Mask T
	Pos  uint8
}

// BitRange returns the field spanning bits lo through hi, both inclusive.
func BitRange[T T32](lo, hi uint8) Field[T] {
	return Field[T]{Mask: T(1)<<(hi+1) - T(1)<<lo, Pos: lo}
}

// Get extracts the field from register value v.
func (f Field[T]) Get(v T) uint32 { return uint32(v&f.Mask) >> f.Pos }

// Make returns x truncated to the field's width and shifted into register
// position.
func (f Field[T]) Make(x uint32) T { return T(x) << f.Pos & f.Mask }

// Insert replaces the field in register value v with x.
func (f Field[T]) Insert(v T, x uint32) T { return v&^f.Mask | f.Make(x) }
