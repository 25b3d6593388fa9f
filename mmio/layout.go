package mmio

import (
	"fmt"
	"math/bits"
)

// Access documents the software access discipline of a field. It is contract
// metadata only and not enforced by the register types: a layout mismatch has
// no runtime detection, it silently addresses the wrong physical bits.
type Access uint8

const (
	Reserved Access = iota // unimplemented bits, writes ignored
	RO                     // reads reflect hardware state, writes ignored
	RW                     // read/write, value persists
	WT                     // write 1 triggers a one-shot action, self-clearing
	WC                     // any write clears the field, reads return live value
	RWTC                   // set by hardware on an event, write 1 to clear
)

func (a Access) String() string {
	switch a {
	case RO:
		return "RO"
	case RW:
		return "R/W"
	case WT:
		return "WT"
	case WC:
		return "WC"
	case RWTC:
		return "R/WTC/SS"
	}
	return "-"
}

// BitField names one sub-bit-range of a register. Mask is the field's bits in
// register position, ((1<<width)-1)<<offset.
type BitField struct {
	Name   string
	Mask   uint32
	Access Access
}

// Reg describes one register of a peripheral block: its byte offset from the
// block base, its power-on-reset word and its fields in ascending bit order,
// with reserved spans listed explicitly so the fields always cover the whole
// word.
type Reg struct {
	Name   string
	Offset uintptr
	Reset  uint32
	Bits   []BitField
}

// WritableMask returns the bits of the register that software writes can
// affect.
func (r *Reg) WritableMask() (mask uint32) {
	for i := range r.Bits {
		switch r.Bits[i].Access {
		case RW, WT, WC, RWTC:
			mask |= r.Bits[i].Mask
		}
	}
	return
}

// Block describes a peripheral's register map: an ordered, gap-exact sequence
// of registers spanning Size bytes at physical address Base. The table is the
// load-bearing contract of a register package and must match the datasheet
// bit for bit.
type Block struct {
	Name string
	Base uintptr
	Size uintptr
	Regs []Reg
}

// Reg returns the register at the given byte offset, or nil.
func (b *Block) Reg(offset uintptr) *Reg {
	for i := range b.Regs {
		if b.Regs[i].Offset == offset {
			return &b.Regs[i]
		}
	}
	return nil
}

// ResetImage returns the power-on-reset state of the whole block, one word
// per register offset.
func (b *Block) ResetImage() []uint32 {
	img := make([]uint32, b.Size/4)
	for i := range b.Regs {
		img[b.Regs[i].Offset/4] = b.Regs[i].Reset
	}
	return img
}

// Validate checks the structural invariants of the block's layout:
//
//   - register offsets are word aligned, strictly ascending and cover every
//     word of the block span exactly
//   - per register, the field masks are non-overlapping and OR to
//     0xffff_ffff, i.e. declared widths including reserved padding sum to
//     exactly 32 bits
//   - reset values only contain bits of implemented fields or are zero in
//     reserved spans
//
// Any violation is a defect with no graceful degradation path, because it
// means reads and writes would silently address the wrong physical bits.
func (b *Block) Validate() error {
	if b.Size%4 != 0 {
		return fmt.Errorf("%s: block span 0x%x is not a whole number of words", b.Name, b.Size)
	}
	want := uintptr(0)
	for i := range b.Regs {
		r := &b.Regs[i]
		if r.Offset%4 != 0 {
			return fmt.Errorf("%s: %s: offset 0x%02x not word aligned", b.Name, r.Name, r.Offset)
		}
		if r.Offset != want {
			return fmt.Errorf("%s: %s: offset 0x%02x, want 0x%02x", b.Name, r.Name, r.Offset, want)
		}
		want += 4
		if err := r.validate(); err != nil {
			return fmt.Errorf("%s: %w", b.Name, err)
		}
	}
	if want != b.Size {
		return fmt.Errorf("%s: registers span 0x%x bytes, documented block span is 0x%x", b.Name, want, b.Size)
	}
	return nil
}

func (r *Reg) validate() error {
	var cover uint32
	for i := range r.Bits {
		f := &r.Bits[i]
		if f.Mask == 0 {
			return fmt.Errorf("%s: field %s has empty mask", r.Name, f.Name)
		}
		norm := f.Mask >> bits.TrailingZeros32(f.Mask)
		if norm&(norm+1) != 0 {
			return fmt.Errorf("%s: field %s mask 0x%08x is not contiguous", r.Name, f.Name, f.Mask)
		}
		if cover&f.Mask != 0 {
			return fmt.Errorf("%s: field %s overlaps a preceding field", r.Name, f.Name)
		}
		// cover is contiguous from bit 0, so cover+1 is the next
		// undeclared bit. Each field must start exactly there.
		if f.Mask&(cover+1) == 0 {
			return fmt.Errorf("%s: field %s at bit %d, want bit %d",
				r.Name, f.Name, bits.TrailingZeros32(f.Mask), bits.TrailingZeros32(cover+1))
		}
		cover |= f.Mask
	}
	if cover != 0xffff_ffff {
		return fmt.Errorf("%s: field widths sum to less than 32 bits, mask coverage 0x%08x", r.Name, cover)
	}
	var reserved uint32
	for i := range r.Bits {
		if r.Bits[i].Access == Reserved {
			reserved |= r.Bits[i].Mask
		}
	}
	if r.Reset&reserved != 0 {
		return fmt.Errorf("%s: reset value 0x%08x has bits in reserved spans", r.Name, r.Reset)
	}
	return nil
}
