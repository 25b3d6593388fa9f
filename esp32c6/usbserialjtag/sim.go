//go:build !baremetal

package usbserialjtag

import "github.com/halmap/mcu/mmio"

// Hosted simulation of the controller's register-level write semantics:
// writable masks from the layout table, the interrupt bank behavior and the
// self-clearing FIFO flush bit. No USB protocol behavior is modeled, tests
// drive hardware-side state changes with mmio.Poke.

const (
	offEP1Conf      = 0x04
	offIntRaw       = 0x08
	offIntSt        = 0x0c
	offIntEna       = 0x10
	offIntClr       = 0x14
	offConfigUpdate = 0x60
)

var writable [0x84 / 4]uint32

func init() {
	for i := range Block.Regs {
		r := &Block.Regs[i]
		writable[r.Offset/4] = r.WritableMask()
	}
	mmio.Handle(base, Block.Size, simLoad, simStore)
	Reset()
}

// Reset restores the documented power-on-reset state of the whole block.
func Reset() {
	mmio.LoadImage(base, Block.ResetImage())
}

func simLoad(addr uintptr) uint32 {
	switch addr - base {
	case offIntSt: // RAW masked by ENA
		return mmio.Peek(base+offIntRaw) & mmio.Peek(base+offIntEna)
	case offIntClr: // write-only bank
		return 0
	}
	return mmio.Peek(addr)
}

func simStore(addr uintptr, v uint32) {
	switch addr - base {
	case offIntRaw, offIntClr: // write 1 to clear the raw bit
		raw := mmio.Peek(base + offIntRaw)
		mmio.Poke(base+offIntRaw, raw&^(v&uint32(IntAll)))
		return
	case offEP1Conf, offConfigUpdate: // WT bits self-clear, nothing stored
		return
	}
	mask := writable[(addr-base)/4]
	mmio.Poke(addr, v&mask|mmio.Peek(addr)&^mask)
}
