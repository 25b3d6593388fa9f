//go:build !baremetal

package busctrl

import "github.com/halmap/mcu/mmio"

// Hosted simulation of the fabric's register-level write semantics: the
// three atomic alias bases, write-to-clear counters and the read-only
// acknowledge bit. Arbitration itself is not modeled, tests drive the
// hardware side with mmio.Poke.

const (
	offPriority    = 0x00
	offPriorityAck = 0x04
)

func init() {
	mmio.Alias(xorBase, base, Block.Size, mmio.AliasXOR)
	mmio.Alias(setBase, base, Block.Size, mmio.AliasSET)
	mmio.Alias(clrBase, base, Block.Size, mmio.AliasCLR)
	mmio.Handle(base, Block.Size, nil, simStore)
	Reset()
}

// Reset restores the documented power-on-reset state of the whole block.
func Reset() {
	mmio.LoadImage(base, Block.ResetImage())
}

func simStore(addr uintptr, v uint32) {
	off := addr - base
	switch off {
	case offPriority:
		mmio.Poke(addr, v&uint32(Proc0|Proc1|DMARead|DMAWrite))
	case offPriorityAck: // read-only
	default:
		if off%8 == 0 { // PERFCTRn, any write clears
			mmio.Poke(addr, 0)
		} else { // PERFSELn
			mmio.Poke(addr, v&0x1f)
		}
	}
}
