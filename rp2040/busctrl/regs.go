package busctrl

import "github.com/halmap/mcu/mmio"

// The same register layout is mapped at four physical base addresses. Writes
// through the XOR, SET and CLR bases atomically toggle, set or clear exactly
// the written bits of the addressed register, reads behave like the normal
// base.
const (
	base    uintptr = 0x4003_0000
	xorBase uintptr = 0x4003_1000
	setBase uintptr = 0x4003_2000
	clrBase uintptr = 0x4003_3000
)

// Regs returns the bus fabric registers with plain read/write semantics.
func Regs() *Registers { return mmio.Regs[Registers](base) }

// XorRegs returns the binding whose writes toggle the written bits.
func XorRegs() *Registers { return mmio.Regs[Registers](xorBase) }

// SetRegs returns the binding whose writes set the written bits.
func SetRegs() *Registers { return mmio.Regs[Registers](setBase) }

// ClrRegs returns the binding whose writes clear the written bits.
func ClrRegs() *Registers { return mmio.Regs[Registers](clrBase) }

// Registers is the bus fabric register block, 0x28 bytes.
type Registers struct {
	Priority    mmio.R32[Priority]    // 0x00 arbitration priority per master
	PriorityAck mmio.R32[PriorityAck] // 0x04 priority update acknowledge (RO)
	Perf        [4]PerfCounter        // 0x08 performance counter/selector pairs
}

// PerfCounter is one of the four performance counter and event selector
// pairs.
type PerfCounter struct {
	Ctr mmio.R32[PerfCtr] // saturating event counter, any write clears (WC)
	Sel mmio.R32[PerfSel] // event selector
}

// Priority sets the bus fabric arbitration priority of each master. Masters
// at the same level are arbitrated round-robin, high priority masters always
// win over low.
type Priority uint32

const (
	Proc0    Priority = 1 << 0  // processor core 0
	Proc1    Priority = 1 << 4  // processor core 1
	DMARead  Priority = 1 << 8  // DMA read port
	DMAWrite Priority = 1 << 12 // DMA write port
)

// Priority field values
const (
	LowPriority  = 0
	HighPriority = 1
)

// PriorityAck signals that all arbiters have registered the new global
// priority levels. Arbiters update their local copy when servicing a new
// nonsequential access, in normal circumstances almost immediately.
type PriorityAck uint32

const Ack PriorityAck = 1 << 0

// PerfCtr is a saturating counter of one bus fabric event. Reads return the
// live count, any write clears it.
type PerfCtr uint32

var CtrValue = mmio.Field[PerfCtr]{Mask: 0x00ff_ffff, Pos: 0}

// PerfSel selects the event counted by the corresponding PerfCtr.
type PerfSel uint32

var SelValue = mmio.Field[PerfSel]{Mask: 0x1f, Pos: 0}

// Event is a PerfSel value: either contested accesses or all accesses on one
// downstream port of the main crossbar.
type Event uint32

const (
	APBContested Event = iota
	APB
	FastPeriContested
	FastPeri
	SRAM5Contested
	SRAM5
	SRAM4Contested
	SRAM4
	SRAM3Contested
	SRAM3
	SRAM2Contested
	SRAM2
	SRAM1Contested
	SRAM1
	SRAM0Contested
	SRAM0
	XIPMainContested
	XIPMain
	ROMContested
	ROM
)
