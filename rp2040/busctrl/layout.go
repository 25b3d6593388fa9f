package busctrl

import "github.com/halmap/mcu/mmio"

// Power-on-reset words. PERFSEL resets to 0x1f, an unimplemented event.
const (
	ResetPriority    = 0x0000_0000 // all masters at low priority
	ResetPriorityAck = 0x0000_0000
	ResetPerfCtr     = 0x0000_0000
	ResetPerfSel     = 0x0000_001f
)

// Block is the bus fabric layout table, the bit-exact contract against the
// datasheet. It describes the normal base, the three alias bases repeat the
// identical layout.
var Block = mmio.Block{
	Name: "BUSCTRL",
	Base: base,
	Size: 0x28,
	Regs: []mmio.Reg{
		{Name: "BUS_PRIORITY", Offset: 0x00, Reset: ResetPriority, Bits: []mmio.BitField{
			{Name: "PROC0", Mask: 0x0000_0001, Access: mmio.RW},
			{Mask: 0x0000_000e, Access: mmio.Reserved},
			{Name: "PROC1", Mask: 0x0000_0010, Access: mmio.RW},
			{Mask: 0x0000_00e0, Access: mmio.Reserved},
			{Name: "DMA_R", Mask: 0x0000_0100, Access: mmio.RW},
			{Mask: 0x0000_0e00, Access: mmio.Reserved},
			{Name: "DMA_W", Mask: 0x0000_1000, Access: mmio.RW},
			{Mask: 0xffff_e000, Access: mmio.Reserved},
		}},
		{Name: "BUS_PRIORITY_ACK", Offset: 0x04, Reset: ResetPriorityAck, Bits: []mmio.BitField{
			{Name: "BUS_PRIORITY_ACK", Mask: 0x0000_0001, Access: mmio.RO},
			{Mask: 0xffff_fffe, Access: mmio.Reserved},
		}},
		perfCtr("PERFCTR0", 0x08),
		perfSel("PERFSEL0", 0x0c),
		perfCtr("PERFCTR1", 0x10),
		perfSel("PERFSEL1", 0x14),
		perfCtr("PERFCTR2", 0x18),
		perfSel("PERFSEL2", 0x1c),
		perfCtr("PERFCTR3", 0x20),
		perfSel("PERFSEL3", 0x24),
	},
}

func perfCtr(name string, offset uintptr) mmio.Reg {
	return mmio.Reg{Name: name, Offset: offset, Reset: ResetPerfCtr, Bits: []mmio.BitField{
		{Name: name, Mask: 0x00ff_ffff, Access: mmio.WC},
		{Mask: 0xff00_0000, Access: mmio.Reserved},
	}}
}

func perfSel(name string, offset uintptr) mmio.Reg {
	return mmio.Reg{Name: name, Offset: offset, Reset: ResetPerfSel, Bits: []mmio.BitField{
		{Name: name, Mask: 0x0000_001f, Access: mmio.RW},
		{Mask: 0xffff_ffe0, Access: mmio.Reserved},
	}}
}
