//go:build !baremetal

package busctrl_test

import (
	"testing"
	"unsafe"

	"github.com/halmap/mcu/mmio"
	"github.com/halmap/mcu/rp2040/busctrl"
)

const base uintptr = 0x4003_0000

func TestLayout(t *testing.T) {
	if err := busctrl.Block.Validate(); err != nil {
		t.Fatal(err)
	}
	if busctrl.Block.Base != base {
		t.Errorf("base address 0x%08x, want 0x%08x", busctrl.Block.Base, base)
	}
	if size := unsafe.Sizeof(busctrl.Registers{}); size != 0x28 {
		t.Errorf("register block spans 0x%x bytes, want 0x28", size)
	}
	if busctrl.Block.Size != 0x28 {
		t.Errorf("layout table spans 0x%x bytes, want 0x28", busctrl.Block.Size)
	}
}

func TestOffsets(t *testing.T) {
	var r busctrl.Registers
	if off := unsafe.Offsetof(r.PriorityAck); off != 0x04 {
		t.Errorf("BUS_PRIORITY_ACK at offset 0x%02x, want 0x04", off)
	}
	if off := unsafe.Offsetof(r.Perf); off != 0x08 {
		t.Errorf("PERFCTR0 at offset 0x%02x, want 0x08", off)
	}
	for n := range r.Perf {
		ctr := uintptr(unsafe.Pointer(&r.Perf[n].Ctr)) - uintptr(unsafe.Pointer(&r))
		sel := uintptr(unsafe.Pointer(&r.Perf[n].Sel)) - uintptr(unsafe.Pointer(&r))
		if want := uintptr(0x08 + n*8); ctr != want {
			t.Errorf("PERFCTR%d at offset 0x%02x, want 0x%02x", n, ctr, want)
		}
		if want := uintptr(0x0c + n*8); sel != want {
			t.Errorf("PERFSEL%d at offset 0x%02x, want 0x%02x", n, sel, want)
		}
	}
}

func TestReset(t *testing.T) {
	busctrl.Reset()
	regs := busctrl.Regs()

	// all masters arbitrate at low priority after reset
	if got := regs.Priority.Load(); got != 0 {
		t.Errorf("BUS_PRIORITY resets to 0x%08x, want 0", uint32(got))
	}
	if got := regs.PriorityAck.Load(); got != 0 {
		t.Errorf("BUS_PRIORITY_ACK resets to 0x%08x, want 0", uint32(got))
	}
	for n := range regs.Perf {
		if got := busctrl.Counter(n); got != 0 {
			t.Errorf("PERFCTR%d resets to %d, want 0", n, got)
		}
		if got := regs.Perf[n].Sel.Load(); got != busctrl.ResetPerfSel {
			t.Errorf("PERFSEL%d resets to 0x%02x, want 0x1f", n, uint32(got))
		}
	}
}

func TestAtomicAliases(t *testing.T) {
	busctrl.Reset()
	regs := busctrl.Regs()

	// after reset, raising PROC0 through the SET alias must read back
	// through the normal binding
	busctrl.SetRegs().Priority.Store(busctrl.Proc0)
	if got := regs.Priority.Load(); got != busctrl.Proc0 {
		t.Errorf("BUS_PRIORITY = 0x%08x, want 0x00000001", uint32(got))
	}

	for _, tc := range []struct {
		name    string
		x, m    busctrl.Priority
		via     *busctrl.Registers
		want    busctrl.Priority
	}{
		{"set", 0, busctrl.Proc1 | busctrl.DMAWrite, busctrl.SetRegs(), busctrl.Proc1 | busctrl.DMAWrite},
		{"set kept", busctrl.Proc0, busctrl.Proc0, busctrl.SetRegs(), busctrl.Proc0},
		{"clr", busctrl.Proc0 | busctrl.DMARead, busctrl.DMARead, busctrl.ClrRegs(), busctrl.Proc0},
		{"clr all", busctrl.Proc0 | busctrl.Proc1 | busctrl.DMARead | busctrl.DMAWrite,
			busctrl.Proc0 | busctrl.Proc1 | busctrl.DMARead | busctrl.DMAWrite, busctrl.ClrRegs(), 0},
		{"xor", busctrl.Proc0 | busctrl.Proc1, busctrl.Proc1 | busctrl.DMAWrite, busctrl.XorRegs(),
			busctrl.Proc0 | busctrl.DMAWrite},
	} {
		mmio.Poke(base, uint32(tc.x))
		tc.via.Priority.Store(tc.m)
		if got := regs.Priority.Load(); got != tc.want {
			t.Errorf("%s: 0x%04x op 0x%04x = 0x%04x, want 0x%04x",
				tc.name, uint32(tc.x), uint32(tc.m), uint32(got), uint32(tc.want))
		}
	}

	// reads through an alias behave like the normal binding
	mmio.Poke(base, uint32(busctrl.DMARead))
	if got := busctrl.XorRegs().Priority.Load(); got != busctrl.DMARead {
		t.Errorf("alias read = 0x%04x, want DMA_R", uint32(got))
	}
}

func TestPriorityHelpers(t *testing.T) {
	busctrl.Reset()
	regs := busctrl.Regs()

	busctrl.RaisePriority(busctrl.Proc0 | busctrl.DMAWrite)
	if got := regs.Priority.Load(); got != busctrl.Proc0|busctrl.DMAWrite {
		t.Errorf("after raise: 0x%04x", uint32(got))
	}
	busctrl.LowerPriority(busctrl.DMAWrite)
	if got := regs.Priority.Load(); got != busctrl.Proc0 {
		t.Errorf("after lower: 0x%04x", uint32(got))
	}
	busctrl.TogglePriority(busctrl.Proc0 | busctrl.Proc1)
	if got := regs.Priority.Load(); got != busctrl.Proc1 {
		t.Errorf("after toggle: 0x%04x", uint32(got))
	}

	if busctrl.PriorityAcked() {
		t.Error("priority acked before arbiters registered it")
	}
	mmio.Poke(base+0x04, 1) // arbiters caught up
	if !busctrl.PriorityAcked() {
		t.Error("priority not acked")
	}
	// the acknowledge bit is read-only
	regs.PriorityAck.Store(0)
	if !busctrl.PriorityAcked() {
		t.Error("software write cleared the read-only acknowledge bit")
	}
}

func TestPerfCounters(t *testing.T) {
	busctrl.Reset()
	regs := busctrl.Regs()

	busctrl.SelectEvent(2, busctrl.SRAM0Contested)
	if got := regs.Perf[2].Sel.Field(busctrl.SelValue); got != uint32(busctrl.SRAM0Contested) {
		t.Errorf("PERFSEL2 = 0x%02x, want 0x0e", got)
	}

	// the selector is 5 bits wide
	regs.Perf[0].Sel.Store(0xffff_ffff)
	if got := regs.Perf[0].Sel.Load(); got != 0x1f {
		t.Errorf("PERFSEL0 = 0x%08x, want 0x1f", uint32(got))
	}

	// the fabric counted some events
	mmio.Poke(base+0x18, 1234)
	if got := busctrl.Counter(2); got != 1234 {
		t.Errorf("PERFCTR2 = %d, want 1234", got)
	}
	// any written value clears the counter
	regs.Perf[2].Ctr.Store(0xffff_ffff)
	if got := busctrl.Counter(2); got != 0 {
		t.Errorf("PERFCTR2 = %d after write, want 0", got)
	}
	mmio.Poke(base+0x18, 56)
	busctrl.ClearCounter(2)
	if got := busctrl.Counter(2); got != 0 {
		t.Errorf("PERFCTR2 = %d after clear, want 0", got)
	}
}

func TestEventValues(t *testing.T) {
	// spot check the selector encoding, contested accesses are the even
	// values
	for _, tc := range []struct {
		e    busctrl.Event
		want uint32
	}{
		{busctrl.APBContested, 0x00},
		{busctrl.APB, 0x01},
		{busctrl.FastPeri, 0x03},
		{busctrl.SRAM5Contested, 0x04},
		{busctrl.SRAM0, 0x0f},
		{busctrl.XIPMainContested, 0x10},
		{busctrl.ROMContested, 0x12},
		{busctrl.ROM, 0x13},
	} {
		if uint32(tc.e) != tc.want {
			t.Errorf("event %d, want 0x%02x", tc.e, tc.want)
		}
	}
}
