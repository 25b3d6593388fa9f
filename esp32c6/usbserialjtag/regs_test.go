//go:build !baremetal

package usbserialjtag_test

import (
	"testing"
	"unsafe"

	"github.com/halmap/mcu/esp32c6/usbserialjtag"
	"github.com/halmap/mcu/mmio"
)

const base uintptr = 0x6000_f000

func TestLayout(t *testing.T) {
	if err := usbserialjtag.Block.Validate(); err != nil {
		t.Fatal(err)
	}
	if usbserialjtag.Block.Base != base {
		t.Errorf("base address 0x%08x, want 0x%08x", usbserialjtag.Block.Base, base)
	}
	if size := unsafe.Sizeof(usbserialjtag.Registers{}); size != 0x84 {
		t.Errorf("register block spans 0x%x bytes, want 0x84", size)
	}
	if usbserialjtag.Block.Size != 0x84 {
		t.Errorf("layout table spans 0x%x bytes, want 0x84", usbserialjtag.Block.Size)
	}
}

func TestOffsets(t *testing.T) {
	var r usbserialjtag.Registers
	for _, tc := range []struct {
		offset uintptr
		name   string
		field  unsafe.Pointer
	}{
		{0x00, "EP1", unsafe.Pointer(&r.EP1)},
		{0x04, "EP1_CONF", unsafe.Pointer(&r.EP1Conf)},
		{0x08, "INT_RAW", unsafe.Pointer(&r.IntRaw)},
		{0x0c, "INT_ST", unsafe.Pointer(&r.IntSt)},
		{0x10, "INT_ENA", unsafe.Pointer(&r.IntEna)},
		{0x14, "INT_CLR", unsafe.Pointer(&r.IntClr)},
		{0x18, "CONF0", unsafe.Pointer(&r.Conf0)},
		{0x1c, "TEST", unsafe.Pointer(&r.Test)},
		{0x20, "JFIFO_ST", unsafe.Pointer(&r.JFifoSt)},
		{0x24, "FRAM_NUM", unsafe.Pointer(&r.FrameNum)},
		{0x28, "IN_EP0_ST", unsafe.Pointer(&r.InEp[0])},
		{0x2c, "IN_EP1_ST", unsafe.Pointer(&r.InEp[1])},
		{0x30, "IN_EP2_ST", unsafe.Pointer(&r.InEp[2])},
		{0x34, "IN_EP3_ST", unsafe.Pointer(&r.InEp[3])},
		{0x38, "OUT_EP0_ST", unsafe.Pointer(&r.OutEp[0])},
		{0x3c, "OUT_EP1_ST", unsafe.Pointer(&r.OutEp[1])},
		{0x40, "OUT_EP2_ST", unsafe.Pointer(&r.OutEp[2])},
		{0x44, "MISC_CONF", unsafe.Pointer(&r.MiscConf)},
		{0x48, "MEM_CONF", unsafe.Pointer(&r.MemConf)},
		{0x4c, "CHIP_RST", unsafe.Pointer(&r.ChipRst)},
		{0x50, "SET_LINE_CODE_W0", unsafe.Pointer(&r.SetLineCodeW0)},
		{0x54, "SET_LINE_CODE_W1", unsafe.Pointer(&r.SetLineCodeW1)},
		{0x58, "GET_LINE_CODE_W0", unsafe.Pointer(&r.GetLineCodeW0)},
		{0x5c, "GET_LINE_CODE_W1", unsafe.Pointer(&r.GetLineCodeW1)},
		{0x60, "CONFIG_UPDATE", unsafe.Pointer(&r.ConfigUpdate)},
		{0x64, "SER_AFIFO_CONFIG", unsafe.Pointer(&r.SerAfifoConfig)},
		{0x68, "BUS_RESET_ST", unsafe.Pointer(&r.BusResetSt)},
		{0x80, "DATE", unsafe.Pointer(&r.Date)},
	} {
		got := uintptr(tc.field) - uintptr(unsafe.Pointer(&r))
		if got != tc.offset {
			t.Errorf("%s at offset 0x%02x, want 0x%02x", tc.name, got, tc.offset)
		}
		reg := usbserialjtag.Block.Reg(tc.offset)
		if reg == nil || reg.Name != tc.name {
			t.Errorf("layout table at 0x%02x: got %v, want %s", tc.offset, reg, tc.name)
		}
	}
}

func TestReset(t *testing.T) {
	usbserialjtag.Reset()
	regs := usbserialjtag.Regs()

	if got := regs.IntRaw.Load(); got != usbserialjtag.InEmpty {
		t.Errorf("INT_RAW resets to 0x%08x, want 0x00000008", uint32(got))
	}
	if got := regs.IntSt.Load(); got != 0 {
		t.Errorf("INT_ST resets to 0x%08x, want 0", uint32(got))
	}
	if got := regs.IntEna.Load(); got != 0 {
		t.Errorf("INT_ENA resets to 0x%08x, want 0", uint32(got))
	}
	if got := regs.IntClr.Load(); got != 0 {
		t.Errorf("INT_CLR resets to 0x%08x, want 0", uint32(got))
	}
	if got := regs.EP1Conf.Load(); got != usbserialjtag.Ep1Conf(usbserialjtag.ResetEP1Conf) {
		t.Errorf("EP1_CONF resets to 0x%08x, want 0x00000002", uint32(got))
	}
	if got := regs.Conf0.Load(); got != usbserialjtag.UsbPadEnable|usbserialjtag.DpPullup {
		t.Errorf("CONF0 resets to 0x%08x, want 0x00004200", uint32(got))
	}
	if got := regs.BusResetSt.Load(); got != usbserialjtag.BusResetReleased {
		t.Errorf("BUS_RESET_ST resets to 0x%08x, want 0x00000001", uint32(got))
	}
	if !usbserialjtag.TxFree() {
		t.Error("IN FIFO not free after reset")
	}
	if usbserialjtag.RxAvail() {
		t.Error("OUT FIFO has data after reset")
	}
}

func TestFieldRoundTrip(t *testing.T) {
	usbserialjtag.Reset()
	regs := usbserialjtag.Regs()

	for _, x := range []uint32{0, 1, 2, 3} {
		regs.Conf0.SetField(usbserialjtag.Vrefh, x)
		if got := regs.Conf0.Field(usbserialjtag.Vrefh); got != x {
			t.Errorf("VREFH wrote %d, read %d", x, got)
		}
	}
	// field writes must leave the rest of the register alone
	if got := regs.Conf0.LoadBits(usbserialjtag.UsbPadEnable | usbserialjtag.DpPullup); got !=
		usbserialjtag.UsbPadEnable|usbserialjtag.DpPullup {
		t.Errorf("VREFH write touched other bits: CONF0 = 0x%08x", uint32(regs.Conf0.Load()))
	}

	regs.Conf0.SetBits(usbserialjtag.PhySel)
	if regs.Conf0.LoadBits(usbserialjtag.PhySel) == 0 {
		t.Error("PHY_SEL not set")
	}
	regs.Conf0.ClearBits(usbserialjtag.PhySel)
	if regs.Conf0.LoadBits(usbserialjtag.PhySel) != 0 {
		t.Error("PHY_SEL not cleared")
	}
}

func TestInterrupts(t *testing.T) {
	usbserialjtag.Reset()
	regs := usbserialjtag.Regs()

	// hardware raises SOF and OUT_RECV_PKT
	mmio.Poke(base+0x08, uint32(usbserialjtag.SOF|usbserialjtag.OutRecvPkt))

	if got := usbserialjtag.Pending(); got != 0 {
		t.Errorf("interrupts pending while all masked: 0x%04x", uint16(got))
	}
	usbserialjtag.EnableInterrupts(usbserialjtag.SOF)
	if got := usbserialjtag.Pending(); got != usbserialjtag.SOF {
		t.Errorf("pending 0x%04x, want SOF", uint16(got))
	}
	if got := regs.IntRaw.Load(); got != usbserialjtag.SOF|usbserialjtag.OutRecvPkt {
		t.Errorf("raw 0x%04x, want SOF|OUT_RECV_PKT", uint16(got))
	}

	usbserialjtag.ClearInterrupts(usbserialjtag.SOF)
	if got := usbserialjtag.Pending(); got != 0 {
		t.Errorf("pending 0x%04x after clear", uint16(got))
	}
	if got := regs.IntRaw.Load(); got != usbserialjtag.OutRecvPkt {
		t.Errorf("raw 0x%04x after clear, want OUT_RECV_PKT", uint16(got))
	}

	// the raw bank itself is write-1-to-clear
	regs.IntRaw.Store(usbserialjtag.OutRecvPkt)
	if got := regs.IntRaw.Load(); got != 0 {
		t.Errorf("raw 0x%04x after write-to-clear, want 0", uint16(got))
	}

	usbserialjtag.DisableInterrupts(usbserialjtag.SOF)
	if got := regs.IntEna.Load(); got != 0 {
		t.Errorf("ena 0x%04x after disable, want 0", uint16(got))
	}
}

func TestLineCoding(t *testing.T) {
	usbserialjtag.Reset()
	regs := usbserialjtag.Regs()

	// host sends SET_LINE_CODING 115200 8N1
	mmio.Poke(base+0x50, 115200)
	mmio.Poke(base+0x54, 8<<16|0<<8|0)

	rate, charFormat, parityType, dataBits := usbserialjtag.LineCoding()
	if rate != 115200 || charFormat != 0 || parityType != 0 || dataBits != 8 {
		t.Errorf("LineCoding() = %d %d %d %d", rate, charFormat, parityType, dataBits)
	}

	// the SET words are host supplied, software writes must be ignored
	regs.SetLineCodeW0.Store(9600)
	if got := regs.SetLineCodeW0.Load(); got != 115200 {
		t.Errorf("SET_LINE_CODE_W0 accepted a software write: %d", got)
	}

	// the GET words are software configured mirrors, note the reversed
	// byte order relative to the SET word
	usbserialjtag.SetLineCoding(115200, 0, 0, 8)
	if got := regs.GetLineCodeW0.Load(); got != 115200 {
		t.Errorf("GET_LINE_CODE_W0 = %d", got)
	}
	if got := regs.GetLineCodeW1.Load(); got != 8 {
		t.Errorf("GET_LINE_CODE_W1 = 0x%08x, want 0x00000008", uint32(got))
	}
}

func TestFlushTx(t *testing.T) {
	usbserialjtag.Reset()
	regs := usbserialjtag.Regs()

	usbserialjtag.FlushTx()
	// WR_DONE self-clears and the read-only FIFO status stays intact
	if got := regs.EP1Conf.Load(); got != usbserialjtag.Ep1Conf(usbserialjtag.ResetEP1Conf) {
		t.Errorf("EP1_CONF = 0x%08x after flush, want 0x00000002", uint32(got))
	}
}

func TestFifoData(t *testing.T) {
	usbserialjtag.Reset()
	regs := usbserialjtag.Regs()

	regs.EP1.SetField(usbserialjtag.RdwrByte, 'A')
	if got := regs.EP1.Field(usbserialjtag.RdwrByte); got != 'A' {
		t.Errorf("RDWR_BYTE = 0x%02x, want 0x41", got)
	}
}

func TestSOFFrame(t *testing.T) {
	usbserialjtag.Reset()

	mmio.Poke(base+0x24, 0x2a5)
	if got := usbserialjtag.SOFFrame(); got != 0x2a5 {
		t.Errorf("SOFFrame() = 0x%03x, want 0x2a5", got)
	}
}
