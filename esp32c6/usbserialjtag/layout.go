package usbserialjtag

import "github.com/halmap/mcu/mmio"

// Power-on-reset words. The EP1_CONF value includes the read-only
// SERIAL_IN_EP_DATA_FREE bit, the documented constant is authoritative for
// simulated reset state.
const (
	ResetEP1           = 0x0000_0000
	ResetEP1Conf       = 0x0000_0002
	ResetIntRaw        = 0x0000_0008 // IN_EMPTY set at reset
	ResetIntSt         = 0x0000_0000
	ResetIntEna        = 0x0000_0000
	ResetIntClr        = 0x0000_0000
	ResetConf0         = 0x0000_4200 // USB_PAD_ENABLE, DP_PULLUP
	ResetTest          = 0x0000_0030
	ResetJFifoSt       = 0x0000_0044 // both JTAG FIFOs empty
	ResetFrameNum      = 0x0000_0000
	ResetInEp          = 0x0000_0001
	ResetOutEp         = 0x0000_0000
	ResetMiscConf      = 0x0000_0000
	ResetMemConf       = 0x0000_0002 // USB_MEM_CLK_EN
	ResetChipRst       = 0x0000_0000
	ResetSetLineCodeW0 = 0x0000_0000
	ResetSetLineCodeW1 = 0x0000_0000
	ResetGetLineCodeW0 = 0x0000_0000
	ResetGetLineCodeW1 = 0x0000_0000
	ResetConfigUpdate  = 0x0000_0000
	ResetSerAfifo      = 0x0000_0000
	ResetBusResetSt    = 0x0000_0001
	ResetDate          = 0x0210_9220
)

// Block is the controller's layout table, the bit-exact contract against the
// datasheet. Field names follow the datasheet vocabulary.
var Block = mmio.Block{
	Name: "USB_SERIAL_JTAG",
	Base: base,
	Size: 0x84,
	Regs: []mmio.Reg{
		{Name: "EP1", Offset: 0x00, Reset: ResetEP1, Bits: []mmio.BitField{
			{Name: "RDWR_BYTE", Mask: 0x0000_00ff, Access: mmio.RW},
			{Mask: 0xffff_ff00, Access: mmio.Reserved},
		}},
		{Name: "EP1_CONF", Offset: 0x04, Reset: ResetEP1Conf, Bits: []mmio.BitField{
			{Name: "WR_DONE", Mask: 0x0000_0001, Access: mmio.WT},
			{Name: "SERIAL_IN_EP_DATA_FREE", Mask: 0x0000_0002, Access: mmio.RO},
			{Name: "SERIAL_OUT_EP_DATA_AVAIL", Mask: 0x0000_0004, Access: mmio.RO},
			{Mask: 0xffff_fff8, Access: mmio.Reserved},
		}},
		{Name: "INT_RAW", Offset: 0x08, Reset: ResetIntRaw, Bits: intBits(mmio.RWTC)},
		{Name: "INT_ST", Offset: 0x0c, Reset: ResetIntSt, Bits: intBits(mmio.RO)},
		{Name: "INT_ENA", Offset: 0x10, Reset: ResetIntEna, Bits: intBits(mmio.RW)},
		{Name: "INT_CLR", Offset: 0x14, Reset: ResetIntClr, Bits: intBits(mmio.WT)},
		{Name: "CONF0", Offset: 0x18, Reset: ResetConf0, Bits: []mmio.BitField{
			{Name: "PHY_SEL", Mask: 0x0000_0001, Access: mmio.RW},
			{Name: "EXCHG_PINS_OVERRIDE", Mask: 0x0000_0002, Access: mmio.RW},
			{Name: "EXCHG_PINS", Mask: 0x0000_0004, Access: mmio.RW},
			{Name: "VREFH", Mask: 0x0000_0018, Access: mmio.RW},
			{Name: "VREFL", Mask: 0x0000_0060, Access: mmio.RW},
			{Name: "VREF_OVERRIDE", Mask: 0x0000_0080, Access: mmio.RW},
			{Name: "PAD_PULL_OVERRIDE", Mask: 0x0000_0100, Access: mmio.RW},
			{Name: "DP_PULLUP", Mask: 0x0000_0200, Access: mmio.RW},
			{Name: "DP_PULLDOWN", Mask: 0x0000_0400, Access: mmio.RW},
			{Name: "DM_PULLUP", Mask: 0x0000_0800, Access: mmio.RW},
			{Name: "DM_PULLDOWN", Mask: 0x0000_1000, Access: mmio.RW},
			{Name: "PULLUP_VALUE", Mask: 0x0000_2000, Access: mmio.RW},
			{Name: "USB_PAD_ENABLE", Mask: 0x0000_4000, Access: mmio.RW},
			{Name: "USB_JTAG_BRIDGE_EN", Mask: 0x0000_8000, Access: mmio.RW},
			{Mask: 0xffff_0000, Access: mmio.Reserved},
		}},
		{Name: "TEST", Offset: 0x1c, Reset: ResetTest, Bits: []mmio.BitField{
			{Name: "TEST_ENABLE", Mask: 0x0000_0001, Access: mmio.RW},
			{Name: "TEST_USB_OE", Mask: 0x0000_0002, Access: mmio.RW},
			{Name: "TEST_TX_DP", Mask: 0x0000_0004, Access: mmio.RW},
			{Name: "TEST_TX_DM", Mask: 0x0000_0008, Access: mmio.RW},
			{Name: "TEST_RX_RCV", Mask: 0x0000_0010, Access: mmio.RO},
			{Name: "TEST_RX_DP", Mask: 0x0000_0020, Access: mmio.RO},
			{Name: "TEST_RX_DM", Mask: 0x0000_0040, Access: mmio.RO},
			{Mask: 0xffff_ff80, Access: mmio.Reserved},
		}},
		{Name: "JFIFO_ST", Offset: 0x20, Reset: ResetJFifoSt, Bits: []mmio.BitField{
			{Name: "IN_FIFO_CNT", Mask: 0x0000_0003, Access: mmio.RO},
			{Name: "IN_FIFO_EMPTY", Mask: 0x0000_0004, Access: mmio.RO},
			{Name: "IN_FIFO_FULL", Mask: 0x0000_0008, Access: mmio.RO},
			{Name: "OUT_FIFO_CNT", Mask: 0x0000_0030, Access: mmio.RO},
			{Name: "OUT_FIFO_EMPTY", Mask: 0x0000_0040, Access: mmio.RO},
			{Name: "OUT_FIFO_FULL", Mask: 0x0000_0080, Access: mmio.RO},
			{Name: "IN_FIFO_RESET", Mask: 0x0000_0100, Access: mmio.RW},
			{Name: "OUT_FIFO_RESET", Mask: 0x0000_0200, Access: mmio.RW},
			{Mask: 0xffff_fc00, Access: mmio.Reserved},
		}},
		{Name: "FRAM_NUM", Offset: 0x24, Reset: ResetFrameNum, Bits: []mmio.BitField{
			{Name: "SOF_FRAME_INDEX", Mask: 0x0000_07ff, Access: mmio.RO},
			{Mask: 0xffff_f800, Access: mmio.Reserved},
		}},
		{Name: "IN_EP0_ST", Offset: 0x28, Reset: ResetInEp, Bits: inEpBits()},
		{Name: "IN_EP1_ST", Offset: 0x2c, Reset: ResetInEp, Bits: inEpBits()},
		{Name: "IN_EP2_ST", Offset: 0x30, Reset: ResetInEp, Bits: inEpBits()},
		{Name: "IN_EP3_ST", Offset: 0x34, Reset: ResetInEp, Bits: inEpBits()},
		{Name: "OUT_EP0_ST", Offset: 0x38, Reset: ResetOutEp, Bits: outEpBits()},
		{Name: "OUT_EP1_ST", Offset: 0x3c, Reset: ResetOutEp, Bits: outEpBits()},
		{Name: "OUT_EP2_ST", Offset: 0x40, Reset: ResetOutEp, Bits: outEpBits()},
		{Name: "MISC_CONF", Offset: 0x44, Reset: ResetMiscConf, Bits: []mmio.BitField{
			{Name: "CLK_EN", Mask: 0x0000_0001, Access: mmio.RW},
			{Mask: 0xffff_fffe, Access: mmio.Reserved},
		}},
		{Name: "MEM_CONF", Offset: 0x48, Reset: ResetMemConf, Bits: []mmio.BitField{
			{Name: "USB_MEM_PD", Mask: 0x0000_0001, Access: mmio.RW},
			{Name: "USB_MEM_CLK_EN", Mask: 0x0000_0002, Access: mmio.RW},
			{Mask: 0xffff_fffc, Access: mmio.Reserved},
		}},
		{Name: "CHIP_RST", Offset: 0x4c, Reset: ResetChipRst, Bits: []mmio.BitField{
			{Name: "JTAG_RTS", Mask: 0x0000_0001, Access: mmio.RO},
			{Name: "JTAG_DTR", Mask: 0x0000_0002, Access: mmio.RO},
			{Name: "USB_UART_CHIP_RST_DIS", Mask: 0x0000_0004, Access: mmio.RW},
			{Mask: 0xffff_fff8, Access: mmio.Reserved},
		}},
		{Name: "SET_LINE_CODE_W0", Offset: 0x50, Reset: ResetSetLineCodeW0, Bits: []mmio.BitField{
			{Name: "DW_DTE_RATE", Mask: 0xffff_ffff, Access: mmio.RO},
		}},
		{Name: "SET_LINE_CODE_W1", Offset: 0x54, Reset: ResetSetLineCodeW1, Bits: []mmio.BitField{
			{Name: "BCHAR_FORMAT", Mask: 0x0000_00ff, Access: mmio.RO},
			{Name: "BPARITY_TYPE", Mask: 0x0000_ff00, Access: mmio.RO},
			{Name: "BDATA_BITS", Mask: 0x00ff_0000, Access: mmio.RO},
			{Mask: 0xff00_0000, Access: mmio.Reserved},
		}},
		{Name: "GET_LINE_CODE_W0", Offset: 0x58, Reset: ResetGetLineCodeW0, Bits: []mmio.BitField{
			{Name: "GET_DW_DTE_RATE", Mask: 0xffff_ffff, Access: mmio.RW},
		}},
		{Name: "GET_LINE_CODE_W1", Offset: 0x5c, Reset: ResetGetLineCodeW1, Bits: []mmio.BitField{
			{Name: "GET_BDATA_BITS", Mask: 0x0000_00ff, Access: mmio.RW},
			{Name: "GET_BPARITY_TYPE", Mask: 0x0000_ff00, Access: mmio.RW},
			{Name: "GET_BCHAR_FORMAT", Mask: 0x00ff_0000, Access: mmio.RW},
			{Mask: 0xff00_0000, Access: mmio.Reserved},
		}},
		{Name: "CONFIG_UPDATE", Offset: 0x60, Reset: ResetConfigUpdate, Bits: []mmio.BitField{
			{Name: "CONFIG_UPDATE", Mask: 0x0000_0001, Access: mmio.WT},
			{Mask: 0xffff_fffe, Access: mmio.Reserved},
		}},
		{Name: "SER_AFIFO_CONFIG", Offset: 0x64, Reset: ResetSerAfifo, Bits: []mmio.BitField{
			{Name: "SERIAL_IN_AFIFO_RESET_WR", Mask: 0x0000_0001, Access: mmio.RW},
			{Name: "SERIAL_IN_AFIFO_RESET_RD", Mask: 0x0000_0002, Access: mmio.RW},
			{Name: "SERIAL_OUT_AFIFO_RESET_WR", Mask: 0x0000_0004, Access: mmio.RW},
			{Name: "SERIAL_OUT_AFIFO_RESET_RD", Mask: 0x0000_0008, Access: mmio.RW},
			{Name: "SERIAL_OUT_AFIFO_REMPTY", Mask: 0x0000_0010, Access: mmio.RO},
			{Name: "SERIAL_IN_AFIFO_WFULL", Mask: 0x0000_0020, Access: mmio.RO},
			{Mask: 0xffff_ffc0, Access: mmio.Reserved},
		}},
		{Name: "BUS_RESET_ST", Offset: 0x68, Reset: ResetBusResetSt, Bits: []mmio.BitField{
			{Name: "USB_BUS_RESET_ST", Mask: 0x0000_0001, Access: mmio.RO},
			{Mask: 0xffff_fffe, Access: mmio.Reserved},
		}},
		reservedWord(0x6c),
		reservedWord(0x70),
		reservedWord(0x74),
		reservedWord(0x78),
		reservedWord(0x7c),
		{Name: "DATE", Offset: 0x80, Reset: ResetDate, Bits: []mmio.BitField{
			{Name: "DATE", Mask: 0xffff_ffff, Access: mmio.RW},
		}},
	},
}

var intNames = [16]string{
	"IN_FLUSH", "SOF", "OUT_RECV_PKT", "IN_EMPTY",
	"PID_ERR", "CRC5_ERR", "CRC16_ERR", "STUFF_ERR",
	"IN_TOKEN_REC_IN_EP1", "USB_BUS_RESET", "OUT_EP1_ZERO_PAYLOAD", "OUT_EP2_ZERO_PAYLOAD",
	"RTS_CHG", "DTR_CHG", "GET_LINE_CODE", "SET_LINE_CODE",
}

// The four interrupt banks share the bit layout and differ only in access
// discipline.
func intBits(acc mmio.Access) []mmio.BitField {
	bits := make([]mmio.BitField, 0, 17)
	for i, name := range intNames {
		bits = append(bits, mmio.BitField{Name: name + "_INT", Mask: 1 << i, Access: acc})
	}
	return append(bits, mmio.BitField{Mask: 0xffff_0000, Access: mmio.Reserved})
}

func inEpBits() []mmio.BitField {
	return []mmio.BitField{
		{Name: "IN_EP_STATE", Mask: 0x0000_0003, Access: mmio.RO},
		{Name: "IN_EP_WR_ADDR", Mask: 0x0000_01fc, Access: mmio.RO},
		{Name: "IN_EP_RD_ADDR", Mask: 0x0000_fe00, Access: mmio.RO},
		{Mask: 0xffff_0000, Access: mmio.Reserved},
	}
}

func outEpBits() []mmio.BitField {
	return []mmio.BitField{
		{Name: "OUT_EP_STATE", Mask: 0x0000_0003, Access: mmio.RO},
		{Name: "OUT_EP_WR_ADDR", Mask: 0x0000_01fc, Access: mmio.RO},
		{Name: "OUT_EP_RD_ADDR", Mask: 0x0000_fe00, Access: mmio.RO},
		{Name: "EP1_REC_DATA_CNT", Mask: 0x007f_0000, Access: mmio.RO},
		{Mask: 0xff80_0000, Access: mmio.Reserved},
	}
}

func reservedWord(offset uintptr) mmio.Reg {
	return mmio.Reg{Name: "(reserved)", Offset: offset, Bits: []mmio.BitField{
		{Mask: 0xffff_ffff, Access: mmio.Reserved},
	}}
}
