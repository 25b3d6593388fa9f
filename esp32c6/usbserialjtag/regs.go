package usbserialjtag

import "github.com/halmap/mcu/mmio"

// Regs returns the controller's registers, bound at the physical base
// address.
func Regs() *Registers { return mmio.Regs[Registers](base) }

const base uintptr = 0x6000_f000

// Registers is the controller's register block, laid out exactly as the 0x84
// byte span at the base address. Reserved filler keeps all offsets at their
// documented values.
type Registers struct {
	EP1     mmio.R32[Ep1]     // 0x00 CDC-ACM data FIFO access
	EP1Conf mmio.R32[Ep1Conf] // 0x04 CDC-ACM FIFO control and status

	IntRaw mmio.R32[Int] // 0x08 raw interrupt status (R/WTC/SS)
	IntSt  mmio.R32[Int] // 0x0c masked interrupt status (RO)
	IntEna mmio.R32[Int] // 0x10 interrupt enable (R/W)
	IntClr mmio.R32[Int] // 0x14 interrupt clear (WT)

	Conf0 mmio.R32[Conf0] // 0x18 PHY hardware configuration
	Test  mmio.R32[Test]  // 0x1c PHY test and debug

	JFifoSt  mmio.R32[FifoSt]   // 0x20 JTAG FIFO status and control
	FrameNum mmio.R32[FrameNum] // 0x24 last received SOF frame index

	InEp  [4]mmio.R32[InEpSt]  // 0x28 IN endpoint status (EP0..EP3)
	OutEp [3]mmio.R32[OutEpSt] // 0x38 OUT endpoint status (EP0..EP2)

	MiscConf mmio.R32[MiscConf] // 0x44 register clock control
	MemConf  mmio.R32[MemConf]  // 0x48 USB memory power control
	ChipRst  mmio.R32[ChipRst]  // 0x4c CDC-ACM chip reset control

	SetLineCodeW0 mmio.U32            // 0x50 SET_LINE_CODING dwDTERate (RO, host supplied)
	SetLineCodeW1 mmio.R32[SetLineW1] // 0x54 SET_LINE_CODING b* bytes (RO, host supplied)
	GetLineCodeW0 mmio.U32            // 0x58 GET_LINE_CODING dwDTERate (R/W, software mirror)
	GetLineCodeW1 mmio.R32[GetLineW1] // 0x5c GET_LINE_CODING b* bytes (R/W, software mirror)

	ConfigUpdate   mmio.R32[ConfUpdate] // 0x60 configuration value update trigger
	SerAfifoConfig mmio.R32[SerAfifo]   // 0x64 serial async FIFO reset and status
	BusResetSt     mmio.R32[BusReset]   // 0x68 USB bus reset status

	_ [5]uint32 // 0x6c..0x7c reserved

	Date mmio.U32 // 0x80 version control
}

// Ep1 accesses the CDC-ACM data IN and OUT endpoint FIFOs.
type Ep1 uint32

// RdwrByte writes byte data to the IN FIFO or reads byte data from the OUT
// FIFO.
var RdwrByte = mmio.Field[Ep1]{Mask: 0xff, Pos: 0}

// Ep1Conf controls and reports the CDC-ACM FIFOs.
type Ep1Conf uint32

const (
	WrDone               Ep1Conf = 1 << iota // writing to the IN FIFO is done, flushes the packet (WT)
	SerialInEpDataFree                       // IN FIFO has space available (RO)
	SerialOutEpDataAvail                     // OUT FIFO has data available (RO)
)

// Int is the layout shared by the four interrupt banks. The RAW bank is set
// by hardware and cleared by writing 1 to the same bit position in RAW or
// CLR, never by writing 0. ST reads as RAW masked by ENA.
type Int uint32

const (
	InFlush          Int = 1 << iota // JTAG IN FIFO flushed
	SOF                              // SOF frame received
	OutRecvPkt                       // OUT endpoint received a packet
	InEmpty                          // IN FIFO is empty
	PidErr                           // PID error
	Crc5Err                          // CRC5 error
	Crc16Err                         // CRC16 error
	StuffErr                         // bit stuffing error
	InTokenRecInEp1                  // IN token received in endpoint 1
	UsbBusReset                      // USB bus reset
	OutEp1ZeroPayload                // OUT endpoint 1 received zero payload
	OutEp2ZeroPayload                // OUT endpoint 2 received zero payload
	RtsChg                           // RTS line state changed
	DtrChg                           // DTR line state changed
	GetLineCode                      // GET_LINE_CODING request received
	SetLineCode                      // SET_LINE_CODING request received
)

// IntAll is the mask of all implemented interrupt bits.
const IntAll Int = 1<<16 - 1

// Conf0 configures the USB PHY.
type Conf0 uint32

const (
	PhySel            Conf0 = 1 << 0  // select external instead of internal PHY
	ExchgPinsOverride Conf0 = 1 << 1  // enable software control of D+/D- exchange
	ExchgPins         Conf0 = 1 << 2  // exchange USB D+ and D-
	VrefOverride      Conf0 = 1 << 7  // enable software control of input threshold
	PadPullOverride   Conf0 = 1 << 8  // enable software control of D+/D- pulls
	DpPullup          Conf0 = 1 << 9  // D+ pull up while PadPullOverride
	DpPulldown        Conf0 = 1 << 10 // D+ pull down while PadPullOverride
	DmPullup          Conf0 = 1 << 11 // D- pull up while PadPullOverride
	DmPulldown        Conf0 = 1 << 12 // D- pull down while PadPullOverride
	PullupValue       Conf0 = 1 << 13 // pull up strength while PadPullOverride
	UsbPadEnable      Conf0 = 1 << 14 // enable the USB pad function
	UsbJtagBridgeEn   Conf0 = 1 << 15 // disconnect usb_jtag from internal JTAG
)

// PhySel values
const (
	PhyInternal = 0
	PhyExternal = 1
)

// Single-end input thresholds, in VREF steps.
var (
	Vrefh = mmio.Field[Conf0]{Mask: 0x3 << 3, Pos: 3}
	Vrefl = mmio.Field[Conf0]{Mask: 0x3 << 5, Pos: 5}
)

// Vrefh values, input high threshold
const (
	Vrefh1V76 = iota // 1.76 V
	Vrefh1V84        // 1.84 V
	Vrefh1V92        // 1.92 V
	Vrefh2V00        // 2.00 V
)

// Vrefl values, input low threshold
const (
	Vrefl0V80 = iota // 0.80 V
	Vrefl0V88        // 0.88 V
	Vrefl0V96        // 0.96 V
	Vrefl1V04        // 1.04 V
)

// Test exposes the PHY test mode.
type Test uint32

const (
	TestEnable Test = 1 << iota // enable USB pad test mode
	TestUsbOe                   // enable USB pad output
	TestTxDp                    // D+ output value while TestUsbOe
	TestTxDm                    // D- output value while TestUsbOe
	TestRxRcv                   // differential receive level (RO)
	TestRxDp                    // D+ pad level (RO)
	TestRxDm                    // D- pad level (RO)
)

// FifoSt reports and resets the JTAG FIFOs.
type FifoSt uint32

const (
	InFifoEmpty  FifoSt = 1 << 2 // JTAG IN FIFO is empty (RO)
	InFifoFull   FifoSt = 1 << 3 // JTAG IN FIFO is full (RO)
	OutFifoEmpty FifoSt = 1 << 6 // JTAG OUT FIFO is empty (RO)
	OutFifoFull  FifoSt = 1 << 7 // JTAG OUT FIFO is full (RO)
	InFifoReset  FifoSt = 1 << 8 // reset JTAG IN FIFO
	OutFifoReset FifoSt = 1 << 9 // reset JTAG OUT FIFO
)

var (
	InFifoCnt  = mmio.Field[FifoSt]{Mask: 0x3, Pos: 0}      // JTAG IN FIFO counter (RO)
	OutFifoCnt = mmio.Field[FifoSt]{Mask: 0x3 << 4, Pos: 4} // JTAG OUT FIFO counter (RO)
)

// FrameNum holds the frame index of the last received SOF.
type FrameNum uint32

var SofFrameIndex = mmio.Field[FrameNum]{Mask: 0x7ff, Pos: 0}

// InEpSt reports an IN endpoint's state. EP0 is control, EP1 CDC-ACM data,
// EP2 CDC-ACM interrupt, EP3 JTAG.
type InEpSt uint32

var (
	InEpState  = mmio.Field[InEpSt]{Mask: 0x3, Pos: 0}
	InEpWrAddr = mmio.Field[InEpSt]{Mask: 0x7f << 2, Pos: 2}
	InEpRdAddr = mmio.Field[InEpSt]{Mask: 0x7f << 9, Pos: 9}
)

// OutEpSt reports an OUT endpoint's state. EP0 is control, EP1 CDC-ACM data,
// EP2 JTAG.
type OutEpSt uint32

var (
	OutEpState      = mmio.Field[OutEpSt]{Mask: 0x3, Pos: 0}
	OutEpWrAddr     = mmio.Field[OutEpSt]{Mask: 0x7f << 2, Pos: 2}
	OutEpRdAddr     = mmio.Field[OutEpSt]{Mask: 0x7f << 9, Pos: 9}
	OutEpRecDataCnt = mmio.Field[OutEpSt]{Mask: 0x7f << 16, Pos: 16} // data count of the last received packet
)

// MiscConf controls the register clock.
type MiscConf uint32

const ClkEn MiscConf = 1 << 0 // force clock on for registers

// MemConf controls the USB memory power.
type MemConf uint32

const (
	UsbMemPd    MemConf = 1 << iota // power down USB memory
	UsbMemClkEn                     // force clock on for USB memory
)

// ChipRst reports the CDC-ACM control line state and gates chip reset.
type ChipRst uint32

const (
	JtagRts           ChipRst = 1 << iota // RTS as set by the most recent command (RO)
	JtagDtr                               // DTR as set by the most recent command (RO)
	UsbUartChipRstDis                     // disable chip reset from the USB serial channel
)

// SetLineW1 holds the byte-wide SET_LINE_CODING parameters supplied by the
// host. Note the byte order differs from GetLineW1.
type SetLineW1 uint32

var (
	BCharFormat = mmio.Field[SetLineW1]{Mask: 0xff, Pos: 0}
	BParityType = mmio.Field[SetLineW1]{Mask: 0xff << 8, Pos: 8}
	BDataBits   = mmio.Field[SetLineW1]{Mask: 0xff << 16, Pos: 16}
)

// GetLineW1 holds the byte-wide GET_LINE_CODING answer configured by
// software.
type GetLineW1 uint32

var (
	GetBDataBits   = mmio.Field[GetLineW1]{Mask: 0xff, Pos: 0}
	GetBParityType = mmio.Field[GetLineW1]{Mask: 0xff << 8, Pos: 8}
	GetBCharFormat = mmio.Field[GetLineW1]{Mask: 0xff << 16, Pos: 16}
)

// ConfUpdate propagates configuration register values from the APB clock
// domain to the 48 MHz clock domain.
type ConfUpdate uint32

const FlushConfig ConfUpdate = 1 << 0 // write 1 to update (WT)

// SerAfifo resets and reports the CDC-ACM async FIFOs.
type SerAfifo uint32

const (
	InAfifoResetWr  SerAfifo = 1 << iota // reset IN async FIFO write clock domain
	InAfifoResetRd                       // reset IN async FIFO read clock domain
	OutAfifoResetWr                      // reset OUT async FIFO write clock domain
	OutAfifoResetRd                      // reset OUT async FIFO read clock domain
	OutAfifoRempty                       // OUT async FIFO empty in read clock domain (RO)
	InAfifoWfull                         // IN async FIFO full in write clock domain (RO)
)

// BusReset reports the USB bus reset state.
type BusReset uint32

const BusResetReleased BusReset = 1 << 0 // bus reset is released (RO)
