package usbserialjtag

// TxFree reports whether the CDC-ACM IN FIFO has space for another byte.
func TxFree() bool {
	return Regs().EP1Conf.LoadBits(SerialInEpDataFree) != 0
}

// RxAvail reports whether the CDC-ACM OUT FIFO holds received data.
func RxAvail() bool {
	return Regs().EP1Conf.LoadBits(SerialOutEpDataAvail) != 0
}

// FlushTx marks the IN FIFO write as done, handing the pending bytes to the
// host on the next IN token.
func FlushTx() {
	Regs().EP1Conf.Store(Ep1Conf(WrDone))
}

// EnableInterrupts unmasks the given interrupts.
func EnableInterrupts(mask Int) {
	Regs().IntEna.SetBits(mask)
}

// DisableInterrupts masks the given interrupts.
func DisableInterrupts(mask Int) {
	Regs().IntEna.ClearBits(mask)
}

// Pending returns the masked interrupt status.
func Pending() Int {
	return Regs().IntSt.Load()
}

// ClearInterrupts clears the given raw interrupt bits by writing 1 to the
// clear bank.
func ClearInterrupts(mask Int) {
	Regs().IntClr.Store(mask)
}

// SOFFrame returns the frame index of the last received SOF frame.
func SOFFrame() uint32 {
	return Regs().FrameNum.Field(SofFrameIndex)
}

// LineCoding returns the line coding most recently supplied by the host via
// SET_LINE_CODING.
func LineCoding() (rate uint32, charFormat, parityType, dataBits uint8) {
	r := Regs()
	w1 := r.SetLineCodeW1.Load()
	return r.SetLineCodeW0.Load(),
		uint8(BCharFormat.Get(w1)),
		uint8(BParityType.Get(w1)),
		uint8(BDataBits.Get(w1))
}

// SetLineCoding fills the software mirror answered to the host's next
// GET_LINE_CODING request. Note that the byte order of the W1 word is
// reversed relative to the SET_LINE_CODING word.
func SetLineCoding(rate uint32, charFormat, parityType, dataBits uint8) {
	r := Regs()
	r.GetLineCodeW0.Store(rate)
	var w1 GetLineW1
	w1 = GetBDataBits.Insert(w1, uint32(dataBits))
	w1 = GetBParityType.Insert(w1, uint32(parityType))
	w1 = GetBCharFormat.Insert(w1, uint32(charFormat))
	r.GetLineCodeW1.Store(w1)
}
