package busctrl

// RaisePriority raises the given masters to high priority, using the
// hardware's atomic SET path. The new levels take effect once the arbiters
// acknowledge them, see PriorityAcked.
func RaisePriority(masters Priority) {
	SetRegs().Priority.Store(masters)
}

// LowerPriority lowers the given masters to low priority, using the
// hardware's atomic CLR path.
func LowerPriority(masters Priority) {
	ClrRegs().Priority.Store(masters)
}

// TogglePriority toggles the priority of the given masters, using the
// hardware's atomic XOR path.
func TogglePriority(masters Priority) {
	XorRegs().Priority.Store(masters)
}

// PriorityAcked reports whether all arbiters have registered the current
// global priority levels.
func PriorityAcked() bool {
	return Regs().PriorityAck.LoadBits(Ack) != 0
}

// SelectEvent makes performance counter n count the given event.
func SelectEvent(n int, e Event) {
	Regs().Perf[n].Sel.SetField(SelValue, uint32(e))
}

// Counter returns the current value of performance counter n. The counter
// saturates at its 24-bit maximum.
func Counter(n int) uint32 {
	return Regs().Perf[n].Ctr.Field(CtrValue)
}

// ClearCounter clears performance counter n, any written value clears.
func ClearCounter(n int) {
	Regs().Perf[n].Ctr.Store(0)
}
