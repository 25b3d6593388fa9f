// Package busctrl provides the register map of the RP2040 bus fabric
// arbiter.
//
// The fabric routes up to four bus masters (both processors and the DMA read
// and write ports) to the downstream ports of the main crossbar, resolving
// contention by per-master priority. Besides the normal register block the
// hardware maps the same layout at three alias base addresses whose writes
// perform atomic XOR, SET and CLR updates inside the fabric, without a
// software read-modify-write.
package busctrl
