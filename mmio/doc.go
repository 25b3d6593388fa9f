// Package mmio provides typed access to memory mapped peripheral registers.
//
// A register is a single 32-bit cell that is always accessed as a whole word
// on the bus. Every Load and Store is a real bus transaction, never cached or
// elided, because register state may change due to hardware activity between
// accesses and writes may have side effects beyond storing a value.
//
// On hardware (baremetal build tag) accesses go directly to the physical
// address. On hosted builds the physical address space is simulated in an
// anonymous mapping, so register packages and their tests run with plain
// `go test` on a development host. Peripheral packages can install handlers
// on their address ranges to model hardware write semantics like atomic
// SET/CLR/XOR aliases or write-to-clear counters.
package mmio
