// Regdump prints and checks peripheral register layout tables.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/bits"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/halmap/mcu/esp32c6/usbserialjtag"
	"github.com/halmap/mcu/mmio"
	"github.com/halmap/mcu/rp2040/busctrl"
)

var blocks = []*mmio.Block{
	&usbserialjtag.Block,
	&busctrl.Block,
}

var (
	check  = flag.Bool("check", false, "validate the layout tables and exit")
	decode = flag.String("decode", "", "decode a word against a register, e.g. CONF0=0x4200")
)

const usageString = `Peripheral register layout dumper.

Usage:

	%s [flags] [block...]

Known blocks:

`

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), usageString, os.Args[0])
	for _, b := range blocks {
		fmt.Fprintf(flag.CommandLine.Output(), "\t%s\n", b.Name)
	}
	fmt.Fprintln(flag.CommandLine.Output())
	flag.PrintDefaults()
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("regdump: ")
	flag.Usage = usage
	flag.Parse()

	if *check {
		for _, b := range blocks {
			if err := b.Validate(); err != nil {
				log.Fatalf("%s: %v", b.Name, err)
			}
			fmt.Printf("%s: ok\n", b.Name)
		}
		return
	}

	if *decode != "" {
		name, word, ok := strings.Cut(*decode, "=")
		if !ok {
			log.Fatalf("-decode wants REGISTER=WORD, got %q", *decode)
		}
		v, err := strconv.ParseUint(strings.TrimPrefix(word, "0x"), 16, 32)
		if err != nil {
			log.Fatalf("-decode: %v", err)
		}
		reg := findReg(name)
		if reg == nil {
			log.Fatalf("unknown register %q", name)
		}
		decodeWord(reg, uint32(v))
		return
	}

	selected := blocks
	if flag.NArg() > 0 {
		selected = nil
		for _, arg := range flag.Args() {
			b := findBlock(arg)
			if b == nil {
				log.Fatalf("unknown block %q", arg)
			}
			selected = append(selected, b)
		}
	}
	for _, b := range selected {
		dumpBlock(b)
	}
}

func findBlock(name string) *mmio.Block {
	for _, b := range blocks {
		if strings.EqualFold(b.Name, name) {
			return b
		}
	}
	return nil
}

func findReg(name string) *mmio.Reg {
	for _, b := range blocks {
		for i := range b.Regs {
			if strings.EqualFold(b.Regs[i].Name, name) {
				return &b.Regs[i]
			}
		}
	}
	return nil
}

func dumpBlock(b *mmio.Block) {
	fmt.Printf("%s  base 0x%08x  size 0x%x\n\n", b.Name, b.Base, b.Size)
	w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintln(w, "OFFSET\tREGISTER\tRESET\tFIELD\tBITS\tACCESS")
	for i := range b.Regs {
		r := &b.Regs[i]
		fmt.Fprintf(w, "0x%02x\t%s\t0x%08x\t\t\t\n", r.Offset, r.Name, r.Reset)
		for _, f := range r.Bits {
			name := f.Name
			if f.Access == mmio.Reserved {
				name = "-"
			}
			fmt.Fprintf(w, "\t\t\t%s\t%s\t%s\n", name, bitRange(f.Mask), f.Access)
		}
	}
	w.Flush()
	fmt.Println()
}

func decodeWord(r *mmio.Reg, v uint32) {
	fmt.Printf("%s = 0x%08x\n", r.Name, v)
	w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	for _, f := range r.Bits {
		if f.Access == mmio.Reserved {
			continue
		}
		x := (v & f.Mask) >> bits.TrailingZeros32(f.Mask)
		fmt.Fprintf(w, "  %s\t%s\t0x%x\n", f.Name, bitRange(f.Mask), x)
	}
	w.Flush()
}

func bitRange(mask uint32) string {
	lo := bits.TrailingZeros32(mask)
	hi := 31 - bits.LeadingZeros32(mask)
	if lo == hi {
		return fmt.Sprintf("[%d]", lo)
	}
	return fmt.Sprintf("[%d:%d]", hi, lo)
}
