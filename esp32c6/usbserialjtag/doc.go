// Package usbserialjtag provides the register map of the ESP32-C6
// USB-Serial-JTAG controller, a fixed-function USB CDC-ACM device with a
// built-in JTAG bridge.
//
// Only the typed register surface is defined here: FIFO access, PHY
// configuration, the interrupt RAW/ST/ENA/CLR banks, endpoint status and the
// CDC-ACM line coding words. Sequencing USB enumeration, draining FIFOs or
// negotiating line coding is firmware policy built on top of this package.
package usbserialjtag
