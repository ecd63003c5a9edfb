// Package packet models FPGA configuration-stream packets and the
// streaming checksum that protects them.
//
// # Packet Structure
//
// A configuration bitstream is an ordered sequence of packets. Each
// packet is a 32-bit header word followed by payload words:
//
//	Type 1: [31:29]=001 [28:27]=opcode [17:13]=register [10:0]=word count
//	Type 2: [31:29]=010 [28:27]=opcode [26:0]=extended word count
//
// A type-2 packet addresses the register selected by the preceding
// type-1 packet; the bitfile reader carries that register onto the
// packet so consumers never need stream context.
//
// Packets are immutable values. Deriving a rewritten packet goes through
// WithWords, which re-validates the payload against the header's
// declared word count:
//
//	p, err := packet.NewTypeOne(packet.OpWrite, packet.RegFAR, []uint32{far})
//	q, err := p.WithWords([]uint32{newFAR})
//
// # Checksum
//
// CRC is the stream's checksum accumulator: a single 32-bit register fed
// word by word (header first, then payload) with the reflected CRC-32C
// polynomial. The stream asserts checksum values through WRITE packets
// to the CRC register and opens a new checksum domain with a
// WRITE-then-NOP pair; the relocate package drives that protocol.
package packet
