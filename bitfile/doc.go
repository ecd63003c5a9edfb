// Package bitfile reads and writes the .bit container that carries an
// FPGA configuration bitstream.
//
// # Container Layout
//
// A .bit file is a small letter-keyed envelope around the raw
// configuration words:
//
//	[u16 0x0009][9-byte magic][u16 0x0001]
//	['a'][u16 len][design name\0]
//	['b'][u16 len][part name\0]
//	['c'][u16 len][date\0]
//	['d'][u16 len][time\0]
//	['e'][u32 byte length][configuration words, big-endian]
//
// The configuration words open with dummy padding and the bus-width
// auto-detect pattern, then the sync word 0xAA995566, then the packet
// stream. Everything up to and including the sync word is preserved
// verbatim across a read/write round trip; the packet stream is
// reconstructed from the parsed packets, so a rewritten sequence
// serializes naturally.
//
// Parsing is eager: truncated payloads, malformed headers, and missing
// sync words fail at read time with positional context, never during a
// later pass.
package bitfile
