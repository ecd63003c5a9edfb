package relocate

import (
	"fmt"

	"github.com/fpgakit/bitreloc/bitfile"
	"github.com/fpgakit/bitreloc/device"
	"github.com/fpgakit/bitreloc/packet"
)

// Relocator rewrites a partial bitstream so the same configuration
// applies to a different set of clock-region rows. It runs two strictly
// sequential passes: Relocate shifts the row field of address packets,
// RecomputeCRC regenerates the stream's checksum packets.
//
// A Relocator owns no per-run state; it is safe for concurrent use.
type Relocator struct {
	config Config
}

// New creates a Relocator with the given options.
//
// Example:
//
//	rel := relocate.New(relocate.WithLogger(myLogger))
//	stats, err := rel.Run(bs, device.UltraScalePlus, -2)
func New(opts ...Option) *Relocator {
	var cfg Config
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Relocator{config: cfg}
}

// Relocate walks the packet sequence once and shifts the row address of
// every single-word address packet whose block type is row-addressable
// by rowOffset. All other packets are copied through unchanged, in
// order, with one exception: a multi-word address burst produces no
// output packet at all. That gap is inherited from the reference tool
// and is preserved because downstream tooling may depend on it; each
// occurrence is counted in Stats.DroppedBursts and logged.
//
// The opcode of an address packet is deliberately not consulted: any
// single-word packet targeting the address register is inspected,
// whether it is a WRITE, READ, or NOP.
//
// An unknown series fails before any packet is visited; no partial
// output is produced. The resulting row is not range-checked against
// the target device, that is the caller's responsibility.
func (r *Relocator) Relocate(packets []packet.Packet, series device.Series, rowOffset int) ([]packet.Packet, Stats, error) {
	var stats Stats

	layout, err := device.LayoutFor(series)
	if err != nil {
		return nil, stats, err
	}

	out := make([]packet.Packet, 0, len(packets))
	for i, p := range packets {
		stats.Packets++

		if p.Type() != packet.TypeOne || p.Register() != packet.RegFAR {
			out = append(out, p)
			continue
		}

		if p.WordCount() != 1 {
			stats.DroppedBursts++
			r.logWarn("dropping multi-word address packet",
				"index", i,
				"words", p.WordCount(),
			)
			continue
		}

		word := p.Word(0)
		blockType := layout.BlockType(word)
		if !device.RowAddressable(blockType) {
			stats.Passthrough++
			r.logDebug("address packet left in place",
				"index", i,
				"block_type", blockType,
			)
			out = append(out, p)
			continue
		}

		newRow := layout.Row(word) + rowOffset
		moved, err := p.WithWords([]uint32{layout.WithRow(word, newRow)})
		if err != nil {
			return nil, stats, fmt.Errorf("packet %d: %w", i+1, err)
		}
		stats.RelocatedRows++
		r.logDebug("relocated address packet",
			"index", i,
			"block_type", blockType,
			"row", layout.Row(word),
			"new_row", newRow,
		)
		out = append(out, moved)
	}

	return out, stats, nil
}

// RecomputeCRC walks the packet sequence once and replaces the payload
// of every checksum WRITE packet with the accumulator value at that
// point in the stream. Unlike Relocate, this pass never drops a packet:
// every input packet has exactly one output packet.
//
// The stream may contain several independent checksum domains. A
// checksum WRITE immediately followed by a checksum NOP is the sentinel
// that opens a new domain: the accumulator is reset before the NOP is
// folded. That two-packet pattern is tracked as a single bit of carried
// state, initialized true so the first checksum NOP in a stream also
// starts fresh.
//
// Returns the rewritten sequence and the number of checksum packets
// rewritten.
func (r *Relocator) RecomputeCRC(packets []packet.Packet) ([]packet.Packet, int, error) {
	crc := packet.NewCRC()
	justWroteChecksum := true
	rewritten := 0

	out := make([]packet.Packet, 0, len(packets))
	for i, p := range packets {
		isCRC := p.Type() == packet.TypeOne && p.Register() == packet.RegCRC

		switch {
		case isCRC && p.OpCode() == packet.OpWrite:
			// The asserted value is not part of its own checksum.
			replaced, err := p.WithWords([]uint32{crc.Value()})
			if err != nil {
				return nil, rewritten, fmt.Errorf("packet %d: %w", i+1, err)
			}
			rewritten++
			justWroteChecksum = true
			r.logDebug("rewrote checksum packet",
				"index", i,
				"crc", fmt.Sprintf("0x%08X", crc.Value()),
			)
			out = append(out, replaced)

		case isCRC && p.OpCode() == packet.OpNOP && justWroteChecksum:
			crc.Reset()
			crc.UpdatePacket(p)
			justWroteChecksum = false
			out = append(out, p)

		default:
			crc.UpdatePacket(p)
			justWroteChecksum = false
			out = append(out, p)
		}
	}

	return out, rewritten, nil
}

// Run performs the complete relocation sequence on a bitstream:
// relocate the address packets, regenerate the checksum packets, and
// install the result. The original packet values are never mutated; on
// error the bitstream is left untouched.
func (r *Relocator) Run(bs *bitfile.Bitstream, series device.Series, rowOffset int) (Stats, error) {
	relocated, stats, err := r.Relocate(bs.Packets(), series, rowOffset)
	if err != nil {
		return stats, fmt.Errorf("relocate: %w", err)
	}

	checked, rewritten, err := r.RecomputeCRC(relocated)
	if err != nil {
		return stats, fmt.Errorf("recompute CRC: %w", err)
	}
	stats.RewrittenCRCs = rewritten

	bs.SetPackets(checked)

	r.logInfo("relocation complete",
		"packets", stats.Packets,
		"relocated_rows", stats.RelocatedRows,
		"passthrough", stats.Passthrough,
		"dropped_bursts", stats.DroppedBursts,
		"rewritten_crcs", stats.RewrittenCRCs,
	)
	return stats, nil
}

// logDebug logs a debug message if a logger is configured.
func (r *Relocator) logDebug(msg string, keysAndValues ...interface{}) {
	if r.config.Logger != nil {
		r.config.Logger.Debug(msg, keysAndValues...)
	}
}

// logInfo logs an info message if a logger is configured.
func (r *Relocator) logInfo(msg string, keysAndValues ...interface{}) {
	if r.config.Logger != nil {
		r.config.Logger.Info(msg, keysAndValues...)
	}
}

// logWarn logs a warning if a logger is configured.
func (r *Relocator) logWarn(msg string, keysAndValues ...interface{}) {
	if r.config.Logger != nil {
		r.config.Logger.Warn(msg, keysAndValues...)
	}
}
