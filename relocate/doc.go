// Package relocate rewrites a partial FPGA bitstream so that identical
// logic configures a different, geometrically compatible set of
// clock-region rows.
//
// # Overview
//
// Relocation is two single passes over the ordered packet sequence:
//
//  1. Relocate shifts the row sub-field of every single-word address
//     packet whose block type is row-addressable (fabric configuration
//     frames and block RAM content frames) by a signed row offset.
//     Clock-resource addressing and every non-address packet pass
//     through bit-identical.
//  2. RecomputeCRC regenerates the stream's checksum packets so the
//     rewritten stream still verifies: each checksum WRITE packet is
//     given the accumulator value at its position, and a WRITE-then-NOP
//     pair to the checksum register resets the accumulator to open a
//     new checksum domain.
//
// Both passes preserve packet order and are strictly sequential; the
// accumulator and the domain-reset flag are hard serial dependencies.
//
// # Basic Usage
//
//	bs, err := bitfile.Read("region_rp2.bit")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	rel := relocate.New()
//	stats, err := rel.Run(bs, device.UltraScalePlus, -2)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	err = bs.Write("region_rp1.bit")
//
// # The Multi-Word Burst Gap
//
// A multi-word address burst (an address packet whose word count is not
// exactly 1) produces no output packet: the reference tool this
// behavior was taken from silently drops it, and consumers of the
// output may depend on that exact shape, so this package preserves it
// rather than fixing it. Drops are counted in Stats.DroppedBursts and
// logged at warn level so they are never invisible.
//
// # Preconditions
//
// Relocation is a byte-level transform. It does not validate routing,
// timing, or placement legality; both regions must be geometrically
// compatible reconfigurable regions with identical footprints, and the
// resulting row must exist on the target device. None of that is
// checked here.
package relocate
