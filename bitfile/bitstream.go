package bitfile

import (
	"errors"

	"github.com/fpgakit/bitreloc/device"
	"github.com/fpgakit/bitreloc/packet"
)

// ErrNoIDCode is returned by Series when the packet stream contains no
// IDCODE register write to infer the device family from.
var ErrNoIDCode = errors.New("no IDCODE write packet in stream")

// Header holds the descriptive fields of a .bit container.
type Header struct {
	// DesignName is the design name recorded by the implementation tool,
	// including its UserID suffix
	DesignName string

	// PartName is the full device part name, e.g. "xcku040-ffva1156-2-e"
	PartName string

	// Date is the build date string
	Date string

	// Time is the build time string
	Time string
}

// Bitstream is a parsed .bit container: the descriptive header, the raw
// words preceding and including the sync word, and the ordered packet
// sequence. Packet order is semantically significant and is never
// reordered, only replaced wholesale via SetPackets.
type Bitstream struct {
	header   Header
	preamble []uint32
	packets  []packet.Packet
}

// New assembles a Bitstream from its parts. The preamble must end with
// the sync word; DefaultPreamble supplies the standard one.
func New(header Header, preamble []uint32, packets []packet.Packet) *Bitstream {
	return &Bitstream{
		header:   header,
		preamble: append([]uint32(nil), preamble...),
		packets:  append([]packet.Packet(nil), packets...),
	}
}

// DefaultPreamble returns the standard pre-sync word sequence: dummy
// padding, the bus-width auto-detect pattern, and the sync word.
func DefaultPreamble() []uint32 {
	return []uint32{
		0xFFFFFFFF, 0xFFFFFFFF, 0xFFFFFFFF, 0xFFFFFFFF,
		0xFFFFFFFF, 0xFFFFFFFF, 0xFFFFFFFF, 0xFFFFFFFF,
		0x000000BB, 0x11220044,
		0xFFFFFFFF, 0xFFFFFFFF,
		packet.SyncWord,
	}
}

// Header returns the container's descriptive fields.
func (b *Bitstream) Header() Header {
	return b.header
}

// Packets returns the packet sequence. The slice is shared; packets
// themselves are immutable, and replacing the sequence goes through
// SetPackets.
func (b *Bitstream) Packets() []packet.Packet {
	return b.packets
}

// SetPackets replaces the packet sequence, e.g. with the output of a
// relocation pass.
func (b *Bitstream) SetPackets(packets []packet.Packet) {
	b.packets = packets
}

// Series infers the device series from the stream's IDCODE register
// write. Returns ErrNoIDCode if the stream carries none, or an
// UnknownIDCodeError for a device outside the supported families.
func (b *Bitstream) Series() (device.Series, error) {
	for _, p := range b.packets {
		if p.Type() != packet.TypeOne || p.Register() != packet.RegIDCODE {
			continue
		}
		if p.OpCode() != packet.OpWrite || p.WordCount() < 1 {
			continue
		}
		return device.SeriesForIDCode(p.Word(0))
	}
	return device.SeriesUnknown, ErrNoIDCode
}
