package bitfile

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/fpgakit/bitreloc/packet"
)

// Container format constants.
const (
	// magicLength is the length of the fixed magic sequence that opens a
	// .bit container
	magicLength = 9

	// WordSize is the size of one configuration word in bytes
	WordSize = 4
)

// Container field keys, in the order they appear.
const (
	fieldDesignName = 'a'
	fieldPartName   = 'b'
	fieldDate       = 'c'
	fieldTime       = 'd'
	fieldData       = 'e'
)

// bitMagic is the fixed sequence between the two framing length fields
// of a .bit container.
var bitMagic = []byte{0x0F, 0xF0, 0x0F, 0xF0, 0x0F, 0xF0, 0x0F, 0xF0, 0x00}

// Read parses a .bit container from the given file path.
//
// Example:
//
//	bs, err := bitfile.Read("region_partial.bit")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("part: %s, packets: %d\n", bs.Header().PartName, len(bs.Packets()))
func Read(path string) (*Bitstream, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return ReadFrom(f)
}

// ReadFrom parses a .bit container from any io.Reader. Useful for
// testing and reading from non-file sources.
func ReadFrom(r io.Reader) (*Bitstream, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read container: %w", err)
	}

	header, data, err := parseContainer(raw)
	if err != nil {
		return nil, err
	}

	words, err := toWords(data)
	if err != nil {
		return nil, err
	}

	preamble, rest, err := splitAtSync(words)
	if err != nil {
		return nil, err
	}

	packets, err := parsePackets(rest)
	if err != nil {
		return nil, err
	}

	return &Bitstream{
		header:   header,
		preamble: preamble,
		packets:  packets,
	}, nil
}

// parseContainer walks the letter-keyed fields of the container and
// returns the descriptive header plus the raw configuration bytes of
// the 'e' field.
func parseContainer(raw []byte) (Header, []byte, error) {
	cur := &cursor{raw: raw}

	// Framing: u16 length of the magic, the magic itself, then u16 0x0001.
	magicLen, err := cur.readUint16("magic length")
	if err != nil {
		return Header{}, nil, err
	}
	if magicLen != magicLength {
		return Header{}, nil, fmt.Errorf("invalid magic length: got %d, expected %d", magicLen, magicLength)
	}
	magic, err := cur.take(magicLength, "magic")
	if err != nil {
		return Header{}, nil, err
	}
	if !bytes.Equal(magic, bitMagic) {
		return Header{}, nil, fmt.Errorf("invalid magic sequence: % X", magic)
	}
	if _, err := cur.readUint16("framing"); err != nil {
		return Header{}, nil, err
	}

	var header Header
	for {
		key, err := cur.take(1, "field key")
		if err != nil {
			return Header{}, nil, err
		}

		switch key[0] {
		case fieldDesignName:
			header.DesignName, err = cur.stringField("design name")
		case fieldPartName:
			header.PartName, err = cur.stringField("part name")
		case fieldDate:
			header.Date, err = cur.stringField("date")
		case fieldTime:
			header.Time, err = cur.stringField("time")
		case fieldData:
			dataLen, lerr := cur.readUint32("data length")
			if lerr != nil {
				return Header{}, nil, lerr
			}
			data, derr := cur.take(int(dataLen), "configuration data")
			if derr != nil {
				return Header{}, nil, derr
			}
			return header, data, nil
		default:
			return Header{}, nil, fmt.Errorf("unknown container field key 0x%02X", key[0])
		}
		if err != nil {
			return Header{}, nil, err
		}
	}
}

// toWords converts raw configuration bytes to big-endian 32-bit words.
func toWords(data []byte) ([]uint32, error) {
	if len(data)%WordSize != 0 {
		return nil, fmt.Errorf("configuration data length %d is not a multiple of %d", len(data), WordSize)
	}
	words := make([]uint32, len(data)/WordSize)
	for i := range words {
		words[i] = binary.BigEndian.Uint32(data[i*WordSize:])
	}
	return words, nil
}

// splitAtSync splits the word stream into the preamble (up to and
// including the sync word) and the packet words after it.
func splitAtSync(words []uint32) (preamble, rest []uint32, err error) {
	for i, w := range words {
		if w == packet.SyncWord {
			return words[:i+1], words[i+1:], nil
		}
	}
	return nil, nil, fmt.Errorf("no sync word (0x%08X) found in configuration data", uint32(packet.SyncWord))
}

// parsePackets reconstructs the ordered packet sequence from the words
// after the sync word. A type-2 packet inherits the register of the
// preceding type-1 packet.
func parsePackets(words []uint32) ([]packet.Packet, error) {
	packets := make([]packet.Packet, 0, len(words))
	lastRegister := packet.RegCRC
	sawTypeOne := false
	i := 0

	for i < len(words) {
		header := words[i]
		i++
		n := len(packets) + 1

		headerType := packet.Type((header & packet.HeaderTypeMask) >> packet.HeaderTypeShift)
		switch headerType {
		case packet.TypeOne:
			wc := int(header & packet.TypeOneWordCountMask)
			payload, err := takeWords(words, &i, wc)
			if err != nil {
				return nil, fmt.Errorf("packet %d: %w", n, err)
			}
			p, err := packet.New(header, payload)
			if err != nil {
				return nil, fmt.Errorf("packet %d: %w", n, err)
			}
			lastRegister = p.Register()
			sawTypeOne = true
			packets = append(packets, p)

		case packet.TypeTwo:
			if !sawTypeOne {
				return nil, fmt.Errorf("packet %d: extended word-count packet with no preceding short-form packet", n)
			}
			wc := int(header & packet.TypeTwoWordCountMask)
			payload, err := takeWords(words, &i, wc)
			if err != nil {
				return nil, fmt.Errorf("packet %d: %w", n, err)
			}
			p, err := packet.NewInherited(header, lastRegister, payload)
			if err != nil {
				return nil, fmt.Errorf("packet %d: %w", n, err)
			}
			packets = append(packets, p)

		default:
			return nil, fmt.Errorf("packet %d: invalid header word 0x%08X", n, header)
		}
	}

	return packets, nil
}

// takeWords slices wc payload words starting at *i, failing if the
// stream ends before the header's declared count.
func takeWords(words []uint32, i *int, wc int) ([]uint32, error) {
	if *i+wc > len(words) {
		return nil, fmt.Errorf("stream truncated: header declares %d payload words, %d remain", wc, len(words)-*i)
	}
	payload := words[*i : *i+wc]
	*i += wc
	return payload, nil
}

// cursor is a bounds-checked reader over the container bytes.
type cursor struct {
	raw []byte
	pos int
}

func (c *cursor) take(n int, what string) ([]byte, error) {
	if c.pos+n > len(c.raw) {
		return nil, fmt.Errorf("container truncated reading %s at offset %d", what, c.pos)
	}
	b := c.raw[c.pos : c.pos+n]
	c.pos += n
	return b, nil
}

func (c *cursor) readUint16(what string) (uint16, error) {
	b, err := c.take(2, what)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(b), nil
}

func (c *cursor) readUint32(what string) (uint32, error) {
	b, err := c.take(4, what)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b), nil
}

// stringField reads a u16 length followed by a NUL-terminated string,
// returning the string without the terminator.
func (c *cursor) stringField(what string) (string, error) {
	n, err := c.readUint16(what)
	if err != nil {
		return "", err
	}
	b, err := c.take(int(n), what)
	if err != nil {
		return "", err
	}
	return string(bytes.TrimRight(b, "\x00")), nil
}
