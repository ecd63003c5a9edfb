package bitfile

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fpgakit/bitreloc/device"
	"github.com/fpgakit/bitreloc/packet"
)

func mustTypeOne(t *testing.T, op packet.OpCode, reg packet.Register, words []uint32) packet.Packet {
	t.Helper()
	p, err := packet.NewTypeOne(op, reg, words)
	require.NoError(t, err)
	return p
}

// container wraps raw configuration words in a minimal .bit envelope,
// for exercising the parser on malformed streams that the writer could
// never produce.
func container(words []uint32) []byte {
	var buf bytes.Buffer
	buf.Write([]byte{0x00, 0x09})
	buf.Write(bitMagic)
	buf.Write([]byte{0x00, 0x01})
	for _, f := range []struct {
		key   byte
		value string
	}{
		{fieldDesignName, "test;UserID=0XFFFFFFFF"},
		{fieldPartName, "xczu9eg-ffvb1156-2-e"},
		{fieldDate, "2026/08/28"},
		{fieldTime, "12:00:00"},
	} {
		buf.WriteByte(f.key)
		var n [2]byte
		binary.BigEndian.PutUint16(n[:], uint16(len(f.value)+1))
		buf.Write(n[:])
		buf.WriteString(f.value)
		buf.WriteByte(0)
	}
	buf.WriteByte(fieldData)
	var n [4]byte
	binary.BigEndian.PutUint32(n[:], uint32(len(words)*WordSize))
	buf.Write(n[:])
	for _, w := range words {
		var wb [4]byte
		binary.BigEndian.PutUint32(wb[:], w)
		buf.Write(wb[:])
	}
	return buf.Bytes()
}

func TestRoundTrip(t *testing.T) {
	packets := []packet.Packet{
		mustTypeOne(t, packet.OpWrite, packet.RegIDCODE, []uint32{0x24738093}),
		mustTypeOne(t, packet.OpWrite, packet.RegFAR, []uint32{0x00140302}),
		mustTypeOne(t, packet.OpNOP, packet.RegCRC, nil),
		mustTypeOne(t, packet.OpWrite, packet.RegCRC, []uint32{0xC4EB59B1}),
	}
	header := Header{
		DesignName: "aes_region;UserID=0XFFFFFFFF",
		PartName:   "xczu9eg-ffvb1156-2-e",
		Date:       "2026/08/28",
		Time:       "12:00:00",
	}
	bs := New(header, DefaultPreamble(), packets)

	var first bytes.Buffer
	require.NoError(t, bs.WriteTo(&first))

	parsed, err := ReadFrom(bytes.NewReader(first.Bytes()))
	require.NoError(t, err)
	require.Equal(t, header, parsed.Header())
	require.Len(t, parsed.Packets(), len(packets))
	for i, p := range parsed.Packets() {
		require.True(t, p.Equal(packets[i]), "packet %d differs", i)
	}

	// A second serialization must be byte-identical to the first.
	var second bytes.Buffer
	require.NoError(t, parsed.WriteTo(&second))
	require.Equal(t, first.Bytes(), second.Bytes())
}

func TestTypeTwoRegisterInheritance(t *testing.T) {
	fdri := mustTypeOne(t, packet.OpWrite, packet.RegFDRI, nil)
	long := uint32(packet.TypeTwo)<<packet.HeaderTypeShift |
		uint32(packet.OpWrite)<<packet.OpCodeShift | 3
	burst, err := packet.NewInherited(long, packet.RegFDRI, []uint32{1, 2, 3})
	require.NoError(t, err)

	bs := New(Header{}, DefaultPreamble(), []packet.Packet{fdri, burst})
	var buf bytes.Buffer
	require.NoError(t, bs.WriteTo(&buf))

	parsed, err := ReadFrom(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	require.Len(t, parsed.Packets(), 2)

	got := parsed.Packets()[1]
	require.Equal(t, packet.TypeTwo, got.Type())
	require.Equal(t, packet.RegFDRI, got.Register())
	require.Equal(t, []uint32{1, 2, 3}, got.Words())
}

func TestReadErrors(t *testing.T) {
	preamble := DefaultPreamble()
	farWriteFive := uint32(0x30002005) // FAR write declaring 5 payload words

	tests := []struct {
		name    string
		words   []uint32
		wantErr string
	}{
		{
			name:    "truncated payload",
			words:   append(preamble, farWriteFive, 0xAAAAAAAA),
			wantErr: "stream truncated",
		},
		{
			name:    "missing sync word",
			words:   []uint32{0xFFFFFFFF, 0xFFFFFFFF, 0x000000BB},
			wantErr: "no sync word",
		},
		{
			name:    "invalid header word",
			words:   append(preamble, 0xFFFFFFFF),
			wantErr: "invalid header word",
		},
		{
			name: "type two with no preceding type one",
			words: append(preamble,
				uint32(packet.TypeTwo)<<packet.HeaderTypeShift|1, 0),
			wantErr: "no preceding short-form",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadFrom(bytes.NewReader(container(tt.words)))
			require.Error(t, err)
			require.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestReadRejectsBadEnvelope(t *testing.T) {
	raw := container(DefaultPreamble())
	raw[2] ^= 0xFF // corrupt the magic
	_, err := ReadFrom(bytes.NewReader(raw))
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid magic")

	_, err = ReadFrom(bytes.NewReader(raw[:8]))
	require.Error(t, err)
	require.Contains(t, err.Error(), "truncated")
}

func TestSeriesInference(t *testing.T) {
	idcode := mustTypeOne(t, packet.OpWrite, packet.RegIDCODE, []uint32{0x13822093})
	bs := New(Header{}, DefaultPreamble(), []packet.Packet{
		mustTypeOne(t, packet.OpNOP, packet.RegCRC, nil),
		idcode,
	})

	series, err := bs.Series()
	require.NoError(t, err)
	require.Equal(t, device.UltraScale, series)
}

func TestSeriesWithoutIDCode(t *testing.T) {
	bs := New(Header{}, DefaultPreamble(), []packet.Packet{
		mustTypeOne(t, packet.OpNOP, packet.RegCRC, nil),
	})

	_, err := bs.Series()
	require.ErrorIs(t, err, ErrNoIDCode)
}
