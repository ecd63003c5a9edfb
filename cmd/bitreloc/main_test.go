package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fpgakit/bitreloc/bitfile"
	"github.com/fpgakit/bitreloc/device"
	"github.com/fpgakit/bitreloc/packet"
)

func execute(t *testing.T, args ...string) error {
	t.Helper()
	cmd := newRootCmd()
	cmd.SetArgs(args)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	return cmd.Execute()
}

func TestMissingArgumentsFail(t *testing.T) {
	err := execute(t)
	require.Error(t, err)
	require.Contains(t, err.Error(), "required flag")
}

func TestInvalidSeriesFails(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.bit")
	writeTestBitstream(t, in)

	err := execute(t,
		"--from", in,
		"--to", filepath.Join(dir, "out.bit"),
		"--rows", "1",
		"--series", "Versal",
	)
	var unsupported *device.UnsupportedSeriesError
	require.ErrorAs(t, err, &unsupported)
}

func TestRelocateEndToEnd(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.bit")
	out := filepath.Join(dir, "out.bit")
	writeTestBitstream(t, in)

	require.NoError(t, execute(t,
		"--from", in,
		"--to", out,
		"--rows", "-2",
	))

	bs, err := bitfile.Read(out)
	require.NoError(t, err)

	layout, err := device.LayoutFor(device.UltraScalePlus)
	require.NoError(t, err)

	var far packet.Packet
	found := false
	for _, p := range bs.Packets() {
		if p.Register() == packet.RegFAR {
			far, found = p, true
			break
		}
	}
	require.True(t, found, "no FAR packet in output")
	require.Equal(t, 3, layout.Row(far.Word(0)))
}

// writeTestBitstream writes a minimal UltraScale+ stream: an IDCODE
// write for series inference, one fabric address at row 5, and a
// checksum pair.
func writeTestBitstream(t *testing.T, path string) {
	t.Helper()

	mustTypeOne := func(op packet.OpCode, reg packet.Register, words []uint32) packet.Packet {
		p, err := packet.NewTypeOne(op, reg, words)
		require.NoError(t, err)
		return p
	}

	bs := bitfile.New(
		bitfile.Header{DesignName: "cli_test", PartName: "xczu9eg-ffvb1156-2-e"},
		bitfile.DefaultPreamble(),
		[]packet.Packet{
			mustTypeOne(packet.OpWrite, packet.RegIDCODE, []uint32{0x24738093}),
			mustTypeOne(packet.OpWrite, packet.RegFAR, []uint32{5 << 18}),
			mustTypeOne(packet.OpWrite, packet.RegCRC, []uint32{0}),
			mustTypeOne(packet.OpNOP, packet.RegCRC, nil),
		},
	)
	require.NoError(t, bs.Write(path))
}
