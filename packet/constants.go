package packet

import "fmt"

// Header word field layout shared by the 7-series and UltraScale
// configuration packet encodings.
const (
	// HeaderTypeShift is the bit position of the 3-bit header type field
	HeaderTypeShift = 29

	// HeaderTypeMask extracts the header type field
	HeaderTypeMask = 0x7 << HeaderTypeShift

	// OpCodeShift is the bit position of the 2-bit opcode field
	OpCodeShift = 27

	// OpCodeMask extracts the opcode field
	OpCodeMask = 0x3 << OpCodeShift

	// RegisterShift is the bit position of the register address field
	// in a type-1 header
	RegisterShift = 13

	// RegisterMask extracts the register address field of a type-1 header.
	// The encoding reserves 14 bits but only the low 5 are defined.
	RegisterMask = 0x1F << RegisterShift

	// TypeOneWordCountMask extracts the 11-bit inline word count of a
	// type-1 header
	TypeOneWordCountMask = 0x7FF

	// TypeTwoWordCountMask extracts the 27-bit extended word count of a
	// type-2 header
	TypeTwoWordCountMask = 0x7FFFFFF
)

// Type identifies the packet form.
type Type int

// Packet forms per the configuration packet encoding.
const (
	// TypeOne is the short form: a single header word carrying the target
	// register and an inline word count
	TypeOne Type = 1

	// TypeTwo is the long form: an extended word count with the target
	// register inherited from the preceding type-1 packet
	TypeTwo Type = 2
)

// OpCode is the 2-bit packet operation.
type OpCode uint32

// Packet operations.
const (
	OpNOP OpCode = iota
	OpRead
	OpWrite
	OpReserved
)

// String returns the opcode mnemonic.
func (o OpCode) String() string {
	switch o {
	case OpNOP:
		return "NOP"
	case OpRead:
		return "READ"
	case OpWrite:
		return "WRITE"
	default:
		return "RESERVED"
	}
}

// Register is a configuration register address.
type Register uint32

// Configuration register addresses per UG470/UG570.
const (
	// RegCRC is the cyclic redundancy check register
	RegCRC Register = 0x00

	// RegFAR is the frame address register
	RegFAR Register = 0x01

	// RegFDRI is the frame data register input
	RegFDRI Register = 0x02

	// RegFDRO is the frame data register output
	RegFDRO Register = 0x03

	// RegCMD is the command register
	RegCMD Register = 0x04

	// RegCTL0 is the control register 0
	RegCTL0 Register = 0x05

	// RegMASK is the control mask register
	RegMASK Register = 0x06

	// RegSTAT is the status register
	RegSTAT Register = 0x07

	// RegLOUT is the legacy daisy-chain output register
	RegLOUT Register = 0x08

	// RegCOR0 is the configuration option register 0
	RegCOR0 Register = 0x09

	// RegMFWR is the multiple frame write register
	RegMFWR Register = 0x0A

	// RegCBC is the initial CBC value register
	RegCBC Register = 0x0B

	// RegIDCODE is the device identification register
	RegIDCODE Register = 0x0C

	// RegAXSS is the user access register
	RegAXSS Register = 0x0D

	// RegCOR1 is the configuration option register 1
	RegCOR1 Register = 0x0E

	// RegWBSTAR is the warm boot start address register
	RegWBSTAR Register = 0x10

	// RegTIMER is the watchdog timer register
	RegTIMER Register = 0x11

	// RegBOOTSTS is the boot history status register
	RegBOOTSTS Register = 0x16

	// RegCTL1 is the control register 1
	RegCTL1 Register = 0x18
)

// String returns the register mnemonic, or the raw address for
// addresses the encoding leaves reserved.
func (r Register) String() string {
	switch r {
	case RegCRC:
		return "CRC"
	case RegFAR:
		return "FAR"
	case RegFDRI:
		return "FDRI"
	case RegFDRO:
		return "FDRO"
	case RegCMD:
		return "CMD"
	case RegCTL0:
		return "CTL0"
	case RegMASK:
		return "MASK"
	case RegSTAT:
		return "STAT"
	case RegLOUT:
		return "LOUT"
	case RegCOR0:
		return "COR0"
	case RegMFWR:
		return "MFWR"
	case RegCBC:
		return "CBC"
	case RegIDCODE:
		return "IDCODE"
	case RegAXSS:
		return "AXSS"
	case RegCOR1:
		return "COR1"
	case RegWBSTAR:
		return "WBSTAR"
	case RegTIMER:
		return "TIMER"
	case RegBOOTSTS:
		return "BOOTSTS"
	case RegCTL1:
		return "CTL1"
	default:
		return fmt.Sprintf("REG_%02X", uint32(r))
	}
}

// SyncWord marks the start of the packet stream in a configuration file.
const SyncWord = 0xAA995566
