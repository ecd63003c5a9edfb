package packet

// CRC algorithm constants.
const (
	// CRC32Polynomial is the reflected CRC-32C (Castagnoli) polynomial
	// used by the configuration logic
	CRC32Polynomial = 0x82F63B78

	// CRC32InitialValue is the accumulator value after a reset
	CRC32InitialValue = 0x00000000

	// BitsPerWord is the number of bits folded per configuration word
	BitsPerWord = 32
)

// CRC is the streaming checksum accumulator for a packet sequence.
// It folds 32-bit words least-significant bit first into a single 32-bit
// register. Each relocation run owns a fresh accumulator; the
// WRITE-then-NOP reset protocol is driven by the caller, which carries
// the one bit of state the protocol needs.
//
// The zero value is ready to use.
type CRC struct {
	value uint32
}

// NewCRC returns an accumulator at its initial value.
func NewCRC() *CRC {
	return &CRC{value: CRC32InitialValue}
}

// Reset returns the accumulator to its initial value, starting a new
// checksum domain.
func (c *CRC) Reset() {
	c.value = CRC32InitialValue
}

// Value returns the current accumulator value.
func (c *CRC) Value() uint32 {
	return c.value
}

// UpdateWord folds one 32-bit word into the accumulator, least
// significant bit first.
func (c *CRC) UpdateWord(word uint32) {
	crc := c.value
	for i := 0; i < BitsPerWord; i++ {
		bit := (crc ^ (word >> i)) & 1
		crc >>= 1
		if bit != 0 {
			crc ^= CRC32Polynomial
		}
	}
	c.value = crc
}

// UpdatePacket folds a whole packet: the header word first, then the
// payload words in order.
func (c *CRC) UpdatePacket(p Packet) {
	c.UpdateWord(p.Header())
	for _, w := range p.words {
		c.UpdateWord(w)
	}
}
