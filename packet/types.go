package packet

// Packet is one configuration-stream command: a header word plus its
// payload words. A Packet is immutable after construction; rewriting a
// packet always produces a new value, so the original stream stays valid
// for inspection.
type Packet struct {
	header   uint32
	register Register
	words    []uint32
}

// New constructs a Packet from a header word and its payload words.
// The payload length must match the word count the header declares;
// a mismatch is a MalformedPacketError.
//
// For a type-2 header the target register is not encoded in the header
// word; use NewInherited so the register of the preceding type-1 packet
// is carried along.
func New(header uint32, words []uint32) (Packet, error) {
	p := Packet{
		header:   header,
		register: Register((header & RegisterMask) >> RegisterShift),
		words:    copyWords(words),
	}
	if int(p.WordCount()) != len(words) {
		return Packet{}, &MalformedPacketError{
			Header:   header,
			Declared: p.WordCount(),
			Got:      len(words),
		}
	}
	return p, nil
}

// NewInherited constructs a type-2 Packet whose target register is
// inherited from the preceding type-1 packet in the stream.
func NewInherited(header uint32, register Register, words []uint32) (Packet, error) {
	p, err := New(header, words)
	if err != nil {
		return Packet{}, err
	}
	p.register = register
	return p, nil
}

// NewTypeOne builds a short-form packet from its fields. The payload
// must fit the 11-bit inline word count.
func NewTypeOne(op OpCode, register Register, words []uint32) (Packet, error) {
	if len(words) > TypeOneWordCountMask {
		return Packet{}, &MalformedPacketError{
			Declared: TypeOneWordCountMask,
			Got:      len(words),
		}
	}
	header := uint32(TypeOne)<<HeaderTypeShift |
		uint32(op)<<OpCodeShift |
		uint32(register)<<RegisterShift |
		uint32(len(words))&TypeOneWordCountMask
	return New(header, words)
}

// Header returns the raw header word.
func (p Packet) Header() uint32 {
	return p.header
}

// Type returns the packet form encoded in the header.
func (p Packet) Type() Type {
	return Type((p.header & HeaderTypeMask) >> HeaderTypeShift)
}

// OpCode returns the packet operation.
func (p Packet) OpCode() OpCode {
	return OpCode((p.header & OpCodeMask) >> OpCodeShift)
}

// Register returns the target register: the header field for a type-1
// packet, the inherited register for a type-2 packet.
func (p Packet) Register() Register {
	return p.register
}

// WordCount returns the payload word count the header declares.
func (p Packet) WordCount() uint32 {
	if p.Type() == TypeTwo {
		return p.header & TypeTwoWordCountMask
	}
	return p.header & TypeOneWordCountMask
}

// Words returns a copy of the payload words.
func (p Packet) Words() []uint32 {
	return copyWords(p.words)
}

// Word returns payload word i without copying the payload.
func (p Packet) Word(i int) uint32 {
	return p.words[i]
}

// WithWords returns a new Packet with the same header and register but
// the given payload. The payload length must still match the header's
// declared word count.
func (p Packet) WithWords(words []uint32) (Packet, error) {
	if int(p.WordCount()) != len(words) {
		return Packet{}, &MalformedPacketError{
			Header:   p.header,
			Declared: p.WordCount(),
			Got:      len(words),
		}
	}
	return Packet{
		header:   p.header,
		register: p.register,
		words:    copyWords(words),
	}, nil
}

// Equal reports whether two packets are bit-identical: same header and
// same payload words. The inherited register of a type-2 packet does not
// participate, it is stream context rather than packet content.
func (p Packet) Equal(other Packet) bool {
	if p.header != other.header || len(p.words) != len(other.words) {
		return false
	}
	for i, w := range p.words {
		if other.words[i] != w {
			return false
		}
	}
	return true
}

func copyWords(words []uint32) []uint32 {
	if len(words) == 0 {
		return nil
	}
	out := make([]uint32, len(words))
	copy(out, words)
	return out
}
