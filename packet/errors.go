package packet

import "fmt"

// MalformedPacketError indicates that a packet's declared word count does
// not match the payload it was constructed with. Detected eagerly at
// construction time; never recovered.
type MalformedPacketError struct {
	// Header is the offending header word, if one was available
	Header uint32

	// Declared is the word count the header claims
	Declared uint32

	// Got is the number of payload words actually supplied
	Got int
}

func (e *MalformedPacketError) Error() string {
	return fmt.Sprintf("malformed packet (header 0x%08X): header declares %d payload words, got %d",
		e.Header, e.Declared, e.Got)
}

// IsMalformedPacket returns true if the error is a MalformedPacketError.
func IsMalformedPacket(err error) bool {
	_, ok := err.(*MalformedPacketError)
	return ok
}
