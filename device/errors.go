package device

import "fmt"

// UnsupportedSeriesError indicates a device series this package has no
// geometry tables for. Relocation fails immediately on it; there is no
// fallback family.
type UnsupportedSeriesError struct {
	// Name is the series name as supplied or inferred
	Name string
}

func (e *UnsupportedSeriesError) Error() string {
	return fmt.Sprintf("unsupported device series %q (valid: US+, UltraScale+, US, UltraScale, 7series)", e.Name)
}

// UnknownIDCodeError indicates an IDCODE whose family field matches none
// of the supported series.
type UnknownIDCodeError struct {
	IDCode uint32
}

func (e *UnknownIDCodeError) Error() string {
	return fmt.Sprintf("cannot infer device series from IDCODE 0x%08X", e.IDCode)
}
