package device

import "strings"

// Series identifies a supported device family.
type Series int

// Supported device families.
const (
	// SeriesUnknown is the zero value; every operation keyed by it fails
	SeriesUnknown Series = iota

	// Series7 covers the 7-series families (Artix-7, Kintex-7, Virtex-7,
	// Zynq-7000)
	Series7

	// UltraScale covers the Kintex and Virtex UltraScale families
	UltraScale

	// UltraScalePlus covers the UltraScale+ families, including Zynq
	// UltraScale+ MPSoC
	UltraScalePlus
)

// String returns the series name.
func (s Series) String() string {
	switch s {
	case Series7:
		return "Series7"
	case UltraScale:
		return "UltraScale"
	case UltraScalePlus:
		return "UltraScale+"
	default:
		return "unknown"
	}
}

// ParseSeries parses an operator-supplied series name. Accepted
// spellings follow the original tool: "US+" and "UltraScale+" for
// UltraScale+, "US" and "UltraScale" for UltraScale, "7series" and
// "Series7" for the 7 series. Matching is case-insensitive.
func ParseSeries(name string) (Series, error) {
	switch strings.ToUpper(name) {
	case "US+", "ULTRASCALE+", "ULTRASCALEPLUS":
		return UltraScalePlus, nil
	case "US", "ULTRASCALE":
		return UltraScale, nil
	case "7SERIES", "SERIES7", "7":
		return Series7, nil
	default:
		return SeriesUnknown, &UnsupportedSeriesError{Name: name}
	}
}

// Layout describes where the frame-address sub-fields live within an
// address word for one device family. It is a plain value: callers
// obtain one with LayoutFor and pass it wherever decoding is needed,
// rather than looking geometry up through ambient state.
type Layout struct {
	blockTypeMask uint32
	blockTypeLSB  uint

	rowMask uint32
	rowLSB  uint

	columnMask uint32
	columnLSB  uint

	minorMask uint32
	minorLSB  uint
}

// Frame-address field positions per family. The block type occupies
// three bits in every supported family; only its position moves.
var layouts = map[Series]Layout{
	Series7: {
		blockTypeMask: 0x03800000, blockTypeLSB: 23,
		rowMask: 0x003E0000, rowLSB: 17,
		columnMask: 0x0001FF80, columnLSB: 7,
		minorMask: 0x0000007F, minorLSB: 0,
	},
	UltraScale: {
		blockTypeMask: 0x03800000, blockTypeLSB: 23,
		rowMask: 0x007E0000, rowLSB: 17,
		columnMask: 0x0001FF80, columnLSB: 7,
		minorMask: 0x0000007F, minorLSB: 0,
	},
	UltraScalePlus: {
		blockTypeMask: 0x07000000, blockTypeLSB: 24,
		rowMask: 0x00FC0000, rowLSB: 18,
		columnMask: 0x0003FF00, columnLSB: 8,
		minorMask: 0x000000FF, minorLSB: 0,
	},
}

// LayoutFor returns the frame-address layout for the given series.
// An unknown series is an UnsupportedSeriesError; there is no silent
// default family.
func LayoutFor(s Series) (Layout, error) {
	layout, ok := layouts[s]
	if !ok {
		return Layout{}, &UnsupportedSeriesError{Name: s.String()}
	}
	return layout, nil
}

// RowMask returns the mask covering the row sub-field.
func (l Layout) RowMask() uint32 {
	return l.rowMask
}

// RowLSB returns the bit offset of the row sub-field.
func (l Layout) RowLSB() uint {
	return l.rowLSB
}
