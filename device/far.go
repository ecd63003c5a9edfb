package device

// Block type classes of a frame address. The numeric values are shared
// across the supported families.
const (
	// BlockTypeFabric addresses the main fabric configuration frames
	// (CLB, IO, clocking interconnect)
	BlockTypeFabric = 0

	// BlockTypeBRAMContent addresses block RAM content frames
	BlockTypeBRAMContent = 1

	// BlockTypeSpecial addresses clock and configuration resources that
	// are not tied to a clock-region row
	BlockTypeSpecial = 2
)

// RowAddressable reports whether frames of the given block type are
// located by the row sub-field and therefore move under row relocation.
// Fabric and block RAM content frames do; everything else stays put.
func RowAddressable(blockType int) bool {
	return blockType == BlockTypeFabric || blockType == BlockTypeBRAMContent
}

// BlockType decodes the block type class of an address word.
func (l Layout) BlockType(word uint32) int {
	return int((word & l.blockTypeMask) >> l.blockTypeLSB)
}

// Row decodes the row address of an address word.
func (l Layout) Row(word uint32) int {
	return int((word & l.rowMask) >> l.rowLSB)
}

// Column decodes the column address of an address word.
func (l Layout) Column(word uint32) int {
	return int((word & l.columnMask) >> l.columnLSB)
}

// Minor decodes the minor (intra-column frame) address of an address word.
func (l Layout) Minor(word uint32) int {
	return int((word & l.minorMask) >> l.minorLSB)
}

// WithRow returns word with only the row sub-field replaced by row.
// Every other bit, block type included, passes through unchanged. The
// new value is masked into the row field, so a row outside the field's
// range can never spill into neighboring sub-fields; range checking
// against the target device is the caller's responsibility.
func (l Layout) WithRow(word uint32, row int) uint32 {
	return (word &^ l.rowMask) | (uint32(row) << l.rowLSB & l.rowMask)
}
