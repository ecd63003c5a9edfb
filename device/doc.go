// Package device holds the per-family geometry needed to interpret
// frame address words: which bits of an address encode the block type,
// row, column, and minor address for each supported device series.
//
// Geometry is exposed as a Layout value obtained once per run:
//
//	layout, err := device.LayoutFor(device.UltraScalePlus)
//	row := layout.Row(word)
//	moved := layout.WithRow(word, row+offset)
//
// WithRow rewrites exactly the row sub-field; the block type is a
// read-only classification and is never written by this package.
//
// The package also maps JTAG IDCODE values to a series, which lets the
// caller infer the family from stream content when the operator gives
// no override.
package device
