package device

// IDCODE field extraction. The family field of the JTAG IDCODE sits in
// bits [27:16]; the revision nibble above it and the manufacturer bits
// below it do not distinguish the series.
const (
	idcodeFamilyShift = 16
	idcodeFamilyMask  = 0xFFF
)

// Family code ranges per series.
const (
	series7FamilyMin        = 0x360
	series7FamilyMax        = 0x37F
	ultraScaleFamilyMin     = 0x380
	ultraScaleFamilyMax     = 0x39F
	ultraScalePlusFamilyMin = 0x460
	ultraScalePlusFamilyMax = 0x4BF
)

// SeriesForIDCode infers the device series from an IDCODE value read
// out of the stream's IDCODE register write. An IDCODE outside the
// known family ranges is an UnknownIDCodeError.
func SeriesForIDCode(idcode uint32) (Series, error) {
	family := (idcode >> idcodeFamilyShift) & idcodeFamilyMask
	switch {
	case family >= series7FamilyMin && family <= series7FamilyMax:
		return Series7, nil
	case family >= ultraScaleFamilyMin && family <= ultraScaleFamilyMax:
		return UltraScale, nil
	case family >= ultraScalePlusFamilyMin && family <= ultraScalePlusFamilyMax:
		return UltraScalePlus, nil
	default:
		return SeriesUnknown, &UnknownIDCodeError{IDCode: idcode}
	}
}
