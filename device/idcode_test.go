package device

import "testing"

func TestSeriesForIDCode(t *testing.T) {
	tests := []struct {
		name     string
		idcode   uint32
		expected Series
		wantErr  bool
	}{
		{"Artix-7", 0x0362D093, Series7, false},
		{"Kintex-7", 0x23651093, Series7, false},
		{"Zynq-7000", 0x23727093, Series7, false},
		{"Kintex UltraScale", 0x13822093, UltraScale, false},
		{"Virtex UltraScale", 0x13961093, UltraScale, false},
		{"Zynq UltraScale+", 0x24738093, UltraScalePlus, false},
		{"Virtex UltraScale+", 0x14B31093, UltraScalePlus, false},
		{"revision bits ignored", 0xF4B31093, UltraScalePlus, false},
		{"unknown family", 0x12345678, SeriesUnknown, true},
		{"zero", 0x00000000, SeriesUnknown, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SeriesForIDCode(tt.idcode)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("SeriesForIDCode(0x%08X) accepted unknown family", tt.idcode)
				}
				if _, ok := err.(*UnknownIDCodeError); !ok {
					t.Errorf("error type = %T, want *UnknownIDCodeError", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("SeriesForIDCode(0x%08X) error = %v", tt.idcode, err)
			}
			if got != tt.expected {
				t.Errorf("SeriesForIDCode(0x%08X) = %v, want %v", tt.idcode, got, tt.expected)
			}
		})
	}
}
