package docx

import "testing"

func TestEMU(t *testing.T) {
	tests := []struct {
		px   float64
		want int64
	}{
		{0, 0},
		{96, 914400},      // one inch
		{720, 6858000},    // US Letter width at 7.5in
		{1018, 9696450},   // A4-ish height
		{0.5, 4762}, // truncates, never rounds
	}
	for _, tt := range tests {
		if got := EMU(tt.px); got != tt.want {
			t.Errorf("EMU(%v) = %d, want %d", tt.px, got, tt.want)
		}
	}
}

func TestTwips(t *testing.T) {
	tests := []struct {
		px   float64
		want int64
	}{
		{0, 0},
		{96, 1440},       // one inch
		{793.707, 11905}, // A4 width in reference pixels, truncated
		{1122.52, 16837}, // A4 height in reference pixels
		{1, 15},
	}
	for _, tt := range tests {
		if got := Twips(tt.px); got != tt.want {
			t.Errorf("Twips(%v) = %d, want %d", tt.px, got, tt.want)
		}
	}
}

func TestConversionsDeterministic(t *testing.T) {
	for i := 0; i < 3; i++ {
		if EMU(720) != 6858000 {
			t.Fatal("EMU is not deterministic")
		}
		if Twips(793.707) != 11905 {
			t.Fatal("Twips is not deterministic")
		}
	}
}
