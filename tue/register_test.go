package tue

import "testing"

func TestWideRegistersDisabled(t *testing.T) {
	tests := []struct {
		val  string
		want bool
	}{
		{"", false},
		{"0", false},
		{"false", false},
		{"1", true},
		{"true", true},
		{"yes", true},
	}
	for _, tt := range tests {
		t.Setenv("TUE_NO_SIMD", tt.val)
		if got := wideRegistersDisabled(); got != tt.want {
			t.Errorf("TUE_NO_SIMD=%q: got %v, want %v", tt.val, got, tt.want)
		}
	}
}

func TestDetectWidth(t *testing.T) {
	if got := detectWidth(true); got != 16 {
		t.Errorf("detectWidth(disabled): got %d, want 16", got)
	}
	w := detectWidth(false)
	if w < 16 || w%16 != 0 {
		t.Errorf("detectWidth(false) = %d, want a positive multiple of 16", w)
	}
}

func TestVecsPerRegister(t *testing.T) {
	saved := registerWidth
	defer func() { registerWidth = saved }()

	tests := []struct {
		width        int
		f32, f64, u8 int
	}{
		{16, 1, 1, 4},
		{32, 2, 1, 8},
		{64, 4, 2, 16},
	}
	for _, tt := range tests {
		registerWidth = tt.width
		if got := RegisterWidth(); got != tt.width {
			t.Errorf("RegisterWidth(): got %d, want %d", got, tt.width)
		}
		if got := VecsPerRegister[float32](); got != tt.f32 {
			t.Errorf("width %d: VecsPerRegister[float32]() = %d, want %d", tt.width, got, tt.f32)
		}
		if got := VecsPerRegister[float64](); got != tt.f64 {
			t.Errorf("width %d: VecsPerRegister[float64]() = %d, want %d", tt.width, got, tt.f64)
		}
		if got := VecsPerRegister[uint8](); got != tt.u8 {
			t.Errorf("width %d: VecsPerRegister[uint8]() = %d, want %d", tt.width, got, tt.u8)
		}
	}
}
