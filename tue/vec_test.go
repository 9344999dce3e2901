package tue

import (
	"math"
	"testing"
)

func TestConstructors(t *testing.T) {
	if got := V2[int32](1, 2); got.X() != 1 || got.Y() != 2 || got.Len() != 2 {
		t.Errorf("V2: got %v", got)
	}
	if got := V3[float32](1, 2, 3); got != (Vec3[float32]{c: [4]float32{1, 2, 3, 0}}) {
		t.Errorf("V3: got %v", got)
	}
	if got := V4(1.0, 2.0, 3.0, 4.0); got.W() != 4 || got.Len() != 4 {
		t.Errorf("V4: got %v", got)
	}
	if got := Splat[D3](uint8(7)); got != V3[uint8](7, 7, 7) {
		t.Errorf("Splat: got %v, want (7, 7, 7)", got)
	}
	if got := Zero[float64, D4](); got != V4[float64](0, 0, 0, 0) {
		t.Errorf("Zero: got %v", got)
	}
	if got := FromSlice[D3]([]int{4, 5}); got != V3(4, 5, 0) {
		t.Errorf("FromSlice short: got %v, want (4, 5, 0)", got)
	}
	if got := FromSlice[D2]([]int{4, 5, 6}); got != V2(4, 5) {
		t.Errorf("FromSlice long: got %v, want (4, 5)", got)
	}
}

func TestAxes(t *testing.T) {
	if got := XAxis[D2, float32](); got != V2[float32](1, 0) {
		t.Errorf("XAxis: got %v", got)
	}
	if got := YAxis[D3, float32](); got != V3[float32](0, 1, 0) {
		t.Errorf("YAxis: got %v", got)
	}
	if got := ZAxis[D3, float32](); got != V3[float32](0, 0, 1) {
		t.Errorf("ZAxis: got %v", got)
	}
	if got := WAxis[int](); got != V4(0, 0, 0, 1) {
		t.Errorf("WAxis: got %v", got)
	}
}

func TestExtendAndResize(t *testing.T) {
	v2 := V2[float32](1, 2)
	if got := Extend3(v2, 3); got != V3[float32](1, 2, 3) {
		t.Errorf("Extend3: got %v", got)
	}
	if got := Extend4(V3[float32](1, 2, 3), 4); got != V4[float32](1, 2, 3, 4) {
		t.Errorf("Extend4: got %v", got)
	}
	if got := Extend4From2(v2, 3, 4); got != V4[float32](1, 2, 3, 4) {
		t.Errorf("Extend4From2: got %v", got)
	}

	v4 := V4[int](1, 2, 3, 4)
	if got := Resize[D2](v4); got != V2(1, 2) {
		t.Errorf("Resize to 2: got %v", got)
	}
	// Truncation must clear the dropped slots so == keeps working.
	if got := Resize[D3](v4); got.c[3] != 0 {
		t.Errorf("Resize to 3 left padding %d", got.c[3])
	}
	if got := Resize[D4](V2(1, 2)); got != V4(1, 2, 0, 0) {
		t.Errorf("Resize to 4: got %v", got)
	}
}

func TestConvert(t *testing.T) {
	v := V3[float64](1.75, -2.5, 3)
	if got := Convert[int32](v); got != V3[int32](1, -2, 3) {
		t.Errorf("Convert to int32: got %v", got)
	}
	if got := Convert[float32](V2[uint8](200, 3)); got != V2[float32](200, 3) {
		t.Errorf("Convert to float32: got %v", got)
	}
}

func TestAccessors(t *testing.T) {
	v := V4[int](1, 2, 3, 4)
	if v.R() != 1 || v.G() != 2 || v.B() != 3 || v.A() != 4 {
		t.Errorf("rgba accessors: got %v", v)
	}
	if v.XY() != V2(1, 2) || v.XZ() != V2(1, 3) || v.YZ() != V2(2, 3) {
		t.Errorf("two-component swizzles wrong for %v", v)
	}
	if v.XYZ() != V3(1, 2, 3) || v.RGB() != V3(1, 2, 3) || v.RG() != V2(1, 2) {
		t.Errorf("three-component swizzles wrong for %v", v)
	}

	v.SetX(10)
	v.SetY(20)
	v.SetZ(30)
	v.SetW(40)
	if v != V4(10, 20, 30, 40) {
		t.Errorf("xyzw setters: got %v", v)
	}
	v.SetR(1)
	v.SetG(2)
	v.SetB(3)
	v.SetA(4)
	v.Set(0, 5)
	if v != V4(5, 2, 3, 4) || v.At(0) != 5 {
		t.Errorf("rgba setters: got %v", v)
	}

	s := v.Slice()
	s[0] = 99
	if len(s) != 4 || v.X() != 5 {
		t.Errorf("Slice must return a copy of length 4, got %v", s)
	}
}

func TestArithmetic(t *testing.T) {
	a := V3[float32](1, 2, 3)
	b := V3[float32](4, 5, 6)

	tests := []struct {
		name string
		got  Vec3[float32]
		want Vec3[float32]
	}{
		{"Add", a.Add(b), V3[float32](5, 7, 9)},
		{"Sub", a.Sub(b), V3[float32](-3, -3, -3)},
		{"Mul", a.Mul(b), V3[float32](4, 10, 18)},
		{"Div", b.Div(a), V3[float32](4, 2.5, 2)},
		{"AddScalar", a.AddScalar(1), V3[float32](2, 3, 4)},
		{"SubScalar", a.SubScalar(1), V3[float32](0, 1, 2)},
		{"MulScalar", a.MulScalar(2), V3[float32](2, 4, 6)},
		{"DivScalar", b.DivScalar(2), V3[float32](2, 2.5, 3)},
		{"Neg", a.Neg(), V3[float32](-1, -2, -3)},
		{"ScalarSub", ScalarSub(10, a), V3[float32](9, 8, 7)},
		{"ScalarDiv", ScalarDiv(6, a), V3[float32](6, 3, 2)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestDivByZeroKeepsPadding(t *testing.T) {
	v := V2[float64](1, 0).Div(V2[float64](0, 0))
	if !math.IsInf(v.X(), 1) || !math.IsNaN(v.Y()) {
		t.Errorf("got %v, want (+Inf, NaN)", v)
	}
	if v.c[2] != 0 || v.c[3] != 0 {
		t.Errorf("padding changed: %v", v.c)
	}
}

func TestSettersKeepPadding(t *testing.T) {
	v2 := V2(1, 2)
	for _, set := range []func(*Vec[int, D2], int){
		(*Vec[int, D2]).SetX, (*Vec[int, D2]).SetY, (*Vec[int, D2]).SetZ, (*Vec[int, D2]).SetW,
		(*Vec[int, D2]).SetR, (*Vec[int, D2]).SetG, (*Vec[int, D2]).SetB, (*Vec[int, D2]).SetA,
	} {
		v := v2
		set(&v, 5)
		if (v == v2) != v.Equal(v2) {
			t.Errorf("Vec2 setter: == and Equal disagree for %v (padding %v)", v, v.c)
		}
		if v.c[2] != 0 || v.c[3] != 0 {
			t.Errorf("Vec2 setter wrote padding: %v", v.c)
		}
	}

	v := V2(1, 2)
	v.SetZ(5)
	v.SetW(6)
	v.Set(3, 7)
	if v != V2(1, 2) || v.XYZ() != V3(1, 2, 0) || v.Z() != 0 {
		t.Errorf("out-of-range writes on Vec2 were kept: %v, XYZ %v", v.c, v.XYZ())
	}

	v3 := V3(1, 2, 3)
	for _, set := range []func(*Vec[int, D3], int){
		(*Vec[int, D3]).SetX, (*Vec[int, D3]).SetY, (*Vec[int, D3]).SetZ, (*Vec[int, D3]).SetW,
		(*Vec[int, D3]).SetR, (*Vec[int, D3]).SetG, (*Vec[int, D3]).SetB, (*Vec[int, D3]).SetA,
	} {
		w := v3
		set(&w, 9)
		if (w == v3) != w.Equal(v3) {
			t.Errorf("Vec3 setter: == and Equal disagree for %v (padding %v)", w, w.c)
		}
		if w.c[3] != 0 {
			t.Errorf("Vec3 setter wrote padding: %v", w.c)
		}
	}
	w := v3
	w.SetZ(9)
	if w != V3(1, 2, 9) {
		t.Errorf("SetZ on Vec3: got %v, want (1, 2, 9)", w)
	}

	if got := ZAxis[D2, float32](); got != Zero[float32, D2]() {
		t.Errorf("ZAxis[D2]: got %v (padding %v), want zero", got, got.c)
	}
	if got := Axis[D3, int](3); got != Zero[int, D3]() {
		t.Errorf("Axis[D3](3): got padding %v, want zero", got.c)
	}

	m := MaskOf[D2](true, false)
	m.Set(2, true)
	if m != MaskOf[D2](true, false) || m.CountTrue() != 1 {
		t.Errorf("Mask.Set past N was kept: %v", m.bits)
	}
}

func TestCompoundAssign(t *testing.T) {
	v := V2[int](1, 2)
	v.AddAssign(V2(1, 1))
	v.MulAssign(V2(3, 2))
	v.SubAssign(V2(1, 1))
	v.DivAssign(V2(5, 1))
	if v != V2(1, 5) {
		t.Errorf("vector compound ops: got %v, want (1, 5)", v)
	}

	v.AddScalarAssign(1)
	v.MulScalarAssign(4)
	v.SubScalarAssign(2)
	v.DivScalarAssign(2)
	if v != V2(3, 11) {
		t.Errorf("scalar compound ops: got %v, want (3, 11)", v)
	}

	old := v
	v.Inc()
	if old != V2(3, 11) || v != V2(4, 12) {
		t.Errorf("Inc: old %v new %v", old, v)
	}
	v.Dec()
	v.Dec()
	if v != V2(2, 10) {
		t.Errorf("Dec: got %v", v)
	}
}

func TestIntegerOps(t *testing.T) {
	a := V4[uint8](0b1100, 0b1010, 7, 255)
	b := V4[uint8](0b1010, 0b0110, 2, 1)

	tests := []struct {
		name string
		got  Vec4[uint8]
		want Vec4[uint8]
	}{
		{"Mod", Mod(a, b), V4[uint8](2, 4, 1, 0)},
		{"ModScalar", ModScalar(a, 5), V4[uint8](2, 0, 2, 0)},
		{"And", And(a, b), V4[uint8](0b1000, 0b0010, 2, 1)},
		{"AndScalar", AndScalar(a, 0b0100), V4[uint8](0b0100, 0, 4, 4)},
		{"Or", Or(a, b), V4[uint8](0b1110, 0b1110, 7, 255)},
		{"OrScalar", OrScalar(a, 1), V4[uint8](0b1101, 0b1011, 7, 255)},
		{"Xor", Xor(a, b), V4[uint8](0b0110, 0b1100, 5, 254)},
		{"XorScalar", XorScalar(a, 0xff), V4[uint8](0xf3, 0xf5, 0xf8, 0)},
		{"Not", Not(a), V4[uint8](0xf3, 0xf5, 0xf8, 0)},
		{"Shl", Shl(a, V4[uint8](1, 0, 2, 1)), V4[uint8](0b11000, 0b1010, 28, 254)},
		{"ShlScalar", ShlScalar(a, 1), V4[uint8](0b11000, 0b10100, 14, 254)},
		{"Shr", Shr(a, V4[uint8](2, 1, 1, 4)), V4[uint8](3, 5, 3, 15)},
		{"ShrScalar", ShrScalar(a, 1), V4[uint8](6, 5, 3, 127)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}

	if got := Not(V2[uint8](0, 1)); got.c[2] != 0 || got.c[3] != 0 {
		t.Errorf("Not touched padding: %v", got.c)
	}
	if got := ShrScalar(V2[int16](-8, 8), 2); got != V2[int16](-2, 2) {
		t.Errorf("arithmetic shift: got %v, want (-2, 2)", got)
	}
}

func TestScalarOnLeftIntegerOps(t *testing.T) {
	v := V4[uint8](4, 6, 1, 3)
	tests := []struct {
		name string
		got  Vec4[uint8]
		want Vec4[uint8]
	}{
		{"ScalarMod", ScalarMod(15, v), V4[uint8](3, 3, 0, 0)},
		{"ScalarAnd", ScalarAnd(12, v), V4[uint8](4, 4, 0, 0)},
		{"ScalarOr", ScalarOr(8, v), V4[uint8](12, 14, 9, 11)},
		{"ScalarXor", ScalarXor(15, v), V4[uint8](11, 9, 14, 12)},
		{"ScalarShl", ScalarShl(1, v), V4[uint8](16, 64, 2, 8)},
		{"ScalarShr", ScalarShr(128, v), V4[uint8](8, 2, 64, 16)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}

	if got := ScalarOr(1, V2[int32](0, 2)); got != V2[int32](1, 3) || got.c[2] != 0 {
		t.Errorf("ScalarOr on Vec2: got %v (padding %v)", got, got.c)
	}
}

func TestEqualAndString(t *testing.T) {
	a := V3[float32](1, 2, 3)
	if !a.Equal(V3[float32](1, 2, 3)) || a.NotEqual(V3[float32](1, 2, 3)) {
		t.Error("Equal: identical vectors compare unequal")
	}
	if a.Equal(V3[float32](1, 2, 4)) {
		t.Error("Equal: different vectors compare equal")
	}
	nan := float32(math.NaN())
	if V2(nan, 0).Equal(V2(nan, 0)) {
		t.Error("Equal: NaN compares equal")
	}
	if got := a.String(); got != "(1, 2, 3)" {
		t.Errorf("String: got %q", got)
	}
}

func TestAddSubRoundTrip(t *testing.T) {
	vals := []int64{-7, 0, 3, 1 << 40}
	for _, x := range vals {
		for _, y := range vals {
			a := V4(x, y, x+y, x-y)
			b := V4(y, x, 1, -1)
			if got := a.Add(b).Sub(b); got != a {
				t.Errorf("(a+b)-b: got %v, want %v", got, a)
			}
			if got := a.MulScalar(4).DivScalar(4); got != a {
				t.Errorf("(a*4)/4: got %v, want %v", got, a)
			}
		}
	}
}

func TestDotCross(t *testing.T) {
	a := V3[float64](1, 2, 3)
	b := V3[float64](-4, 5, 0.5)
	if dot(a, b) != dot(b, a) {
		t.Errorf("dot not symmetric: %v vs %v", dot(a, b), dot(b, a))
	}
	if got := cross(V3[float32](1, 0, 0), V3[float32](0, 1, 0)); got != V3[float32](0, 0, 1) {
		t.Errorf("x cross y: got %v, want (0, 0, 1)", got)
	}
	if cross(a, b) != cross(b, a).Neg() {
		t.Errorf("cross not anti-commutative")
	}
}
