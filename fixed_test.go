package scanline

import (
	"testing"

	"golang.org/x/image/math/fixed"
)

func TestToFixed(t *testing.T) {
	cases := []struct {
		in   float64
		want fixed.Int26_6
	}{
		{0, 0},
		{1, 64},
		{-1, -64},
		{2.5, 160},
		{0.25, 16},
		{1.0 / 128, 1}, // rounds half away from zero
		{-0.3 / 64, 0},
	}
	for _, c := range cases {
		if got := toFixed(c.in); got != c.want {
			t.Errorf("toFixed(%g) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestFixedFrac(t *testing.T) {
	cases := []struct {
		in, want fixed.Int26_6
	}{
		{0, 0},
		{64, 0},
		{65, 1},
		{127, 63},
		{-1, 63},
		{-64, 0},
		{-80, 48},
	}
	for _, c := range cases {
		if got := fixedFrac(c.in); got != c.want {
			t.Errorf("fixedFrac(%d) = %d, want %d", c.in, got, c.want)
		}
		// x == floor(x) + frac(x)
		if fixed.I(c.in.Floor())+fixedFrac(c.in) != c.in {
			t.Errorf("floor/frac of %d do not add up", c.in)
		}
	}
}

func TestFixedMulDiv(t *testing.T) {
	cases := []struct {
		a, b, c, want fixed.Int26_6
	}{
		{10, 10, 4, 25},
		{10, 3, 4, 8},   // 7.5 rounds up
		{-10, 3, 4, -8}, // -7.5 rounds away from zero
		{1, 1, 3, 0},
		{2, 1, 3, 1},
		{1 << 20, 1 << 20, 1 << 20, 1 << 20}, // needs 64 bit intermediate
	}
	for _, c := range cases {
		if got := fixedMulDiv(c.a, c.b, c.c); got != c.want {
			t.Errorf("fixedMulDiv(%d, %d, %d) = %d, want %d", c.a, c.b, c.c, got, c.want)
		}
	}
}

func TestFixedDivRounding(t *testing.T) {
	cases := []struct {
		a, b        fixed.Int26_6
		floor, ceil int
	}{
		{0, 16, 0, 0},
		{16, 16, 1, 1},
		{17, 16, 1, 2},
		{-1, 16, -1, 0},
		{-16, 16, -1, -1},
		{-17, 16, -2, -1},
	}
	for _, c := range cases {
		if got := fixedFloorDiv(c.a, c.b); got != c.floor {
			t.Errorf("fixedFloorDiv(%d, %d) = %d, want %d", c.a, c.b, got, c.floor)
		}
		if got := fixedCeilDiv(c.a, c.b); got != c.ceil {
			t.Errorf("fixedCeilDiv(%d, %d) = %d, want %d", c.a, c.b, got, c.ceil)
		}
	}
}
