package jsc

import "testing"

func TestRGBToYCbCrToRGBRoundTripsWithinRounding(t *testing.T) {
	samples := [][3]uint8{
		{0, 0, 0}, {255, 255, 255}, {128, 64, 200}, {10, 250, 30},
	}
	for _, s := range samples {
		y, cb, cr := RGBToYCbCr(s[0], s[1], s[2])
		r, g, b := YCbCrToRGB(y, cb, cr)
		if absDiff(r, s[0]) > 2 || absDiff(g, s[1]) > 2 || absDiff(b, s[2]) > 2 {
			t.Errorf("round trip for %v produced (%d,%d,%d)", s, r, g, b)
		}
	}
}

func absDiff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}

func TestGrayIsUniformForEqualChannels(t *testing.T) {
	g := RGBToGray(100, 100, 100)
	if g != 100 {
		t.Fatalf("expected gray of a gray pixel to be unchanged, got %d", g)
	}
}

func TestCMYKRoundTripsThroughYCCK(t *testing.T) {
	y, cb, cr, k := CMYKToYCCK(40, 80, 120, 200)
	c, m, yk, kk := YCCKToCMYK(y, cb, cr, k)
	if absDiff(c, 40) > 2 || absDiff(m, 80) > 2 || absDiff(yk, 120) > 2 || kk != 200 {
		t.Errorf("CMYK round trip mismatch: got c=%d m=%d y=%d k=%d", c, m, yk, kk)
	}
}
