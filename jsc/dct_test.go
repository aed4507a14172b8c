package jsc

import "testing"

func TestForwardThenInverseDCTRecoversConstantBlock(t *testing.T) {
	var samples, out [DCTSize2]uint8
	for i := range samples {
		samples[i] = 130
	}
	qt := QuantTable{}
	for i := range qt.Natural {
		qt.Natural[i] = 1
	}

	var coef [DCTSize2]int16
	ForwardDCTBlock(samples[:], &qt, coef[:])
	InverseDCTBlock(coef[:], &qt, out[:])

	for i := range out {
		if diff := int(out[i]) - int(samples[i]); diff < -2 || diff > 2 {
			t.Fatalf("sample %d: got %d, want close to %d", i, out[i], samples[i])
		}
	}
}

func TestForwardDCTPanicsOnWrongLength(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic for a malformed block slice")
		}
	}()
	var qt QuantTable
	ForwardDCTBlock(make([]uint8, 10), &qt, make([]int16, DCTSize2))
}

func TestInverseDCTRangeLimitsCorruptCoefficients(t *testing.T) {
	var coef [DCTSize2]int16
	coef[0] = 32000
	coef[5] = -32000
	qt := QuantTable{}
	for i := range qt.Natural {
		qt.Natural[i] = 255
	}
	var out [DCTSize2]uint8
	InverseDCTBlock(coef[:], &qt, out[:])
	for _, v := range out {
		if v > 255 {
			t.Fatalf("sample escaped the uint8 range: %d", v)
		}
	}
}
