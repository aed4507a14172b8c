package jsc

import "math"

// basis[u][x] = cos((2x+1)*u*pi/16), the separable 1-D DCT-II basis shared
// by every row and column pass of the forward and inverse transforms (spec
// §4.3 "8x8 DCT"). Computed once at package init rather than per block: the
// teacher precomputes its own per-block constant tables the same way
// (component_info.go dequantization coefficients), so a package-level table
// here is the idiomatic continuation of that pattern.
var basis [DCTSize][DCTSize]float64

// scaleFactor(u) = 1/sqrt(2) for u==0, else 1; applied in each pass together
// with the 0.5 = sqrt(2/N) normalisation, not folded into basis.
var scaleFactor [DCTSize]float64

func init() {
	for u := 0; u < DCTSize; u++ {
		if u == 0 {
			scaleFactor[u] = 1.0 / math.Sqrt2
		} else {
			scaleFactor[u] = 1.0
		}
		for x := 0; x < DCTSize; x++ {
			basis[u][x] = math.Cos((2*float64(x) + 1) * float64(u) * math.Pi / 16)
		}
	}
}

// ForwardDCTBlock computes the level-shifted, quantized coefficients of one
// 8x8 sample block in natural (row-major) order (spec §4.4 "Forward DCT and
// quantization"). samples and out must each have length DCTSize2; this is a
// precondition violated only by programming error, so it panics rather than
// returning a Rejection.
func ForwardDCTBlock(samples []uint8, quant *QuantTable, out []int16) {
	if len(samples) != DCTSize2 || len(out) != DCTSize2 {
		panic("jsc: ForwardDCTBlock requires 64-element slices")
	}

	var shifted [DCTSize2]float64
	for i, s := range samples {
		shifted[i] = float64(s) - 128
	}

	var tmp [DCTSize2]float64
	// Row pass: 1-D DCT along x for each row y.
	for y := 0; y < DCTSize; y++ {
		for u := 0; u < DCTSize; u++ {
			sum := 0.0
			for x := 0; x < DCTSize; x++ {
				sum += shifted[y*DCTSize+x] * basis[u][x]
			}
			tmp[y*DCTSize+u] = sum * scaleFactor[u] * 0.5
		}
	}
	// Column pass: 1-D DCT along y for each column u, producing coefficient
	// (v,u) in natural order.
	var coeff [DCTSize2]float64
	for u := 0; u < DCTSize; u++ {
		for v := 0; v < DCTSize; v++ {
			sum := 0.0
			for y := 0; y < DCTSize; y++ {
				sum += tmp[y*DCTSize+u] * basis[v][y]
			}
			coeff[v*DCTSize+u] = sum * scaleFactor[v] * 0.5
		}
	}

	for i := 0; i < DCTSize2; i++ {
		q := float64(quant.Natural[i])
		out[i] = int16(math.Round(coeff[i] / q))
	}
}

// InverseDCTBlock reconstructs one 8x8 sample block from natural-order
// quantized coefficients, range-limiting every output sample so a corrupt or
// adversarial coefficient block can never produce an out-of-range byte (spec
// §4.8 "Dequantization and inverse DCT", §9 range-limit rationale). coef and
// out must each have length DCTSize2.
func InverseDCTBlock(coef []int16, quant *QuantTable, out []uint8) {
	if len(coef) != DCTSize2 || len(out) != DCTSize2 {
		panic("jsc: InverseDCTBlock requires 64-element slices")
	}

	var deq [DCTSize2]float64
	for i, c := range coef {
		deq[i] = float64(c) * float64(quant.Natural[i])
	}

	var tmp [DCTSize2]float64
	// Row pass: inverse 1-D DCT along u for each row v.
	for v := 0; v < DCTSize; v++ {
		for x := 0; x < DCTSize; x++ {
			sum := 0.0
			for u := 0; u < DCTSize; u++ {
				sum += scaleFactor[u] * deq[v*DCTSize+u] * basis[u][x]
			}
			tmp[v*DCTSize+x] = sum * 0.5
		}
	}
	// Column pass: inverse 1-D DCT along v for each column x, then level
	// shift back and range-limit.
	for x := 0; x < DCTSize; x++ {
		for y := 0; y < DCTSize; y++ {
			sum := 0.0
			for v := 0; v < DCTSize; v++ {
				sum += scaleFactor[v] * tmp[v*DCTSize+x] * basis[v][y]
			}
			sample := sum*0.5 + 128
			out[y*DCTSize+x] = RangeLimit(int32(math.Round(sample)))
		}
	}
}
