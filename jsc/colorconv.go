package jsc

// ColorSpace enumerates the pixel formats this codec moves between samples
// and storage, per spec §3 "ColorSpace".
type ColorSpace int

const (
	ColorUnknown ColorSpace = iota
	ColorGrayscale
	ColorRGB
	ColorYCbCr
	ColorCMYK
	ColorYCCK
	ColorBGRGB // "big gamut" RGB, pass-through like RGB (spec §4.2, §6 in_color_space)
	ColorBGYCC // "big gamut" YCbCr, converted and quantized exactly like YCbCr; no separate Cb/Cr quantizer scale
)

// Fixed-point BT.601 conversion, scale factor 2^16, grounded on libjpeg's
// jccolor.c / jdcolor.c table layout: one 256-entry table per coefficient so
// the inner loop is pure table lookup and integer add, never a float
// multiply per pixel.
const (
	cscScale  = 16
	cscHalf   = 1 << (cscScale - 1)
	cscOffset = 128 << cscScale

	cscRY  = 19595  // 0.29900 * 65536
	cscGY  = 38470  // 0.58700 * 65536
	cscBY  = 7471   // 0.11400 * 65536
	cscRCb = -11059 // -0.16874 * 65536
	cscGCb = -21709 // -0.33126 * 65536
	cscBCb = 32768  // 0.50000 * 65536
	cscRCr = 32768  // 0.50000 * 65536
	cscGCr = -27439 // -0.41869 * 65536
	cscBCr = -5329  // -0.08131 * 65536

	cscCrToR = 91881  // 1.40200 * 65536
	cscCbToB = 116130 // 1.77200 * 65536
	cscCrToG = -46802 // -0.71414 * 65536
	cscCbToG = -22554 // -0.34414 * 65536
)

var rYTab, gYTab, bYTab [256]int32
var rCbTab, gCbTab, bCbTab [256]int32
var rCrTab, gCrTab, bCrTab [256]int32
var crToRTab, cbToBTab, crToGTab, cbToGTab [256]int32

func init() {
	for i := 0; i < 256; i++ {
		x := int32(i)
		rYTab[i] = cscRY * x
		gYTab[i] = cscGY * x
		bYTab[i] = cscBY*x + cscHalf
		rCbTab[i] = cscRCb * x
		gCbTab[i] = cscGCb * x
		bCbTab[i] = cscBCb*x + cscOffset + cscHalf - 1
		rCrTab[i] = cscRCr*x + cscOffset + cscHalf - 1
		gCrTab[i] = cscGCr * x
		bCrTab[i] = cscBCr * x

		d := x - 128
		crToRTab[i] = (cscCrToR*d + cscHalf) >> cscScale
		cbToBTab[i] = (cscCbToB*d + cscHalf) >> cscScale
		crToGTab[i] = cscCrToG * d
		cbToGTab[i] = cscCbToG*d + cscHalf
	}
}

// RGBToYCbCr converts one RGB pixel to YCbCr using the fixed-point tables
// above (spec §4.2 "Color conversion").
func RGBToYCbCr(r, g, b uint8) (y, cb, cr uint8) {
	yy := (rYTab[r] + gYTab[g] + bYTab[b]) >> cscScale
	cbv := (rCbTab[r] + gCbTab[g] + bCbTab[b]) >> cscScale
	crv := (rCrTab[r] + gCrTab[g] + bCrTab[b]) >> cscScale
	return uint8(clamp8(yy)), uint8(clamp8(cbv)), uint8(clamp8(crv))
}

// YCbCrToRGB inverts RGBToYCbCr, range-limited against corrupt Cb/Cr.
func YCbCrToRGB(y, cb, cr uint8) (r, g, b uint8) {
	yy := int32(y)
	rr := yy + crToRTab[cr]
	gg := yy + (crToGTab[cr]+cbToGTab[cb])>>cscScale
	bb := yy + cbToBTab[cb]
	return uint8(clamp8(rr)), uint8(clamp8(gg)), uint8(clamp8(bb))
}

func clamp8(v int32) int32 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}

// RGBToGray derives a single luminance sample, the degenerate one-component
// case of RGBToYCbCr (spec §4.2, grayscale destination from an RGB source).
func RGBToGray(r, g, b uint8) uint8 {
	y, _, _ := RGBToYCbCr(r, g, b)
	return y
}

// CMYKToYCCK converts CMYK to YCCK by color-converting the inverted RGB
// portion (C,M,Y treated as inverted R,G,B) and passing K through unchanged,
// matching Adobe's YCCK convention (spec §4.2 Non-goal note: CMYK/YCCK input
// is accepted but not a primary path, grounded on the same transform
// libjpeg's jccolor.c uses for APP14 transform=2 data).
func CMYKToYCCK(c, m, yk, k uint8) (y, cb, cr, kk uint8) {
	r := 255 - c
	g := 255 - m
	b := 255 - yk
	y, cb, cr = RGBToYCbCr(r, g, b)
	return y, cb, cr, k
}

// YCCKToCMYK inverts CMYKToYCCK.
func YCCKToCMYK(y, cb, cr, k uint8) (c, m, yk, kk uint8) {
	r, g, b := YCbCrToRGB(y, cb, cr)
	return 255 - r, 255 - g, 255 - b, k
}
