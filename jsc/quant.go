package jsc

// QuantTable holds 64 unsigned 16-bit values in natural (row-major) order,
// plus a Sent flag: while it is true the marker writer skips this table's
// DQT. Only SuppressTables sets it (spec §3 "Quantization table").
type QuantTable struct {
	Natural [DCTSize2]uint16
	Sent    bool
}

// stdLuminanceQT / stdChrominanceQT are the baseline tables from the JPEG
// spec Annex K, in natural (row-major) order, exactly as libjpeg's
// jcparam.c ships them — the grounding for every quality-derived table.
var stdLuminanceQT = [DCTSize2]uint16{
	16, 11, 10, 16, 24, 40, 51, 61,
	12, 12, 14, 19, 26, 58, 60, 55,
	14, 13, 16, 24, 40, 57, 69, 56,
	14, 17, 22, 29, 51, 87, 80, 62,
	18, 22, 37, 56, 68, 109, 103, 77,
	24, 35, 55, 64, 81, 104, 113, 92,
	49, 64, 78, 87, 103, 121, 120, 101,
	72, 92, 95, 98, 112, 100, 103, 99,
}

var stdChrominanceQT = [DCTSize2]uint16{
	17, 18, 24, 47, 99, 99, 99, 99,
	18, 21, 26, 66, 99, 99, 99, 99,
	24, 26, 56, 99, 99, 99, 99, 99,
	47, 66, 99, 99, 99, 99, 99, 99,
	99, 99, 99, 99, 99, 99, 99, 99,
	99, 99, 99, 99, 99, 99, 99, 99,
	99, 99, 99, 99, 99, 99, 99, 99,
	99, 99, 99, 99, 99, 99, 99, 99,
}

// qualityToScalePercent converts a 1..100 quality knob into the percent
// scaling factor applied to the Annex K base tables (spec §4.4).
func qualityToScalePercent(quality int) int {
	if quality <= 0 {
		quality = 1
	}
	if quality > 100 {
		quality = 100
	}
	if quality < 50 {
		return 5000 / quality
	}
	return 200 - 2*quality
}

// BuildQuantTable scales a base Annex K table by the given quality,
// clamping to 1..255 when baseline forcing is on (always, in this codec —
// spec §4.4 "Baseline forcing is always on in this codec") or 1..32767
// otherwise.
func BuildQuantTable(base [DCTSize2]uint16, quality int, baselineForce bool) QuantTable {
	scale := qualityToScalePercent(quality)
	var qt QuantTable
	for i := 0; i < DCTSize2; i++ {
		temp := (int(base[i])*scale + 50) / 100
		if temp <= 0 {
			temp = 1
		}
		max := 32767
		if baselineForce {
			max = 255
		}
		if temp > max {
			temp = max
		}
		qt.Natural[i] = uint16(temp)
	}
	return qt
}

// StandardLuminanceQuantTable builds the luminance table for the given
// quality, baseline-forced.
func StandardLuminanceQuantTable(quality int) QuantTable {
	return BuildQuantTable(stdLuminanceQT, quality, true)
}

// StandardChrominanceQuantTable builds the chrominance table for the given
// quality, baseline-forced.
func StandardChrominanceQuantTable(quality int) QuantTable {
	return BuildQuantTable(stdChrominanceQT, quality, true)
}

// ValidateForWire checks the decoder-side acceptance range (1..65535 is
// representable in the wire's 8/16-bit fields; baseline further restricts
// to 1..255, but the decoder accepts whatever the encoder legally wrote and
// leaves range enforcement to the encoder per spec §3).
func (qt *QuantTable) ValidateForWire() bool {
	for _, v := range qt.Natural {
		if v == 0 {
			return false
		}
	}
	return true
}
