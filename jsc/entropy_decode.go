package jsc

import "github.com/abcouwer-jpl/jsc-sub000/jscerr"

// DecodeState mirrors EncodeState on the decode side: running DC prediction
// per component, reset at every restart interval (spec §4.6).
type DecodeState struct {
	lastDC [MaxComponents]int32
}

func (s *DecodeState) ResetRestart() {
	for i := range s.lastDC {
		s.lastDC[i] = 0
	}
}

// decodeHuffSymbol resolves one Huffman symbol using the 8-bit lookahead
// table first, falling back to a bit-by-bit walk through maxcode/valoffset
// for codes longer than 8 bits (spec §4.6, derived decoder table).
func decodeHuffSymbol(r *BitReader, tbl *DerivedDecTable) (uint8, error) {
	peek, avail := r.Peek8()
	if avail == 8 {
		entry := tbl.Lookahead[peek]
		if entry.Len != 0 {
			r.Advance(uint32(entry.Len))
			return entry.Val, nil
		}
	}

	code := int32(0)
	for l := 1; l <= 16; l++ {
		code = (code << 1) | int32(r.Read(1))
		if tbl.MaxCode[l] >= 0 && code <= tbl.MaxCode[l] {
			idx := code + tbl.ValOffset[l]
			if idx < 0 || idx >= 256 {
				return 0, jscerr.New(jscerr.CodeGarbageMarker, "huffman decode produced an out-of-range symbol index")
			}
			return tbl.Values[idx], nil
		}
	}
	return 0, jscerr.New(jscerr.CodeGarbageMarker, "huffman code did not resolve within 16 bits")
}

// DecodeBlock Huffman-decodes one block's 64 natural-order coefficients,
// zero-filling any AC position never reached by a real code (a short scan
// or a corrupt stream both leave trailing coefficients at zero rather than
// reading past the block, per spec §4.6 point 2 and the naturalOrder
// sentinel extension in tables.go).
func DecodeBlock(r *BitReader, state *DecodeState, componentIndex int, dcTable, acTable *DerivedDecTable, out []int16) error {
	if len(out) != DCTSize2 {
		panic("jsc: DecodeBlock requires a 64-element output slice")
	}
	for i := range out {
		out[i] = 0
	}

	dcCat, err := decodeHuffSymbol(r, dcTable)
	if err != nil {
		return err
	}
	if dcCat > 11 {
		return jscerr.New(jscerr.CodeHuffDCValueTooLarge, "DC category exceeds the baseline limit of 11")
	}
	diff := int32(0)
	if dcCat > 0 {
		bits := r.Read(uint32(dcCat))
		diff = extend(bits, uint32(dcCat))
	}
	dc := state.lastDC[componentIndex] + diff
	state.lastDC[componentIndex] = dc
	out[0] = int16(dc)

	k := 1
	for k < DCTSize2 {
		sym, err := decodeHuffSymbol(r, acTable)
		if err != nil {
			return err
		}
		run := int(sym >> 4)
		cat := sym & 0x0F

		if cat == 0 {
			if run == 15 {
				k += 16 // ZRL: 16 zero coefficients
				continue
			}
			break // EOB: remaining coefficients stay zero
		}

		k += run
		bits := r.Read(uint32(cat))
		val := extend(bits, uint32(cat))
		pos := NaturalOrder(k)
		out[pos] = int16(val)
		k++
	}
	return nil
}

// extend sign-extends a numBits-wide Huffman-coded magnitude back to a
// signed value, the inverse of signMagnitude (spec §3 "EXTEND").
func extend(v uint32, numBits uint32) int32 {
	if numBits == 0 {
		return 0
	}
	vt := int32(1) << (numBits - 1)
	sv := int32(v)
	if sv < vt {
		return sv - (1 << numBits) + 1
	}
	return sv
}
