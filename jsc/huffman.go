package jsc

import "github.com/abcouwer-jpl/jsc-sub000/jscerr"

// HuffTable is the DHT-wire shape: Bits[l] counts how many codes of length
// l (1..16) exist, Values holds the symbols in order of increasing code
// length (spec §3 "Huffman table").
type HuffTable struct {
	Bits   [17]uint8 // index 0 unused, 1..16 are the code-length counts
	Values [256]uint8
	NumValues int
	Sent    bool // marker writer skips this table's DHT while true; only SuppressTables sets it
}

func (h *HuffTable) totalCodes() int {
	n := 0
	for l := 1; l <= 16; l++ {
		n += int(h.Bits[l])
	}
	return n
}

// DerivedEncTable holds, per symbol, the Huffman code and its bit length
// (ehufco/ehufsi in spec §3 "Derived Huffman table (encoder)"). A zero
// length means the symbol is not in the table.
type DerivedEncTable struct {
	Code [256]uint32
	Size [256]uint8
}

// BuildEncoderTable derives ehufco/ehufsi from a wire HuffTable following
// Figure C.1/C.2 of the JPEG spec, and validates that no code is all-ones
// of its own length (spec §4.5).
func BuildEncoderTable(h *HuffTable) (*DerivedEncTable, error) {
	// Figure C.1: generate the code sizes in symbol order.
	type huffSize struct {
		size uint8
	}
	n := h.totalCodes()
	sizes := make([]uint8, 0, n+1)
	for l := 1; l <= 16; l++ {
		for i := 0; i < int(h.Bits[l]); i++ {
			sizes = append(sizes, uint8(l))
		}
	}

	// Figure C.2: generate the codes themselves.
	codes := make([]uint32, len(sizes))
	code := uint32(0)
	si := sizes[0]
	k := 0
	for k < len(sizes) {
		for k < len(sizes) && sizes[k] == si {
			codes[k] = code
			code++
			k++
		}
		code <<= 1
		si++
	}

	out := &DerivedEncTable{}
	for i := 0; i < len(sizes); i++ {
		sym := h.Values[i]
		size := sizes[i]
		if size > 0 && codes[i] == (1<<size)-1 {
			return nil, jscerr.New(jscerr.CodeHuffBitsOverflow,
				"huffman code is all-ones of its own length")
		}
		out.Code[sym] = codes[i]
		out.Size[sym] = size
	}
	return out, nil
}

// lookaheadEntry is one slot of the 8-bit lookahead table: Len==0 means the
// next 8 bits do not resolve a complete code within 8 bits.
type lookaheadEntry struct {
	Len uint8
	Val uint8
}

// DerivedDecTable holds maxcode[l] / valoffset[l] plus the 8-bit lookahead
// table described in spec §3 "Derived Huffman table (decoder)".
type DerivedDecTable struct {
	MaxCode   [18]int32 // maxcode[17] is the sentinel: a value no real code reaches
	ValOffset [17]int32
	Lookahead [256]lookaheadEntry
	Values    [256]uint8 // copy of the wire table's symbol list, indexed by code+valoffset
}

// BuildDecoderTable derives maxcode/valoffset/lookahead from a wire
// HuffTable (spec §3, §4.6).
func BuildDecoderTable(h *HuffTable) (*DerivedDecTable, error) {
	out := &DerivedDecTable{}
	out.Values = h.Values

	code := int32(0)
	valIdx := int32(0)
	for l := 1; l <= 16; l++ {
		if h.Bits[l] == 0 {
			out.MaxCode[l] = -1
		} else {
			out.ValOffset[l] = valIdx - code
			valIdx += int32(h.Bits[l])
			code += int32(h.Bits[l])
			out.MaxCode[l] = code - 1
		}
		code <<= 1
	}
	out.MaxCode[17] = 0x7FFFFFFF

	for i := range out.Lookahead {
		out.Lookahead[i] = lookaheadEntry{}
	}
	code = 0
	valIdx = 0
	for l := 1; l <= 8; l++ {
		for i := 0; i < int(h.Bits[l]); i++ {
			shift := 8 - l
			base := int(code) << shift
			for j := 0; j < 1<<shift; j++ {
				out.Lookahead[base+j] = lookaheadEntry{Len: uint8(l), Val: h.Values[valIdx]}
			}
			code++
			valIdx++
		}
		code <<= 1
	}
	return out, nil
}

// StandardDCLuminanceTable / StandardACLuminanceTable / ...Chrominance are
// the Annex K default tables, used when the caller does not supply custom
// Huffman tables (spec §6 "set_defaults").
func StandardDCLuminanceTable() HuffTable {
	return newStdTable(stdDCLumBits, stdDCLumVals)
}

func StandardDCChrominanceTable() HuffTable {
	return newStdTable(stdDCChromBits, stdDCChromVals)
}

func StandardACLuminanceTable() HuffTable {
	return newStdTable(stdACLumBits, stdACLumVals)
}

func StandardACChrominanceTable() HuffTable {
	return newStdTable(stdACChromBits, stdACChromVals)
}

func newStdTable(bits [17]uint8, values []uint8) HuffTable {
	var h HuffTable
	h.Bits = bits
	copy(h.Values[:], values)
	h.NumValues = len(values)
	return h
}

var stdDCLumBits = [17]uint8{0, 0, 1, 5, 1, 1, 1, 1, 1, 1, 0, 0, 0, 0, 0, 0, 0}
var stdDCLumVals = []uint8{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}

var stdDCChromBits = [17]uint8{0, 0, 3, 1, 1, 1, 1, 1, 1, 1, 1, 1, 0, 0, 0, 0, 0}
var stdDCChromVals = []uint8{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}

var stdACLumBits = [17]uint8{0, 0, 2, 1, 3, 3, 2, 4, 3, 5, 5, 4, 4, 0, 0, 1, 0x7d}
var stdACLumVals = []uint8{
	0x01, 0x02, 0x03, 0x00, 0x04, 0x11, 0x05, 0x12,
	0x21, 0x31, 0x41, 0x06, 0x13, 0x51, 0x61, 0x07,
	0x22, 0x71, 0x14, 0x32, 0x81, 0x91, 0xa1, 0x08,
	0x23, 0x42, 0xb1, 0xc1, 0x15, 0x52, 0xd1, 0xf0,
	0x24, 0x33, 0x62, 0x72, 0x82, 0x09, 0x0a, 0x16,
	0x17, 0x18, 0x19, 0x1a, 0x25, 0x26, 0x27, 0x28,
	0x29, 0x2a, 0x34, 0x35, 0x36, 0x37, 0x38, 0x39,
	0x3a, 0x43, 0x44, 0x45, 0x46, 0x47, 0x48, 0x49,
	0x4a, 0x53, 0x54, 0x55, 0x56, 0x57, 0x58, 0x59,
	0x5a, 0x63, 0x64, 0x65, 0x66, 0x67, 0x68, 0x69,
	0x6a, 0x73, 0x74, 0x75, 0x76, 0x77, 0x78, 0x79,
	0x7a, 0x83, 0x84, 0x85, 0x86, 0x87, 0x88, 0x89,
	0x8a, 0x92, 0x93, 0x94, 0x95, 0x96, 0x97, 0x98,
	0x99, 0x9a, 0xa2, 0xa3, 0xa4, 0xa5, 0xa6, 0xa7,
	0xa8, 0xa9, 0xaa, 0xb2, 0xb3, 0xb4, 0xb5, 0xb6,
	0xb7, 0xb8, 0xb9, 0xba, 0xc2, 0xc3, 0xc4, 0xc5,
	0xc6, 0xc7, 0xc8, 0xc9, 0xca, 0xd2, 0xd3, 0xd4,
	0xd5, 0xd6, 0xd7, 0xd8, 0xd9, 0xda, 0xe1, 0xe2,
	0xe3, 0xe4, 0xe5, 0xe6, 0xe7, 0xe8, 0xe9, 0xea,
	0xf1, 0xf2, 0xf3, 0xf4, 0xf5, 0xf6, 0xf7, 0xf8,
	0xf9, 0xfa,
}

var stdACChromBits = [17]uint8{0, 0, 2, 1, 2, 4, 4, 3, 4, 7, 5, 4, 4, 0, 1, 2, 0x77}
var stdACChromVals = []uint8{
	0x00, 0x01, 0x02, 0x03, 0x11, 0x04, 0x05, 0x21,
	0x31, 0x06, 0x12, 0x41, 0x51, 0x07, 0x61, 0x71,
	0x13, 0x22, 0x32, 0x81, 0x08, 0x14, 0x42, 0x91,
	0xa1, 0xb1, 0xc1, 0x09, 0x23, 0x33, 0x52, 0xf0,
	0x15, 0x62, 0x72, 0xd1, 0x0a, 0x16, 0x24, 0x34,
	0xe1, 0x25, 0xf1, 0x17, 0x18, 0x19, 0x1a, 0x26,
	0x27, 0x28, 0x29, 0x2a, 0x35, 0x36, 0x37, 0x38,
	0x39, 0x3a, 0x43, 0x44, 0x45, 0x46, 0x47, 0x48,
	0x49, 0x4a, 0x53, 0x54, 0x55, 0x56, 0x57, 0x58,
	0x59, 0x5a, 0x63, 0x64, 0x65, 0x66, 0x67, 0x68,
	0x69, 0x6a, 0x73, 0x74, 0x75, 0x76, 0x77, 0x78,
	0x79, 0x7a, 0x82, 0x83, 0x84, 0x85, 0x86, 0x87,
	0x88, 0x89, 0x8a, 0x92, 0x93, 0x94, 0x95, 0x96,
	0x97, 0x98, 0x99, 0x9a, 0xa2, 0xa3, 0xa4, 0xa5,
	0xa6, 0xa7, 0xa8, 0xa9, 0xaa, 0xb2, 0xb3, 0xb4,
	0xb5, 0xb6, 0xb7, 0xb8, 0xb9, 0xba, 0xc2, 0xc3,
	0xc4, 0xc5, 0xc6, 0xc7, 0xc8, 0xc9, 0xca, 0xd2,
	0xd3, 0xd4, 0xd5, 0xd6, 0xd7, 0xd8, 0xd9, 0xda,
	0xe2, 0xe3, 0xe4, 0xe5, 0xe6, 0xe7, 0xe8, 0xe9,
	0xea, 0xf2, 0xf3, 0xf4, 0xf5, 0xf6, 0xf7, 0xf8,
	0xf9, 0xfa,
}
