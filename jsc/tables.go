package jsc

// DCTSize is the one and only supported DCT block edge length.
const DCTSize = 8

// DCTSize2 is the number of coefficients in one 8x8 block.
const DCTSize2 = DCTSize * DCTSize

// MaxSampFactor bounds h_samp/v_samp and, with DCTSize, the number of rows
// carved for an Alloc2D plane (spec §4.1).
const MaxSampFactor = 4

// MaxBlocksInMCU bounds the number of blocks in one MCU (spec §3 "MCU").
const MaxBlocksInMCU = 10

// MaxComponents is the maximum number of components this codec accepts in
// one frame: 1 for Grayscale, 3 for YCbCr/RGB/BG_RGB/BG_YCC, 4 for CMYK/
// YCCK, up to 10 for UNKNOWN-of-N-components (spec.md §6 "in_color_space",
// the UNKNOWN case's "input_components is user-supplied 1..10"). This also
// bounds MaxBlocksInMCU at 1x1 sampling for every component.
const MaxComponents = 10

// NumQuantTables / NumHuffTables bound the selector range named in spec §3:
// quantization selector 0..3, Huffman selector 0..1 (Component invariant).
const (
	NumQuantTables = 4
	NumHuffTables  = 2
)

// zigzagOrder maps a zigzag-scan position to its natural (row-major)
// position, the standard JPEG scan order.
var zigzagOrder = [DCTSize2]int{
	0, 1, 8, 16, 9, 2, 3, 10,
	17, 24, 32, 25, 18, 11, 4, 5,
	12, 19, 26, 33, 40, 48, 41, 34,
	27, 20, 13, 6, 7, 14, 21, 28,
	35, 42, 49, 56, 57, 50, 43, 36,
	29, 22, 15, 23, 30, 37, 44, 51,
	58, 59, 52, 45, 38, 31, 39, 46,
	53, 60, 61, 54, 47, 55, 62, 63,
}

// naturalOrder is zigzagOrder extended with 16 extra entries that all read
// back position 63 — the "deliberate safety-margin for corrupt input" named
// in spec.md §9: a corrupt AC run that walks k past 64 in the Huffman
// decoder harmlessly keeps redepositing on the last coefficient instead of
// indexing out of the block.
var naturalOrder [DCTSize2 + 16]int

func init() {
	copy(naturalOrder[:DCTSize2], zigzagOrder[:])
	for i := DCTSize2; i < len(naturalOrder); i++ {
		naturalOrder[i] = DCTSize2 - 1
	}
}

// NaturalOrder returns the natural-order position for zigzag index k. k may
// run up to len(naturalOrder)-1 without panicking, by construction.
func NaturalOrder(k int) int {
	return naturalOrder[k]
}

// RangeBits / rangeCenter / rangeMask implement the range-limit table from
// spec §4.4: RANGE_BITS=2, CENTER=512, MASK=1023. The table is 2048 entries
// implementing the identity on [0,255], zero below, 255 (MAXJSAMPLE) above,
// shifted so the IDCT can do limit[(x+CENTER)&MASK] and always land in
// bounds even for wildly out-of-range corrupt-input sums.
const (
	RangeBits     = 2
	rangeCenter   = 1 << (DCTSize + RangeBits - 1) // 512
	rangeMask     = (1 << (DCTSize + RangeBits)) - 1 // 1023
	rangeTableLen = 1 << (DCTSize + RangeBits + 1)   // 2048
)

// RangeLimitTable is a read-only, process-wide constant (spec §5): the
// zigzag and range-limit tables never vary per instance.
var RangeLimitTable [rangeTableLen]uint8

func init() {
	// Entries [0, CENTER) preceding the in-range window: clamp to 0.
	// Entries [CENTER, CENTER+256): the identity, 0..255.
	// Entries [CENTER+256, rangeTableLen): clamp to 255. RangeLimit masks its
	// index with rangeMask, so only entries [0, rangeMask] are ever read.
	for i := 0; i < rangeTableLen; i++ {
		v := i - rangeCenter
		switch {
		case v < 0:
			RangeLimitTable[i] = 0
		case v < 256:
			RangeLimitTable[i] = uint8(v)
		default:
			RangeLimitTable[i] = 255
		}
	}
}

// RangeLimit clamps an IDCT output sample (already level-shifted by +128)
// into [0,255] for inputs in [-512, 511]. Inputs outside that range wrap
// modulo 1024 before the lookup, so corrupt input never indexes out of
// bounds but is not clamped either.
func RangeLimit(x int32) uint8 {
	return RangeLimitTable[(int(x)+rangeCenter)&rangeMask]
}
