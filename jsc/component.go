package jsc

// Component describes one color channel: its JPEG component id, its
// sampling factors relative to the frame's maximum, and the table selectors
// a scan referencing it must resolve (spec §3 "Component").
type Component struct {
	ID    uint8 // 0..255, the JPEG component identifier byte
	Index int   // position within the frame's component list

	HSamp int // 1..4
	VSamp int // 1..4

	QuantSel int // 0..NumQuantTables-1
	DCSel    int // 0..NumHuffTables-1
	ACSel    int // 0..NumHuffTables-1

	// BlocksPerMCUWidth/Height are this component's block-grid dimensions
	// within one MCU, i.e. HSamp x VSamp.
	BlocksPerMCUWidth  int
	BlocksPerMCUHeight int

	// BlockWidth/BlockHeight are the component's full block-grid dimensions
	// across the image, rounded up to whole MCUs.
	BlockWidth  int
	BlockHeight int

	// DownsampledWidth/Height are the true (non-padded) sample dimensions
	// for this component, used to know how many samples are real image data
	// versus MCU padding.
	DownsampledWidth  int
	DownsampledHeight int

	// Needed marks whether this component's decoded samples feed the output
	// color conversion. The decoder sets it for every component, and
	// DecodeBlock does not consult it: every component's value bits are
	// decoded in full (spec §4.6 point 3).
	Needed bool
}

// BlocksPerMCU returns HSamp*VSamp, this component's contribution to the
// MCU block count (spec §3 "MCU": "Σ h_samp × v_samp blocks in component
// order").
func (c *Component) BlocksPerMCU() int {
	return c.HSamp * c.VSamp
}

// deriveSizes fills in the block-grid and sample-grid fields once the
// frame's maximum sampling factors and MCU grid are known. Called by both
// the encoder (from caller-supplied sampling factors) and the decoder (from
// a parsed SOF0).
func (c *Component) deriveSizes(maxHSamp, maxVSamp, mcusWide, mcusHigh, imageWidth, imageHeight int) {
	c.BlocksPerMCUWidth = c.HSamp
	c.BlocksPerMCUHeight = c.VSamp
	c.BlockWidth = mcusWide * c.HSamp
	c.BlockHeight = mcusHigh * c.VSamp

	c.DownsampledWidth = (imageWidth*c.HSamp + maxHSamp - 1) / maxHSamp
	c.DownsampledHeight = (imageHeight*c.VSamp + maxVSamp - 1) / maxVSamp
}

// mcuGrid computes the MCU-column and MCU-row count for a frame given its
// pixel dimensions and the maximum sampling factors across all components
// (spec §3 "iMCU row": max_v_samp x 8 pixel rows is the main-controller
// granularity).
func mcuGrid(width, height, maxHSamp, maxVSamp int) (mcusWide, mcusHigh int) {
	mcuWidth := maxHSamp * DCTSize
	mcuHeight := maxVSamp * DCTSize
	mcusWide = (width + mcuWidth - 1) / mcuWidth
	mcusHigh = (height + mcuHeight - 1) / mcuHeight
	return
}
