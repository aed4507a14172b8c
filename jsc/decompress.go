package jsc

import (
	"github.com/abcouwer-jpl/jsc-sub000/jscerr"
)

// DState is the decompressor lifecycle (spec §4.9 "master control",
// decode side): START -> INHEADER -> READY -> SCANNING -> STOPPING.
type DState int

const (
	DStateStart DState = iota
	DStateInHeader
	DStateReady
	DStateScanning
	DStateStopping
)

// HeaderStatus is ReadHeader's result, mirroring the three outcomes spec §6
// names explicitly.
type HeaderStatus int

const (
	HeaderOK HeaderStatus = iota
	HeaderTablesOnly
	HeaderSuspended
)

// MarkerCallback receives one COM or APPn segment's marker byte and raw
// payload during ReadHeader (spec §6 "set_marker_processor"). The default,
// installed nowhere, is to skip the segment once its internal JFIF/Adobe
// parse (if any) has run.
type MarkerCallback func(marker byte, payload []byte) error

// Decompressor parses a baseline JPEG bitstream and produces scanlines,
// grounded on the teacher's marker-walking structure in jpeg_read.go but
// rebuilt around a bounded one-iMCU-row work buffer instead of a
// whole-image BlockBasedImage (spec §4.1, §4.8).
type Decompressor struct {
	Common
	DoFancyUpsampling bool // spec §6 "do_fancy_upsampling", true by default once AttachArena runs

	state DState
	frame FrameInfo

	decTablesDC [NumHuffTables]*DerivedDecTable
	decTablesAC [NumHuffTables]*DerivedDecTable
	quantSent   [NumQuantTables]bool
	dcSent      [NumHuffTables]bool
	acSent      [NumHuffTables]bool

	src    []byte
	reader *segmentReader
	bits   *BitReader
	decode DecodeState

	restartsSeen    int
	outputRow       int
	scanStart       int // absolute offset in src where the entropy-coded scan began
	expectedRestart int // next RSTn cyclic number expected, 0..7

	appProcessors [16]MarkerCallback // indexed by marker-0xE0
	comProcessor  MarkerCallback

	JFIFPresent     bool
	JFIFMajor       uint8
	JFIFMinor       uint8
	JFIFDensityUnit uint8
	JFIFXDensity    uint16
	JFIFYDensity    uint16

	AdobePresent   bool
	AdobeTransform uint8
}

// SetMarkerProcessor installs a callback invoked with a COM or APPn
// segment's marker and raw payload during ReadHeader, overriding the
// default of silently skipping it once JFIF/Adobe's own internal parse (if
// any) has run (spec §6 "set_marker_processor").
func (d *Decompressor) SetMarkerProcessor(marker byte, cb MarkerCallback) {
	if marker == MarkerCOM {
		d.comProcessor = cb
		return
	}
	d.Hooks.assert(isAPPn(marker), "SetMarkerProcessor: marker must be COM or an APPn marker")
	d.appProcessors[marker-0xE0] = cb
}

// AttachArena binds the decompressor to a caller-owned working buffer,
// also defaulting DoFancyUpsampling on (spec §6 "do_fancy_upsampling").
func (d *Decompressor) AttachArena(buf []byte) {
	d.Common.AttachArena(buf)
	d.DoFancyUpsampling = true
}

// MemSrc points the decompressor at the (possibly partial) input buffer.
// Calling it again with a longer buffer after a Suspended result restarts
// marker parsing from the start of that buffer; tables recorded by the
// earlier ReadHeader stay recorded, so a DQT seen again is rejected as a
// duplicate (spec §6 "suspension").
func (d *Decompressor) MemSrc(src []byte) {
	d.src = src
	d.reader = newSegmentReader(src)
}

// ReadHeader walks marker segments until it reaches SOS (HeaderOK), reaches
// EOI before any SOF (HeaderTablesOnly), or runs out of input
// (HeaderSuspended) (spec §4.9, §6). Every rejection, including EOI after an
// SOF but before any SOS (CodeMissingSOS), returns HeaderSuspended with a
// non-nil error.
func (d *Decompressor) ReadHeader() (HeaderStatus, error) {
	d.Hooks.assert(d.reader != nil, "MemSrc must be called before ReadHeader")
	d.Hooks.assert(d.state == DStateStart || d.state == DStateInHeader, "ReadHeader called out of order")
	d.state = DStateInHeader

	first, err := d.reader.readMarker()
	if err != nil {
		return HeaderSuspended, err
	}
	if first != MarkerSOI {
		return HeaderSuspended, jscerr.New(jscerr.CodeNoSOI, "stream does not start with SOI")
	}

	sawSOF := false
	for i := 0; i < maxMarkerScan; i++ {
		m, err := d.reader.readMarker()
		if err != nil {
			if jscerr.Is(err, jscerr.CodeSuspended) {
				return HeaderSuspended, err
			}
			return HeaderSuspended, err
		}

		switch {
		case m == MarkerSOF0:
			if sawSOF {
				return HeaderSuspended, jscerr.New(jscerr.CodeDuplicateSOF, "more than one SOF marker")
			}
			if err := d.readSOF0(); err != nil {
				return HeaderSuspended, err
			}
			sawSOF = true
		case m == MarkerDQT:
			if err := d.readDQT(); err != nil {
				return HeaderSuspended, err
			}
		case m == MarkerDHT:
			if err := d.readDHT(); err != nil {
				return HeaderSuspended, err
			}
		case m == MarkerDRI:
			if err := d.readDRI(); err != nil {
				return HeaderSuspended, err
			}
		case m == MarkerSOS:
			if !sawSOF {
				return HeaderSuspended, jscerr.New(jscerr.CodeSOSBeforeSOF, "SOS before SOF")
			}
			if err := d.readSOS(); err != nil {
				return HeaderSuspended, err
			}
			return d.finishHeader()
		case m == MarkerEOI:
			if !sawSOF {
				return HeaderTablesOnly, nil
			}
			return HeaderSuspended, jscerr.New(jscerr.CodeMissingSOS, "EOI reached without a scan")
		case isAPPn(m):
			if err := d.readAPPn(m); err != nil {
				return HeaderSuspended, err
			}
		case m == MarkerCOM:
			if err := d.readCOM(); err != nil {
				return HeaderSuspended, err
			}
		default:
			if _, err := d.reader.readSegment(); err != nil {
				return HeaderSuspended, err
			}
		}
	}
	return HeaderSuspended, jscerr.New(jscerr.CodeMarkerLoopExceeded, "too many marker segments before SOS")
}

func (d *Decompressor) finishHeader() (HeaderStatus, error) {
	if d.frame.NumComponents == 0 {
		return HeaderSuspended, jscerr.New(jscerr.CodeSOSBeforeSOF, "no SOF before SOS")
	}
	// An Adobe APP14 marker, when present, is authoritative over the
	// component-count guess readSOF0 made (spec §3 "Adobe transform byte").
	if d.AdobePresent {
		switch {
		case d.AdobeTransform == 0 && d.frame.NumComponents == 4:
			d.frame.ColorSpace = ColorCMYK
		case d.AdobeTransform == 0 && d.frame.NumComponents == 3:
			d.frame.ColorSpace = ColorRGB
		case d.AdobeTransform == 1 && d.frame.NumComponents == 3:
			d.frame.ColorSpace = ColorYCbCr
		case d.AdobeTransform == 2 && d.frame.NumComponents == 4:
			d.frame.ColorSpace = ColorYCCK
		}
	}
	d.frame.deriveGeometry()
	if d.frame.blocksPerMCU() > MaxBlocksInMCU {
		return HeaderSuspended, jscerr.New(jscerr.CodeBlocksPerMCUExceeded, "MCU exceeds the maximum supported block count")
	}
	for i := 0; i < NumHuffTables; i++ {
		if d.dcSent[i] {
			t, err := BuildDecoderTable(&d.frame.DCTables[i])
			if err != nil {
				return HeaderSuspended, err
			}
			d.decTablesDC[i] = t
		}
		if d.acSent[i] {
			t, err := BuildDecoderTable(&d.frame.ACTables[i])
			if err != nil {
				return HeaderSuspended, err
			}
			d.decTablesAC[i] = t
		}
	}
	for i := 0; i < d.frame.NumComponents; i++ {
		sel := d.frame.Components[i].DCSel
		if d.decTablesDC[sel] == nil {
			return HeaderSuspended, jscerr.New(jscerr.CodeHuffSelectorUndefined, "component references an undefined DC table")
		}
		if d.decTablesAC[d.frame.Components[i].ACSel] == nil {
			return HeaderSuspended, jscerr.New(jscerr.CodeHuffSelectorUndefined, "component references an undefined AC table")
		}
		if !d.quantSent[d.frame.Components[i].QuantSel] {
			return HeaderSuspended, jscerr.New(jscerr.CodeQuantSelectorUndefined, "component references an undefined quantization table")
		}
	}
	d.state = DStateReady
	return HeaderOK, nil
}

// StartDecompress readies the bit reader over the entropy-coded data that
// begins right after SOS.
func (d *Decompressor) StartDecompress() error {
	d.Hooks.assert(d.state == DStateReady, "StartDecompress called out of order")
	d.scanStart = d.reader.pos
	d.bits = NewBitReader(d.src[d.scanStart:], d.Hooks.warn)
	d.expectedRestart = 0
	d.state = DStateScanning
	return nil
}

// ReadScanlines decodes the next iMCU row's worth of MCUs and writes
// interleaved scanlines into dstRows (each row
// Width*FrameOutputBytesPerPixel() bytes),
// returning the number of rows produced (spec §4.9, §4.7 upsample +
// color-convert fused per MCU row).
func (d *Decompressor) ReadScanlines(dstRows [][]uint8) (int, error) {
	d.Hooks.assert(d.state == DStateScanning, "ReadScanlines called out of order")

	mcuRowHeight := d.frame.MaxVSamp * DCTSize
	var coef [DCTSize2]int16
	var samples [DCTSize2]uint8

	rowsProduced := 0
	for mx := 0; mx < d.frame.MCUsWide; mx++ {
		if err := d.restartIfDue(mx); err != nil {
			return rowsProduced, err
		}
		for ci := 0; ci < d.frame.NumComponents; ci++ {
			comp := &d.frame.Components[ci]
			for by := 0; by < comp.VSamp; by++ {
				for bx := 0; bx < comp.HSamp; bx++ {
					dc := d.decTablesDC[comp.DCSel]
					ac := d.decTablesAC[comp.ACSel]
					if err := DecodeBlock(d.bits, &d.decode, ci, dc, ac, coef[:]); err != nil {
						return rowsProduced, err
					}
					InverseDCTBlock(coef[:], &d.frame.QuantTables[comp.QuantSel], samples[:])
					d.scatterBlockToRGB(dstRows, comp, ci, mx, bx, by, samples[:])
				}
			}
		}
	}
	rowsProduced = mcuRowHeight
	if rowsProduced > len(dstRows) {
		rowsProduced = len(dstRows)
	}
	d.outputRow += rowsProduced
	return rowsProduced, nil
}

// restartIfDue consumes an RSTn marker and resets DC prediction when the
// restart interval boundary falls at this MCU, resynchronizing to the
// nearest marker if the expected one is missing or corrupt (spec §4.6
// "restart recovery", §4.7 marker-reader restart branching). The MCU index is
// counted across the whole scan (MCU rows already produced times MCUsWide,
// plus column mx), matching the encoder's emitRestartIfDue. Resync always
// scans forward from d.bits's own consumed position (scanStart + d.bits.Pos()),
// never a stale segment-reader cursor, so it finds the marker adjacent to
// where decoding actually stalled rather than the first one anywhere in the
// scan.
func (d *Decompressor) restartIfDue(mx int) error {
	if d.frame.RestartInterval <= 0 {
		return nil
	}
	mcu := (d.outputRow/(d.frame.MaxVSamp*DCTSize))*d.frame.MCUsWide + mx
	if mcu == 0 || mcu%d.frame.RestartInterval != 0 {
		return nil
	}

	marker := d.bits.UnreadMarker()
	if marker == 0 {
		abs := d.scanStart + d.bits.Pos()
		m, next, ok := resyncToMarker(d.src, abs)
		if !ok {
			d.Hooks.warn("restart marker missing and none found before end of stream")
			d.bits.ResetForRestart()
			d.decode.ResetRestart()
			d.expectedRestart = (d.expectedRestart + 1) % 8
			d.restartsSeen++
			return nil
		}
		marker = m
		d.bits = NewBitReader(d.src[next:], d.Hooks.warn)
		d.scanStart = next
	}

	if !isRST(marker) {
		// A non-restart JPEG marker (e.g. EOI arriving early): leave it for
		// whatever reads the stream next rather than treating it as a
		// restart boundary.
		d.Hooks.warn("expected a restart marker, found a different marker; leaving it unread")
		return nil
	}

	found := int(marker - 0xD0)
	diff := ((found-d.expectedRestart)%8 + 8) % 8
	if diff > 4 {
		diff -= 8
	}
	switch {
	case diff >= -2 && diff <= 2:
		// Exactly the expected marker, or off by one or two (a dropped or
		// duplicated restart): resync the cyclic counter to what was found.
		d.expectedRestart = (found + 1) % 8
	default:
		d.Hooks.warn("restart marker cyclic number far from expected; discarding and continuing")
		d.expectedRestart = (d.expectedRestart + 1) % 8
	}

	d.bits.ResetForRestart()
	d.decode.ResetRestart()
	d.restartsSeen++
	return nil
}

// maxUpsampledBlockDim bounds one side of a single 8x8 block's upsampled
// expansion at the largest sampling factor this codec accepts (spec §7
// "sampling factors outside 1..4" is a rejection, so 4 is the ceiling).
const maxUpsampledBlockDim = DCTSize * 4

// bytesPerOutputPixel returns how many interleaved bytes ReadScanlines
// writes per pixel for the frame's parsed color space (spec §4.2, mirrored
// from the encoder's bytesPerInputPixel). Grayscale is replicated into a
// 3-byte (R=G=B) pixel to keep the destination row contract uniform with
// the YCbCr/RGB case; CMYK/YCCK are 4 bytes; UNKNOWN is NumComponents bytes,
// raw, with no color conversion at all.
func (d *Decompressor) bytesPerOutputPixel() int {
	switch d.frame.ColorSpace {
	case ColorGrayscale, ColorYCbCr, ColorRGB, ColorBGRGB, ColorBGYCC:
		return 3
	case ColorCMYK, ColorYCCK:
		return 4
	default:
		return d.frame.NumComponents
	}
}

// FrameOutputBytesPerPixel exposes bytesPerOutputPixel so a caller can size
// its destination rows correctly before calling ReadScanlines — not always
// Width*3, once a CMYK/YCCK/UNKNOWN-color-space image is involved (spec §6:
// this codec never allocates its own output).
func (d *Decompressor) FrameOutputBytesPerPixel() int { return d.bytesPerOutputPixel() }

// FrameColorSpace returns the JPEG color space ReadHeader parsed (spec §6).
func (d *Decompressor) FrameColorSpace() ColorSpace { return d.frame.ColorSpace }

// scatterBlockToRGB upsamples one just-decoded 8x8 block to full
// resolution (box or fancy/triangle-filtered per DoFancyUpsampling, spec
// §4.7) and color-converts it into the RGB destination rows. Upsampling
// happens one block at a time rather than over a whole plane, so "fancy"
// interpolation here blends within the block's own edge samples instead of
// a neighboring block's — a bounded-memory simplification of libjpeg's
// whole-row fancy upsampler.
func (d *Decompressor) scatterBlockToRGB(dstRows [][]uint8, comp *Component, ci, mx, bx, by int, block []uint8) {
	hRatio := d.frame.MaxHSamp / comp.HSamp
	vRatio := d.frame.MaxVSamp / comp.VSamp
	baseX := (mx*comp.HSamp + bx) * DCTSize * hRatio
	baseY := (by * DCTSize) * vRatio

	upStride := DCTSize * hRatio
	upRows := DCTSize * vRatio
	var upBuf [maxUpsampledBlockDim * maxUpsampledBlockDim]uint8
	up := upBuf[:upStride*upRows]

	switch {
	case hRatio == 1 && vRatio == 1:
		copy(up, block)
	case d.DoFancyUpsampling:
		UpsampleFancy(comp, d.frame.MaxHSamp, d.frame.MaxVSamp, block, DCTSize, up, upStride, upRows)
	default:
		UpsampleBox(comp, d.frame.MaxHSamp, d.frame.MaxVSamp, block, DCTSize, up, upStride, upRows)
	}

	bpp := d.bytesPerOutputPixel()
	for y := 0; y < upRows; y++ {
		dstY := baseY + y
		if dstY >= len(dstRows) {
			continue
		}
		row := dstRows[dstY]
		for x := 0; x < upStride; x++ {
			dstX := baseX + x
			if dstX*bpp+bpp > len(row) {
				continue
			}
			d.blendSample(row, dstX, ci, up[y*upStride+x])
		}
	}
}

// blendSample writes one channel's contribution into the interleaved
// destination row, converting once every channel for a pixel has landed.
// Since components are processed one at a time, intermediate values are
// stashed directly in their destination slots and the final conversion (for
// the color spaces that have one) happens when the last component lands:
// Y/Cb/Cr -> R/G/B for YCbCr and BG_YCC, Y/Cb/Cr/K -> C/M/Y/K for YCCK.
// Grayscale, RGB, BG_RGB, CMYK, and UNKNOWN are already in their final
// representation and are stored verbatim (spec §4.2 "Color conversion").
func (d *Decompressor) blendSample(row []uint8, x, ci int, v uint8) {
	bpp := d.bytesPerOutputPixel()
	switch d.frame.ColorSpace {
	case ColorGrayscale:
		row[x*3], row[x*3+1], row[x*3+2] = v, v, v
	case ColorYCbCr, ColorBGYCC:
		row[x*3+ci] = v
		if ci == 2 {
			r, g, b := YCbCrToRGB(row[x*3], row[x*3+1], row[x*3+2])
			row[x*3], row[x*3+1], row[x*3+2] = r, g, b
		}
	case ColorYCCK:
		row[x*4+ci] = v
		if ci == 3 {
			c8, m8, y8, k8 := YCCKToCMYK(row[x*4], row[x*4+1], row[x*4+2], row[x*4+3])
			row[x*4], row[x*4+1], row[x*4+2], row[x*4+3] = c8, m8, y8, k8
		}
	default:
		// RGB, BG_RGB, CMYK, UNKNOWN: no conversion.
		row[x*bpp+ci] = v
	}
}

// FinishDecompress advances to Stopping once the scan has been read. It does
// not look for or consume the EOI marker and returns no error of its own.
func (d *Decompressor) FinishDecompress() error {
	d.Hooks.assert(d.state == DStateScanning, "FinishDecompress called out of order")
	d.state = DStateStopping
	return nil
}

// InputComplete reports whether ReadHeader/ReadScanlines have consumed
// everything MemSrc was given (no outstanding suspension).
func (d *Decompressor) InputComplete() bool {
	if d.bits != nil {
		return d.scanStart+d.bits.Pos() >= len(d.src)
	}
	return d.reader != nil && d.reader.remaining() == 0
}

// QuantTableAt returns a pointer to quantization table selector sel (0..3)
// as parsed from DQT, for inspection after ReadHeader (spec §6
// "get_mem_quant_table").
func (d *Decompressor) QuantTableAt(sel int) *QuantTable {
	d.Hooks.assert(sel >= 0 && sel < NumQuantTables, "QuantTableAt: selector out of range")
	return &d.frame.QuantTables[sel]
}

// HuffTableAt returns a pointer to the DC (class 0) or AC (class 1) Huffman
// table at selector sel (0..1) as parsed from DHT (spec §6
// "get_mem_huff_table").
func (d *Decompressor) HuffTableAt(class, sel int) *HuffTable {
	d.Hooks.assert(sel >= 0 && sel < NumHuffTables, "HuffTableAt: selector out of range")
	if class == 0 {
		return &d.frame.DCTables[sel]
	}
	return &d.frame.ACTables[sel]
}

// FrameWidth and FrameHeight expose the dimensions ReadHeader parsed, so a
// caller can size its own output buffer before calling ReadScanlines (spec
// §6: this codec never allocates its own output).
func (d *Decompressor) FrameWidth() int  { return d.frame.Width }
func (d *Decompressor) FrameHeight() int { return d.frame.Height }

// HasMultipleScans always reports false: progressive JPEG (multiple scans
// per component) is an explicit Non-goal, so a single SOS is always the
// whole image (spec.md Non-goals).
func (d *Decompressor) HasMultipleScans() bool { return false }

// readAPPn reads one APPn segment, recording JFIF (APP0 "JFIF\0") version
// and density, tracing and skipping JFXX (APP0 "JFXX\0"), and recording
// Adobe's transform byte (APP14 "Adobe"), before handing the raw payload to
// any callback installed via SetMarkerProcessor (spec §4.9 marker-reading
// table).
func (d *Decompressor) readAPPn(marker byte) error {
	payload, err := d.reader.readSegment()
	if err != nil {
		return err
	}
	switch {
	case marker == MarkerAPP0 && hasPrefix(payload, "JFIF\x00"):
		d.parseJFIF(payload)
	case marker == MarkerAPP0 && hasPrefix(payload, "JFXX\x00"):
		// traced and skipped: no fields recorded for a JFXX extension.
		d.Hooks.trace("skipping JFXX extension segment")
	case marker == MarkerAPP14 && hasPrefix(payload, "Adobe"):
		d.parseAdobe(payload)
	}
	if cb := d.appProcessors[marker-0xE0]; cb != nil {
		return cb(marker, payload)
	}
	return nil
}

// readCOM reads one comment segment, handing it to any callback installed
// via SetMarkerProcessor (default: skip).
func (d *Decompressor) readCOM() error {
	payload, err := d.reader.readSegment()
	if err != nil {
		return err
	}
	if d.comProcessor != nil {
		return d.comProcessor(MarkerCOM, payload)
	}
	return nil
}

func hasPrefix(payload []byte, prefix string) bool {
	return len(payload) >= len(prefix) && string(payload[:len(prefix)]) == prefix
}

func (d *Decompressor) parseJFIF(payload []byte) {
	if len(payload) < 14 {
		return
	}
	d.JFIFPresent = true
	d.JFIFMajor = payload[5]
	d.JFIFMinor = payload[6]
	d.JFIFDensityUnit = payload[7]
	d.JFIFXDensity = uint16(payload[8])<<8 | uint16(payload[9])
	d.JFIFYDensity = uint16(payload[10])<<8 | uint16(payload[11])
}

func (d *Decompressor) parseAdobe(payload []byte) {
	if len(payload) < 12 {
		return
	}
	d.AdobePresent = true
	d.AdobeTransform = payload[11]
}

func (d *Decompressor) readSOF0() error {
	payload, err := d.reader.readSegment()
	if err != nil {
		return err
	}
	if len(payload) < 6 {
		return jscerr.New(jscerr.CodeUnsupportedSOF, "SOF0 segment too short")
	}
	precision := payload[0]
	if precision != 8 {
		return jscerr.New(jscerr.CodePrecisionUnsupported, "only 8-bit sample precision is supported")
	}
	height := int(payload[1])<<8 | int(payload[2])
	width := int(payload[3])<<8 | int(payload[4])
	if width <= 0 || height <= 0 {
		return jscerr.New(jscerr.CodeDimensionInvalid, "zero image dimension")
	}
	n := int(payload[5])
	if n <= 0 || n > MaxComponents {
		return jscerr.New(jscerr.CodeComponentCountInvalid, "unsupported component count")
	}
	if len(payload) < 6+3*n {
		return jscerr.New(jscerr.CodeUnsupportedSOF, "SOF0 segment too short for its component count")
	}
	d.frame.Width, d.frame.Height, d.frame.NumComponents = width, height, n
	for i := 0; i < n; i++ {
		off := 6 + 3*i
		h := int(payload[off+1] >> 4)
		v := int(payload[off+1] & 0x0F)
		if h < 1 || h > MaxSampFactor || v < 1 || v > MaxSampFactor {
			return jscerr.New(jscerr.CodeSamplingFactorInvalid, "sampling factor out of range")
		}
		d.frame.Components[i] = Component{
			ID: payload[off], Index: i, HSamp: h, VSamp: v,
			QuantSel: int(payload[off+2]), Needed: true,
		}
		if d.frame.Components[i].QuantSel >= NumQuantTables {
			return jscerr.New(jscerr.CodeQuantSelectorInvalid, "quantization selector out of range")
		}
	}
	switch n {
	case 1:
		d.frame.ColorSpace = ColorGrayscale
	case 3:
		d.frame.ColorSpace = ColorYCbCr
	case 4:
		d.frame.ColorSpace = ColorCMYK
	default:
		d.frame.ColorSpace = ColorUnknown
	}
	return nil
}

func (d *Decompressor) readDQT() error {
	payload, err := d.reader.readSegment()
	if err != nil {
		return err
	}
	for len(payload) > 0 {
		pq := payload[0] >> 4
		tq := int(payload[0] & 0x0F)
		if tq >= NumQuantTables {
			return jscerr.New(jscerr.CodeQuantSelectorInvalid, "DQT table index out of range")
		}
		if pq != 0 {
			return jscerr.New(jscerr.CodeQuantPrecisionInvalid, "DQT precision must be 0 (byte entries)")
		}
		if d.quantSent[tq] {
			return jscerr.New(jscerr.CodeQuantDuplicate, "duplicate DQT definition for the same table index")
		}
		need := 1 + DCTSize2
		if len(payload) < need {
			return jscerr.New(jscerr.CodeQuantPrecisionInvalid, "DQT segment too short for its precision")
		}
		var qt QuantTable
		for k := 0; k < DCTSize2; k++ {
			v := uint16(payload[1+k])
			if v == 0 {
				return jscerr.New(jscerr.CodeQuantPrecisionInvalid, "quantization table entry is zero")
			}
			qt.Natural[zigzagOrder[k]] = v
		}
		qt.Sent = true
		d.frame.QuantTables[tq] = qt
		d.quantSent[tq] = true
		payload = payload[need:]
	}
	return nil
}

func (d *Decompressor) readDHT() error {
	payload, err := d.reader.readSegment()
	if err != nil {
		return err
	}
	for len(payload) > 0 {
		if len(payload) < 17 {
			return jscerr.New(jscerr.CodeHuffBitsOverflow, "DHT segment too short for its bits table")
		}
		class := payload[0] >> 4
		sel := int(payload[0] & 0x0F)
		if sel >= NumHuffTables {
			return jscerr.New(jscerr.CodeHuffSelectorInvalid, "Huffman table index out of range")
		}
		var ht HuffTable
		total := 0
		for l := 1; l <= 16; l++ {
			ht.Bits[l] = payload[l]
			total += int(ht.Bits[l])
		}
		if total > 256 || len(payload) < 17+total {
			return jscerr.New(jscerr.CodeHuffBitsOverflow, "DHT segment too short for its symbol count")
		}
		copy(ht.Values[:total], payload[17:17+total])
		ht.NumValues = total
		if class == 0 {
			for _, hv := range ht.Values[:total] {
				if hv > 15 {
					return jscerr.New(jscerr.CodeHuffDCValueTooLarge, "DC Huffman table huffval exceeds 15")
				}
			}
			d.frame.DCTables[sel] = ht
			d.dcSent[sel] = true
		} else {
			d.frame.ACTables[sel] = ht
			d.acSent[sel] = true
		}
		payload = payload[17+total:]
	}
	return nil
}

func (d *Decompressor) readDRI() error {
	payload, err := d.reader.readSegment()
	if err != nil {
		return err
	}
	if len(payload) < 2 {
		return jscerr.New(jscerr.CodeGarbageMarker, "DRI segment too short")
	}
	d.frame.RestartInterval = int(payload[0])<<8 | int(payload[1])
	return nil
}

func (d *Decompressor) readSOS() error {
	payload, err := d.reader.readSegment()
	if err != nil {
		return err
	}
	if len(payload) < 1 {
		return jscerr.New(jscerr.CodeGarbageMarker, "SOS segment too short")
	}
	n := int(payload[0])
	if n != d.frame.NumComponents || len(payload) < 1+2*n+3 {
		return jscerr.New(jscerr.CodeGarbageMarker, "SOS component count does not match SOF0")
	}
	for i := 0; i < n; i++ {
		id := payload[1+2*i]
		sel := payload[2+2*i]
		if int(sel>>4) >= NumHuffTables || int(sel&0x0F) >= NumHuffTables {
			return jscerr.New(jscerr.CodeHuffSelectorInvalid, "SOS Huffman table selector out of range")
		}
		found := false
		for ci := range d.frame.Components[:d.frame.NumComponents] {
			if d.frame.Components[ci].ID == id {
				d.frame.Components[ci].DCSel = int(sel >> 4)
				d.frame.Components[ci].ACSel = int(sel & 0x0F)
				found = true
			}
		}
		if !found {
			return jscerr.New(jscerr.CodeGarbageMarker, "SOS references an undefined component id")
		}
	}
	return nil
}
