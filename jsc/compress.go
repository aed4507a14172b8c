package jsc

// CState is the compressor lifecycle, the encode-side half of spec §4.9
// "master control": a strict state machine whose entries assert their
// preconditions (a violation is a caller bug, so it panics) rather than
// silently tolerating out-of-order calls.
type CState int

const (
	CStateStart CState = iota
	CStateScanning
	CStateDone
)

// Compressor holds everything needed to turn scanlines into a baseline
// JPEG bitstream in one pass, grounded on the teacher's single-struct
// pipeline shape (JpegHeader plus a writer) but replaced end to end with
// this codec's own arena-backed, strip-buffered design (spec §4 "Core
// modules").
type Compressor struct {
	Common

	state CState
	frame FrameInfo
	quality int

	encTablesDC [NumHuffTables]*DerivedEncTable
	encTablesAC [NumHuffTables]*DerivedEncTable

	dst     []byte
	writer  *segmentWriter
	bits    *BitWriter
	encode  EncodeState

	rowsWritten    int
	restartCounter int // next RSTn marker's cyclic number, 0..7

	inputColorSpace    ColorSpace // format of the scanlines WriteScanlines receives
	numInputComponents int // only meaningful when inputColorSpace == ColorUnknown

	writeJFIF       bool
	jfifMajor       uint8
	jfifMinor       uint8
	jfifDensityUnit uint8
	jfifXDensity    uint16
	jfifYDensity    uint16

	writeAdobe     bool
	adobeTransform uint8
}

// SetDefaults configures a baseline 3-component (Y, Cb, Cr) 4:2:0 frame at
// the given quality with the standard Annex K Huffman tables, the
// convenience entry point named in spec §6 "set_defaults".
func (c *Compressor) SetDefaults(width, height, quality int) {
	c.Hooks.assert(c.arena != nil, "AttachArena must be called before SetDefaults")
	c.Hooks.assert(c.state == CStateStart, "SetDefaults called out of order")

	c.quality = quality
	c.frame = FrameInfo{
		Width:         width,
		Height:        height,
		NumComponents: 3,
		ColorSpace:    ColorYCbCr,
	}
	c.frame.Components[0] = Component{ID: 1, Index: 0, HSamp: 2, VSamp: 2, QuantSel: 0, DCSel: 0, ACSel: 0, Needed: true}
	c.frame.Components[1] = Component{ID: 2, Index: 1, HSamp: 1, VSamp: 1, QuantSel: 1, DCSel: 1, ACSel: 1, Needed: true}
	c.frame.Components[2] = Component{ID: 3, Index: 2, HSamp: 1, VSamp: 1, QuantSel: 1, DCSel: 1, ACSel: 1, Needed: true}
	c.frame.deriveGeometry()

	c.frame.QuantTables[0] = StandardLuminanceQuantTable(quality)
	c.frame.QuantTables[1] = StandardChrominanceQuantTable(quality)
	c.frame.DCTables[0] = StandardDCLuminanceTable()
	c.frame.ACTables[0] = StandardACLuminanceTable()
	c.frame.DCTables[1] = StandardDCChrominanceTable()
	c.frame.ACTables[1] = StandardACChrominanceTable()

	c.inputColorSpace = ColorRGB
	c.numInputComponents = 3

	// write_JFIF_header defaults true (spec §6), matching the version/units
	// a generic encoder with no real display device in mind would report.
	c.writeJFIF = true
	c.jfifMajor, c.jfifMinor = 1, 1
	c.jfifDensityUnit = 0
	c.jfifXDensity, c.jfifYDensity = 1, 1
	c.writeAdobe = false
}

// SetColorSpace overrides the 3-component YCbCr default SetDefaults built,
// reconfiguring both the input sample format WriteScanlines expects and the
// JPEG color space written to SOF0 (spec §4.2 "ColorSpace", spec §6
// "in_color_space ∈ {GRAYSCALE, RGB, YCbCr, CMYK, YCCK, BG_RGB, BG_YCC,
// UNKNOWN}"). Every named space but UNKNOWN is accepted here; UNKNOWN must
// go through SetUnknownColorSpace, which also supplies the component count.
// Must be called after SetDefaults.
func (c *Compressor) SetColorSpace(cs ColorSpace) {
	switch cs {
	case ColorYCbCr:
		c.Hooks.assert(c.state == CStateStart, "SetColorSpace called out of order")
		// already the SetDefaults shape: 3 components, 4:2:0 subsampling.
	case ColorGrayscale, ColorRGB, ColorCMYK, ColorYCCK, ColorBGRGB, ColorBGYCC:
		c.setColorSpace(cs, 0)
	default:
		c.Hooks.assert(false, "unsupported destination color space")
	}
}

// SetUnknownColorSpace configures the UNKNOWN input space: numComponents
// planes, 1..10, copied through with no color conversion at all (spec §6
// "the last implies input_components is user-supplied 1..10").
func (c *Compressor) SetUnknownColorSpace(numComponents int) {
	c.Hooks.assert(numComponents >= 1 && numComponents <= MaxComponents, "SetUnknownColorSpace: component count out of range")
	c.setColorSpace(ColorUnknown, numComponents)
}

// componentLayout holds one component's quantization, DC and AC table
// selectors in a non-default color space's layout, reusing the two standard
// tables SetDefaults already built.
type componentLayout struct {
	quantSel, dcSel, acSel int
}

func (c *Compressor) setColorSpace(cs ColorSpace, numComponents int) {
	c.Hooks.assert(c.state == CStateStart, "SetColorSpace called out of order")

	var layouts []componentLayout
	// inputCS is the format WriteScanlines's raw bytes are actually in.
	// BG_YCC and YCCK are never handed to WriteScanlines pre-converted in
	// this codec: a caller requesting them still supplies big-gamut RGB or
	// CMYK bytes respectively, and encodeOneMCURow converts on the fly —
	// mirroring the teacher stack's convention that in_color_space names
	// the wire format while jpeg_color_space names the stored one.
	inputCS := cs

	switch cs {
	case ColorGrayscale:
		layouts = []componentLayout{{0, 0, 0}}
	case ColorRGB, ColorBGRGB:
		layouts = []componentLayout{{0, 0, 0}, {0, 0, 0}, {0, 0, 0}}
	case ColorBGYCC:
		layouts = []componentLayout{{0, 0, 0}, {1, 1, 1}, {1, 1, 1}}
		inputCS = ColorBGRGB
	case ColorCMYK:
		layouts = []componentLayout{{0, 0, 0}, {0, 0, 0}, {0, 0, 0}, {0, 0, 0}}
	case ColorYCCK:
		layouts = []componentLayout{{0, 0, 0}, {1, 1, 1}, {1, 1, 1}, {0, 0, 0}}
		inputCS = ColorCMYK
	case ColorUnknown:
		layouts = make([]componentLayout, numComponents)
		for i := range layouts {
			layouts[i] = componentLayout{0, 0, 0}
		}
	}

	c.inputColorSpace = inputCS
	c.numInputComponents = len(layouts)
	c.frame.NumComponents = len(layouts)
	for i, l := range layouts {
		c.frame.Components[i] = Component{
			ID: uint8(i + 1), Index: i, HSamp: 1, VSamp: 1,
			QuantSel: l.quantSel, DCSel: l.dcSel, ACSel: l.acSel, Needed: true,
		}
	}
	c.frame.deriveGeometry()
	c.frame.ColorSpace = cs

	// An Adobe APP14 marker is how a reader tells YCCK from raw CMYK (and,
	// less commonly, RGB from YCbCr); write one automatically whenever the
	// color space needs that disambiguation, overridable via SetAdobeMarker.
	switch cs {
	case ColorCMYK:
		c.writeAdobe, c.adobeTransform = true, 0
	case ColorYCCK:
		c.writeAdobe, c.adobeTransform = true, 2
	}
}

// SetRestartInterval configures the number of MCUs between RSTn markers
// (spec §6 "restart_interval"), clamped to the 16-bit DRI field's range.
// Zero (the default) disables restart markers entirely.
func (c *Compressor) SetRestartInterval(mcus int) {
	c.Hooks.assert(c.state == CStateStart, "SetRestartInterval called out of order")
	if mcus < 0 {
		mcus = 0
	}
	if mcus > 0xFFFF {
		mcus = 0xFFFF
	}
	c.frame.RestartInterval = mcus
}

// SetJFIFHeader configures whether StartCompress writes a JFIF APP0 segment
// and, if so, its version/density fields (spec §6 "write_JFIF_header",
// "JFIF_major_version", "JFIF_minor_version", "density_unit", "X_density",
// "Y_density").
func (c *Compressor) SetJFIFHeader(write bool, major, minor, densityUnit uint8, xDensity, yDensity uint16) {
	c.Hooks.assert(c.state == CStateStart, "SetJFIFHeader called out of order")
	c.writeJFIF = write
	c.jfifMajor, c.jfifMinor = major, minor
	c.jfifDensityUnit = densityUnit
	c.jfifXDensity, c.jfifYDensity = xDensity, yDensity
}

// SetAdobeMarker configures whether StartCompress writes an Adobe APP14
// segment and its transform byte (0 = unknown/CMYK, 1 = YCbCr, 2 = YCCK),
// the marker a reader needs to tell YCCK from raw CMYK (spec §6
// "write_Adobe_marker"). SetColorSpace(ColorCMYK/ColorYCCK) turns this on
// automatically with the matching transform; call this after SetColorSpace
// to override.
func (c *Compressor) SetAdobeMarker(write bool, transform uint8) {
	c.Hooks.assert(c.state == CStateStart, "SetAdobeMarker called out of order")
	c.writeAdobe = write
	c.adobeTransform = transform
}

// WriteMarker inserts one complete application-defined segment (marker byte
// plus payload) into the output stream, for APPn/COM markers the caller
// wants alongside the ones this codec writes itself. Must be called between
// StartCompress and the first WriteScanlines call (spec §6 "write_marker").
func (c *Compressor) WriteMarker(marker byte, data []byte) error {
	c.Hooks.assert(c.state == CStateScanning && c.rowsWritten == 0, "WriteMarker must follow StartCompress and precede WriteScanlines")
	return c.writer.writeSegment(marker, data)
}

// WriteMHeader begins a piecemeal custom segment: the marker and its 2-byte
// length field (length counts itself, matching the JPEG segment-length
// convention), with the payload supplied one byte at a time via WriteMByte
// (spec §6 "write_m_header").
func (c *Compressor) WriteMHeader(marker byte, length int) error {
	c.Hooks.assert(c.state == CStateScanning && c.rowsWritten == 0, "WriteMHeader must follow StartCompress and precede WriteScanlines")
	if err := c.writer.writeMarker(marker); err != nil {
		return err
	}
	return c.writer.writeU16(uint16(length))
}

// WriteMByte appends one payload byte to a segment begun with WriteMHeader
// (spec §6 "write_m_byte").
func (c *Compressor) WriteMByte(b byte) error {
	return c.writer.writeByte(b)
}

// QuantTableAt returns a pointer to quantization table selector sel (0..3),
// letting a caller inspect or hand-edit an entry before StartCompress (spec
// §6 "get_mem_quant_table").
func (c *Compressor) QuantTableAt(sel int) *QuantTable {
	c.Hooks.assert(sel >= 0 && sel < NumQuantTables, "QuantTableAt: selector out of range")
	return &c.frame.QuantTables[sel]
}

// HuffTableAt returns a pointer to the DC (class 0) or AC (class 1) Huffman
// table at selector sel (0..1), for the same purpose (spec §6
// "get_mem_huff_table").
func (c *Compressor) HuffTableAt(class, sel int) *HuffTable {
	c.Hooks.assert(sel >= 0 && sel < NumHuffTables, "HuffTableAt: selector out of range")
	if class == 0 {
		return &c.frame.DCTables[sel]
	}
	return &c.frame.ACTables[sel]
}

// MemDest points the compressor at a caller-owned, fixed-size output
// buffer. Writing past its end surfaces as a ShortDestination rejection
// from WriteScanlines/FinishCompress, never a panic (spec §4.5).
func (c *Compressor) MemDest(dst []byte) {
	c.dst = dst
	c.writer = newSegmentWriter(dst)
}

// StartCompress writes SOI, optional JFIF/Adobe markers, DQT, SOF0, DHT, and
// SOS, then readies the instance for WriteScanlines calls (spec §4.7
// "writer sequence per image", §4.9 "prep controller").
func (c *Compressor) StartCompress() error {
	c.Hooks.assert(c.writer != nil, "MemDest must be called before StartCompress")
	c.Hooks.assert(c.state == CStateStart, "StartCompress called out of order")

	if err := c.writer.writeMarker(MarkerSOI); err != nil {
		return err
	}
	if c.writeJFIF {
		if err := c.writeJFIFHeader(); err != nil {
			return err
		}
	}
	if c.writeAdobe {
		if err := c.writeAdobeMarker(); err != nil {
			return err
		}
	}
	if err := c.writeDQT(); err != nil {
		return err
	}
	if err := c.writeSOF0(); err != nil {
		return err
	}
	if err := c.writeDHT(); err != nil {
		return err
	}
	if c.frame.RestartInterval > 0 {
		if err := c.writeDRI(); err != nil {
			return err
		}
	}
	if err := c.writeSOS(); err != nil {
		return err
	}

	for i := 0; i < NumHuffTables; i++ {
		if c.frame.DCTables[i].NumValues > 0 {
			t, err := BuildEncoderTable(&c.frame.DCTables[i])
			if err != nil {
				return err
			}
			c.encTablesDC[i] = t
		}
		if c.frame.ACTables[i].NumValues > 0 {
			t, err := BuildEncoderTable(&c.frame.ACTables[i])
			if err != nil {
				return err
			}
			c.encTablesAC[i] = t
		}
	}

	c.bits = NewBitWriter(c.dst[c.writer.pos:])
	c.rowsWritten = 0
	c.encode = EncodeState{}
	c.restartCounter = 0
	c.state = CStateScanning
	return nil
}

// WriteScanlines accepts one iMCU row's worth of interleaved input
// scanlines (maxVSamp*8 rows, Width*bytesPerInputPixel() bytes each) at a
// time, downsampling, transforming, and entropy-encoding every MCU in that
// row before returning (spec §4.9 "main controller", single-pass, bounded
// memory).
func (c *Compressor) WriteScanlines(rows [][]uint8) (int, error) {
	c.Hooks.assert(c.state == CStateScanning, "WriteScanlines called out of order")

	rowsThisCall := len(rows)
	if err := c.encodeOneMCURow(rows); err != nil {
		return 0, err
	}
	c.rowsWritten += rowsThisCall
	return rowsThisCall, nil
}

// encodeOneMCURow downsamples and entropy-encodes every MCU across one
// iMCU row directly from the interleaved input rows handed to it, keeping
// working memory to a single row-band rather than a whole-image buffer
// (spec §4.1 "bounded working memory").
func (c *Compressor) encodeOneMCURow(rows [][]uint8) error {
	var blockBuf [DCTSize2]uint8
	var coef [DCTSize2]int16

	for mx := 0; mx < c.frame.MCUsWide; mx++ {
		if err := c.emitRestartIfDue(mx); err != nil {
			return err
		}
		for ci := 0; ci < c.frame.NumComponents; ci++ {
			comp := &c.frame.Components[ci]
			for by := 0; by < comp.VSamp; by++ {
				for bx := 0; bx < comp.HSamp; bx++ {
					c.sampleBlockFromInput(rows, comp, ci, mx, bx, by, blockBuf[:])
					ForwardDCTBlock(blockBuf[:], &c.frame.QuantTables[comp.QuantSel], coef[:])
					if err := EncodeBlock(c.bits, &c.encode, ci, coef[:], c.encTablesDC[comp.DCSel], c.encTablesAC[comp.ACSel]); err != nil {
						return err
					}
				}
			}
		}
	}
	return nil
}

// bytesPerInputPixel returns how many interleaved bytes WriteScanlines
// expects per pixel, given the compressor's current input color space (spec
// §4.2 "Color conversion", §6 "in_color_space").
func (c *Compressor) bytesPerInputPixel() int {
	return c.numInputComponents
}

// extractComponent returns component ci's sample from one input pixel,
// performing the encode-side color conversion between inputColorSpace and
// the declared frame.ColorSpace, or a straight copy when the two already
// agree (spec §4.2 "Color conversion"). RGB/BG_RGB input converts to
// YCbCr/BG_YCC output; CMYK converts to YCCK output; every other pairing
// (including an input space equal to its own output space, and UNKNOWN) is a
// verbatim per-component copy.
func (c *Compressor) extractComponent(pixel []byte, ci int) uint8 {
	switch c.inputColorSpace {
	case ColorGrayscale:
		return pixel[0]
	case ColorRGB, ColorBGRGB:
		if c.frame.ColorSpace == ColorYCbCr || c.frame.ColorSpace == ColorBGYCC {
			y, cb, cr := RGBToYCbCr(pixel[0], pixel[1], pixel[2])
			switch ci {
			case 0:
				return y
			case 1:
				return cb
			default:
				return cr
			}
		}
		return pixel[ci]
	case ColorCMYK:
		if c.frame.ColorSpace == ColorYCCK {
			y, cb, cr, k := CMYKToYCCK(pixel[0], pixel[1], pixel[2], pixel[3])
			switch ci {
			case 0:
				return y
			case 1:
				return cb
			case 2:
				return cr
			default:
				return k
			}
		}
		return pixel[ci]
	default: // ColorYCbCr, ColorYCCK, ColorBGYCC, ColorUnknown: already final-form
		return pixel[ci]
	}
}

// sampleBlockFromInput extracts and (for subsampled components, downsamples)
// one 8x8 block of component ci's samples at MCU column mx, sub-block
// (bx,by), directly from the interleaved input source rows — the encoder
// never materializes a full downsampled plane, only the block it is about
// to transform.
func (c *Compressor) sampleBlockFromInput(rows [][]uint8, comp *Component, ci, mx, bx, by int, out []uint8) {
	bpp := c.bytesPerInputPixel()
	hRatio := c.frame.MaxHSamp / comp.HSamp
	vRatio := c.frame.MaxVSamp / comp.VSamp
	baseX := (mx*comp.HSamp + bx) * DCTSize * hRatio
	baseY := (by * DCTSize) * vRatio

	for y := 0; y < DCTSize; y++ {
		for x := 0; x < DCTSize; x++ {
			sum := 0
			count := 0
			for sv := 0; sv < vRatio; sv++ {
				srcY := baseY + y*vRatio + sv
				if srcY >= len(rows) {
					srcY = len(rows) - 1
				}
				row := rows[srcY]
				for sh := 0; sh < hRatio; sh++ {
					px := baseX + x*hRatio + sh
					if px*bpp+bpp > len(row) {
						continue
					}
					sum += int(c.extractComponent(row[px*bpp:px*bpp+bpp], ci))
					count++
				}
			}
			if count == 0 {
				out[y*DCTSize+x] = 0
			} else {
				out[y*DCTSize+x] = uint8((sum + count/2) / count)
			}
		}
	}
}

// emitRestartIfDue pads to a byte boundary and writes an RSTn marker when
// the scan's running MCU index (MCU rows already written times MCUsWide,
// plus column mx) lands on a restart interval boundary, cycling 0..7 and
// resetting per-component DC prediction (spec §4.6, §8 "restart
// property"). Mirrors the decoder's restartIfDue MCU index.
func (c *Compressor) emitRestartIfDue(mx int) error {
	mcu := (c.rowsWritten/(c.frame.MaxVSamp*DCTSize))*c.frame.MCUsWide + mx
	if c.frame.RestartInterval <= 0 || mcu == 0 || mcu%c.frame.RestartInterval != 0 {
		return nil
	}
	if err := c.bits.Pad(true); err != nil {
		return err
	}
	if err := c.bits.WriteMarkerByte(0xFF); err != nil {
		return err
	}
	if err := c.bits.WriteMarkerByte(byte(0xD0 + c.restartCounter)); err != nil {
		return err
	}
	c.restartCounter = (c.restartCounter + 1) % 8
	c.encode.ResetRestart()
	return nil
}

// FinishCompress flushes the entropy-coded bitstream, pads and writes EOI
// (spec §4.9).
func (c *Compressor) FinishCompress() error {
	c.Hooks.assert(c.state == CStateScanning, "FinishCompress called out of order")
	if err := c.bits.Pad(true); err != nil {
		return err
	}
	c.writer.pos += c.bits.Pos()
	if err := c.writer.writeMarker(MarkerEOI); err != nil {
		return err
	}
	// Ready for another StartCompress on the same instance (spec §8
	// idempotence property): MemDest must be called again to pick a
	// destination for the next image, but tables/frame geometry persist.
	c.state = CStateStart
	return nil
}

// BytesWritten returns the total number of output bytes produced so far.
func (c *Compressor) BytesWritten() int {
	if c.writer == nil {
		return 0
	}
	return c.writer.pos
}

func (c *Compressor) writeDQT() error {
	seen := map[int]bool{}
	for i := 0; i < c.frame.NumComponents; i++ {
		sel := c.frame.Components[i].QuantSel
		if seen[sel] {
			continue
		}
		seen[sel] = true
		qt := &c.frame.QuantTables[sel]
		if qt.Sent {
			continue
		}
		payload := make([]byte, 0, 1+DCTSize2)
		payload = append(payload, byte(sel)) // precision 0 (8-bit) in high nibble
		for k := 0; k < DCTSize2; k++ {
			payload = append(payload, byte(qt.Natural[zigzagOrder[k]]))
		}
		if err := c.writer.writeSegment(MarkerDQT, payload); err != nil {
			return err
		}
	}
	return nil
}

func (c *Compressor) writeSOF0() error {
	payload := make([]byte, 0, 6+3*c.frame.NumComponents)
	payload = append(payload, 8) // sample precision
	payload = append(payload, byte(c.frame.Height>>8), byte(c.frame.Height))
	payload = append(payload, byte(c.frame.Width>>8), byte(c.frame.Width))
	payload = append(payload, byte(c.frame.NumComponents))
	for i := 0; i < c.frame.NumComponents; i++ {
		comp := &c.frame.Components[i]
		payload = append(payload, comp.ID, byte(comp.HSamp<<4|comp.VSamp), byte(comp.QuantSel))
	}
	return c.writer.writeSegment(MarkerSOF0, payload)
}

func (c *Compressor) writeDHT() error {
	for i := 0; i < NumHuffTables; i++ {
		if c.frame.DCTables[i].NumValues > 0 && !c.frame.DCTables[i].Sent {
			if err := c.writeOneHuffTable(0, i, &c.frame.DCTables[i]); err != nil {
				return err
			}
		}
		if c.frame.ACTables[i].NumValues > 0 && !c.frame.ACTables[i].Sent {
			if err := c.writeOneHuffTable(1, i, &c.frame.ACTables[i]); err != nil {
				return err
			}
		}
	}
	return nil
}

func (c *Compressor) writeOneHuffTable(class, sel int, t *HuffTable) error {
	payload := make([]byte, 0, 1+16+t.NumValues)
	payload = append(payload, byte(class<<4|sel))
	for l := 1; l <= 16; l++ {
		payload = append(payload, t.Bits[l])
	}
	payload = append(payload, t.Values[:t.NumValues]...)
	return c.writer.writeSegment(MarkerDHT, payload)
}

// SuppressTables marks every currently-defined quant and Huffman table as
// already sent (suppress=true) so the next StartCompress call omits their
// DQT/DHT segments, or clears that mark (suppress=false) so they are
// always re-emitted — spec §6 "suppress_tables", used when writing several
// images that share tables to a single destination, or (suppress=false) to
// make repeated StartCompress/FinishCompress calls byte-identical.
func (c *Compressor) SuppressTables(suppress bool) {
	for i := range c.frame.QuantTables {
		c.frame.QuantTables[i].Sent = suppress
	}
	for i := range c.frame.DCTables {
		c.frame.DCTables[i].Sent = suppress
	}
	for i := range c.frame.ACTables {
		c.frame.ACTables[i].Sent = suppress
	}
}

func (c *Compressor) writeDRI() error {
	payload := []byte{byte(c.frame.RestartInterval >> 8), byte(c.frame.RestartInterval)}
	return c.writer.writeSegment(MarkerDRI, payload)
}

// writeJFIFHeader emits the 14-byte APP0 "JFIF\0" segment (spec §6
// "write_JFIF_header", spec §3 "JFIF"). No thumbnail is ever carried.
func (c *Compressor) writeJFIFHeader() error {
	payload := []byte{
		'J', 'F', 'I', 'F', 0,
		c.jfifMajor, c.jfifMinor, c.jfifDensityUnit,
		byte(c.jfifXDensity >> 8), byte(c.jfifXDensity),
		byte(c.jfifYDensity >> 8), byte(c.jfifYDensity),
		0, 0, // thumbnail width, height: always absent
	}
	return c.writer.writeSegment(MarkerAPP0, payload)
}

// writeAdobeMarker emits the 12-byte APP14 "Adobe" segment carrying the
// transform byte a reader needs to tell YCCK from raw CMYK (spec §6
// "write_Adobe_marker").
func (c *Compressor) writeAdobeMarker() error {
	payload := []byte{'A', 'd', 'o', 'b', 'e', 0, 100, 0, 0, 0, 0, c.adobeTransform}
	return c.writer.writeSegment(MarkerAPP14, payload)
}

func (c *Compressor) writeSOS() error {
	payload := make([]byte, 0, 4+2*c.frame.NumComponents)
	payload = append(payload, byte(c.frame.NumComponents))
	for i := 0; i < c.frame.NumComponents; i++ {
		comp := &c.frame.Components[i]
		payload = append(payload, comp.ID, byte(comp.DCSel<<4|comp.ACSel))
	}
	payload = append(payload, 0, 63, 0) // Ss, Se, AhAl: baseline fixed values
	return c.writer.writeSegment(MarkerSOS, payload)
}
