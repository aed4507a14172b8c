package jsc

// Compress is a one-shot convenience entry point (spec §6): it drives a
// Compressor through its full lifecycle for a single RGB image already
// held in memory, returning the encoded byte count. Callers that want
// streaming/bounded-memory behavior should drive Compressor directly
// instead of calling this.
func Compress(arenaBuf []byte, rgb [][]uint8, width, height, quality int, dst []byte, hooks Hooks) (int, error) {
	var c Compressor
	c.Hooks = hooks
	c.AttachArena(arenaBuf)
	c.SetDefaults(width, height, quality)
	c.MemDest(dst)
	if err := c.StartCompress(); err != nil {
		return 0, err
	}
	mcuRowHeight := c.frame.MaxVSamp * DCTSize
	for y := 0; y < len(rgb); y += mcuRowHeight {
		end := y + mcuRowHeight
		if end > len(rgb) {
			end = len(rgb)
		}
		if _, err := c.WriteScanlines(rgb[y:end]); err != nil {
			return 0, err
		}
	}
	if err := c.FinishCompress(); err != nil {
		return 0, err
	}
	return c.BytesWritten(), nil
}

// Decompress is the one-shot decode counterpart of Compress: it drives a
// Decompressor to completion and returns the decoded image's width and
// height, writing interleaved scanlines into dst (each row must be
// pre-sliced by the caller to Width times the output bytes per pixel: 3 for
// grayscale and 3-component images, 4 for CMYK/YCCK; see
// Decompressor.FrameOutputBytesPerPixel), since this codec never allocates
// the output buffer itself.
func Decompress(arenaBuf []byte, src []byte, dst [][]uint8, hooks Hooks) (width, height int, err error) {
	var d Decompressor
	d.Hooks = hooks
	d.AttachArena(arenaBuf)
	d.MemSrc(src)

	status, err := d.ReadHeader()
	if err != nil {
		return 0, 0, err
	}
	if status != HeaderOK {
		return 0, 0, nil
	}
	if err := d.StartDecompress(); err != nil {
		return 0, 0, err
	}

	mcuRowHeight := d.frame.MaxVSamp * DCTSize
	for y := 0; y < len(dst); y += mcuRowHeight {
		end := y + mcuRowHeight
		if end > len(dst) {
			end = len(dst)
		}
		if _, err := d.ReadScanlines(dst[y:end]); err != nil {
			return d.frame.Width, d.frame.Height, err
		}
	}
	if err := d.FinishDecompress(); err != nil {
		return d.frame.Width, d.frame.Height, err
	}
	return d.frame.Width, d.frame.Height, nil
}
