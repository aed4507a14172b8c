package jsc

// UpsampleBox replicates each downsampled sample into its hRatio x vRatio
// block of full-resolution samples — the "box" fast path named in spec §4.7
// when smoother interpolation is not worth the extra arithmetic.
func UpsampleBox(c *Component, maxHSamp, maxVSamp int, src []uint8, srcStride int, dst []uint8, dstStride, dstRows int) {
	hRatio := maxHSamp / c.HSamp
	vRatio := maxVSamp / c.VSamp
	if hRatio < 1 {
		hRatio = 1
	}
	if vRatio < 1 {
		vRatio = 1
	}
	srcRows := len(src) / srcStride

	for dy := 0; dy < dstRows; dy++ {
		sy := dy / vRatio
		if sy >= srcRows {
			sy = srcRows - 1
		}
		for dx := 0; dx < dstStride; dx++ {
			sx := dx / hRatio
			if sx >= srcStride {
				sx = srcStride - 1
			}
			dst[dy*dstStride+dx] = src[sy*srcStride+sx]
		}
	}
}

// UpsampleFancy performs triangle-filtered (bilinear-like) upsampling along
// rows for the common 2:1 horizontal ratio, with libjpeg's
// h2v1_fancy_upsample weighting (3:1 nearest, 1:3 next neighbor) instead of
// box replication, the decoder default named in spec §4.7. Vertical
// expansion is plain row replication; no h2v2-style vertical weighting is
// applied. Falls back to UpsampleBox for ratios other than 1 or 2.
func UpsampleFancy(c *Component, maxHSamp, maxVSamp int, src []uint8, srcStride int, dst []uint8, dstStride, dstRows int) {
	hRatio := maxHSamp / c.HSamp
	vRatio := maxVSamp / c.VSamp
	if hRatio < 1 {
		hRatio = 1
	}
	if vRatio < 1 {
		vRatio = 1
	}
	if hRatio > 2 || vRatio > 2 {
		UpsampleBox(c, maxHSamp, maxVSamp, src, srcStride, dst, dstStride, dstRows)
		return
	}

	srcRows := len(src) / srcStride
	for dy := 0; dy < dstRows; dy++ {
		sy := dy / vRatio
		if sy >= srcRows {
			sy = srcRows - 1
		}
		row := src[sy*srcStride : sy*srcStride+srcStride]
		if hRatio == 1 {
			copy(dst[dy*dstStride:dy*dstStride+dstStride], row)
			continue
		}
		for sx := 0; sx < srcStride; sx++ {
			left := row[sx]
			right := row[sx]
			if sx+1 < srcStride {
				right = row[sx+1]
			}
			prev := row[sx]
			if sx > 0 {
				prev = row[sx-1]
			}
			dx0 := sx * 2
			dx1 := dx0 + 1
			if dx0 < dstStride {
				dst[dy*dstStride+dx0] = uint8((3*int(left) + int(prev) + 2) / 4)
			}
			if dx1 < dstStride {
				dst[dy*dstStride+dx1] = uint8((3*int(left) + int(right) + 2) / 4)
			}
		}
	}
}
