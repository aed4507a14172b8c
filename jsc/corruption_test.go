package jsc

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/abcouwer-jpl/jsc-sub000/jscerr"
)

// TestShortDestinationStopsCleanlyWithoutLeaks covers spec.md §8 scenario 3:
// a destination buffer too small to hold the compressed image must fail
// gracefully (not panic), and the instance must still be safe to discard.
func TestShortDestinationStopsCleanlyWithoutLeaks(t *testing.T) {
	width, height := 64, 64
	rgb := solidRGBImage(width, height, 200, 20, 20)
	arenaBuf := make([]byte, WorkingMemoryBytes(width, 3)*4)
	dst := make([]byte, 32) // far too small for a real 64x64 frame

	_, err := Compress(arenaBuf, rgb, width, height, 95, dst, Hooks{})
	require.Error(t, err)
	require.True(t, jscerr.Is(err, jscerr.CodeShortDestination))
}

// TestReadHeaderSuspendsOnOneByteSource covers scenario 4: a single byte of
// a valid JPEG must suspend rather than misbehave, and calling
// StartDecompress afterward is a programming error (panic), not graceful.
func TestReadHeaderSuspendsOnOneByteSource(t *testing.T) {
	var d Decompressor
	d.Hooks = Hooks{}
	d.AttachArena(make([]byte, 1<<16))
	d.MemSrc([]byte{0xFF})

	status, err := d.ReadHeader()
	require.Equal(t, HeaderSuspended, status)
	require.Error(t, err)
	require.True(t, jscerr.Is(err, jscerr.CodeSuspended))

	defer func() {
		r := recover()
		require.NotNil(t, r, "StartDecompress after a suspended header must panic, not proceed")
	}()
	_ = d.StartDecompress()
}

// TestRestartMarkersRecoverFromMidStreamCorruption covers scenario 5:
// flipping bytes well into the entropy-coded region of a restart-enabled
// image must not prevent a full decode, and must not panic.
func TestRestartMarkersRecoverFromMidStreamCorruption(t *testing.T) {
	width, height := 64, 64
	rgb := solidRGBImage(width, height, 40, 120, 200)

	var c Compressor
	c.AttachArena(make([]byte, WorkingMemoryBytes(width, 3)*4))
	c.SetDefaults(width, height, 90)
	c.SetRestartInterval(4)
	dst := make([]byte, 64*1024)
	c.MemDest(dst)
	require.NoError(t, c.StartCompress())
	mcuRowHeight := 2 * DCTSize
	for y := 0; y < height; y += mcuRowHeight {
		end := y + mcuRowHeight
		if end > height {
			end = height
		}
		_, err := c.WriteScanlines(rgb[y:end])
		require.NoError(t, err)
	}
	require.NoError(t, c.FinishCompress())
	n := c.BytesWritten()

	corrupt := make([]byte, n)
	copy(corrupt, dst[:n])
	sos := 0
	for i := 0; i+1 < n; i++ {
		if corrupt[i] == 0xFF && corrupt[i+1] == 0xDA {
			sos = i
			break
		}
	}
	require.Greater(t, sos, 0, "encoded stream must contain an SOS marker")
	mid := sos + (n-sos)/2
	corrupt[mid] ^= 0xFF

	decArena := make([]byte, WorkingMemoryBytes(width, 3)*4)
	outRows := make([][]uint8, height)
	for i := range outRows {
		outRows[i] = make([]uint8, width*3)
	}
	var w, h int
	var err2 error
	require.NotPanics(t, func() {
		w, h, err2 = Decompress(decArena, corrupt, outRows, Hooks{})
	})
	require.NoError(t, err2, "a single flipped byte with restart markers present must still finish the decode")
	require.Equal(t, width, w)
	require.Equal(t, height, h)

	// Corruption containment (spec.md scenario 5): a restart interval of 4
	// MCUs (one MCU row of this 64-pixel-wide 4:2:0 frame) bounds the
	// damage, so the image's first row, well before the corrupted byte in the
	// middle of the scan data, must still decode correctly.
	for x := 0; x < width; x++ {
		require.InDelta(t, 40, outRows[0][x*3], 16, "first row red channel")
		require.InDelta(t, 120, outRows[0][x*3+1], 16, "first row green channel")
		require.InDelta(t, 200, outRows[0][x*3+2], 16, "first row blue channel")
	}
}

// TestSingleByteGarbageSweepNeverPanics covers scenario 6: replacing every
// byte of a valid encoded image with a handful of adversarial values and
// attempting a full decode must always terminate, either with a decoded
// (possibly wrong-looking) image or a graceful rejection, never a panic.
func TestSingleByteGarbageSweepNeverPanics(t *testing.T) {
	width, height := 16, 16
	rgb := solidRGBImage(width, height, 90, 90, 90)
	arenaBuf := make([]byte, WorkingMemoryBytes(width, 3)*4)
	dst := make([]byte, 16*1024)
	n, err := Compress(arenaBuf, rgb, width, height, 85, dst, Hooks{})
	require.NoError(t, err)

	garbage := []byte{0x00, 0xFF, 0xD0, 0xD9, 0xE0, 0xFE, 0xA5, 0x5A, 0x42}
	scratch := make([]byte, n)
	for offset := 0; offset < n; offset++ {
		for _, g := range garbage {
			copy(scratch, dst[:n])
			scratch[offset] = g

			decArena := make([]byte, WorkingMemoryBytes(width, 3)*4)
			outRows := make([][]uint8, height)
			for i := range outRows {
				outRows[i] = make([]uint8, width*3)
			}
			require.NotPanics(t, func() {
				_, _, _ = Decompress(decArena, scratch, outRows, Hooks{})
			}, "offset %d value 0x%02X must not panic", offset, g)
		}
	}
}

// TestSuppressTablesEnablesByteIdenticalRepeatedCompression covers the
// idempotence property: suppress_tables(false) then start_compress then
// finish_compress twice on the same instance with the same input produces
// byte-identical output both times.
func TestSuppressTablesEnablesByteIdenticalRepeatedCompression(t *testing.T) {
	width, height := 16, 16
	rgb := solidRGBImage(width, height, 10, 200, 90)

	var c Compressor
	c.AttachArena(make([]byte, WorkingMemoryBytes(width, 3)*8))
	c.SetDefaults(width, height, 80)
	c.SuppressTables(false)

	run := func() []byte {
		dst := make([]byte, 16*1024)
		c.MemDest(dst)
		require.NoError(t, c.StartCompress())
		_, err := c.WriteScanlines(rgb)
		require.NoError(t, err)
		require.NoError(t, c.FinishCompress())
		out := make([]byte, c.BytesWritten())
		copy(out, dst)
		return out
	}

	first := run()
	second := run()
	require.Equal(t, first, second)
}
