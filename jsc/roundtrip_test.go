package jsc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func solidRGBImage(width, height int, r, g, b uint8) [][]uint8 {
	rows := make([][]uint8, height)
	for y := 0; y < height; y++ {
		row := make([]uint8, width*3)
		for x := 0; x < width; x++ {
			row[x*3], row[x*3+1], row[x*3+2] = r, g, b
		}
		rows[y] = row
	}
	return rows
}

func TestCompressDecompressRoundTripsAUniformGrayImage(t *testing.T) {
	width, height := 32, 16
	rgb := solidRGBImage(width, height, 128, 128, 128)

	arenaBuf := make([]byte, WorkingMemoryBytes(width, 3)*4)
	dst := make([]byte, 64*1024)
	n, err := Compress(arenaBuf, rgb, width, height, 90, dst, Hooks{})
	require.NoError(t, err)
	require.Greater(t, n, 0)

	decArena := make([]byte, WorkingMemoryBytes(width, 3)*4)
	outRows := make([][]uint8, height)
	for i := range outRows {
		outRows[i] = make([]uint8, width*3)
	}
	w, h, err := Decompress(decArena, dst[:n], outRows, Hooks{})
	require.NoError(t, err)
	require.Equal(t, width, w)
	require.Equal(t, height, h)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			require.InDelta(t, 128, outRows[y][x*3], 6, "pixel (%d,%d) red channel", x, y)
		}
	}
}

func TestCompressDecompressRoundTripsAUniformRedImage(t *testing.T) {
	width, height := 512, 512
	rgb := solidRGBImage(width, height, 255, 0, 0)

	arenaBuf := make([]byte, WorkingMemoryBytes(width, 3)*4)
	dst := make([]byte, 512*1024)
	n, err := Compress(arenaBuf, rgb, width, height, 85, dst, Hooks{})
	require.NoError(t, err)
	require.Greater(t, n, 0)

	decArena := make([]byte, WorkingMemoryBytes(width, 3)*4)
	outRows := make([][]uint8, height)
	for i := range outRows {
		outRows[i] = make([]uint8, width*3)
	}
	w, h, err := Decompress(decArena, dst[:n], outRows, Hooks{})
	require.NoError(t, err)
	require.Equal(t, width, w)
	require.Equal(t, height, h)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			require.InDelta(t, 255, outRows[y][x*3], 8, "pixel (%d,%d) red channel", x, y)
			require.InDelta(t, 0, outRows[y][x*3+1], 8, "pixel (%d,%d) green channel", x, y)
			require.InDelta(t, 0, outRows[y][x*3+2], 8, "pixel (%d,%d) blue channel", x, y)
		}
	}
}

func TestCompressRejectsATooSmallDestination(t *testing.T) {
	width, height := 16, 16
	rgb := solidRGBImage(width, height, 10, 20, 30)
	arenaBuf := make([]byte, WorkingMemoryBytes(width, 3)*4)
	dst := make([]byte, 4)

	_, err := Compress(arenaBuf, rgb, width, height, 80, dst, Hooks{})
	require.Error(t, err)
}
