// Command jsc drives the codec over BMP test images from the command
// line: -mode=compress reads a BMP and writes a baseline JPEG, -mode=decode
// reads a baseline JPEG and writes a BMP, and -mode=roundtrip does both and
// reports the SHA256 of the image pixels before and after, grounded on the
// teacher's cmd/verify worker-pool/flag harness but scaled down to a single
// file per invocation since this codec's test fixtures are synthetic, not a
// large corpus to sweep in parallel.
package main

import (
	"crypto/sha256"
	"encoding/hex"
	"flag"
	"fmt"
	"image"
	"image/color"
	"os"

	"golang.org/x/image/bmp"

	"github.com/abcouwer-jpl/jsc-sub000/jsc"
)

func main() {
	mode := flag.String("mode", "roundtrip", "compress | decode | roundtrip")
	in := flag.String("in", "", "input file path")
	out := flag.String("out", "", "output file path")
	quality := flag.Int("quality", 85, "JPEG quality, 1..100")
	verbose := flag.Bool("v", false, "verbose logging")
	flag.Parse()

	if *in == "" {
		fmt.Fprintln(os.Stderr, "jsc: -in is required")
		os.Exit(1)
	}

	hooks := jsc.Hooks{}
	if *verbose {
		hooks.Trace = func(msg string) { fmt.Fprintln(os.Stderr, "trace:", msg) }
	}
	hooks.Warn = func(msg string) { fmt.Fprintln(os.Stderr, "warn:", msg) }

	var err error
	switch *mode {
	case "compress":
		err = runCompress(*in, *out, *quality, hooks)
	case "decode":
		err = runDecode(*in, *out, hooks)
	case "roundtrip":
		err = runRoundtrip(*in, *quality, hooks)
	default:
		err = fmt.Errorf("unknown -mode %q", *mode)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "jsc:", err)
		os.Exit(1)
	}
}

func loadBMPAsRGBRows(path string) ([][]uint8, int, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, 0, err
	}
	defer f.Close()
	img, err := bmp.Decode(f)
	if err != nil {
		return nil, 0, 0, err
	}
	b := img.Bounds()
	width, height := b.Dx(), b.Dy()
	rows := make([][]uint8, height)
	for y := 0; y < height; y++ {
		row := make([]uint8, width*3)
		for x := 0; x < width; x++ {
			r, g, bl, _ := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			row[x*3] = uint8(r >> 8)
			row[x*3+1] = uint8(g >> 8)
			row[x*3+2] = uint8(bl >> 8)
		}
		rows[y] = row
	}
	return rows, width, height, nil
}

func saveRGBRowsAsBMP(path string, rows [][]uint8, width, height int) error {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		row := rows[y]
		for x := 0; x < width; x++ {
			img.SetRGBA(x, y, color.RGBA{R: row[x*3], G: row[x*3+1], B: row[x*3+2], A: 255})
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return bmp.Encode(f, img)
}

func runCompress(in, out string, quality int, hooks jsc.Hooks) error {
	rows, width, height, err := loadBMPAsRGBRows(in)
	if err != nil {
		return err
	}
	arenaBuf := make([]byte, jsc.WorkingMemoryBytes(width, 3)*4)
	dst := make([]byte, width*height*4+65536)
	n, err := jsc.Compress(arenaBuf, rows, width, height, quality, dst, hooks)
	if err != nil {
		return err
	}
	if out == "" {
		out = in + ".jpg"
	}
	return os.WriteFile(out, dst[:n], 0o644)
}

func runDecode(in, out string, hooks jsc.Hooks) error {
	src, err := os.ReadFile(in)
	if err != nil {
		return err
	}
	width, height, err := peekDimensions(src, hooks)
	if err != nil {
		return err
	}
	arenaBuf := make([]byte, jsc.WorkingMemoryBytes(width, 3)*4)
	rows := make([][]uint8, height)
	for i := range rows {
		rows[i] = make([]uint8, width*3)
	}
	if _, _, err := jsc.Decompress(arenaBuf, src, rows, hooks); err != nil {
		return err
	}
	if out == "" {
		out = in + ".bmp"
	}
	return saveRGBRowsAsBMP(out, rows, width, height)
}

// peekDimensions runs the decoder's header reader alone to learn the
// output buffer size the caller needs to allocate, since this codec never
// allocates its own output (spec §6 "caller-owned destination buffers").
func peekDimensions(src []byte, hooks jsc.Hooks) (int, int, error) {
	var d jsc.Decompressor
	d.Hooks = hooks
	d.AttachArena(make([]byte, 1<<20))
	d.MemSrc(src)
	status, err := d.ReadHeader()
	if err != nil {
		return 0, 0, err
	}
	if status != jsc.HeaderOK {
		return 0, 0, fmt.Errorf("no scan found in input")
	}
	return d.FrameWidth(), d.FrameHeight(), nil
}

func runRoundtrip(in string, quality int, hooks jsc.Hooks) error {
	rows, width, height, err := loadBMPAsRGBRows(in)
	if err != nil {
		return err
	}
	before := hashRows(rows)

	arenaBuf := make([]byte, jsc.WorkingMemoryBytes(width, 3)*4)
	dst := make([]byte, width*height*4+65536)
	n, err := jsc.Compress(arenaBuf, rows, width, height, quality, dst, hooks)
	if err != nil {
		return err
	}

	decArena := make([]byte, jsc.WorkingMemoryBytes(width, 3)*4)
	outRows := make([][]uint8, height)
	for i := range outRows {
		outRows[i] = make([]uint8, width*3)
	}
	_, _, err = jsc.Decompress(decArena, dst[:n], outRows, hooks)
	if err != nil {
		return err
	}
	after := hashRows(outRows)

	fmt.Printf("compressed %d bytes, before=%s after=%s\n", n, before, after)
	return nil
}

func hashRows(rows [][]uint8) string {
	h := sha256.New()
	for _, r := range rows {
		h.Write(r)
	}
	return hex.EncodeToString(h.Sum(nil))[:16]
}
