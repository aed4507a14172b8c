package jsc

import "testing"

func TestBitWriterThenBitReaderRoundTrips(t *testing.T) {
	dst := make([]byte, 64)
	w := NewBitWriter(dst)
	values := []struct {
		v uint32
		n uint32
	}{{0x1, 1}, {0x3, 2}, {0xFF, 8}, {0x7FF, 11}, {0, 3}}
	for _, val := range values {
		if err := w.Write(val.v, val.n); err != nil {
			t.Fatalf("Write: %v", err)
		}
	}
	if err := w.Pad(true); err != nil {
		t.Fatalf("Pad: %v", err)
	}

	r := NewBitReader(dst[:w.Pos()], nil)
	for _, val := range values {
		got := r.Read(val.n)
		if got != val.v {
			t.Errorf("got %x, want %x", got, val.v)
		}
	}
}

func TestBitWriterShortDestinationRejectsGracefully(t *testing.T) {
	dst := make([]byte, 1)
	w := NewBitWriter(dst)
	err := w.Write(0xFFFFFFFF, 32)
	if err == nil {
		t.Fatal("expected a short-destination error")
	}
}

func TestBitWriterEscapesFFBytes(t *testing.T) {
	dst := make([]byte, 16)
	w := NewBitWriter(dst)
	if err := w.Write(0xFF, 8); err != nil {
		t.Fatal(err)
	}
	if err := w.Pad(true); err != nil {
		t.Fatal(err)
	}
	if w.Pos() < 2 || dst[0] != 0xFF || dst[1] != 0x00 {
		t.Fatalf("expected the 0xFF byte to be stuffed with a trailing 0x00, got % x", dst[:w.Pos()])
	}
}

func TestBitReaderSynthesizesZerosPastEndAndWarnsOnce(t *testing.T) {
	warnings := 0
	r := NewBitReader([]byte{0xAB}, func(string) { warnings++ })
	r.Read(8)
	r.Read(8)
	r.Read(8)
	if !r.InsufficientData() {
		t.Fatal("expected InsufficientData to be true after reading past the buffer")
	}
	if warnings != 1 {
		t.Fatalf("expected exactly one warning, got %d", warnings)
	}
}

func TestBitReaderSurfacesUnescapedMarkerWithoutConsumingIt(t *testing.T) {
	r := NewBitReader([]byte{0x00, 0xFF, 0xD9}, nil)
	r.Read(8)
	r.Read(8) // runs into the FF D9 marker
	if r.UnreadMarker() != 0xD9 {
		t.Fatalf("expected unread marker 0xD9, got %#x", r.UnreadMarker())
	}
}
