package arena

import "testing"

func TestAllocRoundsUpToAlignment(t *testing.T) {
	var a Arena
	a.Attach(make([]byte, 256))

	b := Alloc[byte](&a, Permanent, 3)
	if len(b) != 3 {
		t.Fatalf("expected 3 usable bytes, got %d", len(b))
	}
	if a.Used() != 8 {
		t.Fatalf("expected used=8 after rounding 3 up to alignment, got %d", a.Used())
	}
}

func TestAllocNeverOverlaps(t *testing.T) {
	var a Arena
	a.Attach(make([]byte, 256))

	first := Alloc[int32](&a, Permanent, 4)
	second := Alloc[int32](&a, Image, 4)

	for i := range first {
		first[i] = 1
	}
	for i := range second {
		second[i] = 2
	}
	for i := range first {
		if first[i] != 1 {
			t.Fatalf("second allocation clobbered the first at index %d", i)
		}
	}
}

func TestUsedPlusFreeEqualsSize(t *testing.T) {
	var a Arena
	a.Attach(make([]byte, 2048))

	for n := 1; n <= 50; n++ {
		Alloc[byte](&a, Permanent, n)
		if a.Used()+a.Free() != a.Size() {
			t.Fatalf("invariant broken after allocating %d bytes: used=%d free=%d size=%d",
				n, a.Used(), a.Free(), a.Size())
		}
	}
}

func TestAllocPanicsWhenArenaTooSmall(t *testing.T) {
	var a Arena
	a.Attach(make([]byte, 8))

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic allocating beyond arena capacity")
		}
	}()
	Alloc[byte](&a, Permanent, 100)
}

func TestAvailableGatesWithoutAllocating(t *testing.T) {
	var a Arena
	a.Attach(make([]byte, 64))

	if !a.Available(64) {
		t.Fatal("expected 64 bytes to be available in a fresh 64-byte arena")
	}
	if a.Available(65) {
		t.Fatal("expected 65 bytes to be reported unavailable")
	}
	if a.Used() != 0 {
		t.Fatalf("Available must not allocate, used=%d", a.Used())
	}
}

func TestAlloc2DRowsAreContiguousAndDistinct(t *testing.T) {
	var a Arena
	a.Attach(make([]byte, 4096))

	plane := Alloc2D[uint8](&a, Image, 16, 4)
	for y := 0; y < plane.Rows(); y++ {
		row := plane.Row(y)
		if len(row) != plane.Stride() {
			t.Fatalf("row %d has length %d, want stride %d", y, len(row), plane.Stride())
		}
		for x := range row {
			row[x] = byte(y)
		}
	}
	flat := plane.Flat()
	if len(flat) != 16*4 {
		t.Fatalf("flat backing store length = %d, want %d", len(flat), 16*4)
	}
	for y := 0; y < plane.Rows(); y++ {
		for x := 0; x < plane.Stride(); x++ {
			if flat[y*plane.Stride()+x] != byte(y) {
				t.Fatalf("row %d not contiguous with flat backing store at x=%d", y, x)
			}
		}
	}
}
