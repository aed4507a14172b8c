package jsc

import "testing"

func TestUpsampleBoxReplicatesEachSourceSample(t *testing.T) {
	comp := &Component{HSamp: 1, VSamp: 1}
	src := []uint8{10, 20, 30, 40} // 2x2
	dst := make([]uint8, 4*4)
	UpsampleBox(comp, 2, 2, src, 2, dst, 4, 4)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			want := src[(y/2)*2+(x/2)]
			if got := dst[y*4+x]; got != want {
				t.Fatalf("(%d,%d): got %d, want %d", x, y, got, want)
			}
		}
	}
}

func TestUpsampleFancyFallsBackToBoxBeyondRatioTwo(t *testing.T) {
	comp := &Component{HSamp: 1, VSamp: 1}
	src := []uint8{5, 15}
	dst := make([]uint8, 2*8)
	UpsampleFancy(comp, 4, 1, src, 2, dst, 8, 1)
	if dst[0] != 5 || dst[7] != 15 {
		t.Fatalf("expected box fallback replication at ratio 4, got %v", dst)
	}
}

func TestUpsampleFancyBlendsBetweenNeighbors(t *testing.T) {
	comp := &Component{HSamp: 1, VSamp: 1}
	src := []uint8{0, 100}
	dst := make([]uint8, 4)
	UpsampleFancy(comp, 2, 1, src, 2, dst, 4, 1)
	if dst[0] != 0 {
		t.Fatalf("leftmost sample should stay near its own value, got %d", dst[0])
	}
	if dst[1] <= dst[0] || dst[1] >= 100 {
		t.Fatalf("blended sample should sit strictly between neighbors, got %d", dst[1])
	}
}
