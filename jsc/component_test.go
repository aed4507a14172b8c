package jsc

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestDeriveGeometryForStandard420Frame(t *testing.T) {
	f := FrameInfo{
		Width: 33, Height: 17, NumComponents: 3,
	}
	f.Components[0] = Component{ID: 1, Index: 0, HSamp: 2, VSamp: 2}
	f.Components[1] = Component{ID: 2, Index: 1, HSamp: 1, VSamp: 1}
	f.Components[2] = Component{ID: 3, Index: 2, HSamp: 1, VSamp: 1}
	f.deriveGeometry()

	if f.MaxHSamp != 2 || f.MaxVSamp != 2 {
		t.Fatalf("expected max sampling 2x2, got %dx%d", f.MaxHSamp, f.MaxVSamp)
	}
	// 33x17 pixels at a 16x16 MCU cell rounds up to a 3x2 MCU grid.
	want := struct{ W, H int }{3, 2}
	got := struct{ W, H int }{f.MCUsWide, f.MCUsHigh}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("MCU grid mismatch (-want +got):\n%s", diff)
	}

	luma := f.Components[0]
	if luma.BlockWidth != 6 || luma.BlockHeight != 4 {
		t.Fatalf("luma block grid: got %dx%d, want 6x4", luma.BlockWidth, luma.BlockHeight)
	}
	chroma := f.Components[1]
	if chroma.BlockWidth != 3 || chroma.BlockHeight != 2 {
		t.Fatalf("chroma block grid: got %dx%d, want 3x2", chroma.BlockWidth, chroma.BlockHeight)
	}
}

func TestBlocksPerMCUExceedsLimitForOversizedSampling(t *testing.T) {
	f := FrameInfo{NumComponents: 4}
	for i := range f.Components[:4] {
		f.Components[i] = Component{HSamp: 4, VSamp: 4}
	}
	if f.blocksPerMCU() <= MaxBlocksInMCU {
		t.Fatalf("expected an oversized MCU block count, got %d", f.blocksPerMCU())
	}
}

func TestComponentStructIgnoresDerivedFieldsWhenComparingIntent(t *testing.T) {
	a := Component{ID: 1, HSamp: 2, VSamp: 2, BlockWidth: 6}
	b := Component{ID: 1, HSamp: 2, VSamp: 2, BlockWidth: 99}
	diff := cmp.Diff(a, b, cmpopts.IgnoreFields(Component{}, "BlockWidth"))
	if diff != "" {
		t.Fatalf("expected components to match ignoring derived BlockWidth, got diff:\n%s", diff)
	}
}
