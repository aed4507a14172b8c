package jsc

import "testing"

func TestStandardTablesBuildEncoderAndDecoderTables(t *testing.T) {
	tables := []HuffTable{
		StandardDCLuminanceTable(),
		StandardACLuminanceTable(),
		StandardDCChrominanceTable(),
		StandardACChrominanceTable(),
	}
	for i, ht := range tables {
		enc, err := BuildEncoderTable(&ht)
		if err != nil {
			t.Fatalf("table %d: BuildEncoderTable: %v", i, err)
		}
		dec, err := BuildDecoderTable(&ht)
		if err != nil {
			t.Fatalf("table %d: BuildDecoderTable: %v", i, err)
		}
		for sym := 0; sym < 256; sym++ {
			if enc.Size[sym] == 0 {
				continue
			}
			l := enc.Size[sym]
			if dec.MaxCode[l] < int32(enc.Code[sym]) {
				t.Errorf("table %d symbol %d: maxcode[%d]=%d does not cover its own code %d",
					i, sym, l, dec.MaxCode[l], enc.Code[sym])
			}
			idx := int32(enc.Code[sym]) + dec.ValOffset[l]
			if idx < 0 || idx >= int32(len(dec.Values)) || dec.Values[idx] != uint8(sym) {
				t.Errorf("table %d symbol %d: decoder table does not recover the encoded symbol", i, sym)
			}
		}
	}
}

func TestEncoderTableRejectsAllOnesCode(t *testing.T) {
	var ht HuffTable
	// Two codes of length 1 are "0" and "1"; the second is all-ones for a
	// 1-bit code, so this degenerate table must be rejected (spec §4.5).
	ht.Bits[1] = 2
	ht.Values[0] = 5
	ht.Values[1] = 6
	ht.NumValues = 2
	if _, err := BuildEncoderTable(&ht); err == nil {
		t.Fatal("expected an error for an all-ones single-length code")
	}
}

func TestLookaheadMatchesSlowPathForShortCodes(t *testing.T) {
	ht := StandardDCLuminanceTable()
	dec, err := BuildDecoderTable(&ht)
	if err != nil {
		t.Fatal(err)
	}
	enc, err := BuildEncoderTable(&ht)
	if err != nil {
		t.Fatal(err)
	}
	for sym := 0; sym < 256; sym++ {
		if enc.Size[sym] == 0 || enc.Size[sym] > 8 {
			continue
		}
		code := enc.Code[sym]
		shift := 8 - enc.Size[sym]
		idx := byte(code) << shift
		entry := dec.Lookahead[idx]
		if entry.Len != enc.Size[sym] || entry.Val != uint8(sym) {
			t.Errorf("lookahead mismatch for symbol %d", sym)
		}
	}
}
