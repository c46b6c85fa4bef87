package qrgen

import (
	"testing"

	"github.com/JackT-C/qrgen/bitutil"
)

func placementBits(t *testing.T, payload []byte, v Version) *bitutil.BitArray {
	t.Helper()
	bits, err := buildBitstream(payload, v)
	if err != nil {
		t.Fatal(err)
	}
	codewords, err := splitCodewords(bits, v)
	if err != nil {
		t.Fatal(err)
	}
	full, err := addErrorCorrection(codewords, v)
	if err != nil {
		t.Fatal(err)
	}
	return flattenCodewords(full)
}

func TestPlaceDataLeavesNoUnsetCells(t *testing.T) {
	for _, v := range []Version{Version1, Version2} {
		g, _ := stampedGrid(t, v, 0)
		flat := placementBits(t, []byte("placement"), v)
		if err := placeData(g, flat); err != nil {
			t.Fatalf("version %s: %v", v, err)
		}
		for r := 0; r < g.Size(); r++ {
			for c := 0; c < g.Size(); c++ {
				if g.get(r, c) == moduleUnset {
					t.Fatalf("version %s: cell (%d,%d) left unset", v, r, c)
				}
			}
		}
	}
}

func TestPlaceDataBitCount(t *testing.T) {
	for _, v := range []Version{Version1, Version2} {
		g, reserved := stampedGrid(t, v, 0)
		flat := placementBits(t, []byte("bit count"), v)
		if err := placeData(g, flat); err != nil {
			t.Fatalf("version %s: %v", v, err)
		}

		ones := 0
		for i := 0; i < flat.Size(); i++ {
			if flat.Get(i) {
				ones++
			}
		}
		dark := 0
		for r := 0; r < g.Size(); r++ {
			for c := 0; c < g.Size(); c++ {
				if !isReserved(reserved, r, c) && g.Dark(r, c) {
					dark++
				}
			}
		}
		// Cells beyond the bitstream are filled light, so the dark data
		// cells are exactly the set bits.
		if dark != ones {
			t.Errorf("version %s: %d dark data cells, want %d", v, dark, ones)
		}
	}
}

func TestPlaceDataFirstCells(t *testing.T) {
	// Placement starts at the bottom-right corner and moves up, writing the
	// right cell of each column pair before the left one.
	g, _ := stampedGrid(t, Version1, 0)
	flat := placementBits(t, []byte("corner"), Version1)
	if err := placeData(g, flat); err != nil {
		t.Fatal(err)
	}
	size := g.Size()
	wants := []struct {
		r, c int
		bit  int
	}{
		{size - 1, size - 1, 0},
		{size - 1, size - 2, 1},
		{size - 2, size - 1, 2},
		{size - 2, size - 2, 3},
	}
	for _, w := range wants {
		if g.Dark(w.r, w.c) != flat.Get(w.bit) {
			t.Errorf("cell (%d,%d) dark = %v, want bit %d = %v",
				w.r, w.c, g.Dark(w.r, w.c), w.bit, flat.Get(w.bit))
		}
	}
}
