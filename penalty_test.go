package qrgen

import "testing"

func uniformGrid(size int, v byte) *Grid {
	g := newGrid(size)
	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			g.set(r, c, v)
		}
	}
	return g
}

func checkerboardGrid(size int) *Grid {
	g := newGrid(size)
	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			v := moduleLight
			if (r+c)%2 == 0 {
				v = moduleDark
			}
			g.set(r, c, v)
		}
	}
	return g
}

func TestPenaltyUniformGrid(t *testing.T) {
	for _, v := range []byte{moduleLight, moduleDark} {
		g := uniformGrid(21, v)
		// Each of the 21 rows and 21 columns is one 21-module run.
		if got, want := penaltyRule1(g), 42*(penaltyRun+16); got != want {
			t.Errorf("rule 1 = %d, want %d", got, want)
		}
		if got, want := penaltyRule2(g), 400*penaltyBlock; got != want {
			t.Errorf("rule 2 = %d, want %d", got, want)
		}
		if got := penaltyRule3(g); got != 0 {
			t.Errorf("rule 3 = %d, want 0", got)
		}
		if got, want := penaltyRule4(g), 10*penaltyBalance; got != want {
			t.Errorf("rule 4 = %d, want %d", got, want)
		}
	}
}

func TestPenaltyCheckerboardIsZero(t *testing.T) {
	g := checkerboardGrid(21)
	if got := PenaltyScore(g); got != 0 {
		t.Errorf("checkerboard penalty = %d, want 0", got)
	}
}

func TestPenaltyRule1MaximalRuns(t *testing.T) {
	// A single dark run of six in row 0 scores once as a maximal run of
	// six, not for every five-module window it contains.
	g := uniformGrid(21, moduleLight)
	for c := 0; c < 6; c++ {
		g.set(0, c, moduleDark)
	}
	// Row 0: runs of 6 and 15. Rows 1-20: runs of 21.
	// Columns 0-5: runs of 1 and 20. Columns 6-20: runs of 21.
	want := (4 + 13) + 20*19 + 6*18 + 15*19
	if got := penaltyRule1(g); got != want {
		t.Errorf("rule 1 = %d, want %d", got, want)
	}
}

func TestPenaltyRule2SingleBlock(t *testing.T) {
	g := uniformGrid(21, moduleLight)
	g.set(0, 0, moduleDark)
	g.set(0, 1, moduleDark)
	g.set(1, 0, moduleDark)
	g.set(1, 1, moduleDark)
	// One all-dark block, 396 all-light blocks, 3 mixed.
	if got, want := penaltyRule2(g), 397*penaltyBlock; got != want {
		t.Errorf("rule 2 = %d, want %d", got, want)
	}
}

func TestPenaltyRule3FinderLikeRow(t *testing.T) {
	g := uniformGrid(21, moduleLight)
	for c, v := range []byte{1, 0, 1, 1, 1, 0, 1} {
		g.set(5, c, v)
	}
	// The dark ratio pattern followed by four light modules matches once.
	if got := penaltyRule3(g); got != penaltyFinderLike {
		t.Errorf("rule 3 = %d, want %d", got, penaltyFinderLike)
	}
}

func TestPenaltyRule4Steps(t *testing.T) {
	tests := []struct {
		darkCells int
		want      int
	}{
		{0, 100},
		{441, 100},
		{221, 0},  // 50%
		{199, 10}, // 45%
		{177, 20}, // 40%
	}
	for _, tt := range tests {
		g := uniformGrid(21, moduleLight)
		n := 0
		for r := 0; r < 21 && n < tt.darkCells; r++ {
			for c := 0; c < 21 && n < tt.darkCells; c++ {
				g.set(r, c, moduleDark)
				n++
			}
		}
		if got := penaltyRule4(g); got != tt.want {
			t.Errorf("%d dark cells: rule 4 = %d, want %d", tt.darkCells, got, tt.want)
		}
	}
}

func TestPenaltyScoreDeterministic(t *testing.T) {
	symbol, err := Encode("determinism")
	if err != nil {
		t.Fatal(err)
	}
	first := PenaltyScore(symbol.Grid)
	for i := 0; i < 3; i++ {
		if got := PenaltyScore(symbol.Grid); got != first {
			t.Fatalf("score changed between evaluations: %d then %d", first, got)
		}
	}
	if symbol.Score != first {
		t.Errorf("symbol score %d does not match re-evaluation %d", symbol.Score, first)
	}
}
