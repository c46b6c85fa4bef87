package qrgen

// Penalty rule constants, fixed by the standard.
const (
	penaltyRun        = 3  // rule 1: per run of 5, plus 1 per extra module
	penaltyBlock      = 3  // rule 2: per 2x2 block
	penaltyFinderLike = 40 // rule 3: per finder-like sequence
	penaltyBalance    = 10 // rule 4: per 5% deviation from 50% dark
)

// finderLikePatterns are the two 11-module sequences penalised by rule 3.
var finderLikePatterns = [2][11]byte{
	{1, 0, 1, 1, 1, 0, 1, 0, 0, 0, 0},
	{0, 0, 0, 0, 1, 0, 1, 1, 1, 0, 1},
}

// PenaltyScore evaluates a fully populated grid against the four mask
// evaluation rules and returns their summed cost. Lower is better.
func PenaltyScore(g *Grid) int {
	return penaltyRule1(g) + penaltyRule2(g) + penaltyRule3(g) + penaltyRule4(g)
}

// Rule 1: maximal runs of five or more same-valued modules in a row or
// column cost 3 plus one per module beyond five.
func penaltyRule1(g *Grid) int {
	return penaltyRuns(g, true) + penaltyRuns(g, false)
}

func penaltyRuns(g *Grid, horizontal bool) int {
	penalty := 0
	for i := 0; i < g.size; i++ {
		runLength := 0
		prev := moduleUnset // never matches a populated cell
		for j := 0; j < g.size; j++ {
			var v byte
			if horizontal {
				v = g.get(i, j)
			} else {
				v = g.get(j, i)
			}
			if v == prev {
				runLength++
				continue
			}
			if runLength >= 5 {
				penalty += penaltyRun + runLength - 5
			}
			runLength = 1
			prev = v
		}
		if runLength >= 5 {
			penalty += penaltyRun + runLength - 5
		}
	}
	return penalty
}

// Rule 2: every 2x2 block of identical modules costs 3; overlapping blocks
// all count.
func penaltyRule2(g *Grid) int {
	penalty := 0
	for r := 0; r < g.size-1; r++ {
		for c := 0; c < g.size-1; c++ {
			v := g.get(r, c)
			if v == g.get(r, c+1) && v == g.get(r+1, c) && v == g.get(r+1, c+1) {
				penalty += penaltyBlock
			}
		}
	}
	return penalty
}

// Rule 3: each occurrence of a finder-like 11-module sequence in a row or
// column costs 40.
func penaltyRule3(g *Grid) int {
	penalty := 0
	for i := 0; i < g.size; i++ {
		for start := 0; start+11 <= g.size; start++ {
			for _, pattern := range finderLikePatterns {
				if matchesRow(g, i, start, pattern) {
					penalty += penaltyFinderLike
				}
				if matchesColumn(g, i, start, pattern) {
					penalty += penaltyFinderLike
				}
			}
		}
	}
	return penalty
}

func matchesRow(g *Grid, r, start int, pattern [11]byte) bool {
	for k, want := range pattern {
		if g.get(r, start+k) != want {
			return false
		}
	}
	return true
}

func matchesColumn(g *Grid, c, start int, pattern [11]byte) bool {
	for k, want := range pattern {
		if g.get(start+k, c) != want {
			return false
		}
	}
	return true
}

// Rule 4: deviation of the dark-module percentage from 50, in whole steps
// of five percent, costs 10 per step.
func penaltyRule4(g *Grid) int {
	dark := 0
	for r := 0; r < g.size; r++ {
		for c := 0; c < g.size; c++ {
			if g.get(r, c) == moduleDark {
				dark++
			}
		}
	}
	total := g.size * g.size
	percent := dark * 100 / total
	deviation := percent - 50
	if deviation < 0 {
		deviation = -deviation
	}
	return deviation / 5 * penaltyBalance
}
