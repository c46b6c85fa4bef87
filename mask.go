package qrgen

import "github.com/JackT-C/qrgen/bitutil"

// numMasks is the number of candidate mask patterns.
const numMasks = 8

// maskPredicates reports, per mask identifier, whether the module at (r, c)
// is inverted. Dispatch is a table lookup; the predicates themselves are
// fixed by the standard.
var maskPredicates = [numMasks]func(r, c int) bool{
	func(r, c int) bool { return (r+c)%2 == 0 },
	func(r, c int) bool { return r%2 == 0 },
	func(r, c int) bool { return c%3 == 0 },
	func(r, c int) bool { return (r+c)%3 == 0 },
	func(r, c int) bool { return (r/2+c/3)%2 == 0 },
	func(r, c int) bool { return (r*c)%2+(r*c)%3 == 0 },
	func(r, c int) bool { return ((r*c)%2+(r*c)%3)%2 == 0 },
	func(r, c int) bool { return ((r+c)%2+(r*c)%3)%2 == 0 },
}

// applyMask inverts every non-reserved module where the mask predicate
// holds. Applying the same mask twice restores the grid.
func applyMask(g *Grid, reserved *bitutil.BitMatrix, maskID int) {
	predicate := maskPredicates[maskID]
	for r := 0; r < g.size; r++ {
		for c := 0; c < g.size; c++ {
			if isReserved(reserved, r, c) {
				continue
			}
			if predicate(r, c) {
				g.data[r][c] ^= 1
			}
		}
	}
}
