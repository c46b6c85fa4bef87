package qrgen

import (
	"fmt"

	"github.com/JackT-C/qrgen/bitutil"
)

// placeData writes the flat codeword bit sequence into every cell left unset
// by the matrix builder, using the standard zig-zag traversal: column pairs
// from the right edge leftward, skipping the vertical timing column,
// alternating bottom-up and top-down, right cell before left. Cells reached
// after the bit sequence is exhausted are set light.
func placeData(g *Grid, bits *bitutil.BitArray) error {
	size := g.size
	bitIndex := 0
	up := true
	col := size - 1
	for col > 0 {
		if col == 6 { // vertical timing column
			col--
			continue
		}
		for i := 0; i < size; i++ {
			r := i
			if up {
				r = size - 1 - i
			}
			for _, c := range [2]int{col, col - 1} {
				if g.get(r, c) != moduleUnset {
					continue
				}
				v := moduleLight
				if bitIndex < bits.Size() {
					if bits.Get(bitIndex) {
						v = moduleDark
					}
					bitIndex++
				}
				g.set(r, c, v)
			}
		}
		up = !up
		col -= 2
	}

	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			if g.get(r, c) == moduleUnset {
				return fmt.Errorf("%w: cell (%d,%d) left unset after data placement",
					ErrInternal, r, c)
			}
		}
	}
	return nil
}
