package qrgen

import (
	"strings"

	"github.com/JackT-C/qrgen/bitutil"
)

// Module states. Grids start fully unset; construction must leave no cell
// unset.
const (
	moduleLight byte = 0
	moduleDark  byte = 1
	moduleUnset byte = 0xFF
)

// Grid is a square module grid. Cells are addressed by (row, column) with
// the origin at the top-left.
type Grid struct {
	data [][]byte
	size int
}

func newGrid(size int) *Grid {
	data := make([][]byte, size)
	for r := range data {
		row := make([]byte, size)
		for c := range row {
			row[c] = moduleUnset
		}
		data[r] = row
	}
	return &Grid{data: data, size: size}
}

// Size returns the number of modules per side.
func (g *Grid) Size() int { return g.size }

// Dark reports whether the module at (r, c) is dark. Rendering collaborators
// need nothing else from the grid.
func (g *Grid) Dark(r, c int) bool { return g.data[r][c] == moduleDark }

func (g *Grid) get(r, c int) byte    { return g.data[r][c] }
func (g *Grid) set(r, c int, v byte) { g.data[r][c] = v }

func (g *Grid) clone() *Grid {
	data := make([][]byte, g.size)
	for r := range data {
		data[r] = append([]byte(nil), g.data[r]...)
	}
	return &Grid{data: data, size: g.size}
}

// String returns a visual representation, two characters per module.
func (g *Grid) String() string {
	var sb strings.Builder
	for r := 0; r < g.size; r++ {
		for c := 0; c < g.size; c++ {
			if g.data[r][c] == moduleDark {
				sb.WriteString("##")
			} else {
				sb.WriteString("  ")
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// finderPattern is the 7x7 position detection pattern stamped at three
// corners of every symbol.
var finderPattern = [7][7]byte{
	{1, 1, 1, 1, 1, 1, 1},
	{1, 0, 0, 0, 0, 0, 1},
	{1, 0, 1, 1, 1, 0, 1},
	{1, 0, 1, 1, 1, 0, 1},
	{1, 0, 1, 1, 1, 0, 1},
	{1, 0, 0, 0, 0, 0, 1},
	{1, 1, 1, 1, 1, 1, 1},
}

// alignmentPattern is the 5x5 pattern stamped at (18,18) on version 2.
var alignmentPattern = [5][5]byte{
	{1, 1, 1, 1, 1},
	{1, 0, 0, 0, 1},
	{1, 0, 1, 0, 1},
	{1, 0, 0, 0, 1},
	{1, 1, 1, 1, 1},
}

// formatInfo holds the 15-bit format information strings for error
// correction level L, indexed by mask identifier. The values are
// BCH-encoded constants, never computed at runtime.
var formatInfo = [8]uint16{
	0b111011111000100,
	0b111001011110011,
	0b111110110101010,
	0b111100010011101,
	0b110011000101111,
	0b110001100011000,
	0b110110001000001,
	0b110100101110110,
}

// reserve marks (r, c) as a function module for the current pass.
func reserve(reserved *bitutil.BitMatrix, r, c int) {
	reserved.Set(c, r)
}

func isReserved(reserved *bitutil.BitMatrix, r, c int) bool {
	return reserved.Get(c, r)
}

// stampFunctionPatterns places every function pattern except format
// information: finder patterns, separators, timing patterns, the dark
// module and (version 2) the alignment pattern. Each placed cell is added
// to the reserved set owned by this pass.
func stampFunctionPatterns(g *Grid, reserved *bitutil.BitMatrix, v Version) {
	size := g.size

	for _, origin := range [3][2]int{{0, 0}, {0, size - 7}, {size - 7, 0}} {
		stampFinderPattern(g, reserved, origin[0], origin[1])
	}
	stampSeparators(g, reserved)
	stampTimingPatterns(g, reserved)

	// Dark module.
	g.set(size-8, 8, moduleDark)
	reserve(reserved, size-8, 8)

	if v >= Version2 {
		stampAlignmentPattern(g, reserved, 18, 18)
	}
}

func stampFinderPattern(g *Grid, reserved *bitutil.BitMatrix, r, c int) {
	for dr := 0; dr < 7; dr++ {
		for dc := 0; dc < 7; dc++ {
			g.set(r+dr, c+dc, finderPattern[dr][dc])
			reserve(reserved, r+dr, c+dc)
		}
	}
}

// stampSeparators draws the light one-module strips along the inner edges of
// the three finder patterns.
func stampSeparators(g *Grid, reserved *bitutil.BitMatrix) {
	size := g.size
	for i := 0; i < 8; i++ {
		for _, rc := range [6][2]int{
			{i, 7}, {7, i}, // top-left
			{i, size - 8}, {7, size - 1 - i}, // top-right
			{size - 8, i}, {size - 1 - i, 7}, // bottom-left
		} {
			g.set(rc[0], rc[1], moduleLight)
			reserve(reserved, rc[0], rc[1])
		}
	}
}

// stampTimingPatterns draws row 6 and column 6 between the finder margins,
// alternating with the index parity.
func stampTimingPatterns(g *Grid, reserved *bitutil.BitMatrix) {
	size := g.size
	for i := 8; i < size-8; i++ {
		bit := byte(i % 2)
		for _, rc := range [2][2]int{{6, i}, {i, 6}} {
			if isReserved(reserved, rc[0], rc[1]) {
				continue
			}
			g.set(rc[0], rc[1], bit)
			reserve(reserved, rc[0], rc[1])
		}
	}
}

// stampAlignmentPattern places the 5x5 alignment pattern centred at (r, c).
// Cells already reserved by an earlier step are left untouched.
func stampAlignmentPattern(g *Grid, reserved *bitutil.BitMatrix, r, c int) {
	for dr := -2; dr <= 2; dr++ {
		for dc := -2; dc <= 2; dc++ {
			nr, nc := r+dr, c+dc
			if nr < 0 || nr >= g.size || nc < 0 || nc >= g.size {
				continue
			}
			if isReserved(reserved, nr, nc) {
				continue
			}
			g.set(nr, nc, alignmentPattern[dr+2][dc+2])
			reserve(reserved, nr, nc)
		}
	}
}

// formatPositions returns the two coordinate runs holding the 15 format
// bits: one flanking the top-left finder, one split across the bottom-left
// and top-right finders.
func formatPositions(size int) (pos1, pos2 [15][2]int) {
	n := 0
	for c := 0; c < 6; c++ {
		pos1[n] = [2]int{8, c}
		n++
	}
	pos1[n] = [2]int{8, 7}
	pos1[n+1] = [2]int{8, 8}
	pos1[n+2] = [2]int{7, 8}
	n += 3
	for r := 5; r >= 0; r-- {
		pos1[n] = [2]int{r, 8}
		n++
	}

	n = 0
	for i := 0; i < 7; i++ {
		pos2[n] = [2]int{size - 1 - i, 8}
		n++
	}
	for i := 0; i < 8; i++ {
		pos2[n] = [2]int{8, size - 1 - i}
		n++
	}
	return pos1, pos2
}

// writeFormatInfo writes both copies of the 15-bit format string selected by
// maskID and reserves every written cell.
func writeFormatInfo(g *Grid, reserved *bitutil.BitMatrix, maskID int) {
	format := formatInfo[maskID]
	pos1, pos2 := formatPositions(g.size)
	for i := 0; i < 15; i++ {
		bit := byte(format >> uint(14-i) & 1)
		for _, rc := range [2][2]int{pos1[i], pos2[i]} {
			g.set(rc[0], rc[1], bit)
			reserve(reserved, rc[0], rc[1])
		}
	}
}
