package bitutil

import (
	"math/bits"
	"strings"
)

// BitMatrix is a fixed-size square matrix of bits. x is the column position,
// y is the row position; the origin is at the top-left. It is used to track
// which grid cells a construction pass has reserved for function patterns.
type BitMatrix struct {
	dimension int
	rowSize   int
	data      []uint32
}

// NewBitMatrix creates a new square BitMatrix with the given dimension,
// all bits unset.
func NewBitMatrix(dimension int) *BitMatrix {
	if dimension < 1 {
		panic("bitutil: dimension must be greater than 0")
	}
	rowSize := (dimension + 31) / 32
	return &BitMatrix{
		dimension: dimension,
		rowSize:   rowSize,
		data:      make([]uint32, rowSize*dimension),
	}
}

// Dimension returns the number of rows (and columns).
func (bm *BitMatrix) Dimension() int { return bm.dimension }

// Get returns true if the bit at (x, y) is set.
func (bm *BitMatrix) Get(x, y int) bool {
	offset := y*bm.rowSize + x/32
	return (bm.data[offset]>>uint(x&0x1f))&1 != 0
}

// Set sets the bit at (x, y).
func (bm *BitMatrix) Set(x, y int) {
	offset := y*bm.rowSize + x/32
	bm.data[offset] |= 1 << uint(x&0x1f)
}

// Count returns the number of set bits.
func (bm *BitMatrix) Count() int {
	n := 0
	for _, word := range bm.data {
		n += bits.OnesCount32(word)
	}
	return n
}

// String returns a string representation using 'X' for set and '.' for unset.
func (bm *BitMatrix) String() string {
	var sb strings.Builder
	sb.Grow(bm.dimension * (bm.dimension + 1))
	for y := 0; y < bm.dimension; y++ {
		for x := 0; x < bm.dimension; x++ {
			if bm.Get(x, y) {
				sb.WriteByte('X')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
