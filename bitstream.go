package qrgen

import (
	"fmt"

	"fortio.org/safecast"
	"github.com/JackT-C/qrgen/bitutil"
)

// byteModeIndicator is the 4-bit mode indicator for byte mode, the only
// mode this package emits.
const byteModeIndicator = 0b0100

// Padding bytes appended alternately until the bitstream reaches capacity.
const (
	padByteA = 0xEC
	padByteB = 0x11
)

// buildBitstream assembles the padded data bitstream for payload: mode
// indicator, 8-bit count, payload bytes, terminator, zero padding to a byte
// boundary and alternating fill bytes. The result is byte-aligned and at
// least 8 * DataCodewords bits long; near the capacity limit the mode and
// count header pushes the stream past that minimum, the terminator shrinks
// to nothing and placement later drops the bits that do not fit.
func buildBitstream(payload []byte, v Version) (*bitutil.BitArray, error) {
	count, err := safecast.Convert[uint8](len(payload))
	if err != nil {
		// The 8-bit count field cannot represent the length regardless of
		// raw capacity.
		return nil, fmt.Errorf("%w: %d bytes do not fit the 8-bit count field",
			ErrInputTooLarge, len(payload))
	}

	capacity := v.DataCodewords() * 8
	bits := bitutil.NewBitArray(0)
	bits.AppendBits(byteModeIndicator, 4)
	bits.AppendBits(uint32(count), 8)
	for _, b := range payload {
		bits.AppendBits(uint32(b), 8)
	}
	// Terminator, shortened if there is not enough room left.
	for i := 0; i < 4 && bits.Size() < capacity; i++ {
		bits.AppendBit(false)
	}
	// Zero-pad to a codeword boundary.
	for bits.Size()%8 != 0 {
		bits.AppendBit(false)
	}
	// Alternate fill bytes up to capacity.
	for i := 0; bits.Size() < capacity; i++ {
		if i%2 == 0 {
			bits.AppendBits(padByteA, 8)
		} else {
			bits.AppendBits(padByteB, 8)
		}
	}

	if bits.Size()%8 != 0 || bits.Size() < capacity {
		return nil, fmt.Errorf("%w: bitstream is %d bits, want a whole number of codewords covering %d",
			ErrInternal, bits.Size(), capacity)
	}
	return bits, nil
}

// splitCodewords slices the bitstream into 8-bit data codewords. The stream
// carries at least the version's data codewords and, for payloads at the
// capacity limit, up to two more.
func splitCodewords(bits *bitutil.BitArray, v Version) ([]byte, error) {
	floor := v.DataCodewords() * 8
	if bits.Size()%8 != 0 || bits.Size() < floor {
		return nil, fmt.Errorf("%w: bitstream is %d bits, want a codeword multiple of at least %d for version %s",
			ErrInternal, bits.Size(), floor, v)
	}
	codewords := make([]byte, bits.Size()/8)
	bits.ToBytes(0, codewords, 0, len(codewords))
	return codewords, nil
}

// flattenCodewords expands codewords back into a flat bit sequence, most
// significant bit first, for placement into the grid.
func flattenCodewords(codewords []byte) *bitutil.BitArray {
	bits := bitutil.NewBitArray(0)
	for _, cw := range codewords {
		bits.AppendBits(uint32(cw), 8)
	}
	return bits
}
