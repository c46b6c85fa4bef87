// Package qrgen generates QR code symbols for short byte-mode text at error
// correction level L, restricted to versions 1 (21x21) and 2 (25x25).
package qrgen

import (
	"fmt"
	"strconv"
)

// Version identifies one of the two supported symbol sizes.
type Version int

const (
	Version1 Version = 1 // 21x21 modules, 19 data codewords
	Version2 Version = 2 // 25x25 modules, 34 data codewords
)

// versionInfo holds the fixed configuration for a version at EC level L.
type versionInfo struct {
	size          int // modules per side
	dataCodewords int
	ecCodewords   int
}

var versionTable = [...]versionInfo{
	Version1: {size: 21, dataCodewords: 19, ecCodewords: 7},
	Version2: {size: 25, dataCodewords: 34, ecCodewords: 10},
}

func (v Version) valid() bool { return v == Version1 || v == Version2 }

func (v Version) String() string { return strconv.Itoa(int(v)) }

// Size returns the number of modules per side.
func (v Version) Size() int { return versionTable[v].size }

// DataCodewords returns the data codeword capacity.
func (v Version) DataCodewords() int { return versionTable[v].dataCodewords }

// ECCodewords returns the number of error correction codewords.
func (v Version) ECCodewords() int { return versionTable[v].ecCodewords }

// TotalCodewords returns data plus error correction codeword counts.
func (v Version) TotalCodewords() int {
	return versionTable[v].dataCodewords + versionTable[v].ecCodewords
}

// ChooseVersion selects the smallest version whose data capacity holds
// byteLen payload bytes. It returns ErrEmptyInput for zero-length payloads
// and ErrInputTooLarge when not even Version2 can hold the payload.
func ChooseVersion(byteLen int) (Version, error) {
	if byteLen == 0 {
		return 0, ErrEmptyInput
	}
	for v := Version1; v <= Version2; v++ {
		if byteLen <= v.DataCodewords() {
			return v, nil
		}
	}
	return 0, fmt.Errorf("%w: %d bytes exceed the %d-byte capacity of version %s",
		ErrInputTooLarge, byteLen, Version2.DataCodewords(), Version2)
}
