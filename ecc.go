package qrgen

import (
	"fmt"

	"github.com/JackT-C/qrgen/reedsolomon"
)

// addErrorCorrection asks the Reed-Solomon encoder for the version's
// redundancy bytes and returns the full codeword sequence: data codewords
// followed by error correction codewords.
func addErrorCorrection(data []byte, v Version) ([]byte, error) {
	if len(data) < v.DataCodewords() {
		return nil, fmt.Errorf("%w: %d data codewords, want at least %d for version %s",
			ErrInternal, len(data), v.DataCodewords(), v)
	}

	enc := reedsolomon.NewEncoder(reedsolomon.QRField)
	ec, err := enc.Encode(data, v.ECCodewords())
	if err != nil {
		return nil, fmt.Errorf("%w: reed-solomon: %v", ErrInternal, err)
	}
	if len(ec) != v.ECCodewords() {
		return nil, fmt.Errorf("%w: got %d error correction codewords, want %d",
			ErrInternal, len(ec), v.ECCodewords())
	}

	full := make([]byte, 0, v.TotalCodewords())
	full = append(full, data...)
	full = append(full, ec...)
	return full, nil
}
