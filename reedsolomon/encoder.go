package reedsolomon

import "fmt"

// Encoder performs systematic Reed-Solomon encoding over a field. Generator
// polynomials are cached across calls, so one Encoder can serve many blocks.
type Encoder struct {
	field            *GF
	cachedGenerators []*poly
}

// NewEncoder creates a new Encoder for the given field.
func NewEncoder(field *GF) *Encoder {
	e := &Encoder{
		field:            field,
		cachedGenerators: make([]*poly, 1),
	}
	e.cachedGenerators[0] = newPoly(field, []int{1})
	return e
}

func (e *Encoder) buildGenerator(degree int) *poly {
	if degree < len(e.cachedGenerators) {
		return e.cachedGenerators[degree]
	}
	lastGenerator := e.cachedGenerators[len(e.cachedGenerators)-1]
	for d := len(e.cachedGenerators); d <= degree; d++ {
		nextGenerator := lastGenerator.multiply(
			newPoly(e.field, []int{1, e.field.Exp(d - 1)}))
		e.cachedGenerators = append(e.cachedGenerators, nextGenerator)
		lastGenerator = nextGenerator
	}
	return e.cachedGenerators[degree]
}

// Encode computes ecBytes redundancy bytes for data. The data bytes are not
// modified; only the trailing redundancy is returned.
func (e *Encoder) Encode(data []byte, ecBytes int) ([]byte, error) {
	if ecBytes <= 0 {
		return nil, fmt.Errorf("reedsolomon: redundancy count %d must be positive", ecBytes)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("reedsolomon: no data bytes provided")
	}

	generator := e.buildGenerator(ecBytes)
	infoCoefficients := make([]int, len(data))
	for i, b := range data {
		infoCoefficients[i] = int(b)
	}
	info := newPoly(e.field, infoCoefficients)
	info = info.multiplyByMonomial(ecBytes, 1)
	remainder := info.remainder(generator)

	// The remainder may have leading zero coefficients trimmed away.
	ec := make([]byte, ecBytes)
	coefficients := remainder.coefficients
	if remainder.isZero() {
		coefficients = nil
	}
	numZero := ecBytes - len(coefficients)
	for i, c := range coefficients {
		ec[numZero+i] = byte(c)
	}
	return ec, nil
}
