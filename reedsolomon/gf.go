// Package reedsolomon implements systematic Reed-Solomon encoding over the
// Galois field used by QR codes. It is the sole home of finite-field
// arithmetic; the symbol-construction pipeline consumes it as a black box
// mapping data bytes and a redundancy count to redundancy bytes.
package reedsolomon

// GF represents GF(256) under a primitive polynomial.
type GF struct {
	expTable  [256]int
	logTable  [256]int
	primitive int
}

// QRField is GF(256) with the QR code primitive polynomial
// x^8 + x^4 + x^3 + x^2 + 1 and generator base 0.
var QRField = newGF(0x011D)

func newGF(primitive int) *GF {
	gf := &GF{primitive: primitive}
	x := 1
	for i := 0; i < 256; i++ {
		gf.expTable[i] = x
		x *= 2
		if x >= 256 {
			x ^= primitive
			x &= 255
		}
	}
	for i := 0; i < 255; i++ {
		gf.logTable[gf.expTable[i]] = i
	}
	return gf
}

// addOrSubtract computes a XOR b (addition and subtraction coincide in GF(2^n)).
func addOrSubtract(a, b int) int {
	return a ^ b
}

// Exp returns 2^a in this field.
func (gf *GF) Exp(a int) int {
	return gf.expTable[a]
}

// Log returns log2(a) in this field.
func (gf *GF) Log(a int) int {
	if a == 0 {
		panic("reedsolomon: log(0)")
	}
	return gf.logTable[a]
}

// Inverse returns the multiplicative inverse of a.
func (gf *GF) Inverse(a int) int {
	if a == 0 {
		panic("reedsolomon: inverse(0)")
	}
	return gf.expTable[255-gf.logTable[a]]
}

// Multiply returns a * b in this field.
func (gf *GF) Multiply(a, b int) int {
	if a == 0 || b == 0 {
		return 0
	}
	return gf.expTable[(gf.logTable[a]+gf.logTable[b])%255]
}
