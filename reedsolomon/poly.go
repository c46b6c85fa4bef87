package reedsolomon

// poly represents a polynomial with coefficients in GF(256), ordered from
// highest degree to lowest. Instances are immutable.
type poly struct {
	field        *GF
	coefficients []int
}

func newPoly(field *GF, coefficients []int) *poly {
	if len(coefficients) == 0 {
		panic("reedsolomon: empty coefficients")
	}
	if len(coefficients) > 1 && coefficients[0] == 0 {
		firstNonZero := 1
		for firstNonZero < len(coefficients) && coefficients[firstNonZero] == 0 {
			firstNonZero++
		}
		if firstNonZero == len(coefficients) {
			coefficients = []int{0}
		} else {
			trimmed := make([]int, len(coefficients)-firstNonZero)
			copy(trimmed, coefficients[firstNonZero:])
			coefficients = trimmed
		}
	}
	return &poly{field: field, coefficients: coefficients}
}

func (p *poly) degree() int {
	return len(p.coefficients) - 1
}

func (p *poly) isZero() bool {
	return p.coefficients[0] == 0
}

// coefficient returns the coefficient of x^degree.
func (p *poly) coefficient(degree int) int {
	return p.coefficients[len(p.coefficients)-1-degree]
}

// evaluateAt evaluates the polynomial at a by Horner's method.
func (p *poly) evaluateAt(a int) int {
	if a == 0 {
		return p.coefficient(0)
	}
	if a == 1 {
		result := 0
		for _, c := range p.coefficients {
			result = addOrSubtract(result, c)
		}
		return result
	}
	result := p.coefficients[0]
	for i := 1; i < len(p.coefficients); i++ {
		result = addOrSubtract(p.field.Multiply(a, result), p.coefficients[i])
	}
	return result
}

func (p *poly) add(other *poly) *poly {
	if p.isZero() {
		return other
	}
	if other.isZero() {
		return p
	}

	smaller := p.coefficients
	larger := other.coefficients
	if len(smaller) > len(larger) {
		smaller, larger = larger, smaller
	}

	sum := make([]int, len(larger))
	lengthDiff := len(larger) - len(smaller)
	copy(sum, larger[:lengthDiff])
	for i := lengthDiff; i < len(larger); i++ {
		sum[i] = addOrSubtract(smaller[i-lengthDiff], larger[i])
	}
	return newPoly(p.field, sum)
}

func (p *poly) multiply(other *poly) *poly {
	if p.isZero() || other.isZero() {
		return newPoly(p.field, []int{0})
	}
	product := make([]int, len(p.coefficients)+len(other.coefficients)-1)
	for i, ac := range p.coefficients {
		for j, bc := range other.coefficients {
			product[i+j] = addOrSubtract(product[i+j], p.field.Multiply(ac, bc))
		}
	}
	return newPoly(p.field, product)
}

// multiplyByMonomial multiplies by coefficient * x^degree.
func (p *poly) multiplyByMonomial(degree, coefficient int) *poly {
	if degree < 0 {
		panic("reedsolomon: negative degree")
	}
	if coefficient == 0 {
		return newPoly(p.field, []int{0})
	}
	product := make([]int, len(p.coefficients)+degree)
	for i, c := range p.coefficients {
		product[i] = p.field.Multiply(c, coefficient)
	}
	return newPoly(p.field, product)
}

// remainder returns the remainder of dividing p by other.
func (p *poly) remainder(other *poly) *poly {
	if other.isZero() {
		panic("reedsolomon: divide by zero")
	}
	rem := p
	leading := other.coefficient(other.degree())
	inverseLeading := p.field.Inverse(leading)
	for rem.degree() >= other.degree() && !rem.isZero() {
		degreeDiff := rem.degree() - other.degree()
		scale := p.field.Multiply(rem.coefficient(rem.degree()), inverseLeading)
		rem = rem.add(other.multiplyByMonomial(degreeDiff, scale))
	}
	return rem
}
