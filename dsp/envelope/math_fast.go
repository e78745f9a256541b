//go:build fastmath

package envelope

import (
	"math"

	approx "github.com/meko-christian/algo-approx"
)

// mathHypot computes sqrt(p*p + q*q) with a fast square root. The larger
// magnitude is factored out so the squares cannot overflow.
func mathHypot(p, q float64) float64 {
	p, q = math.Abs(p), math.Abs(q)
	if p < q {
		p, q = q, p
	}
	if p == 0 || math.IsInf(p, 0) {
		return p
	}

	r := q / p

	return p * approx.FastSqrt(1+r*r)
}

// mathExp computes e^x using fast approximation. Only coefficient updates
// call it, once per block.
func mathExp(x float64) float64 {
	return approx.FastExp(x)
}
