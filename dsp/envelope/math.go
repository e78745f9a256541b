//go:build !fastmath

package envelope

import "math"

// mathHypot computes sqrt(p*p + q*q) without intermediate overflow.
func mathHypot(p, q float64) float64 {
	return math.Hypot(p, q)
}

// mathExp computes e^x using standard library math.
func mathExp(x float64) float64 {
	return math.Exp(x)
}
