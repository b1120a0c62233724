package grad

import "math"

// Arithmetic operation rules: Add, Sub, Mul, Div, Neg, Pow.
//
// Each backward rule receives the upstream gradient g and the forward-pass
// input values, and returns the local-derivative contributions in input
// order (chain rule: contribution = g * d(output)/d(input)).

func addForward(in ...float64) (float64, error) {
	return in[0] + in[1], nil
}

// d(a+b)/da = 1, d(a+b)/db = 1: the gradient flows equally to both inputs.
func addBackward(g float64, in ...float64) []float64 {
	return []float64{g, g}
}

func subForward(in ...float64) (float64, error) {
	return in[0] - in[1], nil
}

// d(a-b)/da = 1, d(a-b)/db = -1.
func subBackward(g float64, in ...float64) []float64 {
	return []float64{g, -g}
}

func mulForward(in ...float64) (float64, error) {
	return in[0] * in[1], nil
}

// d(a*b)/da = b, d(a*b)/db = a.
func mulBackward(g float64, in ...float64) []float64 {
	return []float64{g * in[1], g * in[0]}
}

func divForward(in ...float64) (float64, error) {
	// Division by zero follows IEEE-754: the quotient is ±Inf or NaN and
	// propagates through downstream arithmetic rather than failing here.
	return in[0] / in[1], nil
}

// d(a/b)/da = 1/b, d(a/b)/db = -a/b².
func divBackward(g float64, in ...float64) []float64 {
	a, b := in[0], in[1]
	return []float64{g / b, -g * a / (b * b)}
}

func negForward(in ...float64) (float64, error) {
	return -in[0], nil
}

func negBackward(g float64, in ...float64) []float64 {
	return []float64{-g}
}

func powForward(in ...float64) (float64, error) {
	return math.Pow(in[0], in[1]), nil
}

// d(a**b)/da = b * a**(b-1).
// d(a**b)/db = a**b * ln(a) when a > 0, and 0 otherwise: ln is undefined
// for non-positive bases, so the exponent branch contributes no gradient
// there. Callers differentiating the exponent against a non-positive base
// get an exact zero for that branch.
func powBackward(g float64, in ...float64) []float64 {
	a, b := in[0], in[1]
	da := g * b * math.Pow(a, b-1)
	db := 0.0
	if a > 0 {
		db = g * math.Pow(a, b) * math.Log(a)
	}
	return []float64{da, db}
}
