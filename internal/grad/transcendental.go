package grad

import (
	"fmt"
	"math"
)

// Transcendental operation rules: Exp, Log and the trigonometric and
// hyperbolic families. Forward rules for Log, Tan, Cot and Coth report
// ErrDomain exactly where the underlying mathematical function is
// undefined at the given input; the remaining rules are total.

func expForward(in ...float64) (float64, error) {
	return math.Exp(in[0]), nil
}

// d(e^x)/dx = e^x.
func expBackward(g float64, in ...float64) []float64 {
	return []float64{g * math.Exp(in[0])}
}

func logForward(in ...float64) (float64, error) {
	if in[0] <= 0 {
		return 0, fmt.Errorf("Log: %w: ln undefined for %v", ErrDomain, in[0])
	}
	return math.Log(in[0]), nil
}

// d(ln x)/dx = 1/x.
func logBackward(g float64, in ...float64) []float64 {
	return []float64{g / in[0]}
}

func sinForward(in ...float64) (float64, error) {
	return math.Sin(in[0]), nil
}

// d(sin x)/dx = cos x.
func sinBackward(g float64, in ...float64) []float64 {
	return []float64{g * math.Cos(in[0])}
}

func cosForward(in ...float64) (float64, error) {
	return math.Cos(in[0]), nil
}

// d(cos x)/dx = -sin x.
func cosBackward(g float64, in ...float64) []float64 {
	return []float64{-g * math.Sin(in[0])}
}

func tanForward(in ...float64) (float64, error) {
	// tan is undefined where cos(x) = 0. No finite float64 lands exactly
	// on π/2 + kπ, so this only triggers for inputs whose cosine rounds
	// to an exact zero.
	if math.Cos(in[0]) == 0 {
		return 0, fmt.Errorf("Tan: %w: asymptote at %v", ErrDomain, in[0])
	}
	return math.Tan(in[0]), nil
}

// d(tan x)/dx = 1/cos²x.
func tanBackward(g float64, in ...float64) []float64 {
	c := math.Cos(in[0])
	return []float64{g / (c * c)}
}

func cotForward(in ...float64) (float64, error) {
	t := math.Tan(in[0])
	if t == 0 {
		return 0, fmt.Errorf("Cot: %w: cot undefined at %v", ErrDomain, in[0])
	}
	return 1 / t, nil
}

// d(cot x)/dx = -1/sin²x.
func cotBackward(g float64, in ...float64) []float64 {
	s := math.Sin(in[0])
	return []float64{-g / (s * s)}
}

func sinhForward(in ...float64) (float64, error) {
	return math.Sinh(in[0]), nil
}

// d(sinh x)/dx = cosh x.
func sinhBackward(g float64, in ...float64) []float64 {
	return []float64{g * math.Cosh(in[0])}
}

func coshForward(in ...float64) (float64, error) {
	return math.Cosh(in[0]), nil
}

// d(cosh x)/dx = sinh x.
func coshBackward(g float64, in ...float64) []float64 {
	return []float64{g * math.Sinh(in[0])}
}

func tanhForward(in ...float64) (float64, error) {
	return math.Tanh(in[0]), nil
}

// d(tanh x)/dx = 1 - tanh²x.
func tanhBackward(g float64, in ...float64) []float64 {
	t := math.Tanh(in[0])
	return []float64{g * (1 - t*t)}
}

func cothForward(in ...float64) (float64, error) {
	if in[0] == 0 {
		return 0, fmt.Errorf("Coth: %w: coth undefined at 0", ErrDomain)
	}
	return 1 / math.Tanh(in[0]), nil
}

// d(coth x)/dx = -1/sinh²x.
func cothBackward(g float64, in ...float64) []float64 {
	s := math.Sinh(in[0])
	return []float64{-g / (s * s)}
}
