package grad_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/slope-ml/slope/internal/grad"
)

var central = &fd.Settings{Formula: fd.Central}

// checkUnary verifies the analytic gradient of a unary operation against
// a central finite difference at each sample point.
func checkUnary(t *testing.T, name string, build func(*grad.Value) *grad.Value, f func(float64) float64, points []float64) {
	t.Helper()
	for _, x := range points {
		leaf := grad.New(x)
		out := build(leaf)
		out.Backward()

		numerical := fd.Derivative(f, x, central)
		require.True(t, scalar.EqualWithinAbsOrRel(leaf.Grad(), numerical, 1e-6, 1e-6),
			"%s at %v: analytic %v, numerical %v", name, x, leaf.Grad(), numerical)
	}
}

// checkBinary verifies both partial derivatives of a binary operation
// against central finite differences at each sample point pair.
func checkBinary(t *testing.T, name string, build func(a, b *grad.Value) *grad.Value, f func(a, b float64) float64, points [][2]float64) {
	t.Helper()
	for _, p := range points {
		a := grad.New(p[0])
		b := grad.New(p[1])
		out := build(a, b)
		out.Backward()

		da := fd.Derivative(func(x float64) float64 { return f(x, p[1]) }, p[0], central)
		db := fd.Derivative(func(x float64) float64 { return f(p[0], x) }, p[1], central)
		require.True(t, scalar.EqualWithinAbsOrRel(a.Grad(), da, 1e-6, 1e-6),
			"%s at %v: d/da analytic %v, numerical %v", name, p, a.Grad(), da)
		require.True(t, scalar.EqualWithinAbsOrRel(b.Grad(), db, 1e-6, 1e-6),
			"%s at %v: d/db analytic %v, numerical %v", name, p, b.Grad(), db)
	}
}

func TestGradientCheck_Add(t *testing.T) {
	checkBinary(t, "add",
		func(a, b *grad.Value) *grad.Value { return a.Add(b) },
		func(a, b float64) float64 { return a + b },
		[][2]float64{{1, 2}, {-3.5, 0.25}, {0, 0}})
}

func TestGradientCheck_Sub(t *testing.T) {
	checkBinary(t, "sub",
		func(a, b *grad.Value) *grad.Value { return a.Sub(b) },
		func(a, b float64) float64 { return a - b },
		[][2]float64{{1, 2}, {-3.5, 0.25}, {7, -7}})
}

func TestGradientCheck_Mul(t *testing.T) {
	checkBinary(t, "mul",
		func(a, b *grad.Value) *grad.Value { return a.Mul(b) },
		func(a, b float64) float64 { return a * b },
		[][2]float64{{2, 3}, {-1.5, 4}, {0.1, -0.2}})
}

func TestGradientCheck_Div(t *testing.T) {
	checkBinary(t, "div",
		func(a, b *grad.Value) *grad.Value { return a.Div(b) },
		func(a, b float64) float64 { return a / b },
		[][2]float64{{1, 2}, {-3, 0.5}, {7.5, -2.5}})
}

func TestGradientCheck_Pow(t *testing.T) {
	checkBinary(t, "pow",
		func(a, b *grad.Value) *grad.Value { return a.Pow(b) },
		math.Pow,
		[][2]float64{{2, 3}, {1.5, -2}, {3, 0.5}})
}

func TestGradientCheck_Neg(t *testing.T) {
	checkUnary(t, "neg",
		func(v *grad.Value) *grad.Value { return v.Neg() },
		func(x float64) float64 { return -x },
		[]float64{-2, 0, 3.5})
}

func TestGradientCheck_Exp(t *testing.T) {
	checkUnary(t, "exp",
		func(v *grad.Value) *grad.Value { return v.Exp() },
		math.Exp,
		[]float64{-1, 0, 0.5, 2})
}

func TestGradientCheck_Log(t *testing.T) {
	checkUnary(t, "log",
		func(v *grad.Value) *grad.Value {
			out, err := v.Log()
			require.NoError(t, err)
			return out
		},
		math.Log,
		[]float64{0.1, 1, 3, 10})
}

func TestGradientCheck_Sin(t *testing.T) {
	checkUnary(t, "sin",
		func(v *grad.Value) *grad.Value { return v.Sin() },
		math.Sin,
		[]float64{-1.2, 0, math.Pi / 4, 2})
}

func TestGradientCheck_Cos(t *testing.T) {
	checkUnary(t, "cos",
		func(v *grad.Value) *grad.Value { return v.Cos() },
		math.Cos,
		[]float64{-1.2, 0, math.Pi / 4, 2})
}

func TestGradientCheck_Tan(t *testing.T) {
	checkUnary(t, "tan",
		func(v *grad.Value) *grad.Value {
			out, err := v.Tan()
			require.NoError(t, err)
			return out
		},
		math.Tan,
		[]float64{-1, 0.3, 1, 1.4})
}

func TestGradientCheck_Cot(t *testing.T) {
	checkUnary(t, "cot",
		func(v *grad.Value) *grad.Value {
			out, err := v.Cot()
			require.NoError(t, err)
			return out
		},
		func(x float64) float64 { return 1 / math.Tan(x) },
		[]float64{0.3, 1, 2, -1.2})
}

func TestGradientCheck_Sinh(t *testing.T) {
	checkUnary(t, "sinh",
		func(v *grad.Value) *grad.Value { return v.Sinh() },
		math.Sinh,
		[]float64{-2, 0, 0.5, 1.5})
}

func TestGradientCheck_Cosh(t *testing.T) {
	checkUnary(t, "cosh",
		func(v *grad.Value) *grad.Value { return v.Cosh() },
		math.Cosh,
		[]float64{-2, 0, 0.5, 1.5})
}

func TestGradientCheck_Tanh(t *testing.T) {
	checkUnary(t, "tanh",
		func(v *grad.Value) *grad.Value { return v.Tanh() },
		math.Tanh,
		[]float64{-2, 0, 0.5, 1.5})
}

func TestGradientCheck_Coth(t *testing.T) {
	checkUnary(t, "coth",
		func(v *grad.Value) *grad.Value {
			out, err := v.Coth()
			require.NoError(t, err)
			return out
		},
		func(x float64) float64 { return 1 / math.Tanh(x) },
		[]float64{0.5, 1, 2, -1.5})
}

// TestGradientCheck_Composite checks a mixed expression against finite
// differences: f(x, y) = exp(sin(x)) * cosh(y) + log(x + y).
func TestGradientCheck_Composite(t *testing.T) {
	f := func(x, y float64) float64 {
		return math.Exp(math.Sin(x))*math.Cosh(y) + math.Log(x+y)
	}
	build := func(x, y *grad.Value) *grad.Value {
		lhs := x.Sin().Exp().Mul(y.Cosh())
		sum, err := x.Add(y).Log()
		require.NoError(t, err)
		return lhs.Add(sum)
	}
	checkBinary(t, "composite", build, f, [][2]float64{{0.5, 1}, {1.2, 0.3}})
}
