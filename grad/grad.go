// Copyright 2026 Slope ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package grad provides reverse-mode automatic differentiation over
// scalar values.
//
// Expressions are built eagerly from leaf values; every operation call
// evaluates its result immediately and records its operands, forming a
// computation graph. Calling Backward on any node populates the
// gradient of every node that contributed to it.
//
// Example:
//
//	import "github.com/slope-ml/slope/grad"
//
//	func main() {
//	    x := grad.New(2.0)
//	    y := grad.New(3.0)
//	    z := x.Mul(y).Add(x) // z = x*y + x
//
//	    z.Backward()
//	    // x.Grad() == 4.0 (= y + 1), y.Grad() == 2.0
//	}
package grad

import (
	"github.com/slope-ml/slope/internal/grad"
)

// Value is one node of a computation graph: a scalar, its gradient, the
// operation that produced it and the operand nodes it consumed.
type Value = grad.Value

// Op identifies one operation of the closed scalar operation set.
type Op = grad.Op

// Supported operations. OpNone marks a leaf node.
const (
	OpNone = grad.OpNone
	OpAdd  = grad.OpAdd
	OpSub  = grad.OpSub
	OpMul  = grad.OpMul
	OpDiv  = grad.OpDiv
	OpNeg  = grad.OpNeg
	OpPow  = grad.OpPow
	OpExp  = grad.OpExp
	OpLog  = grad.OpLog
	OpSin  = grad.OpSin
	OpCos  = grad.OpCos
	OpTan  = grad.OpTan
	OpCot  = grad.OpCot
	OpSinh = grad.OpSinh
	OpCosh = grad.OpCosh
	OpTanh = grad.OpTanh
	OpCoth = grad.OpCoth
)

// ErrDomain reports a forward evaluation outside the mathematical
// domain of its operation (log of non-positive, tan at an asymptote,
// cot or coth at zero).
var ErrDomain = grad.ErrDomain

// ErrCoerce reports an operand that cannot be coerced into a scalar
// graph node.
var ErrCoerce = grad.ErrCoerce

// New creates a leaf node holding the given scalar.
func New(v float64) *Value {
	return grad.New(v)
}

// NewLabeled creates a leaf node with a human-readable label.
//
// Example:
//
//	x := grad.NewLabeled(2.0, "x")
func NewLabeled(v float64, label string) *Value {
	return grad.NewLabeled(v, label)
}

// Lift coerces x into a graph node: a *Value passes through, a numeric
// value becomes a fresh zero-gradient constant leaf, anything else
// fails with ErrCoerce.
func Lift(x any) (*Value, error) {
	return grad.Lift(x)
}

// Walk calls fn exactly once for every node reachable from root along
// operand edges, operands before consumers. This is the enumeration
// contract renderers rely on.
func Walk(root *Value, fn func(*Value)) {
	grad.Walk(root, fn)
}
