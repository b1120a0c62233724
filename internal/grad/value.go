package grad

import (
	"fmt"
	"strings"
)

// Value is one node of a computation graph: a scalar result, the
// operation that produced it and references to the operand nodes the
// operation consumed. A Value with no producing operation is a leaf
// (an independent variable or a wrapped literal constant).
//
// The scalar result, producing operation and operand references are
// frozen at construction; only the gradient and the label mutate
// afterwards. A node may be consumed as an operand by any number of
// downstream nodes — the graph is a DAG, shared rather than owned.
//
// Values are not safe for concurrent use: Backward writes the gradient
// field of every reachable node, so concurrent backward passes over
// graphs sharing ancestors must be serialized by the caller.
type Value struct {
	val      float64
	grad     float64
	op       Op
	operands []*Value
	label    string
}

// New creates a leaf node holding the given scalar.
func New(v float64) *Value {
	return &Value{val: v}
}

// NewLabeled creates a leaf node with a human-readable label, used by
// renderers in place of the numeric value.
func NewLabeled(v float64, label string) *Value {
	return &Value{val: v, label: label}
}

// Lift coerces x into a graph node. It is the single coercion entry
// point: a *Value passes through unchanged, any Go numeric value is
// wrapped into a fresh zero-gradient leaf, and anything else fails
// with ErrCoerce.
func Lift(x any) (*Value, error) {
	switch v := x.(type) {
	case *Value:
		return v, nil
	case float64:
		return New(v), nil
	case float32:
		return New(float64(v)), nil
	case int:
		return New(float64(v)), nil
	case int8:
		return New(float64(v)), nil
	case int16:
		return New(float64(v)), nil
	case int32:
		return New(float64(v)), nil
	case int64:
		return New(float64(v)), nil
	case uint:
		return New(float64(v)), nil
	case uint8:
		return New(float64(v)), nil
	case uint16:
		return New(float64(v)), nil
	case uint32:
		return New(float64(v)), nil
	case uint64:
		return New(float64(v)), nil
	default:
		return nil, fmt.Errorf("Lift: %w: %T", ErrCoerce, x)
	}
}

// apply evaluates op at the operands' values and builds the resulting
// node. Construction is eager: the forward rule runs here, and a domain
// failure produces no node.
func apply(op Op, operands ...*Value) (*Value, error) {
	in := make([]float64, len(operands))
	for i, o := range operands {
		in[i] = o.val
	}
	out, err := op.rule().forward(in...)
	if err != nil {
		return nil, err
	}
	return &Value{val: out, op: op, operands: operands}, nil
}

// mustApply builds a node for an operation whose forward rule is total.
func mustApply(op Op, operands ...*Value) *Value {
	v, err := apply(op, operands...)
	if err != nil {
		panic("grad: " + err.Error())
	}
	return v
}

// liftFloat wraps a literal operand through the coercion entry point.
// The float64 arm of Lift is total.
func liftFloat(c float64) *Value {
	v, err := Lift(c)
	if err != nil {
		panic("grad: " + err.Error())
	}
	return v
}

// Float returns the scalar result computed at construction time.
func (v *Value) Float() float64 { return v.val }

// Grad returns the accumulated gradient ∂root/∂v populated by the most
// recent Backward call on a root reachable from v. Zero before any
// backward pass.
func (v *Value) Grad() float64 { return v.grad }

// Op returns the producing operation, or OpNone for a leaf.
func (v *Value) Op() Op { return v.op }

// IsLeaf reports whether v has no producing operation.
func (v *Value) IsLeaf() bool { return v.op == OpNone }

// Operands returns the operand nodes consumed by the producing
// operation, in input order. The returned slice is shared with the
// node and must not be modified.
func (v *Value) Operands() []*Value { return v.operands }

// Label returns the human-readable label, or "" if none was assigned.
func (v *Value) Label() string { return v.label }

// SetLabel assigns a human-readable label post hoc.
func (v *Value) SetLabel(label string) { v.label = label }

// String returns the diagnostic display form of the node, e.g.
//
//	Value(value=8, grad=4, op=+, label='z')
func (v *Value) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Value(value=%v, grad=%v", v.val, v.grad)
	if v.op != OpNone {
		fmt.Fprintf(&b, ", op=%s", v.op)
	}
	if v.label != "" {
		fmt.Fprintf(&b, ", label=%q", v.label)
	}
	b.WriteString(")")
	return b.String()
}

// Add returns a new node computing v + other.
func (v *Value) Add(other *Value) *Value { return mustApply(OpAdd, v, other) }

// AddFloat returns a new node computing v + c, wrapping c into a
// constant leaf.
func (v *Value) AddFloat(c float64) *Value { return v.Add(liftFloat(c)) }

// Sub returns a new node computing v - other.
func (v *Value) Sub(other *Value) *Value { return mustApply(OpSub, v, other) }

// SubFloat returns a new node computing v - c.
func (v *Value) SubFloat(c float64) *Value { return v.Sub(liftFloat(c)) }

// RSubFloat returns a new node computing c - v.
func (v *Value) RSubFloat(c float64) *Value { return liftFloat(c).Sub(v) }

// Mul returns a new node computing v * other.
func (v *Value) Mul(other *Value) *Value { return mustApply(OpMul, v, other) }

// MulFloat returns a new node computing v * c.
func (v *Value) MulFloat(c float64) *Value { return v.Mul(liftFloat(c)) }

// Div returns a new node computing v / other.
func (v *Value) Div(other *Value) *Value { return mustApply(OpDiv, v, other) }

// DivFloat returns a new node computing v / c.
func (v *Value) DivFloat(c float64) *Value { return v.Div(liftFloat(c)) }

// RDivFloat returns a new node computing c / v.
func (v *Value) RDivFloat(c float64) *Value { return liftFloat(c).Div(v) }

// Neg returns a new node computing -v.
func (v *Value) Neg() *Value { return mustApply(OpNeg, v) }

// Pow returns a new node computing v ** other.
func (v *Value) Pow(other *Value) *Value { return mustApply(OpPow, v, other) }

// PowFloat returns a new node computing v ** c.
func (v *Value) PowFloat(c float64) *Value { return v.Pow(liftFloat(c)) }

// RPowFloat returns a new node computing c ** v.
func (v *Value) RPowFloat(c float64) *Value { return liftFloat(c).Pow(v) }

// Exp returns a new node computing e ** v.
func (v *Value) Exp() *Value { return mustApply(OpExp, v) }

// Log returns a new node computing ln(v). It fails with ErrDomain for
// non-positive v, producing no node.
func (v *Value) Log() (*Value, error) { return apply(OpLog, v) }

// Sin returns a new node computing sin(v).
func (v *Value) Sin() *Value { return mustApply(OpSin, v) }

// Cos returns a new node computing cos(v).
func (v *Value) Cos() *Value { return mustApply(OpCos, v) }

// Tan returns a new node computing tan(v). It fails with ErrDomain at
// the asymptotes of tan.
func (v *Value) Tan() (*Value, error) { return apply(OpTan, v) }

// Cot returns a new node computing cot(v). It fails with ErrDomain
// where tan(v) is zero.
func (v *Value) Cot() (*Value, error) { return apply(OpCot, v) }

// Sinh returns a new node computing sinh(v).
func (v *Value) Sinh() *Value { return mustApply(OpSinh, v) }

// Cosh returns a new node computing cosh(v).
func (v *Value) Cosh() *Value { return mustApply(OpCosh, v) }

// Tanh returns a new node computing tanh(v).
func (v *Value) Tanh() *Value { return mustApply(OpTanh, v) }

// Coth returns a new node computing coth(v). It fails with ErrDomain
// at zero.
func (v *Value) Coth() (*Value, error) { return apply(OpCoth, v) }
