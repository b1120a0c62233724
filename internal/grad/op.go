// Package grad implements reverse-mode automatic differentiation over
// scalar values.
//
// Expressions are built eagerly: every arithmetic or transcendental call
// evaluates its result immediately and records the operands, forming a
// directed acyclic computation graph of Value nodes. A single Backward
// call on any node then computes the partial derivative of that node with
// respect to every node that contributed to it.
package grad

// Op identifies one operation of the closed scalar operation set.
// The zero value OpNone marks a leaf node (an independent variable or
// a wrapped literal constant).
type Op int

// Supported operations.
const (
	OpNone Op = iota
	OpAdd
	OpSub
	OpMul
	OpDiv
	OpNeg
	OpPow
	OpExp
	OpLog
	OpSin
	OpCos
	OpTan
	OpCot
	OpSinh
	OpCosh
	OpTanh
	OpCoth
)

// opRule describes one operation: how many operands it takes, its display
// symbol, its forward evaluation and its local backward (gradient) rule.
//
// forward evaluates the operation at the given inputs, failing when the
// underlying mathematical function is undefined there. backward receives
// the upstream gradient flowing into the operation's output together with
// the forward-pass input values, and returns one derivative contribution
// per input, in input order.
type opRule struct {
	arity    int
	symbol   string
	forward  func(in ...float64) (float64, error)
	backward func(g float64, in ...float64) []float64
}

var opTable = [...]opRule{
	OpNone: {arity: 0, symbol: ""},
	OpAdd:  {arity: 2, symbol: "+", forward: addForward, backward: addBackward},
	OpSub:  {arity: 2, symbol: "-", forward: subForward, backward: subBackward},
	OpMul:  {arity: 2, symbol: "*", forward: mulForward, backward: mulBackward},
	OpDiv:  {arity: 2, symbol: "/", forward: divForward, backward: divBackward},
	OpNeg:  {arity: 1, symbol: "neg", forward: negForward, backward: negBackward},
	OpPow:  {arity: 2, symbol: "**", forward: powForward, backward: powBackward},
	OpExp:  {arity: 1, symbol: "exp", forward: expForward, backward: expBackward},
	OpLog:  {arity: 1, symbol: "log", forward: logForward, backward: logBackward},
	OpSin:  {arity: 1, symbol: "sin", forward: sinForward, backward: sinBackward},
	OpCos:  {arity: 1, symbol: "cos", forward: cosForward, backward: cosBackward},
	OpTan:  {arity: 1, symbol: "tan", forward: tanForward, backward: tanBackward},
	OpCot:  {arity: 1, symbol: "cot", forward: cotForward, backward: cotBackward},
	OpSinh: {arity: 1, symbol: "sinh", forward: sinhForward, backward: sinhBackward},
	OpCosh: {arity: 1, symbol: "cosh", forward: coshForward, backward: coshBackward},
	OpTanh: {arity: 1, symbol: "tanh", forward: tanhForward, backward: tanhBackward},
	OpCoth: {arity: 1, symbol: "coth", forward: cothForward, backward: cothBackward},
}

// rule returns the rule entry for the operation.
func (op Op) rule() *opRule {
	if op < OpNone || int(op) >= len(opTable) {
		panic("grad: unknown operation")
	}
	return &opTable[op]
}

// Arity returns the number of operands the operation requires.
// OpNone has arity 0.
func (op Op) Arity() int {
	return op.rule().arity
}

// String returns the short display symbol for the operation,
// e.g. "+", "*", "exp", "sin". OpNone renders as the empty string.
func (op Op) String() string {
	return op.rule().symbol
}
