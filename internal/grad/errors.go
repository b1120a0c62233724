package grad

import "errors"

// ErrDomain reports a forward evaluation whose input falls outside the
// mathematical domain of the function: log of a non-positive number,
// tan at an asymptote, cot or coth at zero. The failing call produces
// no node; graph state built before the call remains valid.
var ErrDomain = errors.New("input outside operation domain")

// ErrCoerce reports an operand that is neither a *Value nor convertible
// to a numeric literal. Surfaced by Lift at construction time.
var ErrCoerce = errors.New("cannot coerce operand to a scalar value")
