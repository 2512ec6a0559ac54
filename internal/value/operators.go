package value

import "math"

// Add implements '+': numeric addition when the left operand is
// numerically coercible, String+String concatenation, and an explicit
// unsupported-operand error otherwise.
func Add(fiber *Fiber, l, r Value) Value {
	if ln, ok := ToNumber(l); ok {
		rn, ok := ToNumber(r)
		if !ok {
			Failf(fiber, "Right operand must be a numeric value.")
			return Null
		}
		return Number(ln + rn)
	}
	if IsObjOfKind(l, KindString) && IsObjOfKind(r, KindString) {
		ls := AsObject(l).(*String)
		rs := AsObject(r).(*String)
		return FromObject(NewStringFromBytes(append(append([]byte{}, ls.Bytes()...), rs.Bytes()...)))
	}
	return unsupportedOperands(fiber, "+", l, r)
}

// Sub implements '-'.
func Sub(fiber *Fiber, l, r Value) Value {
	return numericOnly(fiber, "-", l, r, func(a, b float64) float64 { return a - b })
}

// Mul implements '*'.
func Mul(fiber *Fiber, l, r Value) Value {
	return numericOnly(fiber, "*", l, r, func(a, b float64) float64 { return a * b })
}

// Div implements '/'. Division follows IEEE-754: dividing by zero yields
// ±Inf (or NaN for 0/0) rather than an error.
func Div(fiber *Fiber, l, r Value) Value {
	return numericOnly(fiber, "/", l, r, func(a, b float64) float64 { return a / b })
}

// Mod implements '%' as floating-point remainder with the sign of the
// dividend (Go's math.Mod already has this property, matching C fmod).
func Mod(fiber *Fiber, l, r Value) Value {
	if IsObjOfKind(l, KindString) {
		// String % args is the formatted-string operator; reserved but not
		// yet defined (spec §4.2). Left unimplemented rather than guessed.
		Failf(fiber, "String formatting via '%' is not implemented.")
		return Null
	}
	return numericOnly(fiber, "%", l, r, math.Mod)
}

func numericOnly(fiber *Fiber, op string, l, r Value, compute func(a, b float64) float64) Value {
	ln, ok := ToNumber(l)
	if !ok {
		return unsupportedOperands(fiber, op, l, r)
	}
	rn, ok := ToNumber(r)
	if !ok {
		Failf(fiber, "Right operand must be a numeric value.")
		return Null
	}
	return Number(compute(ln, rn))
}

func unsupportedOperands(fiber *Fiber, op string, l, r Value) Value {
	Failf(fiber, "Unsupported operand types for '$' $ and $", op, TypeName(l), TypeName(r))
	return Null
}

// Less implements '<'. Only numeric ordering is defined; non-numeric
// ordering is an explicit unimplemented path per the design notes.
func Less(fiber *Fiber, l, r Value) Value {
	return compare(fiber, "<", l, r, func(a, b float64) bool { return a < b })
}

// Greater implements '>'.
func Greater(fiber *Fiber, l, r Value) Value {
	return compare(fiber, ">", l, r, func(a, b float64) bool { return a > b })
}

func compare(fiber *Fiber, op string, l, r Value, cmp func(a, b float64) bool) Value {
	ln, lok := ToNumber(l)
	rn, rok := ToNumber(r)
	if !lok || !rok {
		Failf(fiber, "Ordering with '$' is not implemented for $ and $.", op, TypeName(l), TypeName(r))
		return Null
	}
	return Bool(cmp(ln, rn))
}
