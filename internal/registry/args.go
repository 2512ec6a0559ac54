package registry

import "embervm/internal/value"

// Argc returns the active native call's argument count.
func Argc(fiber *value.Fiber) int { return fiber.Argc() }

// GetArg returns the i-th positional argument (1-based) unvalidated, or
// Null if i is out of range.
func GetArg(fiber *value.Fiber, i int) value.Value {
	v, _ := fiber.Arg(i)
	return v
}

// GetArgNumber validates that argument i is numerically coercible,
// setting the fiber's error slot and returning false on mismatch.
func GetArgNumber(fiber *value.Fiber, i int) (float64, bool) {
	v, ok := fiber.Arg(i)
	if !ok {
		return 0, value.Failf(fiber, "Expected a number at argument $.", i)
	}
	n, ok := value.ToNumber(v)
	if !ok {
		return 0, value.Failf(fiber, "Expected a number at argument $.", i)
	}
	return n, true
}

// GetArgBool validates that argument i is a Bool.
func GetArgBool(fiber *value.Fiber, i int) (bool, bool) {
	v, ok := fiber.Arg(i)
	if !ok || !value.IsBool(v) {
		return false, value.Failf(fiber, "Expected a bool at argument $.", i)
	}
	return value.AsBool(v), true
}

// GetArgValue validates that argument i is a heap object of the given
// kind, returning the Value handle itself (the caller then type-asserts
// value.AsObject(v) to the concrete object type it expects).
func GetArgValue(fiber *value.Fiber, i int, kind value.Kind) (value.Value, bool) {
	v, ok := fiber.Arg(i)
	if !ok || !value.IsObjOfKind(v, kind) {
		value.Failf(fiber, "Expected a $ at argument $.", kind.String(), i)
		return value.Null, false
	}
	return v, true
}

// ReturnNull, ReturnBool, ReturnNumber, and ReturnValue forward directly
// to the Fiber's result-slot setters; they exist here so native functions
// written against this package never need to import value's lower-level
// Fiber API just to return a result.
func ReturnNull(fiber *value.Fiber)            { fiber.ReturnNull() }
func ReturnBool(fiber *value.Fiber, b bool)    { fiber.ReturnBool(b) }
func ReturnNumber(fiber *value.Fiber, n float64) { fiber.ReturnNumber(n) }
func ReturnValue(fiber *value.Fiber, v value.Value) { fiber.ReturnValue(v) }
