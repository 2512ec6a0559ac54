package registry

import (
	"strings"

	"embervm/internal/value"
)

// registerBuiltins seeds the flat, anonymous, top-level namespace: type
// predicates, assert, hash, to_string, print, and the ASCII string
// utilities. These names are reserved; user scripts cannot shadow them
// (enforced by the interpreter, outside this package's concern).
func registerBuiltins(h *Host) {
	b := h.builtins

	predicate := func(name string, check func(value.Value) bool) {
		AddFunction(b, name, func(fiber *value.Fiber) bool {
			v := GetArg(fiber, 1)
			ReturnBool(fiber, check(v))
			return true
		}, 1)
	}

	predicate("is_null", value.IsNull)
	predicate("is_bool", value.IsBool)
	predicate("is_num", value.IsNum)
	predicate("is_string", func(v value.Value) bool { return value.IsObjOfKind(v, value.KindString) })
	predicate("is_list", func(v value.Value) bool { return value.IsObjOfKind(v, value.KindList) })
	predicate("is_map", func(v value.Value) bool { return value.IsObjOfKind(v, value.KindMap) })
	predicate("is_range", func(v value.Value) bool { return value.IsObjOfKind(v, value.KindRange) })
	predicate("is_function", func(v value.Value) bool { return value.IsObjOfKind(v, value.KindFunction) })
	predicate("is_script", func(v value.Value) bool { return value.IsObjOfKind(v, value.KindScript) })
	predicate("is_userobj", func(v value.Value) bool { return value.IsObjOfKind(v, value.KindUser) })

	AddFunction(b, "assert", func(fiber *value.Fiber) bool {
		cond := GetArg(fiber, 1)
		if value.ToBool(cond) {
			ReturnNull(fiber)
			return true
		}
		if Argc(fiber) >= 2 {
			msg := GetArg(fiber, 2)
			return value.Failf(fiber, "Assertion failed: '@'.", value.ToString(msg))
		}
		return value.Failf(fiber, "Assertion failed.")
	}, -1)

	AddFunction(b, "hash", func(fiber *value.Fiber) bool {
		v := GetArg(fiber, 1)
		if !value.IsHashable(v) {
			ReturnNull(fiber)
			return true
		}
		ReturnNumber(fiber, float64(value.HashValue(v)))
		return true
	}, 1)

	AddFunction(b, "to_string", func(fiber *value.Fiber) bool {
		v := GetArg(fiber, 1)
		ReturnValue(fiber, value.FromObject(value.ToString(v)))
		return true
	}, 1)

	AddFunction(b, "print", func(fiber *value.Fiber) bool {
		n := Argc(fiber)
		parts := make([]string, n)
		for i := 1; i <= n; i++ {
			parts[i-1] = value.ToString(GetArg(fiber, i)).Go()
		}
		h.write_(strings.Join(parts, " ") + "\n")
		ReturnNull(fiber)
		return true
	}, -1)

	AddFunction(b, "str_lower", func(fiber *value.Fiber) bool {
		return stringTransform(fiber, asciiLower)
	}, 1)
	AddFunction(b, "str_upper", func(fiber *value.Fiber) bool {
		return stringTransform(fiber, asciiUpper)
	}, 1)
	AddFunction(b, "str_strip", func(fiber *value.Fiber) bool {
		return stringTransform(fiber, asciiStrip)
	}, 1)
}

func stringTransform(fiber *value.Fiber, transform func(string) string) bool {
	v, ok := GetArgValue(fiber, 1, value.KindString)
	if !ok {
		return false
	}
	s := value.AsObject(v).(*value.String)
	ReturnValue(fiber, value.FromObject(value.NewString(transform(s.Go()))))
	return true
}

// asciiLower/asciiUpper/asciiStrip operate byte-wise on ASCII only,
// matching the spec's non-goal of Unicode-aware string handling: strings
// are byte-indexed and these utilities never interpret multi-byte
// sequences.
func asciiLower(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}

func asciiUpper(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'a' && c <= 'z' {
			b[i] = c - ('a' - 'A')
		}
	}
	return string(b)
}

func isASCIISpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\v' || c == '\f'
}

func asciiStrip(s string) string {
	start, end := 0, len(s)
	for start < end && isASCIISpace(s[start]) {
		start++
	}
	for end > start && isASCIISpace(s[end-1]) {
		end--
	}
	return s[start:end]
}
