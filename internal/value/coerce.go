package value

import (
	"fmt"
	"strconv"
	"strings"
)

// ToBool implements the truthiness coercion: Null and false are false, the
// float 0.0 is false, every other Number is true, and every heap object is
// true.
func ToBool(v Value) bool {
	switch v.tag {
	case TagNull:
		return false
	case TagBool:
		return AsBool(v)
	case TagNumber:
		return AsNumber(v) != 0.0
	case TagObject:
		return true
	default:
		return false
	}
}

// ToNumber is the shared numeric coercion rule every arithmetic operator
// uses: it succeeds for Bool (false=0, true=1) and Number, and fails for
// everything else.
func ToNumber(v Value) (float64, bool) {
	switch v.tag {
	case TagBool:
		if AsBool(v) {
			return 1, true
		}
		return 0, true
	case TagNumber:
		return AsNumber(v), true
	default:
		return 0, false
	}
}

// ToInteger is ToNumber followed by the trunc(x)==x integer check.
func ToInteger(v Value) (int64, bool) {
	n, ok := ToNumber(v)
	if !ok {
		return 0, false
	}
	if trunc(n) != n {
		return 0, false
	}
	return int64(n), true
}

// IndexInRange holds iff 0 <= i < n.
func IndexInRange(i, n int) bool {
	return i >= 0 && i < n
}

// ToString produces a freshly allocated String for any Value. String
// values come back unquoted; ToStringQuoted is the form for embedding in a
// diagnostic (string values wrapped in double quotes).
func ToString(v Value) *String {
	return NewString(toGoString(v, false))
}

// ToStringQuoted is ToString with quote=true.
func ToStringQuoted(v Value) *String {
	return NewString(toGoString(v, true))
}

func toGoString(v Value, quote bool) string {
	switch v.tag {
	case TagNull:
		return "null"
	case TagBool:
		if AsBool(v) {
			return "true"
		}
		return "false"
	case TagNumber:
		return formatNumber(AsNumber(v))
	case TagUndef:
		return "<undef>"
	case TagObject:
		return objectToGoString(v.obj, quote)
	default:
		return "<unknown>"
	}
}

func formatNumber(n float64) string {
	if trunc(n) == n && !isSpecialFloat(n) {
		return strconv.FormatFloat(n, 'f', -1, 64)
	}
	return strconv.FormatFloat(n, 'g', -1, 64)
}

func isSpecialFloat(n float64) bool {
	return n != n || n > 1e18 || n < -1e18
}

func objectToGoString(o Object, quote bool) string {
	switch obj := o.(type) {
	case *String:
		if quote {
			return `"` + obj.Go() + `"`
		}
		return obj.Go()
	case *List:
		parts := make([]string, len(obj.Elements))
		for i, e := range obj.Elements {
			parts[i] = toGoString(e, true)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case *Map:
		parts := make([]string, 0, obj.Len())
		for i := 0; i < obj.Cap(); i++ {
			key, next, ok := obj.IterAt(i)
			if !ok {
				break
			}
			i = next - 1
			val, _ := obj.Get(key)
			parts = append(parts, toGoString(key, true)+": "+toGoString(val, true))
		}
		return "{" + strings.Join(parts, ", ") + "}"
	case *Range:
		return fmt.Sprintf("%s..%s", formatNumber(obj.From), formatNumber(obj.To))
	case *Function:
		return fmt.Sprintf("<fn %s>", obj.Name)
	case *Script:
		return fmt.Sprintf("<module %s>", obj.Module.Go())
	case *Fiber:
		return "<fiber>"
	case *User:
		return "<user>"
	default:
		return "<object>"
	}
}

// Failf writes a formatted message into fiber's error slot using the
// format-string facility: '$' interpolates the next argument as a plain
// Go string, '@' interpolates the next argument (a *String) via its Go
// form. Any other rune is copied through literally. It always returns
// false, so call sites can write `return Failf(f, ...)` directly from a
// function whose zero/failure result is false.
func Failf(fiber *Fiber, format string, args ...interface{}) bool {
	var sb strings.Builder
	ai := 0
	next := func() interface{} {
		if ai < len(args) {
			a := args[ai]
			ai++
			return a
		}
		return ""
	}
	for _, r := range format {
		switch r {
		case '$':
			sb.WriteString(fmt.Sprint(next()))
		case '@':
			switch s := next().(type) {
			case *String:
				sb.WriteString(s.Go())
			default:
				sb.WriteString(fmt.Sprint(s))
			}
		default:
			sb.WriteRune(r)
		}
	}
	fiber.SetError(sb.String())
	return false
}
