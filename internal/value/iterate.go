package value

// Iterate advances the generic iteration protocol described in §4.5: state
// is Null on the first call and a non-negative Number thereafter. It
// returns the updated state to pass on the next call, the value produced
// (valid only when more is true), and whether a value was produced at all.
//
// Range is the one kind whose iterated value is not simply
// "element[i]" for an opaque index i: the state still holds an integer
// step count, but the yielded value is computed from it (from + i*step).
// The spec's literal halting condition is "value equals to"; this
// implementation instead halts once value has reached-or-passed to, which
// agrees with the spec exactly whenever the endpoints are integers (the
// only case §8 tests) and also terminates correctly for fractional
// endpoints, where repeated +1/-1 stepping may step over `to` without ever
// landing on it exactly.
func Iterate(fiber *Fiber, seq Value, state Value) (next Value, out Value, more bool) {
	i := 0
	if !IsNull(state) {
		n, ok := ToInteger(state)
		if ok {
			i = int(n)
		}
	}

	if !IsObj(seq) {
		return Null, Null, notIterable(fiber, seq)
	}

	switch obj := AsObject(seq).(type) {
	case *String:
		if i >= obj.Len() {
			return Null, Null, false
		}
		return Number(float64(i + 1)), FromObject(NewStringFromBytes([]byte{obj.Bytes()[i]})), true
	case *List:
		if i >= len(obj.Elements) {
			return Null, Null, false
		}
		return Number(float64(i + 1)), obj.Elements[i], true
	case *Map:
		key, nextIdx, ok := obj.IterAt(i)
		if !ok {
			return Null, Null, false
		}
		return Number(float64(nextIdx)), key, true
	case *Range:
		if obj.From == obj.To {
			return Null, Null, false
		}
		var v float64
		if obj.From <= obj.To {
			v = obj.From + float64(i)
			if v >= obj.To {
				return Null, Null, false
			}
		} else {
			v = obj.From - float64(i)
			if v <= obj.To {
				return Null, Null, false
			}
		}
		return Number(float64(i + 1)), Number(v), true
	default:
		Failf(fiber, "$ is not iterable.", TypeName(seq))
		return Null, Null, false
	}
}

func notIterable(fiber *Fiber, v Value) bool {
	switch v.tag {
	case TagNull:
		Failf(fiber, "Null is not iterable.")
	case TagBool:
		Failf(fiber, "Boolean is not iterable.")
	case TagNumber:
		Failf(fiber, "Number is not iterable.")
	default:
		Failf(fiber, "$ is not iterable.", TypeName(v))
	}
	return false
}
