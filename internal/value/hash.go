package value

import "math"

// HashBytes computes the FNV-1a hash used for String caching and Map
// bucketing, the same constants the reference runtime's HashString uses.
func HashBytes(b []byte) uint64 {
	hash := uint64(14695981039346656037)
	for _, c := range b {
		hash ^= uint64(c)
		hash *= 1099511628211
	}
	return hash
}

// IsHashable reports whether a Value may be used as a Map key (invariant
// 3 in the data model: primitives are always hashable; among heap objects
// only String and Range, by identity of endpoints, qualify).
func IsHashable(v Value) bool {
	switch v.tag {
	case TagNull, TagBool, TagNumber:
		return true
	case TagObject:
		switch v.obj.ObjKind() {
		case KindString, KindRange:
			return true
		default:
			return false
		}
	default:
		return false
	}
}

// HashValue returns the hash of a hashable Value. Callers must check
// IsHashable first; behavior on a non-hashable Value is undefined (see
// the built-in hash() function in the registry package for the
// user-facing "Null for non-hashable" contract).
func HashValue(v Value) uint64 {
	switch v.tag {
	case TagNull:
		return 0x9e3779b97f4a7c15
	case TagBool:
		if AsBool(v) {
			return 0x1
		}
		return 0x0
	case TagNumber:
		return hashFloat(v.num)
	case TagObject:
		switch o := v.obj.(type) {
		case *String:
			return o.Hash()
		case *Range:
			return hashFloat(o.From) ^ (hashFloat(o.To) * 31)
		}
	}
	return 0
}

func hashFloat(f float64) uint64 {
	// Reuse the FNV mixing over the IEEE-754 bit pattern, normalizing -0 to
	// 0 first: they compare equal (f == 0 is true for both) but have
	// distinct bit patterns, and ValuesEqual/HashValue must agree.
	if f == 0 {
		f = 0
	}
	bits := math.Float64bits(f)
	b := [8]byte{
		byte(bits), byte(bits >> 8), byte(bits >> 16), byte(bits >> 24),
		byte(bits >> 32), byte(bits >> 40), byte(bits >> 48), byte(bits >> 56),
	}
	return HashBytes(b[:])
}

// ValuesEqual reports structural equality: same tag, then same payload.
// Primitives compare bitwise/by value; String compares by content; Range
// by endpoints; all other object kinds compare by identity. Equality is
// explicitly out of scope for the Operator Engine (spec §4.2) and lives
// here instead, since Map lookup needs it.
func ValuesEqual(a, b Value) bool {
	if a.tag != b.tag {
		// Numbers and bools never cross-compare equal here; the interpreter
		// layer, not this package, owns any looser equality policy.
		return false
	}
	switch a.tag {
	case TagNull, TagUndef:
		return true
	case TagBool:
		return a.num == b.num
	case TagNumber:
		return a.num == b.num
	case TagObject:
		if a.obj.ObjKind() != b.obj.ObjKind() {
			return false
		}
		switch ao := a.obj.(type) {
		case *String:
			bo := b.obj.(*String)
			return ao.Hash() == bo.Hash() && string(ao.data) == string(bo.data)
		case *Range:
			bo := b.obj.(*Range)
			return ao.From == bo.From && ao.To == bo.To
		default:
			return a.obj == b.obj
		}
	}
	return false
}
