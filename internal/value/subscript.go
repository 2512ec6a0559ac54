package value

// GetSubscript implements on[key] for String, List, and Map; every other
// kind reserves subscript access and fails.
func GetSubscript(fiber *Fiber, on, key Value) Value {
	if !IsObj(on) {
		Failf(fiber, "$ is not subscriptable.", TypeName(on))
		return Null
	}
	switch obj := AsObject(on).(type) {
	case *String:
		i, ok := ToInteger(key)
		if !ok {
			Failf(fiber, "String index must be an integer.")
			return Null
		}
		if !IndexInRange(int(i), obj.Len()) {
			Failf(fiber, "String index out of range.")
			return Null
		}
		return FromObject(NewStringFromBytes([]byte{obj.Bytes()[i]}))
	case *List:
		i, ok := ToInteger(key)
		if !ok {
			Failf(fiber, "List index must be an integer.")
			return Null
		}
		if !IndexInRange(int(i), len(obj.Elements)) {
			Failf(fiber, "List index out of range.")
			return Null
		}
		return obj.Elements[i]
	case *Map:
		if !IsHashable(key) {
			Failf(fiber, "Invalid key '@'.", ToString(key))
			return Null
		}
		v, ok := obj.Get(key)
		if !ok {
			Failf(fiber, "Key '@' not exists.", ToString(key))
			return Null
		}
		return v
	default:
		Failf(fiber, "$ is not subscriptable.", TypeName(on))
		return Null
	}
}

// SetSubscript implements on[key] = v.
func SetSubscript(fiber *Fiber, on, key, v Value) {
	if !IsObj(on) {
		Failf(fiber, "$ is not subscriptable.", TypeName(on))
		return
	}
	switch obj := AsObject(on).(type) {
	case *String:
		Failf(fiber, "String objects are immutable.")
	case *List:
		i, ok := ToInteger(key)
		if !ok {
			Failf(fiber, "List index must be an integer.")
			return
		}
		if !IndexInRange(int(i), len(obj.Elements)) {
			Failf(fiber, "List index out of range.")
			return
		}
		obj.Elements[i] = v
	case *Map:
		if !IsHashable(key) {
			Failf(fiber, "$ is not hashable.", TypeName(key))
			return
		}
		obj.Set(key, v)
	default:
		Failf(fiber, "$ is not subscriptable.", TypeName(on))
	}
}
