package value

// GetAttrib reads a named attribute off on, dispatching by on's kind.
// Non-objects fail outright: the value layer's attribute/subscript
// surfaces share one error for "this isn't an object at all".
func GetAttrib(fiber *Fiber, on Value, name string) Value {
	if !IsObj(on) {
		Failf(fiber, "$ is not subscriptable.", TypeName(on))
		return Null
	}
	switch obj := AsObject(on).(type) {
	case *String:
		if name == "length" {
			return Number(float64(obj.Len()))
		}
		return noSuchAttribute(fiber, "String", name)
	case *List:
		if name == "length" {
			return Number(float64(len(obj.Elements)))
		}
		return noSuchAttribute(fiber, "List", name)
	case *Map:
		key := FromObject(NewString(name))
		v, ok := obj.Get(key)
		if !ok {
			Failf(fiber, `Key ("$") not exists.`, name)
			return Null
		}
		return v
	case *Range:
		return noSuchAttribute(fiber, "Range", name)
	case *Script:
		if fn, ok := obj.Function(name); ok {
			return FromObject(fn)
		}
		if g, ok := obj.Global(name); ok {
			return g
		}
		return noSuchAttribute(fiber, "Script", name)
	case *Function:
		return noSuchAttribute(fiber, "Function", name)
	case *Fiber:
		return noSuchAttribute(fiber, "Fiber", name)
	case *User:
		return noSuchAttribute(fiber, "User", name)
	default:
		return noSuchAttribute(fiber, TypeName(on), name)
	}
}

// SetAttrib assigns a named attribute on on, dispatching by kind and
// enforcing each kind's immutability rules.
func SetAttrib(fiber *Fiber, on Value, name string, v Value) {
	if !IsObj(on) {
		Failf(fiber, "$ is not subscriptable.", TypeName(on))
		return
	}
	switch obj := AsObject(on).(type) {
	case *String:
		immutableAttribute(fiber, name, "String", "length")
	case *List:
		immutableAttribute(fiber, name, "List", "length")
	case *Map:
		noSuchAttribute(fiber, "Map", name)
	case *Range:
		noSuchAttribute(fiber, "Range", name)
	case *Script:
		if obj.SetGlobal(name, v) {
			return
		}
		if obj.IsFunction(name) {
			Failf(fiber, "'$' attribute is immutable.", name)
			return
		}
		noSuchAttribute(fiber, "Script", name)
	case *Function:
		noSuchAttribute(fiber, "Function", name)
	case *Fiber:
		noSuchAttribute(fiber, "Fiber", name)
	case *User:
		noSuchAttribute(fiber, "User", name)
	default:
		noSuchAttribute(fiber, TypeName(on), name)
	}
}

func noSuchAttribute(fiber *Fiber, kind, name string) Value {
	Failf(fiber, "'$' objects has no attribute named '$'.", kind, name)
	return Null
}

func immutableAttribute(fiber *Fiber, name, kind, onlyReadable string) {
	if name == onlyReadable {
		Failf(fiber, "'$' attribute is immutable.", name)
		return
	}
	noSuchAttribute(fiber, kind, name)
}
