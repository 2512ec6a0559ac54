package value

// String is an immutable byte buffer with a cached hash, matching the
// reference runtime's StringObj (immutable buffer, length, cached hash).
// The hash is computed once at construction; every native that produces a
// transformed String (str_lower, str_upper, ...) allocates a fresh one
// rather than mutating and republishing an existing one.
type String struct {
	data []byte
	hash uint64
}

func (*String) ObjKind() Kind { return KindString }

// NewString allocates a fresh String, computing and caching its hash.
func NewString(s string) *String {
	return &String{data: []byte(s), hash: HashBytes([]byte(s))}
}

// NewStringFromBytes takes ownership of b (callers must not mutate it
// afterwards) and computes its hash.
func NewStringFromBytes(b []byte) *String {
	return &String{data: b, hash: HashBytes(b)}
}

// Bytes returns the immutable backing buffer. Callers must not write to it.
func (s *String) Bytes() []byte { return s.data }

// Go returns the Go string form.
func (s *String) Go() string { return string(s.data) }

// Len returns the byte length (strings are byte-indexed, not code-point
// indexed; see the non-goals).
func (s *String) Len() int { return len(s.data) }

// Hash returns the cached FNV-1a hash.
func (s *String) Hash() uint64 { return s.hash }

// List is a dynamic ordered sequence of Values.
type List struct {
	Elements []Value
}

func (*List) ObjKind() Kind { return KindList }

// NewList allocates a List wrapping elems (taking ownership of the slice).
func NewList(elems []Value) *List {
	return &List{Elements: elems}
}

// Range represents a numeric range [From, To) or (To, From], direction
// determined by the sign of To-From; To is always exclusive.
type Range struct {
	From float64
	To   float64
}

func (*Range) ObjKind() Kind { return KindRange }

// NewRange allocates a Range.
func NewRange(from, to float64) *Range {
	return &Range{From: from, To: to}
}

// NativeCallback is the signature every native (host-provided) function
// implements: it receives the active Fiber (through which it reads
// arguments and writes a return value or an error) and reports whether it
// completed without error. Fiber is defined in fiber.go; the callback
// itself is responsible for calling the Return* setters or SetError.
type NativeCallback func(fiber *Fiber) bool

// Function is either a compiled body (opaque to this package — the
// bytecode compiler/interpreter are external collaborators) or a native
// callback; Native != nil selects the latter. Arity >= 0 is a fixed arg
// count, -1 means variadic.
type Function struct {
	Name   string
	Arity  int
	Native NativeCallback
	// Body is an opaque handle to a compiled function body. This package
	// never inspects it; it exists purely so a Script's function table can
	// hold both native and compiled functions uniformly.
	Body interface{}
}

func (*Function) ObjKind() Kind { return KindFunction }

// NewNativeFunction allocates a Function wrapping a native callback.
func NewNativeFunction(name string, arity int, cb NativeCallback) *Function {
	return &Function{Name: name, Arity: arity, Native: cb}
}

// IsNative reports whether f is backed by a native callback rather than a
// compiled body.
func (f *Function) IsNative() bool { return f.Native != nil }

// User wraps an opaque host-defined pointer. It has no intrinsic
// attributes; the host alone knows how to interpret Ptr.
type User struct {
	Ptr interface{}
}

func (*User) ObjKind() Kind { return KindUser }

// NewUser allocates a User object wrapping an arbitrary host value (for
// example a *sql.DB or the net module's WebSocket connection wrapper).
func NewUser(ptr interface{}) *User {
	return &User{Ptr: ptr}
}
