// Package registry implements the host-facing Native Registry (spec §4.6):
// the flat built-in function table, the module registry, and the
// argument/return marshalling native functions use to talk to a fiber.
package registry

import "embervm/internal/value"

// WriteFunc is the host-provided sink consumed by print/lang.write. A nil
// WriteFunc means output is silently discarded, matching the spec's
// "absence means print/write silently discard output".
type WriteFunc func(s string)

// Host owns the flat built-in table, the named module registry, and the
// host's write hook. It is seeded once at VM startup (NewHost) and may be
// augmented afterwards by registering further modules.
type Host struct {
	builtins *value.Script
	modules  map[string]*value.Script
	order    []string
	write    WriteFunc
}

// NewHost allocates a Host with the built-in table and the lang module
// already populated.
func NewHost() *Host {
	h := &Host{
		builtins: value.NewScript(""),
		modules:  make(map[string]*value.Script),
	}
	registerBuiltins(h)
	registerLangModule(h)
	return h
}

// SetWriteHook installs the host's output sink for print/lang.write.
func (h *Host) SetWriteHook(fn WriteFunc) { h.write = fn }

func (h *Host) write_(s string) {
	if h.write != nil {
		h.write(s)
	}
}

// Builtins returns the anonymous top-level namespace Script.
func (h *Host) Builtins() *value.Script { return h.builtins }

// NewModule implements the host ABI's newModule(vm, name): it fails (as a
// host-contract violation, §7.7) if name is already registered.
func (h *Host) NewModule(name string) *value.Script {
	if _, exists := h.modules[name]; exists {
		value.PanicHost(value.DuplicateModule, "module %q is already registered", name)
	}
	m := value.NewScript(name)
	h.modules[name] = m
	h.order = append(h.order, name)
	return m
}

// Module looks up a previously registered module by name.
func (h *Host) Module(name string) (*value.Script, bool) {
	m, ok := h.modules[name]
	return m, ok
}

// ModuleNames returns registered module names in registration order.
func (h *Host) ModuleNames() []string { return h.order }

// AddFunction implements moduleAddFunction(vm, module, name, callback,
// arity): it fails as a host-contract violation if name already names a
// function or global on module.
func AddFunction(module *value.Script, name string, cb value.NativeCallback, arity int) *value.Function {
	fn := value.NewNativeFunction(name, arity, cb)
	if err := module.AddFunction(name, fn); err != nil {
		value.PanicHost(value.DuplicateBinding, "%v", err)
	}
	return fn
}

// AddGlobal registers a global on module under the same collision rule.
func AddGlobal(module *value.Script, name string, initial value.Value) {
	if err := module.DefineGlobal(name, initial); err != nil {
		value.PanicHost(value.DuplicateBinding, "%v", err)
	}
}

// Call invokes a native function directly against a scratch fiber built
// for exactly this call; it is the synchronous, non-interpreter entry
// point a host (or a test) uses to exercise a registered function.
func Call(fn *value.Function, args []value.Value) (value.Value, value.Value) {
	fiber := value.NewFiber(len(args) + 1)
	base := fiber.PrepareCall(args)
	fn.Native(fiber)
	result := fiber.EndCall(base)
	return result, fiber.Err
}
