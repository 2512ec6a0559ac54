package hostmodules

import (
	"testing"

	"embervm/internal/registry"
	"embervm/internal/value"
)

func TestUUIDProducesCanonicalForm(t *testing.T) {
	h := registry.NewHost()
	RegisterUtilBuiltins(h)

	uuidFn, _ := h.Builtins().Function("uuid")
	result, errv := registry.Call(uuidFn, nil)
	if !value.IsNull(errv) {
		t.Fatalf("unexpected error: %v", errv)
	}
	s := value.AsObject(result).(*value.String).Go()
	if len(s) != 36 {
		t.Errorf("uuid() = %q, want 36 characters", s)
	}

	other, _ := registry.Call(uuidFn, nil)
	if value.AsObject(other).(*value.String).Go() == s {
		t.Errorf("two calls to uuid() should not collide")
	}
}

func TestHumanBytes(t *testing.T) {
	h := registry.NewHost()
	RegisterUtilBuiltins(h)

	fn, _ := h.Builtins().Function("human_bytes")
	result, errv := registry.Call(fn, []value.Value{value.Number(1024)})
	if !value.IsNull(errv) {
		t.Fatalf("unexpected error: %v", errv)
	}
	s := value.AsObject(result).(*value.String).Go()
	if s == "" {
		t.Errorf("human_bytes(1024) should not be empty")
	}
}

func TestHumanBytesRejectsNonNumber(t *testing.T) {
	h := registry.NewHost()
	RegisterUtilBuiltins(h)

	fn, _ := h.Builtins().Function("human_bytes")
	_, errv := registry.Call(fn, []value.Value{value.FromObject(value.NewString("x"))})
	if value.IsNull(errv) {
		t.Fatalf("human_bytes(\"x\") should error")
	}
}
