package registry

import (
	"testing"

	"embervm/internal/value"
)

func TestNewHostSeedsBuiltinsAndLang(t *testing.T) {
	h := NewHost()
	if _, ok := h.Builtins().Function("assert"); !ok {
		t.Errorf("builtins should contain assert")
	}
	lang, ok := h.Module("lang")
	if !ok {
		t.Fatalf("lang module should be registered by NewHost")
	}
	if _, ok := lang.Function("clock"); !ok {
		t.Errorf("lang module should contain clock")
	}
}

func TestNewModuleDuplicateNamePanicsHostError(t *testing.T) {
	h := NewHost()
	h.NewModule("db")

	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected a panic registering a duplicate module")
		}
		herr, ok := r.(*value.HostError)
		if !ok {
			t.Fatalf("expected *value.HostError, got %T", r)
		}
		if herr.Type != value.DuplicateModule {
			t.Errorf("got HostError type %v, want DuplicateModule", herr.Type)
		}
	}()
	h.NewModule("db")
}

func TestAddFunctionDuplicateNamePanicsHostError(t *testing.T) {
	h := NewHost()
	m := h.NewModule("m")
	AddFunction(m, "f", func(fiber *value.Fiber) bool { return true }, 0)

	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected a panic registering a duplicate function")
		}
		if _, ok := r.(*value.HostError); !ok {
			t.Fatalf("expected *value.HostError, got %T", r)
		}
	}()
	AddFunction(m, "f", func(fiber *value.Fiber) bool { return true }, 0)
}

func TestAddGlobalCollidesWithFunctionName(t *testing.T) {
	h := NewHost()
	m := h.NewModule("m")
	AddFunction(m, "f", func(fiber *value.Fiber) bool { return true }, 0)

	defer func() {
		if recover() == nil {
			t.Fatalf("expected a panic defining a global that collides with a function")
		}
	}()
	AddGlobal(m, "f", value.Number(1))
}

func TestModuleNamesPreservesRegistrationOrder(t *testing.T) {
	h := NewHost()
	h.NewModule("aaa")
	h.NewModule("zzz")
	names := h.ModuleNames()
	want := []string{"lang", "aaa", "zzz"}
	if len(names) != len(want) {
		t.Fatalf("got %v, want %v", names, want)
	}
	for i, n := range want {
		if names[i] != n {
			t.Errorf("names[%d] = %q, want %q", i, names[i], n)
		}
	}
}

func TestCallRoundTrip(t *testing.T) {
	h := NewHost()
	m := h.NewModule("m")
	fn := AddFunction(m, "double", func(fiber *value.Fiber) bool {
		n, ok := GetArgNumber(fiber, 1)
		if !ok {
			return false
		}
		ReturnNumber(fiber, n*2)
		return true
	}, 1)

	result, errv := Call(fn, []value.Value{value.Number(21)})
	if !value.IsNull(errv) {
		t.Fatalf("unexpected error: %v", errv)
	}
	if value.AsNumber(result) != 42 {
		t.Errorf("double(21) = %v, want 42", value.AsNumber(result))
	}
}

func TestSetWriteHookFeedsPrint(t *testing.T) {
	h := NewHost()
	var captured string
	h.SetWriteHook(func(s string) { captured += s })

	printFn, _ := h.Builtins().Function("print")
	Call(printFn, []value.Value{value.FromObject(value.NewString("hi"))})
	if captured != "hi\n" {
		t.Errorf("captured = %q, want %q", captured, "hi\n")
	}
}
