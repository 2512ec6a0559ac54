package registry

import (
	"testing"
	"time"

	"embervm/internal/value"
)

func TestLangClockIsNonNegativeAndMonotonic(t *testing.T) {
	h := NewHost()
	lang, _ := h.Module("lang")
	clockFn, _ := lang.Function("clock")

	first, _ := Call(clockFn, nil)
	second, _ := Call(clockFn, nil)
	if value.AsNumber(first) < 0 {
		t.Errorf("clock() should never be negative, got %v", value.AsNumber(first))
	}
	if value.AsNumber(second) < value.AsNumber(first) {
		t.Errorf("clock() should not go backwards: %v then %v", value.AsNumber(first), value.AsNumber(second))
	}
}

func TestLangClockDoesNotAdvanceWithWallClockSleep(t *testing.T) {
	h := NewHost()
	lang, _ := h.Module("lang")
	clockFn, _ := lang.Function("clock")

	before, _ := Call(clockFn, nil)
	time.Sleep(200 * time.Millisecond)
	after, _ := Call(clockFn, nil)

	elapsed := value.AsNumber(after) - value.AsNumber(before)
	if elapsed >= 0.1 {
		t.Errorf("clock() advanced by %vs across a 200ms sleep; it should report CPU time, not wall time", elapsed)
	}
}

func TestLangGCReturnsNonNegativeNumber(t *testing.T) {
	h := NewHost()
	lang, _ := h.Module("lang")
	gcFn, _ := lang.Function("gc")

	result, errv := Call(gcFn, nil)
	if !value.IsNull(errv) {
		t.Fatalf("unexpected error: %v", errv)
	}
	if value.AsNumber(result) < 0 {
		t.Errorf("gc() should report a non-negative reclaimed byte count, got %v", value.AsNumber(result))
	}
}

func TestLangWriteFeedsHook(t *testing.T) {
	h := NewHost()
	var captured string
	h.SetWriteHook(func(s string) { captured += s })

	lang, _ := h.Module("lang")
	writeFn, _ := lang.Function("write")
	Call(writeFn, []value.Value{
		value.FromObject(value.NewString("a")),
		value.FromObject(value.NewString("b")),
	})
	if captured != "ab" {
		t.Errorf("captured = %q, want %q", captured, "ab")
	}
}

func TestLangWriteSilentWithoutHook(t *testing.T) {
	h := NewHost()
	lang, _ := h.Module("lang")
	writeFn, _ := lang.Function("write")
	_, errv := Call(writeFn, []value.Value{value.FromObject(value.NewString("x"))})
	if !value.IsNull(errv) {
		t.Errorf("write without a hook should not error, got %v", errv)
	}
}
