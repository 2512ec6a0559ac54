package value

import "testing"

func TestGetSubscriptString(t *testing.T) {
	fiber := NewFiber(4)
	s := FromObject(NewString("abc"))
	v := GetSubscript(fiber, s, Number(1))
	if fiber.HasError() {
		t.Fatalf("unexpected error: %v", fiber.Err)
	}
	if AsObject(v).(*String).Go() != "b" {
		t.Errorf("\"abc\"[1] = %q, want %q", AsObject(v).(*String).Go(), "b")
	}
}

func TestGetSubscriptStringOutOfRange(t *testing.T) {
	fiber := NewFiber(4)
	s := FromObject(NewString("abc"))
	GetSubscript(fiber, s, Number(9))
	if !fiber.HasError() {
		t.Fatalf("expected an out-of-range error")
	}
}

func TestGetSubscriptListAndSet(t *testing.T) {
	fiber := NewFiber(4)
	l := FromObject(NewList([]Value{Number(1), Number(2), Number(3)}))
	SetSubscript(fiber, l, Number(1), Number(99))
	if fiber.HasError() {
		t.Fatalf("unexpected error: %v", fiber.Err)
	}
	v := GetSubscript(fiber, l, Number(1))
	if AsNumber(v) != 99 {
		t.Errorf("list[1] = %v, want 99", AsNumber(v))
	}
}

func TestGetSubscriptListNonIntegerIndex(t *testing.T) {
	fiber := NewFiber(4)
	l := FromObject(NewList([]Value{Number(1)}))
	GetSubscript(fiber, l, FromObject(NewString("x")))
	if !fiber.HasError() {
		t.Fatalf("expected a non-integer index error")
	}
}

func TestSubscriptMapGetSet(t *testing.T) {
	fiber := NewFiber(4)
	m := FromObject(NewMap())
	key := FromObject(NewString("k"))
	SetSubscript(fiber, m, key, Number(42))
	if fiber.HasError() {
		t.Fatalf("unexpected error: %v", fiber.Err)
	}
	v := GetSubscript(fiber, m, key)
	if AsNumber(v) != 42 {
		t.Errorf("map[k] = %v, want 42", AsNumber(v))
	}
}

func TestSubscriptMapMissingKey(t *testing.T) {
	fiber := NewFiber(4)
	m := FromObject(NewMap())
	GetSubscript(fiber, m, FromObject(NewString("missing")))
	if !fiber.HasError() {
		t.Fatalf("expected a missing-key error")
	}
}

func TestSetSubscriptStringIsImmutable(t *testing.T) {
	fiber := NewFiber(4)
	s := FromObject(NewString("abc"))
	SetSubscript(fiber, s, Number(0), FromObject(NewString("z")))
	if !fiber.HasError() {
		t.Fatalf("expected strings to reject subscript assignment")
	}
}

func TestSetSubscriptMapUnhashableKey(t *testing.T) {
	fiber := NewFiber(4)
	m := FromObject(NewMap())
	SetSubscript(fiber, m, FromObject(NewList(nil)), Number(1))
	if !fiber.HasError() {
		t.Fatalf("expected an unhashable-key error")
	}
}

func TestGetSubscriptNonSubscriptable(t *testing.T) {
	fiber := NewFiber(4)
	GetSubscript(fiber, Number(1), Number(0))
	if !fiber.HasError() {
		t.Fatalf("expected a not-subscriptable error")
	}
}
