package hostmodules

import (
	"testing"

	"embervm/internal/registry"
	"embervm/internal/value"
)

func TestCryptoHashAndCheckRoundTrip(t *testing.T) {
	h := registry.NewHost()
	crypto := RegisterCrypto(h)

	hashFn, _ := crypto.Function("hash_password")
	checkFn, _ := crypto.Function("check_password")

	pw := value.FromObject(value.NewString("correct horse battery staple"))
	hash, errv := registry.Call(hashFn, []value.Value{pw})
	if !value.IsNull(errv) {
		t.Fatalf("hash_password error: %v", errv)
	}

	ok, errv := registry.Call(checkFn, []value.Value{pw, hash})
	if !value.IsNull(errv) {
		t.Fatalf("check_password error: %v", errv)
	}
	if !value.AsBool(ok) {
		t.Errorf("check_password(pw, hash_password(pw)) should be true")
	}
}

func TestCryptoCheckRejectsWrongPassword(t *testing.T) {
	h := registry.NewHost()
	crypto := RegisterCrypto(h)

	hashFn, _ := crypto.Function("hash_password")
	checkFn, _ := crypto.Function("check_password")

	pw := value.FromObject(value.NewString("right password"))
	wrong := value.FromObject(value.NewString("wrong password"))
	hash, _ := registry.Call(hashFn, []value.Value{pw})

	ok, errv := registry.Call(checkFn, []value.Value{wrong, hash})
	if !value.IsNull(errv) {
		t.Fatalf("check_password error: %v", errv)
	}
	if value.AsBool(ok) {
		t.Errorf("check_password with the wrong password should be false")
	}
}
