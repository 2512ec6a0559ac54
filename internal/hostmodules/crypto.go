package hostmodules

import (
	"golang.org/x/crypto/bcrypt"

	"embervm/internal/registry"
	"embervm/internal/value"
)

// RegisterCrypto registers the "crypto" module: password hashing built on
// golang.org/x/crypto/bcrypt, a dependency the reference go.mod already
// carried (indirectly) without a direct consumer in the value layer.
func RegisterCrypto(h *registry.Host) *value.Script {
	crypto := h.NewModule("crypto")

	registry.AddFunction(crypto, "hash_password", func(fiber *value.Fiber) bool {
		pw, ok := registry.GetArgValue(fiber, 1, value.KindString)
		if !ok {
			return false
		}
		hash, err := bcrypt.GenerateFromPassword(value.AsObject(pw).(*value.String).Bytes(), bcrypt.DefaultCost)
		if err != nil {
			return value.Failf(fiber, "crypto.hash_password failed: $", err.Error())
		}
		registry.ReturnValue(fiber, value.FromObject(value.NewStringFromBytes(hash)))
		return true
	}, 1)

	registry.AddFunction(crypto, "check_password", func(fiber *value.Fiber) bool {
		pw, ok := registry.GetArgValue(fiber, 1, value.KindString)
		if !ok {
			return false
		}
		hash, ok := registry.GetArgValue(fiber, 2, value.KindString)
		if !ok {
			return false
		}
		err := bcrypt.CompareHashAndPassword(
			value.AsObject(hash).(*value.String).Bytes(),
			value.AsObject(pw).(*value.String).Bytes(),
		)
		registry.ReturnBool(fiber, err == nil)
		return true
	}, 2)

	return crypto
}
