package hostmodules

import (
	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"embervm/internal/registry"
	"embervm/internal/value"
)

// RegisterUtilBuiltins adds uuid() and human_bytes(n) to the built-in
// (module-less) namespace, the home SPEC_FULL gives google/uuid and
// dustin/go-humanize: both are real entries in the reference go.mod with
// no direct consumer of their own, so they are wired in here rather than
// dropped.
func RegisterUtilBuiltins(h *registry.Host) {
	b := h.Builtins()

	registry.AddFunction(b, "uuid", func(fiber *value.Fiber) bool {
		registry.ReturnValue(fiber, value.FromObject(value.NewString(uuid.NewString())))
		return true
	}, 0)

	registry.AddFunction(b, "human_bytes", func(fiber *value.Fiber) bool {
		n, ok := registry.GetArgNumber(fiber, 1)
		if !ok {
			return false
		}
		registry.ReturnValue(fiber, value.FromObject(value.NewString(humanize.Bytes(uint64(n)))))
		return true
	}, 1)
}
