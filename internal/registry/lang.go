package registry

import (
	"runtime"
	"syscall"

	"embervm/internal/value"
)

// cpuSeconds reports the host process's total CPU time (user + system)
// consumed so far, via getrusage(RUSAGE_SELF) — wall-clock time elapsed
// during a blocked syscall or a sleep does not count against it, matching
// lang.clock's contract.
func cpuSeconds() float64 {
	var ru syscall.Rusage
	if err := syscall.Getrusage(syscall.RUSAGE_SELF, &ru); err != nil {
		return 0
	}
	user := float64(ru.Utime.Sec) + float64(ru.Utime.Usec)/1e6
	sys := float64(ru.Stime.Sec) + float64(ru.Stime.Usec)/1e6
	return user + sys
}

// registerLangModule registers the single built-in "lang" module: clock,
// gc, and write.
func registerLangModule(h *Host) {
	lang := h.NewModule("lang")

	AddFunction(lang, "clock", func(fiber *value.Fiber) bool {
		ReturnNumber(fiber, cpuSeconds())
		return true
	}, 0)

	AddFunction(lang, "gc", func(fiber *value.Fiber) bool {
		var before, after runtime.MemStats
		runtime.ReadMemStats(&before)
		runtime.GC()
		runtime.ReadMemStats(&after)
		reclaimed := int64(before.HeapAlloc) - int64(after.HeapAlloc)
		if reclaimed < 0 {
			reclaimed = 0
		}
		ReturnNumber(fiber, float64(reclaimed))
		return true
	}, 0)

	AddFunction(lang, "write", func(fiber *value.Fiber) bool {
		n := Argc(fiber)
		for i := 1; i <= n; i++ {
			h.write_(value.ToString(GetArg(fiber, i)).Go())
		}
		ReturnNull(fiber)
		return true
	}, -1)
}
