// Command embervm is a minimal demo host standing in for the bytecode
// compiler/interpreter this repository does not implement (see spec §1,
// "out of scope"). It wires up a Host, registers the built-in table, the
// lang module, and the db/net/crypto domain modules, then drives a short
// hand-built sequence of operator and native calls end to end — the way a
// generated bytecode interpreter would, minus the bytecode.
package main

import (
	"flag"
	"fmt"
	"os"

	"embervm/internal/errors"
	"embervm/internal/hostmodules"
	"embervm/internal/registry"
	"embervm/internal/value"
)

func main() {
	verbose := flag.Bool("v", false, "print each step before running it")
	flag.Parse()

	host := registry.NewHost()
	host.SetWriteHook(func(s string) { fmt.Print(s) })
	hostmodules.RegisterDB(host)
	hostmodules.RegisterNet(host)
	hostmodules.RegisterCrypto(host)
	hostmodules.RegisterUtilBuiltins(host)

	step := func(name string, fn func()) {
		if *verbose {
			fmt.Fprintf(os.Stderr, "-- %s\n", name)
		}
		fn()
	}

	step("arithmetic coercion", demoArithmetic)
	step("list indexing", demoList)
	step("map iteration", demoMap)
	step("range iteration", demoRange)
	step("built-ins", func() { demoBuiltins(host) })
	step("crypto module", func() { demoCrypto(host) })
	step("host-contract violation", func() { demoHostFault(host) })
}

// demoHostFault shows the one path in this tree that never touches a
// fiber's error slot: registering the same module name twice is an
// embedder bug, so NewModule panics a *value.HostError instead of failing
// gracefully. A host recovers it like any other panic and reports it
// through the same Diagnostic type as a fiber error.
func demoHostFault(host *registry.Host) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		herr, ok := r.(*value.HostError)
		if !ok {
			panic(r)
		}
		diag := errors.NewHostDiagnostic(herr.Message).PushFrame("", "newModule")
		fmt.Printf("db re-registration -> %s", diag.Error())
	}()
	host.NewModule("db")
}

func demoArithmetic() {
	fiber := value.NewFiber(8)
	result := value.Add(fiber, value.Bool(true), value.Number(2.5))
	fmt.Printf("true + 2.5 = %s\n", value.ToString(result).Go())

	fiber = value.NewFiber(8)
	left := value.FromObject(value.NewString("foo"))
	right := value.FromObject(value.NewString("bar"))
	concat := value.Add(fiber, left, right)
	fmt.Printf("\"foo\" + \"bar\" = %s\n", value.ToString(concat).Go())

	fiber = value.NewFiber(8)
	value.Add(fiber, left, value.Number(1))
	if fiber.HasError() {
		diag := errors.NewValueDiagnostic(value.AsObject(fiber.Err).(*value.String).Go()).
			PushFrame("", "+")
		fmt.Printf("\"foo\" + 1 -> %s", diag.Error())
	}
}

func demoList() {
	fiber := value.NewFiber(8)
	list := value.FromObject(value.NewList([]value.Value{value.Number(10), value.Number(20), value.Number(30)}))
	value.SetSubscript(fiber, list, value.Number(0), value.Number(99))
	v := value.GetSubscript(fiber, list, value.Number(0))
	fmt.Printf("list[0] after assignment = %s\n", value.ToString(v).Go())
}

func demoMap() {
	fiber := value.NewFiber(8)
	m := value.NewMap()
	m.Set(value.FromObject(value.NewString("a")), value.Number(1))
	m.Set(value.FromObject(value.NewString("b")), value.Number(2))
	mv := value.FromObject(m)

	state := value.Null
	keys := []string{}
	for {
		next, out, more := value.Iterate(fiber, mv, state)
		if !more {
			break
		}
		keys = append(keys, value.ToString(out).Go())
		state = next
	}
	fmt.Printf("map keys in slot order: %v\n", keys)
}

func demoRange() {
	fiber := value.NewFiber(8)
	r := value.FromObject(value.NewRange(3, 0))
	state := value.Null
	values := []float64{}
	for {
		next, out, more := value.Iterate(fiber, r, state)
		if !more {
			break
		}
		values = append(values, value.AsNumber(out))
		state = next
	}
	fmt.Printf("range 3..0 = %v\n", values)
}

func demoBuiltins(host *registry.Host) {
	assertFn, _ := host.Builtins().Function("assert")
	_, errv := registry.Call(assertFn, []value.Value{value.Bool(true)})
	fmt.Printf("assert(true) error slot = %s\n", value.ToString(errv).Go())

	uuidFn, _ := host.Builtins().Function("uuid")
	id, _ := registry.Call(uuidFn, nil)
	fmt.Printf("uuid() = %s\n", value.ToString(id).Go())
}

func demoCrypto(host *registry.Host) {
	crypto, _ := host.Module("crypto")
	hashFn, _ := crypto.Function("hash_password")
	checkFn, _ := crypto.Function("check_password")

	pw := value.FromObject(value.NewString("correct horse battery staple"))
	hash, _ := registry.Call(hashFn, []value.Value{pw})
	ok, _ := registry.Call(checkFn, []value.Value{pw, hash})
	fmt.Printf("check_password(pw, hash_password(pw)) = %s\n", value.ToString(ok).Go())
}
