// Package hostmodules registers the domain modules (db, net, crypto) that
// exercise the reference stack's third-party surface through the ordinary
// Native Registry contract (spec §4.6, widened by SPEC_FULL §4.7). None of
// these modules have any special status: they call registry.AddFunction
// exactly as the lang module does, and a duplicate name inside any of them
// is a host-contract violation like any other.
package hostmodules

import (
	"fmt"

	"embervm/internal/value"
)

// valueToGo converts a Value into a driver-friendly Go value for use as a
// SQL query argument.
func valueToGo(v value.Value) interface{} {
	switch {
	case value.IsNull(v):
		return nil
	case value.IsBool(v):
		return value.AsBool(v)
	case value.IsNum(v):
		return value.AsNumber(v)
	case value.IsObjOfKind(v, value.KindString):
		return value.AsObject(v).(*value.String).Go()
	default:
		return value.ToString(v).Go()
	}
}

// goToValue converts a driver-returned Go value (as produced by
// sql.Rows.Scan into an interface{} target) back into a Value.
func goToValue(g interface{}) value.Value {
	switch t := g.(type) {
	case nil:
		return value.Null
	case bool:
		return value.Bool(t)
	case int64:
		return value.Number(float64(t))
	case float64:
		return value.Number(t)
	case []byte:
		return value.FromObject(value.NewString(string(t)))
	case string:
		return value.FromObject(value.NewString(t))
	default:
		return value.FromObject(value.NewString(fmt.Sprint(t)))
	}
}
