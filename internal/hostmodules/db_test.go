package hostmodules

import (
	"testing"

	"embervm/internal/registry"
	"embervm/internal/value"
)

// These tests drive the db module against modernc.org/sqlite's in-memory
// mode, the one driver in the blank-imported set that needs no external
// server or CGO, matching the scenario called out in the expanded spec.

func TestDBOpenQueryExecClose(t *testing.T) {
	h := registry.NewHost()
	db := RegisterDB(h)

	openFn, _ := db.Function("open")
	execFn, _ := db.Function("exec")
	queryFn, _ := db.Function("query")
	closeFn, _ := db.Function("close")

	conn, errv := registry.Call(openFn, []value.Value{
		value.FromObject(value.NewString("sqlite")),
		value.FromObject(value.NewString(":memory:")),
	})
	if !value.IsNull(errv) {
		t.Fatalf("db.open failed: %v", errv)
	}

	_, errv = registry.Call(execFn, []value.Value{
		conn,
		value.FromObject(value.NewString("CREATE TABLE t (id INTEGER, name TEXT)")),
	})
	if !value.IsNull(errv) {
		t.Fatalf("create table failed: %v", errv)
	}

	n, errv := registry.Call(execFn, []value.Value{
		conn,
		value.FromObject(value.NewString("INSERT INTO t (id, name) VALUES (?, ?)")),
		value.Number(1),
		value.FromObject(value.NewString("ada")),
	})
	if !value.IsNull(errv) {
		t.Fatalf("insert failed: %v", errv)
	}
	if value.AsNumber(n) != 1 {
		t.Errorf("rows affected = %v, want 1", value.AsNumber(n))
	}

	rows, errv := registry.Call(queryFn, []value.Value{
		conn,
		value.FromObject(value.NewString("SELECT id, name FROM t WHERE id = ?")),
		value.Number(1),
	})
	if !value.IsNull(errv) {
		t.Fatalf("query failed: %v", errv)
	}
	list := value.AsObject(rows).(*value.List)
	if len(list.Elements) != 1 {
		t.Fatalf("got %d rows, want 1", len(list.Elements))
	}
	row := value.AsObject(list.Elements[0]).(*value.Map)
	nameVal, ok := row.Get(value.FromObject(value.NewString("name")))
	if !ok || value.AsObject(nameVal).(*value.String).Go() != "ada" {
		t.Errorf("row[name] = %v, want \"ada\"", nameVal)
	}

	if _, errv := registry.Call(closeFn, []value.Value{conn}); !value.IsNull(errv) {
		t.Fatalf("db.close failed: %v", errv)
	}
}

func TestDBOpenRejectsUnknownDriver(t *testing.T) {
	h := registry.NewHost()
	db := RegisterDB(h)
	openFn, _ := db.Function("open")

	_, errv := registry.Call(openFn, []value.Value{
		value.FromObject(value.NewString("not-a-real-driver")),
		value.FromObject(value.NewString("dsn")),
	})
	if value.IsNull(errv) {
		t.Fatalf("db.open with an unregistered driver name should error")
	}
}
