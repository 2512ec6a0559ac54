package hostmodules

import (
	"database/sql"

	_ "github.com/denisenkom/go-mssqldb"
	_ "github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	_ "modernc.org/sqlite"

	"embervm/internal/registry"
	"embervm/internal/value"
)

// RegisterDB registers the "db" module: open/query/exec/close over
// database/sql, with every mainstream driver in the reference go.mod's
// dependency set blank-imported so a script can pick its target by name
// at runtime ("mysql", "postgres", "sqlite3", "sqlite" for the pure-Go
// driver, or "sqlserver").
func RegisterDB(h *registry.Host) *value.Script {
	db := h.NewModule("db")

	registry.AddFunction(db, "open", func(fiber *value.Fiber) bool {
		driver, ok := registry.GetArgValue(fiber, 1, value.KindString)
		if !ok {
			return false
		}
		dsn, ok := registry.GetArgValue(fiber, 2, value.KindString)
		if !ok {
			return false
		}
		conn, err := sql.Open(value.AsObject(driver).(*value.String).Go(), value.AsObject(dsn).(*value.String).Go())
		if err != nil {
			return value.Failf(fiber, "db.open failed: $", err.Error())
		}
		registry.ReturnValue(fiber, value.FromObject(value.NewUser(conn)))
		return true
	}, 2)

	registry.AddFunction(db, "query", func(fiber *value.Fiber) bool {
		conn, ok := dbHandle(fiber, 1)
		if !ok {
			return false
		}
		query, ok := registry.GetArgValue(fiber, 2, value.KindString)
		if !ok {
			return false
		}
		args := make([]interface{}, 0, registry.Argc(fiber)-2)
		for i := 3; i <= registry.Argc(fiber); i++ {
			args = append(args, valueToGo(registry.GetArg(fiber, i)))
		}
		rows, err := conn.Query(value.AsObject(query).(*value.String).Go(), args...)
		if err != nil {
			return value.Failf(fiber, "db.query failed: $", err.Error())
		}
		defer rows.Close()
		cols, err := rows.Columns()
		if err != nil {
			return value.Failf(fiber, "db.query failed: $", err.Error())
		}
		result := make([]value.Value, 0)
		for rows.Next() {
			scanTargets := make([]interface{}, len(cols))
			scanPtrs := make([]interface{}, len(cols))
			for i := range scanTargets {
				scanPtrs[i] = &scanTargets[i]
			}
			if err := rows.Scan(scanPtrs...); err != nil {
				return value.Failf(fiber, "db.query failed: $", err.Error())
			}
			row := value.NewMap()
			for i, col := range cols {
				row.Set(value.FromObject(value.NewString(col)), goToValue(scanTargets[i]))
			}
			result = append(result, value.FromObject(row))
		}
		registry.ReturnValue(fiber, value.FromObject(value.NewList(result)))
		return true
	}, -1)

	registry.AddFunction(db, "exec", func(fiber *value.Fiber) bool {
		conn, ok := dbHandle(fiber, 1)
		if !ok {
			return false
		}
		query, ok := registry.GetArgValue(fiber, 2, value.KindString)
		if !ok {
			return false
		}
		args := make([]interface{}, 0, registry.Argc(fiber)-2)
		for i := 3; i <= registry.Argc(fiber); i++ {
			args = append(args, valueToGo(registry.GetArg(fiber, i)))
		}
		res, err := conn.Exec(value.AsObject(query).(*value.String).Go(), args...)
		if err != nil {
			return value.Failf(fiber, "db.exec failed: $", err.Error())
		}
		n, _ := res.RowsAffected()
		registry.ReturnNumber(fiber, float64(n))
		return true
	}, -1)

	registry.AddFunction(db, "close", func(fiber *value.Fiber) bool {
		conn, ok := dbHandle(fiber, 1)
		if !ok {
			return false
		}
		conn.Close()
		registry.ReturnNull(fiber)
		return true
	}, 1)

	return db
}

func dbHandle(fiber *value.Fiber, i int) (*sql.DB, bool) {
	v, ok := registry.GetArgValue(fiber, i, value.KindUser)
	if !ok {
		return nil, false
	}
	conn, ok := value.AsObject(v).(*value.User).Ptr.(*sql.DB)
	if !ok {
		return nil, value.Failf(fiber, "Expected a db handle at argument $.", i)
	}
	return conn, true
}
