// Package sqlbridge executes arbitrary SQL statements against a file-backed
// SQLite database on behalf of an untyped caller. Each call opens its own
// connection, binds parameters positionally, classifies the statement as a
// read or a write, and returns a uniform result envelope. There is no
// pooling, no transaction management and no retry: every failure is
// terminal for that call and reported to the caller.
package sqlbridge

import (
	"database/sql"

	_ "modernc.org/sqlite" // SQLite driver
)

// Execute runs a single statement against the database at path. The
// database file is created if absent. Parameters bind positionally; their
// count must match the statement's placeholders or the engine reports a
// binding error. Exactly one of the read/write halves of the envelope is
// populated depending on the statement kind.
func Execute(path, query string, values []any) (*Envelope, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, stageErr(KindConnection, err)
	}
	defer db.Close()

	// sql.Open is lazy; touch the file now so open failures surface as
	// connection errors rather than as statement failures later.
	if err := db.Ping(); err != nil {
		return nil, stageErr(KindConnection, err)
	}

	args, err := bindArgs(values)
	if err != nil {
		return nil, stageErr(KindBind, err)
	}

	stmt, err := db.Prepare(query)
	if err != nil {
		return nil, stageErr(KindPrepare, err)
	}
	defer stmt.Close()

	if Classify(query) == StatementRead {
		return executeRead(stmt, query, args)
	}
	return executeWrite(db, stmt, args)
}

func executeRead(stmt *sql.Stmt, query string, args []any) (*Envelope, error) {
	rows, err := stmt.Query(args...)
	if err != nil {
		return nil, stageErr(KindExecute, err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, stageErr(KindConvert, err)
	}

	env := &Envelope{Columns: cols, Rows: []Row{}}
	for rows.Next() {
		raw := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range raw {
			ptrs[i] = &raw[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, stageErr(KindConvert, err)
		}

		row := make(Row, len(cols))
		for i, name := range cols {
			row[name] = resultValue(raw[i])
		}
		env.Rows = append(env.Rows, row)
	}
	if err := rows.Err(); err != nil {
		return nil, stageErr(KindConvert, err)
	}

	// A mutation routed here for its RETURNING clause still reports how
	// many rows it touched.
	if !startsWithReadKeyword(query) {
		env.RowsAffected = int64(len(env.Rows))
	}
	return env, nil
}

func executeWrite(db *sql.DB, stmt *sql.Stmt, args []any) (*Envelope, error) {
	res, err := stmt.Exec(args...)
	if err != nil {
		return nil, stageErr(KindExecute, err)
	}

	env := &Envelope{Columns: []string{}, Rows: []Row{}}
	if n, err := res.RowsAffected(); err == nil {
		env.RowsAffected = n
	}
	// Valid even when the statement was not an insert; the value is then
	// stale, mirroring the engine's own semantics.
	if id, err := res.LastInsertId(); err == nil {
		env.LastInsertID = &id
	}
	return env, nil
}
