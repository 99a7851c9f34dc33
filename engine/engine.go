package engine

import (
	"database/sql"

	_ "modernc.org/sqlite" // register pure-Go SQLite driver
)

// Open opens a SQLite database using the modernc.org/sqlite driver. Pass
// ":memory:" for a throwaway analysis database or a path for a file-backed
// one.
func Open(dsn string) (*sql.DB, error) { return sql.Open("sqlite", dsn) }
