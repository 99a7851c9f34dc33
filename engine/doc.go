// Package engine exposes rankings to relational analysis through SQLite
// (modernc.org/sqlite, pure Go). It opens databases, registers vector scalar
// SQL functions over embedding BLOBs, and materializes embedding stores and
// ranked result tables as SQL tables so rankings from several queries can be
// joined on word with plain SQL. Use ":memory:" databases for the
// no-persistence analysis flow; writing to a file is the caller's choice.
package engine
