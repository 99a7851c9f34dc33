package engine

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/embedlab/vecquery/rank"
	"github.com/embedlab/vecquery/store"
	"github.com/embedlab/vecquery/vector"
)

// LoadTable materializes a ranked result table as a SQL table named after
// the table's label, with columns (word TEXT PRIMARY KEY, similarity REAL,
// rank INTEGER). Rankings produced by several queries load side by side and
// join on word:
//
//	SELECT a.word, a.similarity, b.similarity
//	FROM near_good a JOIN near_ok b ON a.word = b.word
//
// The label is sanitized into a SQL identifier; an existing table with the
// same name is replaced.
func LoadTable(ctx context.Context, db *sql.DB, t rank.Table) error {
	if db == nil {
		return fmt.Errorf("engine: db is nil")
	}
	name, err := identifier(t.Label)
	if err != nil {
		return err
	}
	if _, err := db.ExecContext(ctx, fmt.Sprintf(`DROP TABLE IF EXISTS %s`, name)); err != nil {
		return err
	}
	ddl := fmt.Sprintf(`CREATE TABLE %s (word TEXT PRIMARY KEY, similarity REAL, "rank" INTEGER)`, name)
	if _, err := db.ExecContext(ctx, ddl); err != nil {
		return err
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, fmt.Sprintf(`INSERT INTO %s(word, similarity, "rank") VALUES(?, ?, ?)`, name))
	if err != nil {
		return err
	}
	defer stmt.Close()
	for _, r := range t.Results {
		if _, err := stmt.ExecContext(ctx, r.Word, r.Similarity, r.Rank); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// LoadStore materializes the store's vocabulary and embeddings as a SQL
// table (word TEXT PRIMARY KEY, embedding BLOB) so vec_cosine and vec_l2 can
// score arbitrary pairs in SQL. An existing table with the same name is
// replaced.
func LoadStore(ctx context.Context, db *sql.DB, table string, s *store.Store) error {
	if db == nil {
		return fmt.Errorf("engine: db is nil")
	}
	name, err := identifier(table)
	if err != nil {
		return err
	}
	if _, err := db.ExecContext(ctx, fmt.Sprintf(`DROP TABLE IF EXISTS %s`, name)); err != nil {
		return err
	}
	ddl := fmt.Sprintf(`CREATE TABLE %s (word TEXT PRIMARY KEY, embedding BLOB)`, name)
	if _, err := db.ExecContext(ctx, ddl); err != nil {
		return err
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, fmt.Sprintf(`INSERT INTO %s(word, embedding) VALUES(?, ?)`, name))
	if err != nil {
		return err
	}
	defer stmt.Close()
	for i := 0; i < s.Len(); i++ {
		if _, err := stmt.ExecContext(ctx, s.Word(i), vector.Encode(s.Row(i))); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// identifier normalizes a label into a bare SQL identifier. The expression
// operators "+" and "-" spell out as plus and minus so labels that differ
// only by operator map to distinct tables; other runs of non-alphanumeric
// characters collapse to "_". A leading digit gains a "t_" prefix; a label
// with no usable characters fails.
func identifier(label string) (string, error) {
	var parts []string
	var cur strings.Builder
	flush := func() {
		if cur.Len() > 0 {
			parts = append(parts, cur.String())
			cur.Reset()
		}
	}
	for _, r := range label {
		switch {
		case r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9':
			cur.WriteRune(r)
		case r == '+':
			flush()
			parts = append(parts, "plus")
		case r == '-':
			flush()
			parts = append(parts, "minus")
		default:
			flush()
		}
	}
	flush()
	if len(parts) == 0 {
		return "", fmt.Errorf("engine: label %q yields no usable identifier", label)
	}
	name := strings.Join(parts, "_")
	if name[0] >= '0' && name[0] <= '9' {
		name = "t_" + name
	}
	return name, nil
}
