package compose

import (
	"errors"
	"testing"

	"github.com/embedlab/vecquery/rank"
	"github.com/embedlab/vecquery/store"
)

func testStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.New(
		[]string{"good", "bad", "ok", "fine"},
		[][]float32{{1, 0}, {-1, 0}, {0.5, 0.5}, {0.9, 0.1}},
	)
	if err != nil {
		t.Fatalf("store.New failed: %v", err)
	}
	return s
}

func TestCompose(t *testing.T) {
	s := testStore(t)
	qs, err := ParseAll(map[string]string{
		"positive": "good",
		"contrast": "good - bad",
	})
	if err != nil {
		t.Fatalf("ParseAll failed: %v", err)
	}
	tables, err := Compose(qs, s, 0)
	if err != nil {
		t.Fatalf("Compose failed: %v", err)
	}
	if len(tables) != 2 {
		t.Fatalf("Compose returned %d tables, want 2", len(tables))
	}
	for label, table := range tables {
		if table.Label != label {
			t.Fatalf("table label %q under key %q", table.Label, label)
		}
		if len(table.Results) != s.Len() {
			t.Fatalf("table %q has %d rows, want %d", label, len(table.Results), s.Len())
		}
	}
	// good and good-bad are parallel vectors, so the rankings agree.
	pos, con := tables["positive"], tables["contrast"]
	for i := range pos.Results {
		if pos.Results[i].Word != con.Results[i].Word {
			t.Fatalf("rankings diverge at %d: %q vs %q", i, pos.Results[i].Word, con.Results[i].Word)
		}
	}
}

func TestComposeFailsWhole(t *testing.T) {
	s := testStore(t)
	qs, err := ParseAll(map[string]string{
		"fine":   "good + ok",
		"broken": "good - xyzzy",
	})
	if err != nil {
		t.Fatalf("ParseAll failed: %v", err)
	}
	tables, err := Compose(qs, s, 0)
	var uw *store.UnknownWordError
	if !errors.As(err, &uw) {
		t.Fatalf("Compose = %v, want UnknownWordError", err)
	}
	if tables != nil {
		t.Fatalf("Compose returned partial tables %v with error", tables)
	}
}

func TestParseAllError(t *testing.T) {
	if _, err := ParseAll(map[string]string{"bad": "good +"}); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestInnerJoin(t *testing.T) {
	a := rank.Table{Label: "a", Results: []rank.Result{
		{Word: "good", Similarity: 0.9, Rank: 1},
		{Word: "ok", Similarity: 0.5, Rank: 2},
		{Word: "bad", Similarity: -0.9, Rank: 3},
	}}
	b := rank.Table{Label: "b", Results: []rank.Result{
		{Word: "ok", Similarity: 0.7, Rank: 1},
		{Word: "good", Similarity: 0.1, Rank: 2},
	}}
	rows := InnerJoin(a, b)
	if len(rows) != 2 {
		t.Fatalf("InnerJoin returned %d rows, want 2", len(rows))
	}
	// Rows follow table a's order.
	if rows[0].Word != "good" || rows[1].Word != "ok" {
		t.Fatalf("join order = [%s %s], want [good ok]", rows[0].Word, rows[1].Word)
	}
	if rows[0].Similarities["a"] != 0.9 || rows[0].Similarities["b"] != 0.1 {
		t.Fatalf("join similarities for good = %v", rows[0].Similarities)
	}

	if got := InnerJoin(); got != nil {
		t.Fatalf("InnerJoin() = %v, want nil", got)
	}
}

func TestComposeTopNJoin(t *testing.T) {
	// The canonical pattern: restrict one query's top-N vocabulary by
	// another query's full ranking.
	s := testStore(t)
	qs, err := ParseAll(map[string]string{
		"near_good": "good",
		"near_ok":   "ok",
	})
	if err != nil {
		t.Fatalf("ParseAll failed: %v", err)
	}
	topTables, err := Compose(Queries{"near_good": qs["near_good"]}, s, 2)
	if err != nil {
		t.Fatalf("Compose(top) failed: %v", err)
	}
	fullTables, err := Compose(Queries{"near_ok": qs["near_ok"]}, s, 0)
	if err != nil {
		t.Fatalf("Compose(full) failed: %v", err)
	}
	rows := InnerJoin(topTables["near_good"], fullTables["near_ok"])
	if len(rows) != 2 {
		t.Fatalf("join returned %d rows, want 2", len(rows))
	}
	for _, row := range rows {
		if _, ok := row.Similarities["near_ok"]; !ok {
			t.Fatalf("row %q missing near_ok similarity", row.Word)
		}
	}
}
