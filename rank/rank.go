package rank

import (
	"errors"
	"sort"

	"github.com/viant/vec/search"

	"github.com/embedlab/vecquery/store"
)

// ErrEmptyStore is returned when ranking against a store with zero rows.
var ErrEmptyStore = errors.New("rank: empty store")

// Result is one row of a similarity ranking.
type Result struct {
	Word       string
	Similarity float64
	Rank       int
}

// Table is an ordered ranking labelled by the query that produced it. The
// label doubles as the similarity column name when tables from several
// queries are joined on word.
type Table struct {
	Label   string
	Results []Result
}

// Rank scores the query vector against every row of the store and returns
// the ranking in descending similarity order, ties broken by ascending row
// index. When n > 0 the ranking is truncated to the first n rows after
// sorting; n <= 0 means unbounded. Words in exclude are removed from the
// candidate set before scoring; excluded words absent from the vocabulary
// are ignored.
//
// A zero-magnitude query, or a zero-magnitude row, scores 0 against every
// pairing rather than failing. Rank fails with ErrEmptyStore on a store with
// zero rows and with *store.DimensionMismatchError when the query length
// does not match the store dimension.
func Rank(query []float32, s *store.Store, n int, exclude ...string) ([]Result, error) {
	if s.Len() == 0 {
		return nil, ErrEmptyStore
	}
	if len(query) != s.Dimension() {
		return nil, &store.DimensionMismatchError{Want: s.Dimension(), Got: len(query)}
	}

	skip := make(map[int]bool, len(exclude))
	for _, w := range exclude {
		if i, ok := s.Index(w); ok {
			skip[i] = true
		}
	}

	q := search.Float32s(query)
	qm := q.Magnitude()

	type scored struct {
		row int
		sim float64
	}
	scores := make([]scored, 0, s.Len()-len(skip))
	for i := 0; i < s.Len(); i++ {
		if skip[i] {
			continue
		}
		sim := 0.0
		if rm := s.Magnitude(i); qm != 0 && rm != 0 {
			// CosineDistanceWithMagnitudesNeon is the variant exported on
			// every architecture; it picks the vectorized kernel where one
			// exists.
			sim = 1 - float64(q.CosineDistanceWithMagnitudesNeon(s.Row(i), qm, rm))
		}
		scores = append(scores, scored{row: i, sim: sim})
	}

	sort.Slice(scores, func(a, b int) bool {
		if scores[a].sim != scores[b].sim {
			return scores[a].sim > scores[b].sim
		}
		return scores[a].row < scores[b].row
	})
	if n > 0 && n < len(scores) {
		scores = scores[:n]
	}

	out := make([]Result, len(scores))
	for i, sc := range scores {
		out[i] = Result{Word: s.Word(sc.row), Similarity: sc.sim, Rank: i + 1}
	}
	return out, nil
}

// RankTable runs Rank and wraps the result in a labelled Table.
func RankTable(label string, query []float32, s *store.Store, n int, exclude ...string) (Table, error) {
	results, err := Rank(query, s, n, exclude...)
	if err != nil {
		return Table{}, err
	}
	return Table{Label: label, Results: results}, nil
}

// Words returns the ranked words in order.
func (t Table) Words() []string {
	out := make([]string, len(t.Results))
	for i, r := range t.Results {
		out[i] = r.Word
	}
	return out
}

// Similarity reports the similarity of word within the table.
func (t Table) Similarity(word string) (float64, bool) {
	for _, r := range t.Results {
		if r.Word == word {
			return r.Similarity, true
		}
	}
	return 0, false
}
