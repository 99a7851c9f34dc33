package compose

import (
	"sync"

	"github.com/embedlab/vecquery/expr"
	"github.com/embedlab/vecquery/rank"
	"github.com/embedlab/vecquery/store"
)

// Queries maps a label to the expression it ranks. The label becomes the
// Table label of the resulting ranking.
type Queries map[string]expr.Node

// ParseAll parses a label -> expression-text mapping into Queries. It fails
// on the first query that does not parse.
func ParseAll(texts map[string]string) (Queries, error) {
	qs := make(Queries, len(texts))
	for label, text := range texts {
		n, err := expr.Parse(text)
		if err != nil {
			return nil, err
		}
		qs[label] = n
	}
	return qs, nil
}

// Compose evaluates and ranks every query against the store, each truncated
// to n rows (n <= 0 means full vocabulary). Queries are independent and run
// concurrently; the store is never written, so no locking is involved beyond
// collecting results. If any query fails, Compose returns that error and no
// tables: there are no partial results.
func Compose(qs Queries, s *store.Store, n int) (map[string]rank.Table, error) {
	tables := make(map[string]rank.Table, len(qs))
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)
	for label, node := range qs {
		wg.Add(1)
		go func(label string, node expr.Node) {
			defer wg.Done()
			table, err := composeOne(label, node, s, n)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				if firstErr == nil {
					firstErr = err
				}
				return
			}
			tables[label] = table
		}(label, node)
	}
	wg.Wait()
	if firstErr != nil {
		return nil, firstErr
	}
	return tables, nil
}

func composeOne(label string, node expr.Node, s *store.Store, n int) (rank.Table, error) {
	query, err := expr.Evaluate(node, s)
	if err != nil {
		return rank.Table{}, err
	}
	return rank.RankTable(label, query, s, n)
}

// JoinedRow is one row of an inner join across rankings: a word present in
// every joined table, with one similarity per table label.
type JoinedRow struct {
	Word         string
	Similarities map[string]float64
}

// InnerJoin intersects the tables on word. Rows follow the first table's
// ranking order; words missing from any table are dropped. Joining zero
// tables yields nil.
func InnerJoin(tables ...rank.Table) []JoinedRow {
	if len(tables) == 0 {
		return nil
	}
	var out []JoinedRow
	for _, r := range tables[0].Results {
		row := JoinedRow{
			Word:         r.Word,
			Similarities: map[string]float64{tables[0].Label: r.Similarity},
		}
		inAll := true
		for _, t := range tables[1:] {
			sim, ok := t.Similarity(r.Word)
			if !ok {
				inAll = false
				break
			}
			row.Similarities[t.Label] = sim
		}
		if inAll {
			out = append(out, row)
		}
	}
	return out
}
