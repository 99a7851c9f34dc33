package store

import (
	"fmt"

	"github.com/viant/vec/search"
)

// Store is an immutable embedding matrix with a word -> row index. Row order
// is the insertion order of the supplied model; indices are stable for the
// lifetime of the store.
type Store struct {
	words   []string
	index   map[string]int
	vectors [][]float32
	mags    []float32
	dim     int
}

// New builds a Store from parallel slices of words and embedding rows. The
// input is copied; the caller may reuse its slices afterwards. All rows must
// share one dimension and every word must be non-empty and unique. An empty
// model (zero rows) is valid.
func New(words []string, vectors [][]float32) (*Store, error) {
	if len(words) != len(vectors) {
		return nil, fmt.Errorf("store: words and vectors length mismatch: %d != %d", len(words), len(vectors))
	}
	s := &Store{
		index: make(map[string]int, len(words)),
	}
	if len(words) == 0 {
		return s, nil
	}
	s.dim = len(vectors[0])
	if s.dim == 0 {
		return nil, fmt.Errorf("store: zero-dimension embedding rows")
	}
	s.words = make([]string, len(words))
	s.vectors = make([][]float32, len(vectors))
	s.mags = make([]float32, len(vectors))
	for i, w := range words {
		if w == "" {
			return nil, fmt.Errorf("store: empty word at row %d", i)
		}
		if _, dup := s.index[w]; dup {
			return nil, fmt.Errorf("store: duplicate word %q", w)
		}
		if len(vectors[i]) != s.dim {
			return nil, &DimensionMismatchError{Want: s.dim, Got: len(vectors[i])}
		}
		row := append([]float32(nil), vectors[i]...)
		s.words[i] = w
		s.vectors[i] = row
		s.mags[i] = search.Float32s(row).Magnitude()
		s.index[w] = i
	}
	return s, nil
}

// Dimension returns the embedding dimension, 0 for an empty store.
func (s *Store) Dimension() int { return s.dim }

// Len returns the number of rows.
func (s *Store) Len() int { return len(s.vectors) }

// Words returns a copy of the vocabulary in row order.
func (s *Store) Words() []string { return append([]string(nil), s.words...) }

// Word returns the word at row i.
func (s *Store) Word(i int) string { return s.words[i] }

// Row returns the embedding at row i without copying. The returned slice is
// shared with the store and must not be modified; use Vector for an owned
// copy.
func (s *Store) Row(i int) []float32 { return s.vectors[i] }

// Magnitude returns the precomputed L2 magnitude of row i.
func (s *Store) Magnitude(i int) float32 { return s.mags[i] }

// Index returns the row index of word, if present.
func (s *Store) Index(word string) (int, bool) {
	i, ok := s.index[word]
	return i, ok
}

// Vector returns a copy of the embedding for word. It fails with
// *UnknownWordError when the word is not in the vocabulary.
func (s *Store) Vector(word string) ([]float32, error) {
	i, ok := s.index[word]
	if !ok {
		return nil, &UnknownWordError{Word: word}
	}
	return append([]float32(nil), s.vectors[i]...), nil
}

// Rows returns the sub-matrix of embeddings for the given words, in the
// order requested. It fails with *UnknownWordError on the first absent word.
func (s *Store) Rows(words []string) ([][]float32, error) {
	out := make([][]float32, 0, len(words))
	for _, w := range words {
		v, err := s.Vector(w)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// Centroid collapses the selection to a single vector, the component-wise
// arithmetic mean of the selected rows. It fails with ErrEmptySelection when
// no words are given and with *UnknownWordError on the first absent word.
// Sums are accumulated in float64 before dividing.
func (s *Store) Centroid(words []string) ([]float32, error) {
	if len(words) == 0 {
		return nil, ErrEmptySelection
	}
	sum := make([]float64, s.dim)
	for _, w := range words {
		i, ok := s.index[w]
		if !ok {
			return nil, &UnknownWordError{Word: w}
		}
		for j, v := range s.vectors[i] {
			sum[j] += float64(v)
		}
	}
	out := make([]float32, s.dim)
	inv := 1 / float64(len(words))
	for j, v := range sum {
		out[j] = float32(v * inv)
	}
	return out, nil
}
