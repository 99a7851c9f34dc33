// Package rank computes exact cosine-similarity rankings of a query vector
// against every row of an embedding store. The scan is a deliberate
// full-matrix pass: exactness over the whole vocabulary is part of the
// contract, there is no approximate index. Ordering is deterministic, ties
// resolve by ascending original row index.
package rank
