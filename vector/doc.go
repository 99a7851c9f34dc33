// Package vector carries the scalar vector utilities shared by the query
// engine and its SQL surface: a little-endian float32 BLOB codec for
// embeddings and reference distance functions with float64 accumulation.
package vector
