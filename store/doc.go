// Package store holds an immutable word-embedding matrix together with a
// word -> row vocabulary index. It provides:
//   - exact vector lookup by word
//   - sub-matrix extraction for an ordered word selection
//   - centroid (component-wise mean) aggregation over a selection
//
// A Store is a read-only snapshot of an externally trained model; it never
// mutates after construction, so concurrent reads need no locking.
package store
