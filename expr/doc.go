// Package expr defines vector expressions over a word-embedding store and a
// small textual surface for them. An expression is a tree of literal vectors,
// named terms resolved against a store's vocabulary, additions, subtractions
// and unary negations; evaluation folds the tree into a single vector of the
// store's dimension.
//
// The textual form accepts bare or quoted words, bracketed numeric vectors,
// the + and - operators (binary and unary) and parentheses:
//
//	king - man + woman
//	"new york" + [0.5, -1, 2]
//	-(good - bad)
package expr
