// Package compose runs several labelled vector-expression queries against
// one store and aligns the resulting rankings on shared vocabulary. Each
// query produces a rank.Table whose label names its similarity column, so
// two or more tables can be inner-joined on word, the usual pattern when
// comparing one ranking's top vocabulary against another ranking's scores.
package compose
