package store

import (
	"errors"
	"fmt"
)

// UnknownWordError reports a lookup of a word that is not in the vocabulary.
type UnknownWordError struct {
	Word string
}

func (e *UnknownWordError) Error() string {
	return fmt.Sprintf("store: unknown word %q", e.Word)
}

// DimensionMismatchError reports a vector whose length does not match the
// store dimension.
type DimensionMismatchError struct {
	Want int
	Got  int
}

func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("store: dimension mismatch: want %d, got %d", e.Want, e.Got)
}

// ErrEmptySelection is returned when a centroid is requested over zero words;
// the mean of an empty selection is undefined.
var ErrEmptySelection = errors.New("store: empty selection")
