package generator

import (
	"crosswarped.com/wordsearch/pkg/grid"
	"crosswarped.com/wordsearch/pkg/primitives"
)

// Reason says why a word never entered the placement queue.
type Reason string

const (
	ReasonEmpty   Reason = "empty"
	ReasonTooLong Reason = "too-long"
)

// Rejection is a word filtered out before any placement was attempted.
type Rejection struct {
	Word   primitives.Word `json:"word"`
	Reason Reason          `json:"reason"`
}

// Result is the outcome of one generation run.
type Result struct {
	Grid *grid.Grid
	// Placed holds the placements in processing order, longest word first.
	Placed []grid.Placement
	// Discarded holds words that were tried and did not fit, in processing order.
	Discarded []primitives.Word
	// Rejected holds words that were never tried, in input order.
	Rejected []Rejection
	// Attempts is the number of random trials made across all words.
	Attempts int
}
