// Package filler writes plausible random letters into the cells no word uses.
package filler

import (
	"errors"
	"fmt"
	"strings"

	"crosswarped.com/wordsearch/pkg/grid"
	"crosswarped.com/wordsearch/pkg/primitives"
)

// Frequency tables list the alphabet from most to least common letter.
const (
	Portuguese = "AEOSRIDMNTCUVLPGQBFHXJZYWK"
	English    = "ETAOINSHRDLCUMWFGYPBVKJXQZ"
)

var (
	// ErrInvalidTable is returned by New for tables that are empty, contain non A-Z characters or
	// repeat a letter.
	ErrInvalidTable = errors.New("invalid letter frequency table")
	// ErrUnknownLanguage is returned by ForLanguage.
	ErrUnknownLanguage = errors.New("unknown filler language")
	// ErrIncompleteTable is returned by Custom for tables that leave out part of the alphabet.
	ErrIncompleteTable = errors.New("letter frequency table does not cover the alphabet")
)

type weightedLetter struct {
	letter byte
	weight int
}

// Filler draws letters with a weight that decreases linearly with their rank in a frequency table:
// the first of n letters weighs n, the last weighs 1.
type Filler struct {
	weights  []weightedLetter
	total    int
	alphabet *primitives.LetterSet
}

// New builds a filler from a frequency-ordered table of distinct uppercase letters.
func New(table string) (*Filler, error) {
	if table == "" {
		return nil, fmt.Errorf("%w: empty", ErrInvalidTable)
	}

	alphabet, err := primitives.LetterSetOf(table)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidTable, err)
	}
	if alphabet.Count() != len(table) {
		return nil, fmt.Errorf("%w: %q repeats a letter", ErrInvalidTable, table)
	}

	weights := make([]weightedLetter, len(table))
	total := 0
	for i := range table {
		weights[i] = weightedLetter{letter: table[i], weight: len(table) - i}
		total += weights[i].weight
	}
	return &Filler{weights: weights, total: total, alphabet: alphabet}, nil
}

// Custom builds a filler from a caller supplied ranking. Unlike New it requires all 26 letters,
// otherwise letters that only occur in hidden words would stand out in the grid.
func Custom(table string) (*Filler, error) {
	f, err := New(strings.ToUpper(strings.TrimSpace(table)))
	if err != nil {
		return nil, err
	}
	if !f.CoversAlphabet() {
		return nil, fmt.Errorf("%w: %s", ErrIncompleteTable, f.alphabet)
	}
	return f, nil
}

// Default returns a filler using the Portuguese table.
func Default() *Filler {
	f, err := New(Portuguese)
	if err != nil {
		panic(err)
	}
	return f
}

// ForLanguage returns the filler for "pt"/"portuguese" or "en"/"english". An empty name selects
// Portuguese.
func ForLanguage(name string) (*Filler, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "pt", "portuguese":
		return New(Portuguese)
	case "en", "english":
		return New(English)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownLanguage, name)
}

// CoversAlphabet reports whether every letter A-Z can be drawn.
func (f *Filler) CoversAlphabet() bool {
	return f.alphabet.IsFull()
}

// TotalWeight returns the sum of all letter weights.
func (f *Filler) TotalWeight() int {
	return f.total
}

// Weight returns the weight of letter, or 0 if it is not in the table.
func (f *Filler) Weight(letter byte) int {
	for _, wl := range f.weights {
		if wl.letter == letter {
			return wl.weight
		}
	}
	return 0
}

// PickLetter draws one letter.
func (f *Filler) PickLetter(r primitives.Rand) byte {
	roll := r.IntN(f.total)
	for _, wl := range f.weights {
		if roll < wl.weight {
			return wl.letter
		}
		roll -= wl.weight
	}
	// Unreachable while total is the sum of the weights.
	return f.weights[0].letter
}

// FillGrid writes a drawn letter into every empty cell, row by row, and returns how many cells were
// filled. Cells that already hold a letter are left alone.
func (f *Filler) FillGrid(g *grid.Grid, r primitives.Rand) int {
	filled := 0
	for row := range g.Size() {
		for col := range g.Size() {
			if _, ok := g.Get(row, col); ok {
				continue
			}
			g.Set(row, col, f.PickLetter(r))
			filled++
		}
	}
	return filled
}
