package primitives

import (
	"cmp"
	"encoding/json"
	"slices"
	"strings"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Word is a requested word together with the letters that actually go into the grid.
//
// The normalized form is derived once, in NewWord, and cannot change afterwards.
type Word struct {
	original   string
	normalized string
}

// NewWord creates a word from raw user input.
func NewWord(raw string) Word {
	return Word{original: raw, normalized: Normalize(raw)}
}

// Normalize canonically decomposes raw, drops everything that is not an ASCII letter and
// uppercases the rest. Diacritics, digits, punctuation and whitespace all disappear in one pass,
// so "coração" becomes "CORACAO" and "São Paulo!" becomes "SAOPAULO".
func Normalize(raw string) string {
	// transform.Chain keeps internal buffers, so it is built per call.
	t := transform.Chain(norm.NFD, runes.Remove(runes.Predicate(notASCIILetter)))
	out, _, err := transform.String(t, raw)
	if err != nil {
		return ""
	}
	return strings.ToUpper(out)
}

func notASCIILetter(r rune) bool {
	return !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z')
}

// Original returns the input exactly as given, for display.
func (w Word) Original() string {
	return w.original
}

// Normalized returns the uppercase A-Z letters placed in the grid.
func (w Word) Normalized() string {
	return w.normalized
}

// Len returns the number of letters of the normalized form.
func (w Word) Len() int {
	return len(w.normalized)
}

// IsEmpty reports whether the word has no placeable letters.
func (w Word) IsEmpty() bool {
	return w.normalized == ""
}

// LetterAt returns the i-th normalized letter.
func (w Word) LetterAt(i int) byte {
	return w.normalized[i]
}

// Equal reports whether both words came from the same input.
func (w Word) Equal(other Word) bool {
	return w.original == other.original && w.normalized == other.normalized
}

func (w Word) String() string {
	return w.normalized
}

type wordJSON struct {
	Original   string `json:"original"`
	Normalized string `json:"normalized"`
}

func (w Word) MarshalJSON() ([]byte, error) {
	return json.Marshal(wordJSON{Original: w.original, Normalized: w.normalized})
}

// UnmarshalJSON restores a word from its original text. The normalized field is recomputed rather
// than trusted.
func (w *Word) UnmarshalJSON(data []byte) error {
	var raw wordJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*w = NewWord(raw.Original)
	return nil
}

// NewWords normalizes every raw string, keeping input order.
func NewWords(raw []string) []Word {
	words := make([]Word, len(raw))
	for i, r := range raw {
		words[i] = NewWord(r)
	}
	return words
}

// SortByLengthDesc orders words longest first. Words of equal length keep their input order.
func SortByLengthDesc(words []Word) {
	slices.SortStableFunc(words, func(a, b Word) int {
		return cmp.Compare(b.Len(), a.Len())
	})
}
