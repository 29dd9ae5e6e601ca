package primitives

import (
	"fmt"
	"math/bits"
	"strings"
)

// LetterSet efficiently represents a set of uppercase ASCII letters using bit manipulation.
// It supports characters from 'A' (65) to 'Z' (90), a total of 26 letters, which fits in a uint32.
type LetterSet struct {
	bits  uint32
	count int
}

const (
	minLetter  = 'A'
	maxLetter  = 'Z'
	numLetters = maxLetter - minLetter + 1 // 26 letters
)

// NewLetterSet creates a new empty letter set.
func NewLetterSet() *LetterSet {
	return &LetterSet{}
}

// LetterSetOf builds a set from every letter in s. It fails on the first character outside 'A'..'Z'.
func LetterSetOf(s string) (*LetterSet, error) {
	set := NewLetterSet()
	for _, r := range s {
		if err := set.Add(r); err != nil {
			return nil, err
		}
	}
	return set, nil
}

// IsLetter reports whether r is an uppercase ASCII letter.
func IsLetter(r rune) bool {
	return r >= minLetter && r <= maxLetter
}

// Add adds a letter to the set.
func (s *LetterSet) Add(r rune) error {
	if !IsLetter(r) {
		return fmt.Errorf("character %q is out of range", r)
	}

	bitPos := uint(r - minLetter)
	if s.bits&(1<<bitPos) == 0 {
		s.bits |= 1 << bitPos
		s.count = bits.OnesCount32(s.bits)
	}
	return nil
}

// Contains checks if a letter is in the set.
func (s *LetterSet) Contains(r rune) bool {
	if !IsLetter(r) {
		return false
	}
	return s.bits&(1<<uint(r-minLetter)) != 0
}

// IsFull checks if every letter of the alphabet is in the set.
func (s *LetterSet) IsFull() bool {
	return s.count == numLetters
}

// Count returns the number of letters in the set.
func (s *LetterSet) Count() int {
	return s.count
}

// Letters returns the members of the set in alphabetical order.
func (s *LetterSet) Letters() string {
	var b strings.Builder
	b.Grow(s.count)
	for i := range uint(numLetters) {
		if s.bits&(1<<i) != 0 {
			b.WriteByte(byte(minLetter + i))
		}
	}
	return b.String()
}

// String returns a string representation of the set.
func (s *LetterSet) String() string {
	if s.count == 0 {
		return "letters [] (0/26)"
	}

	letters := s.Letters()
	quoted := make([]string, 0, len(letters))
	for _, r := range letters {
		quoted = append(quoted, fmt.Sprintf("'%c'", r))
	}
	return fmt.Sprintf("letters [%s] (%d/%d)", strings.Join(quoted, ", "), s.count, numLetters)
}
