// Package prompt collects a puzzle request interactively on a terminal.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"crosswarped.com/wordsearch/pkg/primitives"
)

// ErrNoWords is returned when the word list ends before any word was entered.
var ErrNoWords = errors.New("prompt: no words given")

// GridSizes are the sizes offered by the size menu, small to large.
var GridSizes = [3]int{12, 15, 20}

const defaultSizeChoice = 1

// Input is everything the user entered.
type Input struct {
	Title      string
	Difficulty primitives.Difficulty
	GridSize   int
	Words      []string
}

type session struct {
	scanner *bufio.Scanner
	out     io.Writer
	eof     bool
}

// Collect asks for a title, a difficulty, a grid size and the word list. Words are entered one per
// line or comma separated; an empty line, "FIM", "END" or end of input finishes the list. Invalid
// menu choices fall back to medium difficulty and a 15×15 grid. The difficulty prompt also accepts
// preset names.
func Collect(in io.Reader, out io.Writer) (*Input, error) {
	s := &session{scanner: bufio.NewScanner(in), out: out}

	fmt.Fprintln(out, "Word Search Generator")
	fmt.Fprintln(out, "=====================")
	fmt.Fprintln(out)

	title, err := s.ask("Title: ")
	if err != nil {
		return nil, err
	}
	title = strings.TrimSpace(title)

	fmt.Fprintln(out, "\nDifficulty:")
	fmt.Fprintln(out, "  1. Easy (horizontal and vertical)")
	fmt.Fprintln(out, "  2. Medium (horizontal, vertical and diagonal)")
	fmt.Fprintln(out, "  3. Hard (every direction, reversed included)")
	choice, err := s.ask("Choose (1-3): ")
	if err != nil {
		return nil, err
	}
	difficulty, err := primitives.ParseDifficulty(choice)
	if err != nil {
		fmt.Fprintln(out, "Invalid option, using Medium.")
		difficulty = primitives.Medium()
	}

	fmt.Fprintln(out, "\nGrid size:")
	labels := [3]string{"small", "medium", "large"}
	for i, size := range GridSizes {
		fmt.Fprintf(out, "  %d. %dx%d (%s)\n", i+1, size, size, labels[i])
	}
	choice, err = s.ask("Choose (1-3): ")
	if err != nil {
		return nil, err
	}
	gridSize := GridSizes[defaultSizeChoice]
	if idx, ok := menuIndex(choice); ok {
		gridSize = GridSizes[idx]
	} else {
		fmt.Fprintf(out, "Invalid option, using %dx%d.\n", gridSize, gridSize)
	}

	fmt.Fprintln(out, "\nEnter the words (one per line OR comma separated).")
	fmt.Fprintln(out, "Finish with an empty line or 'FIM':")
	fmt.Fprintln(out)

	var words []string
	for !s.eof {
		line, err := s.ask("> ")
		if err != nil {
			return nil, err
		}
		line = strings.TrimSpace(line)
		if line == "" || strings.EqualFold(line, "FIM") || strings.EqualFold(line, "END") {
			break
		}
		words = append(words, SplitWords(line)...)
	}

	if len(words) == 0 {
		return nil, ErrNoWords
	}
	fmt.Fprintf(out, "\n%d words received.\n", len(words))

	return &Input{
		Title:      title,
		Difficulty: difficulty,
		GridSize:   gridSize,
		Words:      words,
	}, nil
}

// SplitWords splits a comma separated list, trimming each entry and dropping blanks.
func SplitWords(line string) []string {
	var words []string
	for _, part := range strings.Split(line, ",") {
		if w := strings.TrimSpace(part); w != "" {
			words = append(words, w)
		}
	}
	return words
}

// ask prints label and returns the next line, without its line ending. At end of input it returns
// an empty string.
func (s *session) ask(label string) (string, error) {
	fmt.Fprint(s.out, label)
	if s.eof || !s.scanner.Scan() {
		s.eof = true
		if err := s.scanner.Err(); err != nil {
			return "", fmt.Errorf("prompt: read input: %w", err)
		}
		return "", nil
	}
	return strings.TrimRight(s.scanner.Text(), "\r"), nil
}

func menuIndex(choice string) (int, bool) {
	switch strings.TrimSpace(choice) {
	case "1":
		return 0, true
	case "2":
		return 1, true
	case "3":
		return 2, true
	}
	return 0, false
}
