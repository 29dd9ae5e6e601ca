package wordsearch

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"unicode"

	"crosswarped.com/wordsearch/pkg/grid"
	"crosswarped.com/wordsearch/pkg/primitives"
)

// WriteSheet writes the printable puzzle: title, grid and the words to find.
func (p *Puzzle) WriteSheet(w io.Writer) error {
	var sb strings.Builder
	sb.WriteString(p.Title + "\n\n")
	sb.WriteString(p.Grid.Repr())

	sb.WriteString("\nWords to find:\n")
	for _, word := range p.sortedWords() {
		sb.WriteString("  " + word + "\n")
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

// WriteAnswerKey writes the grid with filler letters hidden, followed by where each word starts and
// ends and which way it reads. Rows and columns count from 0.
func (p *Puzzle) WriteAnswerKey(w io.Writer) error {
	cells := grid.CoveredCells(p.Placed)

	var sb strings.Builder
	sb.WriteString(p.Title + " - ANSWER KEY\n\n")
	sb.WriteString(p.Grid.Masked(func(c primitives.Cell) bool { return cells[c] }))
	sb.WriteString("\n")
	for _, pl := range p.Placed {
		sb.WriteString("  " + placementLine(pl) + "\n")
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

// sortedWords returns the placed words in alphabetical order of their normalized form.
func (p *Puzzle) sortedWords() []string {
	words := p.Words()
	slices.SortFunc(words, func(a, b string) int {
		return strings.Compare(primitives.Normalize(a), primitives.Normalize(b))
	})
	return words
}

func placementLine(pl grid.Placement) string {
	end := pl.End()
	return fmt.Sprintf("%s (%d, %d) -> (%d, %d) %s", pl.Word.Original(), pl.Row, pl.Col, end.Row, end.Col, pl.Direction)
}

// Slug turns a title into a directory name: letters, digits, spaces, '-' and '_' are kept, spaces
// become '_' and the result is lowercased. A title with nothing left becomes "puzzle".
func Slug(title string) string {
	var sb strings.Builder
	for _, r := range title {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '_':
			sb.WriteRune(r)
		case r == ' ':
			sb.WriteRune('_')
		}
	}
	slug := strings.ToLower(sb.String())
	if slug == "" {
		return "puzzle"
	}
	return slug
}
