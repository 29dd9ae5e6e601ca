package filler

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"

	"crosswarped.com/wordsearch/pkg/grid"
	"crosswarped.com/wordsearch/pkg/primitives"
)

type fixedRand struct {
	values []int
	next   int
}

func (f *fixedRand) IntN(n int) int {
	v := f.values[f.next%len(f.values)]
	f.next++
	return v % n
}

func TestWeightsDecreaseWithRank(t *testing.T) {
	f := Default()
	n := len(Portuguese)
	require.Equal(t, n*(n+1)/2, f.TotalWeight())
	for i := range n {
		require.Equal(t, n-i, f.Weight(Portuguese[i]), "letter %c", Portuguese[i])
	}
	require.Equal(t, 0, f.Weight('!'))
}

func TestPickLetterBuckets(t *testing.T) {
	f, err := New("ABC") // weights 3, 2, 1
	require.NoError(t, err)
	require.Equal(t, 6, f.TotalWeight())

	want := map[int]byte{0: 'A', 1: 'A', 2: 'A', 3: 'B', 4: 'B', 5: 'C'}
	for roll, letter := range want {
		got := f.PickLetter(&fixedRand{values: []int{roll}})
		require.Equal(t, letter, got, "roll %d", roll)
	}
}

func TestPickLetterDeterministic(t *testing.T) {
	f := Default()
	r1 := rand.New(rand.NewPCG(42, 7))
	r2 := rand.New(rand.NewPCG(42, 7))
	for range 100 {
		require.Equal(t, f.PickLetter(r1), f.PickLetter(r2))
	}
}

func TestFillGridOnlyTouchesEmptyCells(t *testing.T) {
	g := grid.New(5)
	placed := g.PlaceWord(primitives.NewWord("KIWIS"), 2, 0, primitives.Horizontal)
	require.Equal(t, 20, g.EmptyCount())

	filled := Default().FillGrid(g, rand.New(rand.NewPCG(1, 2)))
	require.Equal(t, 20, filled)
	require.Equal(t, 0, g.EmptyCount())

	for i, c := range placed.Cells() {
		ch, _ := g.Get(c.Row, c.Col)
		require.Equal(t, placed.Word.LetterAt(i), ch)
	}
	for row := range g.Size() {
		for col := range g.Size() {
			ch, ok := g.Get(row, col)
			require.True(t, ok)
			require.True(t, primitives.IsLetter(rune(ch)))
		}
	}
}

func TestNewRejectsBadTables(t *testing.T) {
	for _, table := range []string{"", "ABA", "ABc", "AB C", "ÁB"} {
		_, err := New(table)
		require.ErrorIs(t, err, ErrInvalidTable, "table %q", table)
	}
}

func TestCustomRequiresFullAlphabet(t *testing.T) {
	f, err := Custom(" zyxwvutsrqponmlkjihgfedcba ")
	require.NoError(t, err)
	require.True(t, f.CoversAlphabet())
	require.Equal(t, 26, f.Weight('Z'))
	require.Equal(t, 1, f.Weight('A'))

	_, err = Custom("AEIOU")
	require.ErrorIs(t, err, ErrIncompleteTable)
	require.ErrorContains(t, err, "(5/26)")

	_, err = Custom("AEIOUA")
	require.ErrorIs(t, err, ErrInvalidTable)

	abc, err := New("ABC")
	require.NoError(t, err)
	require.False(t, abc.CoversAlphabet())
	require.True(t, Default().CoversAlphabet())
}

func TestForLanguage(t *testing.T) {
	pt, err := ForLanguage("")
	require.NoError(t, err)
	require.Equal(t, len(Portuguese), pt.Weight('A'))

	en, err := ForLanguage("English")
	require.NoError(t, err)
	require.Equal(t, len(English), en.Weight('E'))

	_, err = ForLanguage("klingon")
	require.ErrorIs(t, err, ErrUnknownLanguage)
}
