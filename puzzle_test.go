package wordsearch

import (
	"bytes"
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crosswarped.com/wordsearch/pkg/filler"
	"crosswarped.com/wordsearch/pkg/grid"
	"crosswarped.com/wordsearch/pkg/primitives"
)

var testNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func testConfig() *Config {
	return &Config{
		ThemeWordLimit:    5,
		DefaultGridSize:   10,
		MaxGridSize:       20,
		DefaultAttempts:   100,
		DefaultDifficulty: "medium",
		Letters:           "portuguese",
	}
}

func TestBuildPuzzleValidation(t *testing.T) {
	words := []string{"sol"}
	for _, tc := range []struct {
		name string
		req  Request
		want error
	}{
		{name: "no words", req: Request{}, want: ErrNoWords},
		{name: "too big", req: Request{Words: words, GridSize: 21}, want: ErrGridSize},
		{name: "negative size", req: Request{Words: words, GridSize: -1}, want: ErrGridSize},
		{name: "difficulty", req: Request{Words: words, Difficulty: "brutal"}, want: primitives.ErrUnknownDifficulty},
		{name: "letters", req: Request{Words: words, Letters: "klingon"}, want: filler.ErrUnknownLanguage},
		{name: "attempts", req: Request{Words: words, MaxAttempts: -3}, want: ErrInvalidRequest},
		{name: "partial table", req: Request{Words: words, LetterTable: "AEIOU"}, want: filler.ErrIncompleteTable},
		{name: "bad table", req: Request{Words: words, LetterTable: "AEIOU1"}, want: filler.ErrInvalidTable},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := BuildPuzzle(testConfig(), tc.req, testNow)
			require.ErrorIs(t, err, ErrInvalidRequest)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestBuildPuzzleDefaults(t *testing.T) {
	p, err := BuildPuzzle(testConfig(), Request{Title: "  ", Words: []string{"casa", "mar"}}, testNow)
	require.NoError(t, err)

	assert.NotEmpty(t, p.ID)
	assert.Equal(t, "Word Search", p.Title)
	assert.Equal(t, "medium", p.Difficulty)
	assert.Equal(t, uint64(testNow.UnixNano())&maxClockSeed, p.Seed)
	assert.Equal(t, 10, p.Grid.Size())
	assert.Equal(t, 0, p.Grid.EmptyCount())
	assert.Equal(t, testNow, p.CreatedAt)
	assert.NotNil(t, p.Discarded)
	assert.NotNil(t, p.Rejected)
}

func TestClockSeedSurvivesJSONNumbers(t *testing.T) {
	for _, now := range []time.Time{testNow, time.Date(2262, 1, 1, 0, 0, 0, 0, time.UTC), time.Unix(0, 0)} {
		seed := clockSeed(now)
		require.NotZero(t, seed)
		require.LessOrEqual(t, seed, uint64(1<<53))
		// float64 is what a JavaScript client decodes the seed into
		require.Equal(t, seed, uint64(float64(seed)))
	}
	require.Greater(t, uint64(testNow.UnixNano()), uint64(1<<53))
	require.Less(t, float64(clockSeed(testNow)), math.Exp2(53))
}

func TestBuildPuzzleCustomLetterTable(t *testing.T) {
	req := Request{Words: []string{"sol"}, GridSize: 6, Seed: 9, Letters: "klingon", LetterTable: "zyxwvutsrqponmlkjihgfedcba"}
	p, err := BuildPuzzle(testConfig(), req, testNow)
	require.NoError(t, err)
	assert.Equal(t, 0, p.Grid.EmptyCount())
}

func TestBuildPuzzleSeedReproducible(t *testing.T) {
	req := Request{
		Title:      "Frutas",
		Difficulty: "hard",
		GridSize:   12,
		Words:      []string{"abacaxi", "maçã", "limão", "uva", "kiwi", "goiaba"},
		Seed:       77,
	}
	a, err := BuildPuzzle(testConfig(), req, testNow)
	require.NoError(t, err)
	b, err := BuildPuzzle(testConfig(), req, testNow.Add(time.Hour))
	require.NoError(t, err)

	assert.True(t, a.Grid.Equal(b.Grid))
	assert.Equal(t, a.Words(), b.Words())
	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, "abacaxi", a.Words()[0])
}

func TestBuildPuzzleRejectsLongWords(t *testing.T) {
	p, err := BuildPuzzle(testConfig(), Request{GridSize: 4, Words: []string{"paralelepipedo", "sol"}, Seed: 1}, testNow)
	require.NoError(t, err)
	require.Len(t, p.Rejected, 1)
	assert.Equal(t, "paralelepipedo", p.Rejected[0].Word.Original())
	assert.Equal(t, []string{"sol"}, p.Words())
}

func TestPuzzleJSON(t *testing.T) {
	p, err := BuildPuzzle(testConfig(), Request{GridSize: 5, Difficulty: "easy", Words: []string{"mar"}, Seed: 3}, testNow)
	require.NoError(t, err)

	raw, err := json.Marshal(p)
	require.NoError(t, err)

	var got struct {
		Grid   []string `json:"grid"`
		Placed []struct {
			Word struct {
				Original   string `json:"original"`
				Normalized string `json:"normalized"`
			} `json:"word"`
			Direction string `json:"direction"`
		} `json:"placed"`
		Discarded []any `json:"discarded"`
	}
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Len(t, got.Grid, 5)
	require.Len(t, got.Placed, 1)
	assert.Equal(t, "MAR", got.Placed[0].Word.Normalized)
	assert.Contains(t, []string{"horizontal", "vertical"}, got.Placed[0].Direction)
	assert.NotNil(t, got.Discarded)
}

func samplePuzzle() *Puzzle {
	g := grid.New(3)
	sol := g.PlaceWord(primitives.NewWord("sol"), 0, 0, primitives.Horizontal)
	ar := g.PlaceWord(primitives.NewWord("ar"), 1, 0, primitives.Vertical)
	g.Set(2, 2, 'X')
	return &Puzzle{Title: "Sol", Grid: g, Placed: []grid.Placement{sol, ar}}
}

func TestWriteSheet(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, samplePuzzle().WriteSheet(&buf))

	want := "Sol\n\n" +
		"S O L\n" +
		"A . .\n" +
		"R . X\n" +
		"\nWords to find:\n" +
		"  ar\n" +
		"  sol\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteAnswerKey(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, samplePuzzle().WriteAnswerKey(&buf))

	want := "Sol - ANSWER KEY\n\n" +
		"S O L\n" +
		"A . .\n" +
		"R . .\n" +
		"\n" +
		"  sol (0, 0) -> (0, 2) horizontal\n" +
		"  ar (1, 0) -> (2, 0) vertical\n"
	assert.Equal(t, want, buf.String())
}

func TestSlug(t *testing.T) {
	for title, want := range map[string]string{
		"Frutas Tropicais!": "frutas_tropicais",
		"Animais-2024":      "animais-2024",
		"Ação & Reação":     "ação__reação",
		"!!!":               "puzzle",
		"":                  "puzzle",
	} {
		assert.Equal(t, want, Slug(title), title)
	}
}

func TestWritePDF(t *testing.T) {
	var sheet, key bytes.Buffer
	p := samplePuzzle()
	require.NoError(t, p.WritePDF(&sheet))
	require.NoError(t, p.WriteAnswerKeyPDF(&key))

	for _, out := range []*bytes.Buffer{&sheet, &key} {
		assert.True(t, bytes.HasPrefix(out.Bytes(), []byte("%PDF-")))
		assert.Contains(t, out.String(), "/Title (Sol")
		assert.Contains(t, out.String(), "%%EOF")
	}
	assert.Contains(t, key.String(), "ANSWER KEY")
	assert.NotContains(t, sheet.String(), "ANSWER KEY")
}

func TestWritePDFLargeGenerated(t *testing.T) {
	words := make([]string, 0, 60)
	for _, w := range []string{"abacaxi", "acerola", "ameixa", "banana", "caju", "cereja", "damasco", "figo",
		"goiaba", "graviola", "jabuticaba", "jaca", "kiwi", "laranja", "limão", "maçã", "mamão", "manga",
		"maracujá", "melancia", "melão", "mexerica", "morango", "nectarina", "pera", "pêssego", "pitanga",
		"romã", "tangerina", "uva"} {
		words = append(words, w, w+"s")
	}
	p, err := BuildPuzzle(testConfig(), Request{Title: "Frutas è Cia", GridSize: 20, Difficulty: "hard", Words: words, Seed: 4}, testNow)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, p.WriteAnswerKeyPDF(&buf))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
	// one answer line per placement overflows the first page
	require.Greater(t, len(p.Placed), 10)
	assert.NotContains(t, buf.String(), "/Count 1\n")
}
