package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"crosswarped.com/wordsearch"
)

func TestWriteFiles(t *testing.T) {
	cfg := &wordsearch.Config{
		DefaultGridSize:   8,
		MaxGridSize:       30,
		DefaultAttempts:   200,
		DefaultDifficulty: "easy",
		Letters:           "portuguese",
	}
	p, err := wordsearch.BuildPuzzle(cfg, wordsearch.Request{Title: "Dia de Praia", Words: []string{"sol", "mar", "areia"}, Seed: 8}, time.Now())
	require.NoError(t, err)

	out := t.TempDir()
	dir, err := writeFiles(out, p)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(out, "dia_de_praia"), dir)

	sheet, err := os.ReadFile(filepath.Join(dir, "puzzle.txt"))
	require.NoError(t, err)
	require.Contains(t, string(sheet), "Words to find:")

	answers, err := os.ReadFile(filepath.Join(dir, "answers.txt"))
	require.NoError(t, err)
	require.Contains(t, string(answers), "ANSWER KEY")

	for _, name := range []string{"puzzle.pdf", "answers.pdf"} {
		data, err := os.ReadFile(filepath.Join(dir, name))
		require.NoError(t, err)
		require.True(t, bytes.HasPrefix(data, []byte("%PDF-")), name)
	}
}
