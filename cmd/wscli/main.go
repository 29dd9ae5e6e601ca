package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"crosswarped.com/wordsearch"
	"crosswarped.com/wordsearch/pkg/prompt"
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML config file")
	title := flag.String("title", "", "The title of the puzzle")
	difficulty := flag.String("difficulty", "", "easy, medium or hard")
	sideLength := flag.Int("width", 0, "The width of the grid")
	wordList := flag.String("words", "", "Comma separated words to place")
	interactive := flag.Bool("interactive", false, "Ask for title, difficulty, size and words")
	seed := flag.Uint64("seed", 0, "Random seed (0 derives one from the clock)")
	attempts := flag.Int("attempts", 0, "Placement attempts per word")
	letters := flag.String("letters", "", "Filler letter frequencies: portuguese or english")
	letterTable := flag.String("letter-table", "", "Custom filler ranking of all 26 letters, most frequent first")
	loadWordsFromCloud := flag.Bool("cloud", false, "Load words for -theme from BigQuery")
	suggest := flag.Bool("suggest", false, "Ask Gemini for words about -theme")
	theme := flag.String("theme", "", "The theme to load words for")
	outDir := flag.String("out", "", "Write the puzzle and answer key (text and PDF) under this directory")
	timeout := flag.Duration("timeout", 1*time.Minute, "The timeout for loading words")

	flag.Parse()

	if *loadWordsFromCloud && *suggest {
		fmt.Println("Cannot use both -cloud and -suggest")
		os.Exit(1)
	}

	cfg, err := wordsearch.LoadConfig(*configPath)
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}
	logger := wordsearch.NewLogger(os.Stderr, cfg.Log)

	req := wordsearch.Request{
		Title:       *title,
		Difficulty:  *difficulty,
		GridSize:    *sideLength,
		Words:       prompt.SplitWords(*wordList),
		Seed:        *seed,
		MaxAttempts: *attempts,
		Letters:     *letters,
		LetterTable: *letterTable,
	}

	if *interactive {
		in, err := prompt.Collect(os.Stdin, os.Stdout)
		if err != nil {
			fmt.Println("Error reading input:", err)
			os.Exit(1)
		}
		req.Title = in.Title
		req.Difficulty = in.Difficulty.Name()
		req.GridSize = in.GridSize
		req.Words = in.Words
	}

	if *loadWordsFromCloud || *suggest {
		ctx, cancel := context.WithTimeout(context.Background(), *timeout)
		words, err := loadThemeWords(ctx, cfg, *theme, *suggest, req.GridSize)
		cancel()
		if err != nil {
			fmt.Println("Error loading words:", err)
			os.Exit(1)
		}
		fmt.Printf("Loaded %d words for theme %q\n", len(words), *theme)
		req.Words = append(req.Words, words...)
	}

	puzzle, err := wordsearch.BuildPuzzle(cfg, req, time.Now())
	if err != nil {
		fmt.Println("Error generating puzzle:", err)
		os.Exit(1)
	}
	logger.Debug("generated puzzle",
		slog.Uint64("seed", puzzle.Seed),
		slog.Int("placed", len(puzzle.Placed)),
		slog.Int("discarded", len(puzzle.Discarded)),
		slog.Int("rejected", len(puzzle.Rejected)),
		slog.Int("attempts", puzzle.Attempts),
	)

	printPuzzle(puzzle)

	if *outDir != "" {
		dir, err := writeFiles(*outDir, puzzle)
		if err != nil {
			fmt.Println("Error writing files:", err)
			os.Exit(1)
		}
		fmt.Println("Wrote puzzle and answer key to", dir)
	}

	fmt.Println("--------------------------------")
	fmt.Println("Done")
}

func loadThemeWords(ctx context.Context, cfg *wordsearch.Config, theme string, suggest bool, maxLen int) ([]string, error) {
	if theme == "" {
		return nil, errors.New("-theme is required")
	}
	if maxLen == 0 {
		maxLen = cfg.DefaultGridSize
	}
	if !suggest {
		return wordsearch.LoadWordsFromCloud(ctx, cfg, theme, maxLen)
	}
	client, err := wordsearch.NewGeminiClient(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return client.LoadWords(ctx, theme, maxLen, cfg.ThemeWordLimit)
}

func printPuzzle(p *wordsearch.Puzzle) {
	fmt.Println("--------------------------------")
	fmt.Printf("%s (%s, seed %d)\n", p.Title, p.Difficulty, p.Seed)
	fmt.Printf("Grid (%dx%d):\n", p.Grid.Size(), p.Grid.Size())
	fmt.Print(p.Grid.DebugString())

	fmt.Printf("\nPlaced words (%d):\n", len(p.Placed))
	for _, pl := range p.Placed {
		end := pl.End()
		fmt.Printf("  ✓ %s (%d, %d) -> (%d, %d) %s\n", pl.Word.Original(), pl.Row, pl.Col, end.Row, end.Col, pl.Direction)
	}

	if len(p.Discarded) > 0 {
		fmt.Printf("\nDiscarded words (%d):\n", len(p.Discarded))
		for _, w := range p.Discarded {
			fmt.Printf("  ✗ %s\n", w.Original())
		}
	}

	if len(p.Rejected) > 0 {
		fmt.Printf("\nRejected words (%d):\n", len(p.Rejected))
		for _, rej := range p.Rejected {
			fmt.Printf("  ✗ %s (%s)\n", rej.Word.Original(), rej.Reason)
		}
	}
}

func writeFiles(outDir string, p *wordsearch.Puzzle) (string, error) {
	dir := filepath.Join(outDir, wordsearch.Slug(p.Title))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	files := []struct {
		name  string
		write func(w io.Writer) error
	}{
		{"puzzle.txt", p.WriteSheet},
		{"answers.txt", p.WriteAnswerKey},
		{"puzzle.pdf", p.WritePDF},
		{"answers.pdf", p.WriteAnswerKeyPDF},
	}
	for _, file := range files {
		f, err := os.Create(filepath.Join(dir, file.name))
		if err != nil {
			return "", err
		}
		err = file.write(f)
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			return "", fmt.Errorf("write %s: %w", file.name, err)
		}
	}
	return dir, nil
}
