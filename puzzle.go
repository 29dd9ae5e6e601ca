// Package wordsearch builds printable word search puzzles on top of the placement engine, and
// exposes them through a Cloud Function.
package wordsearch

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"crosswarped.com/wordsearch/pkg/filler"
	"crosswarped.com/wordsearch/pkg/grid"
	"crosswarped.com/wordsearch/pkg/primitives"
	"crosswarped.com/wordsearch/ws_generator/generator"
)

var (
	// ErrInvalidRequest wraps every validation failure of a Request.
	ErrInvalidRequest = errors.New("invalid request")
	ErrNoWords        = errors.New("no words given")
	ErrGridSize       = errors.New("grid size out of range")
)

// Request describes the puzzle a caller wants. Zero values fall back to the Config defaults.
type Request struct {
	Title      string   `json:"title"`
	Difficulty string   `json:"difficulty,omitempty"`
	GridSize   int      `json:"grid_size,omitempty"`
	Words      []string `json:"words"`
	// Seed 0 derives a seed from the current time.
	Seed        uint64 `json:"seed,omitempty"`
	MaxAttempts int    `json:"max_attempts,omitempty"`
	Letters     string `json:"letters,omitempty"`
	// LetterTable ranks all 26 letters from most to least frequent and overrides Letters.
	LetterTable string `json:"letter_table,omitempty"`
	// Theme loads the word list from a word source when Words is empty.
	Theme string `json:"theme,omitempty"`
}

// Puzzle is a generated word search with everything a renderer needs.
type Puzzle struct {
	ID         string                `json:"id"`
	Title      string                `json:"title"`
	Difficulty string                `json:"difficulty"`
	Seed       uint64                `json:"seed"`
	Grid       *grid.Grid            `json:"grid"`
	Placed     []grid.Placement      `json:"placed"`
	Discarded  []primitives.Word     `json:"discarded"`
	Rejected   []generator.Rejection `json:"rejected"`
	Attempts   int                   `json:"attempts"`
	CreatedAt  time.Time             `json:"created_at"`
}

// BuildPuzzle validates req against cfg, fills in defaults and runs the generator.
func BuildPuzzle(cfg *Config, req Request, now time.Time) (*Puzzle, error) {
	gen, title, seed, err := resolve(cfg, req, now)
	if err != nil {
		return nil, err
	}

	result := gen.Generate(req.Words, generator.NewRand(seed))
	return &Puzzle{
		ID:         uuid.NewString(),
		Title:      title,
		Difficulty: gen.Config().Difficulty.Name(),
		Seed:       seed,
		Grid:       result.Grid,
		Placed:     nonNil(result.Placed),
		Discarded:  nonNil(result.Discarded),
		Rejected:   nonNil(result.Rejected),
		Attempts:   result.Attempts,
		CreatedAt:  now.UTC(),
	}, nil
}

func resolve(cfg *Config, req Request, now time.Time) (*generator.Generator, string, uint64, error) {
	if len(req.Words) == 0 {
		return nil, "", 0, fmt.Errorf("%w: %w", ErrInvalidRequest, ErrNoWords)
	}

	size := req.GridSize
	if size == 0 {
		size = cfg.DefaultGridSize
	}
	if size < 1 || size > cfg.MaxGridSize {
		return nil, "", 0, fmt.Errorf("%w: %w: %d not in [1, %d]", ErrInvalidRequest, ErrGridSize, size, cfg.MaxGridSize)
	}

	diffName := req.Difficulty
	if diffName == "" {
		diffName = cfg.DefaultDifficulty
	}
	difficulty, err := primitives.ParseDifficulty(diffName)
	if err != nil {
		return nil, "", 0, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}

	f, err := resolveFiller(cfg, req)
	if err != nil {
		return nil, "", 0, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}

	attempts := req.MaxAttempts
	if attempts == 0 {
		attempts = cfg.DefaultAttempts
	}
	if attempts < 0 {
		return nil, "", 0, fmt.Errorf("%w: max_attempts must not be negative", ErrInvalidRequest)
	}

	seed := req.Seed
	if seed == 0 {
		seed = clockSeed(now)
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		title = "Word Search"
	}

	config := generator.NewConfig(size, difficulty).WithMaxAttempts(attempts).WithFiller(f)
	return generator.New(config), title, seed, nil
}

func resolveFiller(cfg *Config, req Request) (*filler.Filler, error) {
	if req.LetterTable != "" {
		return filler.Custom(req.LetterTable)
	}
	letters := req.Letters
	if letters == "" {
		letters = cfg.Letters
	}
	return filler.ForLanguage(letters)
}

// maxClockSeed keeps derived seeds exact as JSON numbers in JavaScript clients.
const maxClockSeed = 1<<53 - 1

func clockSeed(now time.Time) uint64 {
	seed := uint64(now.UnixNano()) & maxClockSeed
	if seed == 0 {
		seed = 1
	}
	return seed
}

// Words returns the display form of every placed word.
func (p *Puzzle) Words() []string {
	words := make([]string, len(p.Placed))
	for i, pl := range p.Placed {
		words[i] = pl.Word.Original()
	}
	return words
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
