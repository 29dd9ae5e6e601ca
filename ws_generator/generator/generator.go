// Package generator places words into a grid by bounded random search and fills the rest.
//
// A run is a pure function of the word list, the Config and the random stream, so a fixed seed
// reproduces the same grid and the same placement records.
package generator

import (
	"math/rand/v2"

	"crosswarped.com/wordsearch/pkg/filler"
	"crosswarped.com/wordsearch/pkg/grid"
	"crosswarped.com/wordsearch/pkg/primitives"
)

// DefaultMaxAttempts is the number of random trials a word gets before it is discarded.
const DefaultMaxAttempts = 100

// Config controls a generation run.
type Config struct {
	GridSize           int
	Difficulty         primitives.Difficulty
	MaxAttemptsPerWord int
	// Filler fills unused cells. Nil selects filler.Default().
	Filler *filler.Filler
}

// NewConfig returns a config with the default attempt budget.
func NewConfig(gridSize int, difficulty primitives.Difficulty) Config {
	return Config{
		GridSize:           gridSize,
		Difficulty:         difficulty,
		MaxAttemptsPerWord: DefaultMaxAttempts,
	}
}

// WithMaxAttempts overrides the attempt budget.
func (c Config) WithMaxAttempts(attempts int) Config {
	c.MaxAttemptsPerWord = attempts
	return c
}

// WithFiller overrides the letter filler.
func (c Config) WithFiller(f *filler.Filler) Config {
	c.Filler = f
	return c
}

// Generator runs placements for a fixed Config. It keeps no state between runs.
type Generator struct {
	config Config
}

// New creates a generator. A non-positive attempt budget is replaced by DefaultMaxAttempts.
func New(config Config) *Generator {
	if config.MaxAttemptsPerWord <= 0 {
		config.MaxAttemptsPerWord = DefaultMaxAttempts
	}
	if config.Filler == nil {
		config.Filler = filler.Default()
	}
	return &Generator{config: config}
}

// Config returns the effective configuration.
func (g *Generator) Config() Config {
	return g.config
}

// NewRand returns the deterministic random source used for seeded runs.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Generate runs one generation with a fresh source seeded by seed.
func Generate(words []string, config Config, seed uint64) *Result {
	return New(config).Generate(words, NewRand(seed))
}

// Generate places words into a new grid and fills the remaining cells.
//
// Words are normalized first. Those with no letters or longer than the grid are rejected before
// placement. The rest are tried longest first, ties in input order; each gets up to
// MaxAttemptsPerWord random (start cell, direction) trials and is discarded if none fits. Placed
// words are never moved to make room for later ones.
func (g *Generator) Generate(words []string, r primitives.Rand) *Result {
	size := g.config.GridSize
	result := &Result{Grid: grid.New(size)}
	allowed := g.config.Difficulty.AllowedDirections()

	queue := make([]primitives.Word, 0, len(words))
	for _, w := range primitives.NewWords(words) {
		switch {
		case w.IsEmpty():
			result.Rejected = append(result.Rejected, Rejection{Word: w, Reason: ReasonEmpty})
		case w.Len() > size:
			result.Rejected = append(result.Rejected, Rejection{Word: w, Reason: ReasonTooLong})
		default:
			queue = append(queue, w)
		}
	}
	primitives.SortByLengthDesc(queue)

	for _, w := range queue {
		placement, attempts, ok := g.tryPlace(result.Grid, w, allowed, r)
		result.Attempts += attempts
		if ok {
			result.Placed = append(result.Placed, placement)
		} else {
			result.Discarded = append(result.Discarded, w)
		}
	}

	g.config.Filler.FillGrid(result.Grid, r)
	return result
}

// tryPlace returns the placement and the number of trials it took.
func (g *Generator) tryPlace(gr *grid.Grid, w primitives.Word, allowed []primitives.Direction, r primitives.Rand) (grid.Placement, int, bool) {
	if len(allowed) == 0 {
		return grid.Placement{}, 0, false
	}

	size := gr.Size()
	for attempt := 1; attempt <= g.config.MaxAttemptsPerWord; attempt++ {
		row := r.IntN(size)
		col := r.IntN(size)
		d, ok := primitives.RandomFrom(allowed, r)
		if !ok {
			break
		}
		if gr.CanPlace(w, row, col, d) {
			return gr.PlaceWord(w, row, col, d), attempt, true
		}
	}
	return grid.Placement{}, g.config.MaxAttemptsPerWord, false
}
