package primitives

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownDifficulty is returned by ParseDifficulty for names that match no preset.
var ErrUnknownDifficulty = errors.New("unknown difficulty")

// Difficulty decides which directions words may be placed in.
type Difficulty struct {
	AllowHorizontal bool `json:"allow_horizontal"`
	AllowVertical   bool `json:"allow_vertical"`
	AllowDiagonal   bool `json:"allow_diagonal"`
	// AllowReverse adds the reversed variant of every allowed axis.
	AllowReverse bool `json:"allow_reverse"`
}

// Easy allows left-to-right and top-to-bottom words.
func Easy() Difficulty {
	return Difficulty{AllowHorizontal: true, AllowVertical: true}
}

// Medium adds both forward diagonals to Easy.
func Medium() Difficulty {
	return Difficulty{AllowHorizontal: true, AllowVertical: true, AllowDiagonal: true}
}

// Hard allows all eight directions.
func Hard() Difficulty {
	return Difficulty{AllowHorizontal: true, AllowVertical: true, AllowDiagonal: true, AllowReverse: true}
}

// AllowedDirections returns the permitted directions in a fixed order: horizontal, its reverse,
// vertical, its reverse, then diagonal down, diagonal up and their reverses. A reverse direction is
// only included when its axis is allowed as well.
func (d Difficulty) AllowedDirections() []Direction {
	var directions []Direction

	if d.AllowHorizontal {
		directions = append(directions, Horizontal)
		if d.AllowReverse {
			directions = append(directions, HorizontalReverse)
		}
	}

	if d.AllowVertical {
		directions = append(directions, Vertical)
		if d.AllowReverse {
			directions = append(directions, VerticalReverse)
		}
	}

	if d.AllowDiagonal {
		directions = append(directions, DiagonalDown, DiagonalUp)
		if d.AllowReverse {
			directions = append(directions, DiagonalDownReverse, DiagonalUpReverse)
		}
	}

	return directions
}

// Name returns "easy", "medium" or "hard" for the presets and "custom" otherwise.
func (d Difficulty) Name() string {
	switch d {
	case Easy():
		return "easy"
	case Medium():
		return "medium"
	case Hard():
		return "hard"
	}
	return "custom"
}

func (d Difficulty) String() string {
	return d.Name()
}

// ParseDifficulty resolves a preset by name, Portuguese name or menu number (1-3).
func ParseDifficulty(name string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "easy", "facil", "fácil", "1":
		return Easy(), nil
	case "medium", "medio", "médio", "2":
		return Medium(), nil
	case "hard", "dificil", "difícil", "3":
		return Hard(), nil
	}
	return Difficulty{}, fmt.Errorf("%w: %q", ErrUnknownDifficulty, name)
}
