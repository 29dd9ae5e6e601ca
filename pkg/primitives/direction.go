package primitives

import "fmt"

// Direction is one of the eight ways a word can read across the grid.
type Direction uint8

const (
	Horizontal Direction = iota
	HorizontalReverse
	Vertical
	VerticalReverse
	DiagonalDown
	DiagonalDownReverse
	DiagonalUp
	DiagonalUpReverse
)

type delta struct{ row, col int }

var directionDeltas = [...]delta{
	Horizontal:          {0, 1},
	HorizontalReverse:   {0, -1},
	Vertical:            {1, 0},
	VerticalReverse:     {-1, 0},
	DiagonalDown:        {1, 1},
	DiagonalDownReverse: {-1, -1},
	DiagonalUp:          {-1, 1},
	DiagonalUpReverse:   {1, -1},
}

var directionNames = [...]string{
	Horizontal:          "horizontal",
	HorizontalReverse:   "horizontal-reverse",
	Vertical:            "vertical",
	VerticalReverse:     "vertical-reverse",
	DiagonalDown:        "diagonal-down",
	DiagonalDownReverse: "diagonal-down-reverse",
	DiagonalUp:          "diagonal-up",
	DiagonalUpReverse:   "diagonal-up-reverse",
}

// Rand is the source of randomness the engine draws from. *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	// IntN returns a uniform integer in [0, n).
	IntN(n int) int
}

// AllDirections returns the eight directions in declaration order.
func AllDirections() []Direction {
	all := make([]Direction, len(directionDeltas))
	for i := range all {
		all[i] = Direction(i)
	}
	return all
}

// Valid reports whether d is one of the eight declared directions.
func (d Direction) Valid() bool {
	return int(d) < len(directionDeltas)
}

// Deltas returns the row and column step of the direction. Invalid directions do not move.
func (d Direction) Deltas() (int, int) {
	if !d.Valid() {
		return 0, 0
	}
	s := directionDeltas[d]
	return s.row, s.col
}

func (d Direction) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
	return directionNames[d]
}

// ParseDirection is the inverse of Direction.String.
func ParseDirection(s string) (Direction, error) {
	for i, name := range directionNames {
		if name == s {
			return Direction(i), nil
		}
	}
	return 0, fmt.Errorf("unknown direction %q", s)
}

func (d Direction) MarshalText() ([]byte, error) {
	if !d.Valid() {
		return nil, fmt.Errorf("invalid direction %d", uint8(d))
	}
	return []byte(d.String()), nil
}

func (d *Direction) UnmarshalText(text []byte) error {
	parsed, err := ParseDirection(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// RandomFrom picks a uniformly random direction from set. It returns false only if set is empty.
func RandomFrom(set []Direction, r Rand) (Direction, bool) {
	if len(set) == 0 {
		return 0, false
	}
	return set[r.IntN(len(set))], true
}
