package primitives

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestAllowedDirections(t *testing.T) {
	cases := []struct {
		name       string
		difficulty Difficulty
		want       []Direction
	}{
		{"easy", Easy(), []Direction{Horizontal, Vertical}},
		{"medium", Medium(), []Direction{Horizontal, Vertical, DiagonalDown, DiagonalUp}},
		{"hard", Hard(), []Direction{
			Horizontal, HorizontalReverse,
			Vertical, VerticalReverse,
			DiagonalDown, DiagonalUp, DiagonalDownReverse, DiagonalUpReverse,
		}},
		{"diagonal reverse only", Difficulty{AllowDiagonal: true, AllowReverse: true}, []Direction{
			DiagonalDown, DiagonalUp, DiagonalDownReverse, DiagonalUpReverse,
		}},
		{"vertical", Difficulty{AllowVertical: true}, []Direction{Vertical}},
		{"reverse without axis", Difficulty{AllowReverse: true}, nil},
		{"nothing", Difficulty{}, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.difficulty.AllowedDirections()
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("AllowedDirections mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPresetDirectionCounts(t *testing.T) {
	require.Len(t, Easy().AllowedDirections(), 2)
	require.Len(t, Medium().AllowedDirections(), 4)
	require.Len(t, Hard().AllowedDirections(), 8)
}

func TestParseDifficulty(t *testing.T) {
	cases := map[string]Difficulty{
		"easy":    Easy(),
		" EASY ":  Easy(),
		"1":       Easy(),
		"Fácil":   Easy(),
		"medium":  Medium(),
		"2":       Medium(),
		"medio":   Medium(),
		"hard":    Hard(),
		"3":       Hard(),
		"difícil": Hard(),
	}
	for in, want := range cases {
		got, err := ParseDifficulty(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got, in)
	}

	_, err := ParseDifficulty("impossible")
	require.ErrorIs(t, err, ErrUnknownDifficulty)
}

func TestDifficultyName(t *testing.T) {
	require.Equal(t, "easy", Easy().Name())
	require.Equal(t, "medium", Medium().Name())
	require.Equal(t, "hard", Hard().Name())
	require.Equal(t, "custom", Difficulty{AllowVertical: true}.Name())
}
