package primitives

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestTrace(t *testing.T) {
	got := Trace(3, 1, DiagonalUp, 3)
	want := []Cell{{3, 1}, {2, 2}, {1, 3}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Trace mismatch (-want +got):\n%s", diff)
	}

	require.Nil(t, Trace(0, 0, Horizontal, 0))
	require.Equal(t, []Cell{{4, 4}}, Trace(4, 4, VerticalReverse, 1))
}
