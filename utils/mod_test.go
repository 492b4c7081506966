package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFindIndex(t *testing.T) {
	require.Equal(t, 1, FindIndex([]string{"a", "b", "c"}, "b"))
	require.Equal(t, -1, FindIndex([]string{"a"}, "z"))
}

func TestRemoveKeepsOrderAndInput(t *testing.T) {
	in := []int{1, 2, 3, 2}
	out, ok := Remove(in, 2)

	require.True(t, ok)
	require.Equal(t, []int{1, 3, 2}, out)
	require.Equal(t, []int{1, 2, 3, 2}, in)

	_, ok = Remove(out, 9)
	require.False(t, ok)
}

func TestCount(t *testing.T) {
	require.Equal(t, 2, Count([]int{1, 2, 3, 4}, func(v int) bool { return v%2 == 0 }))
}
