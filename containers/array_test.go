package containers_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hexforge/avrmem/containers"
)

func TestArrayFill(t *testing.T) {
	requireT := require.New(t)
	a := containers.NewArray[int](5)

	a.Fill(42)
	for i := range uint(5) {
		requireT.Equal(42, *a.At(i))
	}
}

func TestArraySizeAndEmpty(t *testing.T) {
	requireT := require.New(t)

	a := containers.NewArray[int](3)
	requireT.Equal(uint(3), a.Size())
	requireT.Equal(uint(3), a.MaxSize())
	requireT.False(a.Empty())

	z := containers.NewArray[int](0)
	requireT.Equal(uint(0), z.Size())
	requireT.True(z.Empty())
	requireT.Equal(z.Begin(), z.End())
}

func TestArraySwap(t *testing.T) {
	requireT := require.New(t)
	a := containers.NewArray[int](3)
	b := containers.NewArray[int](3)

	a.Fill(1)
	b.Fill(2)
	a.Swap(&b)

	for i := range uint(3) {
		requireT.Equal(2, *a.At(i))
		requireT.Equal(1, *b.At(i))
	}
}

func TestArrayIteration(t *testing.T) {
	requireT := require.New(t)
	a := containers.NewArray[int](4)

	for i := range uint(4) {
		*a.At(i) = int(i) * 2
	}

	var got []int
	for it := a.Begin(); it != a.End(); it = it.Next() {
		got = append(got, *it.Value())
	}
	requireT.Equal([]int{0, 2, 4, 6}, got)
}
