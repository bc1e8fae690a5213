//go:build !containersafety

package containers_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hexforge/avrmem/containers"
)

func pushHelloWorld(t *testing.T, d containers.Container[byte]) {
	requireT := require.New(t)
	for _, c := range []byte("world") {
		requireT.NoError(d.PushBack(c))
	}
	for _, c := range []byte(" olleh") {
		requireT.NoError(d.PushFront(c))
	}
}

func collect(d containers.Container[byte]) string {
	b := make([]byte, 0, d.Size())
	for it := d.Begin(); it != d.End(); it = it.Next() {
		b = append(b, *it.Value())
	}
	return string(b)
}

func TestDequeMixedEndInsertion(t *testing.T) {
	requireT := require.New(t)
	d := containers.NewDeque[byte](16)

	pushHelloWorld(t, d)

	requireT.Equal(uint(11), d.Size())
	requireT.Equal("hello world", collect(d))
}

func TestDequeReverseIteration(t *testing.T) {
	requireT := require.New(t)
	d := containers.NewDeque[byte](16)

	pushHelloWorld(t, d)

	b := make([]byte, 0, d.Size())
	for it := d.RBegin(); it != d.REnd(); it = it.Next() {
		b = append(b, *it.Value())
	}
	requireT.Equal("dlrow olleh", string(b))
}

func TestDequeFrontBackMatchIndexing(t *testing.T) {
	requireT := require.New(t)
	d := containers.NewDeque[int](8)

	for i := range 5 {
		requireT.NoError(d.PushBack(i * 10))

		front, err := d.Front()
		requireT.NoError(err)
		requireT.Equal(*d.At(0), *front)

		back, err := d.Back()
		requireT.NoError(err)
		requireT.Equal(*d.At(d.Size()-1), *back)
	}
}

func TestDequeCapacityBounds(t *testing.T) {
	requireT := require.New(t)
	d := containers.NewDeque[int](3)

	requireT.True(d.Empty())
	requireT.Equal(uint(3), d.MaxSize())

	requireT.NoError(d.PushBack(1))
	requireT.NoError(d.PushBack(2))
	requireT.NoError(d.PushBack(3))
	requireT.True(d.Full())

	requireT.ErrorIs(d.PushBack(4), containers.ErrFull)
	requireT.ErrorIs(d.PushFront(0), containers.ErrFull)
	requireT.Equal(uint(3), d.Size())

	requireT.NoError(d.PopBack())
	requireT.NoError(d.PopBack())
	requireT.NoError(d.PopBack())
	requireT.True(d.Empty())

	requireT.ErrorIs(d.PopBack(), containers.ErrEmpty)
	requireT.ErrorIs(d.PopFront(), containers.ErrEmpty)

	_, err := d.Front()
	requireT.ErrorIs(err, containers.ErrEmpty)
	_, err = d.Back()
	requireT.ErrorIs(err, containers.ErrEmpty)
}

func TestDequePopFrontKeepsOrder(t *testing.T) {
	requireT := require.New(t)
	d := containers.NewDeque[byte](8)

	for _, c := range []byte("abcde") {
		requireT.NoError(d.PushBack(c))
	}

	requireT.NoError(d.PopFront())
	requireT.Equal("bcde", collect(d))

	requireT.NoError(d.PopFront())
	requireT.Equal("cde", collect(d))

	front, err := d.Front()
	requireT.NoError(err)
	requireT.Equal(byte('c'), *front)
}

func TestDequeErase(t *testing.T) {
	requireT := require.New(t)
	d := containers.NewDeque[byte](8)

	for _, c := range []byte("abcde") {
		requireT.NoError(d.PushBack(c))
	}

	// Erase the middle element; the returned iterator refers to the element
	// that followed it.
	it, err := d.Erase(d.Begin().Add(2))
	requireT.NoError(err)
	requireT.Equal(byte('d'), *it.Value())
	requireT.Equal("abde", collect(d))

	// Erase the last element; the returned iterator is End.
	it, err = d.Erase(d.Begin().Add(3))
	requireT.NoError(err)
	requireT.Equal(d.End(), it)
	requireT.Equal("abd", collect(d))

	_, err = d.Erase(d.End())
	requireT.ErrorIs(err, containers.ErrInvalidIterator)
}

func TestDequeClear(t *testing.T) {
	requireT := require.New(t)
	d := containers.NewDeque[byte](16)

	pushHelloWorld(t, d)
	d.Clear()

	requireT.True(d.Empty())
	requireT.Equal(uint(0), d.Size())
	requireT.Equal(d.Begin(), d.End())

	requireT.NoError(d.PushBack('x'))
	requireT.Equal("x", collect(d))
}

func TestDequeSwap(t *testing.T) {
	requireT := require.New(t)
	d1 := containers.NewDeque[byte](8)
	d2 := containers.NewDeque[byte](8)

	requireT.NoError(d1.PushBack('a'))
	requireT.NoError(d2.PushBack('x'))
	requireT.NoError(d2.PushBack('y'))

	d1.Swap(d2)

	requireT.Equal("xy", collect(d1))
	requireT.Equal("a", collect(d2))
}

func TestIteratorArithmetic(t *testing.T) {
	requireT := require.New(t)
	d := containers.NewDeque[byte](16)

	pushHelloWorld(t, d)

	it := d.Begin()
	requireT.Equal(it, it.Next().Prev())
	requireT.Equal(3, it.Add(3).Diff(it))
	requireT.Equal(byte('l'), *d.Begin().Add(3).Value())

	requireT.True(d.Begin().Valid())
	requireT.False(d.End().Valid())

	// Iterators of distinct containers never compare equal.
	other := containers.NewDeque[byte](8)
	requireT.NotEqual(other.Begin(), d.Begin())
}
