//go:build !containersafety

package containers_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hexforge/avrmem/containers"
)

func TestStackLIFO(t *testing.T) {
	requireT := require.New(t)
	s := containers.NewDequeStack[int](4)

	requireT.True(s.Empty())
	requireT.Equal(uint(4), s.MaxSize())

	for i := range 3 {
		requireT.NoError(s.Push(i))
	}

	for i := 2; i >= 0; i-- {
		top, err := s.Top()
		requireT.NoError(err)
		requireT.Equal(i, *top)
		requireT.NoError(s.Pop())
	}
	requireT.True(s.Empty())
}

func TestQueueFIFO(t *testing.T) {
	requireT := require.New(t)

	for _, q := range []*containers.Queue[int]{
		containers.NewDequeQueue[int](4),
		containers.NewFastQueue[int](4),
	} {
		for i := range 3 {
			requireT.NoError(q.Push(i))
		}

		back, err := q.Back()
		requireT.NoError(err)
		requireT.Equal(2, *back)

		for i := range 3 {
			front, err := q.Front()
			requireT.NoError(err)
			requireT.Equal(i, *front)
			requireT.NoError(q.Pop())
		}
		requireT.True(q.Empty())
	}
}

func TestAdapterForwarding(t *testing.T) {
	requireT := require.New(t)

	// A push followed by the matching pop leaves the wrapped container
	// observably identical.
	d := containers.NewDeque[byte](8)
	for _, c := range []byte("abc") {
		requireT.NoError(d.PushBack(c))
	}

	s := containers.NewStack[byte](d)
	requireT.NoError(s.Push('x'))
	requireT.NoError(s.Pop())
	requireT.Equal(uint(3), d.Size())
	requireT.Equal("abc", collect(d))

	q := containers.NewQueue[byte](d)
	requireT.NoError(q.Push('x'))
	front, err := q.Front()
	requireT.NoError(err)
	requireT.Equal(byte('a'), *front)
	requireT.NoError(q.Pop())
	requireT.Equal("bcx", collect(d))
}

func TestListSurface(t *testing.T) {
	requireT := require.New(t)
	l := containers.NewDequeList[byte](8)

	for _, c := range []byte("abcd") {
		requireT.NoError(l.PushBack(c))
	}
	requireT.Equal(uint(4), l.Size())
	requireT.Equal(byte('c'), *l.At(2))

	it, err := l.Erase(l.Begin().Add(1))
	requireT.NoError(err)
	requireT.Equal(byte('c'), *it.Value())

	var got []byte
	for it := l.Begin(); it != l.End(); it = it.Next() {
		got = append(got, *it.Value())
	}
	requireT.Equal([]byte("acd"), got)

	var rev []byte
	for it := l.RBegin(); it != l.REnd(); it = it.Next() {
		rev = append(rev, *it.Value())
	}
	requireT.Equal([]byte("dca"), rev)

	l.Clear()
	requireT.True(l.Empty())
}

func TestListSwap(t *testing.T) {
	requireT := require.New(t)
	l1 := containers.NewDequeList[byte](4)
	l2 := containers.NewDequeList[byte](4)

	requireT.NoError(l1.PushBack('a'))
	requireT.NoError(l2.PushBack('x'))
	requireT.NoError(l2.PushBack('y'))

	l1.Swap(l2)

	requireT.Equal(uint(2), l1.Size())
	requireT.Equal(uint(1), l2.Size())
	requireT.Equal(byte('x'), *l1.At(0))
	requireT.Equal(byte('a'), *l2.At(0))
}

func TestStackOverCircularDeque(t *testing.T) {
	requireT := require.New(t)
	s := containers.NewStack[int](containers.NewCircularDeque[int](2))

	requireT.NoError(s.Push(1))
	requireT.NoError(s.Push(2))
	requireT.ErrorIs(s.Push(3), containers.ErrFull)

	top, err := s.Top()
	requireT.NoError(err)
	requireT.Equal(2, *top)
}
