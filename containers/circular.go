package containers

import "github.com/pkg/errors"

// NewCircularDeque creates an empty circular deque with the given capacity.
func NewCircularDeque[T any](capacity uint) *CircularDeque[T] {
	return &CircularDeque[T]{elements: NewArray[T](capacity)}
}

// CircularDeque is a fixed-capacity double-ended queue over a circular
// buffer. All operations at both ends are O(1). Logical index i lives in
// physical slot (head+i) mod capacity.
//
// Iterator invalidation: back insertions and removals invalidate only End;
// any front operation, Erase and Clear invalidate all iterators. Iterators
// are index-based, so surviving iterators stay meaningful across the
// wrap-around.
type CircularDeque[T any] struct {
	elements Array[T]
	count    uint
	head     uint
}

// Size returns the number of live elements.
func (d *CircularDeque[T]) Size() uint {
	return d.count
}

// MaxSize returns the capacity.
func (d *CircularDeque[T]) MaxSize() uint {
	return d.elements.Size()
}

// Empty reports whether the deque holds no elements.
func (d *CircularDeque[T]) Empty() bool {
	return d.count == 0
}

// Full reports whether the deque is at capacity.
func (d *CircularDeque[T]) Full() bool {
	return d.count == d.MaxSize()
}

// At returns the element at logical index i. The front is index 0. The index
// is an unchecked precondition: i must be less than Size.
func (d *CircularDeque[T]) At(i uint) *T {
	return d.elements.At(d.physical(i))
}

// Front returns the first element.
func (d *CircularDeque[T]) Front() (*T, error) {
	if d.count == 0 {
		if failSoft {
			return nil, nil
		}
		return nil, errors.WithStack(ErrEmpty)
	}
	return d.elements.At(d.head), nil
}

// Back returns the last element.
func (d *CircularDeque[T]) Back() (*T, error) {
	if d.count == 0 {
		if failSoft {
			return nil, nil
		}
		return nil, errors.WithStack(ErrEmpty)
	}
	return d.elements.At(d.physical(d.count - 1)), nil
}

// PushBack appends v at the back.
func (d *CircularDeque[T]) PushBack(v T) error {
	if d.Full() {
		if failSoft {
			return nil
		}
		return errors.WithStack(ErrFull)
	}
	*d.elements.At(d.physical(d.count)) = v
	d.count++
	return nil
}

// PopBack removes the last element.
func (d *CircularDeque[T]) PopBack() error {
	if d.count == 0 {
		if failSoft {
			return nil
		}
		return errors.WithStack(ErrEmpty)
	}
	d.count--
	d.release(d.count)
	return nil
}

// PushFront inserts v at the front by moving head one slot back.
func (d *CircularDeque[T]) PushFront(v T) error {
	if d.Full() {
		if failSoft {
			return nil
		}
		return errors.WithStack(ErrFull)
	}
	d.head = (d.head + d.MaxSize() - 1) % d.MaxSize()
	*d.elements.At(d.head) = v
	d.count++
	return nil
}

// PopFront removes the first element by moving head one slot forward.
func (d *CircularDeque[T]) PopFront() error {
	if d.count == 0 {
		if failSoft {
			return nil
		}
		return errors.WithStack(ErrEmpty)
	}
	d.release(0)
	d.head = (d.head + 1) % d.MaxSize()
	d.count--
	return nil
}

// Erase removes the element the iterator refers to, shifting the logical
// tail left, and returns an iterator to the element following the erased
// one, or End if the erased element was last.
func (d *CircularDeque[T]) Erase(it Iterator[T]) (Iterator[T], error) {
	if it.index >= d.count {
		if failSoft {
			return it, nil
		}
		return it, errors.WithStack(ErrInvalidIterator)
	}
	for i := it.index; i < d.count-1; i++ {
		*d.At(i) = *d.At(i + 1)
	}
	d.count--
	d.release(d.count)
	return Iterator[T]{c: d, index: it.index}, nil
}

// Clear removes all elements. The walk is over logical indices, so it is
// correct whether or not the live range wraps. Head is normalized to 0.
func (d *CircularDeque[T]) Clear() {
	for i := uint(0); i < d.count; i++ {
		d.release(i)
	}
	d.count = 0
	d.head = 0
}

// Swap exchanges the contents of the two deques.
func (d *CircularDeque[T]) Swap(other *CircularDeque[T]) {
	d.elements.Swap(&other.elements)
	d.count, other.count = other.count, d.count
	d.head, other.head = other.head, d.head
}

// Begin returns an iterator to the first element.
func (d *CircularDeque[T]) Begin() Iterator[T] {
	return Iterator[T]{c: d}
}

// End returns the one-past-the-end iterator.
func (d *CircularDeque[T]) End() Iterator[T] {
	return Iterator[T]{c: d, index: d.count}
}

// RBegin returns a reverse iterator to the last element.
func (d *CircularDeque[T]) RBegin() ReverseIterator[T] {
	return MakeReverse(d.End())
}

// REnd returns the reverse one-past-the-end iterator.
func (d *CircularDeque[T]) REnd() ReverseIterator[T] {
	return MakeReverse(d.Begin())
}

func (d *CircularDeque[T]) physical(i uint) uint {
	return (d.head + i) % d.MaxSize()
}

// release zeroes the slot at logical index i so values it referenced are not
// retained.
func (d *CircularDeque[T]) release(i uint) {
	var zero T
	*d.At(i) = zero
}
