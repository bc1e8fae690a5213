package containers

import "github.com/pkg/errors"

// NewDeque creates an empty deque with the given capacity.
func NewDeque[T any](capacity uint) *Deque[T] {
	return &Deque[T]{elements: NewArray[T](capacity)}
}

// Deque is a fixed-capacity double-ended queue over a linear buffer. Back
// operations are O(1); front operations shift the whole contents and are
// O(count). See CircularDeque for O(1) front operations at the cost of more
// bookkeeping.
//
// Iterator invalidation: back insertions and removals invalidate only End;
// any front operation and Erase invalidate all iterators.
type Deque[T any] struct {
	elements Array[T]
	count    uint
}

// Size returns the number of live elements.
func (d *Deque[T]) Size() uint {
	return d.count
}

// MaxSize returns the capacity.
func (d *Deque[T]) MaxSize() uint {
	return d.elements.Size()
}

// Empty reports whether the deque holds no elements.
func (d *Deque[T]) Empty() bool {
	return d.count == 0
}

// Full reports whether the deque is at capacity.
func (d *Deque[T]) Full() bool {
	return d.count == d.MaxSize()
}

// At returns the element at logical index i. The front is index 0. The index
// is an unchecked precondition: i must be less than Size.
func (d *Deque[T]) At(i uint) *T {
	return d.elements.At(i)
}

// Front returns the first element.
func (d *Deque[T]) Front() (*T, error) {
	if d.count == 0 {
		if failSoft {
			return nil, nil
		}
		return nil, errors.WithStack(ErrEmpty)
	}
	return d.elements.At(0), nil
}

// Back returns the last element.
func (d *Deque[T]) Back() (*T, error) {
	if d.count == 0 {
		if failSoft {
			return nil, nil
		}
		return nil, errors.WithStack(ErrEmpty)
	}
	return d.elements.At(d.count - 1), nil
}

// PushBack appends v at the back in O(1).
func (d *Deque[T]) PushBack(v T) error {
	if d.Full() {
		if failSoft {
			return nil
		}
		return errors.WithStack(ErrFull)
	}
	*d.elements.At(d.count) = v
	d.count++
	return nil
}

// PopBack removes the last element in O(1).
func (d *Deque[T]) PopBack() error {
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

// PushFront inserts v at the front, shifting the contents right. O(count).
func (d *Deque[T]) PushFront(v T) error {
	if d.Full() {
		if failSoft {
			return nil
		}
		return errors.WithStack(ErrFull)
	}
	for i := d.count; i > 0; i-- {
		*d.elements.At(i) = *d.elements.At(i - 1)
	}
	*d.elements.At(0) = v
	d.count++
	return nil
}

// PopFront removes the first element, shifting the contents left. O(count).
func (d *Deque[T]) PopFront() error {
	if d.count == 0 {
		if failSoft {
			return nil
		}
		return errors.WithStack(ErrEmpty)
	}
	for i := uint(0); i < d.count-1; i++ {
		*d.elements.At(i) = *d.elements.At(i + 1)
	}
	d.count--
	d.release(d.count)
	return nil
}

// Erase removes the element the iterator refers to, shifting the tail left,
// and returns an iterator to the element following the erased one, or End if
// the erased element was last.
func (d *Deque[T]) Erase(it Iterator[T]) (Iterator[T], error) {
	if it.index >= d.count {
		if failSoft {
			return it, nil
		}
		return it, errors.WithStack(ErrInvalidIterator)
	}
	for i := it.index; i < d.count-1; i++ {
		*d.elements.At(i) = *d.elements.At(i + 1)
	}
	d.count--
	d.release(d.count)
	return Iterator[T]{c: d, index: it.index}, nil
}

// Clear removes all elements.
func (d *Deque[T]) Clear() {
	for i := uint(0); i < d.count; i++ {
		d.release(i)
	}
	d.count = 0
}

// Swap exchanges the contents of the two deques.
func (d *Deque[T]) Swap(other *Deque[T]) {
	d.elements.Swap(&other.elements)
	d.count, other.count = other.count, d.count
}

// Begin returns an iterator to the first element.
func (d *Deque[T]) Begin() Iterator[T] {
	return Iterator[T]{c: d}
}

// End returns the one-past-the-end iterator.
func (d *Deque[T]) End() Iterator[T] {
	return Iterator[T]{c: d, index: d.count}
}

// RBegin returns a reverse iterator to the last element.
func (d *Deque[T]) RBegin() ReverseIterator[T] {
	return MakeReverse(d.End())
}

// REnd returns the reverse one-past-the-end iterator.
func (d *Deque[T]) REnd() ReverseIterator[T] {
	return MakeReverse(d.Begin())
}

// release zeroes a popped slot so values it referenced are not retained.
func (d *Deque[T]) release(i uint) {
	var zero T
	*d.elements.At(i) = zero
}
