package containers

// container is the surface iterators use to reach elements.
type container[T any] interface {
	At(i uint) *T
	Size() uint
}

// Iterator is an index-based iterator. Holding a container identity and a
// logical index instead of a raw pointer keeps the iterator meaningful
// across the wrap-around of a circular buffer.
//
// Iterators compare with ==, which compares container identity and index.
// Comparing iterators of distinct containers is unspecified beyond being
// unequal.
type Iterator[T any] struct {
	c     container[T]
	index uint
}

// Valid reports whether the iterator is dereferenceable, i.e. not
// one-past-the-end.
func (it Iterator[T]) Valid() bool {
	return it.c != nil && it.index < it.c.Size()
}

// Value returns the element the iterator refers to. The iterator must be
// dereferenceable; this is an unchecked precondition.
func (it Iterator[T]) Value() *T {
	return it.c.At(it.index)
}

// Next returns the iterator advanced by one element.
func (it Iterator[T]) Next() Iterator[T] {
	it.index++
	return it
}

// Prev returns the iterator retreated by one element.
func (it Iterator[T]) Prev() Iterator[T] {
	it.index--
	return it
}

// Add returns the iterator advanced by offset elements. Offset may be
// negative.
func (it Iterator[T]) Add(offset int) Iterator[T] {
	it.index = uint(int(it.index) + offset)
	return it
}

// Diff returns the number of elements between it and other. Both iterators
// must refer to the same container.
func (it Iterator[T]) Diff(other Iterator[T]) int {
	return int(it.index) - int(other.index)
}

// Index returns the logical index the iterator refers to.
func (it Iterator[T]) Index() uint {
	return it.index
}

// MakeReverse turns an iterator into a reverse iterator over the same
// position. The reverse of End refers to the last element, the reverse of
// Begin is the reverse one-past-the-end.
func MakeReverse[T any](it Iterator[T]) ReverseIterator[T] {
	return ReverseIterator[T]{base: it}
}

// ReverseIterator walks a container back to front. It holds the base
// iterator one past the element it refers to.
type ReverseIterator[T any] struct {
	base Iterator[T]
}

// Valid reports whether the reverse iterator is dereferenceable.
func (it ReverseIterator[T]) Valid() bool {
	return it.base.c != nil && it.base.index > 0
}

// Value returns the element the reverse iterator refers to. The iterator
// must be dereferenceable; this is an unchecked precondition.
func (it ReverseIterator[T]) Value() *T {
	return it.base.Prev().Value()
}

// Next returns the reverse iterator advanced by one element, i.e. moved
// toward the front.
func (it ReverseIterator[T]) Next() ReverseIterator[T] {
	it.base = it.base.Prev()
	return it
}

// Prev returns the reverse iterator retreated by one element.
func (it ReverseIterator[T]) Prev() ReverseIterator[T] {
	it.base = it.base.Next()
	return it
}

// Base returns the underlying forward iterator.
func (it ReverseIterator[T]) Base() Iterator[T] {
	return it.base
}
