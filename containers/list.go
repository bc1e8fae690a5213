package containers

// NewList creates a list over the given container.
func NewList[T any](c Container[T]) *List[T] {
	return &List[T]{container: c}
}

// NewDequeList creates a list over a fresh linear deque of the given
// capacity.
func NewDequeList[T any](capacity uint) *List[T] {
	return NewList[T](NewDeque[T](capacity))
}

// List is a façade re-exporting the indexable surface of a deque: iterators,
// indexing, back insertion, erasure. It adds no behavior and owns no storage
// beyond the wrapped container.
type List[T any] struct {
	container Container[T]
}

// PushBack appends v at the back.
func (l *List[T]) PushBack(v T) error {
	return l.container.PushBack(v)
}

// PopBack removes the last element.
func (l *List[T]) PopBack() error {
	return l.container.PopBack()
}

// Front returns the first element.
func (l *List[T]) Front() (*T, error) {
	return l.container.Front()
}

// Back returns the last element.
func (l *List[T]) Back() (*T, error) {
	return l.container.Back()
}

// At returns the element at logical index i. The index is an unchecked
// precondition: i must be less than Size.
func (l *List[T]) At(i uint) *T {
	return l.container.At(i)
}

// Erase removes the element the iterator refers to and returns an iterator
// to the following element.
func (l *List[T]) Erase(it Iterator[T]) (Iterator[T], error) {
	return l.container.Erase(it)
}

// Size returns the number of elements.
func (l *List[T]) Size() uint {
	return l.container.Size()
}

// MaxSize returns the capacity.
func (l *List[T]) MaxSize() uint {
	return l.container.MaxSize()
}

// Empty reports whether the list holds no elements.
func (l *List[T]) Empty() bool {
	return l.container.Empty()
}

// Clear removes all elements.
func (l *List[T]) Clear() {
	l.container.Clear()
}

// Begin returns an iterator to the first element.
func (l *List[T]) Begin() Iterator[T] {
	return l.container.Begin()
}

// End returns the one-past-the-end iterator.
func (l *List[T]) End() Iterator[T] {
	return l.container.End()
}

// RBegin returns a reverse iterator to the last element.
func (l *List[T]) RBegin() ReverseIterator[T] {
	return MakeReverse(l.container.End())
}

// REnd returns the reverse one-past-the-end iterator.
func (l *List[T]) REnd() ReverseIterator[T] {
	return MakeReverse(l.container.Begin())
}

// Swap exchanges the wrapped containers.
func (l *List[T]) Swap(other *List[T]) {
	l.container, other.container = other.container, l.container
}
