package containers

// NewArray creates a fixed-capacity array of length zero-valued elements.
// The storage is allocated once here and never again; capacity is a
// constructor argument because the language has no compile-time length
// parameters.
func NewArray[T any](length uint) Array[T] {
	return Array[T]{elements: make([]T, length)}
}

// Array is an ordinary fixed-length in-RAM array. It is the storage of both
// deque implementations. A zero-length array has no elements and null
// iterators; element access on it is a precondition violation like any other
// out-of-range index.
type Array[T any] struct {
	elements []T
}

// Size returns the number of elements.
func (a *Array[T]) Size() uint {
	return uint(len(a.elements))
}

// MaxSize returns the number of elements. It equals Size.
func (a *Array[T]) MaxSize() uint {
	return uint(len(a.elements))
}

// Empty reports whether the array has no elements.
func (a *Array[T]) Empty() bool {
	return len(a.elements) == 0
}

// At returns the i-th element. The index is an unchecked precondition:
// i must be less than Size.
func (a *Array[T]) At(i uint) *T {
	return &a.elements[i]
}

// Fill assigns v to every element.
func (a *Array[T]) Fill(v T) {
	for i := range a.elements {
		a.elements[i] = v
	}
}

// Swap exchanges the contents of the two arrays.
func (a *Array[T]) Swap(other *Array[T]) {
	a.elements, other.elements = other.elements, a.elements
}

// Begin returns an iterator to the first element.
func (a *Array[T]) Begin() Iterator[T] {
	return Iterator[T]{c: a}
}

// End returns the one-past-the-end iterator.
func (a *Array[T]) End() Iterator[T] {
	return Iterator[T]{c: a, index: a.Size()}
}
