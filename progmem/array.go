package progmem

import (
	"github.com/hexforge/avrmem/types"
)

// NewArray creates a handle over a contiguous run of length objects starting
// at addr.
func NewArray[T comparable](img *Image, addr types.FlashAddress, length uint) Array[T] {
	return Array[T]{ptr: NewPtr[T](img, addr), length: length}
}

// Array is a handle over a fixed-length contiguous run of objects in program
// memory. The region is read-only, so the array has no mutation path.
type Array[T comparable] struct {
	ptr    Ptr[T]
	length uint
}

// Size returns the number of elements.
func (a Array[T]) Size() uint {
	return a.length
}

// MaxSize returns the number of elements. It equals Size; the length is
// fixed when the handle is made.
func (a Array[T]) MaxSize() uint {
	return a.length
}

// Empty reports whether the array has no elements.
func (a Array[T]) Empty() bool {
	return a.length == 0
}

// At returns a reference to the i-th element. The index is an unchecked
// precondition: i must be less than Size.
func (a Array[T]) At(i uint) Ref[T] {
	return a.ptr.Add(int(i)).Deref()
}

// Front returns a reference to the first element.
func (a Array[T]) Front() Ref[T] {
	return a.ptr.Deref()
}

// Back returns a reference to the last element.
func (a Array[T]) Back() Ref[T] {
	return a.ptr.Add(int(a.length) - 1).Deref()
}

// Data returns a pointer to the first element.
func (a Array[T]) Data() Ptr[T] {
	return a.ptr
}

// Begin returns a pointer to the first element.
func (a Array[T]) Begin() Ptr[T] {
	return a.ptr
}

// End returns the one-past-the-end pointer. It must not be dereferenced.
func (a Array[T]) End() Ptr[T] {
	return a.ptr.Add(int(a.length))
}
