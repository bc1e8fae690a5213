package progmem

import (
	"github.com/hexforge/avrmem/types"
)

// NewPtr creates a pointer to an object stored in program memory.
//
// As with NewRef there is no way to verify the address; arithmetic on a
// pointer is meaningful only while it stays inside a common array, with the
// one-past-the-end position allowed but not dereferenceable.
func NewPtr[T comparable](img *Image, addr types.FlashAddress) Ptr[T] {
	return Ptr[T]{img: img, addr: addr}
}

// Ptr is a pointer to an object stored in program memory. It carries the same
// state as a Ref plus pointer arithmetic, and serves as the iterator over
// contiguous runs in the region. The zero value is the null pointer.
// Pointers compare with ==.
type Ptr[T comparable] struct {
	img  *Image
	addr types.FlashAddress
}

// Deref returns a reference to the pointed-to object. It does not read the
// region; the read happens on Ref.Load.
func (p Ptr[T]) Deref() Ref[T] {
	return Ref[T]{img: p.img, addr: p.addr}
}

// IsNull reports whether the pointer is null.
func (p Ptr[T]) IsNull() bool {
	return p == Ptr[T]{}
}

// Next returns the pointer advanced by one element.
func (p Ptr[T]) Next() Ptr[T] {
	p.addr += size[T]()
	return p
}

// Prev returns the pointer retreated by one element.
func (p Ptr[T]) Prev() Ptr[T] {
	p.addr -= size[T]()
	return p
}

// Add returns the pointer advanced by offset elements. Offset may be
// negative.
func (p Ptr[T]) Add(offset int) Ptr[T] {
	p.addr = types.FlashAddress(int(p.addr) + offset*int(size[T]()))
	return p
}

// Diff returns the number of elements between p and other. Both pointers
// must lie within a common array.
func (p Ptr[T]) Diff(other Ptr[T]) int {
	return (int(p.addr) - int(other.addr)) / int(size[T]())
}

// Address returns the raw address held by the pointer.
func (p Ptr[T]) Address() types.FlashAddress {
	return p.addr
}
