package progmem

import (
	"github.com/hexforge/avrmem/types"
)

// NewString creates a length-prefixed handle over a run of length characters
// starting at addr.
func NewString(img *Image, addr types.FlashAddress, length uint) String {
	return String{ptr: NewPtr[byte](img, addr), length: length}
}

// String is a length-prefixed handle over a character run in program memory.
// Size is O(1). When the string was placed from a literal the length includes
// the NUL terminator and iteration yields it as the final character.
//
// Strings compare with ==, which compares address and length, never content.
// That keeps equality O(1); content comparison is out of scope.
type String struct {
	ptr    Ptr[byte]
	length uint
}

// Size returns the number of characters, including the terminator when it
// was counted in at construction.
func (s String) Size() uint {
	return s.length
}

// At returns the i-th character. The index is an unchecked precondition.
func (s String) At(i uint) byte {
	return s.ptr.Add(int(i)).Deref().Load()
}

// Begin returns a pointer to the first character.
func (s String) Begin() Ptr[byte] {
	return s.ptr
}

// End returns the one-past-the-end pointer.
func (s String) End() Ptr[byte] {
	return s.ptr.Add(int(s.length))
}

// NullTerminated narrows the handle to its NUL-terminated form, discarding
// the cached length.
func (s String) NullTerminated() NullString {
	return NullString{ptr: s.ptr}
}

// Load materializes all Size characters as an ordinary string, terminator
// included if the length counts it.
func (s String) Load() string {
	b := make([]byte, s.length)
	p := s.ptr
	for i := range b {
		b[i] = p.Deref().Load()
		p = p.Next()
	}
	return string(b)
}
