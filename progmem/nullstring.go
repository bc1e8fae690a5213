package progmem

import (
	"github.com/hexforge/avrmem/types"
)

// NewNullString creates a NUL-terminated string handle starting at addr.
func NewNullString(img *Image, addr types.FlashAddress) NullString {
	return NullString{ptr: NewPtr[byte](img, addr)}
}

// NullString is a bare-pointer handle over a NUL-terminated character run in
// program memory. It carries no length; Size scans the region byte by byte.
//
// NullStrings compare with ==, which compares addresses, never content.
type NullString struct {
	ptr Ptr[byte]
}

// Size returns the number of characters before the terminator. It is
// O(length): each byte is read through the byte primitive until a zero byte
// is observed. The terminator is not counted.
func (s NullString) Size() uint {
	var n uint
	for p := s.ptr; p.Deref().Load() != 0; p = p.Next() {
		n++
	}
	return n
}

// Begin returns a pointer to the first character.
func (s NullString) Begin() Ptr[byte] {
	return s.ptr
}

// End returns the one-past-the-end pointer, which addresses the terminator.
// Like Size it is an O(length) scan.
func (s NullString) End() Ptr[byte] {
	return s.ptr.Add(int(s.Size()))
}

// Load materializes the characters before the terminator as an ordinary
// string.
func (s NullString) Load() string {
	b := make([]byte, 0, 16)
	for p := s.ptr; ; p = p.Next() {
		c := p.Deref().Load()
		if c == 0 {
			return string(b)
		}
		b = append(b, c)
	}
}

// Address returns the raw address of the first character.
func (s NullString) Address() types.FlashAddress {
	return s.ptr.Address()
}
