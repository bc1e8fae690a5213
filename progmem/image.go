package progmem

import (
	"github.com/pkg/errors"

	"github.com/hexforge/avrmem/types"
)

// NewImage creates an empty program memory image of the given length.
// Values are put into the image through the placement functions and the image
// is then sealed, mirroring the programming step of the target device.
func NewImage(length uint) (*Image, error) {
	if length > types.FlashLength {
		return nil, errors.Errorf("image length %d exceeds the program memory region", length)
	}
	return &Image{
		data: make([]byte, length),
	}, nil
}

// Image is a byte image of the program memory region. Once sealed it is
// read-only, exactly as the region is on the target.
type Image struct {
	data   []byte
	cursor types.FlashAddress
	sealed bool
}

// Length returns the length of the image.
func (img *Image) Length() uint {
	return uint(len(img.data))
}

// Seal freezes the image. Placements after sealing panic.
func (img *Image) Seal() {
	img.sealed = true
}

// alloc reserves n bytes for a placement. Placement happens at programming
// time only, so failures here are programming errors, not runtime conditions.
func (img *Image) alloc(n uint) types.FlashAddress {
	if img.sealed {
		panic("placement into a sealed image")
	}
	if uint(img.cursor)+n > uint(len(img.data)) {
		panic("image overflow")
	}
	addr := img.cursor
	img.cursor += types.FlashAddress(n)
	return addr
}

func (img *Image) place(data []byte) types.FlashAddress {
	addr := img.alloc(uint(len(data)))
	copy(img.data[addr:], data)
	return addr
}
