package eeprom

import (
	"github.com/outofforest/photon"

	"github.com/hexforge/avrmem/types"
)

// Read materializes a copy of the object stored at addr. The object type
// must be trivially copyable. As in program memory, single-byte objects go
// through the byte primitive and everything else through a block read.
func Read[T comparable](d *Device, addr types.EEPROMAddress) T {
	var v T
	b := photon.NewFromValue(&v).B
	if len(b) == 1 {
		b[0] = d.ReadByte(addr)
		return v
	}
	d.ReadBlock(b, addr)
	return v
}

// Write stores the object at addr unconditionally, consuming wear budget
// even for bytes that already hold their new value. The object's in-memory
// representation is stored as-is; see progmem.Place for the byte-order
// caveat this carries.
func Write[T comparable](d *Device, addr types.EEPROMAddress, v T) {
	b := photon.NewFromValue(&v).B
	if len(b) == 1 {
		d.WriteByte(addr, b[0])
		return
	}
	d.WriteBlock(addr, b)
}

// Update stores the object at addr, writing only bytes that differ from the
// current contents. An update of an identical value performs zero cell
// writes.
func Update[T comparable](d *Device, addr types.EEPROMAddress, v T) {
	b := photon.NewFromValue(&v).B
	if len(b) == 1 {
		d.UpdateByte(addr, b[0])
		return
	}
	d.UpdateBlock(addr, b)
}

// size returns the number of bytes a stored T occupies.
func size[T comparable]() types.EEPROMAddress {
	var v T
	return types.EEPROMAddress(len(photon.NewFromValue(&v).B))
}
