package eeprom

import (
	"encoding/binary"
	"math"
	"sync/atomic"

	"github.com/samber/lo"

	"github.com/hexforge/avrmem/types"
)

// NewDevice creates a device over the given store.
func NewDevice(store Store) *Device {
	return &Device{
		store:  store,
		writes: lo.ToPtr[uint64](0),
	}
}

// Device exposes the persistent memory region through read, write and update
// primitives.
//
// Writes are slow on the target (milliseconds per byte) and every cell has a
// bounded number of write cycles. The update primitives read first and store
// only bytes that differ; they are the only wear mitigation offered. There
// is no transactional boundary: a write interrupted mid-block leaves a
// prefix stored and the remainder untouched.
//
// The device performs no synchronization. A cell shared with an interrupt
// context needs a critical section arranged by the caller.
type Device struct {
	store Store

	// writes counts actual cell writes reaching the medium. The counter is
	// atomic so it stays readable from an interrupt context.
	writes *uint64
}

// Length returns the length of the region.
func (d *Device) Length() uint {
	return d.store.Length()
}

// WriteCount returns the number of cell writes performed so far. It is the
// wear model: repeated identical writes through the write primitives keep
// counting, updates of unchanged bytes do not.
func (d *Device) WriteCount() uint64 {
	return atomic.LoadUint64(d.writes)
}

// ReadByte reads a single byte.
func (d *Device) ReadByte(addr types.EEPROMAddress) byte {
	return d.store.LoadByte(addr)
}

// ReadWord reads a 16-bit scalar.
func (d *Device) ReadWord(addr types.EEPROMAddress) uint16 {
	var b [types.WordLength]byte
	d.ReadBlock(b[:], addr)
	return binary.LittleEndian.Uint16(b[:])
}

// ReadDword reads a 32-bit scalar.
func (d *Device) ReadDword(addr types.EEPROMAddress) uint32 {
	var b [types.DwordLength]byte
	d.ReadBlock(b[:], addr)
	return binary.LittleEndian.Uint32(b[:])
}

// ReadFloat reads a 32-bit float.
func (d *Device) ReadFloat(addr types.EEPROMAddress) float32 {
	return math.Float32frombits(d.ReadDword(addr))
}

// ReadPointer reads a stored pointer of types.PointerLength bytes.
func (d *Device) ReadPointer(addr types.EEPROMAddress) types.EEPROMAddress {
	var b [types.PointerLength]byte
	d.ReadBlock(b[:], addr)
	return types.EEPROMAddress(binary.LittleEndian.Uint16(b[:]))
}

// ReadBlock reads len(dst) bytes into ordinary memory.
func (d *Device) ReadBlock(dst []byte, addr types.EEPROMAddress) {
	for i := range dst {
		dst[i] = d.store.LoadByte(addr + types.EEPROMAddress(i))
	}
}

// WriteByte writes one byte unconditionally, consuming wear budget even when
// the cell already holds the value. A write outside the medium reaches no
// cell and consumes none.
func (d *Device) WriteByte(addr types.EEPROMAddress, value byte) {
	if d.store.StoreByte(addr, value) {
		atomic.AddUint64(d.writes, 1)
	}
}

// WriteWord writes a 16-bit scalar unconditionally.
func (d *Device) WriteWord(addr types.EEPROMAddress, value uint16) {
	var b [types.WordLength]byte
	binary.LittleEndian.PutUint16(b[:], value)
	d.WriteBlock(addr, b[:])
}

// WriteDword writes a 32-bit scalar unconditionally.
func (d *Device) WriteDword(addr types.EEPROMAddress, value uint32) {
	var b [types.DwordLength]byte
	binary.LittleEndian.PutUint32(b[:], value)
	d.WriteBlock(addr, b[:])
}

// WriteFloat writes a 32-bit float unconditionally.
func (d *Device) WriteFloat(addr types.EEPROMAddress, value float32) {
	d.WriteDword(addr, math.Float32bits(value))
}

// WriteBlock writes src unconditionally, byte by byte.
func (d *Device) WriteBlock(addr types.EEPROMAddress, src []byte) {
	for i := range src {
		d.WriteByte(addr+types.EEPROMAddress(i), src[i])
	}
}

// UpdateByte writes one byte only if the cell holds a different value.
func (d *Device) UpdateByte(addr types.EEPROMAddress, value byte) {
	if d.store.LoadByte(addr) == value {
		return
	}
	d.WriteByte(addr, value)
}

// UpdateWord updates a 16-bit scalar byte-wise.
func (d *Device) UpdateWord(addr types.EEPROMAddress, value uint16) {
	var b [types.WordLength]byte
	binary.LittleEndian.PutUint16(b[:], value)
	d.UpdateBlock(addr, b[:])
}

// UpdateDword updates a 32-bit scalar byte-wise.
func (d *Device) UpdateDword(addr types.EEPROMAddress, value uint32) {
	var b [types.DwordLength]byte
	binary.LittleEndian.PutUint32(b[:], value)
	d.UpdateBlock(addr, b[:])
}

// UpdateFloat updates a 32-bit float byte-wise.
func (d *Device) UpdateFloat(addr types.EEPROMAddress, value float32) {
	d.UpdateDword(addr, math.Float32bits(value))
}

// UpdateBlock updates a range byte-wise, writing only bytes that differ.
func (d *Device) UpdateBlock(addr types.EEPROMAddress, src []byte) {
	for i := range src {
		d.UpdateByte(addr+types.EEPROMAddress(i), src[i])
	}
}
