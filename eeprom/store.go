package eeprom

import (
	"github.com/hexforge/avrmem/types"
)

// Store is the backing medium of the persistent memory region. It is a dumb
// byte medium; wear minimization and width-native access live in Device.
type Store interface {
	Length() uint
	LoadByte(addr types.EEPROMAddress) byte
	// StoreByte reports whether the write reached a cell. Writes outside the
	// medium reach nothing and report false.
	StoreByte(addr types.EEPROMAddress, value byte) bool
}

// NewMemoryStore creates an in-RAM backing of the given length. Used for
// emulation and tests.
func NewMemoryStore(length uint) *MemoryStore {
	return &MemoryStore{
		data: make([]byte, length),
	}
}

// MemoryStore is a plain in-RAM backing for the persistent region.
type MemoryStore struct {
	data []byte
}

// Length returns the length of the medium.
func (s *MemoryStore) Length() uint {
	return uint(len(s.data))
}

// LoadByte reads one byte from the medium.
func (s *MemoryStore) LoadByte(addr types.EEPROMAddress) byte {
	if uint(addr) >= uint(len(s.data)) {
		return 0
	}
	return s.data[addr]
}

// StoreByte writes one byte to the medium.
func (s *MemoryStore) StoreByte(addr types.EEPROMAddress, value byte) bool {
	if uint(addr) >= uint(len(s.data)) {
		return false
	}
	s.data[addr] = value
	return true
}
