package eeprom

import (
	"context"
	"os"

	"github.com/outofforest/logger"
	"github.com/outofforest/parallel"
	"github.com/pkg/errors"
	"golang.org/x/sys/unix"

	"github.com/hexforge/avrmem/types"
)

// NewFileStore maps the persistent region onto a file so its contents
// survive process restarts, the way the region survives power cycles on the
// target. The file is grown to length if it is shorter.
func NewFileStore(path string, length uint) (*FileStore, func(), error) {
	if length > types.EEPROMLength {
		return nil, nil, errors.Errorf("store length %d exceeds the persistent memory region", length)
	}

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o600)
	if err != nil {
		return nil, nil, errors.WithStack(err)
	}

	if err := f.Truncate(int64(length)); err != nil {
		_ = f.Close()
		return nil, nil, errors.WithStack(err)
	}

	data, err := unix.Mmap(int(f.Fd()), 0, int(length), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		_ = f.Close()
		return nil, nil, errors.Wrapf(err, "mapping store file failed")
	}

	s := &FileStore{
		data:   data,
		syncCh: make(chan struct{}, 1),
	}
	return s, func() {
		_ = unix.Munmap(data)
		_ = f.Close()
	}, nil
}

// FileStore is a file-backed store mapped into memory. Byte loads and stores
// hit the mapping directly; flushing the mapping to the file is handled by
// the daemon started with Run.
type FileStore struct {
	data   []byte
	syncCh chan struct{}
}

// Length returns the length of the medium.
func (s *FileStore) Length() uint {
	return uint(len(s.data))
}

// LoadByte reads one byte from the mapping.
func (s *FileStore) LoadByte(addr types.EEPROMAddress) byte {
	if uint(addr) >= uint(len(s.data)) {
		return 0
	}
	return s.data[addr]
}

// StoreByte writes one byte to the mapping.
func (s *FileStore) StoreByte(addr types.EEPROMAddress, value byte) bool {
	if uint(addr) >= uint(len(s.data)) {
		return false
	}
	s.data[addr] = value
	return true
}

// Sync requests that the mapping is flushed to the file. It never blocks;
// requests arriving while a flush is pending coalesce into one.
func (s *FileStore) Sync() {
	select {
	case s.syncCh <- struct{}{}:
	default:
	}
}

// Run runs the flush daemon. A final flush happens on context cancellation.
func (s *FileStore) Run(ctx context.Context) error {
	return parallel.Run(ctx, func(ctx context.Context, spawn parallel.SpawnFn) error {
		spawn("flusher", parallel.Fail, func(ctx context.Context) error {
			log := logger.Get(ctx)
			for {
				select {
				case <-ctx.Done():
					if err := unix.Msync(s.data, unix.MS_SYNC); err != nil {
						return errors.WithStack(err)
					}
					return errors.WithStack(ctx.Err())
				case <-s.syncCh:
					if err := unix.Msync(s.data, unix.MS_SYNC); err != nil {
						return errors.WithStack(err)
					}
					log.Debug("persistent region flushed")
				}
			}
		})
		return nil
	})
}
