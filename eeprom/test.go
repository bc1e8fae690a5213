package eeprom

import (
	"context"
	"testing"

	"github.com/outofforest/logger"
	"github.com/outofforest/parallel"
	"github.com/pkg/errors"
)

// RunFileStoreInTest creates a file store and runs its flush daemon for unit
// tests.
func RunFileStoreInTest(t *testing.T, path string, length uint) (*FileStore, error) {
	store, closeFunc, err := NewFileStore(path, length)
	if err != nil {
		return nil, err
	}
	t.Cleanup(closeFunc)

	ctx, cancel := context.WithCancel(logger.WithLogger(context.Background(), logger.New(logger.DefaultConfig)))

	group := parallel.NewGroup(ctx)
	group.Spawn("store", parallel.Continue, store.Run)

	t.Cleanup(func() {
		group.Exit(nil)
		if err := group.Wait(); err != nil && !errors.Is(err, context.Canceled) {
			t.Fatal(err)
		}
		cancel()
	})

	return store, nil
}
