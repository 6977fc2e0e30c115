// ABOUTME: Badger-backed blob storage, the default backend.
// ABOUTME: Single-process local KV; last write wins, no cross-process lock.
package storage

import (
	"fmt"
	"os"
	"sync"

	badger "github.com/dgraph-io/badger/v3"
)

type badgerKV struct {
	db *badger.DB
	mu sync.Mutex
}

// OpenBadger opens (or creates) a Badger database at dir.
func OpenBadger(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}

	opts := badger.DefaultOptions(dir).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger db: %w", err)
	}

	return NewStore(&badgerKV{db: db}), nil
}

func (b *badgerKV) Get(key string) ([]byte, error) {
	var value []byte
	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		value, err = item.ValueCopy(nil)
		return err
	})
	if err == badger.ErrKeyNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return value, nil
}

func (b *badgerKV) Set(key string, value []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), value)
	})
}

func (b *badgerKV) Delete(key string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.db.Update(func(txn *badger.Txn) error {
		err := txn.Delete([]byte(key))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		return err
	})
}

func (b *badgerKV) Close() error {
	return b.db.Close()
}
