package host

import (
	"fmt"
	"io/ioutil"
	"os"

	"github.com/dgraph-io/badger"
)

// Store is the contract state backend of a test host.
type Store interface {
	Get(key string) (value string, ok bool)
	Set(key, value string)
	Delete(key string)
	Close() error
}

// MemStore keeps state in a plain map for fast unit tests.
type MemStore struct {
	data map[string]string
}

func NewMemStore() *MemStore {
	return &MemStore{data: map[string]string{}}
}

func (s *MemStore) Get(key string) (string, bool) {
	v, ok := s.data[key]
	return v, ok
}

func (s *MemStore) Set(key, value string) {
	s.data[key] = value
}

func (s *MemStore) Delete(key string) {
	delete(s.data, key)
}

func (s *MemStore) Close() error { return nil }

// BadgerStore persists contract state in a badger db, giving tests the same
// durable kv semantics the production host provides.
type BadgerStore struct {
	db *badger.DB
}

// NewBadgerStore opens (or creates) a badger db at dir.
func NewBadgerStore(dir string) (*BadgerStore, error) {
	opts := badger.DefaultOptions
	opts.Dir = dir
	opts.ValueDir = dir
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open db: %v", err)
	}
	return &BadgerStore{db: db}, nil
}

func (s *BadgerStore) Get(key string) (value string, ok bool) {
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		data, err := item.Value()
		if err != nil {
			return err
		}
		value = string(data)
		ok = true
		return nil
	})
	if err != nil && err != badger.ErrKeyNotFound {
		panic("store get failed: " + err.Error())
	}
	return value, ok
}

func (s *BadgerStore) Set(key, value string) {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), []byte(value))
	})
	if err != nil {
		panic("store set failed: " + err.Error())
	}
}

func (s *BadgerStore) Delete(key string) {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(key))
	})
	if err != nil {
		panic("store delete failed: " + err.Error())
	}
}

func (s *BadgerStore) Close() error {
	return s.db.Close()
}

// TempBadgerStore returns a store in a fresh temp dir plus a cleanup func.
// It panics on setup failure, which is fine for its testing-only purpose.
func TempBadgerStore() (s *BadgerStore, clean func()) {
	dir, err := ioutil.TempDir("", "vaultdao_")
	if err != nil {
		panic("failed to create tempdir: " + err.Error())
	}
	s, err = NewBadgerStore(dir)
	if err != nil {
		panic("failed to create store: " + err.Error())
	}
	return s, func() {
		s.db.Close()
		if err := os.RemoveAll(dir); err != nil {
			panic("failed to remove dir: " + err.Error())
		}
	}
}
