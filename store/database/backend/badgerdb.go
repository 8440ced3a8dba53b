package backend

import (
	"github.com/dgraph-io/badger"

	"github.com/helioshare/helioshare/store"
	"github.com/helioshare/helioshare/store/database"
)

// BadgerDatabase is a BadgerDB wrapped object.
type BadgerDatabase struct {
	db *badger.DB
}

// NewBadgerDatabase returns a BadgerDB wrapped object.
func NewBadgerDatabase(dirname string) (*BadgerDatabase, error) {
	opts := badger.DefaultOptions(dirname)
	opts.Dir = dirname
	opts.ValueDir = dirname
	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}

	return &BadgerDatabase{
		db: db,
	}, nil
}

// Put puts the given key / value to the database
func (db *BadgerDatabase) Put(key []byte, value []byte) error {
	return db.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, value)
	})
}

// Has checks if the given key is present in the database
func (db *BadgerDatabase) Has(key []byte) (bool, error) {
	err := db.db.View(func(txn *badger.Txn) error {
		_, err := txn.Get(key)
		return err
	})
	if err != nil {
		if err == badger.ErrKeyNotFound || err == badger.ErrEmptyKey {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Get returns the given key if it's present.
func (db *BadgerDatabase) Get(key []byte) ([]byte, error) {
	var value []byte
	err := db.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			if err == badger.ErrKeyNotFound || err == badger.ErrEmptyKey {
				return store.ErrKeyNotFound
			}
			return err
		}
		return item.Value(func(val []byte) error {
			value = append([]byte{}, val...)
			return nil
		})
	})
	return value, err
}

// Delete deletes the key from the database
func (db *BadgerDatabase) Delete(key []byte) error {
	err := db.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(key)
	})
	if err == badger.ErrKeyNotFound || err == badger.ErrEmptyKey {
		return store.ErrKeyNotFound
	}
	return err
}

func (db *BadgerDatabase) Close() {
	db.db.Close()
}

func (db *BadgerDatabase) NewBatch() database.Batch {
	return &badgerdbBatch{db: db.db}
}

type badgerdbBatch struct {
	db      *badger.DB
	puts    []kv
	deletes []kv
	size    int
}

func (b *badgerdbBatch) Put(key, value []byte) error {
	b.puts = append(b.puts, kv{k: key, v: value})
	b.size += len(value)
	return nil
}

func (b *badgerdbBatch) Delete(key []byte) error {
	b.deletes = append(b.deletes, kv{k: key})
	b.size++
	return nil
}

func (b *badgerdbBatch) Write() error {
	txn := b.db.NewTransaction(true)
	for i := range b.puts {
		entry := b.puts[i]
		err := txn.Set(entry.k, entry.v)
		if err == badger.ErrTxnTooBig {
			if err := txn.Commit(); err != nil {
				return err
			}
			txn = b.db.NewTransaction(true)
			err = txn.Set(entry.k, entry.v)
		}
		if err != nil {
			return err
		}
	}

	for i := range b.deletes {
		entry := b.deletes[i]
		err := txn.Delete(entry.k)
		if err == badger.ErrTxnTooBig {
			if err := txn.Commit(); err != nil {
				return err
			}
			txn = b.db.NewTransaction(true)
			err = txn.Delete(entry.k)
		}
		if err != nil {
			return err
		}
	}

	if err := txn.Commit(); err != nil {
		return err
	}

	b.Reset()
	return nil
}

func (b *badgerdbBatch) ValueSize() int {
	return b.size
}

func (b *badgerdbBatch) Reset() {
	b.puts = nil
	b.deletes = nil
	b.size = 0
}
