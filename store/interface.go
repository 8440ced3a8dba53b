package store

import "github.com/pkg/errors"

// ErrKeyNotFound is returned when a key is not present in the store.
var ErrKeyNotFound = errors.New("key not found")

// Store is the interface for key/value storages with typed values.
type Store interface {
	Put(key []byte, value interface{}) error
	Delete(key []byte) error
	Get(key []byte, value interface{}) error
}
