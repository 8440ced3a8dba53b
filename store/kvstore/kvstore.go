package kvstore

import (
	"encoding/json"

	"github.com/helioshare/helioshare/store"
	"github.com/helioshare/helioshare/store/database"
)

// NewKVStore creates a new instance of KVStore.
func NewKVStore(db database.Database) store.Store {
	return &KVStore{db}
}

// KVStore is a Database wrapped object.
type KVStore struct {
	db database.Database
}

// Put upserts key/value into DB
func (store *KVStore) Put(key []byte, value interface{}) error {
	encodedValue, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return store.db.Put(key, encodedValue)
}

// Delete deletes key entry from DB
func (store *KVStore) Delete(key []byte) error {
	return store.db.Delete(key)
}

// Get looks up DB with key and returns result into value (passed by reference)
func (store *KVStore) Get(key []byte, value interface{}) error {
	encodedValue, err := store.db.Get(key)
	if err != nil {
		return err
	}
	return json.Unmarshal(encodedValue, value)
}
