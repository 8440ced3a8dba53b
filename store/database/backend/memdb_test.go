package backend

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/helioshare/helioshare/store"
)

func TestMemDatabase(t *testing.T) {
	assert := assert.New(t)
	db := NewMemDatabase()

	_, err := db.Get([]byte("k1"))
	assert.Equal(store.ErrKeyNotFound, err)

	assert.Nil(db.Put([]byte("k1"), []byte("v1")))
	value, err := db.Get([]byte("k1"))
	assert.Nil(err)
	assert.Equal([]byte("v1"), value)

	exists, err := db.Has([]byte("k1"))
	assert.Nil(err)
	assert.True(exists)

	assert.Nil(db.Delete([]byte("k1")))
	exists, err = db.Has([]byte("k1"))
	assert.Nil(err)
	assert.False(exists)
}

func TestMemDatabaseBatch(t *testing.T) {
	assert := assert.New(t)
	db := NewMemDatabase()
	assert.Nil(db.Put([]byte("stale"), []byte("x")))

	batch := db.NewBatch()
	assert.Nil(batch.Put([]byte("k1"), []byte("v1")))
	assert.Nil(batch.Put([]byte("k2"), []byte("v2")))
	assert.Nil(batch.Delete([]byte("stale")))

	// Nothing is visible until Write.
	_, err := db.Get([]byte("k1"))
	assert.Equal(store.ErrKeyNotFound, err)

	assert.Nil(batch.Write())

	value, err := db.Get([]byte("k2"))
	assert.Nil(err)
	assert.Equal([]byte("v2"), value)
	_, err = db.Get([]byte("stale"))
	assert.Equal(store.ErrKeyNotFound, err)
}
