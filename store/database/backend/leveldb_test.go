package backend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helioshare/helioshare/store"
)

func TestLDBDatabase(t *testing.T) {
	assert := assert.New(t)
	db, err := NewLDBDatabase(t.TempDir(), 16, 16)
	require.Nil(t, err)
	defer db.Close()

	assert.Nil(db.Put([]byte("k1"), []byte("v1")))
	value, err := db.Get([]byte("k1"))
	assert.Nil(err)
	assert.Equal([]byte("v1"), value)

	_, err = db.Get([]byte("missing"))
	assert.Equal(store.ErrKeyNotFound, err)

	batch := db.NewBatch()
	assert.Nil(batch.Put([]byte("k2"), []byte("v2")))
	assert.Nil(batch.Delete([]byte("k1")))
	assert.Nil(batch.Write())

	value, err = db.Get([]byte("k2"))
	assert.Nil(err)
	assert.Equal([]byte("v2"), value)
	_, err = db.Get([]byte("k1"))
	assert.Equal(store.ErrKeyNotFound, err)
}
