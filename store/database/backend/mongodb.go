package backend

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/helioshare/helioshare/store"
	"github.com/helioshare/helioshare/store/database"
)

const mongoRequestTimeout = 10 * time.Second

// Document is the BSON shape of a stored key/value pair.
type Document struct {
	Key   []byte `bson:"_id"`
	Value []byte `bson:"value"`
}

// MongoDatabase is a MongoDB wrapped object.
type MongoDatabase struct {
	client     *mongo.Client
	collection *mongo.Collection
}

// NewMongoDatabase connects to the configured MongoDB deployment.
func NewMongoDatabase(uri string, dbName string) (*MongoDatabase, error) {
	ctx, cancel := context.WithTimeout(context.Background(), mongoRequestTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}

	return &MongoDatabase{
		client:     client,
		collection: client.Database(dbName).Collection("ledger"),
	}, nil
}

// Put puts the given key / value to the database
func (db *MongoDatabase) Put(key []byte, value []byte) error {
	ctx, cancel := context.WithTimeout(context.Background(), mongoRequestTimeout)
	defer cancel()

	_, err := db.collection.ReplaceOne(ctx,
		bson.M{"_id": key},
		Document{Key: key, Value: value},
		options.Replace().SetUpsert(true))
	return err
}

// Has checks if the given key is present in the database
func (db *MongoDatabase) Has(key []byte) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), mongoRequestTimeout)
	defer cancel()

	count, err := db.collection.CountDocuments(ctx, bson.M{"_id": key})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Get returns the given key if it's present.
func (db *MongoDatabase) Get(key []byte) ([]byte, error) {
	ctx, cancel := context.WithTimeout(context.Background(), mongoRequestTimeout)
	defer cancel()

	var document Document
	err := db.collection.FindOne(ctx, bson.M{"_id": key}).Decode(&document)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, store.ErrKeyNotFound
		}
		return nil, err
	}
	return document.Value, nil
}

// Delete deletes the key from the database
func (db *MongoDatabase) Delete(key []byte) error {
	ctx, cancel := context.WithTimeout(context.Background(), mongoRequestTimeout)
	defer cancel()

	res, err := db.collection.DeleteOne(ctx, bson.M{"_id": key})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return store.ErrKeyNotFound
	}
	return nil
}

func (db *MongoDatabase) Close() {
	ctx, cancel := context.WithTimeout(context.Background(), mongoRequestTimeout)
	defer cancel()
	db.client.Disconnect(ctx)
}

func (db *MongoDatabase) NewBatch() database.Batch {
	return &mongodbBatch{collection: db.collection}
}

type mongodbBatch struct {
	collection *mongo.Collection
	models     []mongo.WriteModel
	size       int
}

func (b *mongodbBatch) Put(key, value []byte) error {
	b.models = append(b.models, mongo.NewReplaceOneModel().
		SetFilter(bson.M{"_id": key}).
		SetReplacement(Document{Key: key, Value: value}).
		SetUpsert(true))
	b.size += len(value)
	return nil
}

func (b *mongodbBatch) Delete(key []byte) error {
	b.models = append(b.models, mongo.NewDeleteOneModel().SetFilter(bson.M{"_id": key}))
	b.size++
	return nil
}

func (b *mongodbBatch) Write() error {
	if len(b.models) == 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), mongoRequestTimeout)
	defer cancel()

	_, err := b.collection.BulkWrite(ctx, b.models, options.BulkWrite().SetOrdered(true))
	if err != nil {
		return err
	}
	b.Reset()
	return nil
}

func (b *mongodbBatch) ValueSize() int {
	return b.size
}

func (b *mongodbBatch) Reset() {
	b.models = nil
	b.size = 0
}
