package transportRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"voyago/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrSeatStateConflict signals that a seat-flag update matched no document
// because another transaction already flipped one of the requested seats.
var ErrSeatStateConflict = errors.New("seat state conflict")

// MongoTransportRepo implements Repository using MongoDB.
type MongoTransportRepo struct {
	coll *mongo.Collection
}

// NewMongoTransportRepo creates a new instance of Repository using MongoDB.
func NewMongoTransportRepo() Repository {
	coll := database.DB().Collection("transports")
	repo := &MongoTransportRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes creates indexes for fields frequently used in queries.
func (r *MongoTransportRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "type", Value: 1}, {Key: "source", Value: 1}, {Key: "destination", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}
