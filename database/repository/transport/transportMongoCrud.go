// File: database/repository/transport/transportMongoCrud.go
package transportRepo

import (
	"context"
	"fmt"

	"voyago/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Create inserts a new transport document.
func (r *MongoTransportRepo) Create(ctx context.Context, t *models.Transport) error {
	_, err := r.coll.InsertOne(ctx, t)
	if err != nil {
		return fmt.Errorf("failed to create transport: %w", err)
	}
	return nil
}

// GetByID retrieves a transport by its unique ID.
func (r *MongoTransportRepo) GetByID(ctx context.Context, id string) (*models.Transport, error) {
	var t models.Transport
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&t); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch transport with id %s: %w", id, err)
	}
	return &t, nil
}

// List retrieves transports matching the given filter.
func (r *MongoTransportRepo) List(ctx context.Context, filter bson.M) ([]models.Transport, error) {
	if filter == nil {
		filter = bson.M{}
	}
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve transports: %w", err)
	}
	defer cursor.Close(ctx)

	var transports []models.Transport
	for cursor.Next(ctx) {
		var t models.Transport
		if err := cursor.Decode(&t); err != nil {
			return nil, fmt.Errorf("failed to decode transport: %w", err)
		}
		transports = append(transports, t)
	}
	return transports, nil
}

// Update replaces an existing transport document.
func (r *MongoTransportRepo) Update(ctx context.Context, t *models.Transport) error {
	filter := bson.M{"id": t.ID}
	update := bson.M{"$set": t}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update transport with id %s: %w", t.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("transport with id %s not found", t.ID)
	}
	return nil
}

// Delete removes a transport document by its ID.
func (r *MongoTransportRepo) Delete(ctx context.Context, id string) error {
	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete transport with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("transport with id %s not found", id)
	}
	return nil
}
