// File: database/repository/booking/bookingMongoCrud.go
package bookingRepo

import (
	"context"
	"fmt"

	"voyago/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Insert inserts a new booking document.
func (r *MongoBookingRepo) Insert(ctx context.Context, b *models.Booking) error {
	_, err := r.coll.InsertOne(ctx, b)
	if err != nil {
		return fmt.Errorf("failed to insert booking: %w", err)
	}
	return nil
}

// GetByID retrieves a booking by its unique ID.
func (r *MongoBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	var b models.Booking
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&b); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch booking with id %s: %w", id, err)
	}
	return &b, nil
}

// MarkCancelled persists the cancellation fields of a booking.
func (r *MongoBookingRepo) MarkCancelled(ctx context.Context, b *models.Booking) error {
	filter := bson.M{"id": b.ID}
	update := bson.M{
		"$set": bson.M{
			"status":           b.Status,
			"cancelledAt":      b.CancelledAt,
			"refundAmount":     b.RefundAmount,
			"refundPercentage": b.RefundPercentage,
		},
	}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to cancel booking with id %s: %w", b.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("booking with id %s not found", b.ID)
	}
	return nil
}
