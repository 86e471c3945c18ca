package bookingRepo

import (
	"context"

	"voyago/models"

	"go.mongodb.org/mongo-driver/bson"
)

// Repository defines methods for booking data access. Methods accept a
// context so they can run inside a session transaction started with
// WithTransaction.
type Repository interface {
	// Insert inserts a new booking record.
	Insert(ctx context.Context, b *models.Booking) error
	// GetByID retrieves a booking by its unique ID. Returns (nil, nil)
	// when no such booking exists.
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	// FindByUser retrieves all bookings for a user, newest booking date first.
	FindByUser(ctx context.Context, userID string) ([]models.Booking, error)
	// FindPage retrieves a page of bookings matching the filter, newest
	// booking date first.
	FindPage(ctx context.Context, filter bson.M, skip, limit int64) ([]models.Booking, error)
	// Count returns the number of bookings matching the filter.
	Count(ctx context.Context, filter bson.M) (int64, error)
	// MarkCancelled persists the cancellation fields of a booking.
	MarkCancelled(ctx context.Context, b *models.Booking) error
	// WithTransaction runs fn inside a mongo session transaction. The
	// context passed to fn must be used for every read and write that
	// belongs to the atomic unit; all of them commit or roll back together.
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
