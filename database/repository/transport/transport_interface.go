package transportRepo

import (
	"context"

	"voyago/models"

	"go.mongodb.org/mongo-driver/bson"
)

// Repository defines methods for transport inventory data access. Methods
// accept a context so callers can pass a mongo session context and have
// reads/writes participate in an enclosing transaction.
type Repository interface {
	// Create inserts a new transport record.
	Create(ctx context.Context, t *models.Transport) error
	// GetByID retrieves a transport by its unique ID. Returns (nil, nil)
	// when no such transport exists.
	GetByID(ctx context.Context, id string) (*models.Transport, error)
	// List retrieves transports matching the given filter.
	List(ctx context.Context, filter bson.M) ([]models.Transport, error)
	// Update replaces an existing transport record.
	Update(ctx context.Context, t *models.Transport) error
	// Delete removes a transport record by its ID.
	Delete(ctx context.Context, id string) error
	// SetSeatsBooked flips the isBooked flag for the given seats. When
	// booking (booked=true) the update only matches if none of the seats
	// is currently booked; ErrSeatStateConflict is returned otherwise.
	SetSeatsBooked(ctx context.Context, transportID string, seatNumbers []string, booked bool) error
}
