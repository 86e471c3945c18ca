package booking

import (
	"context"

	"voyago/models"
)

// Service coordinates booking creation, cancellation and read-only lookups.
type Service interface {
	// CreateBooking reserves the requested seats and records a confirmed
	// booking; the seat flip and the booking insert commit atomically.
	CreateBooking(ctx context.Context, req models.CreateBookingRequest) (*models.CreateBookingResponse, error)
	// CancelBooking releases the booking's seats and marks it cancelled,
	// computing the refund from the time left until departure.
	CancelBooking(ctx context.Context, bookingID, userID string) (*models.CancelBookingResponse, error)
	// GetUserBookings returns all bookings of a user, newest first, each
	// annotated with its transport summary.
	GetUserBookings(ctx context.Context, userID string) ([]models.BookingWithTransport, error)
	// GetAllBookings returns one page of all bookings.
	GetAllBookings(ctx context.Context, page, limit int) (*models.BookingPage, error)
	// GetTransportBookings returns one page of a transport's bookings.
	GetTransportBookings(ctx context.Context, transportID string, page, limit int) (*models.TransportBookingPage, error)
}
