package booking

import (
	"errors"
	"time"

	bookingRepo "voyago/database/repository/booking"
	transportRepo "voyago/database/repository/transport"

	"go.mongodb.org/mongo-driver/mongo"
)

// DefaultBookingService is the production implementation of Service.
// Now is injectable so timing and refund logic can be tested against a
// fixed clock; it defaults to time.Now.
type DefaultBookingService struct {
	Transports transportRepo.Repository
	Bookings   bookingRepo.Repository
	Now        func() time.Time
}

func (s *DefaultBookingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// isTransientTxnError reports whether the store aborted the transaction
// with a retryable write conflict. The loser of two overlapping
// transactions sees this instead of a MatchedCount miss.
func isTransientTxnError(err error) bool {
	var se mongo.ServerError
	return errors.As(err, &se) && se.HasErrorLabel("TransientTransactionError")
}

// combineDeparture builds the absolute departure instant from a calendar
// day and the transport's "15:04" time of day.
func combineDeparture(day time.Time, departureTime string) (time.Time, error) {
	t, err := time.Parse("15:04", departureTime)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(day.Year(), day.Month(), day.Day(), t.Hour(), t.Minute(), 0, 0, day.Location()), nil
}
