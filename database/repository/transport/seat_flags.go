// File: database/repository/transport/seat_flags.go
package transportRepo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SetSeatsBooked flips the isBooked flag on the requested seats in a single
// update. When booking, the filter re-asserts that none of the seats is
// already booked, so a concurrent transaction that grabbed one of them in
// the meantime makes this update match nothing instead of double-booking.
// Run inside a session context to make the flip atomic with the booking
// document write.
func (r *MongoTransportRepo) SetSeatsBooked(ctx context.Context, transportID string, seatNumbers []string, booked bool) error {
	filter := bson.M{"id": transportID}
	if booked {
		filter["seats"] = bson.M{
			"$not": bson.M{
				"$elemMatch": bson.M{
					"seatNumber": bson.M{"$in": seatNumbers},
					"isBooked":   true,
				},
			},
		}
	}

	update := bson.M{
		"$set": bson.M{"seats.$[seat].isBooked": booked},
	}
	arrayFilters := options.ArrayFilters{
		Filters: []interface{}{
			bson.M{"seat.seatNumber": bson.M{"$in": seatNumbers}},
		},
	}
	opts := options.Update().SetArrayFilters(arrayFilters)

	result, err := r.coll.UpdateOne(ctx, filter, update, opts)
	if err != nil {
		return fmt.Errorf("failed to update seat flags for transport %s: %w", transportID, err)
	}
	if result.MatchedCount == 0 {
		if booked {
			return ErrSeatStateConflict
		}
		return fmt.Errorf("transport with id %s not found", transportID)
	}
	return nil
}
