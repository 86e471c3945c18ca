package booking

import (
	"context"
	"testing"
	"time"

	"voyago/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// seedConfirmedBooking stores a transport with A1/A2 booked and a matching
// confirmed booking departing at the given instant.
func seedConfirmedBooking(store *fakeStore, departure time.Time) {
	tr := nightExpress()
	tr.Seats[0].IsBooked = true
	tr.Seats[1].IsBooked = true
	store.addTransport(tr)

	store.bookings["b-1"] = &models.Booking{
		ID:          "b-1",
		TransportID: "tr-1",
		UserID:      "u-1",
		Seats: []models.BookedSeat{
			{SeatNumber: "A1", ClassType: "Economy", Price: 500},
			{SeatNumber: "A2", ClassType: "Economy", Price: 500},
		},
		TotalPrice:        1000,
		BookingDate:       departure.Add(-96 * time.Hour),
		DepartureDateTime: departure,
		Status:            models.BookingStatusConfirmed,
	}
}

func TestCancelBooking_RequiresBookingID(t *testing.T) {
	svc, _ := newTestService(monday)

	_, err := svc.CancelBooking(context.Background(), "", "u-1")
	mustCode(t, err, CodeValidation)
}

func TestCancelBooking_NotFound(t *testing.T) {
	svc, _ := newTestService(monday)

	_, err := svc.CancelBooking(context.Background(), "missing", "u-1")
	mustCode(t, err, CodeNotFound)
}

func TestCancelBooking_WrongUser(t *testing.T) {
	svc, store := newTestService(monday)
	seedConfirmedBooking(store, monday.Add(48*time.Hour))

	_, err := svc.CancelBooking(context.Background(), "b-1", "someone-else")
	mustCode(t, err, CodeAuthorization)

	if store.bookings["b-1"].Status != models.BookingStatusConfirmed {
		t.Fatalf("booking must stay confirmed after a rejected cancellation")
	}
}

func TestCancelBooking_AlreadyDeparted(t *testing.T) {
	svc, store := newTestService(monday)
	seedConfirmedBooking(store, monday.Add(-2*time.Hour))

	_, err := svc.CancelBooking(context.Background(), "b-1", "u-1")
	mustCode(t, err, CodeTiming)
}

func TestCancelBooking_InsideCancellationWindow(t *testing.T) {
	svc, store := newTestService(monday)
	// 5.9 hours until departure, just inside the 6 hour window.
	seedConfirmedBooking(store, monday.Add(5*time.Hour+54*time.Minute))

	_, err := svc.CancelBooking(context.Background(), "b-1", "u-1")
	be := mustCode(t, err, CodeCancellationWindow)

	hours, ok := be.Details["hoursUntilDeparture"].(float64)
	if !ok || hours != 5.9 {
		t.Fatalf("expected hoursUntilDeparture 5.9 in details, got %v", be.Details["hoursUntilDeparture"])
	}
	if !store.seat("tr-1", "A1").IsBooked {
		t.Fatalf("seats must stay booked after a rejected cancellation")
	}
}

func TestCancelBooking_GraduatedRefund(t *testing.T) {
	svc, store := newTestService(monday)
	// 12 hours before departure lands in the 75% tier.
	seedConfirmedBooking(store, monday.Add(12*time.Hour))

	resp, err := svc.CancelBooking(context.Background(), "b-1", "u-1")
	if err != nil {
		t.Fatalf("expected cancellation to succeed, got %v", err)
	}

	if resp.RefundPercentage != 75 {
		t.Fatalf("expected 75%% refund, got %d%%", resp.RefundPercentage)
	}
	if resp.RefundAmount != 750 {
		t.Fatalf("expected refund 750, got %v", resp.RefundAmount)
	}
	if !resp.CancelledAt.Equal(monday) {
		t.Fatalf("expected cancelledAt %v, got %v", monday, resp.CancelledAt)
	}
	if len(resp.Seats) != 2 || resp.Seats[0] != "A1" || resp.Seats[1] != "A2" {
		t.Fatalf("expected freed seats [A1 A2], got %v", resp.Seats)
	}

	if store.seat("tr-1", "A1").IsBooked || store.seat("tr-1", "A2").IsBooked {
		t.Fatalf("cancelled seats must be released on the inventory record")
	}
	stored := store.bookings["b-1"]
	if stored.Status != models.BookingStatusCancelled || stored.RefundAmount == nil || *stored.RefundAmount != 750 {
		t.Fatalf("expected stored cancelled booking with refund 750, got %+v", stored)
	}
}

func TestCancelBooking_DoubleCancel(t *testing.T) {
	svc, store := newTestService(monday)
	seedConfirmedBooking(store, monday.Add(48*time.Hour))

	if _, err := svc.CancelBooking(context.Background(), "b-1", "u-1"); err != nil {
		t.Fatalf("first cancellation failed: %v", err)
	}
	cancelledAt := *store.bookings["b-1"].CancelledAt

	_, err := svc.CancelBooking(context.Background(), "b-1", "u-1")
	mustCode(t, err, CodeAlreadyCancelled)

	stored := store.bookings["b-1"]
	if !stored.CancelledAt.Equal(cancelledAt) || *stored.RefundPercentage != 90 {
		t.Fatalf("state must be unchanged after the failed second cancellation, got %+v", stored)
	}
	if store.seat("tr-1", "A1").IsBooked {
		t.Fatalf("seats must remain free after the failed second cancellation")
	}
}

func TestCancelBooking_StoreAbortSurfacesConflict(t *testing.T) {
	svc, store := newTestService(monday)
	seedConfirmedBooking(store, monday.Add(48*time.Hour))

	svc.Transports = &failingTransportRepo{
		fakeTransportRepo: &fakeTransportRepo{store: store},
		seatFlipErr: mongo.CommandError{
			Code:   112,
			Name:   "WriteConflict",
			Labels: []string{"TransientTransactionError"},
		},
	}

	_, err := svc.CancelBooking(context.Background(), "b-1", "u-1")
	mustCode(t, err, CodeTransactionConflict)

	if store.bookings["b-1"].Status != models.BookingStatusConfirmed {
		t.Fatalf("booking must stay confirmed after an aborted cancellation")
	}
	if !store.seat("tr-1", "A1").IsBooked {
		t.Fatalf("aborted cancellation must leave the seats booked")
	}
}

func TestCreateThenCancel_FullRefundRoundTrip(t *testing.T) {
	svc, store := newTestService(monday)
	store.addTransport(nightExpress())

	// Next Monday's departure is more than 72 hours out.
	created, err := svc.CreateBooking(context.Background(), models.CreateBookingRequest{
		TransportID: "tr-1", Seats: []string{"A1"}, UserID: "u-1",
		BookingDate: "2025-01-13",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.TotalPrice != 500 {
		t.Fatalf("expected total 500, got %v", created.TotalPrice)
	}

	resp, err := svc.CancelBooking(context.Background(), created.BookingID, "u-1")
	if err != nil {
		t.Fatalf("cancel failed: %v", err)
	}
	if resp.RefundPercentage != 100 || resp.RefundAmount != 500 {
		t.Fatalf("expected a full 500 refund, got %d%% / %v", resp.RefundPercentage, resp.RefundAmount)
	}
	if store.seat("tr-1", "A1").IsBooked {
		t.Fatalf("A1 must be free again after cancellation")
	}
}
