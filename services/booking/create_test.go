package booking

import (
	"context"
	"sync"
	"testing"
	"time"

	"voyago/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// monday is a fixed Monday morning used as "now" across the create tests.
var monday = time.Date(2025, time.January, 6, 8, 0, 0, 0, time.UTC)

func nightExpress() models.Transport {
	classes := []models.TransportClass{
		{Name: "Economy", Price: 500, DefaultSeats: 10},
	}
	return models.Transport{
		ID:            "tr-1",
		Type:          models.TransportTypeTrain,
		Name:          "Night Express",
		Source:        "Delhi",
		Destination:   "Mumbai",
		DepartureTime: "18:00",
		ArrivalTime:   "06:00",
		DistanceInKm:  1400,
		AvailableDays: []string{"Monday"},
		Classes:       classes,
		Seats:         models.DefaultSeatMap(classes),
	}
}

func mustCode(t *testing.T, err error, code string) *Error {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %s error, got nil", code)
	}
	be, ok := AsError(err)
	if !ok {
		t.Fatalf("expected booking error, got %v", err)
	}
	if be.Code != code {
		t.Fatalf("expected code %s, got %s (%s)", code, be.Code, be.Message)
	}
	return be
}

func TestCreateBooking_RequiresFields(t *testing.T) {
	svc, _ := newTestService(monday)

	cases := []models.CreateBookingRequest{
		{Seats: []string{"A1"}, UserID: "u-1"},
		{TransportID: "tr-1", UserID: "u-1"},
		{TransportID: "tr-1", Seats: []string{"A1"}},
	}
	for _, req := range cases {
		_, err := svc.CreateBooking(context.Background(), req)
		mustCode(t, err, CodeValidation)
	}
}

func TestCreateBooking_TransportNotFound(t *testing.T) {
	svc, _ := newTestService(monday)

	_, err := svc.CreateBooking(context.Background(), models.CreateBookingRequest{
		TransportID: "missing", Seats: []string{"A1"}, UserID: "u-1",
	})
	mustCode(t, err, CodeNotFound)
}

func TestCreateBooking_ScheduleError(t *testing.T) {
	svc, store := newTestService(monday)
	store.addTransport(nightExpress())

	// 2025-01-07 is a Tuesday; the transport only runs on Mondays.
	_, err := svc.CreateBooking(context.Background(), models.CreateBookingRequest{
		TransportID: "tr-1", Seats: []string{"A1", "A2"}, UserID: "u-1",
		BookingDate: "2025-01-07",
	})
	be := mustCode(t, err, CodeSchedule)

	days, ok := be.Details["availableDays"].([]string)
	if !ok || len(days) != 1 || days[0] != "Monday" {
		t.Fatalf("expected availableDays [Monday] in details, got %v", be.Details["availableDays"])
	}

	if store.seat("tr-1", "A1").IsBooked || store.seat("tr-1", "A2").IsBooked {
		t.Fatalf("seats must remain free after a rejected booking")
	}
}

func TestCreateBooking_PastDeparture(t *testing.T) {
	// 19:00 on the travel day is after the 18:00 departure.
	evening := time.Date(2025, time.January, 6, 19, 0, 0, 0, time.UTC)
	svc, store := newTestService(evening)
	store.addTransport(nightExpress())

	_, err := svc.CreateBooking(context.Background(), models.CreateBookingRequest{
		TransportID: "tr-1", Seats: []string{"A1"}, UserID: "u-1",
	})
	mustCode(t, err, CodeTiming)
}

func TestCreateBooking_SeatNotFound(t *testing.T) {
	svc, store := newTestService(monday)
	store.addTransport(nightExpress())

	_, err := svc.CreateBooking(context.Background(), models.CreateBookingRequest{
		TransportID: "tr-1", Seats: []string{"Z9", "A1"}, UserID: "u-1",
	})
	be := mustCode(t, err, CodeSeatNotFound)

	missing, _ := be.Details["nonExistentSeats"].([]string)
	if len(missing) != 1 || missing[0] != "Z9" {
		t.Fatalf("expected nonExistentSeats [Z9], got %v", be.Details["nonExistentSeats"])
	}
}

func TestCreateBooking_SeatUnavailable(t *testing.T) {
	svc, store := newTestService(monday)
	tr := nightExpress()
	tr.Seats[0].IsBooked = true // A1
	store.addTransport(tr)

	_, err := svc.CreateBooking(context.Background(), models.CreateBookingRequest{
		TransportID: "tr-1", Seats: []string{"A1", "A2"}, UserID: "u-1",
	})
	be := mustCode(t, err, CodeSeatUnavailable)

	unavailable, _ := be.Details["unavailableSeats"].([]string)
	if len(unavailable) != 1 || unavailable[0] != "A1" {
		t.Fatalf("expected unavailableSeats [A1], got %v", be.Details["unavailableSeats"])
	}
	if store.seat("tr-1", "A2").IsBooked {
		t.Fatalf("A2 must remain free after the rejected booking")
	}
}

func TestCreateBooking_SeatClassMismatch(t *testing.T) {
	svc, store := newTestService(monday)
	tr := nightExpress()
	tr.Classes = append(tr.Classes, models.TransportClass{Name: "Business", Price: 1200, DefaultSeats: 4})
	tr.Seats = models.DefaultSeatMap(tr.Classes)
	store.addTransport(tr)

	_, err := svc.CreateBooking(context.Background(), models.CreateBookingRequest{
		TransportID: "tr-1", Seats: []string{"A1", "B1"}, UserID: "u-1",
		ClassType: "Business",
	})
	be := mustCode(t, err, CodeSeatClassMismatch)

	mismatched, _ := be.Details["incompatibleClassSeats"].([]string)
	if len(mismatched) != 1 || mismatched[0] != "A1" {
		t.Fatalf("expected incompatibleClassSeats [A1], got %v", be.Details["incompatibleClassSeats"])
	}
}

func TestCreateBooking_Success(t *testing.T) {
	svc, store := newTestService(monday)
	store.addTransport(nightExpress())

	resp, err := svc.CreateBooking(context.Background(), models.CreateBookingRequest{
		TransportID: "tr-1", Seats: []string{"A1", "A2"}, UserID: "u-1",
		BookingDate: "2025-01-06",
	})
	if err != nil {
		t.Fatalf("expected booking to succeed, got %v", err)
	}

	if resp.TotalPrice != 1000 {
		t.Fatalf("expected total price 1000, got %v", resp.TotalPrice)
	}
	wantDeparture := time.Date(2025, time.January, 6, 18, 0, 0, 0, time.UTC)
	if !resp.DepartureDateTime.Equal(wantDeparture) {
		t.Fatalf("expected departure %v, got %v", wantDeparture, resp.DepartureDateTime)
	}
	if resp.TransportDetails == nil || resp.TransportDetails.Name != "Night Express" {
		t.Fatalf("expected transport summary in response, got %+v", resp.TransportDetails)
	}
	if len(resp.Seats) != 2 || resp.Seats[0].Price != 500 {
		t.Fatalf("expected two seat snapshots at price 500, got %+v", resp.Seats)
	}

	if !store.seat("tr-1", "A1").IsBooked || !store.seat("tr-1", "A2").IsBooked {
		t.Fatalf("booked seats must be flagged on the inventory record")
	}

	stored := store.bookings[resp.BookingID]
	if stored == nil || stored.Status != models.BookingStatusConfirmed {
		t.Fatalf("expected a stored confirmed booking, got %+v", stored)
	}
}

func TestCreateBooking_StoreAbortSurfacesConflict(t *testing.T) {
	svc, store := newTestService(monday)
	store.addTransport(nightExpress())

	// The loser of two overlapping replica-set transactions sees a labeled
	// write conflict from the driver, not a MatchedCount miss.
	svc.Transports = &failingTransportRepo{
		fakeTransportRepo: &fakeTransportRepo{store: store},
		seatFlipErr: mongo.CommandError{
			Code:   112,
			Name:   "WriteConflict",
			Labels: []string{"TransientTransactionError"},
		},
	}

	_, err := svc.CreateBooking(context.Background(), models.CreateBookingRequest{
		TransportID: "tr-1", Seats: []string{"A1"}, UserID: "u-1",
	})
	mustCode(t, err, CodeTransactionConflict)

	if store.seat("tr-1", "A1").IsBooked {
		t.Fatalf("aborted transaction must leave the seat free")
	}
	if len(store.bookings) != 0 {
		t.Fatalf("aborted transaction must not store a booking")
	}
}

func TestCreateBooking_ConcurrentSingleSeat(t *testing.T) {
	svc, store := newTestService(monday)
	store.addTransport(nightExpress())

	req := models.CreateBookingRequest{
		TransportID: "tr-1", Seats: []string{"A5"}, UserID: "u-1",
	}

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.CreateBooking(context.Background(), req)
		}(i)
	}
	wg.Wait()

	var successes, conflicts int
	for _, err := range errs {
		if err == nil {
			successes++
			continue
		}
		be, ok := AsError(err)
		if !ok {
			t.Fatalf("unexpected error type: %v", err)
		}
		if be.Code != CodeSeatUnavailable && be.Code != CodeTransactionConflict {
			t.Fatalf("expected seatUnavailable or transactionConflict, got %s", be.Code)
		}
		conflicts++
	}
	if successes != 1 || conflicts != 1 {
		t.Fatalf("expected exactly one winner, got %d successes and %d conflicts", successes, conflicts)
	}

	holders := 0
	for _, b := range store.bookings {
		for _, s := range b.Seats {
			if s.SeatNumber == "A5" {
				holders++
			}
		}
	}
	if holders != 1 {
		t.Fatalf("expected exactly one booking holding A5, got %d", holders)
	}
	if !store.seat("tr-1", "A5").IsBooked {
		t.Fatalf("A5 must be flagged booked")
	}
}
