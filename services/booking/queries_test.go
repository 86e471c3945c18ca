package booking

import (
	"context"
	"fmt"
	"testing"
	"time"

	"voyago/models"
)

func seedBookings(store *fakeStore, n int, transportID string) {
	for i := 0; i < n; i++ {
		id := fmt.Sprintf("b-%d", i)
		store.bookings[id] = &models.Booking{
			ID:          id,
			TransportID: transportID,
			UserID:      "u-1",
			Seats:       []models.BookedSeat{{SeatNumber: "A1", ClassType: "Economy", Price: 500}},
			TotalPrice:  500,
			BookingDate: monday.Add(time.Duration(i) * time.Hour),
			Status:      models.BookingStatusConfirmed,
		}
	}
}

func TestGetAllBookings_Pagination(t *testing.T) {
	svc, store := newTestService(monday)
	store.addTransport(nightExpress())
	seedBookings(store, 25, "tr-1")

	page, err := svc.GetAllBookings(context.Background(), 1, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(page.Bookings) != 10 {
		t.Fatalf("expected 10 bookings on page 1, got %d", len(page.Bookings))
	}
	p := page.Pagination
	if p.CurrentPage != 1 || p.TotalPages != 3 || p.TotalBookings != 25 || !p.HasMore {
		t.Fatalf("unexpected pagination: %+v", p)
	}

	// Newest booking date first.
	if page.Bookings[0].ID != "b-24" {
		t.Fatalf("expected newest booking first, got %s", page.Bookings[0].ID)
	}

	last, err := svc.GetAllBookings(context.Background(), 3, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(last.Bookings) != 5 {
		t.Fatalf("expected 5 bookings on the last page, got %d", len(last.Bookings))
	}
	if last.Pagination.HasMore {
		t.Fatalf("last page must not report more results")
	}
}

func TestGetAllBookings_DefaultsPageAndLimit(t *testing.T) {
	svc, store := newTestService(monday)
	store.addTransport(nightExpress())
	seedBookings(store, 3, "tr-1")

	page, err := svc.GetAllBookings(context.Background(), 0, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.Pagination.CurrentPage != 1 || page.Pagination.TotalPages != 1 {
		t.Fatalf("expected defaulted pagination 1/1, got %+v", page.Pagination)
	}
}

func TestGetUserBookings_AnnotatesDeletedTransport(t *testing.T) {
	svc, store := newTestService(monday)
	store.addTransport(nightExpress())
	seedBookings(store, 1, "tr-1")
	seedBookings2 := &models.Booking{
		ID:          "b-gone",
		TransportID: "tr-deleted",
		UserID:      "u-1",
		BookingDate: monday.Add(100 * time.Hour),
		Status:      models.BookingStatusConfirmed,
	}
	store.bookings[seedBookings2.ID] = seedBookings2

	bookings, err := svc.GetUserBookings(context.Background(), "u-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(bookings) != 2 {
		t.Fatalf("expected 2 bookings, got %d", len(bookings))
	}
	// b-gone has the newer booking date and a dangling transport reference.
	if bookings[0].ID != "b-gone" || bookings[0].TransportDetails != nil {
		t.Fatalf("expected dangling transport to annotate as null, got %+v", bookings[0].TransportDetails)
	}
	if bookings[1].TransportDetails == nil || bookings[1].TransportDetails.Name != "Night Express" {
		t.Fatalf("expected transport summary on the live booking, got %+v", bookings[1].TransportDetails)
	}
}

func TestGetTransportBookings(t *testing.T) {
	svc, store := newTestService(monday)
	store.addTransport(nightExpress())
	seedBookings(store, 4, "tr-1")

	result, err := svc.GetTransportBookings(context.Background(), "tr-1", 1, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Bookings) != 4 {
		t.Fatalf("expected 4 bookings, got %d", len(result.Bookings))
	}
	if result.TransportDetails == nil || result.TransportDetails.Source != "Delhi" {
		t.Fatalf("expected transport details, got %+v", result.TransportDetails)
	}

	_, err = svc.GetTransportBookings(context.Background(), "tr-missing", 1, 10)
	mustCode(t, err, CodeNotFound)
}
