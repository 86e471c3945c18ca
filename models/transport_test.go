package models

import "testing"

func TestDefaultSeatMap(t *testing.T) {
	classes := []TransportClass{
		{Name: "Economy", Price: 500, DefaultSeats: 3},
		{Name: "Business", Price: 1200}, // no count, defaults to 10
	}

	seats := DefaultSeatMap(classes)
	if len(seats) != 13 {
		t.Fatalf("expected 13 seats, got %d", len(seats))
	}

	if seats[0].SeatNumber != "A1" || seats[0].ClassType != "Economy" {
		t.Fatalf("expected first seat A1/Economy, got %+v", seats[0])
	}
	if seats[2].SeatNumber != "A3" {
		t.Fatalf("expected third seat A3, got %s", seats[2].SeatNumber)
	}
	if seats[3].SeatNumber != "B1" || seats[3].ClassType != "Business" {
		t.Fatalf("expected fourth seat B1/Business, got %+v", seats[3])
	}
	if seats[12].SeatNumber != "B10" {
		t.Fatalf("expected last seat B10, got %s", seats[12].SeatNumber)
	}

	for _, s := range seats {
		if s.IsBooked {
			t.Fatalf("derived seats must start free, got booked %s", s.SeatNumber)
		}
	}
}

func TestTransportHelpers(t *testing.T) {
	tr := Transport{
		AvailableDays: []string{"Monday", "Friday"},
		Classes:       []TransportClass{{Name: "Economy", Price: 500}},
		Seats:         []Seat{{SeatNumber: "A1", ClassType: "Economy"}},
	}

	if !tr.AvailableOn("Monday") || tr.AvailableOn("Sunday") {
		t.Fatalf("AvailableOn gave wrong answers")
	}
	if tr.FindSeat("A1") == nil || tr.FindSeat("Z9") != nil {
		t.Fatalf("FindSeat gave wrong answers")
	}
	if price, ok := tr.ClassPrice("Economy"); !ok || price != 500 {
		t.Fatalf("expected Economy price 500, got %v (%v)", price, ok)
	}
	if _, ok := tr.ClassPrice("First"); ok {
		t.Fatalf("undefined class must not resolve a price")
	}
}
