package models

import "fmt"

// TransportType enumerates the supported modes of transport.
const (
	TransportTypeAirline = "airline"
	TransportTypeTrain   = "train"
	TransportTypeBus     = "bus"
)

// WeekdayNames lists the valid entries for Transport.AvailableDays.
var WeekdayNames = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// TransportClass defines a fare class offered on a transport.
type TransportClass struct {
	Name         string  `bson:"name" json:"name"`
	Price        float64 `bson:"price" json:"price"`
	DefaultSeats int     `bson:"defaultSeats" json:"defaultSeats"`
}

// Seat is a single seat in a transport's seat map.
type Seat struct {
	SeatNumber string `bson:"seatNumber" json:"seatNumber"`
	ClassType  string `bson:"classType" json:"classType"`
	IsBooked   bool   `bson:"isBooked" json:"isBooked"`
}

// Transport is the inventory record for a scheduled transport: route and
// timing metadata plus the embedded seat map.
type Transport struct {
	ID            string           `bson:"id" json:"id"`
	Type          string           `bson:"type" json:"type"` // airline, train or bus
	Name          string           `bson:"name" json:"name"`
	Source        string           `bson:"source" json:"source"`
	Destination   string           `bson:"destination" json:"destination"`
	DepartureTime string           `bson:"departureTime" json:"departureTime"` // "15:04" time of day
	ArrivalTime   string           `bson:"arrivalTime" json:"arrivalTime"`
	DistanceInKm  float64          `bson:"distanceInKm" json:"distanceInKm"`
	AvailableDays []string         `bson:"availableDays" json:"availableDays"`
	Classes       []TransportClass `bson:"classes" json:"classes"`
	Seats         []Seat           `bson:"seats" json:"seats"`
}

// DefaultSeatMap derives a seat map from the fare classes: one block per
// class, seat numbers "<letter><index>" with the letter taken from the
// class position (A for the first class). Runs exactly once, when a
// transport is created without an explicit seat list.
func DefaultSeatMap(classes []TransportClass) []Seat {
	var seats []Seat
	for i, cls := range classes {
		count := cls.DefaultSeats
		if count <= 0 {
			count = 10
		}
		prefix := string(rune('A' + i))
		for n := 1; n <= count; n++ {
			seats = append(seats, Seat{
				SeatNumber: fmt.Sprintf("%s%d", prefix, n),
				ClassType:  cls.Name,
				IsBooked:   false,
			})
		}
	}
	return seats
}

// FindSeat returns the seat with the given number, or nil if absent.
func (t *Transport) FindSeat(seatNumber string) *Seat {
	for i := range t.Seats {
		if t.Seats[i].SeatNumber == seatNumber {
			return &t.Seats[i]
		}
	}
	return nil
}

// ClassPrice returns the price for a class name; ok is false when the
// class is not defined on this transport.
func (t *Transport) ClassPrice(className string) (float64, bool) {
	for _, cls := range t.Classes {
		if cls.Name == className {
			return cls.Price, true
		}
	}
	return 0, false
}

// AvailableOn reports whether the transport runs on the given weekday name.
func (t *Transport) AvailableOn(weekday string) bool {
	for _, d := range t.AvailableDays {
		if d == weekday {
			return true
		}
	}
	return false
}

// Summary returns the denormalized view embedded into booking responses.
func (t *Transport) Summary() *TransportSummary {
	return &TransportSummary{
		Type:          t.Type,
		Name:          t.Name,
		Source:        t.Source,
		Destination:   t.Destination,
		DepartureTime: t.DepartureTime,
		ArrivalTime:   t.ArrivalTime,
	}
}
