package models

import "time"

// Booking status values. A cancelled booking is terminal.
const (
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
)

// BookedSeat is the price/class snapshot of one seat captured at booking
// time, independent of later inventory price changes.
type BookedSeat struct {
	SeatNumber string  `bson:"seatNumber" json:"seatNumber"`
	ClassType  string  `bson:"classType" json:"classType"`
	Price      float64 `bson:"price" json:"price"`
}

// Booking represents a confirmed or cancelled booking record.
type Booking struct {
	ID                string       `bson:"id" json:"id"`
	TransportID       string       `bson:"transportId" json:"transportId"` // weak reference to the transport document
	UserID            string       `bson:"userId" json:"userId"`
	Seats             []BookedSeat `bson:"seats" json:"seats"`
	TotalPrice        float64      `bson:"totalPrice" json:"totalPrice"`
	BookingDate       time.Time    `bson:"bookingDate" json:"bookingDate"`
	DepartureDateTime time.Time    `bson:"departureDateTime" json:"departureDateTime"`
	Status            string       `bson:"status" json:"status"`
	CancelledAt       *time.Time   `bson:"cancelledAt,omitempty" json:"cancelledAt,omitempty"`
	RefundAmount      *float64     `bson:"refundAmount,omitempty" json:"refundAmount,omitempty"`
	RefundPercentage  *int         `bson:"refundPercentage,omitempty" json:"refundPercentage,omitempty"`
}

// SeatNumbers returns the seat numbers referenced by the booking, in order.
func (b *Booking) SeatNumbers() []string {
	nums := make([]string, 0, len(b.Seats))
	for _, s := range b.Seats {
		nums = append(nums, s.SeatNumber)
	}
	return nums
}
