package models

import "time"

// CreateBookingRequest is the input to the booking create path.
type CreateBookingRequest struct {
	TransportID string   `json:"transportId"`
	Seats       []string `json:"seats"`
	UserID      string   `json:"userId"`
	BookingDate string   `json:"bookingDate,omitempty"` // optional, "2006-01-02"
	ClassType   string   `json:"classType,omitempty"`   // optional class filter
}

// CreateBookingResponse summarizes a successful booking.
type CreateBookingResponse struct {
	Message           string            `json:"message"`
	BookingID         string            `json:"bookingId"`
	TotalPrice        float64           `json:"totalPrice"`
	Seats             []BookedSeat      `json:"seats"`
	BookingDate       time.Time         `json:"bookingDate"`
	DepartureDateTime time.Time         `json:"departureDateTime"`
	TransportDetails  *TransportSummary `json:"transportDetails"`
}

// CancelBookingResponse summarizes a successful cancellation.
type CancelBookingResponse struct {
	Message          string    `json:"message"`
	BookingID        string    `json:"bookingId"`
	RefundAmount     float64   `json:"refundAmount"`
	RefundPercentage int       `json:"refundPercentage"`
	CancelledAt      time.Time `json:"cancelledAt"`
	Seats            []string  `json:"seats"`
}

// BookingPage is one page of bookings with pagination metadata.
type BookingPage struct {
	Bookings   []BookingWithTransport `json:"bookings"`
	Pagination Pagination             `json:"pagination"`
}

// TransportBookingPage is a page of bookings for one transport.
type TransportBookingPage struct {
	Bookings         []Booking         `json:"bookings"`
	TransportDetails *TransportSummary `json:"transportDetails"`
	Pagination       Pagination        `json:"pagination"`
}
