package models

// TransportSummary is the denormalized transport view attached to booking
// responses and listings.
type TransportSummary struct {
	Type          string `json:"type"`
	Name          string `json:"name"`
	Source        string `json:"source"`
	Destination   string `json:"destination"`
	DepartureTime string `json:"departureTime"`
	ArrivalTime   string `json:"arrivalTime"`
}

// Pagination describes an offset-paginated result set.
type Pagination struct {
	CurrentPage   int   `json:"currentPage"`
	TotalPages    int   `json:"totalPages"`
	TotalBookings int64 `json:"totalBookings"`
	HasMore       bool  `json:"hasMore"`
}

// BookingWithTransport is a booking annotated with its transport summary.
// TransportDetails is null when the transport has been deleted.
type BookingWithTransport struct {
	Booking
	TransportDetails *TransportSummary `json:"transportDetails"`
}
