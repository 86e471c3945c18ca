package transport

import (
	"context"

	"voyago/models"

	"github.com/google/uuid"
)

func validTransportType(t string) bool {
	switch t {
	case models.TransportTypeAirline, models.TransportTypeTrain, models.TransportTypeBus:
		return true
	}
	return false
}

func validWeekday(day string) bool {
	for _, d := range models.WeekdayNames {
		if d == day {
			return true
		}
	}
	return false
}

func validateTransport(t *models.Transport) error {
	if t.Type == "" || t.Name == "" || t.Source == "" || t.Destination == "" ||
		t.DepartureTime == "" || t.ArrivalTime == "" || t.DistanceInKm == 0 ||
		len(t.AvailableDays) == 0 || len(t.Classes) == 0 {
		return newValidationError("all fields are required")
	}
	if !validTransportType(t.Type) {
		return newValidationError("invalid transport type %q", t.Type)
	}
	for _, day := range t.AvailableDays {
		if !validWeekday(day) {
			return newValidationError("invalid available day %q", day)
		}
	}

	classNames := make(map[string]bool, len(t.Classes))
	for _, cls := range t.Classes {
		if cls.Name == "" {
			return newValidationError("class name is required")
		}
		if cls.Price < 0 {
			return newValidationError("class %q has a negative price", cls.Name)
		}
		if cls.DefaultSeats < 0 {
			return newValidationError("class %q has a negative seat count", cls.Name)
		}
		classNames[cls.Name] = true
	}

	// Every seat must belong to a defined class and carry a unique number.
	seatNumbers := make(map[string]bool, len(t.Seats))
	for _, seat := range t.Seats {
		if seatNumbers[seat.SeatNumber] {
			return newValidationError("duplicate seat number %q", seat.SeatNumber)
		}
		seatNumbers[seat.SeatNumber] = true
		if !classNames[seat.ClassType] {
			return newValidationError("seat %s references undefined class %q", seat.SeatNumber, seat.ClassType)
		}
	}
	return nil
}

// Add validates a new transport and persists it. A transport created
// without seats gets its seat map derived from the classes here, once;
// the derivation never runs again on later updates.
func (s *DefaultTransportService) Add(ctx context.Context, t *models.Transport) (*models.Transport, error) {
	if err := validateTransport(t); err != nil {
		return nil, err
	}

	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	if len(t.Seats) == 0 {
		t.Seats = models.DefaultSeatMap(t.Classes)
	}

	if err := s.Repo.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// Update replaces the fields of an existing transport. The seat map is
// taken as supplied; no re-derivation happens here.
func (s *DefaultTransportService) Update(ctx context.Context, t *models.Transport) (*models.Transport, error) {
	if t.ID == "" {
		return nil, newValidationError("transport ID is required")
	}
	existing, err := s.Repo.GetByID(ctx, t.ID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrNotFound
	}
	if err := validateTransport(t); err != nil {
		return nil, err
	}
	if err := s.Repo.Update(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}
