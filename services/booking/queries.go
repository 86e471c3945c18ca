package booking

import (
	"context"

	"voyago/models"

	"go.mongodb.org/mongo-driver/bson"
)

const defaultPageLimit = 10

// normalizePage applies the 1/10 defaults for offset pagination.
func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageLimit
	}
	return page, limit
}

func buildPagination(page, limit int, total int64) models.Pagination {
	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return models.Pagination{
		CurrentPage:   page,
		TotalPages:    totalPages,
		TotalBookings: total,
		HasMore:       int64(page*limit) < total,
	}
}

// annotate joins a booking with its transport summary; a deleted transport
// yields a null summary, not an error.
func (s *DefaultBookingService) annotate(ctx context.Context, bookings []models.Booking) ([]models.BookingWithTransport, error) {
	summaries := make(map[string]*models.TransportSummary)
	annotated := make([]models.BookingWithTransport, 0, len(bookings))
	for _, b := range bookings {
		summary, seen := summaries[b.TransportID]
		if !seen {
			transport, err := s.Transports.GetByID(ctx, b.TransportID)
			if err != nil {
				return nil, err
			}
			if transport != nil {
				summary = transport.Summary()
			}
			summaries[b.TransportID] = summary
		}
		annotated = append(annotated, models.BookingWithTransport{
			Booking:          b,
			TransportDetails: summary,
		})
	}
	return annotated, nil
}

// GetUserBookings returns all bookings of a user, newest first, annotated
// with their transport summaries.
func (s *DefaultBookingService) GetUserBookings(ctx context.Context, userID string) ([]models.BookingWithTransport, error) {
	if userID == "" {
		return nil, newError(CodeValidation, "user ID is required")
	}

	bookings, err := s.Bookings.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.annotate(ctx, bookings)
}

// GetAllBookings returns one page of all bookings with pagination metadata.
func (s *DefaultBookingService) GetAllBookings(ctx context.Context, page, limit int) (*models.BookingPage, error) {
	page, limit = normalizePage(page, limit)
	skip := int64((page - 1) * limit)

	total, err := s.Bookings.Count(ctx, nil)
	if err != nil {
		return nil, err
	}
	bookings, err := s.Bookings.FindPage(ctx, nil, skip, int64(limit))
	if err != nil {
		return nil, err
	}
	annotated, err := s.annotate(ctx, bookings)
	if err != nil {
		return nil, err
	}

	return &models.BookingPage{
		Bookings:   annotated,
		Pagination: buildPagination(page, limit, total),
	}, nil
}

// GetTransportBookings returns one page of a transport's bookings together
// with the transport summary.
func (s *DefaultBookingService) GetTransportBookings(ctx context.Context, transportID string, page, limit int) (*models.TransportBookingPage, error) {
	if transportID == "" {
		return nil, newError(CodeValidation, "transport ID is required")
	}
	page, limit = normalizePage(page, limit)
	skip := int64((page - 1) * limit)

	transport, err := s.Transports.GetByID(ctx, transportID)
	if err != nil {
		return nil, err
	}
	if transport == nil {
		return nil, newError(CodeNotFound, "transport not found")
	}

	filter := bson.M{"transportId": transportID}
	total, err := s.Bookings.Count(ctx, filter)
	if err != nil {
		return nil, err
	}
	bookings, err := s.Bookings.FindPage(ctx, filter, skip, int64(limit))
	if err != nil {
		return nil, err
	}

	return &models.TransportBookingPage{
		Bookings:         bookings,
		TransportDetails: transport.Summary(),
		Pagination:       buildPagination(page, limit, total),
	}, nil
}
