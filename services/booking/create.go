package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	transportRepo "voyago/database/repository/transport"
	"voyago/models"
	"voyago/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreateBooking reserves the requested seats on a transport and records a
// confirmed booking with a price snapshot. The seat eligibility check, the
// seat flip and the booking insert all run inside one session transaction,
// so two concurrent requests for overlapping seats cannot both succeed.
func (s *DefaultBookingService) CreateBooking(ctx context.Context, req models.CreateBookingRequest) (*models.CreateBookingResponse, error) {
	if req.TransportID == "" || len(req.Seats) == 0 || req.UserID == "" {
		return nil, newError(CodeValidation, "transport ID, seat numbers and user ID are required")
	}

	now := s.now()

	var resp *models.CreateBookingResponse
	txErr := s.Bookings.WithTransaction(ctx, func(sc context.Context) error {
		transport, err := s.Transports.GetByID(sc, req.TransportID)
		if err != nil {
			return err
		}
		if transport == nil {
			return newError(CodeNotFound, "transport not found")
		}

		// Resolve the travel day: the supplied booking date, or today.
		travelDay := now
		if req.BookingDate != "" {
			parsed, err := time.ParseInLocation("2006-01-02", req.BookingDate, now.Location())
			if err != nil {
				return newError(CodeValidation, fmt.Sprintf("invalid booking date %q, expected YYYY-MM-DD", req.BookingDate))
			}
			travelDay = parsed

			day := parsed.Weekday().String()
			if !transport.AvailableOn(day) {
				return newErrorWithDetails(CodeSchedule,
					fmt.Sprintf("transport not available on %s", day),
					map[string]interface{}{"availableDays": transport.AvailableDays})
			}
		}

		departureDateTime, err := combineDeparture(travelDay, transport.DepartureTime)
		if err != nil {
			return newError(CodeDataIntegrity, fmt.Sprintf("invalid departure time %q on transport %s", transport.DepartureTime, transport.ID))
		}
		if departureDateTime.Before(now) {
			return newError(CodeTiming, "cannot book transport for past departure times")
		}

		// Classify every requested seat; a booking fails with the full
		// list of offending seats, not just the first one.
		var nonExistentSeats, unavailableSeats, incompatibleClassSeats []string
		for _, seatNumber := range req.Seats {
			seat := transport.FindSeat(seatNumber)
			if seat == nil {
				nonExistentSeats = append(nonExistentSeats, seatNumber)
				continue
			}
			if seat.IsBooked {
				unavailableSeats = append(unavailableSeats, seatNumber)
			}
			if req.ClassType != "" && seat.ClassType != req.ClassType {
				incompatibleClassSeats = append(incompatibleClassSeats, seatNumber)
			}
		}

		if len(nonExistentSeats) > 0 {
			return newErrorWithDetails(CodeSeatNotFound, "some seats do not exist",
				map[string]interface{}{"nonExistentSeats": nonExistentSeats})
		}
		if len(unavailableSeats) > 0 {
			return newErrorWithDetails(CodeSeatUnavailable, "some seats are already booked",
				map[string]interface{}{"unavailableSeats": unavailableSeats})
		}
		if len(incompatibleClassSeats) > 0 {
			return newErrorWithDetails(CodeSeatClassMismatch,
				fmt.Sprintf("some seats are not in the requested class (%s)", req.ClassType),
				map[string]interface{}{"incompatibleClassSeats": incompatibleClassSeats})
		}

		// Price snapshot: seat prices come from the class table as it
		// stands right now and are frozen into the booking.
		var totalPrice float64
		bookedSeats := make([]models.BookedSeat, 0, len(req.Seats))
		for _, seatNumber := range req.Seats {
			seat := transport.FindSeat(seatNumber)
			price, ok := transport.ClassPrice(seat.ClassType)
			if !ok {
				return newError(CodeDataIntegrity,
					fmt.Sprintf("class definition not found for seat %s with class %s", seatNumber, seat.ClassType))
			}
			totalPrice += price
			bookedSeats = append(bookedSeats, models.BookedSeat{
				SeatNumber: seatNumber,
				ClassType:  seat.ClassType,
				Price:      price,
			})
		}

		if err := s.Transports.SetSeatsBooked(sc, transport.ID, req.Seats, true); err != nil {
			return err
		}

		bkg := &models.Booking{
			ID:                uuid.New().String(),
			TransportID:       transport.ID,
			UserID:            req.UserID,
			Seats:             bookedSeats,
			TotalPrice:        totalPrice,
			BookingDate:       now,
			DepartureDateTime: departureDateTime,
			Status:            models.BookingStatusConfirmed,
		}
		if err := s.Bookings.Insert(sc, bkg); err != nil {
			return err
		}

		resp = &models.CreateBookingResponse{
			Message:           "Booking created successfully",
			BookingID:         bkg.ID,
			TotalPrice:        totalPrice,
			Seats:             bookedSeats,
			BookingDate:       now,
			DepartureDateTime: departureDateTime,
			TransportDetails:  transport.Summary(),
		}
		return nil
	})
	if txErr != nil {
		if _, ok := AsError(txErr); ok {
			return nil, txErr
		}
		if errors.Is(txErr, transportRepo.ErrSeatStateConflict) || isTransientTxnError(txErr) {
			return nil, newError(CodeTransactionConflict, "seats were taken by a concurrent booking")
		}
		utils.GetLogger().Error("booking transaction failed",
			zap.String("transportId", req.TransportID), zap.Error(txErr))
		return nil, newError(CodeUnknown, "booking transaction failed")
	}

	return resp, nil
}
