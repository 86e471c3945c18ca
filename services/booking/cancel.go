package booking

import (
	"context"
	"errors"
	"fmt"
	"math"

	transportRepo "voyago/database/repository/transport"
	"voyago/models"
	"voyago/utils"

	"go.uber.org/zap"
)

// CancelBooking releases a booking's seats and marks it cancelled, with a
// graduated refund based on the time left until departure. The seat release
// and the booking update run inside one session transaction.
func (s *DefaultBookingService) CancelBooking(ctx context.Context, bookingID, userID string) (*models.CancelBookingResponse, error) {
	if bookingID == "" {
		return nil, newError(CodeValidation, "booking ID is required")
	}

	now := s.now()

	var resp *models.CancelBookingResponse
	txErr := s.Bookings.WithTransaction(ctx, func(sc context.Context) error {
		bkg, err := s.Bookings.GetByID(sc, bookingID)
		if err != nil {
			return err
		}
		if bkg == nil {
			return newError(CodeNotFound, "booking not found")
		}
		if bkg.UserID != userID {
			return newError(CodeAuthorization, "not authorized to cancel this booking")
		}
		if bkg.Status == models.BookingStatusCancelled {
			return newError(CodeAlreadyCancelled, "booking is already cancelled")
		}
		if bkg.DepartureDateTime.Before(now) {
			return newError(CodeTiming, "cannot cancel booking for a trip that has already departed")
		}

		hoursUntilDeparture := bkg.DepartureDateTime.Sub(now).Hours()
		if hoursUntilDeparture < CancellationWindowHours {
			return newErrorWithDetails(CodeCancellationWindow,
				fmt.Sprintf("cancellations must be made at least %.0f hours before departure", CancellationWindowHours),
				map[string]interface{}{"hoursUntilDeparture": math.Round(hoursUntilDeparture*10) / 10})
		}

		refundPercentage := RefundPercentage(hoursUntilDeparture)

		transport, err := s.Transports.GetByID(sc, bkg.TransportID)
		if err != nil {
			return err
		}
		if transport == nil {
			return newError(CodeNotFound, "transport not found")
		}

		seatNumbers := bkg.SeatNumbers()
		if err := s.Transports.SetSeatsBooked(sc, transport.ID, seatNumbers, false); err != nil {
			return err
		}

		refundAmount := bkg.TotalPrice * float64(refundPercentage) / 100

		cancelledAt := now
		bkg.Status = models.BookingStatusCancelled
		bkg.CancelledAt = &cancelledAt
		bkg.RefundAmount = &refundAmount
		bkg.RefundPercentage = &refundPercentage
		if err := s.Bookings.MarkCancelled(sc, bkg); err != nil {
			return err
		}

		resp = &models.CancelBookingResponse{
			Message:          "Booking cancelled successfully",
			BookingID:        bkg.ID,
			RefundAmount:     refundAmount,
			RefundPercentage: refundPercentage,
			CancelledAt:      cancelledAt,
			Seats:            seatNumbers,
		}
		return nil
	})
	if txErr != nil {
		if _, ok := AsError(txErr); ok {
			return nil, txErr
		}
		if errors.Is(txErr, transportRepo.ErrSeatStateConflict) || isTransientTxnError(txErr) {
			return nil, newError(CodeTransactionConflict, "seat state changed under a concurrent transaction")
		}
		utils.GetLogger().Error("cancellation transaction failed",
			zap.String("bookingId", bookingID), zap.Error(txErr))
		return nil, newError(CodeUnknown, "cancellation transaction failed")
	}

	return resp, nil
}
