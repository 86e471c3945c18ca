package handlers

import (
	"net/http"
	"strconv"

	"voyago/models"
	"voyago/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the booking endpoints.
type BookingHandler struct {
	Service booking.Service
	Logger  *zap.Logger
}

// NewBookingHandler creates a BookingHandler.
func NewBookingHandler(svc booking.Service, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: svc, Logger: logger}
}

// statusForCode maps booking error codes to HTTP statuses.
func statusForCode(code string) int {
	switch code {
	case booking.CodeNotFound:
		return http.StatusNotFound
	case booking.CodeAuthorization:
		return http.StatusForbidden
	case booking.CodeDataIntegrity, booking.CodeTransactionConflict, booking.CodeUnknown:
		return http.StatusInternalServerError
	default:
		return http.StatusBadRequest
	}
}

// respondBookingError writes a booking failure as JSON, flattening the
// details (offending seats, available days, hours) into the body.
func respondBookingError(c *gin.Context, err error) {
	if be, ok := booking.AsError(err); ok {
		body := gin.H{"error": be.Message, "code": be.Code}
		for k, v := range be.Details {
			body[k] = v
		}
		c.JSON(statusForCode(be.Code), body)
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

// CreateBooking handles POST /bookings.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req models.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	resp, err := h.Service.CreateBooking(c.Request.Context(), req)
	if err != nil {
		h.Logger.Warn("create booking failed",
			zap.String("transportId", req.TransportID),
			zap.String("userId", req.UserID),
			zap.Error(err))
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// CancelBooking handles POST /bookings/:bookingId/cancel.
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	bookingID := c.Param("bookingId")
	var req struct {
		UserID string `json:"userId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	resp, err := h.Service.CancelBooking(c.Request.Context(), bookingID, req.UserID)
	if err != nil {
		h.Logger.Warn("cancel booking failed", zap.String("bookingId", bookingID), zap.Error(err))
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetUserBookings handles GET /users/:userId/bookings.
func (h *BookingHandler) GetUserBookings(c *gin.Context) {
	userID := c.Param("userId")

	bookings, err := h.Service.GetUserBookings(c.Request.Context(), userID)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	if bookings == nil {
		bookings = []models.BookingWithTransport{}
	}
	c.JSON(http.StatusOK, bookings)
}

func pageParams(c *gin.Context) (int, int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit < 1 {
		limit = 10
	}
	return page, limit
}

// GetAllBookings handles GET /all.
func (h *BookingHandler) GetAllBookings(c *gin.Context) {
	page, limit := pageParams(c)

	result, err := h.Service.GetAllBookings(c.Request.Context(), page, limit)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	if result.Bookings == nil {
		result.Bookings = []models.BookingWithTransport{}
	}
	c.JSON(http.StatusOK, result)
}

// GetTransportBookings handles GET /:transportId.
func (h *BookingHandler) GetTransportBookings(c *gin.Context) {
	transportID := c.Param("transportId")
	page, limit := pageParams(c)

	result, err := h.Service.GetTransportBookings(c.Request.Context(), transportID, page, limit)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	if result.Bookings == nil {
		result.Bookings = []models.Booking{}
	}
	c.JSON(http.StatusOK, result)
}
