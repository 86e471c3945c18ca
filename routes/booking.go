package routes

import (
	"voyago/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterBookingRoutes registers all endpoints of the booking engine.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	booking := r.Group("/api/booking")
	{
		booking.POST("/bookings", hb.Booking.CreateBooking)
		booking.POST("/bookings/:bookingId/cancel", hb.Booking.CancelBooking)
		booking.GET("/users/:userId/bookings", hb.Booking.GetUserBookings)
		booking.GET("/all", hb.Booking.GetAllBookings)
		booking.GET("/:transportId", hb.Booking.GetTransportBookings)
	}
}
