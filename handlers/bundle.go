package handlers

import (
	userRepo "voyago/database/repository/user"
)

// HandlerBundle groups the assembled handlers for route registration.
type HandlerBundle struct {
	UserRepo userRepo.UserRepository

	Booking   *BookingHandler
	Transport *TransportHandler
	Provider  *ProviderHandler
	User      *UserHandler
}
