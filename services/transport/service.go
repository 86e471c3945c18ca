package transport

import (
	"context"
	"errors"
	"fmt"

	transportRepo "voyago/database/repository/transport"
	"voyago/models"

	"go.mongodb.org/mongo-driver/bson"
)

// ErrNotFound is returned when a transport does not exist.
var ErrNotFound = errors.New("transport not found")

// ValidationError reports invalid transport input.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func newValidationError(format string, args ...interface{}) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// Service manages the transport inventory.
type Service interface {
	// Add validates and persists a new transport. When no seat list is
	// supplied the seat map is derived from the classes, exactly once.
	Add(ctx context.Context, t *models.Transport) (*models.Transport, error)
	// List returns transports, optionally filtered by type, source and destination.
	List(ctx context.Context, transportType, source, destination string) ([]models.Transport, error)
	// GetByID returns a transport by ID.
	GetByID(ctx context.Context, id string) (*models.Transport, error)
	// Update replaces a transport's fields.
	Update(ctx context.Context, t *models.Transport) (*models.Transport, error)
	// Delete removes a transport.
	Delete(ctx context.Context, id string) error
}

// DefaultTransportService is the production implementation of Service.
type DefaultTransportService struct {
	Repo transportRepo.Repository
}

// List returns transports matching the optional filters.
func (s *DefaultTransportService) List(ctx context.Context, transportType, source, destination string) ([]models.Transport, error) {
	filter := bson.M{}
	if transportType != "" {
		filter["type"] = transportType
	}
	if source != "" {
		filter["source"] = source
	}
	if destination != "" {
		filter["destination"] = destination
	}
	return s.Repo.List(ctx, filter)
}

// GetByID returns the transport with the given ID.
func (s *DefaultTransportService) GetByID(ctx context.Context, id string) (*models.Transport, error) {
	if id == "" {
		return nil, newValidationError("transport ID is required")
	}
	t, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, ErrNotFound
	}
	return t, nil
}

// Delete removes the transport with the given ID.
func (s *DefaultTransportService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return newValidationError("transport ID is required")
	}
	existing, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrNotFound
	}
	return s.Repo.Delete(ctx, id)
}
