package provider

import (
	"errors"
	"fmt"

	providerRepo "voyago/database/repository/provider"
	"voyago/models"

	"github.com/google/uuid"
)

// ErrNotFound is returned when a service provider does not exist.
var ErrNotFound = errors.New("service provider not found")

// Service manages service provider records.
type Service interface {
	Add(p *models.ServiceProvider) (*models.ServiceProvider, error)
	GetAll() ([]models.ServiceProvider, error)
	GetByID(id string) (*models.ServiceProvider, error)
	Update(p *models.ServiceProvider) (*models.ServiceProvider, error)
	Delete(id string) error
}

// DefaultProviderService is the production implementation of Service.
type DefaultProviderService struct {
	Repo providerRepo.ProviderRepository
}

// Add persists a new service provider.
func (s *DefaultProviderService) Add(p *models.ServiceProvider) (*models.ServiceProvider, error) {
	if p.Name == "" || p.Type == "" {
		return nil, fmt.Errorf("provider name and type are required")
	}
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	if err := s.Repo.Create(p); err != nil {
		return nil, err
	}
	return p, nil
}

// GetAll returns all service providers.
func (s *DefaultProviderService) GetAll() ([]models.ServiceProvider, error) {
	return s.Repo.GetAll()
}

// GetByID returns the provider with the given ID.
func (s *DefaultProviderService) GetByID(id string) (*models.ServiceProvider, error) {
	p, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrNotFound
	}
	return p, nil
}

// Update replaces the fields of an existing provider.
func (s *DefaultProviderService) Update(p *models.ServiceProvider) (*models.ServiceProvider, error) {
	existing, err := s.Repo.GetByID(p.ID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrNotFound
	}
	p.CreatedAt = existing.CreatedAt
	if err := s.Repo.Update(p); err != nil {
		return nil, err
	}
	return p, nil
}

// Delete removes the provider with the given ID.
func (s *DefaultProviderService) Delete(id string) error {
	existing, err := s.Repo.GetByID(id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrNotFound
	}
	return s.Repo.Delete(id)
}
