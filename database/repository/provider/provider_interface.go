package providerRepo

import "voyago/models"

// ProviderRepository defines methods for service provider data access.
type ProviderRepository interface {
	// Create inserts a new service provider record.
	Create(p *models.ServiceProvider) error
	// GetByID retrieves a provider by its unique ID.
	GetByID(id string) (*models.ServiceProvider, error)
	// GetAll retrieves all providers.
	GetAll() ([]models.ServiceProvider, error)
	// Update replaces an existing provider record.
	Update(p *models.ServiceProvider) error
	// Delete removes a provider record by its ID.
	Delete(id string) error
}
