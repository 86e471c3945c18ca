package handlers

import (
	"errors"
	"net/http"

	"voyago/models"
	"voyago/services/provider"
	"voyago/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ProviderHandler exposes the service provider endpoints.
type ProviderHandler struct {
	Service provider.Service
}

// NewProviderHandler creates a ProviderHandler.
func NewProviderHandler(svc provider.Service) *ProviderHandler {
	return &ProviderHandler{Service: svc}
}

func respondProviderError(c *gin.Context, err error) {
	if errors.Is(err, provider.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Service provider not found"})
		return
	}
	utils.GetLogger().Error("provider request failed", zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

// AddProvider handles POST /service/add.
func (h *ProviderHandler) AddProvider(c *gin.Context) {
	var p models.ServiceProvider
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	created, err := h.Service.Add(&p)
	if err != nil {
		respondProviderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Service provider added successfully", "provider": created})
}

// GetAllProviders handles GET /service/.
func (h *ProviderHandler) GetAllProviders(c *gin.Context) {
	providers, err := h.Service.GetAll()
	if err != nil {
		respondProviderError(c, err)
		return
	}
	if providers == nil {
		providers = []models.ServiceProvider{}
	}
	c.JSON(http.StatusOK, providers)
}

// GetProviderByID handles GET /service/:id.
func (h *ProviderHandler) GetProviderByID(c *gin.Context) {
	p, err := h.Service.GetByID(c.Param("id"))
	if err != nil {
		respondProviderError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// UpdateProvider handles PUT /service/update/:id.
func (h *ProviderHandler) UpdateProvider(c *gin.Context) {
	var p models.ServiceProvider
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	p.ID = c.Param("id")

	updated, err := h.Service.Update(&p)
	if err != nil {
		respondProviderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Service provider updated successfully", "provider": updated})
}

// DeleteProvider handles DELETE /service/delete/:id.
func (h *ProviderHandler) DeleteProvider(c *gin.Context) {
	if err := h.Service.Delete(c.Param("id")); err != nil {
		respondProviderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Service provider deleted successfully"})
}
