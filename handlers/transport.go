package handlers

import (
	"errors"
	"net/http"

	"voyago/models"
	"voyago/services/transport"
	"voyago/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// TransportHandler exposes the transport inventory endpoints.
type TransportHandler struct {
	Service transport.Service
}

// NewTransportHandler creates a TransportHandler.
func NewTransportHandler(svc transport.Service) *TransportHandler {
	return &TransportHandler{Service: svc}
}

func respondTransportError(c *gin.Context, err error) {
	var ve *transport.ValidationError
	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, gin.H{"error": ve.Message})
	case errors.Is(err, transport.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Transport not found"})
	default:
		utils.GetLogger().Error("transport request failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// AddTransport handles POST /transport/add.
func (h *TransportHandler) AddTransport(c *gin.Context) {
	var t models.Transport
	if err := c.ShouldBindJSON(&t); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	created, err := h.Service.Add(c.Request.Context(), &t)
	if err != nil {
		respondTransportError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// GetTransports handles GET /transport/all with optional type/source/destination filters.
func (h *TransportHandler) GetTransports(c *gin.Context) {
	transports, err := h.Service.List(c.Request.Context(),
		c.Query("type"), c.Query("source"), c.Query("destination"))
	if err != nil {
		respondTransportError(c, err)
		return
	}
	if transports == nil {
		transports = []models.Transport{}
	}
	c.JSON(http.StatusOK, transports)
}

// GetTransportByID handles GET /transport/:id.
func (h *TransportHandler) GetTransportByID(c *gin.Context) {
	t, err := h.Service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondTransportError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

// UpdateTransport handles PUT /transport/:id.
func (h *TransportHandler) UpdateTransport(c *gin.Context) {
	var t models.Transport
	if err := c.ShouldBindJSON(&t); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	t.ID = c.Param("id")

	updated, err := h.Service.Update(c.Request.Context(), &t)
	if err != nil {
		respondTransportError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteTransport handles DELETE /transport/:id.
func (h *TransportHandler) DeleteTransport(c *gin.Context) {
	if err := h.Service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondTransportError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Transport deleted successfully"})
}
