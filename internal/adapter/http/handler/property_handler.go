package handler

import (
	"visionland/internal/adapter/http/dto"
	"visionland/internal/core/domain"
	"visionland/internal/core/ports"
	"visionland/pkg/apperror"
	"visionland/pkg/response"

	"github.com/gin-gonic/gin"
)

// PropertyHandler handles listing endpoints backed directly by the
// simulation store.
type PropertyHandler struct {
	store ports.SimulationStore
}

// NewPropertyHandler creates a new PropertyHandler.
func NewPropertyHandler(store ports.SimulationStore) *PropertyHandler {
	return &PropertyHandler{store: store}
}

// List handles GET /api/v1/properties. The first read seeds the example set.
func (h *PropertyHandler) List(c *gin.Context) {
	ctx := c.Request.Context()
	h.store.EnsureSeeded(ctx)
	response.OK(c, h.store.Properties(ctx))
}

// ListActive handles GET /api/v1/properties/active.
func (h *PropertyHandler) ListActive(c *gin.Context) {
	ctx := c.Request.Context()
	h.store.EnsureSeeded(ctx)
	response.OK(c, h.store.ActiveProperties(ctx))
}

// GetByID handles GET /api/v1/properties/:id.
func (h *PropertyHandler) GetByID(c *gin.Context) {
	property, ok := h.store.PropertyByID(c.Request.Context(), c.Param("id"))
	if !ok {
		response.Error(c, apperror.ErrNotFound("property"))
		return
	}
	response.OK(c, property)
}

// Create handles POST /api/v1/properties.
func (h *PropertyHandler) Create(c *gin.Context) {
	var req dto.CreatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	property := h.store.AddProperty(c.Request.Context(), domain.NewProperty{
		Title:         req.Title,
		Location:      req.Location,
		PricePerMonth: req.PricePerMonth,
		Description:   req.Description,
		Image:         req.Image,
	})

	response.Created(c, property)
}

// ToggleActive handles POST /api/v1/properties/:id/toggle.
func (h *PropertyHandler) ToggleActive(c *gin.Context) {
	property, ok := h.store.TogglePropertyActive(c.Request.Context(), c.Param("id"))
	if !ok {
		response.Error(c, apperror.ErrNotFound("property"))
		return
	}
	response.OK(c, property)
}
