package handler

import (
	"visionland/internal/adapter/http/dto"
	"visionland/internal/adapter/http/middleware"
	"visionland/internal/core/ports"
	"visionland/pkg/apperror"
	"visionland/pkg/response"

	"github.com/gin-gonic/gin"
)

// RentalHandler handles rental and receipt endpoints.
type RentalHandler struct {
	rentalSvc ports.RentalService
}

// NewRentalHandler creates a new RentalHandler.
func NewRentalHandler(rentalSvc ports.RentalService) *RentalHandler {
	return &RentalHandler{rentalSvc: rentalSvc}
}

// Create handles POST /api/v1/rentals.
func (h *RentalHandler) Create(c *gin.Context) {
	var req dto.CreateRentalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	// A session token wins over a body-supplied address.
	tenant := req.TenantAddress
	if addr, ok := c.Get(middleware.CtxWalletAddress); ok {
		if s, ok := addr.(string); ok && s != "" {
			tenant = s
		}
	}

	receipt, err := h.rentalSvc.CreateRental(c.Request.Context(), ports.RentalRequest{
		PropertyID:    req.PropertyID,
		Months:        req.Months,
		TenantAddress: tenant,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, receipt)
}

// ListReceipts handles GET /api/v1/receipts.
func (h *RentalHandler) ListReceipts(c *gin.Context) {
	response.OK(c, h.rentalSvc.Receipts(c.Request.Context()))
}

// GetReceipt handles GET /api/v1/receipts/:id.
func (h *RentalHandler) GetReceipt(c *gin.Context) {
	receipt, err := h.rentalSvc.ReceiptByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, receipt)
}
