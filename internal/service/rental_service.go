package service

import (
	"context"

	"visionland/internal/core/domain"
	"visionland/internal/core/ports"
	"visionland/pkg/apperror"

	"github.com/rs/zerolog"
)

// rentalService implements ports.RentalService.
type rentalService struct {
	store ports.SimulationStore
	log   zerolog.Logger
}

func NewRentalService(store ports.SimulationStore, log zerolog.Logger) ports.RentalService {
	return &rentalService{store: store, log: log}
}

// CreateRental books a property for a number of months and records a receipt
// with a mock payment trail. The rental amount is the listing price times the
// requested duration; it is computed here, never taken from the caller.
func (s *rentalService) CreateRental(ctx context.Context, req ports.RentalRequest) (domain.Receipt, error) {
	if req.Months < 1 {
		return domain.Receipt{}, apperror.Validation("months must be at least 1")
	}

	property, ok := s.store.PropertyByID(ctx, req.PropertyID)
	if !ok {
		return domain.Receipt{}, apperror.ErrNotFound("property")
	}
	if !property.Active {
		return domain.Receipt{}, apperror.Validation("property is not listed for rent")
	}

	tenant := req.TenantAddress
	if tenant == "" {
		if w, connected := s.store.Wallet(ctx); connected {
			tenant = w.Address
		} else {
			tenant = domain.SimulatedTenantAddress
		}
	}

	receipt := s.store.CreateReceipt(ctx, domain.NewReceipt{
		PropertyID:    property.ID,
		TenantAddress: tenant,
		Months:        req.Months,
		Amount:        property.PricePerMonth * float64(req.Months),
	})

	s.log.Info().
		Str("receipt_id", receipt.ID).
		Str("property_id", property.ID).
		Int("months", req.Months).
		Float64("amount", receipt.Amount).
		Msg("rental recorded")

	return receipt, nil
}

func (s *rentalService) Receipts(ctx context.Context) []domain.Receipt {
	return s.store.Receipts(ctx)
}

func (s *rentalService) ReceiptByID(ctx context.Context, id string) (domain.Receipt, error) {
	receipt, ok := s.store.ReceiptByID(ctx, id)
	if !ok {
		return domain.Receipt{}, apperror.ErrNotFound("receipt")
	}
	return receipt, nil
}
