package service

import (
	"context"
	"testing"

	"visionland/internal/core/domain"
	"visionland/internal/core/ports"
	"visionland/internal/core/ports/mocks"
	"visionland/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRentalService_CreateRental(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockSimulationStore(ctrl)

	property := domain.Property{ID: "prop_abc123xyz0", PricePerMonth: 150, Active: true}
	store.EXPECT().PropertyByID(gomock.Any(), property.ID).Return(property, true)
	store.EXPECT().
		CreateReceipt(gomock.Any(), domain.NewReceipt{
			PropertyID:    property.ID,
			TenantAddress: "0xTenantCustom",
			Months:        3,
			Amount:        450,
		}).
		Return(domain.Receipt{ID: "rcpt_xyz", PropertyID: property.ID, Amount: 450, Months: 3})

	svc := NewRentalService(store, zerolog.Nop())
	receipt, err := svc.CreateRental(context.Background(), ports.RentalRequest{
		PropertyID:    property.ID,
		Months:        3,
		TenantAddress: "0xTenantCustom",
	})

	require.NoError(t, err)
	assert.Equal(t, "rcpt_xyz", receipt.ID)
	assert.Equal(t, 450.0, receipt.Amount)
}

func TestRentalService_CreateRental_PlaceholderTenant(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockSimulationStore(ctrl)

	property := domain.Property{ID: "prop_1", PricePerMonth: 100, Active: true}
	store.EXPECT().PropertyByID(gomock.Any(), "prop_1").Return(property, true)
	store.EXPECT().Wallet(gomock.Any()).Return(domain.Wallet{}, false)
	store.EXPECT().
		CreateReceipt(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input domain.NewReceipt) domain.Receipt {
			assert.Equal(t, domain.SimulatedTenantAddress, input.TenantAddress)
			return domain.Receipt{ID: "rcpt_1", TenantAddress: input.TenantAddress}
		})

	svc := NewRentalService(store, zerolog.Nop())
	receipt, err := svc.CreateRental(context.Background(), ports.RentalRequest{PropertyID: "prop_1", Months: 1})

	require.NoError(t, err)
	assert.Equal(t, domain.SimulatedTenantAddress, receipt.TenantAddress)
}

func TestRentalService_CreateRental_ConnectedWalletTenant(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockSimulationStore(ctrl)

	addr := "0x2222222222222222222222222222222222222222"
	property := domain.Property{ID: "prop_1", PricePerMonth: 100, Active: true}
	store.EXPECT().PropertyByID(gomock.Any(), "prop_1").Return(property, true)
	store.EXPECT().Wallet(gomock.Any()).Return(domain.Wallet{Address: addr}, true)
	store.EXPECT().
		CreateReceipt(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input domain.NewReceipt) domain.Receipt {
			assert.Equal(t, addr, input.TenantAddress)
			return domain.Receipt{ID: "rcpt_1"}
		})

	svc := NewRentalService(store, zerolog.Nop())
	_, err := svc.CreateRental(context.Background(), ports.RentalRequest{PropertyID: "prop_1", Months: 1})
	require.NoError(t, err)
}

func TestRentalService_CreateRental_UnknownProperty(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockSimulationStore(ctrl)

	store.EXPECT().PropertyByID(gomock.Any(), "prop_missing").Return(domain.Property{}, false)

	svc := NewRentalService(store, zerolog.Nop())
	_, err := svc.CreateRental(context.Background(), ports.RentalRequest{PropertyID: "prop_missing", Months: 2})

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "LST_001", appErr.Code)
}

func TestRentalService_CreateRental_InactiveProperty(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockSimulationStore(ctrl)

	store.EXPECT().PropertyByID(gomock.Any(), "prop_1").
		Return(domain.Property{ID: "prop_1", Active: false}, true)

	svc := NewRentalService(store, zerolog.Nop())
	_, err := svc.CreateRental(context.Background(), ports.RentalRequest{PropertyID: "prop_1", Months: 2})

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VAL_001", appErr.Code)
}

func TestRentalService_CreateRental_InvalidMonths(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockSimulationStore(ctrl)

	svc := NewRentalService(store, zerolog.Nop())
	_, err := svc.CreateRental(context.Background(), ports.RentalRequest{PropertyID: "prop_1", Months: 0})

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VAL_001", appErr.Code)
}

func TestRentalService_ReceiptByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockSimulationStore(ctrl)

	store.EXPECT().ReceiptByID(gomock.Any(), "rcpt_1").Return(domain.Receipt{ID: "rcpt_1"}, true)
	store.EXPECT().ReceiptByID(gomock.Any(), "rcpt_missing").Return(domain.Receipt{}, false)

	svc := NewRentalService(store, zerolog.Nop())

	receipt, err := svc.ReceiptByID(context.Background(), "rcpt_1")
	require.NoError(t, err)
	assert.Equal(t, "rcpt_1", receipt.ID)

	_, err = svc.ReceiptByID(context.Background(), "rcpt_missing")
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "LST_001", appErr.Code)
}
