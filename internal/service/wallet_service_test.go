package service

import (
	"context"
	"errors"
	"math/big"
	"testing"
	"time"

	"visionland/internal/core/domain"
	"visionland/internal/core/ports/mocks"
	"visionland/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestWalletService_Connect(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockSimulationStore(ctrl)
	tokens := mocks.NewMockTokenService(ctrl)

	wallet := domain.Wallet{Address: "0xabc1230000000000000000000000000000000000"}
	expiry := time.Now().Add(7 * 24 * time.Hour)

	store.EXPECT().ConnectWallet(gomock.Any()).Return(wallet)
	tokens.EXPECT().Generate(wallet.Address).Return("session-token", expiry, nil)

	svc := NewWalletService(store, tokens, nil, zerolog.Nop())
	result, err := svc.Connect(context.Background())

	require.NoError(t, err)
	assert.Equal(t, wallet, result.Wallet)
	assert.Equal(t, "session-token", result.Token)
	assert.Equal(t, expiry, result.TokenExpiry)
}

func TestWalletService_Connect_TokenFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockSimulationStore(ctrl)
	tokens := mocks.NewMockTokenService(ctrl)

	store.EXPECT().ConnectWallet(gomock.Any()).Return(domain.Wallet{Address: "0xdead"})
	tokens.EXPECT().Generate(gomock.Any()).Return("", time.Time{}, errors.New("bad key"))

	svc := NewWalletService(store, tokens, nil, zerolog.Nop())
	_, err := svc.Connect(context.Background())

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "SYS_001", appErr.Code)
}

func TestWalletService_Disconnect_TearsDownChain(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockSimulationStore(ctrl)
	tokens := mocks.NewMockTokenService(ctrl)
	chain := mocks.NewMockChainReader(ctrl)

	store.EXPECT().DisconnectWallet(gomock.Any())
	chain.EXPECT().Disconnect()

	svc := NewWalletService(store, tokens, chain, zerolog.Nop())
	require.NoError(t, svc.Disconnect(context.Background()))
}

func TestWalletService_Disconnect_NoChainConfigured(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockSimulationStore(ctrl)
	tokens := mocks.NewMockTokenService(ctrl)

	store.EXPECT().DisconnectWallet(gomock.Any())

	svc := NewWalletService(store, tokens, nil, zerolog.Nop())
	require.NoError(t, svc.Disconnect(context.Background()))
}

func TestWalletService_Balance(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockSimulationStore(ctrl)
	tokens := mocks.NewMockTokenService(ctrl)
	chain := mocks.NewMockChainReader(ctrl)

	addr := "0x1111111111111111111111111111111111111111"
	store.EXPECT().Wallet(gomock.Any()).Return(domain.Wallet{Address: addr}, true)
	chain.EXPECT().ChainID(gomock.Any()).Return(big.NewInt(314), nil)
	chain.EXPECT().BalanceAt(gomock.Any(), addr).Return(new(big.Int).SetUint64(1_000_000_000_000_000_000), nil)

	svc := NewWalletService(store, tokens, chain, zerolog.Nop())
	result, err := svc.Balance(context.Background())

	require.NoError(t, err)
	assert.Equal(t, addr, result.Address)
	assert.Equal(t, "1000000000000000000", result.Balance)
	assert.Equal(t, "314", result.ChainID)
}

func TestWalletService_Balance_NoChainReader(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockSimulationStore(ctrl)
	tokens := mocks.NewMockTokenService(ctrl)

	svc := NewWalletService(store, tokens, nil, zerolog.Nop())
	_, err := svc.Balance(context.Background())

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "CHN_001", appErr.Code)
}

func TestWalletService_Balance_NotConnected(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockSimulationStore(ctrl)
	tokens := mocks.NewMockTokenService(ctrl)
	chain := mocks.NewMockChainReader(ctrl)

	store.EXPECT().Wallet(gomock.Any()).Return(domain.Wallet{}, false)

	svc := NewWalletService(store, tokens, chain, zerolog.Nop())
	_, err := svc.Balance(context.Background())

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "CHN_002", appErr.Code)
}

func TestWalletService_Balance_RPCFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockSimulationStore(ctrl)
	tokens := mocks.NewMockTokenService(ctrl)
	chain := mocks.NewMockChainReader(ctrl)

	store.EXPECT().Wallet(gomock.Any()).Return(domain.Wallet{Address: "0xaa"}, true)
	chain.EXPECT().ChainID(gomock.Any()).Return(nil, errors.New("connection refused"))

	svc := NewWalletService(store, tokens, chain, zerolog.Nop())
	_, err := svc.Balance(context.Background())

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "CHN_003", appErr.Code)
}
