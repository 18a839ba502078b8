package service

import (
	"context"

	"visionland/internal/core/domain"
	"visionland/internal/core/ports"
	"visionland/pkg/apperror"

	"github.com/rs/zerolog"
)

// walletService implements ports.WalletService.
type walletService struct {
	store  ports.SimulationStore
	tokens ports.TokenService
	chain  ports.ChainReader // nil = no RPC configured
	log    zerolog.Logger
}

// NewWalletService creates a wallet session service. chain may be nil, in
// which case balance reads fail with a missing-wallet precondition error.
func NewWalletService(
	store ports.SimulationStore,
	tokens ports.TokenService,
	chain ports.ChainReader,
	log zerolog.Logger,
) ports.WalletService {
	return &walletService{
		store:  store,
		tokens: tokens,
		chain:  chain,
		log:    log,
	}
}

// Connect simulates a wallet session and issues a session token bound to the
// fresh address.
func (s *walletService) Connect(ctx context.Context) (*ports.ConnectResult, error) {
	w := s.store.ConnectWallet(ctx)

	token, expiry, err := s.tokens.Generate(w.Address)
	if err != nil {
		return nil, apperror.InternalError(err)
	}

	s.log.Info().Str("address", w.Address).Msg("wallet connected")
	return &ports.ConnectResult{
		Wallet:      w,
		Token:       token,
		TokenExpiry: expiry,
	}, nil
}

// Disconnect clears the session. The chain adapter is torn down explicitly
// rather than forcing dependent state to re-initialize.
func (s *walletService) Disconnect(ctx context.Context) error {
	s.store.DisconnectWallet(ctx)
	if s.chain != nil {
		s.chain.Disconnect()
	}
	s.log.Info().Msg("wallet disconnected")
	return nil
}

func (s *walletService) Current(ctx context.Context) (domain.Wallet, bool) {
	return s.store.Wallet(ctx)
}

// Balance reads the connected address balance through the chain adapter.
func (s *walletService) Balance(ctx context.Context) (*ports.BalanceResult, error) {
	if s.chain == nil {
		return nil, apperror.ErrNoWallet()
	}
	w, connected := s.store.Wallet(ctx)
	if !connected {
		return nil, apperror.ErrWalletNotConnected()
	}

	chainID, err := s.chain.ChainID(ctx)
	if err != nil {
		return nil, apperror.ErrChainUnavailable(err)
	}
	balance, err := s.chain.BalanceAt(ctx, w.Address)
	if err != nil {
		return nil, apperror.ErrChainUnavailable(err)
	}

	return &ports.BalanceResult{
		Address: w.Address,
		Balance: balance.String(),
		ChainID: chainID.String(),
	}, nil
}
