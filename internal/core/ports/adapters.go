package ports

import (
	"context"
	"errors"
	"math/big"
)

// ErrNoSigner is returned by a ContentStorage whose provider session needs a
// MessageSigner and none is configured. Raised synchronously, before any
// network attempt, so callers can map it to a missing-wallet precondition.
var ErrNoSigner = errors.New("no message signer configured")

// ContentStorage is the capability shared by both decentralized-storage
// adapters. Upload is fire-and-forget: no retry, no chunking, no integrity
// verification of the returned identifier. Download fails when the
// identifier is invalid or the provider is unreachable; callers surface the
// failure directly.
type ContentStorage interface {
	Upload(ctx context.Context, data []byte) (string, error)
	Download(ctx context.Context, contentID string) ([]byte, error)
}

// MessageSigner signs a provider authentication challenge. The piece-storage
// adapter requires one to establish its session.
type MessageSigner interface {
	SignMessage(ctx context.Context, message string) (string, error)
}

// ChainReader is a read-only projection over a wallet-connected RPC
// endpoint. It reads state only; no transaction submission exists.
type ChainReader interface {
	ChainID(ctx context.Context) (*big.Int, error)
	BalanceAt(ctx context.Context, address string) (*big.Int, error)
	// Disconnect tears the session down cleanly; the caller decides when.
	Disconnect()
}
