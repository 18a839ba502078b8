package ports

import (
	"context"
	"time"

	"visionland/internal/core/domain"
)

// Storage backend names accepted by the backup service.
const (
	BackendPieces  = "pieces"
	BackendPinning = "pinning"
)

// TokenService issues and validates demo session tokens bound to a wallet
// address. A convenience for the UI flow, not a security boundary.
type TokenService interface {
	Generate(address string) (string, time.Time, error)
	Validate(tokenString string) (*SessionClaims, error)
}

// SessionClaims holds the parsed session token claims.
type SessionClaims struct {
	Address string
}

// WalletService manages the simulated wallet session.
type WalletService interface {
	// Connect creates a session with a fresh simulated address and issues a
	// session token.
	Connect(ctx context.Context) (*ConnectResult, error)
	Disconnect(ctx context.Context) error
	Current(ctx context.Context) (domain.Wallet, bool)
	// Balance reads the connected address balance through the chain adapter.
	Balance(ctx context.Context) (*BalanceResult, error)
}

// ConnectResult is the outcome of a wallet connect.
type ConnectResult struct {
	Wallet      domain.Wallet
	Token       string
	TokenExpiry time.Time
}

// BalanceResult holds a balance read from the chain RPC.
type BalanceResult struct {
	Address string
	Balance string // decimal string, smallest unit
	ChainID string
}

// RentalService creates and reads rental receipts.
type RentalService interface {
	// CreateRental resolves the property, computes amount = pricePerMonth ×
	// months, and records an immutable receipt. TenantAddress falls back to
	// the simulated placeholder when empty.
	CreateRental(ctx context.Context, req RentalRequest) (domain.Receipt, error)
	Receipts(ctx context.Context) []domain.Receipt
	ReceiptByID(ctx context.Context, id string) (domain.Receipt, error)
}

// RentalRequest holds validated input for rental creation.
type RentalRequest struct {
	PropertyID    string
	Months        int
	TenantAddress string // empty = simulated placeholder
}

// BackupService snapshots listings to decentralized storage and restores
// them by content identifier.
type BackupService interface {
	// Backup serializes the property, uploads it through the named backend
	// and attaches the returned content identifier to the listing,
	// overwriting any previous link.
	Backup(ctx context.Context, propertyID, backend string) (*BackupResult, error)
	// Restore downloads and decodes a property snapshot by content id.
	Restore(ctx context.Context, backend, contentID string) (domain.Property, error)
}

// BackupResult is the outcome of a property backup.
type BackupResult struct {
	PropertyID string
	Backend    string
	ContentID  string
}
