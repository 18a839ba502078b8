package ports

import (
	"context"

	"visionland/internal/core/domain"
)

// DocumentStore is the key-value persistence backend behind the simulation
// store. Each key holds one JSON document that is rewritten in full on every
// mutation.
type DocumentStore interface {
	// Get returns the document stored under key, or nil if absent.
	Get(ctx context.Context, key string) ([]byte, error)
	// Set overwrites the document stored under key.
	Set(ctx context.Context, key string, value []byte) error
}

// SimulationStore is the single source of truth for properties, receipts and
// the wallet session. Mutations are atomic and write through to the
// DocumentStore; a failed write leaves in-memory state authoritative for the
// process lifetime.
type SimulationStore interface {
	// EnsureSeeded populates the property collection with the fixed example
	// set when it is empty. Idempotent.
	EnsureSeeded(ctx context.Context)

	Properties(ctx context.Context) []domain.Property
	ActiveProperties(ctx context.Context) []domain.Property
	PropertyByID(ctx context.Context, id string) (domain.Property, bool)

	// AddProperty constructs a listing with a fresh id, Active=true and
	// CreatedAt=now, prepends it and returns it. No validation is applied.
	AddProperty(ctx context.Context, input domain.NewProperty) domain.Property

	// TogglePropertyActive flips the active flag. Returns false when the id
	// is unknown, leaving the collection unchanged.
	TogglePropertyActive(ctx context.Context, id string) (domain.Property, bool)

	// UpdateProperty merges the patch into the listing. Returns false when
	// the id is unknown, leaving the collection unchanged.
	UpdateProperty(ctx context.Context, id string, patch domain.PropertyPatch) (domain.Property, bool)

	Receipts(ctx context.Context) []domain.Receipt
	ReceiptByID(ctx context.Context, id string) (domain.Receipt, bool)

	// CreateReceipt constructs a receipt with a fresh id, mock cid and
	// txHash, prepends it and returns it.
	CreateReceipt(ctx context.Context, input domain.NewReceipt) domain.Receipt

	// ConnectWallet simulates a wallet session with a random 40-hex-digit
	// address unrelated to any real keypair.
	ConnectWallet(ctx context.Context) domain.Wallet
	DisconnectWallet(ctx context.Context)
	Wallet(ctx context.Context) (domain.Wallet, bool)
}
