package service

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"visionland/internal/core/domain"
	"visionland/internal/core/ports"
	"visionland/pkg/mockid"

	"github.com/rs/zerolog"
)

// Fixed document keys, one per collection.
const (
	keyProperties = "visionland:properties"
	keyReceipts   = "visionland:receipts"
	keyWallet     = "visionland:wallet"
)

// SimStore implements ports.SimulationStore. It owns the authoritative
// in-memory state and writes every mutation through to the document store as
// a full rewrite of the affected collection. A failed write is logged and
// swallowed: the in-memory state stays authoritative for the process
// lifetime, at the accepted risk of losing the change across a restart.
type SimStore struct {
	docs ports.DocumentStore
	ids  *mockid.Generator
	log  zerolog.Logger
	now  func() time.Time

	mu         sync.Mutex
	properties []domain.Property
	receipts   []domain.Receipt
	wallet     *domain.Wallet
}

// NewSimStore builds the store and loads all three collections. A missing or
// unparsable document falls back to an empty collection (nil wallet); no
// partial-record recovery is attempted.
func NewSimStore(ctx context.Context, docs ports.DocumentStore, ids *mockid.Generator, log zerolog.Logger) *SimStore {
	s := &SimStore{
		docs: docs,
		ids:  ids,
		log:  log,
		now:  time.Now,
	}
	s.properties = loadCollection[domain.Property](ctx, docs, keyProperties, log)
	s.receipts = loadCollection[domain.Receipt](ctx, docs, keyReceipts, log)
	s.wallet = loadWallet(ctx, docs, log)
	return s
}

func loadCollection[T any](ctx context.Context, docs ports.DocumentStore, key string, log zerolog.Logger) []T {
	raw, err := docs.Get(ctx, key)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("document read failed, starting empty")
		return nil
	}
	if raw == nil {
		return nil
	}
	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("document unparsable, starting empty")
		return nil
	}
	return items
}

func loadWallet(ctx context.Context, docs ports.DocumentStore, log zerolog.Logger) *domain.Wallet {
	raw, err := docs.Get(ctx, keyWallet)
	if err != nil {
		log.Warn().Err(err).Str("key", keyWallet).Msg("document read failed, starting disconnected")
		return nil
	}
	if raw == nil {
		return nil
	}
	var w *domain.Wallet
	if err := json.Unmarshal(raw, &w); err != nil {
		log.Warn().Err(err).Str("key", keyWallet).Msg("document unparsable, starting disconnected")
		return nil
	}
	return w
}

// persist writes the full document for key. Failures are not retried.
func (s *SimStore) persist(ctx context.Context, key string, value any) {
	raw, err := json.Marshal(value)
	if err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("serialize failed, change not persisted")
		return
	}
	if err := s.docs.Set(ctx, key, raw); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("write-through failed, in-memory state remains authoritative")
	}
}

// EnsureSeeded populates the property collection with the fixed example set
// when it is empty. No-op once any property exists.
func (s *SimStore) EnsureSeeded(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.properties) > 0 {
		return
	}

	now := s.now().UnixMilli()
	s.properties = []domain.Property{
		{
			ID:            s.ids.ID("prop_"),
			Title:         "Sunny 2BR Apartment",
			Location:      "Austin, TX",
			PricePerMonth: 1400,
			Description:   "Bright 2-bedroom near parks and cafés.",
			Image:         "/sunny-2br-apartment-front.jpg",
			Active:        true,
			CreatedAt:     now - 24*time.Hour.Milliseconds(),
		},
		{
			ID:            s.ids.ID("prop_"),
			Title:         "Modern Loft",
			Location:      "Denver, CO",
			PricePerMonth: 2200,
			Description:   "Open-plan loft with city views.",
			Image:         "/modern-loft-exterior.jpg",
			Active:        true,
			CreatedAt:     now - 12*time.Hour.Milliseconds(),
		},
		{
			ID:            s.ids.ID("prop_"),
			Title:         "Cozy Cottage",
			Location:      "Portland, OR",
			PricePerMonth: 1750,
			Description:   "Charming cottage with garden.",
			Image:         "/cozy-cottage-front.jpg",
			Active:        false,
			CreatedAt:     now - 6*time.Hour.Milliseconds(),
		},
	}
	s.persist(ctx, keyProperties, s.properties)
	s.log.Info().Int("count", len(s.properties)).Msg("property collection seeded")
}

// Properties returns all listings, most recently added first.
func (s *SimStore) Properties(ctx context.Context) []domain.Property {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Property, len(s.properties))
	copy(out, s.properties)
	return out
}

// ActiveProperties returns listings visible to tenants.
func (s *SimStore) ActiveProperties(ctx context.Context) []domain.Property {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []domain.Property
	for _, p := range s.properties {
		if p.Active {
			out = append(out, p)
		}
	}
	return out
}

func (s *SimStore) PropertyByID(ctx context.Context, id string) (domain.Property, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.properties {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Property{}, false
}

// AddProperty prepends a new listing. Constraints (price > 0, non-empty
// title and location) are enforced by the caller before invocation.
func (s *SimStore) AddProperty(ctx context.Context, input domain.NewProperty) domain.Property {
	s.mu.Lock()
	defer s.mu.Unlock()

	image := input.Image
	if image == "" {
		image = domain.PlaceholderImage
	}
	p := domain.Property{
		ID:            s.ids.ID("prop_"),
		Title:         input.Title,
		Location:      input.Location,
		PricePerMonth: input.PricePerMonth,
		Description:   input.Description,
		Image:         image,
		Active:        true,
		CreatedAt:     s.now().UnixMilli(),
	}
	s.properties = append([]domain.Property{p}, s.properties...)
	s.persist(ctx, keyProperties, s.properties)
	return p
}

// TogglePropertyActive flips the visibility flag. Unknown ids leave the
// collection unchanged.
func (s *SimStore) TogglePropertyActive(ctx context.Context, id string) (domain.Property, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.properties {
		if s.properties[i].ID == id {
			s.properties[i].Active = !s.properties[i].Active
			s.persist(ctx, keyProperties, s.properties)
			return s.properties[i], true
		}
	}
	return domain.Property{}, false
}

// UpdateProperty merges the patch into the listing. Unknown ids leave the
// collection unchanged.
func (s *SimStore) UpdateProperty(ctx context.Context, id string, patch domain.PropertyPatch) (domain.Property, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.properties {
		if s.properties[i].ID == id {
			patch.Apply(&s.properties[i])
			s.persist(ctx, keyProperties, s.properties)
			return s.properties[i], true
		}
	}
	return domain.Property{}, false
}

// Receipts returns all receipts, most recently created first.
func (s *SimStore) Receipts(ctx context.Context) []domain.Receipt {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Receipt, len(s.receipts))
	copy(out, s.receipts)
	return out
}

func (s *SimStore) ReceiptByID(ctx context.Context, id string) (domain.Receipt, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, r := range s.receipts {
		if r.ID == id {
			return r, true
		}
	}
	return domain.Receipt{}, false
}

// CreateReceipt records an immutable receipt with mock content and
// transaction identifiers. Amount is taken as supplied; the store does not
// validate it.
func (s *SimStore) CreateReceipt(ctx context.Context, input domain.NewReceipt) domain.Receipt {
	s.mu.Lock()
	defer s.mu.Unlock()

	r := domain.Receipt{
		ID:            s.ids.ID("rcpt_"),
		PropertyID:    input.PropertyID,
		TenantAddress: input.TenantAddress,
		Months:        input.Months,
		Amount:        input.Amount,
		Cid:           s.ids.CID(),
		TxHash:        s.ids.TxHash(),
		CreatedAt:     s.now().UnixMilli(),
	}
	s.receipts = append([]domain.Receipt{r}, s.receipts...)
	s.persist(ctx, keyReceipts, s.receipts)
	return r
}

// ConnectWallet simulates a session with a fresh random address on every
// connect.
func (s *SimStore) ConnectWallet(ctx context.Context) domain.Wallet {
	s.mu.Lock()
	defer s.mu.Unlock()

	w := domain.Wallet{Address: s.ids.Address()}
	s.wallet = &w
	s.persist(ctx, keyWallet, s.wallet)
	return w
}

func (s *SimStore) DisconnectWallet(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.wallet = nil
	s.persist(ctx, keyWallet, s.wallet)
}

func (s *SimStore) Wallet(ctx context.Context) (domain.Wallet, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.wallet == nil {
		return domain.Wallet{}, false
	}
	return *s.wallet, true
}
