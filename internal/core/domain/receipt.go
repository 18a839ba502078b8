package domain

// SimulatedTenantAddress is used for rentals created without a connected
// wallet session.
const SimulatedTenantAddress = "0xTenant000000000000000000000000000000000000"

// Receipt records a simulated rental payment. Receipts are immutable once
// created. PropertyID is a non-owning reference: the property may later be
// deactivated without invalidating the receipt. Cid and TxHash are mock
// identifiers generated locally and verifiable against nothing.
type Receipt struct {
	ID            string  `json:"id"`
	PropertyID    string  `json:"propertyId"`
	TenantAddress string  `json:"tenantAddress"`
	Months        int     `json:"months"`
	Amount        float64 `json:"amount"`
	Cid           string  `json:"cid"`
	TxHash        string  `json:"txHash"`
	CreatedAt     int64   `json:"createdAt"` // epoch milliseconds
}

// NewReceipt carries caller-supplied fields for a receipt. Amount is computed
// by the caller (pricePerMonth × months) and is not validated by the store.
type NewReceipt struct {
	PropertyID    string
	TenantAddress string
	Months        int
	Amount        float64
}
