package dto

// CreatePropertyRequest is the request body for listing creation.
type CreatePropertyRequest struct {
	Title         string  `json:"title" binding:"required,min=1,max=200"`
	Location      string  `json:"location" binding:"required,min=1,max=200"`
	PricePerMonth float64 `json:"pricePerMonth" binding:"required,gt=0"`
	Description   string  `json:"description" binding:"max=2000"`
	Image         string  `json:"image" binding:"omitempty,max=500"`
}

// CreateRentalRequest is the request body for booking a property.
type CreateRentalRequest struct {
	PropertyID    string `json:"propertyId" binding:"required,safe_id"`
	Months        int    `json:"months" binding:"required,gte=1,lte=120"`
	TenantAddress string `json:"tenantAddress" binding:"omitempty,max=100"`
}

// BackupRequest is the request body for snapshotting a listing.
type BackupRequest struct {
	Backend string `json:"backend" binding:"required,oneof=pieces pinning"`
}

// BackupResponse is the response body for a completed backup.
type BackupResponse struct {
	PropertyID string `json:"propertyId"`
	Backend    string `json:"backend"`
	Cid        string `json:"cid"`
}

// ConnectWalletResponse is the response body for a wallet connect.
type ConnectWalletResponse struct {
	Address     string `json:"address"`
	Token       string `json:"token"`
	TokenExpiry int64  `json:"tokenExpiry"` // Unix timestamp
}

// WalletStatusResponse reports the current simulated session.
type WalletStatusResponse struct {
	Connected bool   `json:"connected"`
	Address   string `json:"address,omitempty"`
}

// BalanceResponse is the response body for a balance read.
type BalanceResponse struct {
	Address string `json:"address"`
	Balance string `json:"balance"` // decimal string, smallest unit
	ChainID string `json:"chainId"`
}
