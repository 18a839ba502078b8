package domain

// PlaceholderImage is used when a listing is created without an image path.
const PlaceholderImage = "/house-front-elevation.jpg"

// Property is a rental listing. The id and CreatedAt are assigned by the
// simulation store at creation and never change. PieceCid and IpfsCid are
// attached after creation when a backup succeeds; a later backup overwrites
// the previous link, there is no versioning.
type Property struct {
	ID            string  `json:"id"`
	Title         string  `json:"title"`
	Location      string  `json:"location"`
	PricePerMonth float64 `json:"pricePerMonth"`
	Description   string  `json:"description"`
	Image         string  `json:"image"`
	Active        bool    `json:"active"`
	CreatedAt     int64   `json:"createdAt"` // epoch milliseconds
	PieceCid      string  `json:"pieceCid,omitempty"`
	IpfsCid       string  `json:"ipfsCid,omitempty"`
}

// NewProperty carries caller-supplied fields for a listing. Validation
// (non-empty title/location, price > 0) is the caller's responsibility; the
// store applies none.
type NewProperty struct {
	Title         string
	Location      string
	PricePerMonth float64
	Description   string
	Image         string
}

// PropertyPatch is a partial update applied by the store's merge operation.
// Nil fields are left untouched.
type PropertyPatch struct {
	Title         *string
	Location      *string
	PricePerMonth *float64
	Description   *string
	Image         *string
	PieceCid      *string
	IpfsCid       *string
}

// Apply merges the patch into p.
func (patch PropertyPatch) Apply(p *Property) {
	if patch.Title != nil {
		p.Title = *patch.Title
	}
	if patch.Location != nil {
		p.Location = *patch.Location
	}
	if patch.PricePerMonth != nil {
		p.PricePerMonth = *patch.PricePerMonth
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Image != nil {
		p.Image = *patch.Image
	}
	if patch.PieceCid != nil {
		p.PieceCid = *patch.PieceCid
	}
	if patch.IpfsCid != nil {
		p.IpfsCid = *patch.IpfsCid
	}
}
