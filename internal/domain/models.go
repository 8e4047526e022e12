package domain

// Vegetable is a catalogue row. Name is the reconciliation key and is
// unique (case-sensitive) across the catalogue.
type Vegetable struct {
	ID            string   `db:"id" json:"id"`
	Name          string   `db:"name" json:"name"`
	IsAvailable   bool     `db:"is_available" json:"isAvailable"`
	HasFixedPrice bool     `db:"has_fixed_price" json:"hasFixedPrice"`
	FixedPrice    *float64 `db:"fixed_price" json:"fixedPrice,omitempty"`
	CreatedAt     string   `db:"created_at" json:"createdAt,omitempty"`
	UpdatedAt     string   `db:"updated_at" json:"updatedAt,omitempty"`
}

// BillItem is one line of a bill. Price is the effective unit price after
// any fixed-price override; ItemTotal is computed server-side and never
// trusted from input.
type BillItem struct {
	VegetableID string  `db:"vegetable_id" json:"id"`
	Name        string  `db:"name" json:"name"`
	Quantity    float64 `db:"quantity" json:"quantity"`
	Price       float64 `db:"price" json:"price"`
	ItemTotal   float64 `db:"item_total" json:"item_total"`
}

type Bill struct {
	ID           string     `db:"id" json:"id"`
	ProviderID   string     `db:"provider_id" json:"providerId"`
	ProviderName string     `db:"provider_name" json:"providerName"`
	// Signer is denormalized free text, not a foreign key into the
	// signers table. A bill keeps whatever name it was signed with.
	Signer       string     `db:"signer" json:"signer,omitempty"`
	Items        []BillItem `db:"-" json:"items"`
	Total        float64    `db:"total" json:"total"`
	Date         string     `db:"bill_date" json:"date"`
	CreatedAt    string     `db:"created_at" json:"createdAt"`
}

type Provider struct {
	ID        string `db:"id" json:"id"`
	Name      string `db:"name" json:"name"`
	Mobile    string `db:"mobile" json:"mobile"`
	Address   string `db:"address" json:"address,omitempty"`
	CreatedAt string `db:"created_at" json:"createdAt,omitempty"`
}

type Signer struct {
	ID        string `db:"id" json:"id"`
	Name      string `db:"name" json:"name"`
	CreatedAt string `db:"created_at" json:"createdAt,omitempty"`
}
