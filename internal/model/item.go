package model

import "time"

// Item represents a quantity-tracked inventory item owned by a single user.
// UserID is the partition key; an item is only ever reachable through the
// partition matching it.
type Item struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	Name        string    `json:"name"`
	Quantity    float64   `json:"quantity"`
	MaxQuantity float64   `json:"maxQuantity"`
	Unit        string    `json:"unit"`
	Category    string    `json:"category"`
	Status      string    `json:"status"`
	Notes       string    `json:"notes"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Item statuses. Advisory only: the server stores whatever string it is given.
const (
	StatusEnough = "Enough"
	StatusLow    = "Low"
	StatusBuy    = "Buy"
	StatusBring  = "Bring"
)

// Field defaults applied at creation.
const (
	DefaultUnit        = "items"
	DefaultCategory    = "Other"
	DefaultStatus      = StatusEnough
	DefaultMaxQuantity = 50
)

// ApplyDefaults fills the open-ended string fields and the max quantity bound
// when the caller left them empty.
func (i *Item) ApplyDefaults() {
	if i.Unit == "" {
		i.Unit = DefaultUnit
	}
	if i.Category == "" {
		i.Category = DefaultCategory
	}
	if i.Status == "" {
		i.Status = DefaultStatus
	}
	if i.MaxQuantity == 0 {
		i.MaxQuantity = DefaultMaxQuantity
	}
}
