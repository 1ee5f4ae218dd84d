package domain

import "time"

type ItemStatus string

const (
	ItemStatusAvailable   ItemStatus = "AVAILABLE"
	ItemStatusRented      ItemStatus = "RENTED"
	ItemStatusMaintenance ItemStatus = "MAINTENANCE"
	ItemStatusDisabled    ItemStatus = "DISABLED"
)

// Item is one physical rentable unit. An item has at most one active rental
// at a time; its status is RENTED exactly while that rental exists.
type Item struct {
	ID        int64      `json:"id"`
	ShopID    int64      `json:"shop_id"`
	TypeID    int64      `json:"type_id"`
	Label     string     `json:"label"`
	Notes     string     `json:"notes"`
	Status    ItemStatus `json:"status"`
	CreatedOn time.Time  `json:"created_on"`
	DeletedOn *time.Time `json:"deleted_on,omitempty"`
}

// ItemType is the catalog category an item belongs to. It owns the rate
// fields that rentals snapshot from at creation.
type ItemType struct {
	ID                   int64        `json:"id"`
	ShopID               int64        `json:"shop_id"`
	Name                 string       `json:"name"`
	PricingModel         PricingModel `json:"pricing_model"`
	PricePerMinuteCents  int64        `json:"price_per_minute_cents"`
	PricePerDayCents     int64        `json:"price_per_day_cents"`
	PriceFixedCents      int64        `json:"price_fixed_cents"`
	PriceBlockCents      int64        `json:"price_block_cents"`
	BlockDurationMinutes int64        `json:"block_duration_minutes"`
	CreatedOn            time.Time    `json:"created_on"`
}
