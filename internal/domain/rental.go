package domain

import "time"

type RentalStatus string

const (
	RentalStatusActive    RentalStatus = "ACTIVE"
	RentalStatusFinalized RentalStatus = "FINALIZED"
)

type PricingModel string

const (
	PricingPerMinute PricingModel = "per_minute"
	PricingPerDay    PricingModel = "per_day"
	PricingFixedRate PricingModel = "fixed_rate"
	PricingBlock     PricingModel = "block"
)

// ValidPricingModel reports whether m is one of the four supported models.
func ValidPricingModel(m PricingModel) bool {
	switch m {
	case PricingPerMinute, PricingPerDay, PricingFixedRate, PricingBlock:
		return true
	}
	return false
}

type Rental struct {
	ID          int64        `json:"id"`
	ShopID      int64        `json:"shop_id"`
	ItemID      int64        `json:"item_id"`
	AccessCode  string       `json:"access_code"`
	ClientName  string       `json:"client_name"`
	ClientPhone string       `json:"client_phone"`
	Status      RentalStatus `json:"status"`

	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	// ActualEndTime is set exactly once, at finalization.
	ActualEndTime *time.Time `json:"actual_end_time,omitempty"`

	// Price snapshot fields, captured from the item type at rental creation
	// time. All cost calculations use these snapshots, not live catalog
	// prices, so a later catalog change never reprices an in-flight rental.
	PricingModel         PricingModel `json:"pricing_model"`
	PricePerMinuteCents  int64        `json:"price_per_minute_cents"`
	PricePerDayCents     int64        `json:"price_per_day_cents"`
	PriceFixedCents      int64        `json:"price_fixed_cents"`
	PriceBlockCents      int64        `json:"price_block_cents"`
	BlockDurationMinutes int64        `json:"block_duration_minutes"`

	ExtensionCount      int32      `json:"extension_count"`
	LastExtensionAt     *time.Time `json:"last_extension_at,omitempty"`
	TotalOverageMinutes int64      `json:"total_overage_minutes"`
	InitialCostCents    int64      `json:"initial_cost_cents"`
	// TotalCostCents stays nil while the rental is active and is written
	// exactly once by the finalize conditional update.
	TotalCostCents *int64 `json:"total_cost_cents,omitempty"`

	CreatedOn time.Time `json:"created_on"`
	UpdatedOn time.Time `json:"updated_on"`
}
