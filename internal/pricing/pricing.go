package pricing

import (
	"time"

	"alugo-backend/internal/domain"
)

const minutesPerDay = 1440

// Rates carries the rate snapshot a rental was created with. For fixed_rate
// rentals, PerMinuteCents is the overage rate and InitialCostCents the price
// agreed at start.
type Rates struct {
	PerMinuteCents       int64
	PerDayCents          int64
	FixedCents           int64
	BlockCents           int64
	BlockDurationMinutes int64
	InitialCostCents     int64
}

// Quote is the result of a cost computation.
type Quote struct {
	TotalCents     int64
	OverageMinutes int64
}

// ComputeCost maps (pricing model, elapsed time, rates) to a final amount.
// The function is pure: identical inputs yield identical quotes, which is
// what makes the finalize retry path idempotent.
//
// OverageMinutes is the whole minutes used past the scheduled end. It is
// part of the billed amount only under fixed_rate; per-minute billing is
// continuous so there it is informational, and per-day/block round the whole
// elapsed window up instead.
func ComputeCost(model domain.PricingModel, start, scheduledEnd, actualEnd time.Time, rates Rates) Quote {
	elapsed := wholeMinutes(start, actualEnd)
	overage := wholeMinutes(scheduledEnd, actualEnd)

	var total int64
	switch model {
	case domain.PricingPerMinute:
		total = elapsed * rates.PerMinuteCents
	case domain.PricingPerDay:
		total = ceilDiv(elapsed, minutesPerDay) * rates.PerDayCents
	case domain.PricingFixedRate:
		total = rates.InitialCostCents + overage*rates.PerMinuteCents
	case domain.PricingBlock:
		total = ceilDiv(elapsed, rates.BlockDurationMinutes) * rates.BlockCents
	}

	if total < 0 {
		total = 0
	}
	return Quote{TotalCents: total, OverageMinutes: overage}
}

// InitialCost prices the scheduled window agreed at rental creation.
func InitialCost(model domain.PricingModel, durationMinutes int64, rates Rates) int64 {
	switch model {
	case domain.PricingPerMinute:
		return durationMinutes * rates.PerMinuteCents
	case domain.PricingPerDay:
		return ceilDiv(durationMinutes, minutesPerDay) * rates.PerDayCents
	case domain.PricingFixedRate:
		return rates.FixedCents
	case domain.PricingBlock:
		return ceilDiv(durationMinutes, rates.BlockDurationMinutes) * rates.BlockCents
	}
	return 0
}

// wholeMinutes returns the floor of the minutes between from and to,
// clamped at zero when to is not after from.
func wholeMinutes(from, to time.Time) int64 {
	if !to.After(from) {
		return 0
	}
	return int64(to.Sub(from) / time.Minute)
}

// ceilDiv rounds n/d up. A non-positive divisor yields zero rather than a
// panic; catalog validation keeps block durations >= 1 so this only guards
// corrupt rows.
func ceilDiv(n, d int64) int64 {
	if d <= 0 || n <= 0 {
		return 0
	}
	return (n + d - 1) / d
}
